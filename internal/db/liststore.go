package db

import (
	"context"
	"fmt"
)

// KeywordLists adapts the keywords table to the storage.ListStore contract,
// so the keyword store can be backed by sqlite instead of a JSON file.
type KeywordLists struct {
	store *Store
}

// KeywordLists returns the ListStore view of the keywords table.
func (s *Store) KeywordLists() *KeywordLists {
	return &KeywordLists{store: s}
}

// Load returns all keywords in insertion order.
func (l *KeywordLists) Load() ([]string, error) {
	return l.store.LoadKeywords(context.Background())
}

// Replace swaps the full keyword list in one transaction.
func (l *KeywordLists) Replace(items []string) error {
	ctx := context.Background()

	tx, err := l.store.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, "DELETE FROM keywords"); err != nil {
		return fmt.Errorf("clear keywords: %w", err)
	}
	for _, kw := range items {
		if _, err := tx.ExecContext(ctx, "INSERT INTO keywords (keyword) VALUES (?)", kw); err != nil {
			return fmt.Errorf("insert keyword %q: %w", kw, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit keywords: %w", err)
	}
	return nil
}
