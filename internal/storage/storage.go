// Package storage provides a minimal list persistence contract used by the
// keyword store and the admin/channel rosters: load everything, replace
// everything atomically. Backends can be swapped (JSON file, sqlite) without
// touching the consumers.
package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// ListStore persists an ordered list of strings.
type ListStore interface {
	// Load returns all stored items. A missing store is not an error and
	// yields an empty list.
	Load() ([]string, error)

	// Replace swaps the full list in one atomic operation. A reader must
	// never observe a partially written list.
	Replace(items []string) error
}

// fileDocument is the on-disk JSON shape.
type fileDocument struct {
	Items     []string  `json:"items"`
	UpdatedAt time.Time `json:"updated_at"`
}

// FileStore is a JSON-file ListStore. Replace writes to a temp file in the
// same directory and renames it over the target, so a crash mid-write leaves
// the previous version intact.
type FileStore struct {
	path string
}

// NewFileStore creates a FileStore at the given path.
func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

// Load reads all items from the file.
func (s *FileStore) Load() ([]string, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("read %s: %w", s.path, err)
	}

	var doc fileDocument
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("decode %s: %w", s.path, err)
	}

	return doc.Items, nil
}

// Replace atomically rewrites the file with the given items.
func (s *FileStore) Replace(items []string) error {
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("create directory: %w", err)
	}

	doc := fileDocument{
		Items:     items,
		UpdatedAt: time.Now().UTC(),
	}

	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("encode items: %w", err)
	}

	tmp, err := os.CreateTemp(dir, filepath.Base(s.path)+".tmp-*")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return fmt.Errorf("write temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("close temp file: %w", err)
	}

	if err := os.Rename(tmp.Name(), s.path); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("replace %s: %w", s.path, err)
	}

	return nil
}
