package detector

import (
	"log/slog"
	"strings"
	"sync"

	"github.com/abdulachik/modguard/internal/storage"
)

// DefaultKeywords is the banned-phrase list used when the backing store is
// empty. Admins extend it at runtime.
var DefaultKeywords = []string{
	"piracy", "illegal download", "torrent", "crack", "keygen",
	"warez", "leaked movie", "cam rip", "dvd rip", "blu-ray rip",
}

// KeywordStore holds the banned-phrase set. Matching is case-insensitive
// substring search; keywords are kept in insertion order and deduplicated
// case-insensitively. Safe for concurrent use: many Matches calls may run
// together, Add/Remove take the write lock.
type KeywordStore struct {
	mu       sync.RWMutex
	keywords []string
	present  map[string]struct{}
	backend  storage.ListStore
}

// NewKeywordStore creates a store loaded from the given backend. A nil
// backend gives a purely in-memory store. An unreadable backend falls back
// to an empty set rather than failing.
func NewKeywordStore(backend storage.ListStore) *KeywordStore {
	s := &KeywordStore{
		present: make(map[string]struct{}),
		backend: backend,
	}

	if backend == nil {
		return s
	}

	items, err := backend.Load()
	if err != nil {
		slog.Warn("keyword store unreadable, starting empty", "error", err)
		return s
	}
	for _, kw := range items {
		kw = normalizeKeyword(kw)
		if kw == "" {
			continue
		}
		if _, ok := s.present[kw]; ok {
			continue
		}
		s.keywords = append(s.keywords, kw)
		s.present[kw] = struct{}{}
	}

	return s
}

func normalizeKeyword(kw string) string {
	return strings.ToLower(strings.TrimSpace(kw))
}

// Add inserts a keyword. Returns false if it is already present (any casing).
func (s *KeywordStore) Add(keyword string) bool {
	kw := normalizeKeyword(keyword)
	if kw == "" {
		return false
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.present[kw]; ok {
		return false
	}

	s.keywords = append(s.keywords, kw)
	s.present[kw] = struct{}{}
	s.persistLocked()
	return true
}

// Remove deletes a keyword. Returns false if it is not stored.
func (s *KeywordStore) Remove(keyword string) bool {
	kw := normalizeKeyword(keyword)

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.present[kw]; !ok {
		return false
	}

	delete(s.present, kw)
	for i, existing := range s.keywords {
		if existing == kw {
			s.keywords = append(s.keywords[:i], s.keywords[i+1:]...)
			break
		}
	}
	s.persistLocked()
	return true
}

// persistLocked replaces the backend contents with the current snapshot.
// Caller must hold the write lock.
func (s *KeywordStore) persistLocked() {
	if s.backend == nil {
		return
	}
	snapshot := make([]string, len(s.keywords))
	copy(snapshot, s.keywords)
	if err := s.backend.Replace(snapshot); err != nil {
		slog.Error("persist keywords", "error", err)
	}
}

// Matches returns every stored keyword that occurs in text, in store order.
// Each keyword is reported once regardless of how often it occurs.
func (s *KeywordStore) Matches(text string) []string {
	if text == "" {
		return nil
	}
	lower := strings.ToLower(text)

	s.mu.RLock()
	defer s.mu.RUnlock()

	var matched []string
	for _, kw := range s.keywords {
		if strings.Contains(lower, kw) {
			matched = append(matched, kw)
		}
	}
	return matched
}

// Keywords returns a copy of the stored keywords in insertion order.
func (s *KeywordStore) Keywords() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]string, len(s.keywords))
	copy(out, s.keywords)
	return out
}

// Len returns the number of stored keywords.
func (s *KeywordStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.keywords)
}
