package detector

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"
)

// artifactVersion is bumped whenever the serialized model schema changes.
// A mismatch triggers a rebuild from the seed corpus instead of a crash.
const artifactVersion = 1

// modelArtifact is the on-disk shape of a trained model: explicit schema,
// plain JSON, no arbitrary deserialization.
type modelArtifact struct {
	Version           int       `json:"version"`
	TrainedAt         time.Time `json:"trained_at"`
	Alpha             float64   `json:"alpha"`
	Vocabulary        []string  `json:"vocabulary"`
	ViolationLogProb  []float64 `json:"violation_log_prob"`
	CleanLogProb      []float64 `json:"clean_log_prob"`
	LogPriorViolation float64   `json:"log_prior_violation"`
	LogPriorClean     float64   `json:"log_prior_clean"`
	ViolationDocs     int       `json:"violation_docs"`
	CleanDocs         int       `json:"clean_docs"`
}

// ModelStore persists trained models as versioned JSON artifacts.
type ModelStore struct {
	path string
}

// NewModelStore creates a store at the given artifact path.
func NewModelStore(path string) *ModelStore {
	return &ModelStore{path: path}
}

// Load reads and validates the persisted model.
func (s *ModelStore) Load() (*Model, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return nil, fmt.Errorf("read artifact: %w", err)
	}

	var art modelArtifact
	if err := json.Unmarshal(data, &art); err != nil {
		return nil, fmt.Errorf("decode artifact: %w", err)
	}

	if art.Version != artifactVersion {
		return nil, fmt.Errorf("artifact version %d, want %d", art.Version, artifactVersion)
	}
	if len(art.Vocabulary) == 0 ||
		len(art.ViolationLogProb) != len(art.Vocabulary) ||
		len(art.CleanLogProb) != len(art.Vocabulary) {
		return nil, fmt.Errorf("artifact parameter arrays inconsistent with vocabulary size %d", len(art.Vocabulary))
	}

	m := &Model{
		Alpha:             art.Alpha,
		Terms:             art.Vocabulary,
		ViolationLogProb:  art.ViolationLogProb,
		CleanLogProb:      art.CleanLogProb,
		LogPriorViolation: art.LogPriorViolation,
		LogPriorClean:     art.LogPriorClean,
		ViolationDocs:     art.ViolationDocs,
		CleanDocs:         art.CleanDocs,
	}
	m.buildIndex()
	return m, nil
}

// Save writes the model artifact atomically (temp file + rename).
func (s *ModelStore) Save(m *Model) error {
	art := modelArtifact{
		Version:           artifactVersion,
		TrainedAt:         time.Now().UTC(),
		Alpha:             m.Alpha,
		Vocabulary:        m.Terms,
		ViolationLogProb:  m.ViolationLogProb,
		CleanLogProb:      m.CleanLogProb,
		LogPriorViolation: m.LogPriorViolation,
		LogPriorClean:     m.LogPriorClean,
		ViolationDocs:     m.ViolationDocs,
		CleanDocs:         m.CleanDocs,
	}

	data, err := json.MarshalIndent(art, "", "  ")
	if err != nil {
		return fmt.Errorf("encode artifact: %w", err)
	}

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("create artifact directory: %w", err)
	}

	tmp, err := os.CreateTemp(dir, filepath.Base(s.path)+".tmp-*")
	if err != nil {
		return fmt.Errorf("create temp artifact: %w", err)
	}
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return fmt.Errorf("write temp artifact: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("close temp artifact: %w", err)
	}
	if err := os.Rename(tmp.Name(), s.path); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("replace artifact: %w", err)
	}

	return nil
}

// LoadOrTrain returns the persisted model, or retrains from the samples when
// the artifact is missing, corrupt, or from an incompatible version. The
// retrained model is persisted; a persist failure is logged but the model is
// still usable for this process.
func (s *ModelStore) LoadOrTrain(samples []TrainingSample) (*Model, error) {
	m, err := s.Load()
	if err == nil {
		slog.Info("loaded classifier model", "path", s.path, "vocabulary", m.VocabularySize())
		return m, nil
	}
	if !errors.Is(err, os.ErrNotExist) {
		slog.Warn("classifier artifact unusable, retraining", "path", s.path, "error", err)
	}

	m, err = Train(samples)
	if err != nil {
		return nil, fmt.Errorf("train classifier: %w", err)
	}

	if err := s.Save(m); err != nil {
		slog.Error("persist classifier model", "path", s.path, "error", err)
	} else {
		slog.Info("trained and saved classifier model", "path", s.path, "vocabulary", m.VocabularySize())
	}
	return m, nil
}
