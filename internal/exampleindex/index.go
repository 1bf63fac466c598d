// Package exampleindex keeps the seed-corpus violation phrases in a VecLite
// collection so an assessment can be explained with the closest known
// violation examples. Purely advisory: the risk score never depends on it,
// and an unavailable index degrades to no explanations.
package exampleindex

import (
	"fmt"
	"log/slog"

	"github.com/abdul-hamid-achik/veclite"
	"github.com/abdulachik/modguard/internal/detector"
)

const violationsCollection = "violations"

// Config holds configuration for the Index.
type Config struct {
	// Path to the VecLite database file (e.g., "data/examples.veclite").
	Path string

	// ConfigPath is the path to veclite.yaml (optional). If empty,
	// searches ./veclite.yaml, ~/.veclite/config.yaml.
	ConfigPath string
}

// Index wraps the VecLite collection of known violation phrases.
type Index struct {
	vecdb *veclite.DB
	coll  *veclite.Collection
}

// Example is one known violation phrase with its similarity to a query.
type Example struct {
	Phrase     string
	Similarity float32
}

// Open opens (creating if necessary) the example index.
func Open(cfg Config) (*Index, error) {
	vecliteCfg, err := veclite.LoadConfig(cfg.ConfigPath)
	if err != nil {
		return nil, fmt.Errorf("load veclite config: %w", err)
	}

	embedder, err := veclite.NewEmbedderFromConfig(vecliteCfg.Embedder)
	if err != nil {
		return nil, fmt.Errorf("create embedder: %w", err)
	}

	vecdb, err := veclite.Open(cfg.Path)
	if err != nil {
		return nil, fmt.Errorf("open veclite db: %w", err)
	}

	coll, err := vecdb.CreateCollection(violationsCollection,
		veclite.WithDimension(embedder.Dimension()),
		veclite.WithDistanceType(veclite.DistanceCosine),
		veclite.WithTextIndex("phrase"),
		veclite.WithEmbedder(embedder),
	)
	if err != nil {
		coll, err = vecdb.GetCollection(violationsCollection)
		if err != nil {
			vecdb.Close()
			return nil, fmt.Errorf("get collection: %w", err)
		}
	}

	return &Index{vecdb: vecdb, coll: coll}, nil
}

// Seed inserts the violation phrases of the corpus if the index is empty.
func (x *Index) Seed(samples []detector.TrainingSample) error {
	if x.coll.Count() > 0 {
		return nil
	}

	inserted := 0
	for _, s := range samples {
		if !s.Violation {
			continue
		}
		if _, err := x.coll.InsertText(s.Text, map[string]any{"phrase": s.Text}); err != nil {
			return fmt.Errorf("insert example %q: %w", s.Text, err)
		}
		inserted++
	}
	slog.Info("seeded example index", "examples", inserted)

	return x.vecdb.Sync()
}

// Closest returns the k known violation phrases most similar to the text.
func (x *Index) Closest(text string, k int) ([]Example, error) {
	results, err := x.coll.SearchText(text, veclite.TopK(k))
	if err != nil {
		return nil, fmt.Errorf("search examples: %w", err)
	}

	out := make([]Example, 0, len(results))
	for _, r := range results {
		ex := Example{Similarity: r.Score}
		if r.Record.Payload != nil {
			if phrase, ok := r.Record.Payload["phrase"].(string); ok {
				ex.Phrase = phrase
			}
		}
		if ex.Phrase == "" {
			ex.Phrase = r.Record.Content
		}
		out = append(out, ex)
	}
	return out, nil
}

// Count returns the number of indexed examples.
func (x *Index) Count() int {
	return x.coll.Count()
}

// Close closes the underlying VecLite database.
func (x *Index) Close() error {
	if x.vecdb != nil {
		return x.vecdb.Close()
	}
	return nil
}
