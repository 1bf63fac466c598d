package detector

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestModelStore_SaveLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "classifier.json")
	store := NewModelStore(path)

	trained, err := Train(SeedCorpus())
	require.NoError(t, err)
	require.NoError(t, store.Save(trained))

	loaded, err := store.Load()
	require.NoError(t, err)

	// Loaded model behaves identically to the trained one.
	text := "cracked software download"
	assert.Equal(t, trained.Predict(text), loaded.Predict(text))
	assert.Equal(t, trained.VocabularySize(), loaded.VocabularySize())
}

func TestModelStore_LoadMissing(t *testing.T) {
	store := NewModelStore(filepath.Join(t.TempDir(), "missing.json"))
	_, err := store.Load()
	assert.Error(t, err)
}

func TestModelStore_LoadCorrupt(t *testing.T) {
	path := filepath.Join(t.TempDir(), "classifier.json")
	require.NoError(t, os.WriteFile(path, []byte("not json at all"), 0644))

	_, err := NewModelStore(path).Load()
	assert.Error(t, err)
}

func TestModelStore_LoadWrongVersion(t *testing.T) {
	path := filepath.Join(t.TempDir(), "classifier.json")

	art := modelArtifact{
		Version:          99,
		Vocabulary:       []string{"torrent"},
		ViolationLogProb: []float64{-1},
		CleanLogProb:     []float64{-2},
	}
	data, err := json.Marshal(art)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(path, data, 0644))

	_, err = NewModelStore(path).Load()
	assert.ErrorContains(t, err, "version")
}

func TestModelStore_LoadInconsistentArrays(t *testing.T) {
	path := filepath.Join(t.TempDir(), "classifier.json")

	art := modelArtifact{
		Version:          artifactVersion,
		Vocabulary:       []string{"torrent", "keygen"},
		ViolationLogProb: []float64{-1},
		CleanLogProb:     []float64{-2, -3},
	}
	data, err := json.Marshal(art)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(path, data, 0644))

	_, err = NewModelStore(path).Load()
	assert.Error(t, err)
}

func TestModelStore_LoadOrTrain(t *testing.T) {
	path := filepath.Join(t.TempDir(), "classifier.json")
	store := NewModelStore(path)

	// No artifact: trains and persists.
	m, err := store.LoadOrTrain(SeedCorpus())
	require.NoError(t, err)
	require.NotNil(t, m)

	_, err = os.Stat(path)
	require.NoError(t, err, "retraining persists the artifact")

	// Second call loads the artifact and yields identical predictions.
	again, err := store.LoadOrTrain(SeedCorpus())
	require.NoError(t, err)
	text := "watch movies without subscription"
	assert.Equal(t, m.Predict(text), again.Predict(text))
}

func TestModelStore_LoadOrTrainRecoversFromCorruption(t *testing.T) {
	path := filepath.Join(t.TempDir(), "classifier.json")
	require.NoError(t, os.WriteFile(path, []byte("{garbage"), 0644))

	m, err := NewModelStore(path).LoadOrTrain(SeedCorpus())
	require.NoError(t, err)
	assert.True(t, m.Predict("pirated version available here").Violation)
}
