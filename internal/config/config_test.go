package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "data/modguard.db", cfg.DatabasePath)
	assert.Equal(t, "data/classifier.json", cfg.ModelPath)
	assert.Equal(t, "", cfg.KeywordsPath)
	assert.Equal(t, 10, cfg.RateLimit)
	assert.Equal(t, time.Minute, cfg.RateWindow)
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("DATABASE_PATH", "/tmp/other.db")
	t.Setenv("RATE_LIMIT", "3")
	t.Setenv("RATE_WINDOW", "30s")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "/tmp/other.db", cfg.DatabasePath)
	assert.Equal(t, 3, cfg.RateLimit)
	assert.Equal(t, 30*time.Second, cfg.RateWindow)
}

func TestLoad_InvalidDuration(t *testing.T) {
	t.Setenv("RATE_WINDOW", "not-a-duration")

	_, err := Load()
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)
	assert.NoError(t, cfg.Validate())

	cfg.ModelPath = ""
	assert.Error(t, cfg.Validate())
}

func TestValidateForServe(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)
	assert.NoError(t, cfg.ValidateForServe())

	cfg.RateLimit = 0
	assert.Error(t, cfg.ValidateForServe())
}
