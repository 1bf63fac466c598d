package health

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTracker_Healthy(t *testing.T) {
	tr := NewTracker()
	assert.True(t, tr.Healthy(), "no components tracked means healthy")

	tr.SetHealthy("db", "connected")
	tr.SetHealthy("classifier", "model loaded")
	assert.True(t, tr.Healthy())

	tr.SetUnhealthy("classifier", errors.New("artifact corrupt"))
	assert.False(t, tr.Healthy())

	tr.SetHealthy("classifier", "retrained")
	assert.True(t, tr.Healthy())
}

func TestTracker_Handler(t *testing.T) {
	tr := NewTracker()
	tr.SetHealthy("db", "connected")

	rec := httptest.NewRecorder()
	tr.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"healthy":true`)

	tr.SetUnhealthy("db", errors.New("locked"))
	rec = httptest.NewRecorder()
	tr.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}
