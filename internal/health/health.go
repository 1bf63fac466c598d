// Package health tracks component health and serves the liveness endpoint.
package health

import (
	"encoding/json"
	"net/http"
	"sync"
	"time"
)

// Status is the health of one component.
type Status struct {
	Healthy   bool      `json:"healthy"`
	Message   string    `json:"message,omitempty"`
	LastCheck time.Time `json:"last_check"`
}

// Tracker records per-component health. Safe for concurrent use.
type Tracker struct {
	mu         sync.RWMutex
	components map[string]Status
}

// NewTracker creates an empty tracker.
func NewTracker() *Tracker {
	return &Tracker{components: make(map[string]Status)}
}

// SetHealthy marks a component as healthy.
func (t *Tracker) SetHealthy(component, message string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.components[component] = Status{
		Healthy:   true,
		Message:   message,
		LastCheck: time.Now(),
	}
}

// SetUnhealthy marks a component as unhealthy.
func (t *Tracker) SetUnhealthy(component string, err error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.components[component] = Status{
		Healthy:   false,
		Message:   err.Error(),
		LastCheck: time.Now(),
	}
}

// Healthy reports whether every tracked component is healthy.
func (t *Tracker) Healthy() bool {
	t.mu.RLock()
	defer t.mu.RUnlock()
	for _, s := range t.components {
		if !s.Healthy {
			return false
		}
	}
	return true
}

// Statuses returns a snapshot of all component statuses.
func (t *Tracker) Statuses() map[string]Status {
	t.mu.RLock()
	defer t.mu.RUnlock()
	out := make(map[string]Status, len(t.components))
	for name, s := range t.components {
		out[name] = s
	}
	return out
}

// Handler serves the health snapshot as JSON; 503 when any component is
// unhealthy.
func (t *Tracker) Handler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		healthy := t.Healthy()

		w.Header().Set("Content-Type", "application/json")
		if !healthy {
			w.WriteHeader(http.StatusServiceUnavailable)
		}

		json.NewEncoder(w).Encode(struct {
			Healthy    bool              `json:"healthy"`
			Components map[string]Status `json:"components"`
		}{
			Healthy:    healthy,
			Components: t.Statuses(),
		})
	})
}
