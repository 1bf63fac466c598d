// Package ratelimit provides a per-user sliding-window limiter for command
// invocations. Not part of the risk-assessment core.
package ratelimit

import (
	"fmt"
	"sync"
	"time"

	"github.com/RussellLuo/slidingwindow"
	lru "github.com/hashicorp/golang-lru/v2"
)

// Limiter tracks one sliding window per user. Per-user windows live in an
// LRU so the tracked set cannot grow unbounded.
type Limiter struct {
	mu     sync.Mutex
	users  *lru.Cache[int64, *slidingwindow.Limiter]
	limit  int64
	window time.Duration
}

// New creates a limiter allowing limit events per window per user, tracking
// at most maxUsers users.
func New(limit int, window time.Duration, maxUsers int) (*Limiter, error) {
	if limit <= 0 || window <= 0 {
		return nil, fmt.Errorf("limit and window must be positive")
	}

	users, err := lru.New[int64, *slidingwindow.Limiter](maxUsers)
	if err != nil {
		return nil, fmt.Errorf("create user cache: %w", err)
	}

	return &Limiter{
		users:  users,
		limit:  int64(limit),
		window: window,
	}, nil
}

// Allow reports whether the user may proceed, consuming one slot if so.
func (l *Limiter) Allow(userID int64) bool {
	l.mu.Lock()
	lim, ok := l.users.Get(userID)
	if !ok {
		lim, _ = slidingwindow.NewLimiter(l.window, l.limit, windowFunc)
		l.users.Add(userID, lim)
	}
	l.mu.Unlock()

	return lim.Allow()
}

// TrackedUsers returns the number of users with an active window.
func (l *Limiter) TrackedUsers() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.users.Len()
}

func windowFunc() (slidingwindow.Window, slidingwindow.StopFunc) {
	return slidingwindow.NewLocalWindow()
}
