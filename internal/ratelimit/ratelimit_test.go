package ratelimit

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLimiter_AllowWithinLimit(t *testing.T) {
	l, err := New(3, time.Minute, 100)
	require.NoError(t, err)

	for i := 0; i < 3; i++ {
		assert.True(t, l.Allow(1), "call %d should be allowed", i)
	}
	assert.False(t, l.Allow(1), "fourth call within the window is rejected")
}

func TestLimiter_UsersIndependent(t *testing.T) {
	l, err := New(1, time.Minute, 100)
	require.NoError(t, err)

	assert.True(t, l.Allow(1))
	assert.False(t, l.Allow(1))
	assert.True(t, l.Allow(2), "a different user has their own window")
}

func TestLimiter_TrackedUsersBounded(t *testing.T) {
	l, err := New(1, time.Minute, 2)
	require.NoError(t, err)

	l.Allow(1)
	l.Allow(2)
	l.Allow(3)
	assert.LessOrEqual(t, l.TrackedUsers(), 2)
}

func TestNew_Invalid(t *testing.T) {
	_, err := New(0, time.Minute, 10)
	assert.Error(t, err)

	_, err = New(5, 0, 10)
	assert.Error(t, err)
}
