package roster

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/abdulachik/modguard/internal/db"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRoster(t *testing.T) *Roster {
	t.Helper()
	ctx := context.Background()

	store, err := db.NewStore(ctx, filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	require.NoError(t, store.Migrate(ctx))

	return New(store)
}

func TestRoster_Admins(t *testing.T) {
	r := newTestRoster(t)
	ctx := context.Background()

	ok, err := r.AddAdmin(ctx, 100)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = r.AddAdmin(ctx, 100)
	require.NoError(t, err)
	assert.False(t, ok)

	isAdmin, err := r.IsAdmin(ctx, 100)
	require.NoError(t, err)
	assert.True(t, isAdmin)

	_, err = r.AddAdmin(ctx, -5)
	assert.Error(t, err)
}

func TestRoster_RemoveAdminSelf(t *testing.T) {
	r := newTestRoster(t)
	ctx := context.Background()

	_, err := r.AddAdmin(ctx, 100)
	require.NoError(t, err)

	_, err = r.RemoveAdmin(ctx, 100, 100)
	assert.Error(t, err, "self-removal is rejected")

	ok, err := r.RemoveAdmin(ctx, 200, 100)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestRoster_Channels(t *testing.T) {
	r := newTestRoster(t)
	ctx := context.Background()

	ok, err := r.AddChannel(ctx, "-100555", "film talk")
	require.NoError(t, err)
	assert.True(t, ok)

	_, err = r.AddChannel(ctx, "", "no id")
	assert.Error(t, err)

	channels, err := r.Channels(ctx)
	require.NoError(t, err)
	require.Len(t, channels, 1)
	assert.Equal(t, "film talk", channels[0].Title)

	ok, err = r.RemoveChannel(ctx, "-100555")
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = r.RemoveChannel(ctx, "-100555")
	require.NoError(t, err)
	assert.False(t, ok)
}
