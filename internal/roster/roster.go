// Package roster manages the admin and channel lists. These are collaborator
// surfaces around the risk core: plain CRUD over the sqlite store.
package roster

import (
	"context"
	"fmt"

	"github.com/abdulachik/modguard/internal/db"
)

// Roster exposes admin and managed-channel membership.
type Roster struct {
	store *db.Store
}

// New creates a roster over the given store.
func New(store *db.Store) *Roster {
	return &Roster{store: store}
}

// AddAdmin grants admin rights. Returns false if the user already has them.
func (r *Roster) AddAdmin(ctx context.Context, userID int64) (bool, error) {
	if userID <= 0 {
		return false, fmt.Errorf("invalid user id %d", userID)
	}
	return r.store.AddAdmin(ctx, userID)
}

// RemoveAdmin revokes admin rights. Returns false if the user had none.
// A user cannot remove themselves; callers enforce that with actorID.
func (r *Roster) RemoveAdmin(ctx context.Context, actorID, userID int64) (bool, error) {
	if actorID == userID {
		return false, fmt.Errorf("admin %d cannot remove themselves", actorID)
	}
	return r.store.RemoveAdmin(ctx, userID)
}

// IsAdmin reports whether the user is an admin.
func (r *Roster) IsAdmin(ctx context.Context, userID int64) (bool, error) {
	return r.store.IsAdmin(ctx, userID)
}

// Admins lists all admin user IDs.
func (r *Roster) Admins(ctx context.Context) ([]int64, error) {
	return r.store.ListAdmins(ctx)
}

// AddChannel registers a managed channel. Returns false if already managed.
func (r *Roster) AddChannel(ctx context.Context, channelID, title string) (bool, error) {
	if channelID == "" {
		return false, fmt.Errorf("channel id is required")
	}
	return r.store.AddChannel(ctx, channelID, title)
}

// RemoveChannel unregisters a channel. Returns false if it was not managed.
func (r *Roster) RemoveChannel(ctx context.Context, channelID string) (bool, error) {
	return r.store.RemoveChannel(ctx, channelID)
}

// Channels lists all managed channels.
func (r *Roster) Channels(ctx context.Context) ([]db.Channel, error) {
	return r.store.ListChannels(ctx)
}
