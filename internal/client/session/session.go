// Package session tracks the signed-in shopper. The record lives in the
// client's local store under the "currentUser" key and survives restarts
// until the user signs out.
package session

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/arshopsy/arshopsy/internal/client/localstore"
	"github.com/arshopsy/arshopsy/internal/common"
)

// currentUserKey is the local store key holding the active session.
const currentUserKey = "currentUser"

// Record is the persisted session: who is signed in and their API token.
type Record struct {
	UserID string `json:"user_id"`
	Name   string `json:"name"`
	Email  string `json:"email"`
	Token  string `json:"token"`
}

type Manager struct {
	store localstore.Repository
}

func NewManager(store localstore.Repository) *Manager {
	return &Manager{store: store}
}

// Start persists a new session, replacing any previous one.
func (m *Manager) Start(ctx context.Context, rec Record) error {
	data, err := json.Marshal(rec)
	if err != nil {
		return err
	}
	if err := m.store.Set(ctx, currentUserKey, data); err != nil {
		return fmt.Errorf("failed to save session: %w", err)
	}
	return nil
}

// Current returns the active session, or common.ErrNotSignedIn when nobody
// is signed in.
func (m *Manager) Current(ctx context.Context) (*Record, error) {
	data, err := m.store.Get(ctx, currentUserKey)
	if err != nil {
		return nil, fmt.Errorf("failed to load session: %w", err)
	}
	if data == nil {
		return nil, common.ErrNotSignedIn
	}

	var rec Record
	if err := json.Unmarshal(data, &rec); err != nil {
		return nil, fmt.Errorf("failed to decode session: %w", err)
	}
	return &rec, nil
}

// End removes the active session. Ending a missing session is not an error.
func (m *Manager) End(ctx context.Context) error {
	return m.store.Delete(ctx, currentUserKey)
}
