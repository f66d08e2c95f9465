// Package storage persists the whole application state as one serialized
// snapshot under a single key. Loading tolerates anything: a missing row,
// unreadable storage, or an unparseable payload all read as "no state".
package storage

import "questa/internal/model"

// SnapshotKey is the one key the app writes under.
const SnapshotKey = "app_state"

// Store is the persistence adapter. Save and Clear are fire-and-forget:
// failures are swallowed because losing a best-effort snapshot is never
// worth surfacing in this app. Load reports absence, never an error.
type Store interface {
	Load() (model.AppState, bool)
	Save(state model.AppState)
	Clear()
}

// MemoryStore keeps the snapshot in process memory. Used by tests and by
// ephemeral runs where no database path is configured.
type MemoryStore struct {
	state   model.AppState
	present bool
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

func (m *MemoryStore) Load() (model.AppState, bool) {
	return m.state, m.present
}

func (m *MemoryStore) Save(state model.AppState) {
	m.state = state
	m.present = true
}

func (m *MemoryStore) Clear() {
	m.state = model.AppState{}
	m.present = false
}
