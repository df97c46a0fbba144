package storage

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"sync"
)

// Ensure MockStore implements Store interface
var _ Store = (*MockStore)(nil)

// MockStore is an in-memory Store for tests. Snapshots are copied
// through JSON on both save and load so the store isolates state the
// same way the serializing backends do.
type MockStore struct {
	mu    sync.Mutex
	slots map[string]*Snapshot

	SaveErr error // injected failure
	LoadErr error
}

func NewMockStore() *MockStore {
	return &MockStore{slots: make(map[string]*Snapshot)}
}

func cloneSnapshot(snap *Snapshot) (*Snapshot, error) {
	data, err := json.Marshal(snap)
	if err != nil {
		return nil, fmt.Errorf("failed to copy snapshot: %w", err)
	}
	var out Snapshot
	if err := json.Unmarshal(data, &out); err != nil {
		return nil, fmt.Errorf("failed to copy snapshot: %w", err)
	}
	return &out, nil
}

func (m *MockStore) Save(_ context.Context, name string, snap *Snapshot) error {
	if m.SaveErr != nil {
		return m.SaveErr
	}
	copied, err := cloneSnapshot(snap)
	if err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.slots[SanitizeName(name)] = copied
	return nil
}

func (m *MockStore) Load(_ context.Context, name string) (*Snapshot, error) {
	if m.LoadErr != nil {
		return nil, m.LoadErr
	}
	m.mu.Lock()
	snap := m.slots[SanitizeName(name)]
	m.mu.Unlock()
	if snap == nil {
		return nil, nil
	}
	return cloneSnapshot(snap)
}

func (m *MockStore) List(_ context.Context) ([]SaveInfo, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var infos []SaveInfo
	for name, snap := range m.slots {
		infos = append(infos, SaveInfo{Name: name, SavedAt: snap.SavedAt})
	}
	sort.Slice(infos, func(i, j int) bool {
		return infos[i].SavedAt.After(infos[j].SavedAt)
	})
	return infos, nil
}

func (m *MockStore) Ping(context.Context) error { return nil }
func (m *MockStore) Close() error               { return nil }

// Slots returns how many saves are held, for test assertions.
func (m *MockStore) Slots() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.slots)
}
