package users

import (
	"context"
	"fmt"
	"sort"
	"sync"
)

// Memory is an in-process users store for tests and STORE=memory runs.
type Memory struct {
	mu     sync.Mutex
	nextID int64
	byName map[string]User
}

func NewMemory() *Memory {
	return &Memory{nextID: 1, byName: make(map[string]User)}
}

func (m *Memory) EnsureUser(_ context.Context, u Upsert) (User, error) {
	if u.Username == "" {
		return User{}, fmt.Errorf("username required")
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if existing, ok := m.byName[u.Username]; ok {
		if u.Email != "" {
			existing.Email = u.Email
		}
		if u.DisplayName != "" {
			existing.DisplayName = u.DisplayName
		}
		m.byName[u.Username] = existing
		return existing, nil
	}

	out := User{
		ID:          m.nextID,
		Username:    u.Username,
		Email:       u.Email,
		DisplayName: u.DisplayName,
	}
	m.nextID++
	m.byName[u.Username] = out
	return out, nil
}

func (m *Memory) GetByIDs(_ context.Context, ids []int64) ([]User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	want := make(map[int64]bool, len(ids))
	for _, id := range ids {
		want[id] = true
	}

	out := make([]User, 0, len(ids))
	for _, u := range m.byName {
		if want[u.ID] {
			out = append(out, u)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}
