package repository

import (
	"context"
	"sync"
	"time"

	"github.com/benmore-apps/taskrabbit-backend/internal/tasks/domain"
)

// Memory is a mutex-guarded in-process task store. Listing walks ids in
// insertion order, which matches the Postgres implementation.
type Memory struct {
	mu     sync.Mutex
	nextID int64
	items  map[int64]domain.Task
	order  []int64
}

func NewMemory() *Memory {
	return &Memory{nextID: 1, items: make(map[int64]domain.Task)}
}

func (m *Memory) Create(_ context.Context, t domain.Task) (domain.Task, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	t.ID = m.nextID
	m.nextID++
	t.DateCreated = time.Now().UTC()
	m.items[t.ID] = t
	m.order = append(m.order, t.ID)
	return t, nil
}

func (m *Memory) Get(_ context.Context, id int64) (domain.Task, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	t, ok := m.items[id]
	if !ok {
		return domain.Task{}, domain.ErrNotFound
	}
	return t, nil
}

func (m *Memory) List(_ context.Context, f domain.Filter) ([]domain.Task, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	all := make([]domain.Task, 0, len(m.order))
	for _, id := range m.order {
		if t, ok := m.items[id]; ok {
			all = append(all, t)
		}
	}
	return f.Apply(all), nil
}

func (m *Memory) Update(_ context.Context, id int64, t domain.Task) (domain.Task, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	existing, ok := m.items[id]
	if !ok {
		return domain.Task{}, domain.ErrNotFound
	}

	existing.Title = t.Title
	existing.Complete = t.Complete
	m.items[id] = existing
	return existing, nil
}

func (m *Memory) Delete(_ context.Context, id int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.items[id]; !ok {
		return domain.ErrNotFound
	}
	delete(m.items, id)
	return nil
}

// DeleteByProject removes every task belonging to the given project. The
// in-memory project store calls this to mirror the database's cascade.
func (m *Memory) DeleteByProject(_ context.Context, projectID int64) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for id, t := range m.items {
		if t.ProjectID == projectID {
			delete(m.items, id)
		}
	}
}
