package repository

import (
	"context"
	"sync"
	"time"

	"github.com/benmore-apps/taskrabbit-backend/internal/projects/domain"
	taskrepo "github.com/benmore-apps/taskrabbit-backend/internal/tasks/repository"
)

// Memory is a mutex-guarded in-process project store. It holds a reference to
// the in-memory task store so that deleting a project cascades to its tasks,
// mirroring the database's referential integrity.
type Memory struct {
	mu     sync.Mutex
	nextID int64
	items  map[int64]domain.Project
	order  []int64
	tasks  *taskrepo.Memory
}

func NewMemory(tasks *taskrepo.Memory) *Memory {
	return &Memory{nextID: 1, items: make(map[int64]domain.Project), tasks: tasks}
}

func (m *Memory) Create(_ context.Context, p domain.Project) (domain.Project, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	p.ID = m.nextID
	m.nextID++
	p.DateCreated = time.Now().UTC()
	p.Members = dedupe(p.Members)
	m.items[p.ID] = p
	m.order = append(m.order, p.ID)
	return clone(p), nil
}

func (m *Memory) Get(_ context.Context, id int64) (domain.Project, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	p, ok := m.items[id]
	if !ok {
		return domain.Project{}, domain.ErrNotFound
	}
	return clone(p), nil
}

func (m *Memory) List(_ context.Context, f Filter) ([]domain.Project, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	out := make([]domain.Project, 0, len(m.order))
	for _, id := range m.order {
		p, ok := m.items[id]
		if !ok {
			continue
		}
		if !p.MatchesTitle(f.Search) {
			continue
		}
		out = append(out, clone(p))
	}
	return out, nil
}

func (m *Memory) Update(_ context.Context, id int64, p domain.Project) (domain.Project, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	existing, ok := m.items[id]
	if !ok {
		return domain.Project{}, domain.ErrNotFound
	}

	existing.Title = p.Title
	existing.DueDate = p.DueDate
	existing.Members = dedupe(p.Members)
	m.items[id] = existing
	return clone(existing), nil
}

func (m *Memory) Delete(ctx context.Context, id int64) error {
	m.mu.Lock()
	if _, ok := m.items[id]; !ok {
		m.mu.Unlock()
		return domain.ErrNotFound
	}
	delete(m.items, id)
	m.mu.Unlock()

	if m.tasks != nil {
		m.tasks.DeleteByProject(ctx, id)
	}
	return nil
}

func (m *Memory) SetPhoto(_ context.Context, id int64, path string) (domain.Project, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	p, ok := m.items[id]
	if !ok {
		return domain.Project{}, domain.ErrNotFound
	}
	p.DisplayPhoto = path
	m.items[id] = p
	return clone(p), nil
}

func (m *Memory) PhotoPaths(_ context.Context) ([]string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	var out []string
	for _, id := range m.order {
		if p, ok := m.items[id]; ok && p.DisplayPhoto != "" {
			out = append(out, p.DisplayPhoto)
		}
	}
	return out, nil
}

func clone(p domain.Project) domain.Project {
	out := p
	out.Members = append([]int64(nil), p.Members...)
	return out
}
