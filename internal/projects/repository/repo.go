package repository

import (
	"context"

	"github.com/benmore-apps/taskrabbit-backend/internal/projects/domain"
)

// Filter narrows a project listing. Search is a case-insensitive substring
// match on the title; empty means unfiltered. Completion filtering is derived
// state and happens above the store, in the service.
type Filter struct {
	Search string
}

// Store is the project record store. Deleting a project cascades to its
// tasks in both implementations. Missing ids surface domain.ErrNotFound;
// lists come back in insertion (id) order.
type Store interface {
	Create(ctx context.Context, p domain.Project) (domain.Project, error)
	Get(ctx context.Context, id int64) (domain.Project, error)
	List(ctx context.Context, f Filter) ([]domain.Project, error)
	Update(ctx context.Context, id int64, p domain.Project) (domain.Project, error)
	Delete(ctx context.Context, id int64) error

	// SetPhoto records the stored display photo path for a project.
	SetPhoto(ctx context.Context, id int64, path string) (domain.Project, error)
	// PhotoPaths lists every display photo path currently referenced,
	// for the orphaned-upload sweep.
	PhotoPaths(ctx context.Context) ([]string, error)
}
