package repository

import (
	"context"

	"github.com/benmore-apps/taskrabbit-backend/internal/tasks/domain"
)

// Store is the task record store: plain CRUD plus filtered listing. Both the
// Postgres and in-memory implementations surface domain.ErrNotFound for
// missing ids and list in insertion (id) order.
type Store interface {
	Create(ctx context.Context, t domain.Task) (domain.Task, error)
	Get(ctx context.Context, id int64) (domain.Task, error)
	List(ctx context.Context, f domain.Filter) ([]domain.Task, error)
	Update(ctx context.Context, id int64, t domain.Task) (domain.Task, error)
	Delete(ctx context.Context, id int64) error
}
