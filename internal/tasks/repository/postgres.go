package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/benmore-apps/taskrabbit-backend/internal/tasks/domain"
)

type Postgres struct {
	db *pgxpool.Pool
}

func NewPostgres(db *pgxpool.Pool) *Postgres {
	return &Postgres{db: db}
}

func (r *Postgres) Create(ctx context.Context, t domain.Task) (domain.Task, error) {
	const q = `
insert into tasks (title, project_id, complete)
values ($1, $2, $3)
returning id, title, date_created, project_id, complete;
`
	var out domain.Task
	err := r.db.QueryRow(ctx, q, t.Title, t.ProjectID, t.Complete).
		Scan(&out.ID, &out.Title, &out.DateCreated, &out.ProjectID, &out.Complete)
	if err != nil {
		return domain.Task{}, fmt.Errorf("create task: %w", err)
	}
	return out, nil
}

func (r *Postgres) Get(ctx context.Context, id int64) (domain.Task, error) {
	const q = `
select id, title, date_created, project_id, complete
from tasks
where id = $1;
`
	var out domain.Task
	err := r.db.QueryRow(ctx, q, id).
		Scan(&out.ID, &out.Title, &out.DateCreated, &out.ProjectID, &out.Complete)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.Task{}, domain.ErrNotFound
		}
		return domain.Task{}, err
	}
	return out, nil
}

func (r *Postgres) List(ctx context.Context, f domain.Filter) ([]domain.Task, error) {
	const q = `
select id, title, date_created, project_id, complete
from tasks
where ($1::bigint is null or project_id = $1)
  and ($2::boolean is null or complete = $2)
order by id;
`
	rows, err := r.db.Query(ctx, q, f.ProjectID, f.Completed)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]domain.Task, 0, 16)
	for rows.Next() {
		var t domain.Task
		if err := rows.Scan(&t.ID, &t.Title, &t.DateCreated, &t.ProjectID, &t.Complete); err != nil {
			return nil, err
		}
		out = append(out, t)
	}
	return out, rows.Err()
}

// Update replaces the mutable fields (title, complete). The project reference
// is fixed at creation and never rewritten here.
func (r *Postgres) Update(ctx context.Context, id int64, t domain.Task) (domain.Task, error) {
	const q = `
update tasks
set title = $2, complete = $3
where id = $1
returning id, title, date_created, project_id, complete;
`
	var out domain.Task
	err := r.db.QueryRow(ctx, q, id, t.Title, t.Complete).
		Scan(&out.ID, &out.Title, &out.DateCreated, &out.ProjectID, &out.Complete)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.Task{}, domain.ErrNotFound
		}
		return domain.Task{}, err
	}
	return out, nil
}

func (r *Postgres) Delete(ctx context.Context, id int64) error {
	ct, err := r.db.Exec(ctx, `delete from tasks where id = $1;`, id)
	if err != nil {
		return err
	}
	if ct.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
