package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/benmore-apps/taskrabbit-backend/internal/projects/domain"
)

type Postgres struct {
	db *pgxpool.Pool
}

func NewPostgres(db *pgxpool.Pool) *Postgres {
	return &Postgres{db: db}
}

func (r *Postgres) Create(ctx context.Context, p domain.Project) (domain.Project, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return domain.Project{}, fmt.Errorf("begin: %w", err)
	}
	defer tx.Rollback(ctx)

	const q = `
insert into projects (title, due_date)
values ($1, $2)
returning id, title, coalesce(display_photo, ''), date_created, due_date;
`
	var out domain.Project
	err = tx.QueryRow(ctx, q, p.Title, p.DueDate).
		Scan(&out.ID, &out.Title, &out.DisplayPhoto, &out.DateCreated, &out.DueDate)
	if err != nil {
		return domain.Project{}, fmt.Errorf("create project: %w", err)
	}

	if err := replaceMembers(ctx, tx, out.ID, p.Members); err != nil {
		return domain.Project{}, err
	}
	out.Members = dedupe(p.Members)

	if err := tx.Commit(ctx); err != nil {
		return domain.Project{}, fmt.Errorf("commit: %w", err)
	}
	return out, nil
}

func (r *Postgres) Get(ctx context.Context, id int64) (domain.Project, error) {
	const q = `
select id, title, coalesce(display_photo, ''), date_created, due_date
from projects
where id = $1;
`
	var out domain.Project
	err := r.db.QueryRow(ctx, q, id).
		Scan(&out.ID, &out.Title, &out.DisplayPhoto, &out.DateCreated, &out.DueDate)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.Project{}, domain.ErrNotFound
		}
		return domain.Project{}, err
	}

	members, err := r.membersOf(ctx, id)
	if err != nil {
		return domain.Project{}, err
	}
	out.Members = members
	return out, nil
}

func (r *Postgres) List(ctx context.Context, f Filter) ([]domain.Project, error) {
	const q = `
select id, title, coalesce(display_photo, ''), date_created, due_date
from projects
where ($1 = '' or title ilike '%' || $1 || '%')
order by id;
`
	rows, err := r.db.Query(ctx, q, f.Search)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]domain.Project, 0, 16)
	for rows.Next() {
		var p domain.Project
		if err := rows.Scan(&p.ID, &p.Title, &p.DisplayPhoto, &p.DateCreated, &p.DueDate); err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	if err := r.attachMembers(ctx, out); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *Postgres) Update(ctx context.Context, id int64, p domain.Project) (domain.Project, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return domain.Project{}, fmt.Errorf("begin: %w", err)
	}
	defer tx.Rollback(ctx)

	const q = `
update projects
set title = $2, due_date = $3
where id = $1
returning id, title, coalesce(display_photo, ''), date_created, due_date;
`
	var out domain.Project
	err = tx.QueryRow(ctx, q, id, p.Title, p.DueDate).
		Scan(&out.ID, &out.Title, &out.DisplayPhoto, &out.DateCreated, &out.DueDate)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.Project{}, domain.ErrNotFound
		}
		return domain.Project{}, err
	}

	if _, err := tx.Exec(ctx, `delete from project_members where project_id = $1;`, id); err != nil {
		return domain.Project{}, err
	}
	if err := replaceMembers(ctx, tx, id, p.Members); err != nil {
		return domain.Project{}, err
	}
	out.Members = dedupe(p.Members)

	if err := tx.Commit(ctx); err != nil {
		return domain.Project{}, fmt.Errorf("commit: %w", err)
	}
	return out, nil
}

// Delete removes the project row; tasks and membership rows go with it via
// ON DELETE CASCADE.
func (r *Postgres) Delete(ctx context.Context, id int64) error {
	ct, err := r.db.Exec(ctx, `delete from projects where id = $1;`, id)
	if err != nil {
		return err
	}
	if ct.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *Postgres) SetPhoto(ctx context.Context, id int64, path string) (domain.Project, error) {
	const q = `
update projects
set display_photo = $2
where id = $1
returning id, title, coalesce(display_photo, ''), date_created, due_date;
`
	var out domain.Project
	err := r.db.QueryRow(ctx, q, id, path).
		Scan(&out.ID, &out.Title, &out.DisplayPhoto, &out.DateCreated, &out.DueDate)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.Project{}, domain.ErrNotFound
		}
		return domain.Project{}, err
	}

	members, err := r.membersOf(ctx, id)
	if err != nil {
		return domain.Project{}, err
	}
	out.Members = members
	return out, nil
}

func (r *Postgres) PhotoPaths(ctx context.Context) ([]string, error) {
	rows, err := r.db.Query(ctx, `select display_photo from projects where display_photo is not null and display_photo <> '';`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []string
	for rows.Next() {
		var p string
		if err := rows.Scan(&p); err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

func (r *Postgres) membersOf(ctx context.Context, id int64) ([]int64, error) {
	rows, err := r.db.Query(ctx, `select user_id from project_members where project_id = $1 order by user_id;`, id)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]int64, 0, 4)
	for rows.Next() {
		var uid int64
		if err := rows.Scan(&uid); err != nil {
			return nil, err
		}
		out = append(out, uid)
	}
	return out, rows.Err()
}

func (r *Postgres) attachMembers(ctx context.Context, projects []domain.Project) error {
	if len(projects) == 0 {
		return nil
	}

	ids := make([]int64, len(projects))
	index := make(map[int64]int, len(projects))
	for i, p := range projects {
		ids[i] = p.ID
		index[p.ID] = i
		projects[i].Members = []int64{}
	}

	rows, err := r.db.Query(ctx,
		`select project_id, user_id from project_members where project_id = any($1) order by user_id;`, ids)
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var pid, uid int64
		if err := rows.Scan(&pid, &uid); err != nil {
			return err
		}
		if i, ok := index[pid]; ok {
			projects[i].Members = append(projects[i].Members, uid)
		}
	}
	return rows.Err()
}

func replaceMembers(ctx context.Context, tx pgx.Tx, projectID int64, members []int64) error {
	for _, uid := range dedupe(members) {
		if _, err := tx.Exec(ctx,
			`insert into project_members (project_id, user_id) values ($1, $2);`, projectID, uid); err != nil {
			return fmt.Errorf("add member %d: %w", uid, err)
		}
	}
	return nil
}

func dedupe(ids []int64) []int64 {
	seen := make(map[int64]bool, len(ids))
	out := make([]int64, 0, len(ids))
	for _, id := range ids {
		if !seen[id] {
			seen[id] = true
			out = append(out, id)
		}
	}
	return out
}
