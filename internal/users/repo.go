package users

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

type User struct {
	ID          int64
	Username    string
	Email       string
	DisplayName string
}

type Upsert struct {
	Username    string
	Email       string
	DisplayName string
}

// Store is the users record store consumed by the auth middleware and the
// project member projection.
type Store interface {
	EnsureUser(ctx context.Context, u Upsert) (User, error)
	GetByIDs(ctx context.Context, ids []int64) ([]User, error)
}

type Repo struct {
	db *pgxpool.Pool
}

func NewRepo(db *pgxpool.Pool) *Repo {
	return &Repo{db: db}
}

func (r *Repo) EnsureUser(ctx context.Context, u Upsert) (User, error) {
	if u.Username == "" {
		return User{}, fmt.Errorf("username required")
	}

	const q = `
insert into users (username, email, display_name, updated_at)
values ($1, nullif($2,''), nullif($3,''), now())
on conflict (username) do update
set
  email = coalesce(excluded.email, users.email),
  display_name = coalesce(excluded.display_name, users.display_name),
  updated_at = now()
returning id, username, coalesce(email, ''), coalesce(display_name, '');
`
	var out User
	err := r.db.QueryRow(ctx, q, u.Username, u.Email, u.DisplayName).
		Scan(&out.ID, &out.Username, &out.Email, &out.DisplayName)
	if err != nil {
		return User{}, err
	}
	return out, nil
}

// GetByIDs returns the users whose ids are in the given set, in id order.
// Ids that resolve to no user are simply absent from the result.
func (r *Repo) GetByIDs(ctx context.Context, ids []int64) ([]User, error) {
	if len(ids) == 0 {
		return []User{}, nil
	}

	const q = `
select id, username, coalesce(email, ''), coalesce(display_name, '')
from users
where id = any($1)
order by id;
`
	rows, err := r.db.Query(ctx, q, ids)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]User, 0, len(ids))
	for rows.Next() {
		var u User
		if err := rows.Scan(&u.ID, &u.Username, &u.Email, &u.DisplayName); err != nil {
			return nil, err
		}
		out = append(out, u)
	}
	return out, rows.Err()
}
