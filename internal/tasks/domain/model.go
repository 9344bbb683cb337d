package domain

import (
	"errors"
	"time"
)

var ErrNotFound = errors.New("task not found")

// Task is an atomic unit of work belonging to exactly one project.
type Task struct {
	ID          int64     `json:"id"`
	Title       string    `json:"title"`
	DateCreated time.Time `json:"date_created"`
	ProjectID   int64     `json:"project"`
	Complete    bool      `json:"complete"`
}
