package domain

import (
	"errors"
	"time"
)

var ErrNotFound = errors.New("project not found")

// Project is a unit of work containing zero or more tasks and members.
// Members holds user ids; the HTTP layer resolves them to a
// {username, email} projection for detail payloads.
type Project struct {
	ID           int64
	Title        string
	DisplayPhoto string
	DateCreated  time.Time
	DueDate      *time.Time
	Members      []int64
}
