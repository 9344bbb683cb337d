package http

import (
	"time"

	"github.com/benmore-apps/taskrabbit-backend/internal/tasks/domain"
)

type taskReq struct {
	Title    string `json:"title"`
	Project  *int64 `json:"project"`
	Complete bool   `json:"complete"`
}

type taskDTO struct {
	ID          int64     `json:"id"`
	Title       string    `json:"title"`
	DateCreated time.Time `json:"date_created"`
	Project     int64     `json:"project"`
	Complete    bool      `json:"complete"`
}

func toDTO(t domain.Task) taskDTO {
	return taskDTO{
		ID:          t.ID,
		Title:       t.Title,
		DateCreated: t.DateCreated,
		Project:     t.ProjectID,
		Complete:    t.Complete,
	}
}

func toDTOs(tasks []domain.Task) []taskDTO {
	out := make([]taskDTO, 0, len(tasks))
	for _, t := range tasks {
		out = append(out, toDTO(t))
	}
	return out
}
