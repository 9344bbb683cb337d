package http

import (
	"time"

	"github.com/benmore-apps/taskrabbit-backend/internal/projects/service"
	"github.com/benmore-apps/taskrabbit-backend/internal/users"
)

type createReq struct {
	Title   string  `json:"title"`
	DueDate *string `json:"due_date"`
	Members []int64 `json:"members"`
}

type memberDTO struct {
	Username string `json:"username"`
	Email    string `json:"email"`
}

type taskCountsDTO struct {
	TotalTasks     int `json:"total_tasks"`
	CompletedTasks int `json:"completed_tasks"`
}

type projectDetailDTO struct {
	ID           int64         `json:"id"`
	Members      []memberDTO   `json:"members"`
	Title        string        `json:"title"`
	DisplayPhoto string        `json:"display_photo"`
	DateCreated  time.Time     `json:"date_created"`
	DueDate      *string       `json:"due_date"`
	TaskCounts   taskCountsDTO `json:"task_counts"`
}

// toDetailDTO is the one place the detail payload shape is assembled. Mapping
// is explicit per shape; nothing here is reflection-driven.
func toDetailDTO(d service.Detail) projectDetailDTO {
	var due *string
	if d.Project.DueDate != nil {
		s := d.Project.DueDate.Format("2006-01-02")
		due = &s
	}

	return projectDetailDTO{
		ID:           d.Project.ID,
		Members:      toMemberDTOs(d.Members),
		Title:        d.Project.Title,
		DisplayPhoto: d.Project.DisplayPhoto,
		DateCreated:  d.Project.DateCreated,
		DueDate:      due,
		TaskCounts: taskCountsDTO{
			TotalTasks:     d.Counts.Total,
			CompletedTasks: d.Counts.Completed,
		},
	}
}

func toDetailDTOs(items []service.Detail) []projectDetailDTO {
	out := make([]projectDetailDTO, 0, len(items))
	for _, d := range items {
		out = append(out, toDetailDTO(d))
	}
	return out
}

func toMemberDTOs(members []users.User) []memberDTO {
	out := make([]memberDTO, 0, len(members))
	for _, u := range members {
		out = append(out, memberDTO{Username: u.Username, Email: u.Email})
	}
	return out
}
