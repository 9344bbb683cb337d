package service

import (
	"context"
	"errors"
	"strings"

	"github.com/benmore-apps/taskrabbit-backend/internal/httperr"
	projdomain "github.com/benmore-apps/taskrabbit-backend/internal/projects/domain"
	"github.com/benmore-apps/taskrabbit-backend/internal/tasks/domain"
	"github.com/benmore-apps/taskrabbit-backend/internal/tasks/repository"
)

// ProjectGetter resolves a project id during task creation. Only existence
// matters here.
type ProjectGetter interface {
	Get(ctx context.Context, id int64) (projdomain.Project, error)
}

// Invalidator drops a project's cached task counts after a task mutation.
type Invalidator interface {
	Invalidate(ctx context.Context, projectID int64)
}

// Input is the body of a task create or full update. ProjectID is required on
// create and ignored on update: a task's project is fixed at creation.
type Input struct {
	Title     string
	ProjectID *int64
	Complete  bool
}

type Service struct {
	store    repository.Store
	projects ProjectGetter
	cache    Invalidator
}

func New(store repository.Store, projects ProjectGetter, cache Invalidator) *Service {
	if cache == nil {
		cache = noopInvalidator{}
	}
	return &Service{store: store, projects: projects, cache: cache}
}

func (s *Service) Create(ctx context.Context, in Input) (domain.Task, error) {
	title := strings.TrimSpace(in.Title)
	if title == "" {
		return domain.Task{}, httperr.NewValidation("title", "title must not be empty")
	}
	if in.ProjectID == nil {
		return domain.Task{}, httperr.NewValidation("project", "missing project ID in request data")
	}

	if _, err := s.projects.Get(ctx, *in.ProjectID); err != nil {
		if errors.Is(err, projdomain.ErrNotFound) {
			return domain.Task{}, httperr.NewValidation("project", "project with provided ID does not exist")
		}
		return domain.Task{}, err
	}

	created, err := s.store.Create(ctx, domain.Task{
		Title:     title,
		ProjectID: *in.ProjectID,
		Complete:  in.Complete,
	})
	if err != nil {
		return domain.Task{}, err
	}

	s.cache.Invalidate(ctx, created.ProjectID)
	return created, nil
}

func (s *Service) Get(ctx context.Context, id int64) (domain.Task, error) {
	return s.store.Get(ctx, id)
}

func (s *Service) List(ctx context.Context, f domain.Filter) ([]domain.Task, error) {
	return s.store.List(ctx, f)
}

func (s *Service) Update(ctx context.Context, id int64, in Input) (domain.Task, error) {
	title := strings.TrimSpace(in.Title)
	if title == "" {
		return domain.Task{}, httperr.NewValidation("title", "title must not be empty")
	}

	updated, err := s.store.Update(ctx, id, domain.Task{Title: title, Complete: in.Complete})
	if err != nil {
		return domain.Task{}, err
	}

	s.cache.Invalidate(ctx, updated.ProjectID)
	return updated, nil
}

func (s *Service) Delete(ctx context.Context, id int64) error {
	t, err := s.store.Get(ctx, id)
	if err != nil {
		return err
	}
	if err := s.store.Delete(ctx, id); err != nil {
		return err
	}

	s.cache.Invalidate(ctx, t.ProjectID)
	return nil
}

type noopInvalidator struct{}

func (noopInvalidator) Invalidate(context.Context, int64) {}
