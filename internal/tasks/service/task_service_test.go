package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/benmore-apps/taskrabbit-backend/internal/httperr"
	projdomain "github.com/benmore-apps/taskrabbit-backend/internal/projects/domain"
	"github.com/benmore-apps/taskrabbit-backend/internal/tasks/domain"
	"github.com/benmore-apps/taskrabbit-backend/internal/tasks/repository"
)

type fakeProjects struct {
	known map[int64]bool
}

func (f fakeProjects) Get(_ context.Context, id int64) (projdomain.Project, error) {
	if !f.known[id] {
		return projdomain.Project{}, projdomain.ErrNotFound
	}
	return projdomain.Project{ID: id, Title: "p"}, nil
}

type spyInvalidator struct {
	calls []int64
}

func (s *spyInvalidator) Invalidate(_ context.Context, projectID int64) {
	s.calls = append(s.calls, projectID)
}

func newService() (*Service, *spyInvalidator) {
	spy := &spyInvalidator{}
	svc := New(repository.NewMemory(), fakeProjects{known: map[int64]bool{7: true}}, spy)
	return svc, spy
}

func i64(v int64) *int64 { return &v }

func TestCreateRequiresProject(t *testing.T) {
	ctx := context.Background()
	svc, _ := newService()

	_, err := svc.Create(ctx, Input{Title: "write docs"})
	var v *httperr.Validation
	require.ErrorAs(t, err, &v)
	assert.Equal(t, "project", v.Field)
	assert.Equal(t, "missing project ID in request data", v.Message)
}

func TestCreateRejectsUnknownProject(t *testing.T) {
	ctx := context.Background()
	svc, spy := newService()

	_, err := svc.Create(ctx, Input{Title: "write docs", ProjectID: i64(99)})
	var v *httperr.Validation
	require.ErrorAs(t, err, &v)
	assert.Equal(t, "project with provided ID does not exist", v.Message)
	assert.Empty(t, spy.calls)
}

func TestCreateTrimsTitleAndInvalidates(t *testing.T) {
	ctx := context.Background()
	svc, spy := newService()

	got, err := svc.Create(ctx, Input{Title: "  write docs  ", ProjectID: i64(7)})
	require.NoError(t, err)
	assert.Equal(t, "write docs", got.Title)
	assert.Equal(t, int64(7), got.ProjectID)
	assert.False(t, got.Complete)
	assert.False(t, got.DateCreated.IsZero())
	assert.Equal(t, []int64{7}, spy.calls)
}

func TestUpdateIgnoresProjectField(t *testing.T) {
	ctx := context.Background()
	svc, spy := newService()

	created, err := svc.Create(ctx, Input{Title: "original", ProjectID: i64(7)})
	require.NoError(t, err)

	updated, err := svc.Update(ctx, created.ID, Input{
		Title:     "renamed",
		ProjectID: i64(42), // a task never moves between projects
		Complete:  true,
	})
	require.NoError(t, err)
	assert.Equal(t, "renamed", updated.Title)
	assert.True(t, updated.Complete)
	assert.Equal(t, int64(7), updated.ProjectID)
	assert.Equal(t, []int64{7, 7}, spy.calls)
}

func TestUpdateValidatesTitle(t *testing.T) {
	ctx := context.Background()
	svc, _ := newService()

	created, err := svc.Create(ctx, Input{Title: "keep", ProjectID: i64(7)})
	require.NoError(t, err)

	_, err = svc.Update(ctx, created.ID, Input{Title: "  "})
	var v *httperr.Validation
	require.ErrorAs(t, err, &v)
	assert.Equal(t, "title", v.Field)
}

func TestDeleteInvalidatesOwningProject(t *testing.T) {
	ctx := context.Background()
	svc, spy := newService()

	created, err := svc.Create(ctx, Input{Title: "gone soon", ProjectID: i64(7)})
	require.NoError(t, err)
	spy.calls = nil

	require.NoError(t, svc.Delete(ctx, created.ID))
	assert.Equal(t, []int64{7}, spy.calls)

	_, err = svc.Get(ctx, created.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestDeleteMissingTask(t *testing.T) {
	ctx := context.Background()
	svc, spy := newService()

	err := svc.Delete(ctx, 123)
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.Empty(t, spy.calls)
}
