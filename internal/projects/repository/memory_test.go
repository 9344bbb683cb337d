package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/benmore-apps/taskrabbit-backend/internal/projects/domain"
	taskdomain "github.com/benmore-apps/taskrabbit-backend/internal/tasks/domain"
	taskrepo "github.com/benmore-apps/taskrabbit-backend/internal/tasks/repository"
)

func newStores() (*Memory, *taskrepo.Memory) {
	tasks := taskrepo.NewMemory()
	return NewMemory(tasks), tasks
}

func TestMemoryCRUD(t *testing.T) {
	ctx := context.Background()
	store, _ := newStores()

	due := time.Date(2027, 3, 1, 0, 0, 0, 0, time.UTC)
	created, err := store.Create(ctx, domain.Project{
		Title:   "Website relaunch",
		DueDate: &due,
		Members: []int64{2, 1, 2},
	})
	require.NoError(t, err)
	assert.Equal(t, int64(1), created.ID)
	assert.False(t, created.DateCreated.IsZero())
	// duplicate member ids collapse; sets have no duplicates
	assert.Equal(t, []int64{2, 1}, created.Members)

	got, err := store.Get(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.Title, got.Title)

	updated, err := store.Update(ctx, created.ID, domain.Project{
		Title:   "Website relaunch v2",
		Members: []int64{3},
	})
	require.NoError(t, err)
	assert.Equal(t, "Website relaunch v2", updated.Title)
	assert.Nil(t, updated.DueDate)
	assert.Equal(t, []int64{3}, updated.Members)
	assert.Equal(t, created.DateCreated, updated.DateCreated)

	require.NoError(t, store.Delete(ctx, created.ID))
	_, err = store.Get(ctx, created.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestMemoryReturnsCopies(t *testing.T) {
	ctx := context.Background()
	store, _ := newStores()

	created, err := store.Create(ctx, domain.Project{Title: "p", Members: []int64{1}})
	require.NoError(t, err)

	created.Members[0] = 99

	got, err := store.Get(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, []int64{1}, got.Members)
}

func TestMemoryListSearch(t *testing.T) {
	ctx := context.Background()
	store, _ := newStores()

	for _, title := range []string{"Acme Payroll", "Benmore Rollout", "acme cleanup"} {
		_, err := store.Create(ctx, domain.Project{Title: title})
		require.NoError(t, err)
	}

	all, err := store.List(ctx, Filter{})
	require.NoError(t, err)
	require.Len(t, all, 3)
	// insertion order
	assert.Equal(t, "Acme Payroll", all[0].Title)

	matched, err := store.List(ctx, Filter{Search: "ACME"})
	require.NoError(t, err)
	require.Len(t, matched, 2)
	assert.Equal(t, "Acme Payroll", matched[0].Title)
	assert.Equal(t, "acme cleanup", matched[1].Title)
}

func TestMemoryDeleteCascadesToTasks(t *testing.T) {
	ctx := context.Background()
	store, tasks := newStores()

	p, err := store.Create(ctx, domain.Project{Title: "doomed"})
	require.NoError(t, err)

	var taskIDs []int64
	for i := 0; i < 3; i++ {
		task, err := tasks.Create(ctx, taskdomain.Task{Title: "t", ProjectID: p.ID})
		require.NoError(t, err)
		taskIDs = append(taskIDs, task.ID)
	}

	require.NoError(t, store.Delete(ctx, p.ID))

	for _, id := range taskIDs {
		_, err := tasks.Get(ctx, id)
		assert.ErrorIs(t, err, taskdomain.ErrNotFound)
	}
}

func TestMemoryPhotoPaths(t *testing.T) {
	ctx := context.Background()
	store, _ := newStores()

	a, err := store.Create(ctx, domain.Project{Title: "a"})
	require.NoError(t, err)
	_, err = store.Create(ctx, domain.Project{Title: "b"})
	require.NoError(t, err)

	updated, err := store.SetPhoto(ctx, a.ID, "abc.png")
	require.NoError(t, err)
	assert.Equal(t, "abc.png", updated.DisplayPhoto)

	paths, err := store.PhotoPaths(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"abc.png"}, paths)
}
