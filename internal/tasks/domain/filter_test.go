package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func ptr[T any](v T) *T { return &v }

func TestFilterMatches(t *testing.T) {
	task := Task{ID: 1, Title: "write report", ProjectID: 7, Complete: true}

	t.Run("empty filter matches everything", func(t *testing.T) {
		assert.True(t, Filter{}.Matches(task))
	})

	t.Run("project criterion", func(t *testing.T) {
		assert.True(t, Filter{ProjectID: ptr(int64(7))}.Matches(task))
		assert.False(t, Filter{ProjectID: ptr(int64(8))}.Matches(task))
	})

	t.Run("completed criterion", func(t *testing.T) {
		assert.True(t, Filter{Completed: ptr(true)}.Matches(task))
		assert.False(t, Filter{Completed: ptr(false)}.Matches(task))
	})

	t.Run("criteria compose with AND", func(t *testing.T) {
		assert.True(t, Filter{ProjectID: ptr(int64(7)), Completed: ptr(true)}.Matches(task))
		assert.False(t, Filter{ProjectID: ptr(int64(7)), Completed: ptr(false)}.Matches(task))
		assert.False(t, Filter{ProjectID: ptr(int64(9)), Completed: ptr(true)}.Matches(task))
	})
}

func TestFilterApply(t *testing.T) {
	tasks := []Task{
		{ID: 1, ProjectID: 1, Complete: true},
		{ID: 2, ProjectID: 1, Complete: false},
		{ID: 3, ProjectID: 2, Complete: true},
		{ID: 4, ProjectID: 2, Complete: true},
	}

	t.Run("no criteria returns all in order", func(t *testing.T) {
		got := Filter{}.Apply(tasks)
		assert.Len(t, got, 4)
		assert.Equal(t, int64(1), got[0].ID)
		assert.Equal(t, int64(4), got[3].ID)
	})

	t.Run("project and completed", func(t *testing.T) {
		got := Filter{ProjectID: ptr(int64(2)), Completed: ptr(true)}.Apply(tasks)
		assert.Len(t, got, 2)
		for _, task := range got {
			assert.Equal(t, int64(2), task.ProjectID)
			assert.True(t, task.Complete)
		}
	})

	t.Run("no matches yields empty non-nil slice", func(t *testing.T) {
		got := Filter{ProjectID: ptr(int64(99))}.Apply(tasks)
		assert.NotNil(t, got)
		assert.Empty(t, got)
	})
}
