package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"

	taskdomain "github.com/benmore-apps/taskrabbit-backend/internal/tasks/domain"
)

func tasksFor(projectID int64, complete ...bool) []taskdomain.Task {
	out := make([]taskdomain.Task, 0, len(complete))
	for i, c := range complete {
		out = append(out, taskdomain.Task{
			ID:        int64(i + 1),
			Title:     "task",
			ProjectID: projectID,
			Complete:  c,
		})
	}
	return out
}

func TestCountTasks(t *testing.T) {
	t.Run("zero tasks", func(t *testing.T) {
		c := CountTasks(nil)
		assert.Equal(t, 0, c.Total)
		assert.Equal(t, 0, c.Completed)
	})

	t.Run("all complete", func(t *testing.T) {
		c := CountTasks(tasksFor(1, true, true, true))
		assert.Equal(t, 3, c.Total)
		assert.Equal(t, 3, c.Completed)
	})

	t.Run("partially complete", func(t *testing.T) {
		c := CountTasks(tasksFor(1, true, false, false))
		assert.Equal(t, 3, c.Total)
		assert.Equal(t, 1, c.Completed)
	})

	t.Run("completed never exceeds total", func(t *testing.T) {
		for _, flags := range [][]bool{nil, {true}, {false}, {true, false, true}} {
			c := CountTasks(tasksFor(1, flags...))
			assert.LessOrEqual(t, c.Completed, c.Total)
		}
	})
}

func TestIsCompleted(t *testing.T) {
	t.Run("vacuously true with zero tasks", func(t *testing.T) {
		assert.True(t, TaskCounts{}.IsCompleted())
	})

	t.Run("true when all tasks complete", func(t *testing.T) {
		assert.True(t, TaskCounts{Total: 3, Completed: 3}.IsCompleted())
	})

	t.Run("false when any task incomplete", func(t *testing.T) {
		assert.False(t, TaskCounts{Total: 3, Completed: 1}.IsCompleted())
		assert.False(t, TaskCounts{Total: 1, Completed: 0}.IsCompleted())
	})
}

func TestFilterByCompletion(t *testing.T) {
	empty := Summary{Project: Project{ID: 1, Title: "Empty"}, Counts: CountTasks(nil)}
	done := Summary{Project: Project{ID: 2, Title: "Done"}, Counts: CountTasks(tasksFor(2, true, true, true))}
	inProgress := Summary{Project: Project{ID: 3, Title: "Rolling"}, Counts: CountTasks(tasksFor(3, true, false, false))}
	untouched := Summary{Project: Project{ID: 4, Title: "Untouched"}, Counts: CountTasks(tasksFor(4, false, false))}

	all := []Summary{empty, done, inProgress, untouched}

	t.Run("completed bucket includes zero-task projects", func(t *testing.T) {
		got := FilterByCompletion(all, true)
		ids := summaryIDs(got)
		assert.Equal(t, []int64{1, 2}, ids)
	})

	t.Run("false bucket only contains in-progress projects", func(t *testing.T) {
		got := FilterByCompletion(all, false)
		ids := summaryIDs(got)
		// A zero-task project is excluded, and so is a project with zero
		// completed tasks: the false bucket means "in progress".
		assert.Equal(t, []int64{3}, ids)
	})

	t.Run("zero-task project appears in neither exclusive listing twice", func(t *testing.T) {
		inTrue := summaryIDs(FilterByCompletion(all, true))
		inFalse := summaryIDs(FilterByCompletion(all, false))
		assert.Contains(t, inTrue, int64(1))
		assert.NotContains(t, inFalse, int64(1))
	})
}

func TestMatchesTitle(t *testing.T) {
	p := Project{Title: "Benmore Rollout"}

	assert.True(t, p.MatchesTitle(""))
	assert.True(t, p.MatchesTitle("benmore"))
	assert.True(t, p.MatchesTitle("ROLL"))
	assert.False(t, p.MatchesTitle("archive"))
}

func summaryIDs(items []Summary) []int64 {
	out := make([]int64, 0, len(items))
	for _, s := range items {
		out = append(out, s.Project.ID)
	}
	return out
}
