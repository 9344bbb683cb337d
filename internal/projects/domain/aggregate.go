package domain

import (
	"strings"

	taskdomain "github.com/benmore-apps/taskrabbit-backend/internal/tasks/domain"
)

// TaskCounts are the derived totals for a project's tasks. They are computed
// from a snapshot of store state and never persisted.
type TaskCounts struct {
	Total     int
	Completed int
}

// CountTasks tallies the given tasks. Defined for empty input: both counts
// are zero.
func CountTasks(tasks []taskdomain.Task) TaskCounts {
	c := TaskCounts{Total: len(tasks)}
	for _, t := range tasks {
		if t.Complete {
			c.Completed++
		}
	}
	return c
}

// IsCompleted reports whether every task is complete. A project with zero
// tasks counts as completed: completed == total holds vacuously.
func (c TaskCounts) IsCompleted() bool {
	return c.Completed == c.Total
}

// Summary pairs a project with its derived counts for filtering and rendering.
type Summary struct {
	Project Project
	Counts  TaskCounts
}

// FilterByCompletion buckets summaries by derived completion state.
//
// wantCompleted=true returns projects where IsCompleted holds, which includes
// zero-task projects. wantCompleted=false returns projects that are in
// progress: not completed AND at least one task done. The buckets are
// asymmetric, so a zero-task project appears under true and is absent from
// false.
func FilterByCompletion(items []Summary, wantCompleted bool) []Summary {
	out := make([]Summary, 0, len(items))
	for _, s := range items {
		if wantCompleted {
			if s.Counts.IsCompleted() {
				out = append(out, s)
			}
			continue
		}
		if !s.Counts.IsCompleted() && s.Counts.Completed > 0 {
			out = append(out, s)
		}
	}
	return out
}

// MatchesTitle reports a case-insensitive substring match on the project title.
// An empty term matches everything.
func (p Project) MatchesTitle(term string) bool {
	if term == "" {
		return true
	}
	return strings.Contains(strings.ToLower(p.Title), strings.ToLower(term))
}
