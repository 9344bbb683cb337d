package domain

// Filter narrows a task listing. Nil fields are unconstrained; set fields
// must all match (logical AND).
type Filter struct {
	ProjectID *int64
	Completed *bool
}

// Matches reports whether t satisfies every set criterion of f.
func (f Filter) Matches(t Task) bool {
	if f.ProjectID != nil && t.ProjectID != *f.ProjectID {
		return false
	}
	if f.Completed != nil && t.Complete != *f.Completed {
		return false
	}
	return true
}

// Apply returns the subset of tasks matching f, preserving input order.
func (f Filter) Apply(tasks []Task) []Task {
	out := make([]Task, 0, len(tasks))
	for _, t := range tasks {
		if f.Matches(t) {
			out = append(out, t)
		}
	}
	return out
}
