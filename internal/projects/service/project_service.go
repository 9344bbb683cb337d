package service

import (
	"context"
	"strings"
	"time"

	"github.com/benmore-apps/taskrabbit-backend/internal/httperr"
	"github.com/benmore-apps/taskrabbit-backend/internal/projects/domain"
	"github.com/benmore-apps/taskrabbit-backend/internal/projects/repository"
	taskdomain "github.com/benmore-apps/taskrabbit-backend/internal/tasks/domain"
	"github.com/benmore-apps/taskrabbit-backend/internal/users"
)

const dueDateLayout = "2006-01-02"

// TaskLister supplies the task rows the aggregation works over.
type TaskLister interface {
	List(ctx context.Context, f taskdomain.Filter) ([]taskdomain.Task, error)
}

// CountsCache is the optional task-count cache. A no-op implementation is
// acceptable everywhere one is required.
type CountsCache interface {
	Get(ctx context.Context, projectID int64) (domain.TaskCounts, bool)
	Set(ctx context.Context, projectID int64, c domain.TaskCounts)
	Invalidate(ctx context.Context, projectID int64)
}

// Detail is a project with its derived counts and resolved member users,
// ready for the detail payload.
type Detail struct {
	Project domain.Project
	Members []users.User
	Counts  domain.TaskCounts
}

// Input carries the validated-on-entry fields of a create or full update.
// DueDate is the raw "YYYY-MM-DD" string from the request, nil when absent.
type Input struct {
	Title   string
	DueDate *string
	Members []int64
}

// ListQuery narrows the project listing. Completed filters on derived
// completion state; Search is a case-insensitive title substring.
type ListQuery struct {
	Completed *bool
	Search    string
}

type Service struct {
	store repository.Store
	tasks TaskLister
	users users.Store
	cache CountsCache

	now func() time.Time
}

func New(store repository.Store, tasks TaskLister, userStore users.Store, cache CountsCache) *Service {
	if cache == nil {
		cache = noopCache{}
	}
	return &Service{
		store: store,
		tasks: tasks,
		users: userStore,
		cache: cache,
		now:   time.Now,
	}
}

func (s *Service) Create(ctx context.Context, in Input) (Detail, error) {
	p, err := s.validate(ctx, in)
	if err != nil {
		return Detail{}, err
	}

	created, err := s.store.Create(ctx, p)
	if err != nil {
		return Detail{}, err
	}
	return s.detail(ctx, created)
}

func (s *Service) Get(ctx context.Context, id int64) (Detail, error) {
	p, err := s.store.Get(ctx, id)
	if err != nil {
		return Detail{}, err
	}
	return s.detail(ctx, p)
}

func (s *Service) List(ctx context.Context, q ListQuery) ([]Detail, error) {
	projects, err := s.store.List(ctx, repository.Filter{Search: q.Search})
	if err != nil {
		return nil, err
	}

	// One pass over all tasks; counts are grouped in memory rather than
	// queried per project.
	allTasks, err := s.tasks.List(ctx, taskdomain.Filter{})
	if err != nil {
		return nil, err
	}
	byProject := make(map[int64][]taskdomain.Task, len(projects))
	for _, t := range allTasks {
		byProject[t.ProjectID] = append(byProject[t.ProjectID], t)
	}

	summaries := make([]domain.Summary, 0, len(projects))
	for _, p := range projects {
		summaries = append(summaries, domain.Summary{
			Project: p,
			Counts:  domain.CountTasks(byProject[p.ID]),
		})
	}

	if q.Completed != nil {
		summaries = domain.FilterByCompletion(summaries, *q.Completed)
	}

	memberIndex, err := s.resolveMembers(ctx, summaries)
	if err != nil {
		return nil, err
	}

	out := make([]Detail, 0, len(summaries))
	for _, sum := range summaries {
		out = append(out, Detail{
			Project: sum.Project,
			Members: pick(memberIndex, sum.Project.Members),
			Counts:  sum.Counts,
		})
	}
	return out, nil
}

func (s *Service) Update(ctx context.Context, id int64, in Input) (Detail, error) {
	p, err := s.validate(ctx, in)
	if err != nil {
		return Detail{}, err
	}

	updated, err := s.store.Update(ctx, id, p)
	if err != nil {
		return Detail{}, err
	}
	return s.detail(ctx, updated)
}

func (s *Service) Delete(ctx context.Context, id int64) error {
	if err := s.store.Delete(ctx, id); err != nil {
		return err
	}
	s.cache.Invalidate(ctx, id)
	return nil
}

// AttachPhoto records the stored photo name against the project.
func (s *Service) AttachPhoto(ctx context.Context, id int64, storedName string) (Detail, error) {
	p, err := s.store.SetPhoto(ctx, id, storedName)
	if err != nil {
		return Detail{}, err
	}
	return s.detail(ctx, p)
}

func (s *Service) validate(ctx context.Context, in Input) (domain.Project, error) {
	title := strings.TrimSpace(in.Title)
	if title == "" {
		return domain.Project{}, httperr.NewValidation("title", "title must not be empty")
	}

	var due *time.Time
	if in.DueDate != nil && *in.DueDate != "" {
		d, err := time.Parse(dueDateLayout, *in.DueDate)
		if err != nil {
			return domain.Project{}, httperr.NewValidation("due_date", "due_date must be YYYY-MM-DD")
		}
		today := s.today()
		if !d.After(today) {
			return domain.Project{}, httperr.NewValidation("due_date", "due_date must be strictly after the current date")
		}
		due = &d
	}

	if len(in.Members) > 0 {
		found, err := s.users.GetByIDs(ctx, in.Members)
		if err != nil {
			return domain.Project{}, err
		}
		known := make(map[int64]bool, len(found))
		for _, u := range found {
			known[u.ID] = true
		}
		for _, id := range in.Members {
			if !known[id] {
				return domain.Project{}, httperr.NewValidation("members", "unknown member id")
			}
		}
	}

	return domain.Project{Title: title, DueDate: due, Members: in.Members}, nil
}

func (s *Service) detail(ctx context.Context, p domain.Project) (Detail, error) {
	counts, ok := s.cache.Get(ctx, p.ID)
	if !ok {
		pid := p.ID
		tasks, err := s.tasks.List(ctx, taskdomain.Filter{ProjectID: &pid})
		if err != nil {
			return Detail{}, err
		}
		counts = domain.CountTasks(tasks)
		s.cache.Set(ctx, p.ID, counts)
	}

	members, err := s.users.GetByIDs(ctx, p.Members)
	if err != nil {
		return Detail{}, err
	}

	return Detail{Project: p, Members: members, Counts: counts}, nil
}

func (s *Service) resolveMembers(ctx context.Context, summaries []domain.Summary) (map[int64]users.User, error) {
	var all []int64
	seen := make(map[int64]bool)
	for _, sum := range summaries {
		for _, id := range sum.Project.Members {
			if !seen[id] {
				seen[id] = true
				all = append(all, id)
			}
		}
	}

	found, err := s.users.GetByIDs(ctx, all)
	if err != nil {
		return nil, err
	}

	index := make(map[int64]users.User, len(found))
	for _, u := range found {
		index[u.ID] = u
	}
	return index, nil
}

func (s *Service) today() time.Time {
	n := s.now().UTC()
	return time.Date(n.Year(), n.Month(), n.Day(), 0, 0, 0, 0, time.UTC)
}

type noopCache struct{}

func (noopCache) Get(context.Context, int64) (domain.TaskCounts, bool) { return domain.TaskCounts{}, false }
func (noopCache) Set(context.Context, int64, domain.TaskCounts)        {}
func (noopCache) Invalidate(context.Context, int64)                    {}

func pick(index map[int64]users.User, ids []int64) []users.User {
	out := make([]users.User, 0, len(ids))
	for _, id := range ids {
		if u, ok := index[id]; ok {
			out = append(out, u)
		}
	}
	return out
}
