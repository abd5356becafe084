package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/aussiebroadwan/taskboard/internal/taskboard/domain"
	"github.com/aussiebroadwan/taskboard/internal/taskboard/store"
	"github.com/aussiebroadwan/taskboard/pkg/idx"
	"github.com/aussiebroadwan/taskboard/pkg/slogx"
)

// TaskService is the only writer of tasks. Every operation checks access
// through the domain decision table and, once the store write succeeds,
// hands one event to the Notifier.
type TaskService struct {
	Store    store.Store
	Notifier Notifier // optional
	Now      Clock
}

// CreateTask validates in, makes actor the owner and persists the task.
func (s *TaskService) CreateTask(ctx context.Context, actor domain.Actor, in domain.TaskInput) (domain.TaskView, error) {
	if err := requireActor(actor); err != nil {
		return domain.TaskView{}, err
	}

	now := s.Now.now()
	if err := in.Normalize(now); err != nil {
		return domain.TaskView{}, err
	}

	task := domain.Task{
		ID:          idx.NewAt(now).String(),
		Title:       in.Title,
		Description: in.Description,
		Priority:    in.Priority,
		DueDate:     in.DueDate,
		OwnerID:     actor.UserID,
		Tags:        in.Tags,
		Version:     1,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	task.SetStatus(in.Status, now)

	created, err := s.Store.Tasks().CreateTask(ctx, task)
	if err != nil {
		return domain.TaskView{}, fmt.Errorf("create task: %w", err)
	}

	view, err := s.view(ctx, created, now)
	if err != nil {
		return domain.TaskView{}, err
	}

	s.emit(ctx, domain.Event{
		Type:     domain.EventTaskCreated,
		TaskID:   created.ID,
		Task:     &view,
		ActorID:  actor.UserID,
		Audience: created.Audience(),
		At:       now,
	})

	return view, nil
}

// GetTask returns the task if actor may view it.
func (s *TaskService) GetTask(ctx context.Context, actor domain.Actor, id string) (domain.TaskView, error) {
	if err := requireActor(actor); err != nil {
		return domain.TaskView{}, err
	}

	task, err := s.load(ctx, id)
	if err != nil {
		return domain.TaskView{}, err
	}
	if !domain.CanView(actor.UserID, &task) {
		return domain.TaskView{}, domain.AccessDenied("Access denied to this task")
	}

	return s.view(ctx, task, s.Now.now())
}

// ListTasks pages through the non-archived tasks actor owns or has been
// shared. The search term is applied to the returned page only, so the
// pagination counts ignore it and a page may come back short.
func (s *TaskService) ListTasks(ctx context.Context, actor domain.Actor, q domain.ListQuery) (domain.TaskPage, error) {
	if err := requireActor(actor); err != nil {
		return domain.TaskPage{}, err
	}
	if err := q.Normalize(); err != nil {
		return domain.TaskPage{}, err
	}

	now := s.Now.now()
	sq := store.TaskQuery{
		ViewerID: actor.UserID,
		Status:   q.Status,
		Priority: q.Priority,
		SortBy:   q.SortBy,
		Order:    q.Order,
		Offset:   q.Offset(),
		Limit:    q.Limit,
	}
	if q.Overdue {
		sq.OverdueAt = &now
	}

	tasks, total, err := s.Store.Tasks().ListTasks(ctx, sq)
	if err != nil {
		return domain.TaskPage{}, fmt.Errorf("list tasks: %w", err)
	}

	if term := strings.ToLower(strings.TrimSpace(q.Search)); term != "" {
		matched := tasks[:0]
		for _, t := range tasks {
			if strings.Contains(strings.ToLower(t.Title), term) ||
				strings.Contains(strings.ToLower(t.Description), term) {
				matched = append(matched, t)
			}
		}
		tasks = matched
	}

	views, err := s.views(ctx, tasks, now)
	if err != nil {
		return domain.TaskPage{}, err
	}

	return domain.TaskPage{
		Tasks:      views,
		Pagination: domain.NewPagination(q.Page, q.Limit, total),
	}, nil
}

// UpdateTask applies patch for an owner or edit sharee. The write is a
// compare-and-swap on the version read here; losing the race, or a patch
// carrying a stale version, is a conflict.
func (s *TaskService) UpdateTask(ctx context.Context, actor domain.Actor, id string, patch domain.TaskPatch) (domain.TaskView, error) {
	if err := requireActor(actor); err != nil {
		return domain.TaskView{}, err
	}

	current, err := s.load(ctx, id)
	if err != nil {
		return domain.TaskView{}, err
	}
	if !domain.CanEdit(actor.UserID, &current) {
		return domain.TaskView{}, domain.AccessDenied("You do not have permission to edit this task")
	}

	now := s.Now.now()
	if err := patch.Normalize(now); err != nil {
		return domain.TaskView{}, err
	}
	if patch.Version != nil && *patch.Version != current.Version {
		return domain.TaskView{}, domain.Conflict("Task was modified by someone else, reload and try again")
	}

	next := current.Clone()
	patch.Apply(&next, now)

	if err := s.replace(ctx, current, &next, now); err != nil {
		return domain.TaskView{}, err
	}

	view, err := s.view(ctx, next, now)
	if err != nil {
		return domain.TaskView{}, err
	}

	s.emit(ctx, domain.Event{
		Type:     domain.EventTaskUpdated,
		TaskID:   next.ID,
		Task:     &view,
		ActorID:  actor.UserID,
		Audience: next.Audience(),
		At:       now,
	})

	return view, nil
}

// DeleteTask removes the task and all of its shares. Owner only.
func (s *TaskService) DeleteTask(ctx context.Context, actor domain.Actor, id string) error {
	if err := requireActor(actor); err != nil {
		return err
	}

	task, err := s.load(ctx, id)
	if err != nil {
		return err
	}
	if !domain.CanDelete(actor.UserID, &task) {
		return domain.AccessDenied("Only the task owner can delete this task")
	}

	if err := s.Store.Tasks().DeleteTask(ctx, task.ID); err != nil {
		if isNotFound(err) {
			return domain.NotFound("Task not found")
		}
		return fmt.Errorf("delete task: %w", err)
	}

	s.emit(ctx, domain.Event{
		Type:     domain.EventTaskDeleted,
		TaskID:   task.ID,
		ActorID:  actor.UserID,
		Audience: task.Audience(),
		At:       s.Now.now(),
	})

	return nil
}

// ShareTask grants the user registered under email the given permission,
// or changes the permission they already hold. Owner only.
func (s *TaskService) ShareTask(ctx context.Context, actor domain.Actor, id, email string, perm domain.Permission) (domain.TaskView, error) {
	if err := requireActor(actor); err != nil {
		return domain.TaskView{}, err
	}

	verr := &domain.ValidationError{}
	email = domain.NormalizeEmail(email)
	if !domain.ValidEmail(email) {
		verr.Add("email", "Please provide a valid email address")
	}
	if perm == "" {
		perm = domain.PermissionRead
	} else if !perm.Valid() {
		verr.Add("permission", "Permission must be either read or edit")
	}
	if err := verr.Err(); err != nil {
		return domain.TaskView{}, err
	}

	current, err := s.load(ctx, id)
	if err != nil {
		return domain.TaskView{}, err
	}
	if !domain.CanShare(actor.UserID, &current) {
		return domain.TaskView{}, domain.AccessDenied("Only the task owner can share this task")
	}

	target, err := s.Store.Users().GetUserByEmail(ctx, email)
	if err != nil {
		if isNotFound(err) {
			return domain.TaskView{}, domain.NotFound("User not found with this email")
		}
		return domain.TaskView{}, fmt.Errorf("lookup share target: %w", err)
	}
	if target.ID == current.OwnerID {
		return domain.TaskView{}, domain.Invalid("email", "You cannot share a task with yourself")
	}

	now := s.Now.now()
	next := current.Clone()
	next.ShareWith(target.ID, perm, now)

	if err := s.replace(ctx, current, &next, now); err != nil {
		return domain.TaskView{}, err
	}

	view, err := s.view(ctx, next, now)
	if err != nil {
		return domain.TaskView{}, err
	}

	s.emit(ctx, domain.Event{
		Type:         domain.EventTaskShared,
		TaskID:       next.ID,
		Task:         &view,
		ActorID:      actor.UserID,
		TargetUserID: target.ID,
		Audience:     next.Audience(),
		At:           now,
	})

	return view, nil
}

// UnshareTask removes userID's share entry. Removing an entry that does not
// exist succeeds without writing or emitting anything. Owner only.
func (s *TaskService) UnshareTask(ctx context.Context, actor domain.Actor, id, userID string) (domain.TaskView, error) {
	if err := requireActor(actor); err != nil {
		return domain.TaskView{}, err
	}
	if strings.TrimSpace(userID) == "" {
		return domain.TaskView{}, domain.Invalid("userId", "User ID is required")
	}

	current, err := s.load(ctx, id)
	if err != nil {
		return domain.TaskView{}, err
	}
	if !domain.CanShare(actor.UserID, &current) {
		return domain.TaskView{}, domain.AccessDenied("Only the task owner can unshare this task")
	}

	now := s.Now.now()
	next := current.Clone()
	if !next.Unshare(userID) {
		return s.view(ctx, current, now)
	}

	if err := s.replace(ctx, current, &next, now); err != nil {
		return domain.TaskView{}, err
	}

	view, err := s.view(ctx, next, now)
	if err != nil {
		return domain.TaskView{}, err
	}

	s.emit(ctx, domain.Event{
		Type:         domain.EventTaskUnshared,
		TaskID:       next.ID,
		ActorID:      actor.UserID,
		TargetUserID: userID,
		Audience:     append(next.Audience(), userID),
		At:           now,
	})

	return view, nil
}

// Stats counts actor's visible, non-archived tasks by status and overdue.
func (s *TaskService) Stats(ctx context.Context, actor domain.Actor) (domain.Stats, error) {
	if err := requireActor(actor); err != nil {
		return domain.Stats{}, err
	}

	stats, err := s.Store.Tasks().Stats(ctx, actor.UserID, s.Now.now())
	if err != nil {
		return domain.Stats{}, fmt.Errorf("task stats: %w", err)
	}
	return stats, nil
}

// load fetches a task by its canonical id.
func (s *TaskService) load(ctx context.Context, id string) (domain.Task, error) {
	parsed, err := idx.Parse(id)
	if err != nil {
		return domain.Task{}, domain.Invalid("id", "Invalid task ID")
	}

	task, err := s.Store.Tasks().GetTask(ctx, parsed.String())
	if err != nil {
		if isNotFound(err) {
			return domain.Task{}, domain.NotFound("Task not found")
		}
		return domain.Task{}, fmt.Errorf("get task: %w", err)
	}
	return task, nil
}

// replace bumps next's version and timestamp and swaps it in for current.
func (s *TaskService) replace(ctx context.Context, current domain.Task, next *domain.Task, now time.Time) error {
	next.Version = current.Version + 1
	next.UpdatedAt = now

	err := s.Store.Tasks().UpdateTask(ctx, *next, current.Version)
	switch {
	case err == nil:
		return nil
	case errors.Is(err, store.ErrVersionConflict):
		return domain.Conflict("Task was modified by someone else, reload and try again")
	case isNotFound(err):
		return domain.NotFound("Task not found")
	default:
		return fmt.Errorf("update task: %w", err)
	}
}

func (s *TaskService) view(ctx context.Context, t domain.Task, now time.Time) (domain.TaskView, error) {
	users, err := usersByID(ctx, s.Store, t.Audience())
	if err != nil {
		return domain.TaskView{}, fmt.Errorf("resolve task users: %w", err)
	}
	return domain.NewTaskView(t, users, now), nil
}

func (s *TaskService) views(ctx context.Context, tasks []domain.Task, now time.Time) ([]domain.TaskView, error) {
	var ids []string
	for i := range tasks {
		ids = append(ids, tasks[i].Audience()...)
	}

	users, err := usersByID(ctx, s.Store, ids)
	if err != nil {
		return nil, fmt.Errorf("resolve task users: %w", err)
	}

	out := make([]domain.TaskView, len(tasks))
	for i, t := range tasks {
		out[i] = domain.NewTaskView(t, users, now)
	}
	return out, nil
}

// emit hands e to the notifier. Delivery is best effort: a failure is
// logged and never reaches the caller of the mutation.
func (s *TaskService) emit(ctx context.Context, e domain.Event) {
	if s.Notifier == nil {
		return
	}
	if err := s.Notifier.Publish(ctx, e); err != nil {
		slogx.FromContext(ctx).Warn("task event not delivered",
			slog.String("event", string(e.Type)),
			slog.String("task_id", e.TaskID),
			slog.Any("error", err),
		)
	}
}
