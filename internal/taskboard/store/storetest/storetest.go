// Package storetest is a conformance suite every store driver must pass.
package storetest

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/aussiebroadwan/taskboard/internal/taskboard/domain"
	"github.com/aussiebroadwan/taskboard/internal/taskboard/store"
	"github.com/aussiebroadwan/taskboard/pkg/idx"
	"github.com/stretchr/testify/require"
)

// Base is the fixed clock used by the suite. Drivers keep millisecond
// precision so it is whole seconds.
var Base = time.Date(2025, 3, 14, 9, 0, 0, 0, time.UTC)

// Factory returns an empty, migrated store. It is called once per subtest.
type Factory func(t *testing.T) store.Store

// Run executes the suite against stores produced by newStore.
func Run(t *testing.T, newStore Factory) {
	t.Run("users", func(t *testing.T) { testUsers(t, newStore(t)) })
	t.Run("task lifecycle", func(t *testing.T) { testTaskLifecycle(t, newStore(t)) })
	t.Run("list tasks", func(t *testing.T) { testListTasks(t, newStore(t)) })
	t.Run("overdue and stats", func(t *testing.T) { testOverdueAndStats(t, newStore(t)) })
}

// SeedUser inserts a local user with the given email.
func SeedUser(t *testing.T, s store.Store, email string) domain.User {
	t.Helper()

	u := domain.User{
		ID:        idx.New().String(),
		Email:     email,
		Name:      email,
		Provider:  domain.ProviderLocal,
		CreatedAt: Base,
		UpdatedAt: Base,
	}
	require.NoError(t, s.Users().CreateUser(context.Background(), u))
	return u
}

// NewTask returns a pending, medium priority task at version 1.
func NewTask(owner, title string, at time.Time) domain.Task {
	return domain.Task{
		ID:        idx.NewAt(at).String(),
		Title:     title,
		Status:    domain.StatusPending,
		Priority:  domain.PriorityMedium,
		OwnerID:   owner,
		Version:   1,
		CreatedAt: at,
		UpdatedAt: at,
	}
}

func testUsers(t *testing.T, s store.Store) {
	ctx := context.Background()
	alice := SeedUser(t, s, "alice@x.com")

	got, err := s.Users().GetUserByEmail(ctx, "alice@x.com")
	require.NoError(t, err)
	require.Equal(t, alice.ID, got.ID)
	require.True(t, Base.Equal(got.CreatedAt))
	require.Nil(t, got.LastLoginAt)

	_, err = s.Users().GetUserByEmail(ctx, "nobody@x.com")
	require.ErrorIs(t, err, store.ErrNotFound)

	_, err = s.Users().GetUserByGoogleID(ctx, "")
	require.ErrorIs(t, err, store.ErrNotFound)

	dup := alice
	dup.ID = idx.New().String()
	require.ErrorIs(t, s.Users().CreateUser(ctx, dup), store.ErrAlreadyExists)

	later := Base.Add(time.Hour)
	require.NoError(t, s.Users().UpdateProfile(ctx, alice.ID, "Alice", "https://img/a.png", later))
	require.NoError(t, s.Users().TouchLastLogin(ctx, alice.ID, later))
	require.NoError(t, s.Users().LinkGoogle(ctx, alice.ID, "g-123", "", later))

	got, err = s.Users().GetUserByGoogleID(ctx, "g-123")
	require.NoError(t, err)
	require.Equal(t, "Alice", got.Name)
	require.Equal(t, "https://img/a.png", got.Avatar)
	require.True(t, got.IsVerified)
	require.Equal(t, domain.ProviderGoogle, got.Provider)
	require.NotNil(t, got.LastLoginAt)
	require.True(t, later.Equal(*got.LastLoginAt))

	require.ErrorIs(t, s.Users().UpdateProfile(ctx, "missing", "x", "", later), store.ErrNotFound)

	bob := SeedUser(t, s, "bob@x.com")
	users, err := s.Users().ListUsersByIDs(ctx, []string{alice.ID, bob.ID, "missing"})
	require.NoError(t, err)
	require.Len(t, users, 2)

	users, err = s.Users().ListUsersByIDs(ctx, nil)
	require.NoError(t, err)
	require.Empty(t, users)
}

func testTaskLifecycle(t *testing.T, s store.Store) {
	ctx := context.Background()
	alice := SeedUser(t, s, "alice@x.com")
	bob := SeedUser(t, s, "bob@x.com")

	due := Base.Add(48 * time.Hour)
	task := NewTask(alice.ID, "Write report", Base)
	task.DueDate = &due
	task.Tags = []string{"docs", "q1"}
	task.ShareWith(bob.ID, domain.PermissionRead, Base)

	created, err := s.Tasks().CreateTask(ctx, task)
	require.NoError(t, err)
	require.NotZero(t, created.Seq)

	got, err := s.Tasks().GetTask(ctx, task.ID)
	require.NoError(t, err)
	require.Equal(t, created.Seq, got.Seq)
	require.Equal(t, "Write report", got.Title)
	require.Equal(t, []string{"docs", "q1"}, got.Tags)
	require.NotNil(t, got.DueDate)
	require.True(t, due.Equal(*got.DueDate))
	require.Len(t, got.SharedWith, 1)
	require.Equal(t, bob.ID, got.SharedWith[0].UserID)
	require.Equal(t, domain.PermissionRead, got.SharedWith[0].Permission)
	require.Equal(t, int64(1), got.Version)

	second, err := s.Tasks().CreateTask(ctx, NewTask(alice.ID, "second", Base))
	require.NoError(t, err)
	require.Greater(t, second.Seq, created.Seq)

	t.Run("compare and swap", func(t *testing.T) {
		next := got.Clone()
		next.ShareWith(bob.ID, domain.PermissionEdit, Base)
		next.SetStatus(domain.StatusCompleted, Base.Add(time.Hour))
		next.Version = got.Version + 1
		next.UpdatedAt = Base.Add(time.Hour)
		require.NoError(t, s.Tasks().UpdateTask(ctx, next, got.Version))

		stale := got.Clone()
		stale.Title = "stale"
		stale.Version = got.Version + 1
		require.ErrorIs(t, s.Tasks().UpdateTask(ctx, stale, got.Version), store.ErrVersionConflict)

		reread, err := s.Tasks().GetTask(ctx, task.ID)
		require.NoError(t, err)
		require.Equal(t, "Write report", reread.Title)
		require.Equal(t, int64(2), reread.Version)
		require.Len(t, reread.SharedWith, 1)
		require.Equal(t, domain.PermissionEdit, reread.SharedWith[0].Permission)
		require.NotNil(t, reread.CompletedAt)
	})

	t.Run("update missing task", func(t *testing.T) {
		ghost := NewTask(alice.ID, "ghost", Base)
		require.ErrorIs(t, s.Tasks().UpdateTask(ctx, ghost, 1), store.ErrNotFound)
	})

	t.Run("delete", func(t *testing.T) {
		require.NoError(t, s.Tasks().DeleteTask(ctx, task.ID))
		_, err := s.Tasks().GetTask(ctx, task.ID)
		require.ErrorIs(t, err, store.ErrNotFound)
		require.ErrorIs(t, s.Tasks().DeleteTask(ctx, task.ID), store.ErrNotFound)

		tasks, total, err := s.Tasks().ListTasks(ctx, store.TaskQuery{ViewerID: bob.ID, Limit: 10})
		require.NoError(t, err)
		require.Zero(t, total)
		require.Empty(t, tasks)
	})
}

func testListTasks(t *testing.T, s store.Store) {
	ctx := context.Background()
	alice := SeedUser(t, s, "alice@x.com")
	bob := SeedUser(t, s, "bob@x.com")
	carol := SeedUser(t, s, "carol@x.com")

	priorities := []domain.Priority{
		domain.PriorityUrgent, domain.PriorityLow, domain.PriorityHigh, domain.PriorityMedium,
	}

	// All created at the same instant so seq alone decides order.
	for i := range 15 {
		task := NewTask(alice.ID, fmt.Sprintf("task %02d", i), Base)
		task.Priority = priorities[i%len(priorities)]
		if i == 0 {
			task.ShareWith(bob.ID, domain.PermissionRead, Base)
		}
		if i == 1 {
			task.IsArchived = true
		}
		_, err := s.Tasks().CreateTask(ctx, task)
		require.NoError(t, err)
	}
	_, err := s.Tasks().CreateTask(ctx, NewTask(carol.ID, "carol's", Base))
	require.NoError(t, err)

	t.Run("visibility excludes archived", func(t *testing.T) {
		tasks, total, err := s.Tasks().ListTasks(ctx, store.TaskQuery{ViewerID: alice.ID, Limit: 100})
		require.NoError(t, err)
		require.Equal(t, 14, total)
		require.Len(t, tasks, 14)

		tasks, total, err = s.Tasks().ListTasks(ctx, store.TaskQuery{ViewerID: bob.ID, Limit: 100})
		require.NoError(t, err)
		require.Equal(t, 1, total)
		require.Equal(t, "task 00", tasks[0].Title)
		require.Len(t, tasks[0].SharedWith, 1)
	})

	t.Run("paging breaks ties by seq", func(t *testing.T) {
		q := store.TaskQuery{
			ViewerID: alice.ID,
			SortBy:   domain.SortCreatedAt,
			Order:    domain.SortDesc,
			Limit:    10,
		}
		first, total, err := s.Tasks().ListTasks(ctx, q)
		require.NoError(t, err)
		require.Equal(t, 14, total)
		require.Len(t, first, 10)
		require.Equal(t, "task 14", first[0].Title)

		q.Offset = 10
		second, _, err := s.Tasks().ListTasks(ctx, q)
		require.NoError(t, err)
		require.Len(t, second, 4)
		require.Equal(t, "task 00", second[3].Title)

		q.Order = domain.SortAsc
		q.Offset = 0
		asc, _, err := s.Tasks().ListTasks(ctx, q)
		require.NoError(t, err)
		require.Equal(t, "task 00", asc[0].Title)
		require.Equal(t, "task 02", asc[1].Title)
	})

	t.Run("priority sorts by rank", func(t *testing.T) {
		q := store.TaskQuery{
			ViewerID: alice.ID,
			SortBy:   domain.SortPriority,
			Order:    domain.SortAsc,
			Limit:    100,
		}
		tasks, _, err := s.Tasks().ListTasks(ctx, q)
		require.NoError(t, err)
		require.Equal(t, domain.PriorityLow, tasks[0].Priority)
		for i := 1; i < len(tasks); i++ {
			require.LessOrEqual(t, tasks[i-1].Priority.Rank(), tasks[i].Priority.Rank())
		}
	})

	t.Run("title sort", func(t *testing.T) {
		q := store.TaskQuery{ViewerID: alice.ID, SortBy: domain.SortTitle, Order: domain.SortDesc, Limit: 1}
		tasks, _, err := s.Tasks().ListTasks(ctx, q)
		require.NoError(t, err)
		require.Equal(t, "task 14", tasks[0].Title)
	})

	t.Run("filters", func(t *testing.T) {
		q := store.TaskQuery{ViewerID: alice.ID, Priority: domain.PriorityUrgent, Limit: 100}
		tasks, total, err := s.Tasks().ListTasks(ctx, q)
		require.NoError(t, err)
		require.Equal(t, 4, total)
		for _, task := range tasks {
			require.Equal(t, domain.PriorityUrgent, task.Priority)
		}

		q = store.TaskQuery{ViewerID: alice.ID, Status: domain.StatusCompleted, Limit: 100}
		_, total, err = s.Tasks().ListTasks(ctx, q)
		require.NoError(t, err)
		require.Zero(t, total)
	})
}

func testOverdueAndStats(t *testing.T, s store.Store) {
	ctx := context.Background()
	alice := SeedUser(t, s, "alice@x.com")
	bob := SeedUser(t, s, "bob@x.com")

	yesterday := Base.Add(-24 * time.Hour)
	tomorrow := Base.Add(24 * time.Hour)

	overdue := NewTask(alice.ID, "late", Base.Add(-48*time.Hour))
	overdue.DueDate = &yesterday

	doneLate := NewTask(alice.ID, "done late", Base.Add(-48*time.Hour))
	doneLate.DueDate = &yesterday
	doneLate.SetStatus(domain.StatusCompleted, Base)

	upcoming := NewTask(alice.ID, "upcoming", Base)
	upcoming.DueDate = &tomorrow
	upcoming.Status = domain.StatusInProgress
	upcoming.ShareWith(bob.ID, domain.PermissionEdit, Base)

	archived := NewTask(alice.ID, "archived", Base)
	archived.DueDate = &yesterday
	archived.IsArchived = true

	for _, task := range []domain.Task{overdue, doneLate, upcoming, archived} {
		_, err := s.Tasks().CreateTask(ctx, task)
		require.NoError(t, err)
	}

	now := Base
	tasks, total, err := s.Tasks().ListTasks(ctx, store.TaskQuery{ViewerID: alice.ID, OverdueAt: &now, Limit: 10})
	require.NoError(t, err)
	require.Equal(t, 1, total)
	require.Equal(t, "late", tasks[0].Title)

	stats, err := s.Tasks().Stats(ctx, alice.ID, now)
	require.NoError(t, err)
	require.Equal(t, domain.Stats{Total: 3, Pending: 1, InProgress: 1, Completed: 1, Overdue: 1}, stats)

	stats, err = s.Tasks().Stats(ctx, bob.ID, now)
	require.NoError(t, err)
	require.Equal(t, domain.Stats{Total: 1, InProgress: 1}, stats)

	empty, err := s.Tasks().Stats(ctx, "nobody", now)
	require.NoError(t, err)
	require.Equal(t, domain.Stats{}, empty)
}
