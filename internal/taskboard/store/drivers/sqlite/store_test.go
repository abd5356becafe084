package sqlite

import (
	"context"
	"testing"

	"github.com/aussiebroadwan/taskboard/internal/taskboard/domain"
	"github.com/aussiebroadwan/taskboard/internal/taskboard/store"
	"github.com/aussiebroadwan/taskboard/internal/taskboard/store/storetest"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()

	s, err := NewStore(MemoryDSN)
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })

	require.NoError(t, s.ApplyMigrations(context.Background()))
	return s
}

func TestConformance(t *testing.T) {
	t.Parallel()

	storetest.Run(t, func(t *testing.T) store.Store { return newTestStore(t) })
}

func TestMigrationsAreIdempotent(t *testing.T) {
	t.Parallel()

	s := newTestStore(t)
	require.NoError(t, s.ApplyMigrations(context.Background()))
}

func TestDeleteRemovesShareRows(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	s := newTestStore(t)
	alice := storetest.SeedUser(t, s, "alice@x.com")
	bob := storetest.SeedUser(t, s, "bob@x.com")

	task := storetest.NewTask(alice.ID, "shared", storetest.Base)
	task.ShareWith(bob.ID, domain.PermissionEdit, storetest.Base)
	_, err := s.Tasks().CreateTask(ctx, task)
	require.NoError(t, err)

	require.NoError(t, s.Tasks().DeleteTask(ctx, task.ID))

	var n int
	require.NoError(t, s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM task_shares`).Scan(&n))
	require.Zero(t, n)
}

func TestShareRequiresKnownUser(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	s := newTestStore(t)
	alice := storetest.SeedUser(t, s, "alice@x.com")

	task := storetest.NewTask(alice.ID, "orphan share", storetest.Base)
	task.ShareWith("no-such-user", domain.PermissionRead, storetest.Base)
	_, err := s.Tasks().CreateTask(ctx, task)
	require.Error(t, err)

	_, err = s.Tasks().GetTask(ctx, task.ID)
	require.ErrorIs(t, err, store.ErrNotFound)
}

func TestDSN(t *testing.T) {
	t.Parallel()

	require.Equal(t,
		"file:tasks.db?_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)",
		DSN("tasks.db"))
}
