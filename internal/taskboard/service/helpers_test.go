package service

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/aussiebroadwan/taskboard/internal/taskboard/domain"
	"github.com/aussiebroadwan/taskboard/internal/taskboard/store"
	"github.com/aussiebroadwan/taskboard/internal/taskboard/store/drivers/sqlite"
	"github.com/aussiebroadwan/taskboard/pkg/jwtx"
	"github.com/stretchr/testify/require"
)

var testSecret = []byte("0123456789abcdef0123456789abcdef")

// recorder is a Notifier that keeps every event and can be told to fail.
type recorder struct {
	mu     sync.Mutex
	events []domain.Event
	fail   bool
}

func (r *recorder) Publish(_ context.Context, e domain.Event) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.fail {
		return errors.New("notifier down")
	}
	r.events = append(r.events, e)
	return nil
}

func (r *recorder) last(t *testing.T) domain.Event {
	t.Helper()

	r.mu.Lock()
	defer r.mu.Unlock()

	require.NotEmpty(t, r.events)
	return r.events[len(r.events)-1]
}

func (r *recorder) count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.events)
}

// fixedClock returns a clock that reads *at.
func fixedClock(at *time.Time) Clock {
	return func() time.Time { return *at }
}

type fixture struct {
	store store.Store
	auth  *AuthService
	tasks *TaskService
	notes *recorder
	now   time.Time
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	s, err := sqlite.NewStore(sqlite.MemoryDSN)
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })
	require.NoError(t, s.ApplyMigrations(context.Background()))

	hs, err := jwtx.NewHS256(testSecret, "taskboard-test")
	require.NoError(t, err)

	f := &fixture{
		store: s,
		notes: &recorder{},
		now:   time.Date(2025, 3, 14, 9, 0, 0, 0, time.UTC),
	}
	f.auth = &AuthService{
		Store:    s,
		Signer:   hs,
		Verifier: hs,
		Issuer:   "taskboard-test",
	}
	f.tasks = &TaskService{
		Store:    s,
		Notifier: f.notes,
		Now:      fixedClock(&f.now),
	}
	return f
}

// register creates a local account and returns it as an actor.
func (f *fixture) register(t *testing.T, name, email string) domain.Actor {
	t.Helper()

	sess, err := f.auth.Register(context.Background(), domain.Registration{
		Name:     name,
		Email:    email,
		Password: "Secret123",
	})
	require.NoError(t, err)
	return domain.Actor{UserID: sess.User.ID, Email: sess.User.Email, Name: sess.User.Name}
}

func (f *fixture) create(t *testing.T, actor domain.Actor, title string) domain.TaskView {
	t.Helper()

	v, err := f.tasks.CreateTask(context.Background(), actor, domain.TaskInput{Title: title})
	require.NoError(t, err)
	return v
}

func ptr[T any](v T) *T { return &v }
