package store

import (
	"context"
	"errors"
	"time"

	"github.com/aussiebroadwan/taskboard/internal/taskboard/domain"
)

var (
	ErrNotFound        = errors.New("store: not found")
	ErrAlreadyExists   = errors.New("store: already exists")
	ErrVersionConflict = errors.New("store: version conflict")
)

// Store is the root data access interface. Concrete drivers (sqlite, mongo)
// implement this. Multi-row writes such as a task and its share list are
// atomic inside each driver, so no transaction handle leaks out of here.
type Store interface {
	Users() Users
	Tasks() Tasks

	ApplyMigrations(ctx context.Context) error

	// Close releases any underlying resources.
	Close() error

	// Ping verifies the database connection is still alive.
	Ping(ctx context.Context) error
}

type Users interface {
	// GetUserByID returns a user by id.
	GetUserByID(ctx context.Context, id string) (domain.User, error)

	// GetUserByEmail looks up by the normalized (lower-case) email.
	GetUserByEmail(ctx context.Context, email string) (domain.User, error)

	GetUserByGoogleID(ctx context.Context, googleID string) (domain.User, error)

	// ListUsersByIDs returns the users that exist among ids, in no
	// particular order.
	ListUsersByIDs(ctx context.Context, ids []string) ([]domain.User, error)

	// CreateUser inserts a new user. A duplicate email or Google id yields
	// ErrAlreadyExists.
	CreateUser(ctx context.Context, u domain.User) error

	// UpdateProfile sets name and avatar and bumps updated_at.
	UpdateProfile(ctx context.Context, id, name, avatar string, at time.Time) error

	// LinkGoogle attaches a Google identity to an existing account, switches
	// its provider to google and marks it verified. An empty avatar leaves
	// the current one. A local password hash is kept.
	LinkGoogle(ctx context.Context, id, googleID, avatar string, at time.Time) error

	// TouchLastLogin records a successful sign-in.
	TouchLastLogin(ctx context.Context, id string, at time.Time) error
}

// TaskQuery selects the non-archived tasks visible to ViewerID.
type TaskQuery struct {
	ViewerID string
	Status   domain.Status
	Priority domain.Priority
	// OverdueAt, when set, keeps only tasks overdue at that instant.
	OverdueAt *time.Time
	SortBy    domain.SortField
	Order     domain.SortOrder
	Offset    int
	Limit     int
}

type Tasks interface {
	// CreateTask inserts t with its share list and returns it with Seq
	// assigned.
	CreateTask(ctx context.Context, t domain.Task) (domain.Task, error)

	// GetTask returns the task and its share list.
	GetTask(ctx context.Context, id string) (domain.Task, error)

	// UpdateTask replaces the stored task, share list included, only if the
	// stored version still equals expectedVersion. A missing task yields
	// ErrNotFound and a version mismatch ErrVersionConflict.
	UpdateTask(ctx context.Context, t domain.Task, expectedVersion int64) error

	// DeleteTask removes the task and every share entry on it.
	DeleteTask(ctx context.Context, id string) error

	// ListTasks returns one page ordered by q.SortBy then Seq, plus the
	// number of tasks matching q regardless of paging.
	ListTasks(ctx context.Context, q TaskQuery) ([]domain.Task, int, error)

	// Stats counts the non-archived tasks visible to viewerID, with overdue
	// evaluated at now.
	Stats(ctx context.Context, viewerID string, now time.Time) (domain.Stats, error)
}
