package tasksdk

import (
	"bytes"
	"encoding/json"
	"strings"
	"time"
)

// ============================================================================
// Envelope
// ============================================================================

// Response is the envelope every REST endpoint writes.
type Response[T any] struct {
	Success bool         `json:"success"`
	Message string       `json:"message,omitempty"`
	Data    T            `json:"data,omitzero"`
	Errors  []FieldError `json:"errors,omitempty"`
}

// FieldError describes one failed validation rule.
type FieldError struct {
	Field   string `json:"field" example:"title"`
	Message string `json:"message" example:"Task title is required"`
}

// ============================================================================
// Enumerations
// ============================================================================

const (
	StatusPending    = "pending"
	StatusInProgress = "in-progress"
	StatusCompleted  = "completed"

	PriorityLow    = "low"
	PriorityMedium = "medium"
	PriorityHigh   = "high"
	PriorityUrgent = "urgent"

	PermissionRead = "read"
	PermissionEdit = "edit"

	ProviderLocal  = "local"
	ProviderGoogle = "google"
)

// ============================================================================
// Users
// ============================================================================

type RegisterRequest struct {
	Name     string `json:"name" example:"Alice"`
	Email    string `json:"email" example:"alice@example.com"`
	Password string `json:"password" example:"Secret123"`
}

type LoginRequest struct {
	Email    string `json:"email" example:"alice@example.com"`
	Password string `json:"password" example:"Secret123"`
}

// ProfileUpdateRequest changes the caller's profile. Nil fields are left alone.
type ProfileUpdateRequest struct {
	Name   *string `json:"name,omitempty" example:"Alice Smith"`
	Avatar *string `json:"avatar,omitempty" example:"https://example.com/a.png"`
}

type User struct {
	ID         string     `json:"id" example:"01JNZ8R4T6Q2W9E3Y5U7I1O0PA"`
	Email      string     `json:"email" example:"alice@example.com"`
	Name       string     `json:"name" example:"Alice"`
	Avatar     string     `json:"avatar,omitempty"`
	Provider   string     `json:"provider" example:"local"`
	IsVerified bool       `json:"isVerified"`
	LastLogin  *time.Time `json:"lastLogin,omitempty"`
	CreatedAt  time.Time  `json:"createdAt"`
}

// UserSummary is the public projection of a user embedded in tasks.
type UserSummary struct {
	ID     string `json:"id"`
	Name   string `json:"name,omitempty"`
	Email  string `json:"email,omitempty"`
	Avatar string `json:"avatar,omitempty"`
}

type AuthData struct {
	User  User   `json:"user"`
	Token string `json:"token"`
}

type UserData struct {
	User User `json:"user"`
}

// ============================================================================
// Tasks
// ============================================================================

type Share struct {
	User       UserSummary `json:"user"`
	Permission string      `json:"permission" example:"read"`
	SharedAt   time.Time   `json:"sharedAt"`
}

type Task struct {
	ID          string      `json:"id" example:"01JNZ8R4T6Q2W9E3Y5U7I1O0PA"`
	Title       string      `json:"title" example:"Write report"`
	Description string      `json:"description"`
	Status      string      `json:"status" example:"pending"`
	Priority    string      `json:"priority" example:"medium"`
	DueDate     *time.Time  `json:"dueDate"`
	Owner       UserSummary `json:"owner"`
	SharedWith  []Share     `json:"sharedWith"`
	Tags        []string    `json:"tags"`
	IsArchived  bool        `json:"isArchived"`
	IsOverdue   bool        `json:"isOverdue"`
	CompletedAt *time.Time  `json:"completedAt"`
	Version     int64       `json:"version" example:"1"`
	CreatedAt   time.Time   `json:"createdAt"`
	UpdatedAt   time.Time   `json:"updatedAt"`
}

type CreateTaskRequest struct {
	Title       string   `json:"title" example:"Write report"`
	Description string   `json:"description,omitempty"`
	Status      string   `json:"status,omitempty" example:"pending"`
	Priority    string   `json:"priority,omitempty" example:"medium"`
	DueDate     *Date    `json:"dueDate,omitempty" swaggertype:"string" format:"date-time"`
	Tags        []string `json:"tags,omitempty"`
}

// UpdateTaskRequest is a partial update. Absent fields are left alone; an
// explicit null clears description, dueDate and tags.
type UpdateTaskRequest struct {
	Title       Field[string]   `json:"title,omitzero" swaggertype:"string"`
	Description Field[string]   `json:"description,omitzero" swaggertype:"string"`
	Status      Field[string]   `json:"status,omitzero" swaggertype:"string"`
	Priority    Field[string]   `json:"priority,omitzero" swaggertype:"string"`
	DueDate     Field[Date]     `json:"dueDate,omitzero" swaggertype:"string" format:"date-time"`
	Tags        Field[[]string] `json:"tags,omitzero" swaggertype:"array,string"`
	IsArchived  Field[bool]     `json:"isArchived,omitzero" swaggertype:"boolean"`
	// Version, when present, must match the stored version or the update is
	// rejected with 409.
	Version Field[int64] `json:"version,omitzero" swaggertype:"integer"`
}

type ShareRequest struct {
	Email      string `json:"email" example:"bob@example.com"`
	Permission string `json:"permission,omitempty" example:"edit"`
}

type UnshareRequest struct {
	UserID string `json:"userId" example:"01JNZ8R4T6Q2W9E3Y5U7I1O0PA"`
}

type TaskData struct {
	Task Task `json:"task"`
}

type Pagination struct {
	Page       int  `json:"page" example:"1"`
	Limit      int  `json:"limit" example:"10"`
	Total      int  `json:"total" example:"15"`
	TotalPages int  `json:"totalPages" example:"2"`
	HasNext    bool `json:"hasNext"`
	HasPrev    bool `json:"hasPrev"`
}

type TaskListData struct {
	Tasks      []Task     `json:"tasks"`
	Pagination Pagination `json:"pagination"`
}

// ListTasksOptions are the query parameters of GET /api/tasks. Zero values
// are not sent.
type ListTasksOptions struct {
	Page      int
	Limit     int
	Status    string
	Priority  string
	IsOverdue bool
	SortBy    string
	SortOrder string
	Search    string
}

type Stats struct {
	Total      int `json:"total"`
	Pending    int `json:"pending"`
	InProgress int `json:"inProgress"`
	Completed  int `json:"completed"`
	Overdue    int `json:"overdue"`
}

type StatsData struct {
	Stats Stats `json:"stats"`
}

// ============================================================================
// Field
// ============================================================================

// Field is an optional JSON value that tells an absent key apart from an
// explicit null.
type Field[T any] struct {
	Present bool
	Null    bool
	Value   T
}

// Set returns a present, non-null field.
func Set[T any](v T) Field[T] { return Field[T]{Present: true, Value: v} }

// Null returns a field that encodes as JSON null.
func Null[T any]() Field[T] { return Field[T]{Present: true, Null: true} }

// IsZero reports whether the field is absent, which omitzero relies on.
func (f Field[T]) IsZero() bool { return !f.Present }

func (f Field[T]) MarshalJSON() ([]byte, error) {
	if !f.Present || f.Null {
		return []byte("null"), nil
	}
	return json.Marshal(f.Value)
}

// UnmarshalJSON only runs when the key is present in the object.
func (f *Field[T]) UnmarshalJSON(b []byte) error {
	f.Present = true
	if bytes.Equal(bytes.TrimSpace(b), []byte("null")) {
		f.Null = true
		var zero T
		f.Value = zero
		return nil
	}
	f.Null = false
	return json.Unmarshal(b, &f.Value)
}

// ============================================================================
// Date
// ============================================================================

// Date is a due date as clients send it: an RFC 3339 timestamp or a plain
// YYYY-MM-DD date, read as midnight UTC. Anything else still decodes, with
// Valid reporting false, so the server can name the offending field instead
// of rejecting the whole body.
type Date struct {
	Time time.Time

	raw     json.RawMessage
	invalid bool
}

// DateOf wraps t for a request.
func DateOf(t time.Time) Date { return Date{Time: t} }

// Valid reports whether the decoded value was a date.
func (d Date) Valid() bool { return !d.invalid }

// Empty reports whether the value was the empty string.
func (d Date) Empty() bool { return !d.invalid && d.Time.IsZero() }

func (d Date) MarshalJSON() ([]byte, error) {
	switch {
	case d.invalid:
		return d.raw, nil
	case d.Time.IsZero():
		return []byte(`""`), nil
	}
	return json.Marshal(d.Time)
}

func (d *Date) UnmarshalJSON(b []byte) error {
	*d = Date{}

	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		d.raw = append(json.RawMessage(nil), b...)
		d.invalid = true
		return nil
	}

	t, ok := ParseDate(s)
	if !ok {
		d.raw = append(json.RawMessage(nil), b...)
		d.invalid = true
		return nil
	}
	d.Time = t
	return nil
}

// ParseDate accepts "", RFC 3339 and YYYY-MM-DD. The empty string yields the
// zero time.
func ParseDate(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, true
	}
	if t, err := time.Parse(time.RFC3339Nano, s); err == nil {
		return t, true
	}
	if t, err := time.Parse(time.DateOnly, s); err == nil {
		return t.UTC(), true
	}
	return time.Time{}, false
}

// ============================================================================
// Push channel
// ============================================================================

const (
	MessageJoin = "join-user-room"

	EventJoined       = "joined"
	EventError        = "error"
	EventTaskCreated  = "taskCreated"
	EventTaskUpdated  = "taskUpdated"
	EventTaskDeleted  = "taskDeleted"
	EventTaskShared   = "taskShared"
	EventTaskUnshared = "taskUnshared"
)

// JoinMessage is the first frame a push client sends.
type JoinMessage struct {
	Type   string `json:"type"`
	UserID string `json:"userId,omitempty"`
	Token  string `json:"token"`
}

// PushMessage is every frame the server sends on the push channel.
type PushMessage struct {
	Event   string     `json:"event"`
	Message string     `json:"message,omitempty"`
	Data    *EventData `json:"data,omitempty"`
}

// EventData is the payload of a task change event. UserID is the actor.
type EventData struct {
	Task             *Task  `json:"task,omitempty"`
	TaskID           string `json:"taskId,omitempty"`
	SharedWithUserID string `json:"sharedWithUserId,omitempty"`
	UnsharedUserID   string `json:"unsharedUserId,omitempty"`
	UserID           string `json:"userId"`
}

// ============================================================================
// Health
// ============================================================================

// HealthResponse is returned by /livez and /readyz (readyz adds Checks).
type HealthResponse struct {
	Status  string        `json:"status"`
	Uptime  string        `json:"uptime,omitempty"`
	Version string        `json:"version,omitempty"`
	Checks  *HealthChecks `json:"checks,omitempty"`
}

// HealthChecks reports the state of each dependency checked by /readyz.
type HealthChecks struct {
	Database string `json:"database"`
	Relay    string `json:"relay,omitempty"`
}

// ServerHealth is the data of GET /api/health.
type ServerHealth struct {
	Timestamp   time.Time `json:"timestamp"`
	Environment string    `json:"environment"`
}
