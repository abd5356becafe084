package domain

import (
	"slices"
	"strings"
	"time"
	"unicode/utf8"
)

type Status string

const (
	StatusPending    Status = "pending"
	StatusInProgress Status = "in-progress"
	StatusCompleted  Status = "completed"
)

func (s Status) Valid() bool {
	switch s {
	case StatusPending, StatusInProgress, StatusCompleted:
		return true
	}
	return false
}

type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
	PriorityUrgent Priority = "urgent"
)

func (p Priority) Valid() bool {
	return p.Rank() > 0
}

// Rank orders priorities by severity, 1 (low) to 4 (urgent); 0 if unknown.
func (p Priority) Rank() int {
	switch p {
	case PriorityLow:
		return 1
	case PriorityMedium:
		return 2
	case PriorityHigh:
		return 3
	case PriorityUrgent:
		return 4
	}
	return 0
}

type Permission string

const (
	PermissionRead Permission = "read"
	PermissionEdit Permission = "edit"
)

func (p Permission) Valid() bool {
	return p == PermissionRead || p == PermissionEdit
}

const (
	MaxTitleLen       = 200
	MaxDescriptionLen = 1000
	MaxTags           = 10
	MaxTagLen         = 30
)

// Share grants one non-owner user access to a task.
type Share struct {
	UserID     string
	Permission Permission
	SharedAt   time.Time
}

type Task struct {
	ID          string
	Seq         int64 // store-assigned insertion order, used to break sort ties
	Title       string
	Description string
	Status      Status
	Priority    Priority
	DueDate     *time.Time
	OwnerID     string
	SharedWith  []Share
	Tags        []string
	IsArchived  bool
	CompletedAt *time.Time
	Version     int64
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// IsOverdue is derived at read time and never stored.
func (t *Task) IsOverdue(now time.Time) bool {
	return t.DueDate != nil && t.DueDate.Before(now) && t.Status != StatusCompleted
}

// SetStatus changes the status and keeps CompletedAt in step with it.
func (t *Task) SetStatus(s Status, now time.Time) {
	if s == StatusCompleted {
		if t.Status != StatusCompleted || t.CompletedAt == nil {
			at := now
			t.CompletedAt = &at
		}
	} else {
		t.CompletedAt = nil
	}
	t.Status = s
}

func (t *Task) ShareFor(userID string) (Share, bool) {
	for _, s := range t.SharedWith {
		if s.UserID == userID {
			return s, true
		}
	}
	return Share{}, false
}

// ShareWith adds userID or updates their permission in place. It reports
// whether anything changed.
func (t *Task) ShareWith(userID string, p Permission, now time.Time) bool {
	for i := range t.SharedWith {
		if t.SharedWith[i].UserID == userID {
			if t.SharedWith[i].Permission == p {
				return false
			}
			t.SharedWith[i].Permission = p
			return true
		}
	}
	t.SharedWith = append(t.SharedWith, Share{UserID: userID, Permission: p, SharedAt: now})
	return true
}

// Unshare removes userID's entry. It reports whether one existed.
func (t *Task) Unshare(userID string) bool {
	before := len(t.SharedWith)
	t.SharedWith = slices.DeleteFunc(t.SharedWith, func(s Share) bool { return s.UserID == userID })
	return len(t.SharedWith) != before
}

// Audience lists the users entitled to hear about changes to the task: the
// owner followed by every sharee.
func (t *Task) Audience() []string {
	out := make([]string, 0, len(t.SharedWith)+1)
	out = append(out, t.OwnerID)
	for _, s := range t.SharedWith {
		out = append(out, s.UserID)
	}
	return out
}

// Clone returns a deep copy so callers can mutate without aliasing.
func (t Task) Clone() Task {
	c := t
	c.SharedWith = slices.Clone(t.SharedWith)
	c.Tags = slices.Clone(t.Tags)
	if t.DueDate != nil {
		d := *t.DueDate
		c.DueDate = &d
	}
	if t.CompletedAt != nil {
		d := *t.CompletedAt
		c.CompletedAt = &d
	}
	return c
}

// TaskInput is the payload for creating a task.
type TaskInput struct {
	Title       string
	Description string
	Status      Status
	Priority    Priority
	DueDate     *time.Time
	Tags        []string
}

// Normalize trims the input in place, fills defaults and validates it.
func (in *TaskInput) Normalize(now time.Time) error {
	verr := &ValidationError{}

	in.Title = strings.TrimSpace(in.Title)
	validateTitle(verr, in.Title, "Task title is required")

	in.Description = strings.TrimSpace(in.Description)
	validateDescription(verr, in.Description)

	if in.Status == "" {
		in.Status = StatusPending
	} else if !in.Status.Valid() {
		verr.Add("status", "Status must be one of: pending, in-progress, completed")
	}

	if in.Priority == "" {
		in.Priority = PriorityMedium
	} else if !in.Priority.Valid() {
		verr.Add("priority", "Priority must be one of: low, medium, high, urgent")
	}

	in.DueDate = normalizeTime(in.DueDate)
	validateDueDate(verr, in.DueDate, now)

	tags, ok := normalizeTags(verr, in.Tags)
	if ok {
		in.Tags = tags
	}

	return verr.Err()
}

// TaskPatch is a partial update. Nil fields are left alone.
type TaskPatch struct {
	Title       *string
	Description *string
	Status      *Status
	Priority    *Priority
	DueDate     *time.Time
	// ClearDueDate removes the due date; it wins over DueDate.
	ClearDueDate bool
	// Tags replaces the tag set; a non-nil pointer to an empty slice clears it.
	Tags       *[]string
	IsArchived *bool
	// Version, when set, must equal the task's current version.
	Version *int64
}

// Normalize trims string fields in place and validates whatever is present.
func (p *TaskPatch) Normalize(now time.Time) error {
	verr := &ValidationError{}

	if p.Title != nil {
		title := strings.TrimSpace(*p.Title)
		p.Title = &title
		validateTitle(verr, title, "Task title cannot be empty")
	}
	if p.Description != nil {
		desc := strings.TrimSpace(*p.Description)
		p.Description = &desc
		validateDescription(verr, desc)
	}
	if p.Status != nil && !p.Status.Valid() {
		verr.Add("status", "Status must be one of: pending, in-progress, completed")
	}
	if p.Priority != nil && !p.Priority.Valid() {
		verr.Add("priority", "Priority must be one of: low, medium, high, urgent")
	}
	if !p.ClearDueDate {
		p.DueDate = normalizeTime(p.DueDate)
		validateDueDate(verr, p.DueDate, now)
	}
	if p.Tags != nil {
		tags, ok := normalizeTags(verr, *p.Tags)
		if ok {
			p.Tags = &tags
		}
	}

	return verr.Err()
}

// Apply writes the patch onto t. The patch must already be normalized.
func (p *TaskPatch) Apply(t *Task, now time.Time) {
	if p.Title != nil {
		t.Title = *p.Title
	}
	if p.Description != nil {
		t.Description = *p.Description
	}
	if p.Priority != nil {
		t.Priority = *p.Priority
	}
	if p.ClearDueDate {
		t.DueDate = nil
	} else if p.DueDate != nil {
		d := *p.DueDate
		t.DueDate = &d
	}
	if p.Tags != nil {
		t.Tags = slices.Clone(*p.Tags)
	}
	if p.IsArchived != nil {
		t.IsArchived = *p.IsArchived
	}
	if p.Status != nil {
		t.SetStatus(*p.Status, now)
	}
}

func validateTitle(verr *ValidationError, title, emptyMsg string) {
	switch {
	case title == "":
		verr.Add("title", emptyMsg)
	case utf8.RuneCountInString(title) > MaxTitleLen:
		verr.Add("title", "Task title cannot exceed 200 characters")
	}
}

func validateDescription(verr *ValidationError, desc string) {
	if utf8.RuneCountInString(desc) > MaxDescriptionLen {
		verr.Add("description", "Description cannot exceed 1000 characters")
	}
}

// normalizeTime converts t to UTC at the millisecond precision the stores
// keep.
func normalizeTime(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	n := t.UTC().Truncate(time.Millisecond)
	return &n
}

func validateDueDate(verr *ValidationError, due *time.Time, now time.Time) {
	if due != nil && due.Before(now) {
		verr.Add("dueDate", "Due date cannot be in the past")
	}
}

func normalizeTags(verr *ValidationError, tags []string) ([]string, bool) {
	if len(tags) > MaxTags {
		verr.Add("tags", "Cannot have more than 10 tags")
		return nil, false
	}

	out := make([]string, 0, len(tags))
	for _, tag := range tags {
		tag = strings.TrimSpace(tag)
		n := utf8.RuneCountInString(tag)
		if n == 0 || n > MaxTagLen {
			verr.Add("tags", "Each tag must be between 1 and 30 characters")
			return nil, false
		}
		out = append(out, tag)
	}
	return out, true
}
