package domain

import (
	"slices"
	"time"
)

type EventType string

const (
	EventTaskCreated  EventType = "taskCreated"
	EventTaskUpdated  EventType = "taskUpdated"
	EventTaskDeleted  EventType = "taskDeleted"
	EventTaskShared   EventType = "taskShared"
	EventTaskUnshared EventType = "taskUnshared"
)

// Event describes one successful mutation. Task is nil for deletions and
// unshares, which only carry the id.
type Event struct {
	Type    EventType
	TaskID  string
	Task    *TaskView
	ActorID string
	// TargetUserID is the sharee for taskShared and the removed user for
	// taskUnshared.
	TargetUserID string
	// Audience is every user entitled to the event under scoped delivery.
	Audience []string
	At       time.Time
}

// Concerns reports whether userID is in the event's audience.
func (e Event) Concerns(userID string) bool {
	return slices.Contains(e.Audience, userID)
}
