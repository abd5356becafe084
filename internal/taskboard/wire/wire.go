// Package wire converts between domain values and the tasksdk types that
// travel over HTTP, the push channel and the event exporters.
package wire

import (
	"time"

	"github.com/aussiebroadwan/taskboard/internal/taskboard/domain"
	"github.com/aussiebroadwan/taskboard/pkg/tasksdk"
)

func User(u domain.User) tasksdk.User {
	return tasksdk.User{
		ID:         u.ID,
		Email:      u.Email,
		Name:       u.Name,
		Avatar:     u.Avatar,
		Provider:   string(u.Provider),
		IsVerified: u.IsVerified,
		LastLogin:  u.LastLoginAt,
		CreatedAt:  u.CreatedAt,
	}
}

func Summary(u domain.UserSummary) tasksdk.UserSummary {
	return tasksdk.UserSummary{ID: u.ID, Name: u.Name, Email: u.Email, Avatar: u.Avatar}
}

func Task(v domain.TaskView) tasksdk.Task {
	shares := make([]tasksdk.Share, len(v.SharedWith))
	for i, s := range v.SharedWith {
		shares[i] = tasksdk.Share{
			User:       Summary(s.User),
			Permission: string(s.Permission),
			SharedAt:   s.SharedAt,
		}
	}

	tags := v.Tags
	if tags == nil {
		tags = []string{}
	}

	return tasksdk.Task{
		ID:          v.ID,
		Title:       v.Title,
		Description: v.Description,
		Status:      string(v.Status),
		Priority:    string(v.Priority),
		DueDate:     v.DueDate,
		Owner:       Summary(v.Owner),
		SharedWith:  shares,
		Tags:        tags,
		IsArchived:  v.IsArchived,
		IsOverdue:   v.IsOverdue,
		CompletedAt: v.CompletedAt,
		Version:     v.Version,
		CreatedAt:   v.CreatedAt,
		UpdatedAt:   v.UpdatedAt,
	}
}

func Tasks(vs []domain.TaskView) []tasksdk.Task {
	out := make([]tasksdk.Task, len(vs))
	for i, v := range vs {
		out[i] = Task(v)
	}
	return out
}

func Pagination(p domain.Pagination) tasksdk.Pagination {
	return tasksdk.Pagination{
		Page:       p.Page,
		Limit:      p.Limit,
		Total:      p.Total,
		TotalPages: p.TotalPages,
		HasNext:    p.HasNext,
		HasPrev:    p.HasPrev,
	}
}

func Stats(s domain.Stats) tasksdk.Stats {
	return tasksdk.Stats{
		Total:      s.Total,
		Pending:    s.Pending,
		InProgress: s.InProgress,
		Completed:  s.Completed,
		Overdue:    s.Overdue,
	}
}

func FieldErrors(verr *domain.ValidationError) []tasksdk.FieldError {
	out := make([]tasksdk.FieldError, len(verr.Fields))
	for i, f := range verr.Fields {
		out[i] = tasksdk.FieldError{Field: f.Field, Message: f.Message}
	}
	return out
}

const dueDateFormatMessage = "Due date must be a valid date in ISO format"

// TaskInput maps a create request onto the domain input. Only an
// unreadable due date is rejected here; the rest is left to the domain. An
// empty due date means none.
func TaskInput(req tasksdk.CreateTaskRequest) (domain.TaskInput, error) {
	in := domain.TaskInput{
		Title:       req.Title,
		Description: req.Description,
		Status:      domain.Status(req.Status),
		Priority:    domain.Priority(req.Priority),
		Tags:        req.Tags,
	}

	if req.DueDate != nil {
		if !req.DueDate.Valid() {
			return domain.TaskInput{}, domain.Invalid("dueDate", dueDateFormatMessage)
		}
		if !req.DueDate.Empty() {
			d := req.DueDate.Time
			in.DueDate = &d
		}
	}
	return in, nil
}

// TaskPatch maps an update request onto a domain patch. An explicit null
// clears description, dueDate and tags, and so does an empty dueDate; a null
// title, status or priority is passed through as empty so validation rejects
// it.
func TaskPatch(req tasksdk.UpdateTaskRequest) (domain.TaskPatch, error) {
	var p domain.TaskPatch

	if req.Title.Present {
		p.Title = &req.Title.Value
	}
	if req.Description.Present {
		p.Description = &req.Description.Value
	}
	if req.Status.Present {
		s := domain.Status(req.Status.Value)
		p.Status = &s
	}
	if req.Priority.Present {
		pr := domain.Priority(req.Priority.Value)
		p.Priority = &pr
	}
	if req.DueDate.Present {
		switch due := req.DueDate.Value; {
		case req.DueDate.Null, due.Empty():
			p.ClearDueDate = true
		case !due.Valid():
			return domain.TaskPatch{}, domain.Invalid("dueDate", dueDateFormatMessage)
		default:
			p.DueDate = &due.Time
		}
	}
	if req.Tags.Present {
		tags := req.Tags.Value
		if tags == nil {
			tags = []string{}
		}
		p.Tags = &tags
	}
	if req.IsArchived.Present && !req.IsArchived.Null {
		p.IsArchived = &req.IsArchived.Value
	}
	if req.Version.Present && !req.Version.Null {
		p.Version = &req.Version.Value
	}

	return p, nil
}

// EventRecord is the serialized form of a change event shared by the
// cross-instance relay and the event exporter.
type EventRecord struct {
	Type         string        `json:"type"`
	TaskID       string        `json:"taskId"`
	ActorID      string        `json:"actorId"`
	TargetUserID string        `json:"targetUserId,omitempty"`
	Audience     []string      `json:"audience"`
	At           time.Time     `json:"at"`
	Task         *tasksdk.Task `json:"task,omitempty"`
}

func Record(e domain.Event) EventRecord {
	rec := EventRecord{
		Type:         string(e.Type),
		TaskID:       e.TaskID,
		ActorID:      e.ActorID,
		TargetUserID: e.TargetUserID,
		Audience:     e.Audience,
		At:           e.At,
	}
	if e.Task != nil {
		t := Task(*e.Task)
		rec.Task = &t
	}
	return rec
}

// Push renders the record as the frame sent to push clients.
func (r EventRecord) Push() tasksdk.PushMessage {
	data := &tasksdk.EventData{UserID: r.ActorID}

	switch domain.EventType(r.Type) {
	case domain.EventTaskDeleted:
		data.TaskID = r.TaskID
	case domain.EventTaskUnshared:
		data.TaskID = r.TaskID
		data.UnsharedUserID = r.TargetUserID
	case domain.EventTaskShared:
		data.Task = r.Task
		data.SharedWithUserID = r.TargetUserID
	default:
		data.Task = r.Task
	}

	return tasksdk.PushMessage{Event: r.Type, Data: data}
}
