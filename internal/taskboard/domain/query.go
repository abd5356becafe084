package domain

import "time"

type SortField string

const (
	SortCreatedAt SortField = "createdAt"
	SortUpdatedAt SortField = "updatedAt"
	SortDueDate   SortField = "dueDate"
	SortPriority  SortField = "priority"
	SortTitle     SortField = "title"
)

func (f SortField) Valid() bool {
	switch f {
	case SortCreatedAt, SortUpdatedAt, SortDueDate, SortPriority, SortTitle:
		return true
	}
	return false
}

type SortOrder string

const (
	SortAsc  SortOrder = "asc"
	SortDesc SortOrder = "desc"
)

const (
	DefaultPageSize = 10
	MaxPageSize     = 100
)

// ListQuery narrows and orders a listing of the tasks visible to an actor.
type ListQuery struct {
	Status   Status
	Priority Priority
	// Overdue keeps only overdue tasks. False applies no overdue filter.
	Overdue bool
	Search  string
	Page    int
	Limit   int
	SortBy  SortField
	Order   SortOrder
}

// Normalize fills defaults and rejects anything outside the whitelists.
func (q *ListQuery) Normalize() error {
	verr := &ValidationError{}

	if q.Page == 0 {
		q.Page = 1
	} else if q.Page < 1 {
		verr.Add("page", "Page must be a positive integer")
	}
	if q.Limit == 0 {
		q.Limit = DefaultPageSize
	} else if q.Limit < 1 || q.Limit > MaxPageSize {
		verr.Add("limit", "Limit must be between 1 and 100")
	}
	if q.Status != "" && !q.Status.Valid() {
		verr.Add("status", "Status must be one of: pending, in-progress, completed")
	}
	if q.Priority != "" && !q.Priority.Valid() {
		verr.Add("priority", "Priority must be one of: low, medium, high, urgent")
	}
	if q.SortBy == "" {
		q.SortBy = SortCreatedAt
	} else if !q.SortBy.Valid() {
		verr.Add("sortBy", "SortBy must be one of: createdAt, updatedAt, dueDate, priority, title")
	}
	if q.Order == "" {
		q.Order = SortDesc
	} else if q.Order != SortAsc && q.Order != SortDesc {
		verr.Add("sortOrder", "SortOrder must be either asc or desc")
	}

	return verr.Err()
}

func (q ListQuery) Offset() int { return (q.Page - 1) * q.Limit }

// Pagination describes the page returned alongside a listing. Counts
// ignore the search term.
type Pagination struct {
	Page       int
	Limit      int
	Total      int
	TotalPages int
	HasNext    bool
	HasPrev    bool
}

func NewPagination(page, limit, total int) Pagination {
	pages := 0
	if limit > 0 {
		pages = (total + limit - 1) / limit
	}
	return Pagination{
		Page:       page,
		Limit:      limit,
		Total:      total,
		TotalPages: pages,
		HasNext:    page < pages,
		HasPrev:    page > 1,
	}
}

type TaskPage struct {
	Tasks      []TaskView
	Pagination Pagination
}

// Stats counts an actor's visible, non-archived tasks.
type Stats struct {
	Total      int
	Pending    int
	InProgress int
	Completed  int
	Overdue    int
}

// Tally adds t to the counts as seen at now.
func (s *Stats) Tally(t *Task, now time.Time) {
	s.Total++
	switch t.Status {
	case StatusPending:
		s.Pending++
	case StatusInProgress:
		s.InProgress++
	case StatusCompleted:
		s.Completed++
	}
	if t.IsOverdue(now) {
		s.Overdue++
	}
}
