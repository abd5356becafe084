package domain

import "time"

// TaskView is a task with its owner and sharees resolved for display.
type TaskView struct {
	Task
	Owner      UserSummary
	SharedWith []ShareView
	IsOverdue  bool
}

type ShareView struct {
	User       UserSummary
	Permission Permission
	SharedAt   time.Time
}

// NewTaskView resolves user references through users. Users missing from
// the map are rendered with their id only.
func NewTaskView(t Task, users map[string]User, now time.Time) TaskView {
	v := TaskView{
		Task:       t,
		Owner:      summaryOf(t.OwnerID, users),
		SharedWith: make([]ShareView, 0, len(t.SharedWith)),
		IsOverdue:  t.IsOverdue(now),
	}
	for _, s := range t.SharedWith {
		v.SharedWith = append(v.SharedWith, ShareView{
			User:       summaryOf(s.UserID, users),
			Permission: s.Permission,
			SharedAt:   s.SharedAt,
		})
	}
	return v
}

func summaryOf(id string, users map[string]User) UserSummary {
	if u, ok := users[id]; ok {
		return u.Summary()
	}
	return UserSummary{ID: id}
}
