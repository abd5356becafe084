package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestListQueryNormalize(t *testing.T) {
	t.Parallel()

	q := ListQuery{}
	require.NoError(t, q.Normalize())
	require.Equal(t, 1, q.Page)
	require.Equal(t, DefaultPageSize, q.Limit)
	require.Equal(t, SortCreatedAt, q.SortBy)
	require.Equal(t, SortDesc, q.Order)
	require.Equal(t, 0, q.Offset())

	q = ListQuery{Page: 3, Limit: 20}
	require.NoError(t, q.Normalize())
	require.Equal(t, 40, q.Offset())

	bad := ListQuery{Page: -1, Limit: 101, SortBy: "owner", Order: "up", Status: "x", Priority: "y"}
	var verr *ValidationError
	require.ErrorAs(t, bad.Normalize(), &verr)
	for _, field := range []string{"page", "limit", "sortBy", "sortOrder", "status", "priority"} {
		require.True(t, verr.Has(field), field)
	}
}

func TestNewPagination(t *testing.T) {
	t.Parallel()

	p := NewPagination(2, 10, 15)
	require.Equal(t, 2, p.TotalPages)
	require.False(t, p.HasNext)
	require.True(t, p.HasPrev)

	p = NewPagination(1, 10, 15)
	require.True(t, p.HasNext)
	require.False(t, p.HasPrev)

	p = NewPagination(1, 10, 0)
	require.Equal(t, 0, p.TotalPages)
	require.False(t, p.HasNext)
}

func TestStatsTally(t *testing.T) {
	t.Parallel()

	past := testNow.Add(-time.Hour)
	var s Stats
	s.Tally(&Task{Status: StatusPending, DueDate: &past}, testNow)
	s.Tally(&Task{Status: StatusInProgress}, testNow)
	s.Tally(&Task{Status: StatusCompleted, DueDate: &past}, testNow)

	require.Equal(t, Stats{Total: 3, Pending: 1, InProgress: 1, Completed: 1, Overdue: 1}, s)
}

func TestNewTaskView(t *testing.T) {
	t.Parallel()

	past := testNow.Add(-time.Hour)
	task := Task{ID: "t1", OwnerID: "a", DueDate: &past, Status: StatusPending}
	task.ShareWith("b", PermissionEdit, testNow)
	task.ShareWith("ghost", PermissionRead, testNow)

	users := map[string]User{
		"a": {ID: "a", Name: "Alice", Email: "a@x.com"},
		"b": {ID: "b", Name: "Bob", Email: "b@x.com"},
	}

	v := NewTaskView(task, users, testNow)
	require.True(t, v.IsOverdue)
	require.Equal(t, "Alice", v.Owner.Name)
	require.Len(t, v.SharedWith, 2)
	require.Equal(t, "Bob", v.SharedWith[0].User.Name)
	require.Equal(t, PermissionEdit, v.SharedWith[0].Permission)
	require.Equal(t, UserSummary{ID: "ghost"}, v.SharedWith[1].User)
}
