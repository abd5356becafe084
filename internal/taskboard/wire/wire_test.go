package wire

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/aussiebroadwan/taskboard/internal/taskboard/domain"
	"github.com/aussiebroadwan/taskboard/pkg/tasksdk"
	"github.com/stretchr/testify/require"
)

func TestTaskPatchNullHandling(t *testing.T) {
	var req tasksdk.UpdateTaskRequest
	require.NoError(t, json.Unmarshal([]byte(`{
		"description": null,
		"dueDate": null,
		"tags": null,
		"status": "completed",
		"version": 3
	}`), &req))

	p, err := TaskPatch(req)
	require.NoError(t, err)
	require.Nil(t, p.Title)
	require.NotNil(t, p.Description)
	require.Empty(t, *p.Description)
	require.True(t, p.ClearDueDate)
	require.NotNil(t, p.Tags)
	require.Empty(t, *p.Tags)
	require.Equal(t, domain.StatusCompleted, *p.Status)
	require.Equal(t, int64(3), *p.Version)
	require.Nil(t, p.IsArchived)
}

func TestTaskPatchAbsentFieldsStayNil(t *testing.T) {
	var req tasksdk.UpdateTaskRequest
	require.NoError(t, json.Unmarshal([]byte(`{"title":"x"}`), &req))

	p, err := TaskPatch(req)
	require.NoError(t, err)
	require.Equal(t, "x", *p.Title)
	require.Nil(t, p.Description)
	require.Nil(t, p.DueDate)
	require.False(t, p.ClearDueDate)
	require.Nil(t, p.Tags)
	require.Nil(t, p.Version)
}

func TestDueDateMapping(t *testing.T) {
	midnight := time.Date(2099, 1, 31, 0, 0, 0, 0, time.UTC)

	t.Run("create", func(t *testing.T) {
		var req tasksdk.CreateTaskRequest
		require.NoError(t, json.Unmarshal([]byte(`{"title":"x","dueDate":"2099-01-31"}`), &req))
		in, err := TaskInput(req)
		require.NoError(t, err)
		require.NotNil(t, in.DueDate)
		require.True(t, midnight.Equal(*in.DueDate))

		require.NoError(t, json.Unmarshal([]byte(`{"title":"x","dueDate":""}`), &req))
		in, err = TaskInput(req)
		require.NoError(t, err)
		require.Nil(t, in.DueDate)

		require.NoError(t, json.Unmarshal([]byte(`{"title":"x","dueDate":"tomorrow"}`), &req))
		_, err = TaskInput(req)
		var verr *domain.ValidationError
		require.ErrorAs(t, err, &verr)
		require.True(t, verr.Has("dueDate"))
	})

	t.Run("update", func(t *testing.T) {
		var req tasksdk.UpdateTaskRequest
		require.NoError(t, json.Unmarshal([]byte(`{"dueDate":"2099-01-31"}`), &req))
		p, err := TaskPatch(req)
		require.NoError(t, err)
		require.True(t, midnight.Equal(*p.DueDate))
		require.False(t, p.ClearDueDate)

		req = tasksdk.UpdateTaskRequest{}
		require.NoError(t, json.Unmarshal([]byte(`{"dueDate":""}`), &req))
		p, err = TaskPatch(req)
		require.NoError(t, err)
		require.True(t, p.ClearDueDate)

		req = tasksdk.UpdateTaskRequest{}
		require.NoError(t, json.Unmarshal([]byte(`{"dueDate":17}`), &req))
		_, err = TaskPatch(req)
		require.ErrorIs(t, err, domain.ErrValidation)
	})
}

func TestUpdateRequestOmitsAbsentFields(t *testing.T) {
	req := tasksdk.UpdateTaskRequest{
		Status:  tasksdk.Set(tasksdk.StatusCompleted),
		DueDate: tasksdk.Null[tasksdk.Date](),
	}

	b, err := json.Marshal(req)
	require.NoError(t, err)
	require.JSONEq(t, `{"status":"completed","dueDate":null}`, string(b))
}

func TestPushPayloads(t *testing.T) {
	view := domain.TaskView{Task: domain.Task{ID: "t1", Title: "Write report", OwnerID: "a"}}

	cases := []struct {
		name  string
		event domain.Event
		want  string
	}{
		{
			name:  "created",
			event: domain.Event{Type: domain.EventTaskCreated, TaskID: "t1", Task: &view, ActorID: "a"},
			want:  `{"event":"taskCreated","data":{"task":"t1","userId":"a"}}`,
		},
		{
			name:  "deleted",
			event: domain.Event{Type: domain.EventTaskDeleted, TaskID: "t1", ActorID: "a"},
			want:  `{"event":"taskDeleted","data":{"taskId":"t1","userId":"a"}}`,
		},
		{
			name:  "shared",
			event: domain.Event{Type: domain.EventTaskShared, TaskID: "t1", Task: &view, ActorID: "a", TargetUserID: "b"},
			want:  `{"event":"taskShared","data":{"task":"t1","sharedWithUserId":"b","userId":"a"}}`,
		},
		{
			name:  "unshared",
			event: domain.Event{Type: domain.EventTaskUnshared, TaskID: "t1", ActorID: "a", TargetUserID: "b"},
			want:  `{"event":"taskUnshared","data":{"taskId":"t1","unsharedUserId":"b","userId":"a"}}`,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			msg := Record(tc.event).Push()

			// Collapse the task to its id so the expectation stays readable.
			flat := map[string]any{"event": msg.Event}
			data := map[string]any{"userId": msg.Data.UserID}
			if msg.Data.Task != nil {
				data["task"] = msg.Data.Task.ID
			}
			if msg.Data.TaskID != "" {
				data["taskId"] = msg.Data.TaskID
			}
			if msg.Data.SharedWithUserID != "" {
				data["sharedWithUserId"] = msg.Data.SharedWithUserID
			}
			if msg.Data.UnsharedUserID != "" {
				data["unsharedUserId"] = msg.Data.UnsharedUserID
			}
			flat["data"] = data

			got, err := json.Marshal(flat)
			require.NoError(t, err)
			require.JSONEq(t, tc.want, string(got))
		})
	}
}

func TestTaskRendersEmptyCollections(t *testing.T) {
	got := Task(domain.TaskView{Task: domain.Task{ID: "t1"}})
	require.NotNil(t, got.Tags)
	require.NotNil(t, got.SharedWith)

	b, err := json.Marshal(got)
	require.NoError(t, err)
	require.Contains(t, string(b), `"tags":[]`)
	require.Contains(t, string(b), `"sharedWith":[]`)
	require.Contains(t, string(b), `"dueDate":null`)
}
