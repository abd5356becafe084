package tasksdk

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestDateDecoding(t *testing.T) {
	cases := []struct {
		name  string
		in    string
		valid bool
		empty bool
		want  time.Time
	}{
		{name: "date only", in: `"2099-01-31"`, valid: true, want: time.Date(2099, 1, 31, 0, 0, 0, 0, time.UTC)},
		{name: "rfc3339", in: `"2099-01-31T10:30:00+10:00"`, valid: true, want: time.Date(2099, 1, 31, 0, 30, 0, 0, time.UTC)},
		{name: "empty", in: `""`, valid: true, empty: true},
		{name: "garbage", in: `"not-a-date"`},
		{name: "number", in: `42`},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var d Date
			require.NoError(t, json.Unmarshal([]byte(tc.in), &d))
			require.Equal(t, tc.valid, d.Valid())
			require.Equal(t, tc.empty, d.Empty())
			if !tc.want.IsZero() {
				require.True(t, tc.want.Equal(d.Time), "got %v", d.Time)
			}
		})
	}
}

func TestUpdateRequestDueDate(t *testing.T) {
	var req UpdateTaskRequest
	require.NoError(t, json.Unmarshal([]byte(`{"dueDate":"oops"}`), &req))
	require.True(t, req.DueDate.Present)
	require.False(t, req.DueDate.Value.Valid())

	// Invalid input is sent back as it came.
	b, err := json.Marshal(req)
	require.NoError(t, err)
	require.JSONEq(t, `{"dueDate":"oops"}`, string(b))

	req = UpdateTaskRequest{DueDate: Null[Date]()}
	b, err = json.Marshal(req)
	require.NoError(t, err)
	require.JSONEq(t, `{"dueDate":null}`, string(b))
}
