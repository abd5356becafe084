/*
Package tasksdk provides a client SDK and the shared wire types for the taskboard API.

# Overview

Every REST response uses the same envelope:

	{"success": true, "message": "...", "data": {...}, "errors": [{"field": "...", "message": "..."}]}

The types in this package are used by the server to write responses and by the client to
read them, so the two cannot drift apart.

# SDKClient vs Session

  - SDKClient: unauthenticated operations (register, login, health probes)
  - Session: operations that carry a bearer token (profile, tasks, sharing, push)

	client := tasksdk.NewSDKClient("http://localhost:8080")

	session, err := client.Login(ctx, tasksdk.LoginRequest{Email: email, Password: password})

	task, err := session.CreateTask(ctx, tasksdk.CreateTaskRequest{Title: "Write report"})

	shared, err := session.ShareTask(ctx, task.ID, tasksdk.ShareRequest{
		Email:      "bob@example.com",
		Permission: tasksdk.PermissionEdit,
	})

A token obtained elsewhere (for example from the Google sign-in redirect) can be wrapped
with NewSession.

# Partial updates

UpdateTaskRequest distinguishes an absent field from an explicit null with Field:

	req := tasksdk.UpdateTaskRequest{
		Status:  tasksdk.Set(tasksdk.StatusCompleted),
		DueDate: tasksdk.Null[tasksdk.Date](),
	}

Due dates travel as Date, which the server accepts as an RFC 3339 timestamp or a plain
YYYY-MM-DD date:

	due := tasksdk.DateOf(time.Date(2030, 1, 31, 0, 0, 0, 0, time.UTC))
	task, err := sess.CreateTask(ctx, tasksdk.CreateTaskRequest{Title: "File taxes", DueDate: &due})

# Push

Session.Subscribe opens the WebSocket push channel, joins the session user's room and
returns a Subscription that yields change events in the order the server emitted them.

# Errors

Non-2xx responses are returned as *APIError, which carries the HTTP status, the envelope
message and any per-field validation errors. Use IsStatus to branch on the status code.
*/
package tasksdk
