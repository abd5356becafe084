package tasksdk

import (
	"context"
	"net/http"
	"net/url"
	"strconv"
)

// ListTasks returns one page of the tasks the caller owns or has been shared.
func (s *Session) ListTasks(ctx context.Context, opts ListTasksOptions) (*TaskListData, error) {
	q := url.Values{}
	if opts.Page > 0 {
		q.Set("page", strconv.Itoa(opts.Page))
	}
	if opts.Limit > 0 {
		q.Set("limit", strconv.Itoa(opts.Limit))
	}
	if opts.Status != "" {
		q.Set("status", opts.Status)
	}
	if opts.Priority != "" {
		q.Set("priority", opts.Priority)
	}
	if opts.IsOverdue {
		q.Set("isOverdue", "true")
	}
	if opts.SortBy != "" {
		q.Set("sortBy", opts.SortBy)
	}
	if opts.SortOrder != "" {
		q.Set("sortOrder", opts.SortOrder)
	}
	if opts.Search != "" {
		q.Set("search", opts.Search)
	}

	path := "/api/tasks"
	if len(q) > 0 {
		path += "?" + q.Encode()
	}

	resp, err := s.client.doRequest(ctx, http.MethodGet, path, s.token, nil)
	if err != nil {
		return nil, err
	}

	env, err := decodeEnvelope[TaskListData](resp, http.StatusOK)
	if err != nil {
		return nil, err
	}
	return &env.Data, nil
}

// CreateTask creates a task owned by the caller.
func (s *Session) CreateTask(ctx context.Context, req CreateTaskRequest) (*Task, error) {
	return s.taskRequest(ctx, http.MethodPost, "/api/tasks", req, http.StatusCreated)
}

// GetTask returns a task the caller may view.
func (s *Session) GetTask(ctx context.Context, id string) (*Task, error) {
	return s.taskRequest(ctx, http.MethodGet, "/api/tasks/"+url.PathEscape(id), nil, http.StatusOK)
}

// UpdateTask applies a partial update.
func (s *Session) UpdateTask(ctx context.Context, id string, req UpdateTaskRequest) (*Task, error) {
	return s.taskRequest(ctx, http.MethodPut, "/api/tasks/"+url.PathEscape(id), req, http.StatusOK)
}

// DeleteTask deletes a task the caller owns.
func (s *Session) DeleteTask(ctx context.Context, id string) error {
	resp, err := s.client.doRequest(ctx, http.MethodDelete, "/api/tasks/"+url.PathEscape(id), s.token, nil)
	if err != nil {
		return err
	}
	_, err = decodeEnvelope[any](resp, http.StatusOK)
	return err
}

// ShareTask grants another user access to a task the caller owns.
func (s *Session) ShareTask(ctx context.Context, id string, req ShareRequest) (*Task, error) {
	return s.taskRequest(ctx, http.MethodPost, "/api/tasks/"+url.PathEscape(id)+"/share", req, http.StatusOK)
}

// UnshareTask revokes a user's access. Revoking access that was never
// granted succeeds.
func (s *Session) UnshareTask(ctx context.Context, id, userID string) (*Task, error) {
	return s.taskRequest(ctx, http.MethodDelete, "/api/tasks/"+url.PathEscape(id)+"/unshare",
		UnshareRequest{UserID: userID}, http.StatusOK)
}

// Stats returns the caller's task counters.
func (s *Session) Stats(ctx context.Context) (*Stats, error) {
	resp, err := s.client.doRequest(ctx, http.MethodGet, "/api/tasks/stats", s.token, nil)
	if err != nil {
		return nil, err
	}

	env, err := decodeEnvelope[StatsData](resp, http.StatusOK)
	if err != nil {
		return nil, err
	}
	return &env.Data.Stats, nil
}

func (s *Session) taskRequest(ctx context.Context, method, path string, body any, expectedStatus int) (*Task, error) {
	resp, err := s.client.doRequest(ctx, method, path, s.token, body)
	if err != nil {
		return nil, err
	}

	env, err := decodeEnvelope[TaskData](resp, expectedStatus)
	if err != nil {
		return nil, err
	}
	return &env.Data.Task, nil
}
