package http

import (
	"net/http"
	"net/url"
	"strconv"

	"github.com/aussiebroadwan/taskboard/internal/taskboard/domain"
	"github.com/aussiebroadwan/taskboard/internal/taskboard/service"
	"github.com/aussiebroadwan/taskboard/internal/taskboard/wire"
	"github.com/aussiebroadwan/taskboard/pkg/tasksdk"
)

type TaskHandler struct {
	TaskService *service.TaskService
}

// List returns one page of the caller's visible tasks.
//
//	@Summary		List tasks
//	@Description	Tasks the caller owns or has been shared, excluding archived ones.
//	@Description	The search term filters the returned page only; pagination counts ignore it.
//	@Tags			Tasks
//	@Produce		json
//	@Param			page		query		int		false	"Page, from 1"				default(1)
//	@Param			limit		query		int		false	"Page size, 1..100"			default(10)
//	@Param			status		query		string	false	"Status filter"				Enums(pending, in-progress, completed)
//	@Param			priority	query		string	false	"Priority filter"			Enums(low, medium, high, urgent)
//	@Param			isOverdue	query		bool	false	"Only overdue tasks"
//	@Param			sortBy		query		string	false	"Sort field"				Enums(createdAt, updatedAt, dueDate, priority, title)
//	@Param			sortOrder	query		string	false	"Sort order"				Enums(asc, desc)
//	@Param			search		query		string	false	"Title/description substring"
//	@Success		200			{object}	tasksdk.Response[tasksdk.TaskListData]	"Tasks"
//	@Failure		400			{object}	tasksdk.Response[any]					"Validation failed"
//	@Failure		401			{object}	tasksdk.Response[any]					"Invalid or expired token"
//	@Security		BearerAuth
//	@Router			/api/tasks [get].
func (h *TaskHandler) List(w http.ResponseWriter, r *http.Request) {
	q, err := listQuery(r.URL.Query())
	if err != nil {
		writeError(w, r, err)
		return
	}

	page, err := h.TaskService.ListTasks(r.Context(), actorFrom(r.Context()), q)
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeOK(w, http.StatusOK, "", tasksdk.TaskListData{
		Tasks:      wire.Tasks(page.Tasks),
		Pagination: wire.Pagination(page.Pagination),
	})
}

// Create adds a task owned by the caller.
//
//	@Summary	Create task
//	@Tags		Tasks
//	@Accept		json
//	@Produce	json
//	@Param		body	body		tasksdk.CreateTaskRequest			true	"Task"
//	@Success	201		{object}	tasksdk.Response[tasksdk.TaskData]	"Task created successfully"
//	@Failure	400		{object}	tasksdk.Response[any]				"Validation failed"
//	@Failure	401		{object}	tasksdk.Response[any]				"Invalid or expired token"
//	@Security	BearerAuth
//	@Router		/api/tasks [post].
func (h *TaskHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req tasksdk.CreateTaskRequest
	if !decodeBody(w, r, &req) {
		return
	}

	in, err := wire.TaskInput(req)
	if err != nil {
		writeError(w, r, err)
		return
	}

	view, err := h.TaskService.CreateTask(r.Context(), actorFrom(r.Context()), in)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeOK(w, http.StatusCreated, "Task created successfully", tasksdk.TaskData{Task: wire.Task(view)})
}

// Get returns one task.
//
//	@Summary	Get task
//	@Tags		Tasks
//	@Produce	json
//	@Param		id	path		string								true	"Task ID"
//	@Success	200	{object}	tasksdk.Response[tasksdk.TaskData]	"Task"
//	@Failure	400	{object}	tasksdk.Response[any]				"Invalid task ID"
//	@Failure	403	{object}	tasksdk.Response[any]				"Access denied to this task"
//	@Failure	404	{object}	tasksdk.Response[any]				"Task not found"
//	@Security	BearerAuth
//	@Router		/api/tasks/{id} [get].
func (h *TaskHandler) Get(w http.ResponseWriter, r *http.Request) {
	view, err := h.TaskService.GetTask(r.Context(), actorFrom(r.Context()), r.PathValue("id"))
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeOK(w, http.StatusOK, "", tasksdk.TaskData{Task: wire.Task(view)})
}

// Update applies a partial update.
//
//	@Summary		Update task
//	@Description	Owner or edit sharee. Absent fields are unchanged; null clears description, dueDate and tags.
//	@Description	A version that does not match the stored one is rejected with 409.
//	@Tags			Tasks
//	@Accept			json
//	@Produce		json
//	@Param			id		path		string								true	"Task ID"
//	@Param			body	body		tasksdk.UpdateTaskRequest			true	"Fields to change"
//	@Success		200		{object}	tasksdk.Response[tasksdk.TaskData]	"Task updated successfully"
//	@Failure		400		{object}	tasksdk.Response[any]				"Validation failed"
//	@Failure		403		{object}	tasksdk.Response[any]				"No edit permission"
//	@Failure		404		{object}	tasksdk.Response[any]				"Task not found"
//	@Failure		409		{object}	tasksdk.Response[any]				"Version conflict"
//	@Security		BearerAuth
//	@Router			/api/tasks/{id} [put].
func (h *TaskHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req tasksdk.UpdateTaskRequest
	if !decodeBody(w, r, &req) {
		return
	}

	patch, err := wire.TaskPatch(req)
	if err != nil {
		writeError(w, r, err)
		return
	}

	view, err := h.TaskService.UpdateTask(r.Context(), actorFrom(r.Context()), r.PathValue("id"), patch)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeOK(w, http.StatusOK, "Task updated successfully", tasksdk.TaskData{Task: wire.Task(view)})
}

// Delete removes a task. Owner only.
//
//	@Summary	Delete task
//	@Tags		Tasks
//	@Produce	json
//	@Param		id	path		string					true	"Task ID"
//	@Success	200	{object}	tasksdk.Response[any]	"Task deleted successfully"
//	@Failure	403	{object}	tasksdk.Response[any]	"Only the task owner can delete this task"
//	@Failure	404	{object}	tasksdk.Response[any]	"Task not found"
//	@Security	BearerAuth
//	@Router		/api/tasks/{id} [delete].
func (h *TaskHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.TaskService.DeleteTask(r.Context(), actorFrom(r.Context()), r.PathValue("id")); err != nil {
		writeError(w, r, err)
		return
	}
	writeOK(w, http.StatusOK, "Task deleted successfully", nil)
}

// Share grants another user access. Owner only.
//
//	@Summary	Share task
//	@Tags		Tasks
//	@Accept		json
//	@Produce	json
//	@Param		id		path		string								true	"Task ID"
//	@Param		body	body		tasksdk.ShareRequest				true	"Who and how"
//	@Success	200		{object}	tasksdk.Response[tasksdk.TaskData]	"Task shared successfully"
//	@Failure	400		{object}	tasksdk.Response[any]				"Validation failed"
//	@Failure	403		{object}	tasksdk.Response[any]				"Only the task owner can share this task"
//	@Failure	404		{object}	tasksdk.Response[any]				"Task or user not found"
//	@Security	BearerAuth
//	@Router		/api/tasks/{id}/share [post].
func (h *TaskHandler) Share(w http.ResponseWriter, r *http.Request) {
	var req tasksdk.ShareRequest
	if !decodeBody(w, r, &req) {
		return
	}

	view, err := h.TaskService.ShareTask(r.Context(), actorFrom(r.Context()), r.PathValue("id"),
		req.Email, domain.Permission(req.Permission))
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeOK(w, http.StatusOK, "Task shared successfully", tasksdk.TaskData{Task: wire.Task(view)})
}

// Unshare revokes a user's access. Owner only; revoking access that does
// not exist succeeds.
//
//	@Summary	Unshare task
//	@Tags		Tasks
//	@Accept		json
//	@Produce	json
//	@Param		id		path		string								true	"Task ID"
//	@Param		body	body		tasksdk.UnshareRequest				true	"User to remove"
//	@Success	200		{object}	tasksdk.Response[tasksdk.TaskData]	"Task unshared successfully"
//	@Failure	400		{object}	tasksdk.Response[any]				"Validation failed"
//	@Failure	403		{object}	tasksdk.Response[any]				"Only the task owner can unshare this task"
//	@Failure	404		{object}	tasksdk.Response[any]				"Task not found"
//	@Security	BearerAuth
//	@Router		/api/tasks/{id}/unshare [delete].
func (h *TaskHandler) Unshare(w http.ResponseWriter, r *http.Request) {
	var req tasksdk.UnshareRequest
	if !decodeBody(w, r, &req) {
		return
	}

	view, err := h.TaskService.UnshareTask(r.Context(), actorFrom(r.Context()), r.PathValue("id"), req.UserID)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeOK(w, http.StatusOK, "Task unshared successfully", tasksdk.TaskData{Task: wire.Task(view)})
}

// Stats returns the caller's counters.
//
//	@Summary	Task statistics
//	@Tags		Tasks
//	@Produce	json
//	@Success	200	{object}	tasksdk.Response[tasksdk.StatsData]	"Counters"
//	@Failure	401	{object}	tasksdk.Response[any]				"Invalid or expired token"
//	@Security	BearerAuth
//	@Router		/api/tasks/stats [get].
func (h *TaskHandler) Stats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.TaskService.Stats(r.Context(), actorFrom(r.Context()))
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeOK(w, http.StatusOK, "", tasksdk.StatsData{Stats: wire.Stats(stats)})
}

// listQuery reads the listing parameters. Unparseable numbers become -1 so
// validation reports them.
func listQuery(v url.Values) (domain.ListQuery, error) {
	var overdue bool
	if s := v.Get("isOverdue"); s != "" {
		b, err := strconv.ParseBool(s)
		if err != nil {
			return domain.ListQuery{}, domain.Invalid("isOverdue", "isOverdue must be a boolean")
		}
		overdue = b
	}

	return domain.ListQuery{
		Status:   domain.Status(v.Get("status")),
		Priority: domain.Priority(v.Get("priority")),
		Overdue:  overdue,
		Search:   v.Get("search"),
		Page:     queryInt(v, "page"),
		Limit:    queryInt(v, "limit"),
		SortBy:   domain.SortField(v.Get("sortBy")),
		Order:    domain.SortOrder(v.Get("sortOrder")),
	}, nil
}

func queryInt(v url.Values, key string) int {
	s := v.Get(key)
	if s == "" {
		return 0
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return -1
	}
	return n
}
