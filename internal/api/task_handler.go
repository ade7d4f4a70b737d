package api

import (
	"log/slog"
	"net/http"

	"github.com/phrazzld/taskdel-api/internal/api/shared"
	"github.com/phrazzld/taskdel-api/internal/redact"
	"github.com/phrazzld/taskdel-api/internal/store"
)

// TaskHandler handles task-related HTTP requests: creation, the two
// listing views (delegated vs. assigned), author edits and deletes, and
// performer completion.
type TaskHandler struct {
	tasks  store.TaskStore
	logger *slog.Logger
}

// NewTaskHandler creates a new TaskHandler.
func NewTaskHandler(tasks store.TaskStore, logger *slog.Logger) *TaskHandler {
	if logger == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("logger cannot be nil for TaskHandler")
	}

	return &TaskHandler{
		tasks:  tasks,
		logger: logger.With(slog.String("component", "task_handler")),
	}
}

// CreateTask handles POST /task-api/createTask requests.
// The authenticated caller becomes the task's author; the performer must
// resolve in the user directory.
func (h *TaskHandler) CreateTask(w http.ResponseWriter, r *http.Request) {
	callerID, ok := getCallerID(w, r)
	if !ok {
		return
	}

	var req CreateTaskRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("invalid request format",
			slog.String("error", redact.Error(err)),
			slog.Int64("caller_id", callerID))
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := shared.ValidateRequest(req); err != nil {
		shared.RespondWithErrorAndLog(w, r, http.StatusBadRequest, SanitizeValidationError(err), err)
		return
	}
	if req.Deadline.IsZero() {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid Deadline: required field")
		return
	}

	task, err := h.tasks.Create(r.Context(), callerID, store.NewTask{
		Title:       req.Title,
		Description: req.Description,
		Deadline:    req.Deadline,
		Performer:   req.Performer,
	})
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	h.logger.Debug("task created",
		slog.Int64("task_id", task.ID),
		slog.Int64("author_id", callerID),
		slog.Int64("performer_id", task.Performer))
	shared.RespondWithJSON(w, r, http.StatusOK, taskToResponse(task))
}

// ListDelegatedTasks handles GET /task-api/delegatedTasks requests.
// It returns the page of tasks the caller authored, in creation order.
func (h *TaskHandler) ListDelegatedTasks(w http.ResponseWriter, r *http.Request) {
	callerID, ok := getCallerID(w, r)
	if !ok {
		return
	}

	page, err := parsePage(r)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, http.StatusBadRequest, "Invalid pagination parameters", err)
		return
	}

	tasks, err := h.tasks.ListByAuthor(r.Context(), callerID, page)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, tasksToResponse(tasks))
}

// UpdateDelegatedTask handles PUT /task-api/delegatedTasks/{taskId} requests.
// Author-only partial update of title, description and deadline.
func (h *TaskHandler) UpdateDelegatedTask(w http.ResponseWriter, r *http.Request) {
	callerID, ok := getCallerID(w, r)
	if !ok {
		return
	}

	taskID, err := getPathTaskID(r)
	if err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid task ID")
		return
	}

	var req UpdateTaskRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("invalid request format",
			slog.String("error", redact.Error(err)),
			slog.Int64("caller_id", callerID),
			slog.Int64("task_id", taskID))
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}
	if req.Deadline != nil && req.Deadline.IsZero() {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid Deadline: required field")
		return
	}

	task, err := h.tasks.Update(r.Context(), callerID, taskID, store.TaskUpdate{
		Title:       req.Title,
		Description: req.Description,
		Deadline:    req.Deadline,
	})
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, taskToResponse(task))
}

// DeleteDelegatedTask handles DELETE /task-api/delegatedTasks/{taskId}
// requests. Author-only; allowed regardless of the task's status.
func (h *TaskHandler) DeleteDelegatedTask(w http.ResponseWriter, r *http.Request) {
	callerID, ok := getCallerID(w, r)
	if !ok {
		return
	}

	taskID, err := getPathTaskID(r)
	if err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid task ID")
		return
	}

	if err := h.tasks.Delete(r.Context(), callerID, taskID); err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	h.logger.Debug("task deleted",
		slog.Int64("task_id", taskID),
		slog.Int64("author_id", callerID))
	shared.RespondWithJSON(w, r, http.StatusOK, MessageResponse{Message: "Task deleted successfully"})
}

// ListMyTasks handles GET /task-api/myTasks requests.
// It returns the page of tasks assigned to the caller, in creation order.
func (h *TaskHandler) ListMyTasks(w http.ResponseWriter, r *http.Request) {
	callerID, ok := getCallerID(w, r)
	if !ok {
		return
	}

	page, err := parsePage(r)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, http.StatusBadRequest, "Invalid pagination parameters", err)
		return
	}

	tasks, err := h.tasks.ListByPerformer(r.Context(), callerID, page)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, tasksToResponse(tasks))
}

// CompleteMyTask handles PUT /task-api/myTasks/{taskId} requests.
// Performer-only: records the result text and moves the task to completed.
// Completing an already-completed task overwrites the result silently.
func (h *TaskHandler) CompleteMyTask(w http.ResponseWriter, r *http.Request) {
	callerID, ok := getCallerID(w, r)
	if !ok {
		return
	}

	taskID, err := getPathTaskID(r)
	if err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid task ID")
		return
	}

	var req CompleteTaskRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("invalid request format",
			slog.String("error", redact.Error(err)),
			slog.Int64("caller_id", callerID),
			slog.Int64("task_id", taskID))
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := shared.ValidateRequest(req); err != nil {
		shared.RespondWithErrorAndLog(w, r, http.StatusBadRequest, SanitizeValidationError(err), err)
		return
	}

	task, err := h.tasks.Complete(r.Context(), callerID, taskID, *req.Result)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	h.logger.Debug("task completed",
		slog.Int64("task_id", taskID),
		slog.Int64("performer_id", callerID))
	shared.RespondWithJSON(w, r, http.StatusOK, taskToResponse(task))
}
