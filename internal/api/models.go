package api

import "github.com/phrazzld/taskdel-api/internal/domain"

// CreateTaskRequest represents the request body for creating a task.
// The author is never client-supplied; it is always the authenticated caller.
type CreateTaskRequest struct {
	Title       string      `json:"title"`
	Description string      `json:"description"`
	Deadline    domain.Date `json:"deadline"`
	Performer   int64       `json:"performer" validate:"required,gt=0"`
}

// UpdateTaskRequest represents the request body for a partial task update.
// Nil fields were absent from the request and leave the stored value
// untouched; pointers to zero values clear the field explicitly.
type UpdateTaskRequest struct {
	Title       *string      `json:"title"`
	Description *string      `json:"description"`
	Deadline    *domain.Date `json:"deadline"`
}

// CompleteTaskRequest represents the request body for completing a task.
// The result text must be present but may be empty.
type CompleteTaskRequest struct {
	Result *string `json:"result" validate:"required"`
}

// UpdateUserRequest represents the request body for a partial profile update.
type UpdateUserRequest struct {
	Name *string `json:"name"`
	Ava  *string `json:"ava"`
}

// TaskResponse represents the response data for a task. Field names match
// the original wire format; result is null while the task is in work.
type TaskResponse struct {
	TaskID      int64             `json:"taskId"`
	Title       string            `json:"title"`
	Author      int64             `json:"author"`
	Performer   int64             `json:"performer"`
	Deadline    domain.Date       `json:"deadline"`
	Status      domain.TaskStatus `json:"status"`
	Description string            `json:"description"`
	Result      *string           `json:"result"`
}

// taskToResponse transforms a domain Task into its response form.
func taskToResponse(task *domain.Task) TaskResponse {
	return TaskResponse{
		TaskID:      task.ID,
		Title:       task.Title,
		Author:      task.Author,
		Performer:   task.Performer,
		Deadline:    task.Deadline,
		Status:      task.Status,
		Description: task.Description,
		Result:      task.Result,
	}
}

// tasksToResponse transforms a task listing, preserving order.
// Always returns a non-nil slice so empty pages encode as [] rather than null.
func tasksToResponse(tasks []domain.Task) []TaskResponse {
	responses := make([]TaskResponse, 0, len(tasks))
	for i := range tasks {
		responses = append(responses, taskToResponse(&tasks[i]))
	}
	return responses
}

// UserProfileResponse represents the caller-visible profile fields.
type UserProfileResponse struct {
	Name string `json:"name"`
	Ava  string `json:"ava"`
}

// MyStatisticResponse represents the caller's own task statistics.
type MyStatisticResponse struct {
	CompletedTasks int `json:"completedTasks"`
	InWorkTasks    int `json:"inWorkTasks"`
	FailedTasks    int `json:"failedTasks"`
}

// UserStatisticResponse represents one row of the global statistics view.
type UserStatisticResponse struct {
	ID             int64  `json:"id"`
	Name           string `json:"name"`
	Ava            string `json:"ava"`
	CompletedTasks int    `json:"completedTasks"`
	InWorkTasks    int    `json:"inWorkTasks"`
	FailedTasks    int    `json:"failedTasks"`
}

// MessageResponse represents a simple acknowledgement body.
type MessageResponse struct {
	Message string `json:"message"`
}

// ServiceInfoResponse represents the root info endpoint body.
type ServiceInfoResponse struct {
	Message string `json:"message"`
	Version string `json:"version"`
}
