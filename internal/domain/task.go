package domain

import "errors"

// TaskStatus represents the lifecycle state of a task.
// A task only ever moves in one direction: in work -> completed.
type TaskStatus string

const (
	// TaskStatusInWork is the initial status of every task.
	TaskStatusInWork TaskStatus = "in work"

	// TaskStatusCompleted is the terminal status. No task leaves it.
	TaskStatusCompleted TaskStatus = "completed"
)

// Task validation errors.
var (
	ErrInvalidTaskID        = errors.New("task ID must be positive")
	ErrInvalidTaskAuthor    = errors.New("task author must reference a user")
	ErrInvalidTaskPerformer = errors.New("task performer must reference a user")
	ErrEmptyTaskDeadline    = errors.New("task deadline cannot be empty")
	ErrInvalidTaskStatus    = errors.New("task status must be 'in work' or 'completed'")
)

// Task represents a delegated unit of work. The author created it and is the
// only user allowed to edit or delete it; the performer is the assignee and
// the only user allowed to complete it. Neither role is ever transferred.
type Task struct {
	ID          int64      `json:"taskId"`
	Title       string     `json:"title"`
	Author      int64      `json:"author"`
	Performer   int64      `json:"performer"`
	Deadline    Date       `json:"deadline"`
	Status      TaskStatus `json:"status"`
	Description string     `json:"description"`
	Result      *string    `json:"result"`
}

// NewTask creates a Task in the "in work" status with no result.
// Returns an error if validation fails.
func NewTask(id, authorID, performerID int64, title, description string, deadline Date) (*Task, error) {
	task := &Task{
		ID:          id,
		Title:       title,
		Author:      authorID,
		Performer:   performerID,
		Deadline:    deadline,
		Status:      TaskStatusInWork,
		Description: description,
	}

	if err := task.Validate(); err != nil {
		return nil, err
	}

	return task, nil
}

// Validate checks if the Task has valid data.
// Titles and descriptions may be empty strings; the original data model
// places no content restrictions on them.
func (t *Task) Validate() error {
	if t.ID <= 0 {
		return ErrInvalidTaskID
	}

	if t.Author <= 0 {
		return ErrInvalidTaskAuthor
	}

	if t.Performer <= 0 {
		return ErrInvalidTaskPerformer
	}

	if t.Deadline.IsZero() {
		return ErrEmptyTaskDeadline
	}

	if t.Status != TaskStatusInWork && t.Status != TaskStatusCompleted {
		return ErrInvalidTaskStatus
	}

	return nil
}

// Complete marks the task completed and records the result text.
// Completing an already-completed task silently overwrites the result;
// this mirrors the original behavior and is deliberate.
func (t *Task) Complete(result string) {
	t.Result = &result
	t.Status = TaskStatusCompleted
}

// IsCompleted reports whether the task has reached its terminal status.
func (t *Task) IsCompleted() bool {
	return t.Status == TaskStatusCompleted
}

// IsFailed reports whether the task counts as failed when observed on the
// given date. "Failed" is never stored: it is derived from the task still
// being in work after its deadline has passed, so the same task can change
// classification purely through the passage of time.
func (t *Task) IsFailed(asOf Date) bool {
	return t.Status == TaskStatusInWork && t.Deadline.Before(asOf)
}

// Clone returns an independent copy of the task, including the result text.
func (t *Task) Clone() *Task {
	clone := *t
	if t.Result != nil {
		result := *t.Result
		clone.Result = &result
	}
	return &clone
}
