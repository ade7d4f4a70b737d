package store

import (
	"context"

	"github.com/phrazzld/taskdel-api/internal/domain"
)

// Page describes an offset/limit window over a filtered task listing.
// Offset must be >= 0 and Limit must be in [1,100]; the boundary layer
// rejects out-of-range values rather than clamping them, so stores may
// assume a valid page.
type Page struct {
	Offset int
	Limit  int
}

// NewTask carries the client-supplied fields for task creation.
// The author is never part of this input: it is always the authenticated
// caller, assigned by the store.
type NewTask struct {
	Title       string
	Description string
	Deadline    domain.Date
	Performer   int64
}

// TaskUpdate carries a partial change to a task's author-editable fields.
// Nil fields are left untouched, same tri-state semantics as ProfileUpdate.
type TaskUpdate struct {
	Title       *string
	Description *string
	Deadline    *domain.Date
}

// TaskStore defines the interface for the task collection. It is the
// exclusive owner of task identity: IDs come from an internal monotonic
// counter and are never reused, even after deletion. Listing order is
// insertion order; updates never reorder.
//
// Every mutation carries the authenticated caller's ID and enforces the
// authorization rule for that operation. Found-but-not-permitted yields
// ErrForbidden; an absent task ID yields ErrTaskNotFound.
type TaskStore interface {
	// Create adds a task authored by authorID and returns it.
	// Returns ErrPerformerNotFound if input.Performer does not resolve in
	// the user directory.
	Create(ctx context.Context, authorID int64, input NewTask) (*domain.Task, error)

	// GetByID retrieves a task by ID.
	// Returns ErrTaskNotFound if the task does not exist.
	GetByID(ctx context.Context, id int64) (*domain.Task, error)

	// ListByAuthor returns the page of tasks authored by authorID,
	// in insertion order. An offset past the end of the filtered set
	// yields an empty slice, not an error.
	ListByAuthor(ctx context.Context, authorID int64, page Page) ([]domain.Task, error)

	// ListByPerformer returns the page of tasks assigned to performerID,
	// with the same semantics as ListByAuthor.
	ListByPerformer(ctx context.Context, performerID int64, page Page) ([]domain.Task, error)

	// Update applies a partial update to a task's title, description or
	// deadline and returns the updated task. Author-only: returns
	// ErrForbidden when callerID is not the task's author. Completed tasks
	// remain editable by their author.
	Update(ctx context.Context, callerID, taskID int64, update TaskUpdate) (*domain.Task, error)

	// Delete removes a task. Author-only, allowed at any point in the
	// task's lifecycle. The task's ID is never reassigned.
	Delete(ctx context.Context, callerID, taskID int64) error

	// Complete sets the task's result text and moves it to the completed
	// status, returning the updated task. Performer-only: returns
	// ErrForbidden when callerID is not the task's performer (the author
	// included). Completing an already-completed task overwrites the
	// result without erroring.
	Complete(ctx context.Context, callerID, taskID int64, result string) (*domain.Task, error)

	// Snapshot returns a consistent copy of every task in insertion order.
	// Used by the statistics engine, which must never observe a partially
	// applied mutation.
	Snapshot(ctx context.Context) ([]domain.Task, error)
}
