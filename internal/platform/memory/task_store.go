package memory

import (
	"context"
	"fmt"
	"sync"

	"github.com/phrazzld/taskdel-api/internal/domain"
	"github.com/phrazzld/taskdel-api/internal/store"
)

// TaskStore is the in-memory task collection and the exclusive owner of
// task identity. IDs come from nextID, which only ever increases, so no
// two tasks ever share an ID even across deletions.
//
// The map gives O(1) point lookup; the order slice preserves insertion
// order for listing. One mutex guards both together with the counter, so
// every read observes a fully applied mutation or none of it.
type TaskStore struct {
	mu        sync.RWMutex
	tasks     map[int64]*domain.Task
	order     []int64
	nextID    int64
	directory store.UserDirectory
}

// NewTaskStore creates an empty TaskStore. The directory is consulted at
// task creation to validate that the performer exists.
func NewTaskStore(directory store.UserDirectory) *TaskStore {
	return &TaskStore{
		tasks:     make(map[int64]*domain.Task),
		nextID:    1,
		directory: directory,
	}
}

// Create adds a task authored by authorID. The performer reference is
// validated against the directory before an ID is consumed, so a rejected
// create never burns a task ID.
func (s *TaskStore) Create(ctx context.Context, authorID int64, input store.NewTask) (*domain.Task, error) {
	if _, err := s.directory.GetByID(ctx, input.Performer); err != nil {
		if store.IsNotFoundError(err) {
			return nil, store.ErrPerformerNotFound
		}
		return nil, fmt.Errorf("resolving performer %d: %w", input.Performer, err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	task, err := domain.NewTask(s.nextID, authorID, input.Performer, input.Title, input.Description, input.Deadline)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", store.ErrInvalidEntity, err)
	}
	s.nextID++

	s.tasks[task.ID] = task
	s.order = append(s.order, task.ID)

	return task.Clone(), nil
}

// GetByID retrieves a task by ID.
func (s *TaskStore) GetByID(ctx context.Context, id int64) (*domain.Task, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	task, ok := s.tasks[id]
	if !ok {
		return nil, store.ErrTaskNotFound
	}
	return task.Clone(), nil
}

// ListByAuthor returns the page of tasks authored by authorID in
// insertion order.
func (s *TaskStore) ListByAuthor(ctx context.Context, authorID int64, page store.Page) ([]domain.Task, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.listWhere(func(t *domain.Task) bool { return t.Author == authorID }, page), nil
}

// ListByPerformer returns the page of tasks assigned to performerID in
// insertion order.
func (s *TaskStore) ListByPerformer(ctx context.Context, performerID int64, page store.Page) ([]domain.Task, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.listWhere(func(t *domain.Task) bool { return t.Performer == performerID }, page), nil
}

// listWhere filters the collection in insertion order, then applies the
// page window. An offset past the end of the filtered set yields an empty
// slice. Callers must hold at least the read lock.
func (s *TaskStore) listWhere(match func(*domain.Task) bool, page store.Page) []domain.Task {
	filtered := make([]*domain.Task, 0)
	for _, id := range s.order {
		if task := s.tasks[id]; match(task) {
			filtered = append(filtered, task)
		}
	}

	if page.Offset >= len(filtered) {
		return []domain.Task{}
	}

	end := page.Offset + page.Limit
	if end > len(filtered) {
		end = len(filtered)
	}

	result := make([]domain.Task, 0, end-page.Offset)
	for _, task := range filtered[page.Offset:end] {
		result = append(result, *task.Clone())
	}
	return result
}

// Update applies a partial update to an author's task. Completed tasks
// stay editable; the lifecycle places no restriction on author edits.
func (s *TaskStore) Update(ctx context.Context, callerID, taskID int64, update store.TaskUpdate) (*domain.Task, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	task, ok := s.tasks[taskID]
	if !ok {
		return nil, store.ErrTaskNotFound
	}
	if task.Author != callerID {
		return nil, store.ErrForbidden
	}

	if update.Title != nil {
		task.Title = *update.Title
	}
	if update.Description != nil {
		task.Description = *update.Description
	}
	if update.Deadline != nil {
		task.Deadline = *update.Deadline
	}

	return task.Clone(), nil
}

// Delete removes an author's task. The order slice is compacted but the
// ID counter is untouched, so the deleted ID is gone for good.
func (s *TaskStore) Delete(ctx context.Context, callerID, taskID int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	task, ok := s.tasks[taskID]
	if !ok {
		return store.ErrTaskNotFound
	}
	if task.Author != callerID {
		return store.ErrForbidden
	}

	delete(s.tasks, taskID)
	for i, id := range s.order {
		if id == taskID {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}

	return nil
}

// Complete records the performer's result and moves the task to the
// completed status. Repeat completions overwrite the result silently.
func (s *TaskStore) Complete(ctx context.Context, callerID, taskID int64, result string) (*domain.Task, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	task, ok := s.tasks[taskID]
	if !ok {
		return nil, store.ErrTaskNotFound
	}
	if task.Performer != callerID {
		return nil, store.ErrForbidden
	}

	task.Complete(result)

	return task.Clone(), nil
}

// Snapshot returns a consistent copy of every task in insertion order.
func (s *TaskStore) Snapshot(ctx context.Context) ([]domain.Task, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	snapshot := make([]domain.Task, 0, len(s.order))
	for _, id := range s.order {
		snapshot = append(snapshot, *s.tasks[id].Clone())
	}
	return snapshot, nil
}

// Interface guard.
var _ store.TaskStore = (*TaskStore)(nil)
