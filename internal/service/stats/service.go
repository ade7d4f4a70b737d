// Package stats derives per-user task statistics on demand.
//
// Nothing here is persisted: every call folds the task store's current
// snapshot against the observation date, so the counts shift as deadlines
// pass even when no task changes.
package stats

import (
	"context"
	"fmt"

	"github.com/phrazzld/taskdel-api/internal/domain"
	"github.com/phrazzld/taskdel-api/internal/store"
)

// UserStats buckets every task assigned to a user into exactly one of
// three mutually exclusive classes. Completed + InWork + Failed always
// equals the user's total assigned task count.
type UserStats struct {
	Completed int
	InWork    int
	Failed    int
}

// UserRow pairs a roster entry with its statistics, for the global view.
type UserRow struct {
	User  domain.User
	Stats UserStats
}

// Service computes statistics over the task store and user directory.
type Service struct {
	tasks store.TaskStore
	users store.UserDirectory
}

// NewService creates a statistics Service over the given stores.
func NewService(tasks store.TaskStore, users store.UserDirectory) *Service {
	return &Service{tasks: tasks, users: users}
}

// ForUser computes the statistics for tasks assigned to userID, observed
// on asOf. A completed task is counted completed regardless of deadline;
// an in-work task past its deadline counts as failed; everything else is
// in work.
func (s *Service) ForUser(ctx context.Context, userID int64, asOf domain.Date) (UserStats, error) {
	snapshot, err := s.tasks.Snapshot(ctx)
	if err != nil {
		return UserStats{}, fmt.Errorf("reading task snapshot: %w", err)
	}

	return bucket(snapshot, userID, asOf), nil
}

// Global computes statistics for every roster entry in roster order.
// All rows are folded from a single snapshot so the global view is
// internally consistent.
func (s *Service) Global(ctx context.Context, asOf domain.Date) ([]UserRow, error) {
	users, err := s.users.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing roster: %w", err)
	}

	snapshot, err := s.tasks.Snapshot(ctx)
	if err != nil {
		return nil, fmt.Errorf("reading task snapshot: %w", err)
	}

	rows := make([]UserRow, 0, len(users))
	for _, user := range users {
		rows = append(rows, UserRow{
			User:  user,
			Stats: bucket(snapshot, user.ID, asOf),
		})
	}
	return rows, nil
}

// bucket classifies every task assigned to userID into exactly one bucket.
func bucket(tasks []domain.Task, userID int64, asOf domain.Date) UserStats {
	var stats UserStats
	for i := range tasks {
		task := &tasks[i]
		if task.Performer != userID {
			continue
		}
		switch {
		case task.IsCompleted():
			stats.Completed++
		case task.IsFailed(asOf):
			stats.Failed++
		default:
			stats.InWork++
		}
	}
	return stats
}
