package stats

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/phrazzld/taskdel-api/internal/domain"
	"github.com/phrazzld/taskdel-api/internal/mocks"
	"github.com/phrazzld/taskdel-api/internal/platform/memory"
	"github.com/phrazzld/taskdel-api/internal/store"
)

func newTestEnv(t *testing.T) (*memory.Directory, *memory.TaskStore, *Service) {
	t.Helper()

	roster := []domain.User{
		{ID: 1, Name: "Нурбай", Login: "UserNyrbai", HashedPassword: "plain:111", Ava: "a1"},
		{ID: 2, Name: "Роман", Login: "UserRoman", HashedPassword: "plain:222", Ava: "a2"},
	}
	directory, err := memory.NewDirectory(roster, mocks.PlainVerifier{})
	require.NoError(t, err)

	tasks := memory.NewTaskStore(directory)
	return directory, tasks, NewService(tasks, directory)
}

func createTask(t *testing.T, tasks *memory.TaskStore, author, performer int64, deadline domain.Date) *domain.Task {
	t.Helper()
	task, err := tasks.Create(context.Background(), author, store.NewTask{
		Title:    "task",
		Deadline: deadline,
		Performer: performer,
	})
	require.NoError(t, err)
	return task
}

func TestForUserBucketsAreExclusiveAndExhaustive(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	_, tasks, svc := newTestEnv(t)

	asOf := domain.NewDate(2026, time.June, 15)

	// One of each class, all assigned to user 2.
	createTask(t, tasks, 1, 2, asOf.AddDays(5)) // in work
	overdue := createTask(t, tasks, 1, 2, asOf.AddDays(-5))
	_ = overdue // failed
	done := createTask(t, tasks, 1, 2, asOf.AddDays(-5))
	_, err := tasks.Complete(ctx, 2, done.ID, "done")
	require.NoError(t, err)

	// A task assigned to user 1 must not leak into user 2's counts.
	createTask(t, tasks, 2, 1, asOf.AddDays(1))

	stats, err := svc.ForUser(ctx, 2, asOf)
	require.NoError(t, err)
	assert.Equal(t, UserStats{Completed: 1, InWork: 1, Failed: 1}, stats)
	assert.Equal(t, 3, stats.Completed+stats.InWork+stats.Failed)
}

func TestForUserReclassifiesAsTimePasses(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	_, tasks, svc := newTestEnv(t)

	deadline := domain.NewDate(2026, time.June, 15)
	createTask(t, tasks, 1, 2, deadline)

	onDeadline, err := svc.ForUser(ctx, 2, deadline)
	require.NoError(t, err)
	assert.Equal(t, UserStats{InWork: 1}, onDeadline)

	// The same stored state classifies differently one day later.
	dayAfter, err := svc.ForUser(ctx, 2, deadline.AddDays(1))
	require.NoError(t, err)
	assert.Equal(t, UserStats{Failed: 1}, dayAfter)
}

func TestCompletedNeverBecomesFailed(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	_, tasks, svc := newTestEnv(t)

	deadline := domain.NewDate(2026, time.June, 15)
	task := createTask(t, tasks, 1, 2, deadline)
	_, err := tasks.Complete(ctx, 2, task.ID, "done")
	require.NoError(t, err)

	longAfter, err := svc.ForUser(ctx, 2, deadline.AddDays(365))
	require.NoError(t, err)
	assert.Equal(t, UserStats{Completed: 1}, longAfter)
}

func TestGlobalScenarioDelegatedOverdueTask(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	_, tasks, svc := newTestEnv(t)

	today := domain.Today()
	yesterday := today.AddDays(-1)

	// UserNyrbai delegates a task to UserRoman with yesterday's deadline.
	task := createTask(t, tasks, 1, 2, yesterday)

	rows, err := svc.Global(ctx, today)
	require.NoError(t, err)
	require.Len(t, rows, 2)

	// Roster order, with roster identity attached to each row.
	assert.Equal(t, int64(1), rows[0].User.ID)
	assert.Equal(t, int64(2), rows[1].User.ID)
	assert.Equal(t, "Роман", rows[1].User.Name)

	assert.Equal(t, UserStats{}, rows[0].Stats)
	assert.Equal(t, UserStats{Failed: 1}, rows[1].Stats)

	// After Roman completes it, the failure turns into a completion.
	_, err = tasks.Complete(ctx, 2, task.ID, "done")
	require.NoError(t, err)

	rows, err = svc.Global(ctx, today)
	require.NoError(t, err)
	assert.Equal(t, UserStats{Completed: 1}, rows[1].Stats)
	assert.Equal(t, 0, rows[1].Stats.Failed)
}

func TestGlobalWithEmptyStore(t *testing.T) {
	t.Parallel()

	_, _, svc := newTestEnv(t)

	rows, err := svc.Global(context.Background(), domain.Today())
	require.NoError(t, err)
	require.Len(t, rows, 2)
	for _, row := range rows {
		assert.Equal(t, UserStats{}, row.Stats)
	}
}
