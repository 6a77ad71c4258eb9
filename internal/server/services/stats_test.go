package services

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/devhub/backend/internal/server/models"
	tasksrepo "github.com/devhub/backend/internal/server/repositories/tasks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTxDB returns a database that accepts the snapshot transaction the
// dashboard opens. The fake repositories ignore the handle; only
// Begin/Commit reach the mock.
func newTxDB(t *testing.T) *sql.DB {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	mock.ExpectBegin()
	mock.ExpectCommit()
	return db
}

func TestDashboard_Aggregates(t *testing.T) {
	rm := newFakeRepoManager()

	rm.u.byEmail["a@x.com"] = &models.User{ID: "u-1", Role: models.RoleStudent}
	rm.u.byEmail["b@x.com"] = &models.User{ID: "u-2", Role: models.RoleStudent}
	rm.u.byEmail["boss@x.com"] = &models.User{ID: "u-3", Role: models.RoleAdmin}

	rm.t.tasks = []*models.Task{
		{ID: "t-1", Status: models.TaskStatusDraft},
		{ID: "t-2", Status: models.TaskStatusActive},
	}
	now := time.Now()
	rm.t.recent = []*tasksrepo.RecentTask{
		{Title: "Build API", Status: models.TaskStatusDraft, StudentName: "Ann", UpdatedAt: now.Add(-30 * time.Second)},
		{Title: "Read docs", Status: models.TaskStatusActive, StudentName: "", UpdatedAt: now.Add(-5 * time.Minute)},
		{Title: "Ship it", Status: models.TaskStatusCompleted, StudentName: "Bob", UpdatedAt: now.Add(-3 * time.Hour)},
	}

	rm.r.resources = []*models.Resource{{ID: "r-1"}, {ID: "r-2"}}

	svc := NewStatsService(newTxDB(t), rm)
	svc.now = func() time.Time { return now }

	stats, err := svc.Dashboard(context.Background())
	require.NoError(t, err)

	assert.Equal(t, int64(2), stats.UserCount, "admins are not counted")
	assert.Equal(t, int64(1), stats.PendingTasksCount)
	assert.Equal(t, int64(2), stats.ResourceCount)

	require.Len(t, stats.RecentActivity, 3)
	assert.Equal(t, ActivityEntry{StudentName: "Ann", TaskName: "Build API", Status: "Submitted", LastUpdated: "Just now"}, stats.RecentActivity[0])
	assert.Equal(t, ActivityEntry{StudentName: "Unknown Student", TaskName: "Read docs", Status: "Reviewing", LastUpdated: "5m ago"}, stats.RecentActivity[1])
	assert.Equal(t, ActivityEntry{StudentName: "Bob", TaskName: "Ship it", Status: "Completed", LastUpdated: "3h ago"}, stats.RecentActivity[2])
}

func TestDashboard_LimitsRecentActivity(t *testing.T) {
	rm := newFakeRepoManager()
	for i := 0; i < 8; i++ {
		rm.t.recent = append(rm.t.recent, &tasksrepo.RecentTask{Title: "t", Status: models.TaskStatusActive, UpdatedAt: time.Now()})
	}

	svc := NewStatsService(newTxDB(t), rm)

	stats, err := svc.Dashboard(context.Background())
	require.NoError(t, err)
	assert.Len(t, stats.RecentActivity, recentActivityLimit)
}

func TestFormatTimeAgo(t *testing.T) {
	now := time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name string
		past time.Time
		want string
	}{
		{name: "zero time", past: time.Time{}, want: "Just now"},
		{name: "seconds", past: now.Add(-45 * time.Second), want: "Just now"},
		{name: "minutes", past: now.Add(-12 * time.Minute), want: "12m ago"},
		{name: "hours", past: now.Add(-7 * time.Hour), want: "7h ago"},
		{name: "days", past: now.Add(-49 * time.Hour), want: "2d ago"},
		{name: "older than a week", past: now.Add(-10 * 24 * time.Hour), want: "8/20/2026"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, formatTimeAgo(now, tc.past))
		})
	}
}
