package services

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/devhub/backend/internal/common"
	"github.com/devhub/backend/internal/dbx"
	"github.com/devhub/backend/internal/server/models"
	"github.com/devhub/backend/internal/server/repositories/repomanager"
)

// recentActivityLimit caps the dashboard activity feed.
const recentActivityLimit = 5

// ActivityEntry is one row of the dashboard activity feed.
type ActivityEntry struct {
	StudentName string `json:"studentName"`
	TaskName    string `json:"taskName"`
	Status      string `json:"status"`
	LastUpdated string `json:"lastUpdated"`
}

// DashboardStats aggregates the admin dashboard numbers.
type DashboardStats struct {
	UserCount         int64           `json:"userCount"`
	PendingTasksCount int64           `json:"pendingTasksCount"`
	ResourceCount     int64           `json:"resourceCount"`
	RecentActivity    []ActivityEntry `json:"recentActivity"`
}

type StatsService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
	now         func() time.Time
}

func NewStatsService(db *sql.DB, m repomanager.RepositoryManager) *StatsService {
	return &StatsService{db: db, repomanager: m, now: time.Now}
}

// Dashboard collects the admin dashboard stats: student count, draft task
// count, resource count and the recent activity feed. The reads run in one
// read-only transaction so the numbers describe a single snapshot.
func (s *StatsService) Dashboard(ctx context.Context) (*DashboardStats, error) {
	stats := &DashboardStats{RecentActivity: []ActivityEntry{}}

	err := dbx.WithTx(ctx, s.db, &sql.TxOptions{ReadOnly: true}, func(ctx context.Context, tx dbx.DBTX) error {
		usersRepo := s.repomanager.Users(tx)
		tasksRepo := s.repomanager.Tasks(tx)
		resourcesRepo := s.repomanager.Resources(tx)

		var err error
		if stats.UserCount, err = usersRepo.CountByRole(ctx, models.RoleStudent); err != nil {
			return err
		}
		if stats.PendingTasksCount, err = tasksRepo.CountByStatus(ctx, models.TaskStatusDraft); err != nil {
			return err
		}
		if stats.ResourceCount, err = resourcesRepo.Count(ctx); err != nil {
			return err
		}

		recent, err := tasksRepo.ListRecent(ctx, recentActivityLimit)
		if err != nil {
			return err
		}

		for _, task := range recent {
			name := task.StudentName
			if name == "" {
				name = "Unknown Student"
			}
			stats.RecentActivity = append(stats.RecentActivity, ActivityEntry{
				StudentName: name,
				TaskName:    task.Title,
				Status:      activityStatus(task.Status),
				LastUpdated: formatTimeAgo(s.now(), task.UpdatedAt),
			})
		}
		return nil
	})
	if err != nil {
		return nil, common.ErrorInternal
	}

	return stats, nil
}

// activityStatus maps stored task statuses to the labels the dashboard
// feed shows.
func activityStatus(status string) string {
	switch status {
	case models.TaskStatusDraft:
		return "Submitted"
	case models.TaskStatusActive:
		return "Reviewing"
	case models.TaskStatusCompleted:
		return "Completed"
	}
	return "Active"
}

// formatTimeAgo renders a past timestamp as a short relative string.
func formatTimeAgo(now, past time.Time) string {
	if past.IsZero() {
		return "Just now"
	}

	seconds := int64(now.Sub(past).Seconds())
	if seconds < 60 {
		return "Just now"
	}

	minutes := seconds / 60
	if minutes < 60 {
		return fmt.Sprintf("%dm ago", minutes)
	}

	hours := minutes / 60
	if hours < 24 {
		return fmt.Sprintf("%dh ago", hours)
	}

	days := hours / 24
	if days < 7 {
		return fmt.Sprintf("%dd ago", days)
	}

	return past.Format("1/2/2006")
}
