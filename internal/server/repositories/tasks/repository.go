package tasks

import (
	"context"
	"time"

	"github.com/devhub/backend/internal/server/models"
)

// RecentTask is a dashboard projection: one recently updated task joined
// with the assigned student's name.
type RecentTask struct {
	Title       string
	Status      string
	StudentName string
	UpdatedAt   time.Time
}

type Repository interface {
	Create(ctx context.Context, task *models.Task) (*models.Task, error)
	List(ctx context.Context) ([]*models.Task, error)
	ListByEndDate(ctx context.Context) ([]*models.Task, error)
	UpdateStatus(ctx context.Context, id, status string) (*models.Task, error)
	Delete(ctx context.Context, id string) error
	CountByStatus(ctx context.Context, status string) (int64, error)
	ListRecent(ctx context.Context, limit int) ([]*RecentTask, error)
}
