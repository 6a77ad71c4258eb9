package resources

import (
	"context"

	"github.com/devhub/backend/internal/server/models"
)

type Repository interface {
	Create(ctx context.Context, res *models.Resource) (*models.Resource, error)
	List(ctx context.Context) ([]*models.Resource, error)
	Update(ctx context.Context, res *models.Resource) (*models.Resource, error)
	UpdateStatus(ctx context.Context, id, status string) (*models.Resource, error)
	Delete(ctx context.Context, id string) error
	Count(ctx context.Context) (int64, error)
}
