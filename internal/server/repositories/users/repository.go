package users

import (
	"context"

	"github.com/devhub/backend/internal/server/models"
)

// ProfileUpdate carries the profile fields a user may change. Nil fields
// are left untouched. Role and password deliberately have no place here.
type ProfileUpdate struct {
	Name          *string
	Title         *string
	CodingHandles *models.CodingHandles
}

type Repository interface {
	Create(ctx context.Context, user *models.User) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	GetByID(ctx context.Context, id string) (*models.User, error)
	UpdateProfile(ctx context.Context, id string, upd ProfileUpdate) (*models.User, error)
	CountByRole(ctx context.Context, role string) (int64, error)
}
