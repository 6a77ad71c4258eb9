package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/devhub/backend/internal/common"
	"github.com/devhub/backend/internal/server/models"
	"github.com/devhub/backend/internal/server/repositories/repomanager"
)

type ResourceService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
}

func NewResourceService(db *sql.DB, m repomanager.RepositoryManager) *ResourceService {
	return &ResourceService{db: db, repomanager: m}
}

// Create validates and persists a resource on behalf of createdBy (the
// authenticated admin).
func (s *ResourceService) Create(ctx context.Context, res *models.Resource, createdBy string) (*models.Resource, error) {

	res.Title = strings.TrimSpace(res.Title)
	res.URL = strings.TrimSpace(res.URL)
	if res.Title == "" || res.URL == "" || !models.ValidResourceType(res.Type) {
		return nil, common.ErrorValidation
	}

	if res.Category == "" {
		res.Category = "General"
	}
	res.Status = models.ResourceStatusNotStarted
	res.CreatedBy = createdBy

	repo := s.repomanager.Resources(s.db)

	created, err := repo.Create(ctx, res)
	if err != nil {
		return nil, fmt.Errorf("error creating resource: %w", err)
	}

	return created, nil
}

// List returns all resources, newest first.
func (s *ResourceService) List(ctx context.Context) ([]*models.Resource, error) {
	list, err := s.repomanager.Resources(s.db).List(ctx)
	if err != nil {
		return nil, common.ErrorInternal
	}
	return list, nil
}

// Update replaces a resource's descriptive fields.
func (s *ResourceService) Update(ctx context.Context, res *models.Resource) (*models.Resource, error) {
	if strings.TrimSpace(res.Title) == "" || strings.TrimSpace(res.URL) == "" || !models.ValidResourceType(res.Type) {
		return nil, common.ErrorValidation
	}

	updated, err := s.repomanager.Resources(s.db).Update(ctx, res)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, common.ErrorNotFound
		}
		return nil, common.ErrorInternal
	}

	return updated, nil
}

// UpdateStatus records a student's progress on a resource.
func (s *ResourceService) UpdateStatus(ctx context.Context, id, status string) (*models.Resource, error) {
	if !models.ValidResourceStatus(status) {
		return nil, common.ErrorValidation
	}

	res, err := s.repomanager.Resources(s.db).UpdateStatus(ctx, id, status)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, common.ErrorNotFound
		}
		return nil, common.ErrorInternal
	}

	return res, nil
}

// Delete removes a resource.
func (s *ResourceService) Delete(ctx context.Context, id string) error {
	err := s.repomanager.Resources(s.db).Delete(ctx, id)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return common.ErrorNotFound
		}
		return common.ErrorInternal
	}
	return nil
}
