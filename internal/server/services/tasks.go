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

// TaskStats are the per-status task counts shown on dashboards.
type TaskStats struct {
	Pending   int64 `json:"pending"`
	Active    int64 `json:"active"`
	Completed int64 `json:"completed"`
}

type TaskService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
}

func NewTaskService(db *sql.DB, m repomanager.RepositoryManager) *TaskService {
	return &TaskService{db: db, repomanager: m}
}

// Create validates and persists a new task, applying the same defaults the
// admin form relies on.
func (s *TaskService) Create(ctx context.Context, task *models.Task) (*models.Task, error) {

	task.Title = strings.TrimSpace(task.Title)
	task.Module = strings.TrimSpace(task.Module)
	if task.Title == "" || task.Module == "" || task.StartDate.IsZero() || task.EndDate.IsZero() {
		return nil, common.ErrorValidation
	}
	if task.EndDate.Before(task.StartDate) {
		return nil, common.ErrorValidation
	}

	if task.Status == "" {
		task.Status = models.TaskStatusActive
	}
	if task.Type == "" {
		task.Type = models.TaskTypeLink
	}
	if task.Difficulty == "" {
		task.Difficulty = models.DifficultyMedium
	}
	if !models.ValidTaskStatus(task.Status) {
		return nil, common.ErrorValidation
	}

	repo := s.repomanager.Tasks(s.db)

	created, err := repo.Create(ctx, task)
	if err != nil {
		return nil, fmt.Errorf("error creating task: %w", err)
	}

	return created, nil
}

// List returns all tasks for the admin table, newest first.
func (s *TaskService) List(ctx context.Context) ([]*models.Task, error) {
	tasks, err := s.repomanager.Tasks(s.db).List(ctx)
	if err != nil {
		return nil, common.ErrorInternal
	}
	return tasks, nil
}

// ListForStudents returns all tasks ordered by approaching deadline.
func (s *TaskService) ListForStudents(ctx context.Context) ([]*models.Task, error) {
	tasks, err := s.repomanager.Tasks(s.db).ListByEndDate(ctx)
	if err != nil {
		return nil, common.ErrorInternal
	}
	return tasks, nil
}

// UpdateStatus moves a task between Active/Draft/Completed.
func (s *TaskService) UpdateStatus(ctx context.Context, id, status string) (*models.Task, error) {
	if !models.ValidTaskStatus(status) {
		return nil, common.ErrorValidation
	}

	task, err := s.repomanager.Tasks(s.db).UpdateStatus(ctx, id, status)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, common.ErrorNotFound
		}
		return nil, common.ErrorInternal
	}

	return task, nil
}

// Delete removes a task.
func (s *TaskService) Delete(ctx context.Context, id string) error {
	err := s.repomanager.Tasks(s.db).Delete(ctx, id)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return common.ErrorNotFound
		}
		return common.ErrorInternal
	}
	return nil
}

// Stats returns the per-status task counts.
func (s *TaskService) Stats(ctx context.Context) (*TaskStats, error) {
	repo := s.repomanager.Tasks(s.db)

	stats := &TaskStats{}
	var err error

	if stats.Pending, err = repo.CountByStatus(ctx, models.TaskStatusDraft); err != nil {
		return nil, common.ErrorInternal
	}
	if stats.Active, err = repo.CountByStatus(ctx, models.TaskStatusActive); err != nil {
		return nil, common.ErrorInternal
	}
	if stats.Completed, err = repo.CountByStatus(ctx, models.TaskStatusCompleted); err != nil {
		return nil, common.ErrorInternal
	}

	return stats, nil
}
