package tasks

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/devhub/backend/internal/common"
	"github.com/devhub/backend/internal/dbx"
	"github.com/devhub/backend/internal/server/models"
)

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

const taskColumns = `id, title, module, student_id, status, start_date, end_date, type, content, difficulty, created_at, updated_at`

func scanTask(s interface{ Scan(...any) error }) (*models.Task, error) {
	task := &models.Task{}
	err := s.Scan(&task.ID, &task.Title, &task.Module, &task.StudentID,
		&task.Status, &task.StartDate, &task.EndDate, &task.Type,
		&task.Content, &task.Difficulty, &task.CreatedAt, &task.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return task, nil
}

func (r *PostgresRepository) Create(ctx context.Context, task *models.Task) (*models.Task, error) {

	query :=
		`INSERT INTO tasks (title, module, student_id, status, start_date, end_date, type, content, difficulty)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		 RETURNING ` + taskColumns

	created, err := scanTask(r.db.QueryRowContext(ctx, query,
		task.Title, task.Module, task.StudentID, task.Status,
		task.StartDate, task.EndDate, task.Type, task.Content, task.Difficulty))

	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return created, nil
}

func (r *PostgresRepository) list(ctx context.Context, order string) ([]*models.Task, error) {
	query := `SELECT ` + taskColumns + ` FROM tasks ORDER BY ` + order

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	var tasks []*models.Task
	for rows.Next() {
		task, err := scanTask(rows)
		if err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		tasks = append(tasks, task)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return tasks, nil
}

// List returns all tasks, newest first, for the admin table.
func (r *PostgresRepository) List(ctx context.Context) ([]*models.Task, error) {
	return r.list(ctx, "created_at DESC")
}

// ListByEndDate returns all tasks ordered by approaching deadline, the
// order the student view shows.
func (r *PostgresRepository) ListByEndDate(ctx context.Context) ([]*models.Task, error) {
	return r.list(ctx, "end_date ASC")
}

func (r *PostgresRepository) UpdateStatus(ctx context.Context, id, status string) (*models.Task, error) {
	query :=
		`UPDATE tasks SET status = $2, updated_at = now()
		 WHERE id = $1
		 RETURNING ` + taskColumns

	task, err := scanTask(r.db.QueryRowContext(ctx, query, id, status))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	return task, nil
}

func (r *PostgresRepository) Delete(ctx context.Context, id string) error {
	query := `DELETE FROM tasks WHERE id = $1`

	res, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	if affected == 0 {
		return common.ErrorNotFound
	}

	return nil
}

func (r *PostgresRepository) CountByStatus(ctx context.Context, status string) (int64, error) {
	query := `SELECT count(*) FROM tasks WHERE status = $1`

	var count int64
	err := r.db.QueryRowContext(ctx, query, status).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("db error: %w", err)
	}

	return count, nil
}

// ListRecent returns the most recently updated tasks with the assigned
// student's name, for the dashboard activity feed.
func (r *PostgresRepository) ListRecent(ctx context.Context, limit int) ([]*RecentTask, error) {
	query :=
		`SELECT t.title, t.status, COALESCE(u.name, ''), t.updated_at
		 FROM tasks t
		 LEFT JOIN users u ON u.id = t.student_id
		 ORDER BY t.updated_at DESC
		 LIMIT $1`

	rows, err := r.db.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	var recent []*RecentTask
	for rows.Next() {
		rt := &RecentTask{}
		if err := rows.Scan(&rt.Title, &rt.Status, &rt.StudentName, &rt.UpdatedAt); err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		recent = append(recent, rt)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return recent, nil
}
