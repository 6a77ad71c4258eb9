package resources

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

const resourceColumns = `id, title, description, type, url, category, status, created_by, created_at, updated_at`

func scanResource(s interface{ Scan(...any) error }) (*models.Resource, error) {
	res := &models.Resource{}
	err := s.Scan(&res.ID, &res.Title, &res.Description, &res.Type, &res.URL,
		&res.Category, &res.Status, &res.CreatedBy, &res.CreatedAt, &res.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return res, nil
}

func (r *PostgresRepository) Create(ctx context.Context, res *models.Resource) (*models.Resource, error) {

	query :=
		`INSERT INTO resources (title, description, type, url, category, status, created_by)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)
		 RETURNING ` + resourceColumns

	created, err := scanResource(r.db.QueryRowContext(ctx, query,
		res.Title, res.Description, res.Type, res.URL, res.Category, res.Status, res.CreatedBy))

	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return created, nil
}

// List returns all resources, newest first.
func (r *PostgresRepository) List(ctx context.Context) ([]*models.Resource, error) {
	query := `SELECT ` + resourceColumns + ` FROM resources ORDER BY created_at DESC`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	var result []*models.Resource
	for rows.Next() {
		res, err := scanResource(rows)
		if err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		result = append(result, res)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return result, nil
}

func (r *PostgresRepository) Update(ctx context.Context, res *models.Resource) (*models.Resource, error) {
	query :=
		`UPDATE resources
		 SET title = $2, description = $3, type = $4, url = $5, category = $6, updated_at = now()
		 WHERE id = $1
		 RETURNING ` + resourceColumns

	updated, err := scanResource(r.db.QueryRowContext(ctx, query,
		res.ID, res.Title, res.Description, res.Type, res.URL, res.Category))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	return updated, nil
}

func (r *PostgresRepository) UpdateStatus(ctx context.Context, id, status string) (*models.Resource, error) {
	query :=
		`UPDATE resources SET status = $2, updated_at = now()
		 WHERE id = $1
		 RETURNING ` + resourceColumns

	res, err := scanResource(r.db.QueryRowContext(ctx, query, id, status))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	return res, nil
}

func (r *PostgresRepository) Delete(ctx context.Context, id string) error {
	query := `DELETE FROM resources WHERE id = $1`

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

func (r *PostgresRepository) Count(ctx context.Context) (int64, error) {
	query := `SELECT count(*) FROM resources`

	var count int64
	err := r.db.QueryRowContext(ctx, query).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("db error: %w", err)
	}

	return count, nil
}
