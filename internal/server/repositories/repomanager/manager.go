package repomanager

import (
	"context"
	"database/sql"

	"github.com/devhub/backend/internal/dbx"
	"github.com/devhub/backend/internal/server/repositories/resources"
	"github.com/devhub/backend/internal/server/repositories/tasks"
	"github.com/devhub/backend/internal/server/repositories/users"
)

type RepositoryManager interface {
	RunMigrations(context.Context, *sql.DB) error
	Users(db dbx.DBTX) users.Repository
	Tasks(db dbx.DBTX) tasks.Repository
	Resources(db dbx.DBTX) resources.Repository
}
