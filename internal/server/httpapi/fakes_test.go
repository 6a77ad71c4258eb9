package httpapi

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/devhub/backend/internal/common"
	"github.com/devhub/backend/internal/dbx"
	"github.com/devhub/backend/internal/server/models"
	resourcesrepo "github.com/devhub/backend/internal/server/repositories/resources"
	tasksrepo "github.com/devhub/backend/internal/server/repositories/tasks"
	usersrepo "github.com/devhub/backend/internal/server/repositories/users"
)

// In-memory repositories backing the end-to-end API tests. The handlers
// run against real services; only the storage layer is substituted.

type memUsersRepo struct {
	byEmail map[string]*models.User
	nextID  int
}

func (m *memUsersRepo) Create(ctx context.Context, u *models.User) (*models.User, error) {
	if _, ok := m.byEmail[u.Email]; ok {
		return nil, common.ErrorAlreadyExists
	}
	m.nextID++
	copied := *u
	copied.ID = fmt.Sprintf("u-%d", m.nextID)
	copied.CreatedAt = time.Now()
	copied.UpdatedAt = copied.CreatedAt
	if copied.Title == "" {
		copied.Title = "web developer"
	}
	m.byEmail[copied.Email] = &copied
	return &copied, nil
}

func (m *memUsersRepo) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	u, ok := m.byEmail[email]
	if !ok {
		return nil, common.ErrorNotFound
	}
	return u, nil
}

func (m *memUsersRepo) GetByID(ctx context.Context, id string) (*models.User, error) {
	for _, u := range m.byEmail {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, common.ErrorNotFound
}

func (m *memUsersRepo) UpdateProfile(ctx context.Context, id string, upd usersrepo.ProfileUpdate) (*models.User, error) {
	u, err := m.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if upd.Name != nil {
		u.Name = *upd.Name
	}
	if upd.Title != nil {
		u.Title = *upd.Title
	}
	if upd.CodingHandles != nil {
		u.CodingHandles = *upd.CodingHandles
	}
	u.UpdatedAt = time.Now()
	return u, nil
}

func (m *memUsersRepo) CountByRole(ctx context.Context, role string) (int64, error) {
	var n int64
	for _, u := range m.byEmail {
		if u.Role == role {
			n++
		}
	}
	return n, nil
}

type memTasksRepo struct {
	tasks  []*models.Task
	nextID int
}

func (m *memTasksRepo) Create(ctx context.Context, task *models.Task) (*models.Task, error) {
	m.nextID++
	copied := *task
	copied.ID = fmt.Sprintf("t-%d", m.nextID)
	copied.CreatedAt = time.Now()
	copied.UpdatedAt = copied.CreatedAt
	m.tasks = append(m.tasks, &copied)
	return &copied, nil
}

func (m *memTasksRepo) List(ctx context.Context) ([]*models.Task, error) {
	return m.tasks, nil
}

func (m *memTasksRepo) ListByEndDate(ctx context.Context) ([]*models.Task, error) {
	return m.tasks, nil
}

func (m *memTasksRepo) UpdateStatus(ctx context.Context, id, status string) (*models.Task, error) {
	for _, t := range m.tasks {
		if t.ID == id {
			t.Status = status
			t.UpdatedAt = time.Now()
			return t, nil
		}
	}
	return nil, common.ErrorNotFound
}

func (m *memTasksRepo) Delete(ctx context.Context, id string) error {
	for i, t := range m.tasks {
		if t.ID == id {
			m.tasks = append(m.tasks[:i], m.tasks[i+1:]...)
			return nil
		}
	}
	return common.ErrorNotFound
}

func (m *memTasksRepo) CountByStatus(ctx context.Context, status string) (int64, error) {
	var n int64
	for _, t := range m.tasks {
		if t.Status == status {
			n++
		}
	}
	return n, nil
}

func (m *memTasksRepo) ListRecent(ctx context.Context, limit int) ([]*tasksrepo.RecentTask, error) {
	return nil, nil
}

type memResourcesRepo struct {
	resources []*models.Resource
	nextID    int
}

func (m *memResourcesRepo) Create(ctx context.Context, res *models.Resource) (*models.Resource, error) {
	m.nextID++
	copied := *res
	copied.ID = fmt.Sprintf("r-%d", m.nextID)
	copied.CreatedAt = time.Now()
	copied.UpdatedAt = copied.CreatedAt
	m.resources = append(m.resources, &copied)
	return &copied, nil
}

func (m *memResourcesRepo) List(ctx context.Context) ([]*models.Resource, error) {
	return m.resources, nil
}

func (m *memResourcesRepo) Update(ctx context.Context, res *models.Resource) (*models.Resource, error) {
	for _, r := range m.resources {
		if r.ID == res.ID {
			r.Title = res.Title
			r.Description = res.Description
			r.Type = res.Type
			r.URL = res.URL
			r.Category = res.Category
			r.UpdatedAt = time.Now()
			return r, nil
		}
	}
	return nil, common.ErrorNotFound
}

func (m *memResourcesRepo) UpdateStatus(ctx context.Context, id, status string) (*models.Resource, error) {
	for _, r := range m.resources {
		if r.ID == id {
			r.Status = status
			r.UpdatedAt = time.Now()
			return r, nil
		}
	}
	return nil, common.ErrorNotFound
}

func (m *memResourcesRepo) Delete(ctx context.Context, id string) error {
	for i, r := range m.resources {
		if r.ID == id {
			m.resources = append(m.resources[:i], m.resources[i+1:]...)
			return nil
		}
	}
	return common.ErrorNotFound
}

func (m *memResourcesRepo) Count(ctx context.Context) (int64, error) {
	return int64(len(m.resources)), nil
}

type memRepoManager struct {
	u *memUsersRepo
	t *memTasksRepo
	r *memResourcesRepo
}

func newMemRepoManager() *memRepoManager {
	return &memRepoManager{
		u: &memUsersRepo{byEmail: map[string]*models.User{}},
		t: &memTasksRepo{},
		r: &memResourcesRepo{},
	}
}

func (m *memRepoManager) RunMigrations(context.Context, *sql.DB) error    { return nil }
func (m *memRepoManager) Users(db dbx.DBTX) usersrepo.Repository          { return m.u }
func (m *memRepoManager) Tasks(db dbx.DBTX) tasksrepo.Repository          { return m.t }
func (m *memRepoManager) Resources(db dbx.DBTX) resourcesrepo.Repository  { return m.r }
