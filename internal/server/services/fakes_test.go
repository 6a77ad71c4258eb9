package services

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

// --- in-memory fakes shared by the service tests ---

type fakeUsersRepo struct {
	byEmail map[string]*models.User
	nextID  int
	err     error
}

func newFakeUsersRepo() *fakeUsersRepo {
	return &fakeUsersRepo{byEmail: map[string]*models.User{}}
}

func (f *fakeUsersRepo) Create(ctx context.Context, u *models.User) (*models.User, error) {
	if f.err != nil {
		return nil, f.err
	}
	if _, ok := f.byEmail[u.Email]; ok {
		return nil, common.ErrorAlreadyExists
	}
	f.nextID++
	copied := *u
	copied.ID = fmt.Sprintf("u-%d", f.nextID)
	copied.CreatedAt = time.Now()
	copied.UpdatedAt = copied.CreatedAt
	if copied.Title == "" {
		copied.Title = "web developer"
	}
	f.byEmail[copied.Email] = &copied
	return &copied, nil
}

func (f *fakeUsersRepo) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	if f.err != nil {
		return nil, f.err
	}
	u, ok := f.byEmail[email]
	if !ok {
		return nil, common.ErrorNotFound
	}
	return u, nil
}

func (f *fakeUsersRepo) GetByID(ctx context.Context, id string) (*models.User, error) {
	if f.err != nil {
		return nil, f.err
	}
	for _, u := range f.byEmail {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, common.ErrorNotFound
}

func (f *fakeUsersRepo) UpdateProfile(ctx context.Context, id string, upd usersrepo.ProfileUpdate) (*models.User, error) {
	u, err := f.GetByID(ctx, id)
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

func (f *fakeUsersRepo) CountByRole(ctx context.Context, role string) (int64, error) {
	if f.err != nil {
		return 0, f.err
	}
	var n int64
	for _, u := range f.byEmail {
		if u.Role == role {
			n++
		}
	}
	return n, nil
}

type fakeTasksRepo struct {
	tasks  []*models.Task
	recent []*tasksrepo.RecentTask
	nextID int
	err    error
}

func (f *fakeTasksRepo) Create(ctx context.Context, task *models.Task) (*models.Task, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.nextID++
	copied := *task
	copied.ID = fmt.Sprintf("t-%d", f.nextID)
	copied.CreatedAt = time.Now()
	copied.UpdatedAt = copied.CreatedAt
	f.tasks = append(f.tasks, &copied)
	return &copied, nil
}

func (f *fakeTasksRepo) List(ctx context.Context) ([]*models.Task, error) {
	return f.tasks, f.err
}

func (f *fakeTasksRepo) ListByEndDate(ctx context.Context) ([]*models.Task, error) {
	return f.tasks, f.err
}

func (f *fakeTasksRepo) UpdateStatus(ctx context.Context, id, status string) (*models.Task, error) {
	if f.err != nil {
		return nil, f.err
	}
	for _, t := range f.tasks {
		if t.ID == id {
			t.Status = status
			t.UpdatedAt = time.Now()
			return t, nil
		}
	}
	return nil, common.ErrorNotFound
}

func (f *fakeTasksRepo) Delete(ctx context.Context, id string) error {
	if f.err != nil {
		return f.err
	}
	for i, t := range f.tasks {
		if t.ID == id {
			f.tasks = append(f.tasks[:i], f.tasks[i+1:]...)
			return nil
		}
	}
	return common.ErrorNotFound
}

func (f *fakeTasksRepo) CountByStatus(ctx context.Context, status string) (int64, error) {
	if f.err != nil {
		return 0, f.err
	}
	var n int64
	for _, t := range f.tasks {
		if t.Status == status {
			n++
		}
	}
	return n, nil
}

func (f *fakeTasksRepo) ListRecent(ctx context.Context, limit int) ([]*tasksrepo.RecentTask, error) {
	if f.err != nil {
		return nil, f.err
	}
	if len(f.recent) > limit {
		return f.recent[:limit], nil
	}
	return f.recent, nil
}

type fakeResourcesRepo struct {
	resources []*models.Resource
	nextID    int
	err       error
}

func (f *fakeResourcesRepo) Create(ctx context.Context, res *models.Resource) (*models.Resource, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.nextID++
	copied := *res
	copied.ID = fmt.Sprintf("r-%d", f.nextID)
	copied.CreatedAt = time.Now()
	copied.UpdatedAt = copied.CreatedAt
	f.resources = append(f.resources, &copied)
	return &copied, nil
}

func (f *fakeResourcesRepo) List(ctx context.Context) ([]*models.Resource, error) {
	return f.resources, f.err
}

func (f *fakeResourcesRepo) Update(ctx context.Context, res *models.Resource) (*models.Resource, error) {
	if f.err != nil {
		return nil, f.err
	}
	for _, r := range f.resources {
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

func (f *fakeResourcesRepo) UpdateStatus(ctx context.Context, id, status string) (*models.Resource, error) {
	if f.err != nil {
		return nil, f.err
	}
	for _, r := range f.resources {
		if r.ID == id {
			r.Status = status
			r.UpdatedAt = time.Now()
			return r, nil
		}
	}
	return nil, common.ErrorNotFound
}

func (f *fakeResourcesRepo) Delete(ctx context.Context, id string) error {
	if f.err != nil {
		return f.err
	}
	for i, r := range f.resources {
		if r.ID == id {
			f.resources = append(f.resources[:i], f.resources[i+1:]...)
			return nil
		}
	}
	return common.ErrorNotFound
}

func (f *fakeResourcesRepo) Count(ctx context.Context) (int64, error) {
	if f.err != nil {
		return 0, f.err
	}
	return int64(len(f.resources)), nil
}

type fakeRepoManager struct {
	u *fakeUsersRepo
	t *fakeTasksRepo
	r *fakeResourcesRepo
}

func newFakeRepoManager() *fakeRepoManager {
	return &fakeRepoManager{
		u: newFakeUsersRepo(),
		t: &fakeTasksRepo{},
		r: &fakeResourcesRepo{},
	}
}

func (m *fakeRepoManager) RunMigrations(context.Context, *sql.DB) error      { return nil }
func (m *fakeRepoManager) Users(db dbx.DBTX) usersrepo.Repository           { return m.u }
func (m *fakeRepoManager) Tasks(db dbx.DBTX) tasksrepo.Repository           { return m.t }
func (m *fakeRepoManager) Resources(db dbx.DBTX) resourcesrepo.Repository   { return m.r }
