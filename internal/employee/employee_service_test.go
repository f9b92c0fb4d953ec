package employee_test

import (
	"context"
	"testing"

	"github.com/duchnb/ems-fullstack-app/internal/department"
	departmenterrors "github.com/duchnb/ems-fullstack-app/internal/department/errors"
	"github.com/duchnb/ems-fullstack-app/internal/employee"
	employeeerrors "github.com/duchnb/ems-fullstack-app/internal/employee/errors"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

type fakeEmployeeRepo struct {
	employees   map[int64]*employee.Employee
	nextID      int64
	createErr   error
	updateErr   error
	updateCalls int
}

func newFakeEmployeeRepo() *fakeEmployeeRepo {
	return &fakeEmployeeRepo{
		employees: make(map[int64]*employee.Employee),
		nextID:    1,
	}
}

func (f *fakeEmployeeRepo) Create(ctx context.Context, empl *employee.Employee) error {
	if f.createErr != nil {
		return f.createErr
	}
	empl.ID = f.nextID
	f.nextID++
	clone := *empl
	f.employees[empl.ID] = &clone
	return nil
}

func (f *fakeEmployeeRepo) FindAll(ctx context.Context) ([]employee.Employee, error) {
	out := make([]employee.Employee, 0, len(f.employees))
	for _, e := range f.employees {
		out = append(out, *e)
	}
	return out, nil
}

func (f *fakeEmployeeRepo) FindByID(ctx context.Context, id int64) (*employee.Employee, error) {
	if e, ok := f.employees[id]; ok {
		clone := *e
		return &clone, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeEmployeeRepo) Update(ctx context.Context, empl *employee.Employee) error {
	f.updateCalls++
	if f.updateErr != nil {
		return f.updateErr
	}
	clone := *empl
	f.employees[empl.ID] = &clone
	return nil
}

func (f *fakeEmployeeRepo) Delete(ctx context.Context, id int64) error {
	delete(f.employees, id)
	return nil
}

func (f *fakeEmployeeRepo) ExistsByID(ctx context.Context, id int64) (bool, error) {
	_, ok := f.employees[id]
	return ok, nil
}

type fakeDeptRepo struct {
	departments map[int64]*department.Department
}

func newFakeDeptRepo(depts ...department.Department) *fakeDeptRepo {
	f := &fakeDeptRepo{departments: make(map[int64]*department.Department)}
	for i := range depts {
		d := depts[i]
		f.departments[d.ID] = &d
	}
	return f
}

func (f *fakeDeptRepo) Create(ctx context.Context, dept *department.Department) error { return nil }
func (f *fakeDeptRepo) FindAll(ctx context.Context) ([]department.Department, error) {
	return nil, nil
}
func (f *fakeDeptRepo) FindByID(ctx context.Context, id int64) (*department.Department, error) {
	if d, ok := f.departments[id]; ok {
		clone := *d
		return &clone, nil
	}
	return nil, gorm.ErrRecordNotFound
}
func (f *fakeDeptRepo) Update(ctx context.Context, dept *department.Department) error { return nil }
func (f *fakeDeptRepo) Delete(ctx context.Context, id int64) error                    { return nil }
func (f *fakeDeptRepo) ExistsByID(ctx context.Context, id int64) (bool, error) {
	_, ok := f.departments[id]
	return ok, nil
}
func (f *fakeDeptRepo) CountEmployees(ctx context.Context, id int64) (int64, error) {
	return 0, nil
}

func engineering() department.Department {
	return department.Department{ID: 1, Name: "Engineering"}
}

func TestEmployeeService_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("success links the resolved department", func(t *testing.T) {
		repo := newFakeEmployeeRepo()
		svc := employee.NewService(repo, newFakeDeptRepo(engineering()))

		resp, err := svc.Create(ctx, employee.CreateEmployeeRequest{
			FirstName:    "Ana",
			LastName:     "Lee",
			Email:        "ana@x.com",
			DepartmentID: 1,
		})

		assert.NoError(t, err)
		assert.Equal(t, int64(1), resp.ID)
		assert.Equal(t, "Ana", resp.FirstName)
		if assert.NotNil(t, resp.DepartmentID) {
			assert.Equal(t, int64(1), *resp.DepartmentID)
		}
		assert.Equal(t, "Engineering", resp.DepartmentName)
	})

	t.Run("unresolvable department fails with not found", func(t *testing.T) {
		repo := newFakeEmployeeRepo()
		svc := employee.NewService(repo, newFakeDeptRepo())

		_, err := svc.Create(ctx, employee.CreateEmployeeRequest{
			FirstName:    "Ana",
			LastName:     "Lee",
			Email:        "ana@x.com",
			DepartmentID: 99,
		})

		assert.ErrorIs(t, err, departmenterrors.ErrDepartmentNotFound)
		assert.Empty(t, repo.employees)
	})

	t.Run("store uniqueness violation becomes a conflict, not a 500", func(t *testing.T) {
		repo := newFakeEmployeeRepo()
		repo.createErr = &pgconn.PgError{Code: "23505", ConstraintName: "uq_employee_email"}
		svc := employee.NewService(repo, newFakeDeptRepo(engineering()))

		_, err := svc.Create(ctx, employee.CreateEmployeeRequest{
			FirstName:    "Ana",
			LastName:     "Lee",
			Email:        "ana@x.com",
			DepartmentID: 1,
		})

		assert.ErrorIs(t, err, employeeerrors.ErrEmployeeAlreadyExists)
	})
}

func TestEmployeeService_Update(t *testing.T) {
	ctx := context.Background()

	seed := func(t *testing.T) (*fakeEmployeeRepo, employee.Service, employee.EmployeeResponse) {
		t.Helper()
		repo := newFakeEmployeeRepo()
		svc := employee.NewService(repo, newFakeDeptRepo(engineering(), department.Department{ID: 2, Name: "Sales"}))
		created, err := svc.Create(ctx, employee.CreateEmployeeRequest{
			FirstName:    "Ana",
			LastName:     "Lee",
			Email:        "ana@x.com",
			DepartmentID: 1,
		})
		assert.NoError(t, err)
		return repo, svc, created
	}

	t.Run("full replace overwrites every mutable field", func(t *testing.T) {
		_, svc, created := seed(t)

		resp, err := svc.Update(ctx, created.ID, employee.UpdateEmployeeRequest{
			FirstName:    "Anna",
			LastName:     "Leigh",
			Email:        "anna@x.com",
			DepartmentID: 2,
		})

		assert.NoError(t, err)
		assert.Equal(t, created.ID, resp.ID)
		assert.Equal(t, "Anna", resp.FirstName)
		assert.Equal(t, "Leigh", resp.LastName)
		assert.Equal(t, "anna@x.com", resp.Email)
		assert.Equal(t, "Sales", resp.DepartmentName)

		got, err := svc.GetByID(ctx, created.ID)
		assert.NoError(t, err)
		assert.Equal(t, "anna@x.com", got.Email)
	})

	t.Run("body id mismatch fails before any store mutation", func(t *testing.T) {
		repo, svc, created := seed(t)

		wrong := created.ID + 5
		_, err := svc.Update(ctx, created.ID, employee.UpdateEmployeeRequest{
			ID:           &wrong,
			FirstName:    "Anna",
			LastName:     "Leigh",
			Email:        "anna@x.com",
			DepartmentID: 1,
		})

		assert.ErrorIs(t, err, employeeerrors.ErrEmployeeIDMismatch)
		assert.Zero(t, repo.updateCalls)
	})

	t.Run("missing target employee", func(t *testing.T) {
		_, svc, _ := seed(t)

		_, err := svc.Update(ctx, 404, employee.UpdateEmployeeRequest{
			FirstName:    "Anna",
			LastName:     "Leigh",
			Email:        "anna@x.com",
			DepartmentID: 1,
		})
		assert.ErrorIs(t, err, employeeerrors.ErrEmployeeNotFound)
	})

	t.Run("missing department", func(t *testing.T) {
		_, svc, created := seed(t)

		_, err := svc.Update(ctx, created.ID, employee.UpdateEmployeeRequest{
			FirstName:    "Anna",
			LastName:     "Leigh",
			Email:        "anna@x.com",
			DepartmentID: 77,
		})
		assert.ErrorIs(t, err, departmenterrors.ErrDepartmentNotFound)
	})
}

func TestEmployeeService_Patch(t *testing.T) {
	ctx := context.Background()

	repo := newFakeEmployeeRepo()
	svc := employee.NewService(repo, newFakeDeptRepo(engineering(), department.Department{ID: 2, Name: "Sales"}))
	created, err := svc.Create(ctx, employee.CreateEmployeeRequest{
		FirstName:    "Ana",
		LastName:     "Lee",
		Email:        "ana@x.com",
		DepartmentID: 1,
	})
	assert.NoError(t, err)

	t.Run("only supplied fields change", func(t *testing.T) {
		email := "ana.lee@x.com"
		resp, err := svc.Patch(ctx, created.ID, employee.PatchEmployeeRequest{Email: &email})

		assert.NoError(t, err)
		assert.Equal(t, "ana.lee@x.com", resp.Email)
		assert.Equal(t, "Ana", resp.FirstName)
		assert.Equal(t, "Lee", resp.LastName)
		if assert.NotNil(t, resp.DepartmentID) {
			assert.Equal(t, int64(1), *resp.DepartmentID)
		}
	})

	t.Run("department re-validated only when supplied", func(t *testing.T) {
		missing := int64(99)
		_, err := svc.Patch(ctx, created.ID, employee.PatchEmployeeRequest{DepartmentID: &missing})
		assert.ErrorIs(t, err, departmenterrors.ErrDepartmentNotFound)

		valid := int64(2)
		resp, err := svc.Patch(ctx, created.ID, employee.PatchEmployeeRequest{DepartmentID: &valid})
		assert.NoError(t, err)
		assert.Equal(t, "Sales", resp.DepartmentName)
	})

	t.Run("missing target employee", func(t *testing.T) {
		first := "Nobody"
		_, err := svc.Patch(ctx, 1234, employee.PatchEmployeeRequest{FirstName: &first})
		assert.ErrorIs(t, err, employeeerrors.ErrEmployeeNotFound)
	})
}

func TestEmployeeService_Delete(t *testing.T) {
	ctx := context.Background()

	repo := newFakeEmployeeRepo()
	svc := employee.NewService(repo, newFakeDeptRepo(engineering()))
	created, err := svc.Create(ctx, employee.CreateEmployeeRequest{
		FirstName:    "Ana",
		LastName:     "Lee",
		Email:        "ana@x.com",
		DepartmentID: 1,
	})
	assert.NoError(t, err)

	assert.NoError(t, svc.Delete(ctx, created.ID))

	_, err = svc.GetByID(ctx, created.ID)
	assert.ErrorIs(t, err, employeeerrors.ErrEmployeeNotFound)

	// Deleting an already-deleted id is an idempotent failure, not success.
	assert.ErrorIs(t, svc.Delete(ctx, created.ID), employeeerrors.ErrEmployeeNotFound)
}
