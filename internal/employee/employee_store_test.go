package employee_test

import (
	"context"
	"testing"

	"github.com/duchnb/ems-fullstack-app/internal/department"
	departmenterrors "github.com/duchnb/ems-fullstack-app/internal/department/errors"
	"github.com/duchnb/ems-fullstack-app/internal/employee"
	employeeerrors "github.com/duchnb/ems-fullstack-app/internal/employee/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// These tests run the real repositories and services against an in-memory
// sqlite store, so constraint behavior (unique email) and preloading are
// exercised for real instead of being faked.

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&department.Department{}, &employee.Employee{}))
	return db
}

func newStack(t *testing.T) (department.Service, employee.Service) {
	t.Helper()
	db := newTestDB(t)
	deptRepo := department.NewRepository(db)
	emplRepo := employee.NewRepository(db)
	return department.NewService(deptRepo), employee.NewService(emplRepo, deptRepo)
}

func TestEmployeeLifecycle_AgainstStore(t *testing.T) {
	ctx := context.Background()
	deptSvc, emplSvc := newStack(t)

	dept, err := deptSvc.Create(ctx, department.CreateDepartmentRequest{Name: "Engineering"})
	require.NoError(t, err)
	assert.Equal(t, int64(1), dept.ID)

	created, err := emplSvc.Create(ctx, employee.CreateEmployeeRequest{
		FirstName:    "Ana",
		LastName:     "Lee",
		Email:        "ana@x.com",
		DepartmentID: dept.ID,
	})
	require.NoError(t, err)
	assert.Equal(t, int64(1), created.ID)

	// Round trip: getById(create(dto).id) equals the created record.
	got, err := emplSvc.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created, got)
	assert.Equal(t, "Engineering", got.DepartmentName)

	// Patch leaves untouched fields at their prior value.
	last := "Lima"
	patched, err := emplSvc.Patch(ctx, created.ID, employee.PatchEmployeeRequest{LastName: &last})
	require.NoError(t, err)
	assert.Equal(t, "Ana", patched.FirstName)
	assert.Equal(t, "Lima", patched.LastName)
	assert.Equal(t, "ana@x.com", patched.Email)

	after, err := emplSvc.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, patched, after)

	// Delete is permanent and its repetition fails, not silently succeeds.
	require.NoError(t, emplSvc.Delete(ctx, created.ID))
	_, err = emplSvc.GetByID(ctx, created.ID)
	assert.ErrorIs(t, err, employeeerrors.ErrEmployeeNotFound)
	assert.ErrorIs(t, emplSvc.Delete(ctx, created.ID), employeeerrors.ErrEmployeeNotFound)
}

func TestEmployeeEmailUniqueness_AgainstStore(t *testing.T) {
	ctx := context.Background()
	deptSvc, emplSvc := newStack(t)

	dept, err := deptSvc.Create(ctx, department.CreateDepartmentRequest{Name: "Engineering"})
	require.NoError(t, err)

	_, err = emplSvc.Create(ctx, employee.CreateEmployeeRequest{
		FirstName:    "Ana",
		LastName:     "Lee",
		Email:        "ana@x.com",
		DepartmentID: dept.ID,
	})
	require.NoError(t, err)

	// Second create with the same email hits the store constraint and is
	// re-classified, never leaked as an internal error.
	_, err = emplSvc.Create(ctx, employee.CreateEmployeeRequest{
		FirstName:    "Anders",
		LastName:     "Larsen",
		Email:        "ana@x.com",
		DepartmentID: dept.ID,
	})
	assert.ErrorIs(t, err, employeeerrors.ErrEmployeeAlreadyExists)
}

func TestDepartmentRestrictDelete_AgainstStore(t *testing.T) {
	ctx := context.Background()
	deptSvc, emplSvc := newStack(t)

	dept, err := deptSvc.Create(ctx, department.CreateDepartmentRequest{Name: "Engineering"})
	require.NoError(t, err)

	created, err := emplSvc.Create(ctx, employee.CreateEmployeeRequest{
		FirstName:    "Ana",
		LastName:     "Lee",
		Email:        "ana@x.com",
		DepartmentID: dept.ID,
	})
	require.NoError(t, err)

	// Restrict policy: the referenced department cannot be deleted.
	assert.ErrorIs(t, deptSvc.Delete(ctx, dept.ID), departmenterrors.ErrDepartmentInUse)

	// Once the employee is gone the delete goes through.
	require.NoError(t, emplSvc.Delete(ctx, created.ID))
	assert.NoError(t, deptSvc.Delete(ctx, dept.ID))
	_, err = deptSvc.GetByID(ctx, dept.ID)
	assert.ErrorIs(t, err, departmenterrors.ErrDepartmentNotFound)
}

func TestEmployeeGetAll_AgainstStore(t *testing.T) {
	ctx := context.Background()
	deptSvc, emplSvc := newStack(t)

	dept, err := deptSvc.Create(ctx, department.CreateDepartmentRequest{Name: "Engineering"})
	require.NoError(t, err)

	for _, email := range []string{"a@x.com", "b@x.com", "c@x.com"} {
		_, err := emplSvc.Create(ctx, employee.CreateEmployeeRequest{
			FirstName:    "E",
			LastName:     "E",
			Email:        email,
			DepartmentID: dept.ID,
		})
		require.NoError(t, err)
	}

	all, err := emplSvc.GetAll(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 3)
	for _, e := range all {
		assert.Equal(t, "Engineering", e.DepartmentName)
	}
}
