package employee

import (
	"context"
	"errors"

	"github.com/duchnb/ems-fullstack-app/internal/department"
	departmenterrors "github.com/duchnb/ems-fullstack-app/internal/department/errors"
	employeeerrors "github.com/duchnb/ems-fullstack-app/internal/employee/errors"
	"github.com/duchnb/ems-fullstack-app/internal/shared/contextutil"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

type Service interface {
	Create(ctx context.Context, req CreateEmployeeRequest) (EmployeeResponse, error)
	GetAll(ctx context.Context) ([]EmployeeResponse, error)
	GetByID(ctx context.Context, id int64) (EmployeeResponse, error)
	Update(ctx context.Context, id int64, req UpdateEmployeeRequest) (EmployeeResponse, error)
	Patch(ctx context.Context, id int64, req PatchEmployeeRequest) (EmployeeResponse, error)
	Delete(ctx context.Context, id int64) error
}

type service struct {
	repo     Repository
	deptRepo department.Repository
	logger   *zap.Logger
}

func NewService(repo Repository, deptRepo department.Repository, logger ...*zap.Logger) Service {
	l := zap.L().Named("employee.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("employee.service")
	}
	return &service{repo: repo, deptRepo: deptRepo, logger: l}
}

// resolveDepartment is the eager fetch that backs the referential invariant:
// every persisted department reference must resolve at write time.
func (s *service) resolveDepartment(ctx context.Context, id int64) (*department.Department, error) {
	dept, err := s.deptRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, departmenterrors.ErrDepartmentNotFound
		}
		return nil, err
	}
	return dept, nil
}

func (s *service) Create(ctx context.Context, req CreateEmployeeRequest) (EmployeeResponse, error) {
	rid := contextutil.GetRequestID(ctx)
	s.logger.Debug("create employee requested",
		zap.String("request_id", rid),
		zap.String("email", req.Email),
		zap.Int64("department_id", req.DepartmentID),
	)

	dept, err := s.resolveDepartment(ctx, req.DepartmentID)
	if err != nil {
		s.logger.Warn("create employee department lookup failed",
			zap.String("request_id", rid),
			zap.Int64("department_id", req.DepartmentID),
			zap.Error(err),
		)
		return EmployeeResponse{}, err
	}

	empl := &Employee{
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		Email:        req.Email,
		DepartmentID: &dept.ID,
	}

	if err := s.repo.Create(ctx, empl); err != nil {
		s.logger.Error("create employee persist failed", zap.String("request_id", rid), zap.Error(err))
		return EmployeeResponse{}, mapRepositoryError(err)
	}

	empl.Department = dept

	s.logger.Info("create employee success",
		zap.String("request_id", rid),
		zap.Int64("employee_id", empl.ID),
	)
	return mapToResponse(*empl), nil
}

func (s *service) GetAll(ctx context.Context) ([]EmployeeResponse, error) {
	empls, err := s.repo.FindAll(ctx)
	if err != nil {
		s.logger.Error("get all employees failed", zap.Error(err))
		return nil, mapRepositoryError(err)
	}
	return mapToListResponse(empls), nil
}

func (s *service) GetByID(ctx context.Context, id int64) (EmployeeResponse, error) {
	empl, err := s.repo.FindByID(ctx, id)
	if err != nil {
		s.logger.Warn("get employee by id failed", zap.Int64("employee_id", id), zap.Error(err))
		return EmployeeResponse{}, mapRepositoryError(err)
	}
	return mapToResponse(*empl), nil
}

func (s *service) Update(ctx context.Context, id int64, req UpdateEmployeeRequest) (EmployeeResponse, error) {
	rid := contextutil.GetRequestID(ctx)

	if req.ID != nil && *req.ID != id {
		return EmployeeResponse{}, employeeerrors.ErrEmployeeIDMismatch
	}

	empl, err := s.repo.FindByID(ctx, id)
	if err != nil {
		s.logger.Warn("update employee fetch existing failed",
			zap.String("request_id", rid),
			zap.Int64("employee_id", id),
			zap.Error(err),
		)
		return EmployeeResponse{}, mapRepositoryError(err)
	}

	dept, err := s.resolveDepartment(ctx, req.DepartmentID)
	if err != nil {
		s.logger.Warn("update employee department lookup failed",
			zap.String("request_id", rid),
			zap.Int64("department_id", req.DepartmentID),
			zap.Error(err),
		)
		return EmployeeResponse{}, err
	}

	empl.FirstName = req.FirstName
	empl.LastName = req.LastName
	empl.Email = req.Email
	empl.DepartmentID = &dept.ID
	empl.Department = dept

	if err := s.repo.Update(ctx, empl); err != nil {
		s.logger.Error("update employee persist failed", zap.String("request_id", rid), zap.Error(err))
		return EmployeeResponse{}, mapRepositoryError(err)
	}

	s.logger.Info("update employee success",
		zap.String("request_id", rid),
		zap.Int64("employee_id", id),
	)
	return mapToResponse(*empl), nil
}

func (s *service) Patch(ctx context.Context, id int64, req PatchEmployeeRequest) (EmployeeResponse, error) {
	rid := contextutil.GetRequestID(ctx)

	empl, err := s.repo.FindByID(ctx, id)
	if err != nil {
		s.logger.Warn("patch employee fetch existing failed",
			zap.String("request_id", rid),
			zap.Int64("employee_id", id),
			zap.Error(err),
		)
		return EmployeeResponse{}, mapRepositoryError(err)
	}

	// Absent fields mean "leave unchanged".
	if req.FirstName != nil {
		empl.FirstName = *req.FirstName
	}
	if req.LastName != nil {
		empl.LastName = *req.LastName
	}
	if req.Email != nil {
		empl.Email = *req.Email
	}
	if req.DepartmentID != nil {
		// Re-resolved and re-validated only when supplied.
		dept, err := s.resolveDepartment(ctx, *req.DepartmentID)
		if err != nil {
			s.logger.Warn("patch employee department lookup failed",
				zap.String("request_id", rid),
				zap.Int64("department_id", *req.DepartmentID),
				zap.Error(err),
			)
			return EmployeeResponse{}, err
		}
		empl.DepartmentID = &dept.ID
		empl.Department = dept
	}

	if err := s.repo.Update(ctx, empl); err != nil {
		s.logger.Error("patch employee persist failed", zap.String("request_id", rid), zap.Error(err))
		return EmployeeResponse{}, mapRepositoryError(err)
	}

	s.logger.Info("patch employee success",
		zap.String("request_id", rid),
		zap.Int64("employee_id", id),
	)
	return mapToResponse(*empl), nil
}

func (s *service) Delete(ctx context.Context, id int64) error {
	rid := contextutil.GetRequestID(ctx)

	// Explicit existence check so "already absent" fails instead of
	// succeeding silently.
	exists, err := s.repo.ExistsByID(ctx, id)
	if err != nil {
		s.logger.Error("delete employee existence check failed", zap.String("request_id", rid), zap.Error(err))
		return mapRepositoryError(err)
	}
	if !exists {
		return employeeerrors.ErrEmployeeNotFound
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		s.logger.Error("delete employee failed", zap.String("request_id", rid), zap.Error(err))
		return mapRepositoryError(err)
	}

	s.logger.Info("delete employee success",
		zap.String("request_id", rid),
		zap.Int64("employee_id", id),
	)
	return nil
}
