package department

import (
	"context"
	"errors"

	departmenterrors "github.com/duchnb/ems-fullstack-app/internal/department/errors"
	"github.com/duchnb/ems-fullstack-app/internal/shared/contextutil"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

type Service interface {
	Create(ctx context.Context, req CreateDepartmentRequest) (DepartmentResponse, error)
	GetAll(ctx context.Context) ([]DepartmentResponse, error)
	GetByID(ctx context.Context, id int64) (DepartmentResponse, error)
	Update(ctx context.Context, id int64, req UpdateDepartmentRequest) (DepartmentResponse, error)
	Delete(ctx context.Context, id int64) error
}

type service struct {
	repo   Repository
	logger *zap.Logger
}

func NewService(repo Repository, logger ...*zap.Logger) Service {
	l := zap.L().Named("department.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("department.service")
	}
	return &service{repo: repo, logger: l}
}

func (s *service) Create(ctx context.Context, req CreateDepartmentRequest) (DepartmentResponse, error) {
	rid := contextutil.GetRequestID(ctx)
	s.logger.Debug("create department requested",
		zap.String("request_id", rid),
		zap.String("name", req.Name),
	)

	dept := &Department{
		Name:        req.Name,
		Description: req.Description,
	}

	if err := s.repo.Create(ctx, dept); err != nil {
		s.logger.Error("create department persist failed", zap.String("request_id", rid), zap.Error(err))
		return DepartmentResponse{}, mapRepositoryError(err)
	}

	s.logger.Info("create department success",
		zap.String("request_id", rid),
		zap.Int64("department_id", dept.ID),
	)
	return mapToResponse(*dept), nil
}

func (s *service) GetAll(ctx context.Context) ([]DepartmentResponse, error) {
	depts, err := s.repo.FindAll(ctx)
	if err != nil {
		s.logger.Error("get all departments failed", zap.Error(err))
		return nil, mapRepositoryError(err)
	}
	return mapToListResponse(depts), nil
}

func (s *service) GetByID(ctx context.Context, id int64) (DepartmentResponse, error) {
	dept, err := s.repo.FindByID(ctx, id)
	if err != nil {
		s.logger.Warn("get department by id failed", zap.Int64("department_id", id), zap.Error(err))
		return DepartmentResponse{}, mapRepositoryError(err)
	}
	return mapToResponse(*dept), nil
}

func (s *service) Update(ctx context.Context, id int64, req UpdateDepartmentRequest) (DepartmentResponse, error) {
	rid := contextutil.GetRequestID(ctx)

	if req.ID != nil && *req.ID != id {
		return DepartmentResponse{}, departmenterrors.ErrDepartmentIDMismatch
	}

	dept, err := s.repo.FindByID(ctx, id)
	if err != nil {
		s.logger.Warn("update department fetch existing failed",
			zap.String("request_id", rid),
			zap.Int64("department_id", id),
			zap.Error(err),
		)
		return DepartmentResponse{}, mapRepositoryError(err)
	}

	// Absent fields mean "leave unchanged".
	if req.Name != nil {
		dept.Name = *req.Name
	}
	if req.Description != nil {
		dept.Description = *req.Description
	}

	if err := s.repo.Update(ctx, dept); err != nil {
		s.logger.Error("update department persist failed", zap.String("request_id", rid), zap.Error(err))
		return DepartmentResponse{}, mapRepositoryError(err)
	}

	s.logger.Info("update department success",
		zap.String("request_id", rid),
		zap.Int64("department_id", id),
	)
	return mapToResponse(*dept), nil
}

func (s *service) Delete(ctx context.Context, id int64) error {
	rid := contextutil.GetRequestID(ctx)

	exists, err := s.repo.ExistsByID(ctx, id)
	if err != nil {
		s.logger.Error("delete department existence check failed", zap.String("request_id", rid), zap.Error(err))
		return mapRepositoryError(err)
	}
	if !exists {
		return departmenterrors.ErrDepartmentNotFound
	}

	// Restrict policy: refuse while employees still reference the department.
	count, err := s.repo.CountEmployees(ctx, id)
	if err != nil {
		s.logger.Error("delete department reference count failed", zap.String("request_id", rid), zap.Error(err))
		return mapRepositoryError(err)
	}
	if count > 0 {
		s.logger.Warn("delete department refused, still referenced",
			zap.String("request_id", rid),
			zap.Int64("department_id", id),
			zap.Int64("employee_count", count),
		)
		return departmenterrors.ErrDepartmentInUse
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		s.logger.Error("delete department failed", zap.String("request_id", rid), zap.Error(err))
		return mapRepositoryError(err)
	}

	s.logger.Info("delete department success",
		zap.String("request_id", rid),
		zap.Int64("department_id", id),
	)
	return nil
}

func mapRepositoryError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return departmenterrors.ErrDepartmentNotFound
	}
	return err
}
