package departmenterrors

import (
	"net/http"

	"github.com/duchnb/ems-fullstack-app/internal/shared/apperror"
)

var (
	ErrDepartmentNotFound = apperror.New(
		apperror.CodeNotFound,
		"Department not found",
		http.StatusNotFound,
	)
	ErrInvalidDepartmentID = apperror.New(
		apperror.CodeInvalidInput,
		"Department ID must be provided and greater than zero",
		http.StatusBadRequest,
	)
	ErrDepartmentIDMismatch = apperror.New(
		apperror.CodeInvalidInput,
		"ID in path and body must match",
		http.StatusBadRequest,
	)
	ErrDepartmentInUse = apperror.New(
		apperror.CodeConflict,
		"Department still has employees assigned to it",
		http.StatusConflict,
	)
)
