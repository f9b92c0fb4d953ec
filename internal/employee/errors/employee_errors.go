package employeeerrors

import (
	"net/http"

	"github.com/duchnb/ems-fullstack-app/internal/shared/apperror"
)

var (
	ErrEmployeeNotFound = apperror.New(
		apperror.CodeNotFound,
		"Employee not found",
		http.StatusNotFound,
	)
	ErrEmployeeAlreadyExists = apperror.New(
		apperror.CodeConflict,
		"Employee with the same email already exists",
		http.StatusConflict,
	)
	ErrInvalidEmployeeID = apperror.New(
		apperror.CodeInvalidInput,
		"Employee ID must be provided and greater than zero",
		http.StatusBadRequest,
	)
	ErrEmployeeIDMismatch = apperror.New(
		apperror.CodeInvalidInput,
		"ID in path and body must match",
		http.StatusBadRequest,
	)
)
