package apperror

import "net/http"

var (
	ErrNotFound = New(
		CodeNotFound,
		"Resource not found",
		http.StatusNotFound,
	)

	ErrInvalidInput = New(
		CodeInvalidInput,
		"The provided input is invalid",
		http.StatusBadRequest,
	)

	ErrInternal = New(
		CodeInternalError,
		"An unexpected error occurred. Please try again later.",
		http.StatusInternalServerError,
	)

	ErrUnavailable = New(
		CodeServiceUnavailable,
		"The service is temporarily unavailable",
		http.StatusServiceUnavailable,
	)
)
