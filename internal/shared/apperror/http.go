package apperror

import (
	"context"
	"errors"
	"net/http"
)

// HTTPError is the boundary projection of an AppError. Handlers render it,
// they never inspect the wrapped cause.
type HTTPError struct {
	Status  int
	Code    string
	Message string
	Details any
}

// ToHTTP classifies any error into an HTTPError. Unknown errors collapse to
// a generic 500 so driver messages and stack detail never reach the caller.
func ToHTTP(err error) HTTPError {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return HTTPError{
			Status:  appErr.HTTPStatus,
			Code:    appErr.Code,
			Message: appErr.Message,
			Details: appErr.Details,
		}
	}

	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return HTTPError{
			Status:  ErrUnavailable.HTTPStatus,
			Code:    ErrUnavailable.Code,
			Message: ErrUnavailable.Message,
		}
	}

	return HTTPError{
		Status:  http.StatusInternalServerError,
		Code:    CodeInternalError,
		Message: ErrInternal.Message,
	}
}
