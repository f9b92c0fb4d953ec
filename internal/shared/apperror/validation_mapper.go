package apperror

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

func formatFieldName(s string) string {
	s = strings.ReplaceAll(s, "_", " ")
	caser := cases.Title(language.English)
	return caser.String(s)
}

func fieldMessage(e validator.FieldError) string {
	name := formatFieldName(e.Field())
	switch e.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", name)
	case "email":
		return fmt.Sprintf("%s must be a valid email address", name)
	case "gt", "min":
		return fmt.Sprintf("%s must be greater than %s", name, e.Param())
	default:
		return fmt.Sprintf("%s is invalid", name)
	}
}

// MapValidationError converts a gin binding failure into a VALIDATION_ERROR
// AppError. Every violated field is reported, keyed by its json name.
func MapValidationError(err error) error {
	if errs, ok := err.(validator.ValidationErrors); ok {
		fields := make(map[string]string, len(errs))
		messages := make([]string, 0, len(errs))
		for _, e := range errs {
			msg := fieldMessage(e)
			fields[e.Field()] = msg
			messages = append(messages, msg)
		}
		return &AppError{
			Code:       CodeValidationError,
			Message:    strings.Join(messages, "; "),
			HTTPStatus: http.StatusBadRequest,
			Details:    fields,
		}
	}

	return Wrap(err, CodeInvalidInput, "Request body is not valid JSON", http.StatusBadRequest)
}
