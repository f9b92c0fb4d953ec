package employee

import (
	"errors"
	"strings"

	employeeerrors "github.com/duchnb/ems-fullstack-app/internal/employee/errors"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

// mapRepositoryError re-classifies store failures once, so raw driver
// messages never cross the service boundary.
func mapRepositoryError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return employeeerrors.ErrEmployeeNotFound
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		return employeeerrors.ErrEmployeeAlreadyExists
	}

	// Text fallback covers drivers that do not surface a typed error,
	// sqlite in tests included.
	errMsg := strings.ToLower(err.Error())
	if strings.Contains(errMsg, "duplicate key value") ||
		strings.Contains(errMsg, "unique constraint") {
		return employeeerrors.ErrEmployeeAlreadyExists
	}

	return err
}
