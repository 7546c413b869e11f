package postgres

import (
	"strings"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// Helper functions for PostgreSQL error checking. The pool is opened with
// TranslateError so driver codes arrive as gorm sentinel errors.
func isForeignKeyConstraintViolation(err error) bool {
	return errors.Is(err, gorm.ErrForeignKeyViolated)
}

func isCheckConstraintViolation(err error) bool {
	return errors.Is(err, gorm.ErrCheckConstraintViolated)
}

func isNotNullConstraintViolation(err error) bool {
	errMsg := strings.ToLower(err.Error())

	return strings.Contains(errMsg, "null value") ||
		strings.Contains(errMsg, "not null") ||
		strings.Contains(errMsg, "23502") // PostgreSQL not_null_violation error code
}

// isUUID reports whether id can be compared against a uuid column. Anything
// else can never match a row, so callers short-circuit instead of letting
// PostgreSQL reject the cast.
func isUUID(id string) bool {
	_, err := uuid.Parse(id)

	return err == nil
}
