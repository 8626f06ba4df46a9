package postgres

import (
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// PostgreSQL SQLSTATE codes for integrity constraint violations.
const (
	sqlStateNotNullViolation    = "23502"
	sqlStateForeignKeyViolation = "23503"
	sqlStateUniqueViolation     = "23505"
	sqlStateCheckViolation      = "23514"
)

// hasSQLState matches both the raw driver error and GORM's translated sentinel.
func hasSQLState(err error, code string, translated error) bool {
	if err == nil {
		return false
	}
	if translated != nil && errors.Is(err, translated) {
		return true
	}

	var pgErr *pgconn.PgError

	return errors.As(err, &pgErr) && pgErr.Code == code
}

func isUniqueConstraintViolation(err error) bool {
	return hasSQLState(err, sqlStateUniqueViolation, gorm.ErrDuplicatedKey)
}

func isForeignKeyConstraintViolation(err error) bool {
	return hasSQLState(err, sqlStateForeignKeyViolation, gorm.ErrForeignKeyViolated)
}

func isNotNullConstraintViolation(err error) bool {
	return hasSQLState(err, sqlStateNotNullViolation, nil)
}

func isCheckConstraintViolation(err error) bool {
	return hasSQLState(err, sqlStateCheckViolation, gorm.ErrCheckConstraintViolated)
}

// rowFound turns the error of a single-row Take into an existence answer.
func rowFound(err error) (bool, error) {
	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		return false, nil
	default:
		return false, errors.WithStack(err)
	}
}
