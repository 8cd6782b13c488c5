package db

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/mattn/go-sqlite3"
	"gorm.io/gorm"
)

// ErrIntegrityViolation matches, through errors.Is, every IntegrityViolationError.
var ErrIntegrityViolation = errors.New("integrity violation")

// IntegrityViolationError wraps a driver error caused by a table constraint
// (unique, primary key, not null, check, foreign key).
type IntegrityViolationError struct {
	Cause error
}

func (e *IntegrityViolationError) Error() string {
	return e.Cause.Error()
}

func (e *IntegrityViolationError) Unwrap() []error {
	return []error{ErrIntegrityViolation, e.Cause}
}

// postgres SQLSTATE class 23: integrity constraint violation
const pgIntegrityClass = "23"

func isIntegrityViolation(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) || errors.Is(err, gorm.ErrForeignKeyViolated) || errors.Is(err, gorm.ErrCheckConstraintViolated) {
		return true
	}

	var sqliteErr sqlite3.Error
	if errors.As(err, &sqliteErr) {
		return sqliteErr.Code == sqlite3.ErrConstraint
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return len(pgErr.Code) == 5 && pgErr.Code[:2] == pgIntegrityClass
	}

	return false
}

func classifyWriteError(err error) error {
	if isIntegrityViolation(err) {
		return &IntegrityViolationError{Cause: err}
	}
	return err
}
