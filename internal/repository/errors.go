package repository

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

// https://www.postgresql.org/docs/current/errcodes-appendix.html
const (
	PgErrUniqueViolation      = "23505"
	PgErrSerializationFailure = "40001"
	PgErrDeadlockDetected     = "40P01"
)

func IsPgErrorWithCode(err error, code string) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == code
	}
	return false
}

// IsSerializationError распознает конфликт serializable-транзакций,
// который безопасно повторить.
func IsSerializationError(err error) bool {
	return IsPgErrorWithCode(err, PgErrSerializationFailure) ||
		IsPgErrorWithCode(err, PgErrDeadlockDetected)
}
