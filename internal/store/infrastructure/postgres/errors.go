package postgres

import (
	"errors"

	"github.com/itsnaruto045-hub/EBONZ/internal/store/domain"
	"github.com/jackc/pgx/v5/pgconn"
)

const (
	pgCodeUniqueViolation      = "23505"
	pgCodeSerializationFailure = "40001"
	pgCodeDeadlockDetected     = "40P01"
	pgCodeLockNotAvailable     = "55P03"
)

// wrapConflict converts lock-timeout, deadlock and serialization errors into the
// retryable TransactionConflictError. The transaction has already rolled back at
// that point, so the caller may safely retry the whole operation.
func wrapConflict(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgCodeLockNotAvailable, pgCodeDeadlockDetected, pgCodeSerializationFailure:
			return &domain.TransactionConflictError{Msg: "operation timed out waiting for a concurrent transaction, retry"}
		}
	}

	return err
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == pgCodeUniqueViolation
}
