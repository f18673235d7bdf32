package errors

// Postgres-specific helpers for mapping pgx errors to project ErrorCode

import (
	stderrs "errors"

	"github.com/jackc/pgx/v5/pgconn"
)

// Common SQLSTATE codes we care about
const (
	pgErrUniqueViolation           = "23505"
	pgErrForeignKeyViolation       = "23503"
	pgErrNotNullViolation          = "23502"
	pgErrCheckViolation            = "23514"
	pgErrStringDataRightTruncation = "22001"
	pgErrInvalidTextRepresentation = "22P02"

	pgErrSerializationFailure = "40001"
	pgErrDeadlockDetected     = "40P01"
	pgErrCannotConnectNow     = "57P03" // i.e. startup in progress
)

// ExtractPgError returns (*pgconn.PgError, true) if the root cause is a PgError.
func ExtractPgError(err error) (*pgconn.PgError, bool) {
	var pgErr *pgconn.PgError
	if stderrs.As(Root(err), &pgErr) {
		return pgErr, true
	}
	return nil, false
}

// IsSQLState reports whether the error is a Postgres error with the given SQLSTATE code
func IsSQLState(err error, code string) bool {
	pgErr, ok := ExtractPgError(err)
	return ok && pgErr.Code == code
}

// IsDuplicateKey reports whether the error is a unique constraint violation
func IsDuplicateKey(err error) bool { return IsSQLState(err, pgErrUniqueViolation) }

// IsSerializationFailure reports whether the error is a serialization failure
func IsSerializationFailure(err error) bool { return IsSQLState(err, pgErrSerializationFailure) }

// IsDeadlock reports whether the error is a deadlock detected error
func IsDeadlock(err error) bool { return IsSQLState(err, pgErrDeadlockDetected) }

// FromPg maps a Postgres error into a project *Error; non-PG errors wrap as generic DB errors
func FromPg(err error) error {
	if err == nil {
		return nil
	}
	pgErr, ok := ExtractPgError(err)
	if !ok {
		return Wrap(err, ErrorCodeDB, "database error")
	}
	switch pgErr.Code {
	case pgErrUniqueViolation:
		return Wrap(err, ErrorCodeDuplicateKey, "duplicate key")
	case pgErrForeignKeyViolation, pgErrNotNullViolation, pgErrCheckViolation,
		pgErrStringDataRightTruncation, pgErrInvalidTextRepresentation:
		return Wrap(err, ErrorCodeInvalidArgument, pgErr.Message)
	case pgErrSerializationFailure, pgErrDeadlockDetected, pgErrCannotConnectNow:
		return Wrap(err, ErrorCodeUnavailable, pgErr.Message)
	default:
		return Wrap(err, ErrorCodeDB, pgErr.Message)
	}
}
