// Package sqlerr classifies PostgreSQL driver errors so services can turn
// constraint failures into domain errors.
package sqlerr

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

type Code string

const (
	Other               Code = "other"
	UniqueViolation     Code = "unique_violation"
	ForeignKeyViolation Code = "foreign_key_violation"
)

// SQLSTATE values, see https://www.postgresql.org/docs/current/errcodes-appendix.html
var sqlStates = map[string]Code{
	"23505": UniqueViolation,
	"23503": ForeignKeyViolation,
}

// Classify returns the constraint class of err, or Other when err does not carry a *pgconn.PgError.
func Classify(err error) Code {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return Other
	}
	if code, ok := sqlStates[pgErr.Code]; ok {
		return code
	}
	return Other
}

// Is reports whether err is a PostgreSQL error of the given class.
func Is(err error, code Code) bool {
	return Classify(err) == code
}

// Constraint returns the violated constraint name, if any.
func Constraint(err error) string {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.ConstraintName
	}
	return ""
}
