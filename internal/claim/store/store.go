// Package store holds what the claim stores share.
package store

import (
	"errors"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"

	dErrors "pixclaim/pkg/domain-errors"
)

const (
	// DefaultLimit applies when a list call passes a non-positive limit.
	DefaultLimit = 50
	// MaxLimit caps any list call.
	MaxLimit = 500
)

// Limit normalizes a caller-supplied list limit.
func Limit(n int) int {
	switch {
	case n <= 0:
		return DefaultLimit
	case n > MaxLimit:
		return MaxLimit
	default:
		return n
	}
}

// pgDataException is the SQLSTATE class for values Postgres refuses to store,
// such as NUL bytes in text (22021).
const pgDataException = "22"

// Classify codes a value Postgres rejected as a validation error, since writing
// it again can never succeed. Other errors are returned as is.
func Classify(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && strings.HasPrefix(pgErr.Code, pgDataException) {
		return dErrors.Wrap(err, dErrors.CodeValidation, "value rejected by database: "+pgErr.Message)
	}
	return err
}
