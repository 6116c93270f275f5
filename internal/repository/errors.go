// Package repository defines error types that are reused across multiple
// repositories. These sentinel values let the store facade and tests
// distinguish between failure scenarios: ErrNotFound marks the normal
// empty-read outcome, while ErrConstraint signals a uniqueness or
// foreign-key rule broken on write. Anything else is a storage failure
// and is passed through wrapped.
package repository

import (
	"errors"

	"modernc.org/sqlite"
	sqlite3 "modernc.org/sqlite/lib"
)

// ErrNotFound is returned by single-row reads when no row matches.
// Callers should treat this as an expected outcome, not a failure.
var ErrNotFound = errors.New("not found")

// ErrConstraint is returned when an insert or update violates a
// uniqueness or foreign-key constraint. The write does not apply.
var ErrConstraint = errors.New("constraint violation")

// constraintErr reports whether err carries SQLITE_CONSTRAINT as its
// primary result code. The driver returns extended codes (e.g.
// SQLITE_CONSTRAINT_UNIQUE), so only the low byte is compared.
func constraintErr(err error) bool {
	var se *sqlite.Error
	return errors.As(err, &se) && se.Code()&0xff == sqlite3.SQLITE_CONSTRAINT
}
