package db

import (
	"database/sql"
	"errors"

	"github.com/lib/pq"
	sqlite "modernc.org/sqlite"
	sqlite3 "modernc.org/sqlite/lib"
)

var (
	// ErrRecordNotFound is returned when a record is not found.
	ErrRecordNotFound = errors.New("record not found")

	// ErrDuplicateKey is a uniqueness constraint violation error.
	ErrDuplicateKey = errors.New("duplicate key value violates table constraint")

	// ErrForeignKeyViolated is a referential constraint violation error.
	ErrForeignKeyViolated = errors.New("foreign key constraint violated")
)

// WrapError is a convenient function that unite various database driver
// errors to consistent errors.
func WrapError(err error) error {
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ErrRecordNotFound
		}

		// Handle sqlite constraint errors.
		if liteErr, ok := err.(*sqlite.Error); ok {
			code := liteErr.Code()
			switch code {
			case sqlite3.SQLITE_CONSTRAINT_PRIMARYKEY,
				sqlite3.SQLITE_CONSTRAINT_UNIQUE:
				return ErrDuplicateKey
			case sqlite3.SQLITE_CONSTRAINT_FOREIGNKEY:
				return ErrForeignKeyViolated
			}
		}

		// Handle postgres constraint errors.
		if pqErr, ok := err.(*pq.Error); ok {
			switch pqErr.Code {
			case "23505": // unique_violation
				return ErrDuplicateKey
			case "23503": // foreign_key_violation
				return ErrForeignKeyViolated
			}
		}
	}
	return err
}
