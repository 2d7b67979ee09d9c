// Package migrate initializes the meetbot database schema and seed data.
package migrate

import (
	"context"
	"embed"
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/girltalk-community/meetbot/pkg/db"
)

//go:embed *.sql
var sqls embed.FS

// Migrate creates the meetbot tables, indexes, and demo seed rows inside a
// single transaction. Every statement is idempotent, so running it against
// an already initialized database changes nothing.
func Migrate(ctx context.Context, dbx *db.DB) error {
	logger := log.FromContext(ctx).WithPrefix("migrate")
	return dbx.TransactionContext(ctx, func(tx *db.Tx) error {
		logger.Debug("creating tables and indexes")
		if err := execSchema(ctx, tx); err != nil {
			return err
		}

		logger.Debug("inserting seed data")
		return seed(ctx, tx)
	})
}

func execSchema(ctx context.Context, h db.Handler) error {
	driverName := h.DriverName()
	if driverName == "sqlite3" {
		driverName = "sqlite"
	}

	fn := fmt.Sprintf("schema.%s.sql", driverName)
	sqlstr, err := sqls.ReadFile(fn)
	if err != nil {
		return fmt.Errorf("unsupported driver %q: %w", h.DriverName(), err)
	}

	if _, err := h.ExecContext(ctx, string(sqlstr)); err != nil {
		return fmt.Errorf("creating tables: %w", err)
	}

	return nil
}
