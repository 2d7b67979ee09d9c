package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/girltalk-community/meetbot/pkg/backend"
	"github.com/girltalk-community/meetbot/pkg/config"
	"github.com/girltalk-community/meetbot/pkg/db"
	"github.com/girltalk-community/meetbot/pkg/db/migrate"
	"github.com/girltalk-community/meetbot/pkg/store"
	"github.com/girltalk-community/meetbot/pkg/store/database"
	"github.com/spf13/cobra"
)

// initBackendContext initializes the backend context. It opens the database,
// runs the idempotent schema initialization, and attaches the database,
// store, and backend to the command context.
func initBackendContext(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()
	cfg := config.FromContext(ctx)
	if _, err := os.Stat(cfg.DataPath); errors.Is(err, fs.ErrNotExist) {
		if err := os.MkdirAll(cfg.DataPath, os.ModePerm); err != nil {
			return fmt.Errorf("create data directory: %w", err)
		}
	}

	dbx, err := db.Open(ctx, cfg.DB.Driver, cfg.DB.DataSource)
	if err != nil {
		return fmt.Errorf("open database: %w", err)
	}

	if err := migrate.Migrate(ctx, dbx); err != nil {
		return fmt.Errorf("initialize database: %w", err)
	}

	ctx = db.WithContext(ctx, dbx)
	dbstore := database.New(ctx, dbx)
	ctx = store.WithContext(ctx, dbstore)
	be := backend.New(ctx, cfg, dbx, dbstore)
	ctx = backend.WithContext(ctx, be)

	cmd.SetContext(ctx)

	return nil
}
