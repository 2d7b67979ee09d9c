// Package database provides a SQL implementation of the meetbot store.
package database

import (
	"context"

	"github.com/charmbracelet/log"
	"github.com/girltalk-community/meetbot/pkg/config"
	"github.com/girltalk-community/meetbot/pkg/db"
	"github.com/girltalk-community/meetbot/pkg/store"
)

type datastore struct {
	ctx    context.Context
	cfg    *config.Config
	db     *db.DB
	logger *log.Logger

	*meetingStore
	*registrationStore
}

// New returns a new store.Store database.
func New(ctx context.Context, db *db.DB) store.Store {
	cfg := config.FromContext(ctx)
	logger := log.FromContext(ctx).WithPrefix("store")

	s := &datastore{
		ctx:    ctx,
		cfg:    cfg,
		db:     db,
		logger: logger,

		meetingStore:      &meetingStore{},
		registrationStore: &registrationStore{},
	}

	return s
}
