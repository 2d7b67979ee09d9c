// Package backend implements the meetbot domain operations on top of the
// store layer.
package backend

import (
	"context"

	"github.com/charmbracelet/log"
	"github.com/girltalk-community/meetbot/pkg/config"
	"github.com/girltalk-community/meetbot/pkg/db"
	"github.com/girltalk-community/meetbot/pkg/store"
)

// Backend handles meeting and registration management and operations.
type Backend struct {
	ctx    context.Context
	cfg    *config.Config
	db     *db.DB
	store  store.Store
	logger *log.Logger
	cache  *cache
}

// New returns a new meetbot backend.
func New(ctx context.Context, cfg *config.Config, db *db.DB, st store.Store) *Backend {
	logger := log.FromContext(ctx).WithPrefix("backend")
	b := &Backend{
		ctx:    ctx,
		cfg:    cfg,
		db:     db,
		store:  st,
		logger: logger,
	}

	// Meetings are immutable once created, so cached entries never go stale.
	b.cache = newCache(b, 1000)

	return b
}
