package store_test

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/girltalk-community/meetbot/pkg/db"
	"github.com/girltalk-community/meetbot/pkg/store"
	"github.com/girltalk-community/meetbot/pkg/store/database"
)

func TestBadFromContext(t *testing.T) {
	ctx := context.TODO()
	if s := store.FromContext(ctx); s != nil {
		t.Errorf("FromContext(ctx) => %v, want %v", s, nil)
	}
}

func TestGoodFromContext(t *testing.T) {
	ctx := context.TODO()
	dbx, err := db.Open(ctx, "sqlite", filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() {
		if err := dbx.Close(); err != nil {
			t.Error(err)
		}
	})

	s := database.New(ctx, dbx)
	ctx = store.WithContext(ctx, s)
	if got := store.FromContext(ctx); got == nil {
		t.Errorf("FromContext(ctx) => %v, want %v", got, s)
	}
}
