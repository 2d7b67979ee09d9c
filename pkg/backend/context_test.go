package backend_test

import (
	"context"
	"testing"

	"github.com/girltalk-community/meetbot/pkg/backend"
)

func TestBadFromContext(t *testing.T) {
	ctx := context.TODO()
	if b := backend.FromContext(ctx); b != nil {
		t.Errorf("FromContext(ctx) => %v, want %v", b, nil)
	}
}

func TestGoodFromContext(t *testing.T) {
	ctx, be := openTestBackend(t)
	ctx = backend.WithContext(ctx, be)
	if b := backend.FromContext(ctx); b != be {
		t.Errorf("FromContext(ctx) => %v, want %v", b, be)
	}
}
