package database

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/girltalk-community/meetbot/pkg/db"
	"github.com/girltalk-community/meetbot/pkg/db/migrate"
	"github.com/girltalk-community/meetbot/pkg/store"
)

func openTestStore(t *testing.T) (context.Context, *db.DB, store.Store) {
	t.Helper()
	ctx := context.TODO()
	dsn := filepath.Join(t.TempDir(), "test.db") +
		"?_pragma=busy_timeout(5000)&_pragma=foreign_keys(1)"
	dbx, err := db.Open(ctx, "sqlite", dsn)
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() {
		if err := dbx.Close(); err != nil {
			t.Error(err)
		}
	})
	if err := migrate.Migrate(ctx, dbx); err != nil {
		t.Fatal(err)
	}
	return ctx, dbx, New(ctx, dbx)
}

func TestCreateMeetingDuplicateEventID(t *testing.T) {
	ctx, dbx, s := openTestStore(t)

	// test_event_1 is part of the seed data.
	_, err := s.CreateMeeting(ctx, dbx, "test_event_1", 1, "someone",
		"Duplicate", "", "2025-03-01T10:00:00", "2025-03-01T11:00:00", "")
	if !errors.Is(db.WrapError(err), db.ErrDuplicateKey) {
		t.Errorf("CreateMeeting(test_event_1) => %v, want %v", err, db.ErrDuplicateKey)
	}

	var count int64
	if err := dbx.Get(&count, "SELECT COUNT(*) FROM meetings WHERE event_id = ?", "test_event_1"); err != nil {
		t.Fatal(err)
	}
	if count != 1 {
		t.Errorf("COUNT(meetings event_id=test_event_1) => %d, want 1", count)
	}
}

func TestCreateMeeting(t *testing.T) {
	ctx, dbx, s := openTestStore(t)

	id, err := s.CreateMeeting(ctx, dbx, "brand_new_event", 42, "creator",
		"New Meeting", "a description", "2025-03-01T10:00:00", "2025-03-01T11:00:00", "")
	if err != nil {
		t.Fatalf("CreateMeeting() => %v, want nil error", err)
	}

	m, err := s.GetMeetingByID(ctx, dbx, id)
	if err != nil {
		t.Fatal(err)
	}
	if m.EventID != "brand_new_event" {
		t.Errorf("EventID => %q, want %q", m.EventID, "brand_new_event")
	}
	if m.CreatedAt.IsZero() {
		t.Error("CreatedAt is zero, want insertion time")
	}
}

func TestCreateRegistrationDuplicatePair(t *testing.T) {
	ctx, dbx, s := openTestStore(t)

	m, err := s.FindMeetingByEventID(ctx, dbx, "test_event_1")
	if err != nil {
		t.Fatal(err)
	}

	// jessica_newbie is already registered for meeting 1 via the seed.
	_, err = s.CreateRegistration(ctx, dbx, m.ID, 111222333, "jessica_newbie")
	if !errors.Is(db.WrapError(err), db.ErrDuplicateKey) {
		t.Errorf("CreateRegistration(dup pair) => %v, want %v", err, db.ErrDuplicateKey)
	}
}

func TestCreateRegistrationUnknownMeeting(t *testing.T) {
	ctx, dbx, s := openTestStore(t)

	_, err := s.CreateRegistration(ctx, dbx, 999, 123, "nobody")
	if !errors.Is(db.WrapError(err), db.ErrForeignKeyViolated) {
		t.Errorf("CreateRegistration(unknown meeting) => %v, want %v", err, db.ErrForeignKeyViolated)
	}
}

func TestListRegistrationsOrder(t *testing.T) {
	ctx, dbx, s := openTestStore(t)

	m, err := s.FindMeetingByEventID(ctx, dbx, "test_event_5")
	if err != nil {
		t.Fatal(err)
	}

	rs, err := s.ListRegistrationsByMeeting(ctx, dbx, m.ID)
	if err != nil {
		t.Fatal(err)
	}

	want := []int64{777888999, 999111222, 333444555, 666777888}
	if len(rs) != len(want) {
		t.Fatalf("len(registrations) => %d, want %d", len(rs), len(want))
	}
	for i, r := range rs {
		if r.UserID != want[i] {
			t.Errorf("registrations[%d].UserID => %d, want %d", i, r.UserID, want[i])
		}
	}
}

func TestCountRegistrations(t *testing.T) {
	ctx, dbx, s := openTestStore(t)

	m, err := s.FindMeetingByEventID(ctx, dbx, "test_event_5")
	if err != nil {
		t.Fatal(err)
	}

	count, err := s.CountRegistrationsByMeeting(ctx, dbx, m.ID)
	if err != nil {
		t.Fatal(err)
	}
	if count != 4 {
		t.Errorf("CountRegistrationsByMeeting() => %d, want 4", count)
	}
}

func TestListMeetingsByCreator(t *testing.T) {
	ctx, dbx, s := openTestStore(t)

	ms, err := s.ListMeetingsByCreator(ctx, dbx, 123456789)
	if err != nil {
		t.Fatal(err)
	}
	if len(ms) != 2 {
		t.Fatalf("len(meetings) => %d, want 2", len(ms))
	}
	for i := 1; i < len(ms); i++ {
		if ms[i-1].StartTime > ms[i].StartTime {
			t.Errorf("meetings not ordered by start_time: %q > %q", ms[i-1].StartTime, ms[i].StartTime)
		}
	}
}

func TestListMeetingsAfter(t *testing.T) {
	ctx, dbx, s := openTestStore(t)

	ms, err := s.ListMeetingsAfter(ctx, dbx, "2025-02-01T00:00:00")
	if err != nil {
		t.Fatal(err)
	}
	if len(ms) != 3 {
		t.Fatalf("len(meetings after 2025-02-01) => %d, want 3", len(ms))
	}
	if ms[0].EventID != "test_event_3" {
		t.Errorf("meetings[0].EventID => %q, want %q", ms[0].EventID, "test_event_3")
	}
}

func TestListMeetingsByUser(t *testing.T) {
	ctx, dbx, s := openTestStore(t)

	ms, err := s.ListMeetingsByUser(ctx, dbx, 111222333)
	if err != nil {
		t.Fatal(err)
	}

	// jessica_newbie is registered for meetings 1, 2, and 4.
	want := []string{"test_event_1", "test_event_2", "test_event_4"}
	if len(ms) != len(want) {
		t.Fatalf("len(meetings) => %d, want %d", len(ms), len(want))
	}
	for i, m := range ms {
		if m.EventID != want[i] {
			t.Errorf("meetings[%d].EventID => %q, want %q", i, m.EventID, want[i])
		}
	}
}

func TestGetMeetingByIDNotFound(t *testing.T) {
	ctx, dbx, s := openTestStore(t)

	_, err := s.GetMeetingByID(ctx, dbx, 999)
	if !errors.Is(db.WrapError(err), db.ErrRecordNotFound) {
		t.Errorf("GetMeetingByID(999) => %v, want %v", err, db.ErrRecordNotFound)
	}
}
