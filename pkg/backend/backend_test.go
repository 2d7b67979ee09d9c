package backend_test

import (
	"context"
	"errors"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/girltalk-community/meetbot/pkg/backend"
	"github.com/girltalk-community/meetbot/pkg/config"
	"github.com/girltalk-community/meetbot/pkg/db"
	"github.com/girltalk-community/meetbot/pkg/db/migrate"
	"github.com/girltalk-community/meetbot/pkg/store/database"
)

func openTestBackend(t *testing.T) (context.Context, *backend.Backend) {
	t.Helper()
	cfg := config.DefaultConfig()
	cfg.DataPath = t.TempDir()
	if err := cfg.Validate(); err != nil {
		t.Fatal(err)
	}

	ctx := config.WithContext(context.TODO(), cfg)
	dsn := filepath.Join(cfg.DataPath, "test.db") +
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

	st := database.New(ctx, dbx)
	return ctx, backend.New(ctx, cfg, dbx, st)
}

func TestCreateMeetingGeneratesEventID(t *testing.T) {
	ctx, be := openTestBackend(t)

	start := time.Date(2025, 3, 1, 18, 0, 0, 0, time.UTC)
	m, err := be.CreateMeeting(ctx, backend.CreateMeetingOptions{
		CreatorID:       42,
		CreatorUsername: "someone",
		Title:           "No Calendar Meeting",
		StartTime:       start,
	})
	if err != nil {
		t.Fatalf("CreateMeeting() => %v, want nil error", err)
	}

	if !strings.HasPrefix(m.EventID, "local_event_") {
		t.Errorf("EventID => %q, want local_event_ prefix", m.EventID)
	}
	if m.EndTime != start.Add(time.Hour).Format(backend.TimeLayout) {
		t.Errorf("EndTime => %q, want start+1h", m.EndTime)
	}
}

func TestCreateMeetingDuplicateEventID(t *testing.T) {
	ctx, be := openTestBackend(t)

	opts := backend.CreateMeetingOptions{
		EventID:   "twice_event",
		CreatorID: 42,
		Title:     "Once Only",
		StartTime: time.Date(2025, 3, 1, 18, 0, 0, 0, time.UTC),
	}

	if _, err := be.CreateMeeting(ctx, opts); err != nil {
		t.Fatalf("CreateMeeting() => %v, want nil error", err)
	}
	if _, err := be.CreateMeeting(ctx, opts); !errors.Is(err, backend.ErrMeetingExists) {
		t.Errorf("CreateMeeting() again => %v, want %v", err, backend.ErrMeetingExists)
	}
}

func TestRegisterUserTwice(t *testing.T) {
	ctx, be := openTestBackend(t)

	m, err := be.MeetingByEventID(ctx, "test_event_3")
	if err != nil {
		t.Fatal(err)
	}

	if _, err := be.RegisterUser(ctx, m.ID, 42, "someone"); err != nil {
		t.Fatalf("RegisterUser() => %v, want nil error", err)
	}
	if _, err := be.RegisterUser(ctx, m.ID, 42, "someone"); !errors.Is(err, backend.ErrAlreadyRegistered) {
		t.Errorf("RegisterUser() again => %v, want %v", err, backend.ErrAlreadyRegistered)
	}

	count, err := be.RegistrationCount(ctx, m.ID)
	if err != nil {
		t.Fatal(err)
	}
	// One seed registration plus the one above.
	if count != 2 {
		t.Errorf("RegistrationCount() => %d, want 2", count)
	}
}

func TestRegisterUserUnknownMeeting(t *testing.T) {
	ctx, be := openTestBackend(t)

	if _, err := be.RegisterUser(ctx, 999, 42, "someone"); !errors.Is(err, backend.ErrMeetingNotFound) {
		t.Errorf("RegisterUser(999) => %v, want %v", err, backend.ErrMeetingNotFound)
	}
}

func TestMeetingNotFound(t *testing.T) {
	ctx, be := openTestBackend(t)

	if _, err := be.Meeting(ctx, 999); !errors.Is(err, backend.ErrMeetingNotFound) {
		t.Errorf("Meeting(999) => %v, want %v", err, backend.ErrMeetingNotFound)
	}
	if _, err := be.MeetingByEventID(ctx, "no_such_event"); !errors.Is(err, backend.ErrMeetingNotFound) {
		t.Errorf("MeetingByEventID(no_such_event) => %v, want %v", err, backend.ErrMeetingNotFound)
	}
}

func TestMeetingCached(t *testing.T) {
	ctx, be := openTestBackend(t)

	m1, err := be.Meeting(ctx, 1)
	if err != nil {
		t.Fatal(err)
	}
	m2, err := be.Meeting(ctx, 1)
	if err != nil {
		t.Fatal(err)
	}
	if m1 != m2 {
		t.Errorf("Meeting(1) => %p then %p, want cached pointer", m1, m2)
	}
}

func TestRegistrationsOrder(t *testing.T) {
	ctx, be := openTestBackend(t)

	m, err := be.MeetingByEventID(ctx, "test_event_5")
	if err != nil {
		t.Fatal(err)
	}

	rs, err := be.Registrations(ctx, m.ID)
	if err != nil {
		t.Fatal(err)
	}

	want := []int64{777888999, 999111222, 333444555, 666777888}
	if len(rs) != len(want) {
		t.Fatalf("len(Registrations) => %d, want %d", len(rs), len(want))
	}
	for i, r := range rs {
		if r.UserID != want[i] {
			t.Errorf("Registrations[%d].UserID => %d, want %d", i, r.UserID, want[i])
		}
	}
}

func TestUpcomingMeetings(t *testing.T) {
	ctx, be := openTestBackend(t)

	after := time.Date(2025, 2, 1, 0, 0, 0, 0, time.UTC)
	ms, err := be.UpcomingMeetings(ctx, after)
	if err != nil {
		t.Fatal(err)
	}
	if len(ms) != 3 {
		t.Fatalf("len(UpcomingMeetings) => %d, want 3", len(ms))
	}
	for i := 1; i < len(ms); i++ {
		if ms[i-1].StartTime > ms[i].StartTime {
			t.Errorf("meetings not ordered by start_time: %q > %q", ms[i-1].StartTime, ms[i].StartTime)
		}
	}
}

func TestMeetingsByCreator(t *testing.T) {
	ctx, be := openTestBackend(t)

	ms, err := be.MeetingsByCreator(ctx, 987654321)
	if err != nil {
		t.Fatal(err)
	}
	if len(ms) != 2 {
		t.Errorf("len(MeetingsByCreator) => %d, want 2", len(ms))
	}
}

func TestMeetingsForUser(t *testing.T) {
	ctx, be := openTestBackend(t)

	ms, err := be.MeetingsForUser(ctx, 111222333)
	if err != nil {
		t.Fatal(err)
	}
	if len(ms) != 3 {
		t.Errorf("len(MeetingsForUser) => %d, want 3", len(ms))
	}
}
