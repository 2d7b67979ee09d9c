package migrate

import (
	"context"
	"fmt"
	"strings"

	"github.com/girltalk-community/meetbot/pkg/db"
)

// Demo meetings inserted at initialization. Kept stable so the bot can be
// exercised against a known data set.
var seedMeetings = []struct {
	EventID         string
	CreatorID       int64
	CreatorUsername string
	Title           string
	Description     string
	StartTime       string
	EndTime         string
	CalendarLink    string
}{
	{
		EventID:         "test_event_1",
		CreatorID:       123456789,
		CreatorUsername: "sarah_organizer",
		Title:           "Welcome Tea & Introductions",
		Description:     "Casual get-together for new community members.",
		StartTime:       "2025-01-15T18:00:00",
		EndTime:         "2025-01-15T19:00:00",
		CalendarLink:    "https://calendar.google.com/calendar/event?eid=test_event_1",
	},
	{
		EventID:         "test_event_2",
		CreatorID:       123456789,
		CreatorUsername: "sarah_organizer",
		Title:           "Book Club: The Midnight Library",
		Description:     "Monthly book club. This month we discuss Matt Haig.",
		StartTime:       "2025-01-22T19:30:00",
		EndTime:         "2025-01-22T20:30:00",
		CalendarLink:    "https://calendar.google.com/calendar/event?eid=test_event_2",
	},
	{
		EventID:         "test_event_3",
		CreatorID:       987654321,
		CreatorUsername: "amina_dev",
		Title:           "Career Chat: Switching Into Tech",
		Description:     "Open Q&A about career changes, CVs, and interviews.",
		StartTime:       "2025-02-05T18:30:00",
		EndTime:         "2025-02-05T19:30:00",
	},
	{
		EventID:         "test_event_4",
		CreatorID:       987654321,
		CreatorUsername: "amina_dev",
		Title:           "Study Group: Go Basics",
		Description:     "Weekly study group, beginners welcome.",
		StartTime:       "2025-02-12T18:30:00",
		EndTime:         "2025-02-12T19:30:00",
	},
	{
		EventID:         "test_event_5",
		CreatorID:       555666777,
		CreatorUsername: "elena_mentor",
		Title:           "Monthly Community Meetup",
		Description:     "Our regular all-hands meetup with lightning talks.",
		StartTime:       "2025-02-28T17:00:00",
		EndTime:         "2025-02-28T19:00:00",
		CalendarLink:    "https://calendar.google.com/calendar/event?eid=test_event_5",
	},
}

// Demo registrations, in insertion order. jessica_newbie is listed twice for
// test_event_1; the second row is dropped by the unique (meeting_id, user_id)
// constraint.
var seedRegistrations = []struct {
	EventID  string
	UserID   int64
	Username string
}{
	{"test_event_1", 111222333, "jessica_newbie"},
	{"test_event_1", 444555666, "maria_lopez"},
	{"test_event_2", 111222333, "jessica_newbie"},
	{"test_event_2", 222333444, "priya_codes"},
	{"test_event_3", 444555666, "maria_lopez"},
	{"test_event_4", 111222333, "jessica_newbie"},
	{"test_event_1", 111222333, "jessica_newbie"},
	{"test_event_5", 777888999, "nina_draws"},
	{"test_event_5", 999111222, "fatima_writes"},
	{"test_event_5", 333444555, "lucy_design"},
	{"test_event_5", 666777888, "hana_travels"},
}

func seed(ctx context.Context, tx *db.Tx) error {
	insertMeeting := `INSERT INTO meetings (event_id, creator_id, creator_username, title, description, start_time, end_time, calendar_link)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?)`
	insertRegistration := `INSERT INTO registrations (meeting_id, user_id, username)
			VALUES (?, ?, ?)`

	// Duplicate seed rows are expected on re-initialization and are skipped.
	switch tx.DriverName() {
	case "sqlite", "sqlite3":
		insertMeeting = strings.Replace(insertMeeting, "INSERT", "INSERT OR IGNORE", 1)
		insertRegistration = strings.Replace(insertRegistration, "INSERT", "INSERT OR IGNORE", 1)
	case "postgres":
		insertMeeting += " ON CONFLICT (event_id) DO NOTHING"
		insertRegistration += " ON CONFLICT (meeting_id, user_id) DO NOTHING"
	}

	for _, m := range seedMeetings {
		if _, err := tx.ExecContext(ctx, tx.Rebind(insertMeeting),
			m.EventID, m.CreatorID, m.CreatorUsername, m.Title, m.Description,
			m.StartTime, m.EndTime, m.CalendarLink); err != nil {
			return fmt.Errorf("seeding meeting %q: %w", m.EventID, err)
		}
	}

	selectMeetingID := tx.Rebind(`SELECT id FROM meetings WHERE event_id = ?`)
	for _, r := range seedRegistrations {
		var meetingID int64
		if err := tx.GetContext(ctx, &meetingID, selectMeetingID, r.EventID); err != nil {
			return fmt.Errorf("finding seed meeting %q: %w", r.EventID, err)
		}

		if _, err := tx.ExecContext(ctx, tx.Rebind(insertRegistration),
			meetingID, r.UserID, r.Username); err != nil {
			return fmt.Errorf("seeding registration %d/%q: %w", r.UserID, r.EventID, err)
		}
	}

	return nil
}
