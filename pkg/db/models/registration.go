package models

import (
	"database/sql"
	"time"
)

// Registration is a database model for a user's signup for a meeting.
// A user may register for a given meeting at most once.
type Registration struct {
	ID           int64          `db:"id"`
	MeetingID    int64          `db:"meeting_id"`
	UserID       int64          `db:"user_id"`
	Username     sql.NullString `db:"username"`
	RegisteredAt time.Time      `db:"registered_at"`
}
