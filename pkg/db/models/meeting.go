// Package models defines the database models for meetbot.
package models

import (
	"database/sql"
	"time"
)

// Meeting is a database model for a scheduled community meeting.
//
// StartTime and EndTime are stored as textual ISO-8601 timestamps, the way
// the bot writes them. EventID is the externally visible calendar event
// identifier and is unique across all meetings.
type Meeting struct {
	ID              int64          `db:"id"`
	EventID         string         `db:"event_id"`
	CreatorID       int64          `db:"creator_id"`
	CreatorUsername sql.NullString `db:"creator_username"`
	Title           string         `db:"title"`
	Description     sql.NullString `db:"description"`
	StartTime       string         `db:"start_time"`
	EndTime         string         `db:"end_time"`
	CalendarLink    sql.NullString `db:"calendar_link"`
	CreatedAt       time.Time      `db:"created_at"`
}
