package store

import (
	"context"

	"github.com/girltalk-community/meetbot/pkg/db"
	"github.com/girltalk-community/meetbot/pkg/db/models"
)

// MeetingStore is an interface for managing meetings.
type MeetingStore interface {
	// CreateMeeting inserts a meeting and returns its internal ID. The
	// insert fails with db.ErrDuplicateKey if eventID already exists.
	CreateMeeting(ctx context.Context, h db.Handler, eventID string, creatorID int64, creatorUsername string, title string, description string, startTime string, endTime string, calendarLink string) (int64, error)
	GetMeetingByID(ctx context.Context, h db.Handler, id int64) (models.Meeting, error)
	FindMeetingByEventID(ctx context.Context, h db.Handler, eventID string) (models.Meeting, error)
	ListMeetingsByCreator(ctx context.Context, h db.Handler, creatorID int64) ([]models.Meeting, error)
	// ListMeetingsAfter returns meetings whose start time sorts after the
	// given textual timestamp, soonest first.
	ListMeetingsAfter(ctx context.Context, h db.Handler, after string) ([]models.Meeting, error)
}
