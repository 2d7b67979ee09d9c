package store

import (
	"context"

	"github.com/girltalk-community/meetbot/pkg/db"
	"github.com/girltalk-community/meetbot/pkg/db/models"
)

// RegistrationStore is an interface for managing meeting registrations.
type RegistrationStore interface {
	// CreateRegistration inserts a registration and returns its ID. The
	// insert fails with db.ErrDuplicateKey if the (meetingID, userID) pair
	// already exists, and with db.ErrForeignKeyViolated if meetingID does
	// not reference an existing meeting.
	CreateRegistration(ctx context.Context, h db.Handler, meetingID int64, userID int64, username string) (int64, error)
	GetRegistrationByID(ctx context.Context, h db.Handler, id int64) (models.Registration, error)
	// ListRegistrationsByMeeting returns all registrations for a meeting in
	// registration order.
	ListRegistrationsByMeeting(ctx context.Context, h db.Handler, meetingID int64) ([]models.Registration, error)
	CountRegistrationsByMeeting(ctx context.Context, h db.Handler, meetingID int64) (int64, error)
	// ListMeetingsByUser returns the meetings a user has registered for,
	// soonest first.
	ListMeetingsByUser(ctx context.Context, h db.Handler, userID int64) ([]models.Meeting, error)
}
