package backend

import (
	"context"
	"errors"

	"github.com/girltalk-community/meetbot/pkg/db"
	"github.com/girltalk-community/meetbot/pkg/db/models"
)

// RegisterUser registers a user for a meeting. It returns
// ErrAlreadyRegistered if the user is already registered for the meeting,
// and ErrMeetingNotFound if the meeting does not exist.
func (b *Backend) RegisterUser(ctx context.Context, meetingID int64, userID int64, username string) (*models.Registration, error) {
	var r models.Registration
	if err := b.db.TransactionContext(ctx, func(tx *db.Tx) error {
		id, err := b.store.CreateRegistration(ctx, tx, meetingID, userID, username)
		if err != nil {
			return err
		}

		r, err = b.store.GetRegistrationByID(ctx, tx, id)
		return err
	}); err != nil {
		err = db.WrapError(err)
		switch {
		case errors.Is(err, db.ErrDuplicateKey):
			return nil, ErrAlreadyRegistered
		case errors.Is(err, db.ErrForeignKeyViolated):
			return nil, ErrMeetingNotFound
		}
		return nil, err
	}

	b.logger.Info("user registered", "meeting_id", meetingID, "user_id", userID)

	return &r, nil
}

// Registrations returns all registrations for a meeting in registration
// order. Re-querying yields a fresh sequence reflecting current state.
func (b *Backend) Registrations(ctx context.Context, meetingID int64) ([]models.Registration, error) {
	rs, err := b.store.ListRegistrationsByMeeting(ctx, b.db, meetingID)
	if err != nil {
		return nil, db.WrapError(err)
	}

	return rs, nil
}

// RegistrationCount returns the number of registrations for a meeting.
func (b *Backend) RegistrationCount(ctx context.Context, meetingID int64) (int64, error) {
	count, err := b.store.CountRegistrationsByMeeting(ctx, b.db, meetingID)
	if err != nil {
		return 0, db.WrapError(err)
	}

	return count, nil
}

// MeetingsForUser returns the meetings a user has registered for, soonest
// first.
func (b *Backend) MeetingsForUser(ctx context.Context, userID int64) ([]models.Meeting, error) {
	ms, err := b.store.ListMeetingsByUser(ctx, b.db, userID)
	if err != nil {
		return nil, db.WrapError(err)
	}

	return ms, nil
}
