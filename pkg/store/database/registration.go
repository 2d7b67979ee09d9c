package database

import (
	"context"

	"github.com/girltalk-community/meetbot/pkg/db"
	"github.com/girltalk-community/meetbot/pkg/db/models"
	"github.com/girltalk-community/meetbot/pkg/store"
)

type registrationStore struct{}

var _ store.RegistrationStore = (*registrationStore)(nil)

// CreateRegistration implements store.RegistrationStore.
func (*registrationStore) CreateRegistration(ctx context.Context, h db.Handler, meetingID int64, userID int64, username string) (int64, error) {
	query := h.Rebind(`INSERT INTO registrations (meeting_id, user_id, username)
			VALUES (?, ?, ?) RETURNING id;`)

	var id int64
	if err := h.GetContext(ctx, &id, query, meetingID, userID, username); err != nil {
		return 0, err //nolint:wrapcheck
	}

	return id, nil
}

// GetRegistrationByID implements store.RegistrationStore.
func (*registrationStore) GetRegistrationByID(ctx context.Context, h db.Handler, id int64) (models.Registration, error) {
	var r models.Registration
	query := h.Rebind(`SELECT * FROM registrations WHERE id = ?;`)
	err := h.GetContext(ctx, &r, query, id)
	return r, err //nolint:wrapcheck
}

// ListRegistrationsByMeeting implements store.RegistrationStore.
// registered_at has second granularity, so the surrogate key breaks ties to
// preserve insertion order.
func (*registrationStore) ListRegistrationsByMeeting(ctx context.Context, h db.Handler, meetingID int64) ([]models.Registration, error) {
	var rs []models.Registration
	query := h.Rebind(`SELECT * FROM registrations
			WHERE meeting_id = ?
			ORDER BY registered_at ASC, id ASC;`)
	err := h.SelectContext(ctx, &rs, query, meetingID)
	return rs, err //nolint:wrapcheck
}

// CountRegistrationsByMeeting implements store.RegistrationStore.
func (*registrationStore) CountRegistrationsByMeeting(ctx context.Context, h db.Handler, meetingID int64) (int64, error) {
	var count int64
	query := h.Rebind(`SELECT COUNT(*) FROM registrations WHERE meeting_id = ?;`)
	err := h.GetContext(ctx, &count, query, meetingID)
	return count, err //nolint:wrapcheck
}

// ListMeetingsByUser implements store.RegistrationStore.
func (*registrationStore) ListMeetingsByUser(ctx context.Context, h db.Handler, userID int64) ([]models.Meeting, error) {
	var ms []models.Meeting
	query := h.Rebind(`SELECT meetings.*
			FROM meetings
			INNER JOIN registrations ON meetings.id = registrations.meeting_id
			WHERE registrations.user_id = ?
			ORDER BY meetings.start_time ASC;`)
	err := h.SelectContext(ctx, &ms, query, userID)
	return ms, err //nolint:wrapcheck
}
