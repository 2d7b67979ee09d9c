package database

import (
	"context"

	"github.com/girltalk-community/meetbot/pkg/db"
	"github.com/girltalk-community/meetbot/pkg/db/models"
	"github.com/girltalk-community/meetbot/pkg/store"
)

type meetingStore struct{}

var _ store.MeetingStore = (*meetingStore)(nil)

// CreateMeeting implements store.MeetingStore.
func (*meetingStore) CreateMeeting(ctx context.Context, h db.Handler, eventID string, creatorID int64, creatorUsername string, title string, description string, startTime string, endTime string, calendarLink string) (int64, error) {
	query := h.Rebind(`INSERT INTO meetings (event_id, creator_id, creator_username, title, description, start_time, end_time, calendar_link)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?) RETURNING id;`)

	var id int64
	if err := h.GetContext(ctx, &id, query, eventID, creatorID, creatorUsername,
		title, description, startTime, endTime, calendarLink); err != nil {
		return 0, err //nolint:wrapcheck
	}

	return id, nil
}

// GetMeetingByID implements store.MeetingStore.
func (*meetingStore) GetMeetingByID(ctx context.Context, h db.Handler, id int64) (models.Meeting, error) {
	var m models.Meeting
	query := h.Rebind(`SELECT * FROM meetings WHERE id = ?;`)
	err := h.GetContext(ctx, &m, query, id)
	return m, err //nolint:wrapcheck
}

// FindMeetingByEventID implements store.MeetingStore.
func (*meetingStore) FindMeetingByEventID(ctx context.Context, h db.Handler, eventID string) (models.Meeting, error) {
	var m models.Meeting
	query := h.Rebind(`SELECT * FROM meetings WHERE event_id = ?;`)
	err := h.GetContext(ctx, &m, query, eventID)
	return m, err //nolint:wrapcheck
}

// ListMeetingsByCreator implements store.MeetingStore.
func (*meetingStore) ListMeetingsByCreator(ctx context.Context, h db.Handler, creatorID int64) ([]models.Meeting, error) {
	var ms []models.Meeting
	query := h.Rebind(`SELECT * FROM meetings
			WHERE creator_id = ?
			ORDER BY start_time ASC;`)
	err := h.SelectContext(ctx, &ms, query, creatorID)
	return ms, err //nolint:wrapcheck
}

// ListMeetingsAfter implements store.MeetingStore.
func (*meetingStore) ListMeetingsAfter(ctx context.Context, h db.Handler, after string) ([]models.Meeting, error) {
	var ms []models.Meeting
	query := h.Rebind(`SELECT * FROM meetings
			WHERE start_time > ?
			ORDER BY start_time ASC;`)
	err := h.SelectContext(ctx, &ms, query, after)
	return ms, err //nolint:wrapcheck
}
