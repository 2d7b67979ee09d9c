package backend

import (
	"context"
	"errors"
	"time"

	"github.com/girltalk-community/meetbot/pkg/db"
	"github.com/girltalk-community/meetbot/pkg/db/models"
	"github.com/google/uuid"
)

// TimeLayout is the textual timestamp format meetings are stored with.
const TimeLayout = "2006-01-02T15:04:05"

// CreateMeetingOptions are the options for creating a meeting.
type CreateMeetingOptions struct {
	// EventID is the external calendar event identifier. When empty, a
	// local identifier is generated.
	EventID         string
	CreatorID       int64
	CreatorUsername string
	Title           string
	Description     string
	StartTime       time.Time
	// EndTime defaults to one hour after StartTime when zero.
	EndTime      time.Time
	CalendarLink string
}

// CreateMeeting creates a new meeting. It returns ErrMeetingExists if a
// meeting with the same event ID already exists.
func (b *Backend) CreateMeeting(ctx context.Context, opts CreateMeetingOptions) (*models.Meeting, error) {
	eventID := opts.EventID
	if eventID == "" {
		// No calendar event to reference, keep the meeting local.
		eventID = "local_event_" + uuid.NewString()
	}

	endTime := opts.EndTime
	if endTime.IsZero() {
		endTime = opts.StartTime.Add(time.Hour)
	}

	var m models.Meeting
	if err := b.db.TransactionContext(ctx, func(tx *db.Tx) error {
		id, err := b.store.CreateMeeting(ctx, tx, eventID, opts.CreatorID,
			opts.CreatorUsername, opts.Title, opts.Description,
			opts.StartTime.Format(TimeLayout), endTime.Format(TimeLayout),
			opts.CalendarLink)
		if err != nil {
			return err
		}

		m, err = b.store.GetMeetingByID(ctx, tx, id)
		return err
	}); err != nil {
		err = db.WrapError(err)
		if errors.Is(err, db.ErrDuplicateKey) {
			return nil, ErrMeetingExists
		}
		return nil, err
	}

	b.logger.Info("meeting created", "id", m.ID, "event_id", m.EventID,
		"creator_id", m.CreatorID)
	b.cache.Set(m.ID, &m)

	return &m, nil
}

// Meeting returns a meeting by its internal ID.
func (b *Backend) Meeting(ctx context.Context, id int64) (*models.Meeting, error) {
	if m, ok := b.cache.Get(id); ok {
		return m, nil
	}

	m, err := b.store.GetMeetingByID(ctx, b.db, id)
	if err != nil {
		err = db.WrapError(err)
		if errors.Is(err, db.ErrRecordNotFound) {
			return nil, ErrMeetingNotFound
		}
		return nil, err
	}

	b.cache.Set(id, &m)
	return &m, nil
}

// MeetingByEventID returns a meeting by its external event identifier.
func (b *Backend) MeetingByEventID(ctx context.Context, eventID string) (*models.Meeting, error) {
	m, err := b.store.FindMeetingByEventID(ctx, b.db, eventID)
	if err != nil {
		err = db.WrapError(err)
		if errors.Is(err, db.ErrRecordNotFound) {
			return nil, ErrMeetingNotFound
		}
		return nil, err
	}

	return &m, nil
}

// MeetingsByCreator returns the meetings created by a user, soonest first.
func (b *Backend) MeetingsByCreator(ctx context.Context, creatorID int64) ([]models.Meeting, error) {
	ms, err := b.store.ListMeetingsByCreator(ctx, b.db, creatorID)
	if err != nil {
		return nil, db.WrapError(err)
	}

	return ms, nil
}

// UpcomingMeetings returns the meetings starting after the given time,
// soonest first. A zero time means now.
func (b *Backend) UpcomingMeetings(ctx context.Context, after time.Time) ([]models.Meeting, error) {
	if after.IsZero() {
		after = time.Now()
	}

	ms, err := b.store.ListMeetingsAfter(ctx, b.db, after.Format(TimeLayout))
	if err != nil {
		return nil, db.WrapError(err)
	}

	return ms, nil
}
