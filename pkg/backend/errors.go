package backend

import "errors"

var (
	// ErrMeetingNotFound is returned when a meeting does not exist.
	ErrMeetingNotFound = errors.New("meeting not found")

	// ErrMeetingExists is returned when a meeting with the same event ID
	// already exists.
	ErrMeetingExists = errors.New("meeting already exists")

	// ErrAlreadyRegistered is returned when a user is already registered
	// for a meeting.
	ErrAlreadyRegistered = errors.New("user already registered for meeting")
)
