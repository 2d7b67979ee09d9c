// Package store defines the storage interfaces for meetbot.
package store

// Store is an interface for managing meetings and registrations.
type Store interface {
	MeetingStore
	RegistrationStore
}
