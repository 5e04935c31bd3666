package store

import "errors"

var (
	// ErrWebsiteNotFound is returned when a beacon targets an unknown website id.
	ErrWebsiteNotFound = errors.New("website not found")

	// ErrSessionNotFound is returned on a session lookup miss.
	ErrSessionNotFound = errors.New("session not found")

	// ErrSessionExists is the typed conflict signal for a duplicate session
	// create. Two concurrent beacons from the same client derive the same
	// session id and race to insert it; the loser gets this error and the
	// caller treats it as success.
	ErrSessionExists = errors.New("session already exists")
)
