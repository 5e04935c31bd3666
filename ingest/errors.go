package ingest

import "errors"

var (
	// ErrMissingIdentityData rejects identify beacons that carry no payload.
	ErrMissingIdentityData = errors.New("identify beacon requires session data")

	// ErrAccessDenied rejects beacons from deny-listed addresses.
	ErrAccessDenied = errors.New("access denied")
)
