package repository

import (
	"context"
	"errors"
)

// ErrMarkerNotFound is returned when no session marker is stored.
var ErrMarkerNotFound = errors.New("session marker not found")

// MarkerRepository persists the single session marker slot used to
// restore a session across restarts. Save overwrites any previous
// marker; Clear is a no-op when the slot is already empty.
type MarkerRepository interface {
	// Save stores the marker, replacing any existing one.
	Save(ctx context.Context, marker string) error

	// Load returns the stored marker or ErrMarkerNotFound.
	Load(ctx context.Context) (string, error)

	// Clear removes the stored marker.
	Clear(ctx context.Context) error
}
