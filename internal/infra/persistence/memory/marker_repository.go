package memory

import (
	"context"
	"sync"

	"farmhub/internal/domain/repository"
)

// markerRepository holds the single session marker slot in memory. It
// mirrors the one-key persistence the interface contract asks for: Save
// overwrites, Clear empties, Load reports absence with a sentinel.
type markerRepository struct {
	mu     sync.RWMutex
	marker string
	set    bool
}

// NewMarkerRepository is the constructor for markerRepository.
func NewMarkerRepository() repository.MarkerRepository {
	return &markerRepository{}
}

// Save stores the marker, replacing any existing one.
func (r *markerRepository) Save(_ context.Context, marker string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.marker = marker
	r.set = true

	return nil
}

// Load returns the stored marker or ErrMarkerNotFound.
func (r *markerRepository) Load(_ context.Context) (string, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if !r.set {
		return "", repository.ErrMarkerNotFound
	}

	return r.marker, nil
}

// Clear removes the stored marker.
func (r *markerRepository) Clear(_ context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.marker = ""
	r.set = false

	return nil
}
