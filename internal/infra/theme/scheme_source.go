// Package theme provides the host color-scheme signal implementation.
package theme

import (
	"sync"

	"farmhub/config"
	"farmhub/internal/domain/entity"
	"farmhub/internal/domain/service"
)

// schemeSource reports the configured host color scheme and lets callers
// change it at runtime, fanning the change out to subscribers.
type schemeSource struct {
	mu        sync.Mutex
	current   entity.ColorScheme
	observers []func(entity.ColorScheme)
}

// NewSchemeSource is the constructor for schemeSource.
func NewSchemeSource(cfg *config.Config) service.ColorSchemeSource {
	current := entity.SchemeLight
	if cfg.Theme != nil && cfg.Theme.Scheme == string(entity.SchemeDark) {
		current = entity.SchemeDark
	}

	return &schemeSource{current: current}
}

// Current returns the host's active color scheme.
func (s *schemeSource) Current() entity.ColorScheme {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.current
}

// OnChange registers a callback invoked when the scheme changes.
func (s *schemeSource) OnChange(fn func(entity.ColorScheme)) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.observers = append(s.observers, fn)
}

// Set switches the host scheme and notifies subscribers. A no-op when
// the scheme is unchanged.
func (s *schemeSource) Set(scheme entity.ColorScheme) {
	s.mu.Lock()
	if scheme == s.current {
		s.mu.Unlock()

		return
	}
	s.current = scheme
	observers := make([]func(entity.ColorScheme), len(s.observers))
	copy(observers, s.observers)
	s.mu.Unlock()

	for _, fn := range observers {
		fn(scheme)
	}
}
