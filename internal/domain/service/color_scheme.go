package service

import "farmhub/internal/domain/entity"

// ColorSchemeSource reports the host's color scheme, used to resolve the
// "system" theme mode. OnChange callbacks fire on every scheme change.
type ColorSchemeSource interface {
	// Current returns the host's active color scheme.
	Current() entity.ColorScheme

	// OnChange registers a callback invoked when the scheme changes.
	OnChange(fn func(entity.ColorScheme))

	// Set switches the host scheme. Implementations notify subscribers
	// when the value actually changes.
	Set(scheme entity.ColorScheme)
}
