package usecase

import (
	"context"

	"farmhub/internal/domain/entity"
)

// ThemeState is the resolved presentation state derived from the
// signed-in user's preferences, or the defaults when signed out.
type ThemeState struct {
	Mode              entity.ThemeMode   `json:"mode"`
	Resolved          entity.ColorScheme `json:"resolved"`
	AccentColor       string             `json:"accentColor"`
	FontSize          entity.FontSize    `json:"fontSize"`
	BackgroundImage   string             `json:"backgroundImage"`
	BackgroundOpacity float64            `json:"backgroundOpacity"`
	BackgroundBlur    float64            `json:"backgroundBlur"`
}

// ThemeUsecase is the preference store. Setters update the local state
// immediately and write the change back to the account asynchronously.
type ThemeUsecase interface {
	// Snapshot returns the current resolved theme state.
	Snapshot() ThemeState

	// SetTheme selects the theme mode. Invalid modes are ignored.
	SetTheme(ctx context.Context, mode entity.ThemeMode) ThemeState

	// SetAccentColor sets the interface accent color.
	SetAccentColor(ctx context.Context, color string) ThemeState

	// SetFontSize selects the text scale. Invalid sizes are ignored.
	SetFontSize(ctx context.Context, size entity.FontSize) ThemeState

	// SetBackgroundImage sets the background image URL. Empty clears it.
	SetBackgroundImage(ctx context.Context, url string) ThemeState

	// SetBackgroundOpacity sets the background opacity, clamped to [0, 1].
	SetBackgroundOpacity(ctx context.Context, opacity float64) ThemeState

	// SetBackgroundBlur sets the background blur radius, clamped to >= 0.
	SetBackgroundBlur(ctx context.Context, blur float64) ThemeState

	// OnChange registers an observer invoked after every state change.
	OnChange(fn func(ThemeState))
}
