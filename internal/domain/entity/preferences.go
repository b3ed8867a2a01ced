package entity

import "time"

// ThemeMode is the user's declared theme preference. "system" defers to
// the host color scheme.
type ThemeMode string

const (
	ThemeLight  ThemeMode = "light"
	ThemeDark   ThemeMode = "dark"
	ThemeSystem ThemeMode = "system"
)

// IsValid checks if the ThemeMode is a valid value.
func (m ThemeMode) IsValid() bool {
	switch m {
	case ThemeLight, ThemeDark, ThemeSystem:
		return true
	default:
		return false
	}
}

// ColorScheme is a concrete rendering scheme, after resolving "system"
// against the host signal.
type ColorScheme string

const (
	SchemeLight ColorScheme = "light"
	SchemeDark  ColorScheme = "dark"
)

// FontSize is the user's text scale preference.
type FontSize string

const (
	FontSmall  FontSize = "small"
	FontMedium FontSize = "medium"
	FontLarge  FontSize = "large"
)

// IsValid checks if the FontSize is a valid value.
func (f FontSize) IsValid() bool {
	switch f {
	case FontSmall, FontMedium, FontLarge:
		return true
	default:
		return false
	}
}

// Customization defaults applied to new accounts and restored on logout.
const (
	DefaultAccentColor       = "#16a34a"
	DefaultFontSize          = FontMedium
	DefaultBackgroundOpacity = 0.1
	DefaultBackgroundBlur    = 0
)

// UserPreferences is the preference document stored on every user. It is
// replaced wholesale on update rather than merged field by field.
type UserPreferences struct {
	Theme         ThemeMode               `json:"theme"`
	Language      string                  `json:"language"`
	Notifications NotificationPreferences `json:"notifications"`
	Privacy       PrivacyPreferences      `json:"privacy"`
	Customization Customization           `json:"customization"`
}

// NotificationPreferences selects which event categories reach the user.
type NotificationPreferences struct {
	Email        bool `json:"email"`
	Push         bool `json:"push"`
	SMS          bool `json:"sms"`
	Marketing    bool `json:"marketing"`
	OrderUpdates bool `json:"orderUpdates"`
	PriceAlerts  bool `json:"priceAlerts"`
}

// PrivacyPreferences controls what parts of the profile other users can see.
type PrivacyPreferences struct {
	ProfileVisibility string `json:"profileVisibility"` // "public" or "private"
	ShowEmail         bool   `json:"showEmail"`
	ShowPhone         bool   `json:"showPhone"`
	ShowLocation      bool   `json:"showLocation"`
}

// Customization holds the visual tuning knobs of the interface.
type Customization struct {
	AccentColor        string              `json:"accentColor"`
	FontSize           FontSize            `json:"fontSize"`
	BackgroundImage    string              `json:"backgroundImage"`
	BackgroundOpacity  float64             `json:"backgroundOpacity"`
	BackgroundBlur     float64             `json:"backgroundBlur"`
	BackgroundSchedule *BackgroundSchedule `json:"backgroundSchedule,omitempty"`
}

// BackgroundSchedule rotates through background images at a fixed interval.
type BackgroundSchedule struct {
	Enabled  bool          `json:"enabled"`
	Images   []string      `json:"images"`
	Interval time.Duration `json:"interval"`
}

// DefaultPreferences returns the preference document assigned to new
// accounts.
func DefaultPreferences() UserPreferences {
	return UserPreferences{
		Theme:    ThemeSystem,
		Language: "en",
		Notifications: NotificationPreferences{
			Email:        true,
			Push:         true,
			OrderUpdates: true,
			PriceAlerts:  true,
		},
		Privacy: PrivacyPreferences{
			ProfileVisibility: "public",
			ShowLocation:      true,
		},
		Customization: Customization{
			AccentColor:       DefaultAccentColor,
			FontSize:          DefaultFontSize,
			BackgroundOpacity: DefaultBackgroundOpacity,
			BackgroundBlur:    DefaultBackgroundBlur,
		},
	}
}

// Clone returns a deep copy of the preference document.
func (p UserPreferences) Clone() UserPreferences {
	clone := p
	if p.Customization.BackgroundSchedule != nil {
		schedule := *p.Customization.BackgroundSchedule
		schedule.Images = append([]string(nil), schedule.Images...)
		clone.Customization.BackgroundSchedule = &schedule
	}

	return clone
}
