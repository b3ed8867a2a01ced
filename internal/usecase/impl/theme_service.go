package impl

import (
	"context"
	"log/slog"
	"sync"

	"farmhub/internal/domain/entity"
	"farmhub/internal/domain/service"
	"farmhub/internal/usecase"
	"farmhub/internal/util"

	"go.uber.org/fx"
)

// themeService implements the ThemeUsecase interface. It mirrors the
// signed-in user's preferences, falls back to defaults when signed out,
// and writes every change back to the account asynchronously.
type themeService struct {
	fx.In

	session usecase.SessionUsecase
	scheme  service.ColorSchemeSource
	logger  *slog.Logger

	mu            sync.Mutex
	prefs         entity.UserPreferences
	authenticated bool
	observers     []func(usecase.ThemeState)
}

// NewThemeService is the constructor for themeService.
func NewThemeService(
	session usecase.SessionUsecase,
	scheme service.ColorSchemeSource,
	logger *slog.Logger,
) usecase.ThemeUsecase {
	srv := &themeService{
		session: session,
		scheme:  scheme,
		logger:  logger,
		prefs:   entity.DefaultPreferences(),
	}

	session.OnChange(srv.syncFromSession)
	scheme.OnChange(func(entity.ColorScheme) {
		srv.mu.Lock()
		snapshot, observers := srv.snapshotLocked()
		srv.mu.Unlock()

		notifyTheme(snapshot, observers)
	})

	srv.syncFromSession(session.State())

	return srv
}

// syncFromSession mirrors the session's preference document, or resets
// to defaults when the session ends. Loading transitions are skipped so
// an in-flight write-back cannot momentarily revert a local change.
func (srv *themeService) syncFromSession(state entity.AuthState) {
	if state.IsLoading {
		return
	}

	srv.mu.Lock()
	if state.IsAuthenticated && state.User != nil {
		srv.prefs = state.User.Preferences.Clone()
		srv.authenticated = true
	} else {
		srv.prefs = entity.DefaultPreferences()
		srv.authenticated = false
	}
	snapshot, observers := srv.snapshotLocked()
	srv.mu.Unlock()

	notifyTheme(snapshot, observers)
}

// Snapshot returns the current resolved theme state.
func (srv *themeService) Snapshot() usecase.ThemeState {
	srv.mu.Lock()
	defer srv.mu.Unlock()

	return srv.stateLocked()
}

// OnChange registers an observer invoked after every state change.
func (srv *themeService) OnChange(fn func(usecase.ThemeState)) {
	srv.mu.Lock()
	defer srv.mu.Unlock()

	srv.observers = append(srv.observers, fn)
}

// stateLocked resolves the current preferences into a ThemeState.
// Callers must hold mu.
func (srv *themeService) stateLocked() usecase.ThemeState {
	resolved := entity.ColorScheme(srv.prefs.Theme)
	if srv.prefs.Theme == entity.ThemeSystem {
		resolved = srv.scheme.Current()
	}

	return usecase.ThemeState{
		Mode:              srv.prefs.Theme,
		Resolved:          resolved,
		AccentColor:       srv.prefs.Customization.AccentColor,
		FontSize:          srv.prefs.Customization.FontSize,
		BackgroundImage:   srv.prefs.Customization.BackgroundImage,
		BackgroundOpacity: srv.prefs.Customization.BackgroundOpacity,
		BackgroundBlur:    srv.prefs.Customization.BackgroundBlur,
	}
}

func (srv *themeService) snapshotLocked() (usecase.ThemeState, []func(usecase.ThemeState)) {
	observers := make([]func(usecase.ThemeState), len(srv.observers))
	copy(observers, srv.observers)

	return srv.stateLocked(), observers
}

func notifyTheme(state usecase.ThemeState, observers []func(usecase.ThemeState)) {
	for _, fn := range observers {
		fn(state)
	}
}

// apply mutates the local preference copy, publishes the new state, and
// schedules the write-back. The interface never waits for the account
// update to land.
func (srv *themeService) apply(ctx context.Context, mutate func(*entity.UserPreferences)) usecase.ThemeState {
	srv.mu.Lock()
	mutate(&srv.prefs)
	patch := srv.prefs.Clone()
	authenticated := srv.authenticated
	snapshot, observers := srv.snapshotLocked()
	srv.mu.Unlock()

	notifyTheme(snapshot, observers)

	if authenticated {
		go func() {
			ctx := context.WithoutCancel(ctx)
			srv.session.UpdateUser(ctx, entity.UserPatch{Preferences: &patch})
		}()
	}

	return snapshot
}

// SetTheme selects the theme mode. Invalid modes are ignored.
func (srv *themeService) SetTheme(ctx context.Context, mode entity.ThemeMode) usecase.ThemeState {
	if !mode.IsValid() {
		srv.logger.Warn("Ignoring invalid theme mode", slog.String("mode", string(mode)))

		return srv.Snapshot()
	}

	return srv.apply(ctx, func(p *entity.UserPreferences) {
		p.Theme = mode
	})
}

// SetAccentColor sets the interface accent color.
func (srv *themeService) SetAccentColor(ctx context.Context, color string) usecase.ThemeState {
	return srv.apply(ctx, func(p *entity.UserPreferences) {
		p.Customization.AccentColor = color
	})
}

// SetFontSize selects the text scale. Invalid sizes are ignored.
func (srv *themeService) SetFontSize(ctx context.Context, size entity.FontSize) usecase.ThemeState {
	if !size.IsValid() {
		srv.logger.Warn("Ignoring invalid font size", slog.String("size", string(size)))

		return srv.Snapshot()
	}

	return srv.apply(ctx, func(p *entity.UserPreferences) {
		p.Customization.FontSize = size
	})
}

// SetBackgroundImage sets the background image URL. Empty clears it.
func (srv *themeService) SetBackgroundImage(ctx context.Context, url string) usecase.ThemeState {
	return srv.apply(ctx, func(p *entity.UserPreferences) {
		p.Customization.BackgroundImage = url
	})
}

// SetBackgroundOpacity sets the background opacity, clamped to [0, 1].
func (srv *themeService) SetBackgroundOpacity(ctx context.Context, opacity float64) usecase.ThemeState {
	return srv.apply(ctx, func(p *entity.UserPreferences) {
		p.Customization.BackgroundOpacity = util.Clamp(opacity, 0, 1)
	})
}

// SetBackgroundBlur sets the background blur radius, clamped to >= 0.
func (srv *themeService) SetBackgroundBlur(ctx context.Context, blur float64) usecase.ThemeState {
	return srv.apply(ctx, func(p *entity.UserPreferences) {
		p.Customization.BackgroundBlur = max(blur, 0)
	})
}
