package impl

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"farmhub/internal/domain/entity"
	"farmhub/internal/infra/persistence/memory"
	"farmhub/internal/usecase"
)

type themeFixture struct {
	session usecase.SessionUsecase
	theme   usecase.ThemeUsecase
	backend *fakeBackend
	scheme  *fakeSchemeSource
}

func newThemeFixture(t *testing.T) *themeFixture {
	t.Helper()

	backend := newFakeBackend()
	scheme := newFakeSchemeSource(entity.SchemeLight)
	session := NewSessionService(backend, fakeMarkerService{}, memory.NewMarkerRepository(), &fakeNotifier{}, discardLogger())
	theme := NewThemeService(session, scheme, discardLogger())

	return &themeFixture{
		session: session,
		theme:   theme,
		backend: backend,
		scheme:  scheme,
	}
}

// waitForUpdate polls until the backend has seen the expected number of
// update calls, since write-backs are asynchronous.
func (f *themeFixture) waitForUpdate(t *testing.T, want int) {
	t.Helper()

	deadline := time.After(2 * time.Second)
	for {
		f.backend.mu.Lock()
		calls := f.backend.updateCalls
		f.backend.mu.Unlock()

		if calls >= want {
			return
		}

		select {
		case <-deadline:
			t.Fatalf("backend saw %d update calls, want %d", calls, want)
		case <-time.After(5 * time.Millisecond):
		}
	}
}

func TestThemeService_DefaultsWhenSignedOut(t *testing.T) {
	f := newThemeFixture(t)

	state := f.theme.Snapshot()
	assert.Equal(t, entity.ThemeSystem, state.Mode)
	assert.Equal(t, entity.SchemeLight, state.Resolved)
	assert.Equal(t, entity.DefaultAccentColor, state.AccentColor)
	assert.Equal(t, entity.DefaultFontSize, state.FontSize)
	assert.InDelta(t, entity.DefaultBackgroundOpacity, state.BackgroundOpacity, 1e-9)
	assert.Zero(t, state.BackgroundBlur)
}

func TestThemeService_AdoptsUserPreferencesOnLogin(t *testing.T) {
	f := newThemeFixture(t)

	f.backend.user.Preferences.Theme = entity.ThemeDark
	f.backend.user.Preferences.Customization.AccentColor = "#2563eb"

	f.session.Login(context.Background(), validLogin())

	state := f.theme.Snapshot()
	assert.Equal(t, entity.ThemeDark, state.Mode)
	assert.Equal(t, entity.SchemeDark, state.Resolved)
	assert.Equal(t, "#2563eb", state.AccentColor)
}

func TestThemeService_ResetsToDefaultsOnLogout(t *testing.T) {
	f := newThemeFixture(t)
	ctx := context.Background()

	f.session.Login(ctx, validLogin())
	f.theme.SetAccentColor(ctx, "#dc2626")
	require.Equal(t, "#dc2626", f.theme.Snapshot().AccentColor)

	f.session.Logout(ctx)

	state := f.theme.Snapshot()
	assert.Equal(t, entity.DefaultAccentColor, state.AccentColor)
	assert.Equal(t, entity.ThemeSystem, state.Mode)
}

func TestThemeService_SystemModeFollowsHostScheme(t *testing.T) {
	f := newThemeFixture(t)
	ctx := context.Background()

	f.theme.SetTheme(ctx, entity.ThemeSystem)
	assert.Equal(t, entity.SchemeLight, f.theme.Snapshot().Resolved)

	f.scheme.Set(entity.SchemeDark)
	assert.Equal(t, entity.SchemeDark, f.theme.Snapshot().Resolved)

	// Explicit modes ignore the host scheme
	f.theme.SetTheme(ctx, entity.ThemeLight)
	assert.Equal(t, entity.SchemeLight, f.theme.Snapshot().Resolved)
}

func TestThemeService_IgnoresInvalidInputs(t *testing.T) {
	f := newThemeFixture(t)
	ctx := context.Background()

	before := f.theme.Snapshot()

	state := f.theme.SetTheme(ctx, entity.ThemeMode("neon"))
	assert.Equal(t, before.Mode, state.Mode)

	state = f.theme.SetFontSize(ctx, entity.FontSize("enormous"))
	assert.Equal(t, before.FontSize, state.FontSize)
}

func TestThemeService_ClampsOpacityAndBlur(t *testing.T) {
	f := newThemeFixture(t)
	ctx := context.Background()

	state := f.theme.SetBackgroundOpacity(ctx, 1.8)
	assert.InDelta(t, 1.0, state.BackgroundOpacity, 1e-9)

	state = f.theme.SetBackgroundOpacity(ctx, -0.4)
	assert.Zero(t, state.BackgroundOpacity)

	state = f.theme.SetBackgroundBlur(ctx, -12)
	assert.Zero(t, state.BackgroundBlur)

	state = f.theme.SetBackgroundBlur(ctx, 8)
	assert.InDelta(t, 8.0, state.BackgroundBlur, 1e-9)
}

func TestThemeService_WritesBackWhenSignedIn(t *testing.T) {
	f := newThemeFixture(t)
	ctx := context.Background()

	f.session.Login(ctx, validLogin())
	f.theme.SetAccentColor(ctx, "#dc2626")

	f.waitForUpdate(t, 1)

	// The session's user carries the new preference after the write-back
	require.Eventually(t, func() bool {
		user := f.session.State().User
		return user != nil && user.Preferences.Customization.AccentColor == "#dc2626"
	}, 2*time.Second, 5*time.Millisecond)
}

func TestThemeService_NoWriteBackWhenSignedOut(t *testing.T) {
	f := newThemeFixture(t)
	ctx := context.Background()

	f.theme.SetAccentColor(ctx, "#dc2626")
	assert.Equal(t, "#dc2626", f.theme.Snapshot().AccentColor)

	time.Sleep(50 * time.Millisecond)
	assert.Equal(t, 0, f.backend.updateCalls)
}

func TestThemeService_RoundTrip(t *testing.T) {
	f := newThemeFixture(t)
	ctx := context.Background()

	f.session.Login(ctx, validLogin())

	f.theme.SetTheme(ctx, entity.ThemeDark)
	f.waitForUpdate(t, 1)
	f.theme.SetFontSize(ctx, entity.FontLarge)
	f.waitForUpdate(t, 2)

	// Both write-backs land on the session user
	require.Eventually(t, func() bool {
		user := f.session.State().User
		return user != nil &&
			user.Preferences.Theme == entity.ThemeDark &&
			user.Preferences.Customization.FontSize == entity.FontLarge
	}, 2*time.Second, 5*time.Millisecond)

	// Logout then login again: preferences come back from the account
	f.session.Logout(ctx)
	assert.Equal(t, entity.ThemeSystem, f.theme.Snapshot().Mode)
}
