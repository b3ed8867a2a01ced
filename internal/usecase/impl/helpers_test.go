package impl

import (
	"context"
	"io"
	"log/slog"
	"sync"

	"farmhub/internal/domain/entity"
	domainerrors "farmhub/internal/domain/errors"
	"farmhub/internal/domain/service"
)

// discardLogger returns a logger that swallows all output.
func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// fakeBackend is an instant AuthBackend double with scripted outcomes.
type fakeBackend struct {
	mu          sync.Mutex
	user        *entity.User
	loginErr    error
	signupErr   error
	updateErr   error
	resetErr    error
	restoreErr  error
	loginCalls  int
	updateCalls int

	// blockLogin, when set, gates Login until the channel closes.
	blockLogin chan struct{}
}

func newFakeBackend() *fakeBackend {
	return &fakeBackend{user: demoUser()}
}

// demoUser is a minimal authenticated account for store tests.
func demoUser() *entity.User {
	return &entity.User{
		ID:          "1",
		Username:    "john_farmer",
		Email:       "john@example.com",
		Role:        entity.RoleFarmer,
		Preferences: entity.DefaultPreferences(),
	}
}

func (f *fakeBackend) Login(ctx context.Context, creds entity.LoginCredentials) (*entity.User, error) {
	f.mu.Lock()
	f.loginCalls++
	block := f.blockLogin
	loginErr := f.loginErr
	user := f.user.Clone()
	f.mu.Unlock()

	if block != nil {
		select {
		case <-block:
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}

	if loginErr != nil {
		return nil, loginErr
	}
	if creds.Email != "john@example.com" || creds.Password != "password" {
		return nil, domainerrors.ErrInvalidCredentials
	}

	return user, nil
}

func (f *fakeBackend) Signup(_ context.Context, data entity.SignupData) (*entity.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.signupErr != nil {
		return nil, f.signupErr
	}

	user := f.user.Clone()
	user.ID = "new-id"
	user.Username = data.Username
	user.Email = data.Email
	user.Role = data.Role

	return user, nil
}

func (f *fakeBackend) UpdateUser(_ context.Context, user *entity.User, patch entity.UserPatch) (*entity.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.updateCalls++
	if f.updateErr != nil {
		return nil, f.updateErr
	}

	updated := user.Clone()
	patch.ApplyTo(updated)

	return updated, nil
}

func (f *fakeBackend) ResetPassword(_ context.Context, _ string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	return f.resetErr
}

func (f *fakeBackend) RestoreSession(_ context.Context, marker string) (*entity.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.restoreErr != nil {
		return nil, f.restoreErr
	}
	if marker == "" {
		return nil, domainerrors.ErrMarkerInvalid
	}

	return f.user.Clone(), nil
}

// fakeMarkerService mints predictable markers.
type fakeMarkerService struct{}

func (fakeMarkerService) Mint(userID string) (string, error) {
	return "marker-for-" + userID, nil
}

func (fakeMarkerService) Validate(marker string) (string, error) {
	if marker == "" {
		return "", domainerrors.ErrMarkerInvalid
	}

	return "1", nil
}

// fakeNotifier records surfaced messages.
type fakeNotifier struct {
	mu       sync.Mutex
	messages []entity.Notification
}

func (f *fakeNotifier) Success(message string) {
	f.record(entity.NotificationSuccess, message)
}

func (f *fakeNotifier) Error(message string) {
	f.record(entity.NotificationError, message)
}

func (f *fakeNotifier) Recent() []entity.Notification {
	f.mu.Lock()
	defer f.mu.Unlock()

	out := make([]entity.Notification, len(f.messages))
	copy(out, f.messages)

	return out
}

func (f *fakeNotifier) record(level entity.NotificationLevel, message string) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.messages = append(f.messages, entity.Notification{Level: level, Message: message})
}

func (f *fakeNotifier) last() (entity.Notification, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if len(f.messages) == 0 {
		return entity.Notification{}, false
	}

	return f.messages[len(f.messages)-1], true
}

// fakeSchemeSource is a settable host color-scheme signal.
type fakeSchemeSource struct {
	mu        sync.Mutex
	current   entity.ColorScheme
	observers []func(entity.ColorScheme)
}

func newFakeSchemeSource(scheme entity.ColorScheme) *fakeSchemeSource {
	return &fakeSchemeSource{current: scheme}
}

func (f *fakeSchemeSource) Current() entity.ColorScheme {
	f.mu.Lock()
	defer f.mu.Unlock()

	return f.current
}

func (f *fakeSchemeSource) OnChange(fn func(entity.ColorScheme)) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.observers = append(f.observers, fn)
}

func (f *fakeSchemeSource) Set(scheme entity.ColorScheme) {
	f.mu.Lock()
	if scheme == f.current {
		f.mu.Unlock()

		return
	}
	f.current = scheme
	observers := make([]func(entity.ColorScheme), len(f.observers))
	copy(observers, f.observers)
	f.mu.Unlock()

	for _, fn := range observers {
		fn(scheme)
	}
}

var _ service.AuthBackend = (*fakeBackend)(nil)
var _ service.MarkerService = fakeMarkerService{}
var _ service.Notifier = (*fakeNotifier)(nil)
var _ service.ColorSchemeSource = (*fakeSchemeSource)(nil)
