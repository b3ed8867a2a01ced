// Package impl contains the application-specific business rules implementations.
package impl

import (
	"context"
	"log/slog"
	"sync"

	"farmhub/internal/domain/entity"
	domainerrors "farmhub/internal/domain/errors"
	"farmhub/internal/domain/repository"
	"farmhub/internal/domain/service"
	"farmhub/internal/errors"
	"farmhub/internal/usecase"

	"go.uber.org/fx"
)

// Messages surfaced through the notifier on session transitions.
const (
	msgWelcomeBack    = "Welcome back!"
	msgAccountCreated = "Account created successfully!"
	msgLoggedOut      = "Logged out successfully"
	msgProfileUpdated = "Profile updated successfully"
	msgResetEmailSent = "Password reset email sent!"
)

// sessionService implements the SessionUsecase interface.
type sessionService struct {
	fx.In

	backend    service.AuthBackend
	markers    service.MarkerService
	markerRepo repository.MarkerRepository
	notifier   service.Notifier
	logger     *slog.Logger

	mu         sync.Mutex
	state      entity.AuthState
	generation uint64
	observers  []func(entity.AuthState)
}

// NewSessionService is the constructor for sessionService.
func NewSessionService(
	backend service.AuthBackend,
	markers service.MarkerService,
	markerRepo repository.MarkerRepository,
	notifier service.Notifier,
	logger *slog.Logger,
) usecase.SessionUsecase {
	return &sessionService{
		backend:    backend,
		markers:    markers,
		markerRepo: markerRepo,
		notifier:   notifier,
		logger:     logger,
	}
}

// State returns a snapshot of the current session state.
func (srv *sessionService) State() entity.AuthState {
	srv.mu.Lock()
	defer srv.mu.Unlock()

	return srv.state.Clone()
}

// OnChange registers an observer invoked after every published transition.
func (srv *sessionService) OnChange(fn func(entity.AuthState)) {
	srv.mu.Lock()
	defer srv.mu.Unlock()

	srv.observers = append(srv.observers, fn)
}

// begin marks the start of an attempt: loading on, error cleared. It
// returns the generation that identifies this attempt.
func (srv *sessionService) begin() uint64 {
	srv.mu.Lock()
	srv.generation++
	generation := srv.generation
	srv.state.IsLoading = true
	srv.state.Error = ""
	snapshot, observers := srv.snapshotLocked()
	srv.mu.Unlock()

	publish(snapshot, observers)

	return generation
}

// resolve settles an attempt. The mutation only applies if no newer
// attempt has started since; a stale completion is discarded.
func (srv *sessionService) resolve(generation uint64, mutate func(*entity.AuthState)) entity.AuthState {
	srv.mu.Lock()
	if generation != srv.generation {
		stale := srv.state.Clone()
		srv.mu.Unlock()

		return stale
	}

	srv.state.IsLoading = false
	mutate(&srv.state)
	snapshot, observers := srv.snapshotLocked()
	srv.mu.Unlock()

	publish(snapshot, observers)

	return snapshot
}

// snapshotLocked copies the state and observer list. Callers must hold mu.
func (srv *sessionService) snapshotLocked() (entity.AuthState, []func(entity.AuthState)) {
	observers := make([]func(entity.AuthState), len(srv.observers))
	copy(observers, srv.observers)

	return srv.state.Clone(), observers
}

// publish invokes observers outside the lock so they can call back into
// the store without deadlocking.
func publish(state entity.AuthState, observers []func(entity.AuthState)) {
	for _, fn := range observers {
		fn(state)
	}
}

// Login attempts to authenticate and returns the settled state.
func (srv *sessionService) Login(ctx context.Context, creds entity.LoginCredentials) entity.AuthState {
	srv.logger.Info("Starting login", slog.String("email", creds.Email))

	generation := srv.begin()

	user, err := srv.backend.Login(ctx, creds)
	if err != nil {
		message := loginErrorMessage(err)
		srv.logger.Warn("Login failed", slog.String("email", creds.Email), slog.Any("error", err))

		state := srv.resolve(generation, func(s *entity.AuthState) {
			s.Error = message
		})

		srv.notifier.Error(message)

		return state
	}

	srv.persistMarker(ctx, user.ID)

	state := srv.resolve(generation, func(s *entity.AuthState) {
		s.User = user
		s.IsAuthenticated = true
	})

	srv.notifier.Success(msgWelcomeBack)
	srv.logger.Info("Successfully logged in", slog.String("userID", user.ID))

	return state
}

// Signup attempts to register a new account and returns the settled state.
func (srv *sessionService) Signup(ctx context.Context, data entity.SignupData) entity.AuthState {
	srv.logger.Info("Starting signup", slog.String("email", data.Email))

	generation := srv.begin()

	user, err := srv.backend.Signup(ctx, data)
	if err != nil {
		message := appErrorMessage(err, domainerrors.ErrSignupFailed.Message())
		srv.logger.Warn("Signup failed", slog.String("email", data.Email), slog.Any("error", err))

		state := srv.resolve(generation, func(s *entity.AuthState) {
			s.Error = message
		})

		srv.notifier.Error(message)

		return state
	}

	srv.persistMarker(ctx, user.ID)

	state := srv.resolve(generation, func(s *entity.AuthState) {
		s.User = user
		s.IsAuthenticated = true
	})

	srv.notifier.Success(msgAccountCreated)
	srv.logger.Info("Successfully signed up", slog.String("userID", user.ID))

	return state
}

// Logout ends the session. Safe to call when signed out.
func (srv *sessionService) Logout(ctx context.Context) entity.AuthState {
	if err := srv.markerRepo.Clear(ctx); err != nil {
		srv.logger.Warn("Failed to clear session marker", slog.Any("error", err))
	}

	srv.mu.Lock()
	srv.generation++
	srv.state = entity.AuthState{}
	snapshot, observers := srv.snapshotLocked()
	srv.mu.Unlock()

	publish(snapshot, observers)

	srv.notifier.Success(msgLoggedOut)
	srv.logger.Info("Successfully logged out")

	return snapshot
}

// UpdateUser patches the signed-in account. A no-op when signed out.
func (srv *sessionService) UpdateUser(ctx context.Context, patch entity.UserPatch) entity.AuthState {
	srv.mu.Lock()
	current := srv.state.User.Clone()
	authenticated := srv.state.IsAuthenticated
	srv.mu.Unlock()

	if !authenticated || current == nil {
		srv.notifier.Error(domainerrors.ErrNotAuthenticated.Message())

		return srv.State()
	}

	generation := srv.begin()

	updated, err := srv.backend.UpdateUser(ctx, current, patch)
	if err != nil {
		message := appErrorMessage(err, domainerrors.ErrUpdateFailed.Message())
		srv.logger.Warn("Profile update failed", slog.String("userID", current.ID), slog.Any("error", err))

		state := srv.resolve(generation, func(s *entity.AuthState) {
			s.Error = message
		})

		srv.notifier.Error(message)

		return state
	}

	state := srv.resolve(generation, func(s *entity.AuthState) {
		s.User = updated
	})

	srv.notifier.Success(msgProfileUpdated)
	srv.logger.Info("Successfully updated profile", slog.String("userID", updated.ID))

	return state
}

// ResetPassword requests a password reset email. The session state is
// never touched; the outcome is reported through the notifier only.
func (srv *sessionService) ResetPassword(ctx context.Context, email string) entity.AuthState {
	srv.logger.Info("Starting password reset", slog.String("email", email))

	if err := srv.backend.ResetPassword(ctx, email); err != nil {
		message := appErrorMessage(err, domainerrors.ErrResetFailed.Message())
		srv.logger.Warn("Password reset failed", slog.String("email", email), slog.Any("error", err))
		srv.notifier.Error(message)

		return srv.State()
	}

	srv.notifier.Success(msgResetEmailSent)

	return srv.State()
}

// ClearError clears the last error without touching the rest of the state.
func (srv *sessionService) ClearError() entity.AuthState {
	srv.mu.Lock()
	srv.state.Error = ""
	snapshot, observers := srv.snapshotLocked()
	srv.mu.Unlock()

	publish(snapshot, observers)

	return snapshot
}

// Restore resolves the persisted marker into a session, if one exists.
func (srv *sessionService) Restore(ctx context.Context) entity.AuthState {
	marker, err := srv.markerRepo.Load(ctx)
	if err != nil {
		if !errors.Is(err, repository.ErrMarkerNotFound) {
			srv.logger.Warn("Failed to load session marker", slog.Any("error", err))
		}

		return srv.State()
	}

	generation := srv.begin()

	user, err := srv.backend.RestoreSession(ctx, marker)
	if err != nil {
		srv.logger.Warn("Session restore failed, discarding marker", slog.Any("error", err))
		if clearErr := srv.markerRepo.Clear(ctx); clearErr != nil {
			srv.logger.Warn("Failed to clear session marker", slog.Any("error", clearErr))
		}

		// A dead marker is not a user-facing failure.
		return srv.resolve(generation, func(s *entity.AuthState) {})
	}

	state := srv.resolve(generation, func(s *entity.AuthState) {
		s.User = user
		s.IsAuthenticated = true
	})

	srv.logger.Info("Successfully restored session", slog.String("userID", user.ID))

	return state
}

// persistMarker mints and stores a marker for the user. Failures are
// logged but never fail the session transition.
func (srv *sessionService) persistMarker(ctx context.Context, userID string) {
	marker, err := srv.markers.Mint(userID)
	if err != nil {
		srv.logger.Warn("Failed to mint session marker", slog.Any("error", err))

		return
	}

	if err := srv.markerRepo.Save(ctx, marker); err != nil {
		srv.logger.Warn("Failed to save session marker", slog.Any("error", err))
	}
}

// loginErrorMessage maps a backend login failure to its user-facing message.
func loginErrorMessage(err error) string {
	return appErrorMessage(err, domainerrors.ErrLoginFailed.Message())
}

// appErrorMessage extracts the user-facing message from an AppError, or
// falls back to the given default.
func appErrorMessage(err error, fallback string) string {
	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		return appErr.Message()
	}

	return fallback
}
