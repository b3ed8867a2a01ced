// Package usecase contains the application-specific business rules.
package usecase

import (
	"context"

	"farmhub/internal/domain/entity"
)

// SessionUsecase is the session store: it owns the authentication state
// machine and publishes every transition to registered observers.
// Operations never return an error; failures surface through the Error
// field of the published state instead.
type SessionUsecase interface {
	// State returns a snapshot of the current session state.
	State() entity.AuthState

	// Login attempts to authenticate and returns the settled state.
	Login(ctx context.Context, creds entity.LoginCredentials) entity.AuthState

	// Signup attempts to register a new account and returns the settled state.
	Signup(ctx context.Context, data entity.SignupData) entity.AuthState

	// Logout ends the session. Safe to call when signed out.
	Logout(ctx context.Context) entity.AuthState

	// UpdateUser patches the signed-in account. A no-op when signed out.
	UpdateUser(ctx context.Context, patch entity.UserPatch) entity.AuthState

	// ResetPassword requests a password reset email. The outcome is
	// reported through the notifier only; the state is never touched.
	ResetPassword(ctx context.Context, email string) entity.AuthState

	// ClearError clears the last error without touching the rest of the state.
	ClearError() entity.AuthState

	// Restore resolves the persisted marker into a session, if one exists.
	Restore(ctx context.Context) entity.AuthState

	// OnChange registers an observer invoked after every published transition.
	OnChange(fn func(entity.AuthState))
}
