package service

import (
	"context"

	"farmhub/internal/domain/entity"
)

// AuthBackend is the account authority the session store talks to. The
// production implementation simulates network round-trips with
// configurable delays; tests substitute an instant double.
type AuthBackend interface {
	// Login verifies credentials and returns the account on success.
	Login(ctx context.Context, creds entity.LoginCredentials) (*entity.User, error)

	// Signup registers a new account and returns it.
	Signup(ctx context.Context, data entity.SignupData) (*entity.User, error)

	// UpdateUser applies a patch to the given account and returns the result.
	UpdateUser(ctx context.Context, user *entity.User, patch entity.UserPatch) (*entity.User, error)

	// ResetPassword triggers a password reset email for the address.
	ResetPassword(ctx context.Context, email string) error

	// RestoreSession resolves a persisted marker back into an account.
	RestoreSession(ctx context.Context, marker string) (*entity.User, error)
}
