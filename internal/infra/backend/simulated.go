// Package backend provides the simulated account authority. It stands in
// for a remote API: every call sleeps for a configured delay before
// resolving against fixed demonstration data.
package backend

import (
	"context"
	"time"

	"github.com/google/uuid"

	"farmhub/config"
	"farmhub/internal/domain/entity"
	domainerrors "farmhub/internal/domain/errors"
	"farmhub/internal/domain/service"
	"farmhub/internal/errors"
)

// Default round-trip delays, matching the original service's latencies.
const (
	defaultLoginDelay  = 1000 * time.Millisecond
	defaultSignupDelay = 1500 * time.Millisecond
	defaultUpdateDelay = 500 * time.Millisecond
	defaultResetDelay  = 1000 * time.Millisecond
)

// simulatedBackend implements the AuthBackend interface against in-memory
// demonstration data.
type simulatedBackend struct {
	loginDelay  time.Duration
	signupDelay time.Duration
	updateDelay time.Duration
	resetDelay  time.Duration

	demoEmail string
	demoHash  string

	hasher  service.PasswordHasher
	markers service.MarkerService
}

// NewSimulatedBackend is the constructor for simulatedBackend. The demo
// password is hashed once up front so Login never touches the plaintext.
func NewSimulatedBackend(
	cfg *config.Config,
	hasher service.PasswordHasher,
	markers service.MarkerService,
) (service.AuthBackend, error) {
	b := &simulatedBackend{
		loginDelay:  defaultLoginDelay,
		signupDelay: defaultSignupDelay,
		updateDelay: defaultUpdateDelay,
		resetDelay:  defaultResetDelay,
		demoEmail:   "john@example.com",
		hasher:      hasher,
		markers:     markers,
	}

	demoPassword := "password"
	if cfg.Backend != nil {
		if cfg.Backend.LoginDelay > 0 {
			b.loginDelay = cfg.Backend.LoginDelay
		}
		if cfg.Backend.SignupDelay > 0 {
			b.signupDelay = cfg.Backend.SignupDelay
		}
		if cfg.Backend.UpdateDelay > 0 {
			b.updateDelay = cfg.Backend.UpdateDelay
		}
		if cfg.Backend.ResetDelay > 0 {
			b.resetDelay = cfg.Backend.ResetDelay
		}
		if cfg.Backend.DemoEmail != "" {
			b.demoEmail = cfg.Backend.DemoEmail
		}
		if cfg.Backend.DemoPassword != "" {
			demoPassword = cfg.Backend.DemoPassword
		}
	}

	hash, err := hasher.Hash(demoPassword)
	if err != nil {
		return nil, errors.Wrap(err, "failed to hash demo password")
	}
	b.demoHash = hash

	return b, nil
}

// Login verifies credentials and returns the account on success.
func (b *simulatedBackend) Login(ctx context.Context, creds entity.LoginCredentials) (*entity.User, error) {
	if err := b.wait(ctx, b.loginDelay); err != nil {
		return nil, err
	}

	if creds.Email != b.demoEmail || !b.hasher.Check(creds.Password, b.demoHash) {
		return nil, domainerrors.ErrInvalidCredentials
	}

	user := demoProfile()
	user.LastLogin = time.Now()

	return user, nil
}

// Signup registers a new account and returns it. The new account reuses
// the demonstration profile's ancillary data under the signup identity.
func (b *simulatedBackend) Signup(ctx context.Context, data entity.SignupData) (*entity.User, error) {
	if err := b.wait(ctx, b.signupDelay); err != nil {
		return nil, err
	}

	user := demoProfile()
	user.ID = uuid.NewString()
	user.Username = data.Username
	user.Email = data.Email
	user.FirstName = data.FirstName
	user.LastName = data.LastName
	user.Role = data.Role
	user.CreatedAt = time.Now()
	user.LastLogin = time.Now()

	return user, nil
}

// UpdateUser applies a patch to the given account and returns the result.
func (b *simulatedBackend) UpdateUser(ctx context.Context, user *entity.User, patch entity.UserPatch) (*entity.User, error) {
	if err := b.wait(ctx, b.updateDelay); err != nil {
		return nil, err
	}

	updated := user.Clone()
	patch.ApplyTo(updated)

	return updated, nil
}

// ResetPassword triggers a password reset email for the address. The
// simulation always succeeds.
func (b *simulatedBackend) ResetPassword(ctx context.Context, _ string) error {
	return b.wait(ctx, b.resetDelay)
}

// RestoreSession resolves a persisted marker back into an account.
func (b *simulatedBackend) RestoreSession(ctx context.Context, marker string) (*entity.User, error) {
	userID, err := b.markers.Validate(marker)
	if err != nil {
		return nil, errors.Wrap(err, "invalid session marker")
	}

	user := demoProfile()
	user.ID = userID

	return user, nil
}

// wait sleeps for the given delay, aborting early if ctx is done.
func (b *simulatedBackend) wait(ctx context.Context, delay time.Duration) error {
	if delay <= 0 {
		return nil
	}

	timer := time.NewTimer(delay)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return errors.Wrap(ctx.Err(), "backend call aborted")
	case <-timer.C:
		return nil
	}
}
