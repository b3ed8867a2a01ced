package handler

import (
	"log/slog"
	"net/http"

	"farmhub/internal/delivery/http/response"
	"farmhub/internal/domain/entity"
	"farmhub/internal/usecase"

	"github.com/labstack/echo/v4"
)

// AuthHandler exposes the session store over HTTP.
type AuthHandler struct {
	session usecase.SessionUsecase
	logger  *slog.Logger
}

// NewAuthHandler is the constructor for AuthHandler, injected by Fx.
func NewAuthHandler(session usecase.SessionUsecase, logger *slog.Logger) *AuthHandler {
	return &AuthHandler{
		session: session,
		logger:  logger,
	}
}

type loginRequest struct {
	Email      string `json:"email" validate:"required,email"`
	Password   string `json:"password" validate:"required"`
	RememberMe bool   `json:"rememberMe"`
}

type signupRequest struct {
	Username        string `json:"username" validate:"required,min=3"`
	Email           string `json:"email" validate:"required,email"`
	Password        string `json:"password" validate:"required,min=8"`
	ConfirmPassword string `json:"confirmPassword" validate:"required"`
	FirstName       string `json:"firstName" validate:"required"`
	LastName        string `json:"lastName" validate:"required"`
	Role            string `json:"role" validate:"required"`
	AgreeToTerms    bool   `json:"agreeToTerms"`
}

type resetPasswordRequest struct {
	Email string `json:"email" validate:"required,email"`
}

// Login handles a login attempt. Failures surface through the returned
// session state rather than a transport error.
func (h *AuthHandler) Login(c echo.Context) error {
	var input loginRequest
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid login input")
	}
	if err := c.Validate(&input); err != nil {
		return err
	}

	state := h.session.Login(c.Request().Context(), entity.LoginCredentials{
		Email:      input.Email,
		Password:   input.Password,
		RememberMe: input.RememberMe,
	})

	if state.Error != "" {
		return response.Unauthorized(c, "LOGIN_FAILED", state.Error)
	}

	return response.Success(c, http.StatusOK, state, "Login successful")
}

// Signup handles a registration attempt.
func (h *AuthHandler) Signup(c echo.Context) error {
	var input signupRequest
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid signup input")
	}
	if err := c.Validate(&input); err != nil {
		return err
	}
	if input.Password != input.ConfirmPassword {
		return response.BadRequest(c, "PASSWORD_MISMATCH", "Passwords do not match")
	}
	if !input.AgreeToTerms {
		return response.BadRequest(c, "TERMS_NOT_ACCEPTED", "You must agree to the terms")
	}

	role := entity.Role(input.Role)
	if !role.IsValid() {
		return response.BadRequest(c, "INVALID_ROLE", "Unknown account role")
	}

	state := h.session.Signup(c.Request().Context(), entity.SignupData{
		Username:        input.Username,
		Email:           input.Email,
		Password:        input.Password,
		ConfirmPassword: input.ConfirmPassword,
		FirstName:       input.FirstName,
		LastName:        input.LastName,
		Role:            role,
		AgreeToTerms:    input.AgreeToTerms,
	})

	if state.Error != "" {
		return response.Error(c, http.StatusInternalServerError, "SIGNUP_FAILED", state.Error, "")
	}

	return response.Success(c, http.StatusCreated, state, "Account created")
}

// Logout ends the session.
func (h *AuthHandler) Logout(c echo.Context) error {
	state := h.session.Logout(c.Request().Context())

	return response.Success(c, http.StatusOK, state, "Logout successful")
}

// ResetPassword requests a password reset email.
func (h *AuthHandler) ResetPassword(c echo.Context) error {
	var input resetPasswordRequest
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid reset input")
	}
	if err := c.Validate(&input); err != nil {
		return err
	}

	// The outcome is reported through the notification surface; the
	// session state is never touched by a reset request.
	state := h.session.ResetPassword(c.Request().Context(), input.Email)

	return response.Success(c, http.StatusOK, state, "Reset email sent")
}

// Session returns the current session snapshot.
func (h *AuthHandler) Session(c echo.Context) error {
	return response.Success(c, http.StatusOK, h.session.State(), "")
}

// Restore resolves the persisted marker into a session, if one exists.
func (h *AuthHandler) Restore(c echo.Context) error {
	state := h.session.Restore(c.Request().Context())

	return response.Success(c, http.StatusOK, state, "")
}

// ClearError clears the last session error.
func (h *AuthHandler) ClearError(c echo.Context) error {
	return response.Success(c, http.StatusOK, h.session.ClearError(), "")
}
