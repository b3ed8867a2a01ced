package handler

import (
	"net/http"

	"farmhub/internal/delivery/http/response"
	"farmhub/internal/domain/entity"
	"farmhub/internal/usecase"

	"github.com/labstack/echo/v4"
)

// ProfileHandler serves the signed-in account profile.
type ProfileHandler struct {
	session usecase.SessionUsecase
}

// NewProfileHandler is the constructor for ProfileHandler, injected by Fx.
func NewProfileHandler(session usecase.SessionUsecase) *ProfileHandler {
	return &ProfileHandler{
		session: session,
	}
}

type updateProfileRequest struct {
	Username     *string             `json:"username" validate:"omitempty,min=3"`
	Email        *string             `json:"email" validate:"omitempty,email"`
	FirstName    *string             `json:"firstName"`
	LastName     *string             `json:"lastName"`
	Bio          *string             `json:"bio"`
	Location     *string             `json:"location"`
	Website      *string             `json:"website" validate:"omitempty,url"`
	Phone        *string             `json:"phone"`
	ProfileImage *string             `json:"profileImage" validate:"omitempty,url"`
	SocialLinks  *entity.SocialLinks `json:"socialLinks"`
}

// Profile returns the signed-in user.
func (h *ProfileHandler) Profile(c echo.Context) error {
	state := h.session.State()
	if !state.IsAuthenticated {
		return response.Unauthorized(c, "NOT_AUTHENTICATED", "No active session")
	}

	return response.Success(c, http.StatusOK, state.User, "")
}

// UpdateProfile patches the signed-in account.
func (h *ProfileHandler) UpdateProfile(c echo.Context) error {
	var input updateProfileRequest
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid profile input")
	}
	if err := c.Validate(&input); err != nil {
		return err
	}

	state := h.session.UpdateUser(c.Request().Context(), entity.UserPatch{
		Username:     input.Username,
		Email:        input.Email,
		FirstName:    input.FirstName,
		LastName:     input.LastName,
		Bio:          input.Bio,
		Location:     input.Location,
		Website:      input.Website,
		Phone:        input.Phone,
		ProfileImage: input.ProfileImage,
		SocialLinks:  input.SocialLinks,
	})

	if !state.IsAuthenticated {
		return response.Unauthorized(c, "NOT_AUTHENTICATED", "No active session")
	}
	if state.Error != "" {
		return response.Error(c, http.StatusInternalServerError, "UPDATE_FAILED", state.Error, "")
	}

	return response.Success(c, http.StatusOK, state.User, "Profile updated")
}
