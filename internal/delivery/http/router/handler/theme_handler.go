package handler

import (
	"net/http"

	"farmhub/internal/delivery/http/response"
	"farmhub/internal/domain/entity"
	"farmhub/internal/usecase"

	"github.com/labstack/echo/v4"
)

// ThemeHandler exposes the preference store.
type ThemeHandler struct {
	theme usecase.ThemeUsecase
}

// NewThemeHandler is the constructor for ThemeHandler, injected by Fx.
func NewThemeHandler(theme usecase.ThemeUsecase) *ThemeHandler {
	return &ThemeHandler{
		theme: theme,
	}
}

type setModeRequest struct {
	Mode string `json:"mode" validate:"required,oneof=light dark system"`
}

type setAccentRequest struct {
	Color string `json:"color" validate:"required,hexcolor"`
}

type setFontSizeRequest struct {
	Size string `json:"size" validate:"required,oneof=small medium large"`
}

type setBackgroundRequest struct {
	Image   *string  `json:"image"`
	Opacity *float64 `json:"opacity"`
	Blur    *float64 `json:"blur"`
}

// Snapshot returns the current resolved theme state.
func (h *ThemeHandler) Snapshot(c echo.Context) error {
	return response.Success(c, http.StatusOK, h.theme.Snapshot(), "")
}

// SetMode selects the theme mode.
func (h *ThemeHandler) SetMode(c echo.Context) error {
	var input setModeRequest
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid theme mode")
	}
	if err := c.Validate(&input); err != nil {
		return err
	}

	state := h.theme.SetTheme(c.Request().Context(), entity.ThemeMode(input.Mode))

	return response.Success(c, http.StatusOK, state, "Theme updated")
}

// SetAccentColor sets the interface accent color.
func (h *ThemeHandler) SetAccentColor(c echo.Context) error {
	var input setAccentRequest
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid accent color")
	}
	if err := c.Validate(&input); err != nil {
		return err
	}

	state := h.theme.SetAccentColor(c.Request().Context(), input.Color)

	return response.Success(c, http.StatusOK, state, "Accent color updated")
}

// SetFontSize selects the text scale.
func (h *ThemeHandler) SetFontSize(c echo.Context) error {
	var input setFontSizeRequest
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid font size")
	}
	if err := c.Validate(&input); err != nil {
		return err
	}

	state := h.theme.SetFontSize(c.Request().Context(), entity.FontSize(input.Size))

	return response.Success(c, http.StatusOK, state, "Font size updated")
}

// SetBackground updates the background image, opacity, and blur. Only the
// fields present in the request change.
func (h *ThemeHandler) SetBackground(c echo.Context) error {
	var input setBackgroundRequest
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid background settings")
	}

	ctx := c.Request().Context()
	state := h.theme.Snapshot()
	if input.Image != nil {
		state = h.theme.SetBackgroundImage(ctx, *input.Image)
	}
	if input.Opacity != nil {
		state = h.theme.SetBackgroundOpacity(ctx, *input.Opacity)
	}
	if input.Blur != nil {
		state = h.theme.SetBackgroundBlur(ctx, *input.Blur)
	}

	return response.Success(c, http.StatusOK, state, "Background updated")
}
