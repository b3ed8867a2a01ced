package middleware

import (
	"log/slog"
	"net/http"

	"farmhub/internal/delivery/http/response"
	domainerrors "farmhub/internal/domain/errors"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// ErrorMiddleware error handling middleware
type ErrorMiddleware struct {
	logger *slog.Logger
}

// NewErrorMiddleware creates a new error handling middleware
func NewErrorMiddleware(logger *slog.Logger) *ErrorMiddleware {
	return &ErrorMiddleware{
		logger: logger,
	}
}

// HandleHTTPError handles errors as Echo's HTTPErrorHandler
func (m *ErrorMiddleware) HandleHTTPError(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	// Try to parse as AppError
	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		if writeErr := response.Error(c, appErr.HTTPCode(), appErr.ErrorCode(), appErr.Message(), appErr.Details()); writeErr != nil {
			m.logger.Error("Failed to write error response", slog.Any("error", writeErr))
		}

		return
	}

	// Check if it's Echo's HTTPError
	var httpErr *echo.HTTPError
	if errors.As(err, &httpErr) {
		message := http.StatusText(httpErr.Code)
		if msg, ok := httpErr.Message.(string); ok {
			message = msg
		}
		if writeErr := response.Error(c, httpErr.Code, "HTTP_ERROR", message, ""); writeErr != nil {
			m.logger.Error("Failed to write error response", slog.Any("error", writeErr))
		}

		return
	}

	// Everything else is an internal error; the cause stays in the log
	m.logger.Error("Unhandled error", slog.Any("error", err))
	if writeErr := response.InternalServerError(c, domainerrors.ErrInternalError.ErrorCode(), domainerrors.ErrInternalError.Message()); writeErr != nil {
		m.logger.Error("Failed to write error response", slog.Any("error", writeErr))
	}
}
