package handler

import (
	"net/http"

	"farmhub/internal/delivery/http/response"
	"farmhub/internal/domain/service"

	"github.com/labstack/echo/v4"
)

// NotificationHandler serves recently surfaced notifications.
type NotificationHandler struct {
	notifier service.Notifier
}

// NewNotificationHandler is the constructor for NotificationHandler, injected by Fx.
func NewNotificationHandler(notifier service.Notifier) *NotificationHandler {
	return &NotificationHandler{
		notifier: notifier,
	}
}

// Recent returns the most recent notifications, newest first.
func (h *NotificationHandler) Recent(c echo.Context) error {
	return response.Success(c, http.StatusOK, h.notifier.Recent(), "")
}
