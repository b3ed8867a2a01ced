// Package notification provides the concrete transient notification surface.
package notification

import (
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"farmhub/config"
	"farmhub/internal/domain/entity"
	"farmhub/internal/domain/service"
)

const (
	defaultDuration   = 4 * time.Second
	defaultBufferSize = 20
)

// toastNotifier implements the Notifier interface with an in-memory ring
// of recent notifications. Presentation is left to whoever polls Recent.
type toastNotifier struct {
	duration   time.Duration
	bufferSize int
	logger     *slog.Logger

	mu     sync.Mutex
	recent []entity.Notification
}

// NewToastNotifier is the constructor for toastNotifier.
func NewToastNotifier(cfg *config.Config, logger *slog.Logger) service.Notifier {
	duration := defaultDuration
	bufferSize := defaultBufferSize
	if cfg.Notifications != nil {
		if cfg.Notifications.Duration > 0 {
			duration = cfg.Notifications.Duration
		}
		if cfg.Notifications.BufferSize > 0 {
			bufferSize = cfg.Notifications.BufferSize
		}
	}

	return &toastNotifier{
		duration:   duration,
		bufferSize: bufferSize,
		logger:     logger,
	}
}

// Success surfaces a success message.
func (n *toastNotifier) Success(message string) {
	n.push(entity.NotificationSuccess, message)
}

// Error surfaces a failure message.
func (n *toastNotifier) Error(message string) {
	n.push(entity.NotificationError, message)
}

// Recent returns the most recent notifications, newest first.
func (n *toastNotifier) Recent() []entity.Notification {
	n.mu.Lock()
	defer n.mu.Unlock()

	out := make([]entity.Notification, len(n.recent))
	for i, notif := range n.recent {
		out[len(n.recent)-1-i] = notif
	}

	return out
}

func (n *toastNotifier) push(level entity.NotificationLevel, message string) {
	notif := entity.Notification{
		ID:        uuid.NewString(),
		Level:     level,
		Message:   message,
		Duration:  n.duration,
		CreatedAt: time.Now(),
	}

	n.mu.Lock()
	n.recent = append(n.recent, notif)
	if len(n.recent) > n.bufferSize {
		n.recent = n.recent[len(n.recent)-n.bufferSize:]
	}
	n.mu.Unlock()

	n.logger.Debug("Surfaced notification",
		slog.String("level", string(level)),
		slog.String("message", message))
}
