package service

import "farmhub/internal/domain/entity"

// Notifier is the transient notification surface. Implementations decide
// presentation; callers only classify the message.
type Notifier interface {
	// Success surfaces a success message, e.g. "Welcome back!".
	Success(message string)

	// Error surfaces a failure message.
	Error(message string)

	// Recent returns the most recent notifications, newest first.
	Recent() []entity.Notification
}
