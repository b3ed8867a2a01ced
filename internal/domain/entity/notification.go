package entity

import "time"

// NotificationLevel classifies a transient notification.
type NotificationLevel string

const (
	NotificationSuccess NotificationLevel = "success"
	NotificationError   NotificationLevel = "error"
	NotificationInfo    NotificationLevel = "info"
)

// Notification is one transient message surfaced to the user, such as
// "Welcome back!" after a successful login.
type Notification struct {
	ID        string            `json:"id"`
	Level     NotificationLevel `json:"level"`
	Message   string            `json:"message"`
	Duration  time.Duration     `json:"duration"`
	CreatedAt time.Time         `json:"createdAt"`
}
