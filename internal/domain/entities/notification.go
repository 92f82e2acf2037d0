package entities

import "time"

// NotificationType drives how the client-facing UI styles the entry.
type NotificationType string

const (
	NotificationInfo    NotificationType = "info"
	NotificationSuccess NotificationType = "success"
	NotificationWarning NotificationType = "warning"
)

// Notification is an append-only record addressed to one user. It is created
// only by the lifecycle workflow, never directly by a form; the recipient
// owns it for read/unread purposes only.
//
// Storage model (DynamoDB):
//   - PK: id (deterministic per transition batch, see usecase)
//   - GSI1 (user_id-index): user_id
type Notification struct {
	ID        string           `json:"id"`
	UserID    string           `json:"user_id"`
	Title     string           `json:"title"`
	Message   string           `json:"message"`
	Type      NotificationType `json:"type"`
	Link      string           `json:"link,omitempty"`
	Read      bool             `json:"read"`
	CreatedAt time.Time        `json:"created_at"`
}
