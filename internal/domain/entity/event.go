package entity

import "time"

const (
	EventOrderCreated       = "order.created"
	EventOrderStatusChanged = "order.status_changed"
	EventMediaUploaded      = "media.uploaded"
	EventMediaDeleted       = "media.deleted"
)

// Event is the broker message body shared by the API and the bot.
type Event struct {
	Type       string    `json:"type"`
	ResourceID string    `json:"resourceId"`
	UserID     string    `json:"userId,omitempty"`
	Status     string    `json:"status,omitempty"`
	OccurredAt time.Time `json:"occurredAt"`
}
