package mark_notification_read

import (
	"time"

	"github.com/m04kA/chargemate-booking/internal/domain"
)

// NotificationResponse прочитанное уведомление
type NotificationResponse struct {
	ID         int64     `json:"id"`
	Type       string    `json:"type"`
	Title      string    `json:"title"`
	Message    string    `json:"message"`
	Timestamp  time.Time `json:"timestamp"`
	Read       bool      `json:"read"`
	ActionURL  *string   `json:"actionUrl,omitempty"`
	ActionText *string   `json:"actionText,omitempty"`
}

func FromDomain(n *domain.Notification) NotificationResponse {
	return NotificationResponse{
		ID:         n.ID,
		Type:       string(n.Type),
		Title:      n.Title,
		Message:    n.Message,
		Timestamp:  n.Timestamp,
		Read:       n.Read,
		ActionURL:  n.ActionURL,
		ActionText: n.ActionText,
	}
}
