package get_notifications

import (
	"time"

	"github.com/m04kA/chargemate-booking/internal/domain"
)

// NotificationResponse уведомление в ленте
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

// FromDomainList конвертирует ленту. Напоминания из будущего не показываются.
func FromDomainList(items []domain.Notification, now time.Time) []NotificationResponse {
	resp := make([]NotificationResponse, 0, len(items))
	for _, n := range items {
		if n.Timestamp.After(now) {
			continue
		}
		resp = append(resp, NotificationResponse{
			ID:         n.ID,
			Type:       string(n.Type),
			Title:      n.Title,
			Message:    n.Message,
			Timestamp:  n.Timestamp,
			Read:       n.Read,
			ActionURL:  n.ActionURL,
			ActionText: n.ActionText,
		})
	}
	return resp
}
