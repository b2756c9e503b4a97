package get_notifications

import (
	"context"

	"github.com/m04kA/chargemate-booking/internal/domain"
)

type NotificationReader interface {
	ListByUser(ctx context.Context, email string, unreadOnly bool) ([]domain.Notification, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
