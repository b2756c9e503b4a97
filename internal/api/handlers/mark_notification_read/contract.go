package mark_notification_read

import (
	"context"

	"github.com/m04kA/chargemate-booking/internal/domain"
)

type NotificationMarker interface {
	MarkRead(ctx context.Context, id int64, email string) (*domain.Notification, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
