package dispatch

import (
	"context"
	"time"

	"github.com/m04kA/chargemate-booking/internal/domain"
)

// NotificationSink лента уведомлений
type NotificationSink interface {
	Create(ctx context.Context, n *domain.Notification) error
}

// EmailSender постановка писем в очередь
type EmailSender interface {
	SendConfirmation(ctx context.Context, to string, b domain.BookingSnapshot) error
	SendCancellation(ctx context.Context, to string, b domain.BookingSnapshot) error
	ScheduleReminder(ctx context.Context, to, subject, message string, sendAt time.Time) error
}

// Metrics счётчик сбоев доставки
type Metrics interface {
	IncDispatchFailure(channel string)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
