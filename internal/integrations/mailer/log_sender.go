package mailer

import (
	"context"
	"time"

	"github.com/m04kA/chargemate-booking/internal/domain"
)

// LogSender пишет письма в лог вместо очереди. Используется, когда RabbitMQ выключен.
type LogSender struct {
	logger Logger
}

// NewLogSender создает LogSender
func NewLogSender(logger Logger) *LogSender {
	return &LogSender{logger: logger}
}

func (s *LogSender) SendConfirmation(ctx context.Context, to string, b domain.BookingSnapshot) error {
	s.logger.Info("Mailer: confirmation to=%s booking=%s (queue disabled)", to, b.BookingID)
	return nil
}

func (s *LogSender) SendCancellation(ctx context.Context, to string, b domain.BookingSnapshot) error {
	s.logger.Info("Mailer: cancellation to=%s booking=%s (queue disabled)", to, b.BookingID)
	return nil
}

func (s *LogSender) ScheduleReminder(ctx context.Context, to, subject, message string, sendAt time.Time) error {
	s.logger.Info("Mailer: reminder to=%s at=%s (queue disabled)", to, sendAt.Format(time.RFC3339))
	return nil
}

func (s *LogSender) Close() error {
	return nil
}
