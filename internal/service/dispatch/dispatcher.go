// Package dispatch разбирает Outbox после успешной операции с бронированием.
// Сбои доставки не откатывают операцию, а превращаются в предупреждения.
package dispatch

import (
	"context"
	"fmt"
	"strings"

	"github.com/m04kA/chargemate-booking/internal/domain"
)

const (
	channelNotification = "notification"
	channelEmail        = "email"
)

// Dispatcher доставляет уведомления и письма
type Dispatcher struct {
	sink    NotificationSink
	mailer  EmailSender
	metrics Metrics
	logger  Logger
}

// NewDispatcher создает диспетчер. metrics может быть nil.
func NewDispatcher(sink NotificationSink, mailer EmailSender, metrics Metrics, logger Logger) *Dispatcher {
	return &Dispatcher{
		sink:    sink,
		mailer:  mailer,
		metrics: metrics,
		logger:  logger,
	}
}

// Dispatch доставляет всё содержимое outbox и возвращает предупреждения без повторов
func (d *Dispatcher) Dispatch(ctx context.Context, outbox domain.Outbox) []string {
	var warnings []string
	add := func(w string) {
		if w == "" {
			return
		}
		for _, existing := range warnings {
			if existing == w {
				return
			}
		}
		warnings = append(warnings, w)
	}

	for i := range outbox.Notifications {
		n := outbox.Notifications[i]
		if err := d.sink.Create(ctx, &n); err != nil {
			d.logger.Error("Dispatch: failed to create %s notification for %s: %v", n.Type, n.UserEmail, err)
			d.fail(channelNotification)
			add(outbox.NotificationWarning)
		}
	}

	for _, e := range outbox.Emails {
		if err := d.send(ctx, e); err != nil {
			d.logger.Error("Dispatch: failed to queue %s email for %s: %v", e.Kind, e.To, err)
			d.fail(channelEmail)
			add(e.Warning)
		}
	}

	return warnings
}

// Warning склеивает предупреждения в одну строку ответа, nil если их нет
func Warning(warnings []string) *string {
	if len(warnings) == 0 {
		return nil
	}
	w := strings.Join(warnings, " ")
	return &w
}

func (d *Dispatcher) send(ctx context.Context, e domain.EmailRequest) error {
	switch e.Kind {
	case domain.EmailConfirmation:
		return d.mailer.SendConfirmation(ctx, e.To, e.Booking)
	case domain.EmailCancellation:
		return d.mailer.SendCancellation(ctx, e.To, e.Booking)
	case domain.EmailReminder:
		if e.SendAt == nil {
			return fmt.Errorf("reminder without send time")
		}
		return d.mailer.ScheduleReminder(ctx, e.To, e.Subject, e.Message, *e.SendAt)
	default:
		return fmt.Errorf("unknown email kind %q", e.Kind)
	}
}

func (d *Dispatcher) fail(channel string) {
	if d.metrics != nil {
		d.metrics.IncDispatchFailure(channel)
	}
}
