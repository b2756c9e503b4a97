// Package mailer ставит письма в очередь RabbitMQ. Отправкой занимается отдельный воркер.
package mailer

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	amqp "github.com/rabbitmq/amqp091-go"

	"github.com/m04kA/chargemate-booking/internal/domain"
)

// Channel часть *amqp.Channel, которая нужна клиенту
type Channel interface {
	PublishWithContext(ctx context.Context, exchange, key string, mandatory, immediate bool, msg amqp.Publishing) error
	Close() error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Client публикует почтовые задания в topic exchange
type Client struct {
	conn       *amqp.Connection
	ch         Channel
	exchange   string
	routingKey string
	logger     Logger
}

// Dial подключается к брокеру и объявляет exchange
func Dial(url, exchange, routingKey string, logger Logger) (*Client, error) {
	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, fmt.Errorf("%w: dial: %v", ErrConnect, err)
	}
	ch, err := conn.Channel()
	if err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("%w: open channel: %v", ErrConnect, err)
	}
	if err := ch.ExchangeDeclare(exchange, "topic", true, false, false, false, nil); err != nil {
		_ = ch.Close()
		_ = conn.Close()
		return nil, fmt.Errorf("%w: declare exchange: %v", ErrConnect, err)
	}

	client := NewClient(ch, exchange, routingKey, logger)
	client.conn = conn
	return client, nil
}

// NewClient создает клиента поверх уже открытого канала
func NewClient(ch Channel, exchange, routingKey string, logger Logger) *Client {
	return &Client{
		ch:         ch,
		exchange:   exchange,
		routingKey: routingKey,
		logger:     logger,
	}
}

// SendConfirmation письмо о подтверждении бронирования
func (c *Client) SendConfirmation(ctx context.Context, to string, b domain.BookingSnapshot) error {
	return c.publish(ctx, Job{
		Kind:    string(domain.EmailConfirmation),
		To:      to,
		Subject: SubjectConfirmation,
		Booking: toPayload(b),
	})
}

// SendCancellation письмо об отмене бронирования
func (c *Client) SendCancellation(ctx context.Context, to string, b domain.BookingSnapshot) error {
	return c.publish(ctx, Job{
		Kind:    string(domain.EmailCancellation),
		To:      to,
		Subject: SubjectCancellation,
		Booking: toPayload(b),
	})
}

// ScheduleReminder письмо-напоминание, которое воркер отправит в sendAt
func (c *Client) ScheduleReminder(ctx context.Context, to, subject, message string, sendAt time.Time) error {
	at := sendAt.UTC()
	return c.publish(ctx, Job{
		Kind:    string(domain.EmailReminder),
		To:      to,
		Subject: subject,
		Message: message,
		SendAt:  &at,
	})
}

// Close закрывает канал и соединение
func (c *Client) Close() error {
	if c.ch != nil {
		_ = c.ch.Close()
	}
	if c.conn != nil {
		return c.conn.Close()
	}
	return nil
}

func (c *Client) publish(ctx context.Context, job Job) error {
	job.ID = uuid.NewString()

	body, err := json.Marshal(job)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrEncode, err)
	}

	key := c.routingKey + "." + job.Kind
	err = c.ch.PublishWithContext(ctx, c.exchange, key, false, false, amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		MessageId:    job.ID,
		Timestamp:    time.Now().UTC(),
		Body:         body,
	})
	if err != nil {
		c.logger.Error("Mailer: failed to publish %s job to=%s: %v", job.Kind, job.To, err)
		return fmt.Errorf("%w: %v", ErrPublish, err)
	}

	c.logger.Info("Mailer: queued %s job id=%s to=%s", job.Kind, job.ID, job.To)
	return nil
}

func toPayload(b domain.BookingSnapshot) *BookingPayload {
	return &BookingPayload{
		ID:            b.BookingID.String(),
		CustomerName:  b.CustomerName,
		StationTitle:  b.StationTitle,
		BookingDate:   b.BookingDate.String(),
		BookingTime:   b.BookingTime.String(),
		TimeSlot:      b.Duration,
		VehicleName:   b.Vehicle.Name,
		VehicleNumber: b.Vehicle.Number,
		ConnectorType: b.Vehicle.ConnectorType,
		PaymentMethod: b.PaymentMethod,
	}
}
