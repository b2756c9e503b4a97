package domain

import (
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/chargemate-booking/pkg/types"
)

// NotificationType тип уведомления пользователя
type NotificationType string

const (
	NotificationBooking      NotificationType = "booking"
	NotificationCancellation NotificationType = "cancellation"
	NotificationReminder     NotificationType = "reminder"
)

// Notification уведомление в ленте пользователя.
// Timestamp для напоминаний равен моменту, когда оно должно показаться.
type Notification struct {
	ID         int64
	UserEmail  string
	Type       NotificationType
	Title      string
	Message    string
	Timestamp  time.Time
	Read       bool
	ActionURL  *string
	ActionText *string
}

// EmailKind тип письма
type EmailKind string

const (
	EmailConfirmation EmailKind = "confirmation"
	EmailCancellation EmailKind = "cancellation"
	EmailReminder     EmailKind = "reminder"
)

// BookingSnapshot данные бронирования для письма
type BookingSnapshot struct {
	BookingID     uuid.UUID
	CustomerName  string
	StationTitle  string
	BookingDate   types.Date
	BookingTime   types.TimeOfDay
	Duration      int
	Vehicle       Vehicle
	PaymentMethod *string
}

// NewBookingSnapshot собирает снимок бронирования и станции
func NewBookingSnapshot(b *Booking, s *Station) BookingSnapshot {
	return BookingSnapshot{
		BookingID:     b.ID,
		CustomerName:  b.CustomerName,
		StationTitle:  s.Title,
		BookingDate:   b.BookingDate,
		BookingTime:   b.BookingTime,
		Duration:      b.DurationMinutes,
		Vehicle:       b.Vehicle,
		PaymentMethod: b.PaymentMethod,
	}
}

// EmailRequest запрос на отправку письма.
// Для напоминаний SendAt задаёт момент отправки.
type EmailRequest struct {
	Kind    EmailKind
	To      string
	Subject string
	Message string
	Booking BookingSnapshot
	SendAt  *time.Time
	// Warning текст предупреждения, если письмо не удалось поставить в очередь
	Warning string
}

// Outbox побочные эффекты операции. Заполняется use case'ом и разбирается
// вызывающим слоем уже после успешной записи в реестр.
type Outbox struct {
	Notifications []Notification
	Emails        []EmailRequest
	// NotificationWarning текст предупреждения, если не удалось сохранить уведомления
	NotificationWarning string
}

// AddNotification добавляет уведомление
func (o *Outbox) AddNotification(n Notification) {
	o.Notifications = append(o.Notifications, n)
}

// AddEmail добавляет письмо
func (o *Outbox) AddEmail(e EmailRequest) {
	o.Emails = append(o.Emails, e)
}

// IsEmpty нет ни уведомлений, ни писем
func (o *Outbox) IsEmpty() bool {
	return len(o.Notifications) == 0 && len(o.Emails) == 0
}
