package domain

import (
	"fmt"
	"time"

	"github.com/m04kA/chargemate-booking/pkg/ptr"
)

// Тексты уведомлений и писем
const (
	TitleBookingConfirmed = "Booking Confirmed"
	TitleBookingReminder  = "Booking Reminder"
	TitleBookingCancelled = "Booking Cancelled"

	ActionViewBooking  = "View Booking"
	ActionViewBookings = "View Bookings"

	SubjectReminder = "Booking Reminder"
)

// Предупреждения при сбоях доставки
const (
	WarnCreateEmail        = "Booking successful, but failed to send confirmation email."
	WarnCreateNotification = "Booking successful, but failed to create notification."
	WarnEditEmail          = "Booking updated, but failed to schedule reminder email."
	WarnEditNotification   = "Booking updated, but failed to create notification."
	WarnCancelEmail        = "Booking deleted, but failed to send cancellation email."
	WarnCancelNotification = "Booking deleted, but failed to create notification."
)

// ConfirmedNotification уведомление о созданном бронировании
func ConfirmedNotification(b *Booking, s *Station, now time.Time) Notification {
	return Notification{
		UserEmail: b.CustomerEmail,
		Type:      NotificationBooking,
		Title:     TitleBookingConfirmed,
		Message: fmt.Sprintf("Your booking for %s on %s at %s is confirmed.",
			s.Title, b.BookingDate, b.BookingTime),
		Timestamp:  now,
		ActionURL:  ptr.Ptr(MyBookingsURL),
		ActionText: ptr.Ptr(ActionViewBooking),
	}
}

// ReminderNotification напоминание, которое покажется в момент at
func ReminderNotification(b *Booking, s *Station, at time.Time, lead time.Duration, updated bool) Notification {
	subject := "Your charging session"
	if updated {
		subject = "Your updated booking"
	}
	return Notification{
		UserEmail: b.CustomerEmail,
		Type:      NotificationReminder,
		Title:     TitleBookingReminder,
		Message: fmt.Sprintf("%s at %s is in %d minutes on %s at %s.",
			subject, s.Title, int(lead.Minutes()), b.BookingDate, b.BookingTime),
		Timestamp:  at,
		ActionURL:  ptr.Ptr(MyBookingsURL),
		ActionText: ptr.Ptr(ActionViewBooking),
	}
}

// CancelledNotification уведомление об отмене
func CancelledNotification(b *Booking, s *Station, now time.Time) Notification {
	return Notification{
		UserEmail: b.CustomerEmail,
		Type:      NotificationCancellation,
		Title:     TitleBookingCancelled,
		Message: fmt.Sprintf("Your booking at %s on %s at %s has been cancelled.",
			s.Title, b.BookingDate, b.BookingTime),
		Timestamp:  now,
		ActionURL:  ptr.Ptr(MyBookingsURL),
		ActionText: ptr.Ptr(ActionViewBookings),
	}
}

// ConfirmationEmail письмо о подтверждении
func ConfirmationEmail(b *Booking, s *Station) EmailRequest {
	return EmailRequest{
		Kind:    EmailConfirmation,
		To:      b.CustomerEmail,
		Booking: NewBookingSnapshot(b, s),
		Warning: WarnCreateEmail,
	}
}

// ReminderEmail письмо-напоминание к отправке в sendAt
func ReminderEmail(b *Booking, s *Station, sendAt time.Time, updated bool, warning string) EmailRequest {
	what := "your booking"
	if updated {
		what = "your updated booking"
	}
	return EmailRequest{
		Kind:    EmailReminder,
		To:      b.CustomerEmail,
		Subject: SubjectReminder,
		Message: fmt.Sprintf("This is a reminder for %s at %s on %s at %s.",
			what, s.Title, b.BookingDate, b.BookingTime),
		Booking: NewBookingSnapshot(b, s),
		SendAt:  &sendAt,
		Warning: warning,
	}
}

// CancellationEmail письмо об отмене
func CancellationEmail(b *Booking, s *Station) EmailRequest {
	return EmailRequest{
		Kind:    EmailCancellation,
		To:      b.CustomerEmail,
		Booking: NewBookingSnapshot(b, s),
		Warning: WarnCancelEmail,
	}
}
