package dispatch

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/chargemate-booking/internal/domain"
)

type mockSink struct {
	mock.Mock
}

func (m *mockSink) Create(ctx context.Context, n *domain.Notification) error {
	return m.Called(ctx, n).Error(0)
}

type mockMailer struct {
	mock.Mock
}

func (m *mockMailer) SendConfirmation(ctx context.Context, to string, b domain.BookingSnapshot) error {
	return m.Called(ctx, to, b).Error(0)
}

func (m *mockMailer) SendCancellation(ctx context.Context, to string, b domain.BookingSnapshot) error {
	return m.Called(ctx, to, b).Error(0)
}

func (m *mockMailer) ScheduleReminder(ctx context.Context, to, subject, message string, sendAt time.Time) error {
	return m.Called(ctx, to, subject, message, sendAt).Error(0)
}

type mockMetrics struct {
	mock.Mock
}

func (m *mockMetrics) IncDispatchFailure(channel string) {
	m.Called(channel)
}

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

const confirmationWarning = "Booking successful, but failed to send confirmation email."

func createOutbox(sendAt time.Time) domain.Outbox {
	var o domain.Outbox
	o.AddNotification(domain.Notification{UserEmail: "a@example.com", Type: domain.NotificationBooking})
	o.AddNotification(domain.Notification{UserEmail: "a@example.com", Type: domain.NotificationReminder})
	o.AddEmail(domain.EmailRequest{Kind: domain.EmailConfirmation, To: "a@example.com", Warning: confirmationWarning})
	o.AddEmail(domain.EmailRequest{Kind: domain.EmailReminder, To: "a@example.com", Subject: "Booking Reminder", Message: "m", SendAt: &sendAt, Warning: confirmationWarning})
	o.NotificationWarning = "Booking successful, but failed to create notification."
	return o
}

func TestDispatchDeliversEverything(t *testing.T) {
	ctx := context.Background()
	sendAt := time.Date(2025, 6, 1, 9, 50, 0, 0, time.UTC)

	sink := new(mockSink)
	sink.On("Create", ctx, mock.AnythingOfType("*domain.Notification")).Return(nil).Twice()
	mailer := new(mockMailer)
	mailer.On("SendConfirmation", ctx, "a@example.com", mock.Anything).Return(nil)
	mailer.On("ScheduleReminder", ctx, "a@example.com", "Booking Reminder", "m", sendAt).Return(nil)

	d := NewDispatcher(sink, mailer, nil, nopLogger{})
	warnings := d.Dispatch(ctx, createOutbox(sendAt))

	assert.Empty(t, warnings)
	assert.Nil(t, Warning(warnings))
	sink.AssertExpectations(t)
	mailer.AssertExpectations(t)
}

func TestDispatchEmailFailureBecomesWarning(t *testing.T) {
	ctx := context.Background()
	sendAt := time.Date(2025, 6, 1, 9, 50, 0, 0, time.UTC)

	sink := new(mockSink)
	sink.On("Create", ctx, mock.Anything).Return(nil)
	mailer := new(mockMailer)
	mailer.On("SendConfirmation", ctx, mock.Anything, mock.Anything).Return(errors.New("broker down"))
	mailer.On("ScheduleReminder", ctx, mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(errors.New("broker down"))
	metrics := new(mockMetrics)
	metrics.On("IncDispatchFailure", "email").Return().Twice()

	d := NewDispatcher(sink, mailer, metrics, nopLogger{})
	warnings := d.Dispatch(ctx, createOutbox(sendAt))

	require.Len(t, warnings, 1)
	assert.Equal(t, confirmationWarning, warnings[0])
	require.NotNil(t, Warning(warnings))
	assert.Equal(t, confirmationWarning, *Warning(warnings))
	metrics.AssertExpectations(t)
}

func TestDispatchNotificationFailureBecomesWarning(t *testing.T) {
	ctx := context.Background()

	sink := new(mockSink)
	sink.On("Create", ctx, mock.Anything).Return(errors.New("db down"))
	mailer := new(mockMailer)
	mailer.On("SendCancellation", ctx, mock.Anything, mock.Anything).Return(nil)

	var o domain.Outbox
	o.AddNotification(domain.Notification{Type: domain.NotificationCancellation})
	o.AddEmail(domain.EmailRequest{Kind: domain.EmailCancellation, To: "a@example.com"})
	o.NotificationWarning = "Booking deleted, but failed to create notification."

	warnings := NewDispatcher(sink, mailer, nil, nopLogger{}).Dispatch(ctx, o)

	assert.Equal(t, []string{"Booking deleted, but failed to create notification."}, warnings)
	mailer.AssertExpectations(t)
}

func TestDispatchReminderWithoutSendTime(t *testing.T) {
	ctx := context.Background()

	var o domain.Outbox
	o.AddEmail(domain.EmailRequest{Kind: domain.EmailReminder, Warning: "w"})

	mailer := new(mockMailer)
	warnings := NewDispatcher(new(mockSink), mailer, nil, nopLogger{}).Dispatch(ctx, o)

	assert.Equal(t, []string{"w"}, warnings)
	mailer.AssertNotCalled(t, "ScheduleReminder", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestWarningJoins(t *testing.T) {
	w := Warning([]string{"a.", "b."})
	require.NotNil(t, w)
	assert.Equal(t, "a. b.", *w)
}
