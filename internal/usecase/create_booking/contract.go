package create_booking

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/chargemate-booking/internal/domain"
	"github.com/m04kA/chargemate-booking/internal/service/slots"
	"github.com/m04kA/chargemate-booking/pkg/types"
)

// BookingRepository интерфейс реестра бронирований
type BookingRepository interface {
	Create(ctx context.Context, booking *domain.Booking) error
}

// StationProvider интерфейс справочника станций
type StationProvider interface {
	GetByID(ctx context.Context, id int64) (*domain.Station, error)
}

// SlotChecker интерфейс калькулятора доступности
type SlotChecker interface {
	Check(ctx context.Context, station *domain.Station, date types.Date, start types.TimeOfDay, durationMinutes int, exclude *uuid.UUID) (*slots.SpanCheck, error)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// Metrics счётчики бронирований
type Metrics interface {
	ObserveBooking(operation, result string)
	IncSlotConflict()
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
