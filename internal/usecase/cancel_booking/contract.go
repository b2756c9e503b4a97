package cancel_booking

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/chargemate-booking/internal/domain"
)

// BookingRepository интерфейс реестра бронирований
type BookingRepository interface {
	Delete(ctx context.Context, id uuid.UUID) (*domain.Booking, error)
}

// StationProvider интерфейс справочника станций
type StationProvider interface {
	GetByID(ctx context.Context, id int64) (*domain.Station, error)
}

// Metrics счётчики бронирований
type Metrics interface {
	ObserveBooking(operation, result string)
}

// TimeProvider интерфейс для получения текущего времени
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
