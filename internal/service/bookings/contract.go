package bookings

import (
	"context"

	"github.com/google/uuid"

	"github.com/m04kA/chargemate-booking/internal/domain"
	"github.com/m04kA/chargemate-booking/pkg/types"
)

// BookingRepository интерфейс реестра бронирований
type BookingRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Booking, error)
	GetByCustomerEmail(ctx context.Context, email string) ([]*domain.Booking, error)
	GetByStationAndDate(ctx context.Context, stationID int64, date types.Date) ([]*domain.Booking, error)
}

// StationProvider интерфейс справочника станций
type StationProvider interface {
	GetByID(ctx context.Context, id int64) (*domain.Station, error)
	List(ctx context.Context) ([]domain.Station, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
