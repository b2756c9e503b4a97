package check_availability

import (
	"context"

	"github.com/m04kA/chargemate-booking/internal/domain"
	"github.com/m04kA/chargemate-booking/pkg/types"
)

// StationProvider интерфейс справочника станций
type StationProvider interface {
	GetByID(ctx context.Context, id int64) (*domain.Station, error)
}

// SlotChecker интерфейс калькулятора доступности
type SlotChecker interface {
	AvailableSlots(ctx context.Context, station *domain.Station, date types.Date, start types.TimeOfDay, durationMinutes int) (int, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
