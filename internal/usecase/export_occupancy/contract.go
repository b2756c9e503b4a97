package export_occupancy

import (
	"context"

	"github.com/m04kA/chargemate-booking/internal/domain"
	"github.com/m04kA/chargemate-booking/pkg/types"
)

// StationProvider интерфейс справочника станций
type StationProvider interface {
	GetByID(ctx context.Context, id int64) (*domain.Station, error)
}

// OccupancyCalculator занятость гранул дня
type OccupancyCalculator interface {
	DayOccupancy(ctx context.Context, station *domain.Station, date types.Date) ([]domain.GranuleOccupancy, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
