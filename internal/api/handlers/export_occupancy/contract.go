package export_occupancy

import (
	"context"

	exportOccupancy "github.com/m04kA/chargemate-booking/internal/usecase/export_occupancy"
)

type ExportOccupancyUseCase interface {
	Execute(ctx context.Context, req *exportOccupancy.Request) (*exportOccupancy.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
