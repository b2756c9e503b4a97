package export_occupancy

import (
	"context"
	"errors"
	"fmt"

	stationRepo "github.com/m04kA/chargemate-booking/internal/infra/storage/station"
)

// UseCase use case выгрузки загрузки станции за день в xlsx
type UseCase struct {
	stations   StationProvider
	calculator OccupancyCalculator
	logger     Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(stations StationProvider, calculator OccupancyCalculator, logger Logger) *UseCase {
	return &UseCase{
		stations:   stations,
		calculator: calculator,
		logger:     logger,
	}
}

// Execute строит отчёт по 48 гранулам дня
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("ExportOccupancy: station=%d, date=%s", req.StationID, req.Date)

	if req.StationID <= 0 {
		return nil, fmt.Errorf("%w: stationId must be positive", ErrInvalidInput)
	}
	if req.Date.IsZero() {
		return nil, fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	station, err := uc.stations.GetByID(ctx, req.StationID)
	if err != nil {
		if errors.Is(err, stationRepo.ErrStationNotFound) {
			uc.logger.Warn("ExportOccupancy: station id=%d not found", req.StationID)
			return nil, ErrStationNotFound
		}
		uc.logger.Error("ExportOccupancy: failed to get station id=%d: %v", req.StationID, err)
		return nil, fmt.Errorf("%w: failed to get station: %w", ErrInternal, err)
	}

	occupancy, err := uc.calculator.DayOccupancy(ctx, station, req.Date)
	if err != nil {
		uc.logger.Error("ExportOccupancy: failed to compute occupancy: %v", err)
		return nil, fmt.Errorf("%w: failed to compute occupancy: %w", ErrInternal, err)
	}

	content, err := renderSheet(station, req.Date, occupancy)
	if err != nil {
		uc.logger.Error("ExportOccupancy: failed to render sheet: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrInternal, err)
	}

	uc.logger.Info("ExportOccupancy: rendered %d bytes for station=%d", len(content), station.ID)

	return &Response{
		FileName: fmt.Sprintf("occupancy_%d_%s.xlsx", station.ID, req.Date),
		Content:  content,
	}, nil
}
