package get_available_slots

import (
	"context"
	"errors"
	"fmt"
	"time"

	stationRepo "github.com/m04kA/chargemate-booking/internal/infra/storage/station"
)

// UseCase use case для получения сетки слотов станции на день
type UseCase struct {
	stations     StationProvider
	calculator   OccupancyCalculator
	location     *time.Location
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(stations StationProvider, calculator OccupancyCalculator, location *time.Location, logger Logger) *UseCase {
	if location == nil {
		location = time.UTC
	}
	return &UseCase{
		stations:     stations,
		calculator:   calculator,
		location:     location,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// WithTimeProvider подменяет источник времени
func (uc *UseCase) WithTimeProvider(tp TimeProvider) *UseCase {
	uc.timeProvider = tp
	return uc
}

// Execute возвращает все 48 гранул дня с занятостью.
// Прошедшие гранулы остаются в ответе, но помечаются как недоступные для бронирования.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetAvailableSlots: station=%d, date=%s", req.StationID, req.Date)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetAvailableSlots: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем станцию
	station, err := uc.stations.GetByID(ctx, req.StationID)
	if err != nil {
		if errors.Is(err, stationRepo.ErrStationNotFound) {
			uc.logger.Warn("GetAvailableSlots: station id=%d not found", req.StationID)
			return nil, ErrStationNotFound
		}
		uc.logger.Error("GetAvailableSlots: failed to get station id=%d: %v", req.StationID, err)
		return nil, fmt.Errorf("%w: failed to get station: %w", ErrInternal, err)
	}

	// 3. Считаем занятость
	occupancy, err := uc.calculator.DayOccupancy(ctx, station, req.Date)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to compute occupancy: %v", err)
		return nil, fmt.Errorf("%w: failed to compute occupancy: %w", ErrInternal, err)
	}

	now := uc.timeProvider.Now()
	slots := make([]Slot, 0, len(occupancy))
	for i := range occupancy {
		g := occupancy[i]
		started := !req.Date.At(g.Time, uc.location).After(now)
		slots = append(slots, Slot{
			StartTime:      g.Time,
			BookedSpots:    g.Booked,
			AvailableSpots: g.Available(),
			TotalSpots:     g.Total,
			Bookable:       !started && !g.IsFull(),
		})
	}

	uc.logger.Info("GetAvailableSlots: generated %d slots for station=%d, date=%s", len(slots), station.ID, req.Date)

	return &Response{
		StationID: station.ID,
		Date:      req.Date,
		Slots:     slots,
	}, nil
}
