package check_availability

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/chargemate-booking/internal/domain"
	stationRepo "github.com/m04kA/chargemate-booking/internal/infra/storage/station"
	"github.com/m04kA/chargemate-booking/internal/service/slots"
)

// UseCase use case проверки доступности станции на интервал
type UseCase struct {
	stations   StationProvider
	calculator SlotChecker
	logger     Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(stations StationProvider, calculator SlotChecker, logger Logger) *UseCase {
	return &UseCase{
		stations:   stations,
		calculator: calculator,
		logger:     logger,
	}
}

// Execute только читает реестр: повторный вызов без изменений между ними даёт тот же результат.
// Доступность ограничена самой загруженной гранулой интервала.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*domain.Availability, error) {
	if req.DurationMinutes == 0 {
		req.DurationMinutes = domain.DefaultDurationMinutes
	}

	if req.StationID <= 0 {
		return nil, fmt.Errorf("%w: stationId must be positive", ErrInvalidInput)
	}
	if req.BookingDate.IsZero() {
		return nil, fmt.Errorf("%w: bookingDate is required", ErrInvalidInput)
	}

	station, err := uc.stations.GetByID(ctx, req.StationID)
	if err != nil {
		if errors.Is(err, stationRepo.ErrStationNotFound) {
			uc.logger.Warn("CheckAvailability: station id=%d not found", req.StationID)
			return nil, ErrStationNotFound
		}
		uc.logger.Error("CheckAvailability: failed to get station id=%d: %v", req.StationID, err)
		return nil, fmt.Errorf("%w: failed to get station: %w", ErrInternal, err)
	}

	available, err := uc.calculator.AvailableSlots(ctx, station, req.BookingDate, req.BookingTime, req.DurationMinutes)
	if err != nil {
		if errors.Is(err, slots.ErrInvalidDuration) ||
			errors.Is(err, slots.ErrMisalignedTime) ||
			errors.Is(err, slots.ErrCrossesMidnight) {
			return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
		}
		uc.logger.Error("CheckAvailability: failed to check station id=%d: %v", station.ID, err)
		return nil, fmt.Errorf("%w: failed to check availability: %w", ErrInternal, err)
	}

	return &domain.Availability{
		StationID:      station.ID,
		BookingDate:    req.BookingDate,
		BookingTime:    req.BookingTime,
		Duration:       req.DurationMinutes,
		TotalSlots:     station.Quantity,
		AvailableSlots: available,
	}, nil
}
