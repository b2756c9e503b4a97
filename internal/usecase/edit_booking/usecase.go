package edit_booking

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/chargemate-booking/internal/domain"
	bookingRepo "github.com/m04kA/chargemate-booking/internal/infra/storage/booking"
	stationRepo "github.com/m04kA/chargemate-booking/internal/infra/storage/station"
	"github.com/m04kA/chargemate-booking/internal/service/slots"
)

const operation = "edit"

// Config правила бронирования
type Config struct {
	Location         *time.Location
	ReminderLead     time.Duration
	AllowedDurations []int
}

// UseCase use case для изменения бронирования
type UseCase struct {
	bookingRepo  BookingRepository
	stations     StationProvider
	calculator   SlotChecker
	txManager    TransactionManager
	metrics      Metrics
	timeProvider TimeProvider
	cfg          Config
	logger       Logger
}

// NewUseCase создает новый экземпляр use case. metrics может быть nil.
func NewUseCase(
	bookingRepo BookingRepository,
	stations StationProvider,
	calculator SlotChecker,
	txManager TransactionManager,
	metrics Metrics,
	cfg Config,
	logger Logger,
) *UseCase {
	if cfg.Location == nil {
		cfg.Location = time.UTC
	}
	if len(cfg.AllowedDurations) == 0 {
		cfg.AllowedDurations = domain.DefaultAllowedDurations
	}
	return &UseCase{
		bookingRepo:  bookingRepo,
		stations:     stations,
		calculator:   calculator,
		txManager:    txManager,
		metrics:      metrics,
		timeProvider: &RealTimeProvider{},
		cfg:          cfg,
		logger:       logger,
	}
}

// WithTimeProvider подменяет источник времени
func (uc *UseCase) WithTimeProvider(tp TimeProvider) *UseCase {
	uc.timeProvider = tp
	return uc
}

// Execute применяет патч к бронированию.
// Вместимость перепроверяется только при изменении даты, времени или длительности,
// само бронирование из подсчёта исключается. При конфликте запись не меняется.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("EditBooking: id=%s", req.BookingID)

	if err := validateRequest(req, uc.cfg.AllowedDurations); err != nil {
		uc.logger.Warn("EditBooking: validation failed: %v", err)
		uc.observe("invalid")
		return nil, err
	}

	now := uc.timeProvider.Now()

	var (
		original     domain.Booking
		updated      domain.Booking
		station      *domain.Station
		startChanged bool
	)

	err := uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 1. Получаем бронирование
		current, err := uc.bookingRepo.GetByID(txCtx, req.BookingID)
		if err != nil {
			if errors.Is(err, bookingRepo.ErrBookingNotFound) {
				uc.logger.Warn("EditBooking: booking id=%s not found", req.BookingID)
				return ErrBookingNotFound
			}
			uc.logger.Error("EditBooking: failed to get booking id=%s: %v", req.BookingID, err)
			return fmt.Errorf("%w: failed to get booking: %w", ErrInternal, err)
		}
		original = *current

		// 2. Получаем станцию
		station, err = uc.stations.GetByID(txCtx, current.StationID)
		if err != nil {
			if errors.Is(err, stationRepo.ErrStationNotFound) {
				uc.logger.Warn("EditBooking: station id=%d not found", current.StationID)
				return ErrStationNotFound
			}
			uc.logger.Error("EditBooking: failed to get station id=%d: %v", current.StationID, err)
			return fmt.Errorf("%w: failed to get station: %w", ErrInternal, err)
		}

		// 3. Совместимость нового автомобиля
		if req.Patch.Vehicle != nil && !station.AcceptsConnector(req.Patch.Vehicle.ConnectorType) {
			uc.logger.Warn("EditBooking: connector %q does not match station %q",
				req.Patch.Vehicle.ConnectorType, station.ConnectionType)
			return ErrConnectorMismatch
		}

		updated = req.Patch.Apply(original)
		startChanged = req.Patch.ChangesStart(original)

		// 4. Перепроверка вместимости нового интервала
		if req.Patch.ChangesSchedule(original) {
			if startChanged && !updated.StartsAt(uc.cfg.Location).After(now) {
				return ErrPastBooking
			}

			check, err := uc.calculator.Check(txCtx, station, updated.BookingDate, updated.BookingTime, updated.DurationMinutes, &original.ID)
			if err != nil {
				if isScheduleError(err) {
					return fmt.Errorf("%w: %v", ErrInvalidInput, err)
				}
				uc.logger.Error("EditBooking: failed to check availability: %v", err)
				return fmt.Errorf("%w: failed to check availability: %w", ErrInternal, err)
			}
			if !check.HasCapacity() {
				uc.logger.Warn("EditBooking: no available slots at %s for booking id=%s", *check.FirstFull, original.ID)
				if uc.metrics != nil {
					uc.metrics.IncSlotConflict()
				}
				return fmt.Errorf("%w: %w", ErrSlotNotAvailable, &domain.SlotUnavailableError{Time: *check.FirstFull})
			}
		}

		// 5. Сохраняем
		updated.UpdatedAt = now.UTC()
		if err := uc.bookingRepo.Update(txCtx, &updated); err != nil {
			if errors.Is(err, bookingRepo.ErrBookingNotFound) {
				return ErrBookingNotFound
			}
			uc.logger.Error("EditBooking: failed to update booking id=%s: %v", original.ID, err)
			return fmt.Errorf("%w: failed to update booking: %w", ErrInternal, err)
		}
		return nil
	})
	if err != nil {
		uc.observeError(err)
		return nil, err
	}

	uc.logger.Info("EditBooking: successfully updated booking id=%s", updated.ID)
	uc.observe("success")

	resp := &Response{Booking: &updated, Station: station}
	if startChanged {
		resp.Outbox = uc.outbox(&updated, station, now)
	}
	return resp, nil
}

// outbox новое напоминание при переносе начала сессии
func (uc *UseCase) outbox(b *domain.Booking, s *domain.Station, now time.Time) domain.Outbox {
	var o domain.Outbox
	o.NotificationWarning = domain.WarnEditNotification

	remindAt := b.StartsAt(uc.cfg.Location).Add(-uc.cfg.ReminderLead)
	o.AddNotification(domain.ReminderNotification(b, s, remindAt, uc.cfg.ReminderLead, true))

	if remindAt.After(now) {
		o.AddEmail(domain.ReminderEmail(b, s, remindAt, true, domain.WarnEditEmail))
	}
	return o
}

func (uc *UseCase) observe(result string) {
	if uc.metrics != nil {
		uc.metrics.ObserveBooking(operation, result)
	}
}

func (uc *UseCase) observeError(err error) {
	switch {
	case errors.Is(err, ErrSlotNotAvailable), errors.Is(err, ErrConnectorMismatch):
		uc.observe("conflict")
	case errors.Is(err, ErrBookingNotFound), errors.Is(err, ErrStationNotFound):
		uc.observe("not_found")
	case errors.Is(err, ErrInvalidInput), errors.Is(err, ErrPastBooking):
		uc.observe("invalid")
	default:
		uc.observe("error")
	}
}

func isScheduleError(err error) bool {
	return errors.Is(err, slots.ErrCrossesMidnight) ||
		errors.Is(err, slots.ErrInvalidDuration) ||
		errors.Is(err, slots.ErrMisalignedTime)
}
