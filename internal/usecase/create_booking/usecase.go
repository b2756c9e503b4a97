package create_booking

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/chargemate-booking/internal/domain"
	stationRepo "github.com/m04kA/chargemate-booking/internal/infra/storage/station"
	"github.com/m04kA/chargemate-booking/internal/service/slots"
)

const operation = "create"

// Config правила бронирования
type Config struct {
	Location         *time.Location
	ReminderLead     time.Duration
	AllowedDurations []int
}

// UseCase use case для создания бронирования
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

// Execute выполняет use case создания бронирования.
// Проверка вместимости и вставка идут в одной сериализуемой транзакции.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	if req.DurationMinutes == 0 {
		req.DurationMinutes = domain.DefaultDurationMinutes
	}

	uc.logger.Info("CreateBooking: station=%d, date=%s, time=%s, duration=%d, email=%s",
		req.StationID, req.BookingDate, req.BookingTime, req.DurationMinutes, req.CustomerEmail)

	now := uc.timeProvider.Now()

	// 1. Валидация входных данных
	if err := validateRequest(req, now, uc.cfg.Location, uc.cfg.AllowedDurations); err != nil {
		uc.logger.Warn("CreateBooking: validation failed: %v", err)
		uc.observe("invalid")
		return nil, err
	}

	// 2. Получаем станцию
	station, err := uc.stations.GetByID(ctx, req.StationID)
	if err != nil {
		if errors.Is(err, stationRepo.ErrStationNotFound) {
			uc.logger.Warn("CreateBooking: station id=%d not found", req.StationID)
			uc.observe("not_found")
			return nil, ErrStationNotFound
		}
		uc.logger.Error("CreateBooking: failed to get station id=%d: %v", req.StationID, err)
		uc.observe("error")
		return nil, fmt.Errorf("%w: failed to get station: %w", ErrInternal, err)
	}

	// 3. Проверяем совместимость разъёма
	if !station.AcceptsConnector(req.Vehicle.ConnectorType) {
		uc.logger.Warn("CreateBooking: connector %q does not match station %q",
			req.Vehicle.ConnectorType, station.ConnectionType)
		uc.observe("conflict")
		return nil, ErrConnectorMismatch
	}

	booking := &domain.Booking{
		ID:              uuid.New(),
		StationID:       station.ID,
		CustomerName:    strings.TrimSpace(req.CustomerName),
		CustomerEmail:   strings.TrimSpace(req.CustomerEmail),
		BookingDate:     req.BookingDate,
		BookingTime:     req.BookingTime,
		DurationMinutes: req.DurationMinutes,
		Vehicle:         req.Vehicle,
		PaymentMethod:   req.PaymentMethod,
		PaymentVerified: req.PaymentVerified,
		CreatedAt:       now.UTC(),
		UpdatedAt:       now.UTC(),
	}

	// 4. Проверка вместимости и вставка
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		check, err := uc.calculator.Check(txCtx, station, req.BookingDate, req.BookingTime, req.DurationMinutes, nil)
		if err != nil {
			if isScheduleError(err) {
				return fmt.Errorf("%w: %v", ErrInvalidInput, err)
			}
			uc.logger.Error("CreateBooking: failed to check availability: %v", err)
			return fmt.Errorf("%w: failed to check availability: %w", ErrInternal, err)
		}

		if !check.HasCapacity() {
			uc.logger.Warn("CreateBooking: no available slots at %s, %d/%d taken",
				*check.FirstFull, check.MaxBooked, station.Quantity)
			if uc.metrics != nil {
				uc.metrics.IncSlotConflict()
			}
			return fmt.Errorf("%w: %w", ErrSlotNotAvailable, &domain.SlotUnavailableError{Time: *check.FirstFull})
		}

		if err := uc.bookingRepo.Create(txCtx, booking); err != nil {
			uc.logger.Error("CreateBooking: failed to create booking: %v", err)
			return fmt.Errorf("%w: failed to create booking: %w", ErrInternal, err)
		}
		return nil
	})
	if err != nil {
		uc.observeError(err)
		return nil, err
	}

	uc.logger.Info("CreateBooking: successfully created booking id=%s", booking.ID)
	uc.observe("success")

	return &Response{
		Booking: booking,
		Station: station,
		Outbox:  uc.outbox(booking, station, now),
	}, nil
}

// outbox уведомление о подтверждении, напоминание и письма к ним
func (uc *UseCase) outbox(b *domain.Booking, s *domain.Station, now time.Time) domain.Outbox {
	var o domain.Outbox
	o.NotificationWarning = domain.WarnCreateNotification

	remindAt := b.StartsAt(uc.cfg.Location).Add(-uc.cfg.ReminderLead)

	o.AddNotification(domain.ConfirmedNotification(b, s, now))
	o.AddNotification(domain.ReminderNotification(b, s, remindAt, uc.cfg.ReminderLead, false))

	o.AddEmail(domain.ConfirmationEmail(b, s))
	if remindAt.After(now) {
		o.AddEmail(domain.ReminderEmail(b, s, remindAt, false, domain.WarnCreateEmail))
	} else {
		uc.logger.Info("CreateBooking: reminder time %s already passed, email skipped", remindAt.Format(time.RFC3339))
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
	case errors.Is(err, ErrSlotNotAvailable):
		uc.observe("conflict")
	case errors.Is(err, ErrInvalidInput):
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
