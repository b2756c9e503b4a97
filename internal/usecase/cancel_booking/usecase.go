package cancel_booking

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/m04kA/chargemate-booking/internal/domain"
	bookingRepo "github.com/m04kA/chargemate-booking/internal/infra/storage/booking"
	stationRepo "github.com/m04kA/chargemate-booking/internal/infra/storage/station"
)

const operation = "cancel"

// UseCase use case для отмены бронирования
type UseCase struct {
	bookingRepo  BookingRepository
	stations     StationProvider
	metrics      Metrics
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case. metrics может быть nil.
func NewUseCase(bookingRepo BookingRepository, stations StationProvider, metrics Metrics, logger Logger) *UseCase {
	return &UseCase{
		bookingRepo:  bookingRepo,
		stations:     stations,
		metrics:      metrics,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// WithTimeProvider подменяет источник времени
func (uc *UseCase) WithTimeProvider(tp TimeProvider) *UseCase {
	uc.timeProvider = tp
	return uc
}

// Execute удаляет бронирование. Удаление окончательное и сразу освобождает гранулы.
// Станция нужна только для текста уведомления: если её нет, уведомления не отправляются.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CancelBooking: id=%s", req.BookingID)

	if req.BookingID == uuid.Nil {
		uc.observe("invalid")
		return nil, fmt.Errorf("%w: bookingId is required", ErrInvalidInput)
	}

	deleted, err := uc.bookingRepo.Delete(ctx, req.BookingID)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			uc.logger.Warn("CancelBooking: booking id=%s not found", req.BookingID)
			uc.observe("not_found")
			return nil, ErrBookingNotFound
		}
		uc.logger.Error("CancelBooking: failed to delete booking id=%s: %v", req.BookingID, err)
		uc.observe("error")
		return nil, fmt.Errorf("%w: failed to delete booking: %w", ErrInternal, err)
	}

	uc.logger.Info("CancelBooking: deleted booking id=%s station=%d %s %s",
		deleted.ID, deleted.StationID, deleted.BookingDate, deleted.BookingTime)
	uc.observe("success")

	resp := &Response{Booking: deleted}

	station, err := uc.stations.GetByID(ctx, deleted.StationID)
	switch {
	case errors.Is(err, stationRepo.ErrStationNotFound):
		uc.logger.Warn("CancelBooking: station id=%d not found, notifications skipped", deleted.StationID)
		return resp, nil
	case err != nil:
		uc.logger.Error("CancelBooking: failed to get station id=%d, notifications skipped: %v", deleted.StationID, err)
		return resp, nil
	}

	resp.Station = station
	resp.Outbox.NotificationWarning = domain.WarnCancelNotification
	resp.Outbox.AddNotification(domain.CancelledNotification(deleted, station, uc.timeProvider.Now()))
	resp.Outbox.AddEmail(domain.CancellationEmail(deleted, station))

	return resp, nil
}

func (uc *UseCase) observe(result string) {
	if uc.metrics != nil {
		uc.metrics.ObserveBooking(operation, result)
	}
}
