package create_booking

import (
	"context"

	"github.com/m04kA/chargemate-booking/internal/domain"
	createBooking "github.com/m04kA/chargemate-booking/internal/usecase/create_booking"
)

type CreateBookingUseCase interface {
	Execute(ctx context.Context, req *createBooking.Request) (*createBooking.Response, error)
}

// Dispatcher доставляет уведомления и письма после записи бронирования
type Dispatcher interface {
	Dispatch(ctx context.Context, outbox domain.Outbox) []string
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
