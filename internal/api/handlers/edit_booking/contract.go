package edit_booking

import (
	"context"

	"github.com/m04kA/chargemate-booking/internal/domain"
	editBooking "github.com/m04kA/chargemate-booking/internal/usecase/edit_booking"
)

type EditBookingUseCase interface {
	Execute(ctx context.Context, req *editBooking.Request) (*editBooking.Response, error)
}

type Dispatcher interface {
	Dispatch(ctx context.Context, outbox domain.Outbox) []string
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
