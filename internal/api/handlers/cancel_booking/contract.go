package cancel_booking

import (
	"context"

	"github.com/m04kA/chargemate-booking/internal/domain"
	cancelBooking "github.com/m04kA/chargemate-booking/internal/usecase/cancel_booking"
)

type CancelBookingUseCase interface {
	Execute(ctx context.Context, req *cancelBooking.Request) (*cancelBooking.Response, error)
}

type Dispatcher interface {
	Dispatch(ctx context.Context, outbox domain.Outbox) []string
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
