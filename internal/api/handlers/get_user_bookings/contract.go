package get_user_bookings

import (
	"context"

	"github.com/m04kA/chargemate-booking/internal/domain"
	"github.com/m04kA/chargemate-booking/internal/service/bookings/models"
)

type BookingService interface {
	ListMyBookings(ctx context.Context, actor domain.Actor) (*models.BookingListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
