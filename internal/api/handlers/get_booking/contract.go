package get_booking

import (
	"context"

	"github.com/google/uuid"

	"github.com/m04kA/chargemate-booking/internal/domain"
	"github.com/m04kA/chargemate-booking/internal/service/bookings/models"
)

type BookingService interface {
	GetByID(ctx context.Context, id uuid.UUID, actor domain.Actor) (*models.BookingResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
