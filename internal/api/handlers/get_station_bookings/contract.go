package get_station_bookings

import (
	"context"

	"github.com/m04kA/chargemate-booking/internal/service/bookings/models"
	"github.com/m04kA/chargemate-booking/pkg/types"
)

type BookingService interface {
	ListStationBookings(ctx context.Context, stationID int64, date types.Date) (*models.BookingListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
