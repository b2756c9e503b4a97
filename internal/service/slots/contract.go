package slots

import (
	"context"

	"github.com/m04kA/chargemate-booking/internal/domain"
	"github.com/m04kA/chargemate-booking/pkg/types"
)

// BookingLister источник бронирований станции за день.
// Внутри транзакции реализация блокирует прочитанные строки (FOR UPDATE).
type BookingLister interface {
	GetByStationAndDate(ctx context.Context, stationID int64, date types.Date) ([]*domain.Booking, error)
}
