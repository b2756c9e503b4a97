package check_availability

import "github.com/m04kA/chargemate-booking/pkg/types"

// Request модель запроса доступности
type Request struct {
	StationID       int64
	BookingDate     types.Date
	BookingTime     types.TimeOfDay
	DurationMinutes int // 0 означает 30 минут
}
