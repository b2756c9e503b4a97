package create_booking

import (
	"github.com/m04kA/chargemate-booking/internal/domain"
	"github.com/m04kA/chargemate-booking/pkg/types"
)

// Request модель запроса на создание бронирования
type Request struct {
	CustomerName    string
	CustomerEmail   string
	StationID       int64
	DurationMinutes int // 0 означает длительность по умолчанию
	BookingDate     types.Date
	BookingTime     types.TimeOfDay
	Vehicle         domain.Vehicle
	PaymentMethod   *string
	PaymentVerified bool
}

// Response созданное бронирование и побочные эффекты для доставки
type Response struct {
	Booking *domain.Booking
	Station *domain.Station
	Outbox  domain.Outbox
}
