package edit_booking

import (
	"github.com/google/uuid"

	"github.com/m04kA/chargemate-booking/internal/domain"
)

// Request модель запроса на изменение бронирования
type Request struct {
	BookingID uuid.UUID
	Patch     domain.BookingPatch
}

// Response изменённое бронирование и побочные эффекты
type Response struct {
	Booking *domain.Booking
	Station *domain.Station
	Outbox  domain.Outbox
}
