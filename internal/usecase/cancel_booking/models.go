package cancel_booking

import (
	"github.com/google/uuid"

	"github.com/m04kA/chargemate-booking/internal/domain"
)

// Request модель запроса на отмену
type Request struct {
	BookingID uuid.UUID
}

// Response удалённое бронирование и побочные эффекты.
// Station равен nil, если станция уже исчезла из справочника.
type Response struct {
	Booking *domain.Booking
	Station *domain.Station
	Outbox  domain.Outbox
}
