package edit_booking

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/m04kA/chargemate-booking/internal/domain"
	"github.com/m04kA/chargemate-booking/internal/service/bookings/models"
	editBooking "github.com/m04kA/chargemate-booking/internal/usecase/edit_booking"
	"github.com/m04kA/chargemate-booking/pkg/types"
)

// EditBookingRequest HTTP request model. Отсутствующие поля не меняются.
type EditBookingRequest struct {
	BookingDate *string            `json:"bookingDate,omitempty"`
	BookingTime *string            `json:"bookingTime,omitempty"`
	TimeSlot    *int               `json:"timeSlot,omitempty"`
	Vehicle     *models.VehicleDTO `json:"vehicle,omitempty"`
}

// BookingResponse HTTP response model
type BookingResponse struct {
	Message string                  `json:"message"`
	Booking *models.BookingResponse `json:"booking"`
	Warning *string                 `json:"warning"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *EditBookingRequest) ToUseCaseRequest(id uuid.UUID) (*editBooking.Request, error) {
	var patch domain.BookingPatch

	if r.BookingDate != nil {
		date, err := types.ParseDate(*r.BookingDate)
		if err != nil {
			return nil, fmt.Errorf("bookingDate: %w", err)
		}
		patch.BookingDate = &date
	}

	if r.BookingTime != nil {
		tod, err := types.ParseTimeOfDay(*r.BookingTime)
		if err != nil {
			return nil, fmt.Errorf("bookingTime: %w", err)
		}
		patch.BookingTime = &tod
	}

	patch.DurationMinutes = r.TimeSlot

	if r.Vehicle != nil {
		vehicle := r.Vehicle.ToDomain()
		patch.Vehicle = &vehicle
	}

	return &editBooking.Request{BookingID: id, Patch: patch}, nil
}
