package create_booking

import (
	"fmt"

	"github.com/m04kA/chargemate-booking/internal/service/bookings/models"
	createBooking "github.com/m04kA/chargemate-booking/internal/usecase/create_booking"
	"github.com/m04kA/chargemate-booking/pkg/types"
)

// CreateBookingRequest HTTP request model
type CreateBookingRequest struct {
	CustomerName    string            `json:"customerName"`
	CustomerEmail   string            `json:"customerEmail"`
	StationID       int64             `json:"stationId"`
	TimeSlot        int               `json:"timeSlot"`    // длительность в минутах, 0 = 30
	BookingDate     string            `json:"bookingDate"` // "2025-06-01"
	BookingTime     string            `json:"bookingTime"` // "10:00"
	Vehicle         models.VehicleDTO `json:"vehicle"`
	PaymentMethod   *string           `json:"paymentMethod,omitempty"`
	PaymentVerified bool              `json:"paymentVerified"`
}

// BookingResponse HTTP response model
type BookingResponse struct {
	Message string                  `json:"message"`
	Booking *models.BookingResponse `json:"booking"`
	Warning *string                 `json:"warning"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateBookingRequest) ToUseCaseRequest() (*createBooking.Request, error) {
	bookingDate, err := types.ParseDate(r.BookingDate)
	if err != nil {
		return nil, fmt.Errorf("bookingDate: %w", err)
	}

	bookingTime, err := types.ParseTimeOfDay(r.BookingTime)
	if err != nil {
		return nil, fmt.Errorf("bookingTime: %w", err)
	}

	return &createBooking.Request{
		CustomerName:    r.CustomerName,
		CustomerEmail:   r.CustomerEmail,
		StationID:       r.StationID,
		DurationMinutes: r.TimeSlot,
		BookingDate:     bookingDate,
		BookingTime:     bookingTime,
		Vehicle:         r.Vehicle.ToDomain(),
		PaymentMethod:   r.PaymentMethod,
		PaymentVerified: r.PaymentVerified,
	}, nil
}
