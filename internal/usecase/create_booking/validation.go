package create_booking

import (
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/m04kA/chargemate-booking/internal/domain"
)

// validateRequest проверяет обязательные поля в том порядке, в котором о них сообщается клиенту
func validateRequest(req *Request, now time.Time, loc *time.Location, allowed []int) error {
	if req.BookingDate.IsZero() {
		return fmt.Errorf("%w: bookingDate is required", ErrInvalidInput)
	}

	if !req.BookingTime.IsAligned(domain.GranuleMinutes) {
		return fmt.Errorf("%w: bookingTime %s must fall on a 30-minute boundary", ErrInvalidInput, req.BookingTime)
	}

	if !req.BookingDate.At(req.BookingTime, loc).After(now) {
		return ErrPastBooking
	}

	if strings.TrimSpace(req.CustomerEmail) == "" {
		return ErrCustomerEmailRequired
	}

	if strings.TrimSpace(req.CustomerName) == "" {
		return ErrCustomerNameRequired
	}
	if utf8.RuneCountInString(req.CustomerName) > domain.MaxCustomerNameLength {
		return fmt.Errorf("%w: customerName must be at most %d characters", ErrInvalidInput, domain.MaxCustomerNameLength)
	}

	if !req.Vehicle.HasRequiredFields() {
		return ErrVehicleRequired
	}
	if err := validateVehicleLengths(req.Vehicle); err != nil {
		return err
	}

	if req.StationID <= 0 {
		return fmt.Errorf("%w: stationId must be positive", ErrInvalidInput)
	}

	if !isAllowedDuration(req.DurationMinutes, allowed) {
		return fmt.Errorf("%w: timeSlot %d is not one of %v", ErrInvalidInput, req.DurationMinutes, allowed)
	}

	return nil
}

func validateVehicleLengths(v domain.Vehicle) error {
	if field, limit := v.OversizedField(); field != "" {
		return fmt.Errorf("%w: vehicle %s must be at most %d characters", ErrInvalidInput, field, limit)
	}
	return nil
}

func isAllowedDuration(d int, allowed []int) bool {
	for _, a := range allowed {
		if d == a {
			return true
		}
	}
	return false
}
