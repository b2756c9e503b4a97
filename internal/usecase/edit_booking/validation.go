package edit_booking

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/m04kA/chargemate-booking/internal/domain"
)

// validateRequest проверяет формат патча до обращения к реестру
func validateRequest(req *Request, allowed []int) error {
	if req.BookingID == uuid.Nil {
		return fmt.Errorf("%w: bookingId is required", ErrInvalidInput)
	}

	p := req.Patch
	if p.BookingDate != nil && p.BookingDate.IsZero() {
		return fmt.Errorf("%w: bookingDate must not be empty", ErrInvalidInput)
	}
	if p.BookingTime != nil && !p.BookingTime.IsAligned(domain.GranuleMinutes) {
		return fmt.Errorf("%w: bookingTime %s must fall on a 30-minute boundary", ErrInvalidInput, *p.BookingTime)
	}
	if p.DurationMinutes != nil && !isAllowedDuration(*p.DurationMinutes, allowed) {
		return fmt.Errorf("%w: timeSlot %d is not one of %v", ErrInvalidInput, *p.DurationMinutes, allowed)
	}
	if p.Vehicle != nil {
		if !p.Vehicle.HasRequiredFields() {
			return ErrVehicleRequired
		}
		if field, limit := p.Vehicle.OversizedField(); field != "" {
			return fmt.Errorf("%w: vehicle %s must be at most %d characters", ErrInvalidInput, field, limit)
		}
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
