package check_availability

import (
	"errors"
	"fmt"
	"net/url"
	"strconv"

	"github.com/m04kA/chargemate-booking/internal/domain"
	checkAvailability "github.com/m04kA/chargemate-booking/internal/usecase/check_availability"
	"github.com/m04kA/chargemate-booking/pkg/types"
)

var (
	errInvalidStationID = errors.New("invalid stationId")
	errInvalidDuration  = errors.New("invalid duration")
)

// AvailabilityResponse HTTP response model
type AvailabilityResponse struct {
	StationID      int64  `json:"stationId"`
	BookingDate    string `json:"bookingDate"`
	BookingTime    string `json:"bookingTime"`
	Duration       int    `json:"duration"`
	TotalSlots     int    `json:"totalSlots"`
	AvailableSlots int    `json:"availableSlots"`
	IsFull         bool   `json:"isFull"`
}

// ToUseCaseRequest разбирает query параметры stationId, bookingDate, bookingTime, duration
func ToUseCaseRequest(q url.Values) (*checkAvailability.Request, error) {
	stationID, err := strconv.ParseInt(q.Get("stationId"), 10, 64)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", errInvalidStationID, err)
	}

	date, err := types.ParseDate(q.Get("bookingDate"))
	if err != nil {
		return nil, fmt.Errorf("bookingDate: %w", err)
	}

	tod, err := types.ParseTimeOfDay(q.Get("bookingTime"))
	if err != nil {
		return nil, fmt.Errorf("bookingTime: %w", err)
	}

	var duration int
	if raw := q.Get("duration"); raw != "" {
		duration, err = strconv.Atoi(raw)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", errInvalidDuration, err)
		}
	}

	return &checkAvailability.Request{
		StationID:       stationID,
		BookingDate:     date,
		BookingTime:     tod,
		DurationMinutes: duration,
	}, nil
}

// FromDomain конвертирует результат в HTTP response
func FromDomain(a *domain.Availability) *AvailabilityResponse {
	return &AvailabilityResponse{
		StationID:      a.StationID,
		BookingDate:    a.BookingDate.String(),
		BookingTime:    a.BookingTime.String(),
		Duration:       a.Duration,
		TotalSlots:     a.TotalSlots,
		AvailableSlots: a.AvailableSlots,
		IsFull:         a.IsFull(),
	}
}
