package get_available_slots

import (
	"fmt"

	getAvailableSlots "github.com/m04kA/chargemate-booking/internal/usecase/get_available_slots"
	"github.com/m04kA/chargemate-booking/pkg/types"
)

// AvailableSlotsResponse HTTP response model
type AvailableSlotsResponse struct {
	StationID int64           `json:"stationId"`
	Date      string          `json:"date"`
	Slots     []AvailableSlot `json:"slots"`
}

// AvailableSlot модель 30-минутной гранулы
type AvailableSlot struct {
	Time           string `json:"time"`
	BookedSpots    int    `json:"booked"`
	AvailableSpots int    `json:"available"`
	TotalSpots     int    `json:"total"`
	Bookable       bool   `json:"bookable"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getAvailableSlots.Response) *AvailableSlotsResponse {
	slots := make([]AvailableSlot, len(resp.Slots))
	for i, slot := range resp.Slots {
		slots[i] = AvailableSlot{
			Time:           slot.StartTime.String(),
			BookedSpots:    slot.BookedSpots,
			AvailableSpots: slot.AvailableSpots,
			TotalSpots:     slot.TotalSpots,
			Bookable:       slot.Bookable,
		}
	}

	return &AvailableSlotsResponse{
		StationID: resp.StationID,
		Date:      resp.Date.String(),
		Slots:     slots,
	}
}

// ToUseCaseRequest создает запрос use case из параметров запроса
func ToUseCaseRequest(stationID int64, dateStr string) (*getAvailableSlots.Request, error) {
	date, err := types.ParseDate(dateStr)
	if err != nil {
		return nil, fmt.Errorf("date: %w", err)
	}

	return &getAvailableSlots.Request{
		StationID: stationID,
		Date:      date,
	}, nil
}
