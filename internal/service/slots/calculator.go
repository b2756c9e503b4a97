package slots

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/m04kA/chargemate-booking/internal/domain"
	"github.com/m04kA/chargemate-booking/pkg/types"
)

// Calculator считает занятость гранул станции по реестру бронирований
type Calculator struct {
	ledger BookingLister
}

// NewCalculator создает калькулятор
func NewCalculator(ledger BookingLister) *Calculator {
	return &Calculator{ledger: ledger}
}

// SpanCheck результат проверки интервала
type SpanCheck struct {
	Granules []domain.GranuleOccupancy
	// MaxBooked максимум занятых постов среди гранул интервала
	MaxBooked int
	// Available свободно постов на весь интервал: max(0, Quantity - MaxBooked)
	Available int
	// FirstFull первая гранула, где занятость достигла Quantity
	FirstFull *types.TimeOfDay
}

// HasCapacity можно ли добавить ещё одно бронирование на интервал
func (s *SpanCheck) HasCapacity() bool {
	return s.FirstFull == nil
}

// CountAt число конфликтующих бронирований: занимающих гранулу g, без учёта exclude
func CountAt(bookings []*domain.Booking, g types.TimeOfDay, exclude *uuid.UUID) int {
	count := 0
	for _, b := range bookings {
		if exclude != nil && b.ID == *exclude {
			continue
		}
		if b.Occupies(g) {
			count++
		}
	}
	return count
}

// Check проверяет интервал [start, start+duration) на станции.
// Бронирования дня читаются одним запросом, подсчёт идёт в памяти.
func (c *Calculator) Check(ctx context.Context, station *domain.Station, date types.Date, start types.TimeOfDay, durationMinutes int, exclude *uuid.UUID) (*SpanCheck, error) {
	granules, err := ComputeGranules(start, durationMinutes)
	if err != nil {
		return nil, err
	}
	if CrossesMidnight(start, durationMinutes) {
		return nil, fmt.Errorf("%w: %s + %d min", ErrCrossesMidnight, start, durationMinutes)
	}

	bookings, err := c.ledger.GetByStationAndDate(ctx, station.ID, date)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrLedger, err)
	}

	result := &SpanCheck{Granules: make([]domain.GranuleOccupancy, 0, len(granules))}
	for _, g := range granules {
		occ := domain.GranuleOccupancy{Time: g, Booked: CountAt(bookings, g, exclude), Total: station.Quantity}
		result.Granules = append(result.Granules, occ)

		if occ.Booked > result.MaxBooked {
			result.MaxBooked = occ.Booked
		}
		if result.FirstFull == nil && occ.Booked >= station.Quantity {
			full := g
			result.FirstFull = &full
		}
	}

	result.Available = station.Quantity - result.MaxBooked
	if result.Available < 0 {
		result.Available = 0
	}
	return result, nil
}

// AvailableSlots свободно постов на весь интервал
func (c *Calculator) AvailableSlots(ctx context.Context, station *domain.Station, date types.Date, start types.TimeOfDay, durationMinutes int) (int, error) {
	check, err := c.Check(ctx, station, date, start, durationMinutes, nil)
	if err != nil {
		return 0, err
	}
	return check.Available, nil
}

// DayOccupancy занятость всех 48 гранул дня
func (c *Calculator) DayOccupancy(ctx context.Context, station *domain.Station, date types.Date) ([]domain.GranuleOccupancy, error) {
	bookings, err := c.ledger.GetByStationAndDate(ctx, station.ID, date)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrLedger, err)
	}

	day := DayGranules()
	result := make([]domain.GranuleOccupancy, 0, len(day))
	for _, g := range day {
		result = append(result, domain.GranuleOccupancy{Time: g, Booked: CountAt(bookings, g, nil), Total: station.Quantity})
	}
	return result, nil
}
