package domain

import (
	"fmt"

	"github.com/m04kA/chargemate-booking/pkg/types"
)

// GranuleOccupancy занятость одной 30-минутной гранулы станции
type GranuleOccupancy struct {
	Time   types.TimeOfDay
	Booked int
	Total  int
}

// Available число свободных постов (не меньше нуля)
func (g *GranuleOccupancy) Available() int {
	if g.Booked >= g.Total {
		return 0
	}
	return g.Total - g.Booked
}

// IsFull returns true if the granule has no free posts
func (g *GranuleOccupancy) IsFull() bool {
	return g.Available() == 0
}

// OccupancyRate returns the occupancy rate as a percentage (0-100)
func (g *GranuleOccupancy) OccupancyRate() float64 {
	if g.Total == 0 {
		return 0
	}
	booked := g.Booked
	if booked > g.Total {
		booked = g.Total
	}
	return float64(booked) / float64(g.Total) * 100
}

// Availability доступность станции на интервал
type Availability struct {
	StationID      int64
	BookingDate    types.Date
	BookingTime    types.TimeOfDay
	Duration       int
	TotalSlots     int
	AvailableSlots int
}

// IsFull нет ни одного свободного поста на весь интервал
func (a *Availability) IsFull() bool {
	return a.AvailableSlots == 0
}

// SlotUnavailableError гранула, на которой закончились свободные посты
type SlotUnavailableError struct {
	Time types.TimeOfDay
}

func (e *SlotUnavailableError) Error() string {
	return fmt.Sprintf("No available slots at %s", e.Time)
}
