package slots

import (
	"fmt"

	"github.com/m04kA/chargemate-booking/internal/domain"
	"github.com/m04kA/chargemate-booking/pkg/types"
)

// ComputeGranules возвращает начала гранул, которые занимает интервал [start, start+duration).
// Арифметика идёт по модулю суток: 22:30 + 120 даёт 22:30, 23:00, 23:30, 00:00.
// Отсечь такие интервалы должен вызывающий код (см. CrossesMidnight).
func ComputeGranules(start types.TimeOfDay, durationMinutes int) ([]types.TimeOfDay, error) {
	if durationMinutes <= 0 || durationMinutes%domain.GranuleMinutes != 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidDuration, durationMinutes)
	}
	if !start.IsAligned(domain.GranuleMinutes) {
		return nil, fmt.Errorf("%w: %s", ErrMisalignedTime, start)
	}

	count := durationMinutes / domain.GranuleMinutes
	granules := make([]types.TimeOfDay, 0, count)
	for i := 0; i < count; i++ {
		granules = append(granules, start.AddMinutes(i*domain.GranuleMinutes))
	}
	return granules, nil
}

// CrossesMidnight проверяет, что интервал заканчивается позже конца суток
func CrossesMidnight(start types.TimeOfDay, durationMinutes int) bool {
	return start.Minutes()+durationMinutes > types.MinutesPerDay
}

// DayGranules все 48 гранул суток
func DayGranules() []types.TimeOfDay {
	granules := make([]types.TimeOfDay, 0, domain.GranulesPerDay)
	for i := 0; i < domain.GranulesPerDay; i++ {
		granules = append(granules, types.TimeOfDay(i*domain.GranuleMinutes))
	}
	return granules
}
