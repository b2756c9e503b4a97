package slots

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/chargemate-booking/internal/domain"
	"github.com/m04kA/chargemate-booking/pkg/types"
)

type mockLedger struct {
	mock.Mock
}

func (m *mockLedger) GetByStationAndDate(ctx context.Context, stationID int64, date types.Date) ([]*domain.Booking, error) {
	args := m.Called(ctx, stationID, date)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Booking), args.Error(1)
}

func tod(t *testing.T, s string) types.TimeOfDay {
	t.Helper()
	v, err := types.ParseTimeOfDay(s)
	require.NoError(t, err)
	return v
}

func timesOf(granules []types.TimeOfDay) []string {
	out := make([]string, 0, len(granules))
	for _, g := range granules {
		out = append(out, g.String())
	}
	return out
}

func booking(t *testing.T, start string, duration int) *domain.Booking {
	return &domain.Booking{ID: uuid.New(), StationID: 1, BookingTime: tod(t, start), DurationMinutes: duration}
}

var testDate = types.NewDate(2025, time.June, 1)

func TestComputeGranules(t *testing.T) {
	tests := []struct {
		start    string
		duration int
		want     []string
	}{
		{start: "06:00", duration: 60, want: []string{"06:00", "06:30"}},
		{start: "06:00", duration: 30, want: []string{"06:00"}},
		{start: "22:30", duration: 120, want: []string{"22:30", "23:00", "23:30", "00:00"}},
		{start: "10:00", duration: 150, want: []string{"10:00", "10:30", "11:00", "11:30", "12:00"}},
	}

	for _, tt := range tests {
		t.Run(tt.start, func(t *testing.T) {
			got, err := ComputeGranules(tod(t, tt.start), tt.duration)
			require.NoError(t, err)
			assert.Equal(t, tt.want, timesOf(got))
		})
	}
}

func TestComputeGranulesErrors(t *testing.T) {
	_, err := ComputeGranules(tod(t, "10:00"), 0)
	assert.ErrorIs(t, err, ErrInvalidDuration)

	_, err = ComputeGranules(tod(t, "10:00"), 45)
	assert.ErrorIs(t, err, ErrInvalidDuration)

	_, err = ComputeGranules(tod(t, "10:15"), 30)
	assert.ErrorIs(t, err, ErrMisalignedTime)
}

func TestCrossesMidnight(t *testing.T) {
	assert.False(t, CrossesMidnight(tod(t, "23:30"), 30))
	assert.True(t, CrossesMidnight(tod(t, "23:30"), 60))
	assert.True(t, CrossesMidnight(tod(t, "22:30"), 120))
}

func TestDayGranules(t *testing.T) {
	day := DayGranules()
	require.Len(t, day, 48)
	assert.Equal(t, "00:00", day[0].String())
	assert.Equal(t, "23:30", day[47].String())
}

func TestCountAtCountsEveryOccupiedGranule(t *testing.T) {
	long := booking(t, "10:00", 90)
	bookings := []*domain.Booking{long, booking(t, "10:30", 30)}

	assert.Equal(t, 1, CountAt(bookings, tod(t, "10:00"), nil))
	assert.Equal(t, 2, CountAt(bookings, tod(t, "10:30"), nil))
	assert.Equal(t, 1, CountAt(bookings, tod(t, "11:00"), nil))
	assert.Equal(t, 0, CountAt(bookings, tod(t, "11:30"), nil))
	assert.Equal(t, 1, CountAt(bookings, tod(t, "10:30"), &long.ID))
}

func TestCheck(t *testing.T) {
	ctx := context.Background()
	station := &domain.Station{ID: 1, Quantity: 2}

	t.Run("full granule is reported first", func(t *testing.T) {
		ledger := new(mockLedger)
		ledger.On("GetByStationAndDate", ctx, int64(1), testDate).
			Return([]*domain.Booking{booking(t, "10:00", 30), booking(t, "10:00", 30)}, nil)

		check, err := NewCalculator(ledger).Check(ctx, station, testDate, tod(t, "09:30"), 90, nil)
		require.NoError(t, err)

		assert.False(t, check.HasCapacity())
		require.NotNil(t, check.FirstFull)
		assert.Equal(t, "10:00", check.FirstFull.String())
		assert.Equal(t, 2, check.MaxBooked)
		assert.Equal(t, 0, check.Available)
		assert.Len(t, check.Granules, 3)
	})

	t.Run("non overlapping granule is free", func(t *testing.T) {
		ledger := new(mockLedger)
		ledger.On("GetByStationAndDate", ctx, int64(1), testDate).
			Return([]*domain.Booking{booking(t, "10:00", 30), booking(t, "10:00", 30)}, nil)

		check, err := NewCalculator(ledger).Check(ctx, station, testDate, tod(t, "10:30"), 30, nil)
		require.NoError(t, err)

		assert.True(t, check.HasCapacity())
		assert.Equal(t, 2, check.Available)
	})

	t.Run("excluded booking does not conflict with itself", func(t *testing.T) {
		own := booking(t, "10:00", 30)
		ledger := new(mockLedger)
		ledger.On("GetByStationAndDate", ctx, int64(1), testDate).
			Return([]*domain.Booking{own, booking(t, "10:00", 30)}, nil)

		check, err := NewCalculator(ledger).Check(ctx, station, testDate, tod(t, "10:00"), 60, &own.ID)
		require.NoError(t, err)

		assert.True(t, check.HasCapacity())
		assert.Equal(t, 1, check.Available)
	})

	t.Run("crossing midnight is rejected", func(t *testing.T) {
		ledger := new(mockLedger)

		_, err := NewCalculator(ledger).Check(ctx, station, testDate, tod(t, "23:30"), 60, nil)
		assert.ErrorIs(t, err, ErrCrossesMidnight)
		ledger.AssertNotCalled(t, "GetByStationAndDate", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("ledger error", func(t *testing.T) {
		ledger := new(mockLedger)
		ledger.On("GetByStationAndDate", ctx, int64(1), testDate).Return(nil, errors.New("db down"))

		_, err := NewCalculator(ledger).Check(ctx, station, testDate, tod(t, "10:00"), 30, nil)
		assert.ErrorIs(t, err, ErrLedger)
	})
}

func TestAvailableSlotsIsBoundedByMostContendedGranule(t *testing.T) {
	ctx := context.Background()
	station := &domain.Station{ID: 1, Quantity: 3}
	ledger := new(mockLedger)
	ledger.On("GetByStationAndDate", ctx, int64(1), testDate).
		Return([]*domain.Booking{booking(t, "10:30", 30), booking(t, "10:30", 30), booking(t, "10:00", 30)}, nil)

	calc := NewCalculator(ledger)

	first, err := calc.AvailableSlots(ctx, station, testDate, tod(t, "10:00"), 60)
	require.NoError(t, err)
	assert.Equal(t, 1, first)

	second, err := calc.AvailableSlots(ctx, station, testDate, tod(t, "10:00"), 60)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestAvailableSlotsNeverNegative(t *testing.T) {
	ctx := context.Background()
	station := &domain.Station{ID: 1, Quantity: 1}
	ledger := new(mockLedger)
	ledger.On("GetByStationAndDate", ctx, int64(1), testDate).
		Return([]*domain.Booking{booking(t, "10:00", 30), booking(t, "10:00", 30)}, nil)

	available, err := NewCalculator(ledger).AvailableSlots(ctx, station, testDate, tod(t, "10:00"), 30)
	require.NoError(t, err)
	assert.Equal(t, 0, available)
}

func TestDayOccupancy(t *testing.T) {
	ctx := context.Background()
	station := &domain.Station{ID: 1, Quantity: 2}
	ledger := new(mockLedger)
	ledger.On("GetByStationAndDate", ctx, int64(1), testDate).
		Return([]*domain.Booking{booking(t, "00:00", 60), booking(t, "23:30", 30)}, nil)

	day, err := NewCalculator(ledger).DayOccupancy(ctx, station, testDate)
	require.NoError(t, err)
	require.Len(t, day, 48)

	assert.Equal(t, 1, day[0].Booked)
	assert.Equal(t, 1, day[1].Booked)
	assert.Equal(t, 0, day[2].Booked)
	assert.Equal(t, 1, day[47].Booked)
	assert.Equal(t, 2, day[47].Total)
}
