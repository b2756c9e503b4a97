package export_occupancy

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/m04kA/chargemate-booking/internal/domain"
	stationRepo "github.com/m04kA/chargemate-booking/internal/infra/storage/station"
	"github.com/m04kA/chargemate-booking/internal/service/slots"
	"github.com/m04kA/chargemate-booking/pkg/types"
)

type mockStations struct {
	mock.Mock
}

func (m *mockStations) GetByID(ctx context.Context, id int64) (*domain.Station, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Station), args.Error(1)
}

type staticLedger []*domain.Booking

func (l staticLedger) GetByStationAndDate(ctx context.Context, stationID int64, date types.Date) ([]*domain.Booking, error) {
	return l, nil
}

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

var testDate = types.NewDate(2025, time.June, 1)

func TestExecute(t *testing.T) {
	ctx := context.Background()
	stations := new(mockStations)
	stations.On("GetByID", ctx, int64(7)).Return(&domain.Station{ID: 7, Title: "MG Road Hub", ConnectionType: "Type 2", Quantity: 2}, nil)

	ledger := staticLedger{
		{StationID: 7, BookingDate: testDate, BookingTime: types.TimeOfDay(600), DurationMinutes: 60},
		{StationID: 7, BookingDate: testDate, BookingTime: types.TimeOfDay(600), DurationMinutes: 30},
	}

	resp, err := NewUseCase(stations, slots.NewCalculator(ledger), nopLogger{}).
		Execute(ctx, &Request{StationID: 7, Date: testDate})
	require.NoError(t, err)
	assert.Equal(t, "occupancy_7_2025-06-01.xlsx", resp.FileName)

	f, err := excelize.OpenReader(bytes.NewReader(resp.Content))
	require.NoError(t, err)
	defer f.Close()

	assert.Equal(t, []string{sheetName}, f.GetSheetList())

	title, err := f.GetCellValue(sheetName, "A1")
	require.NoError(t, err)
	assert.Contains(t, title, "MG Road Hub")

	rows, err := f.GetRows(sheetName)
	require.NoError(t, err)
	require.Len(t, rows, 50)
	assert.Equal(t, headers, rows[1])

	// 10:00 это 21-я гранула, строка 3+20
	assert.Equal(t, []string{"10:00", "2", "0", "2", "100"}, rows[22])
	assert.Equal(t, []string{"10:30", "1", "1", "2", "50"}, rows[23])
	assert.Equal(t, "23:30", rows[49][0])
}

func TestExecuteErrors(t *testing.T) {
	ctx := context.Background()
	stations := new(mockStations)
	stations.On("GetByID", ctx, int64(404)).Return(nil, stationRepo.ErrStationNotFound)

	uc := NewUseCase(stations, slots.NewCalculator(staticLedger{}), nopLogger{})

	_, err := uc.Execute(ctx, &Request{StationID: 404, Date: testDate})
	assert.ErrorIs(t, err, ErrStationNotFound)

	_, err = uc.Execute(ctx, &Request{StationID: 7})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestRowColor(t *testing.T) {
	assert.Equal(t, colorFree, rowColor(domain.GranuleOccupancy{Booked: 0, Total: 2}))
	assert.Equal(t, colorPartial, rowColor(domain.GranuleOccupancy{Booked: 1, Total: 2}))
	assert.Equal(t, colorFull, rowColor(domain.GranuleOccupancy{Booked: 2, Total: 2}))
}
