package bookings

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
	bookingRepo "github.com/m04kA/chargemate-booking/internal/infra/storage/booking"
	stationRepo "github.com/m04kA/chargemate-booking/internal/infra/storage/station"
	"github.com/m04kA/chargemate-booking/pkg/types"
)

type mockBookings struct {
	mock.Mock
}

func (m *mockBookings) GetByID(ctx context.Context, id uuid.UUID) (*domain.Booking, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Booking), args.Error(1)
}

func (m *mockBookings) GetByCustomerEmail(ctx context.Context, email string) ([]*domain.Booking, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Booking), args.Error(1)
}

func (m *mockBookings) GetByStationAndDate(ctx context.Context, stationID int64, date types.Date) ([]*domain.Booking, error) {
	args := m.Called(ctx, stationID, date)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Booking), args.Error(1)
}

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

func (m *mockStations) List(ctx context.Context) ([]domain.Station, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Station), args.Error(1)
}

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

var testDate = types.NewDate(2025, time.June, 1)

func ownedBooking() *domain.Booking {
	return &domain.Booking{
		ID:              uuid.New(),
		StationID:       7,
		CustomerEmail:   "Asha@Example.com",
		BookingDate:     testDate,
		BookingTime:     types.TimeOfDay(600),
		DurationMinutes: 60,
		Vehicle:         domain.Vehicle{Name: "Nexon EV", Number: "KA01", ConnectorType: "Type 2"},
	}
}

func TestGetByID(t *testing.T) {
	ctx := context.Background()
	b := ownedBooking()
	missing := uuid.New()

	repo := new(mockBookings)
	repo.On("GetByID", ctx, b.ID).Return(b, nil)
	repo.On("GetByID", ctx, missing).Return(nil, bookingRepo.ErrBookingNotFound)

	svc := NewService(repo, new(mockStations), nopLogger{})

	resp, err := svc.GetByID(ctx, b.ID, domain.Actor{Email: "asha@example.com"})
	require.NoError(t, err)
	assert.Equal(t, b.ID.String(), resp.ID)
	assert.Equal(t, "2025-06-01", resp.BookingDate)
	assert.Equal(t, "10:00", resp.BookingTime)
	assert.Equal(t, 60, resp.TimeSlot)
	assert.Equal(t, "Type 2", resp.Vehicle.ConnectorType)

	_, err = svc.GetByID(ctx, b.ID, domain.Actor{Email: "other@example.com"})
	assert.ErrorIs(t, err, ErrAccessDenied)

	_, err = svc.GetByID(ctx, b.ID, domain.Actor{Email: "root@example.com", Role: domain.RoleAdmin})
	assert.NoError(t, err)

	_, err = svc.GetByID(ctx, missing, domain.Actor{Email: "asha@example.com"})
	assert.ErrorIs(t, err, ErrBookingNotFound)
}

func TestListMyBookings(t *testing.T) {
	ctx := context.Background()
	repo := new(mockBookings)
	repo.On("GetByCustomerEmail", ctx, "asha@example.com").Return([]*domain.Booking{ownedBooking(), ownedBooking()}, nil)

	svc := NewService(repo, new(mockStations), nopLogger{})

	resp, err := svc.ListMyBookings(ctx, domain.Actor{Email: "asha@example.com"})
	require.NoError(t, err)
	assert.Len(t, resp.Bookings, 2)

	_, err = svc.ListMyBookings(ctx, domain.Actor{UserID: "u1"})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestListMyBookingsEmpty(t *testing.T) {
	ctx := context.Background()
	repo := new(mockBookings)
	repo.On("GetByCustomerEmail", ctx, "new@example.com").Return([]*domain.Booking(nil), nil)

	resp, err := NewService(repo, new(mockStations), nopLogger{}).ListMyBookings(ctx, domain.Actor{Email: "new@example.com"})
	require.NoError(t, err)
	assert.NotNil(t, resp.Bookings)
	assert.Empty(t, resp.Bookings)
}

func TestListStationBookings(t *testing.T) {
	ctx := context.Background()

	repo := new(mockBookings)
	repo.On("GetByStationAndDate", ctx, int64(7), testDate).Return([]*domain.Booking{ownedBooking()}, nil)
	stations := new(mockStations)
	stations.On("GetByID", ctx, int64(7)).Return(&domain.Station{ID: 7}, nil)
	stations.On("GetByID", ctx, int64(404)).Return(nil, stationRepo.ErrStationNotFound)

	svc := NewService(repo, stations, nopLogger{})

	resp, err := svc.ListStationBookings(ctx, 7, testDate)
	require.NoError(t, err)
	assert.Len(t, resp.Bookings, 1)

	_, err = svc.ListStationBookings(ctx, 404, testDate)
	assert.ErrorIs(t, err, ErrStationNotFound)

	_, err = svc.ListStationBookings(ctx, 7, types.Date{})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestConnectorTypes(t *testing.T) {
	ctx := context.Background()
	stations := new(mockStations)
	stations.On("List", ctx).Return([]domain.Station{
		{ID: 1, ConnectionType: "Type 2"},
		{ID: 2, ConnectionType: "CCS"},
		{ID: 3, ConnectionType: "Type 2"},
	}, nil).Once()
	stations.On("List", ctx).Return(nil, errors.New("db down")).Once()

	svc := NewService(new(mockBookings), stations, nopLogger{})
	assert.Empty(t, svc.ConnectorTypes().ConnectorTypes)

	require.NoError(t, svc.RefreshConnectors(ctx))
	assert.Equal(t, []string{"Type 2", "CCS"}, svc.ConnectorTypes().ConnectorTypes)

	// при ошибке остаётся прежний справочник
	assert.ErrorIs(t, svc.RefreshConnectors(ctx), ErrInternal)
	assert.Equal(t, []string{"Type 2", "CCS"}, svc.ConnectorTypes().ConnectorTypes)
}
