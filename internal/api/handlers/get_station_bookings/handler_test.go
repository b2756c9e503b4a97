package get_station_bookings

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/chargemate-booking/internal/service/bookings"
	"github.com/m04kA/chargemate-booking/internal/service/bookings/models"
	"github.com/m04kA/chargemate-booking/pkg/types"
)

type mockService struct {
	mock.Mock
}

func (m *mockService) ListStationBookings(ctx context.Context, stationID int64, date types.Date) (*models.BookingListResponse, error) {
	args := m.Called(ctx, stationID, date)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.BookingListResponse), args.Error(1)
}

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

func serve(h *Handler, target string) *httptest.ResponseRecorder {
	r := mux.NewRouter()
	r.HandleFunc("/api/v1/stations/{stationId}/bookings", h.Handle).Methods(http.MethodGet)

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, target, nil))
	return rec
}

func TestHandle(t *testing.T) {
	svc := new(mockService)
	svc.On("ListStationBookings", mock.Anything, int64(7), types.NewDate(2030, 6, 1)).Return(&models.BookingListResponse{
		Bookings: []models.BookingResponse{{ID: "b1", BookingTime: "09:00"}, {ID: "b2", BookingTime: "10:30"}},
	}, nil)

	rec := serve(NewHandler(svc, nopLogger{}), "/api/v1/stations/7/bookings?date=2030-06-01")
	require.Equal(t, http.StatusOK, rec.Code)

	var resp models.BookingListResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Len(t, resp.Bookings, 2)
	assert.Equal(t, "09:00", resp.Bookings[0].BookingTime)
}

func TestHandleErrors(t *testing.T) {
	tests := []struct {
		name       string
		target     string
		err        error
		wantStatus int
	}{
		{name: "bad station", target: "/api/v1/stations/x/bookings?date=2030-06-01", wantStatus: http.StatusBadRequest},
		{name: "bad date", target: "/api/v1/stations/7/bookings?date=1-6-2030", wantStatus: http.StatusBadRequest},
		{name: "not found", target: "/api/v1/stations/7/bookings?date=2030-06-01", err: bookings.ErrStationNotFound, wantStatus: http.StatusNotFound},
		{name: "internal", target: "/api/v1/stations/7/bookings?date=2030-06-01", err: bookings.ErrInternal, wantStatus: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := new(mockService)
			if tt.err != nil {
				svc.On("ListStationBookings", mock.Anything, mock.Anything, mock.Anything).Return(nil, tt.err)
			}
			assert.Equal(t, tt.wantStatus, serve(NewHandler(svc, nopLogger{}), tt.target).Code)
		})
	}
}
