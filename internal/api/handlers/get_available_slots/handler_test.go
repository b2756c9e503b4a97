package get_available_slots

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

	getAvailableSlots "github.com/m04kA/chargemate-booking/internal/usecase/get_available_slots"
	"github.com/m04kA/chargemate-booking/pkg/types"
)

type mockUseCase struct {
	mock.Mock
}

func (m *mockUseCase) Execute(ctx context.Context, req *getAvailableSlots.Request) (*getAvailableSlots.Response, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*getAvailableSlots.Response), args.Error(1)
}

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

func serve(h *Handler, target string) *httptest.ResponseRecorder {
	r := mux.NewRouter()
	r.HandleFunc("/api/v1/stations/{stationId}/slots", h.Handle).Methods(http.MethodGet)

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, target, nil))
	return rec
}

func TestHandleSuccess(t *testing.T) {
	date := types.NewDate(2030, 6, 1)

	uc := new(mockUseCase)
	uc.On("Execute", mock.Anything, &getAvailableSlots.Request{StationID: 7, Date: date}).Return(&getAvailableSlots.Response{
		StationID: 7,
		Date:      date,
		Slots: []getAvailableSlots.Slot{
			{StartTime: 0, BookedSpots: 0, AvailableSpots: 2, TotalSpots: 2, Bookable: true},
			{StartTime: 30, BookedSpots: 2, AvailableSpots: 0, TotalSpots: 2, Bookable: false},
		},
	}, nil)

	rec := serve(NewHandler(uc, nopLogger{}), "/api/v1/stations/7/slots?date=2030-06-01")
	require.Equal(t, http.StatusOK, rec.Code)

	var resp AvailableSlotsResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, int64(7), resp.StationID)
	assert.Equal(t, "2030-06-01", resp.Date)
	require.Len(t, resp.Slots, 2)
	assert.Equal(t, AvailableSlot{Time: "00:30", BookedSpots: 2, AvailableSpots: 0, TotalSpots: 2}, resp.Slots[1])
}

func TestHandleErrors(t *testing.T) {
	tests := []struct {
		name       string
		target     string
		err        error
		wantStatus int
	}{
		{name: "bad station", target: "/api/v1/stations/x/slots?date=2030-06-01", wantStatus: http.StatusBadRequest},
		{name: "missing date", target: "/api/v1/stations/7/slots", wantStatus: http.StatusBadRequest},
		{name: "bad date", target: "/api/v1/stations/7/slots?date=2030/06/01", wantStatus: http.StatusBadRequest},
		{name: "station missing", target: "/api/v1/stations/7/slots?date=2030-06-01", err: getAvailableSlots.ErrStationNotFound, wantStatus: http.StatusNotFound},
		{name: "internal", target: "/api/v1/stations/7/slots?date=2030-06-01", err: getAvailableSlots.ErrInternal, wantStatus: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := new(mockUseCase)
			if tt.err != nil {
				uc.On("Execute", mock.Anything, mock.Anything).Return(nil, tt.err)
			}

			rec := serve(NewHandler(uc, nopLogger{}), tt.target)
			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}
