package get_station_bookings

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/chargemate-booking/internal/api/handlers"
	"github.com/m04kA/chargemate-booking/internal/service/bookings"
	"github.com/m04kA/chargemate-booking/pkg/types"
)

const (
	msgInvalidStationID = "Invalid station ID"
	msgInvalidDate      = "Invalid date, expected YYYY-MM-DD"
	msgStationNotFound  = "Station not found"
)

type Handler struct {
	service BookingService
	logger  Logger
}

func NewHandler(service BookingService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/stations/{stationId}/bookings?date=YYYY-MM-DD
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	stationID, err := strconv.ParseInt(mux.Vars(r)["stationId"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /stations/{id}/bookings - Invalid station ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidStationID)
		return
	}

	date, err := types.ParseDate(r.URL.Query().Get("date"))
	if err != nil {
		h.logger.Warn("GET /stations/{id}/bookings - Invalid date: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.service.ListStationBookings(r.Context(), stationID, date)
	if err != nil {
		switch {
		case errors.Is(err, bookings.ErrStationNotFound):
			h.logger.Warn("GET /stations/{id}/bookings - Station not found: station_id=%d", stationID)
			handlers.RespondNotFound(w, msgStationNotFound)

		case errors.Is(err, bookings.ErrInvalidInput):
			handlers.RespondBadRequest(w, handlers.Detail(err, bookings.ErrInvalidInput))

		default:
			h.logger.Error("GET /stations/{id}/bookings - Failed to get bookings: station_id=%d, error=%v", stationID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /stations/{id}/bookings - Bookings retrieved successfully: station_id=%d, date=%s, count=%d",
		stationID, date, len(result.Bookings))
	handlers.RespondJSON(w, http.StatusOK, result)
}
