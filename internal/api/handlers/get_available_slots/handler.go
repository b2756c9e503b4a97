package get_available_slots

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/chargemate-booking/internal/api/handlers"
	getAvailableSlots "github.com/m04kA/chargemate-booking/internal/usecase/get_available_slots"
)

const (
	msgInvalidStationID = "Invalid station ID"
	msgMissingDate      = "date is required"
	msgInvalidDate      = "Invalid date, expected YYYY-MM-DD"
	msgStationNotFound  = "Station not found"
)

type Handler struct {
	useCase GetAvailableSlotsUseCase
	logger  Logger
}

func NewHandler(useCase GetAvailableSlotsUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/stations/{stationId}/slots?date=YYYY-MM-DD
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	stationID, err := strconv.ParseInt(mux.Vars(r)["stationId"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /stations/{id}/slots - Invalid station ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidStationID)
		return
	}

	dateStr := r.URL.Query().Get("date")
	if dateStr == "" {
		h.logger.Warn("GET /stations/{id}/slots - Missing date")
		handlers.RespondBadRequest(w, msgMissingDate)
		return
	}

	useCaseReq, err := ToUseCaseRequest(stationID, dateStr)
	if err != nil {
		h.logger.Warn("GET /stations/{id}/slots - Invalid date format: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, getAvailableSlots.ErrStationNotFound):
			h.logger.Warn("GET /stations/{id}/slots - Station not found: station_id=%d", stationID)
			handlers.RespondNotFound(w, msgStationNotFound)

		case errors.Is(err, getAvailableSlots.ErrInvalidInput):
			handlers.RespondBadRequest(w, handlers.Detail(err, getAvailableSlots.ErrInvalidInput))

		default:
			h.logger.Error("GET /stations/{id}/slots - Failed to get slots: station_id=%d, error=%v", stationID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /stations/{id}/slots - Slots retrieved successfully: station_id=%d, date=%s, slots_count=%d",
		stationID, dateStr, len(result.Slots))
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
