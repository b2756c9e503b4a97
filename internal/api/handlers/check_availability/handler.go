package check_availability

import (
	"errors"
	"net/http"

	"github.com/m04kA/chargemate-booking/internal/api/handlers"
	checkAvailability "github.com/m04kA/chargemate-booking/internal/usecase/check_availability"
	"github.com/m04kA/chargemate-booking/pkg/types"
)

const (
	msgInvalidStationID = "Invalid stationId"
	msgInvalidDate      = "Invalid bookingDate, expected YYYY-MM-DD"
	msgInvalidTime      = "Invalid bookingTime, expected HH:MM"
	msgInvalidDuration  = "Invalid duration"
	msgStationNotFound  = "Station not found"
	msgFailed           = "Failed to check availability"
)

type Handler struct {
	useCase CheckAvailabilityUseCase
	logger  Logger
}

func NewHandler(useCase CheckAvailabilityUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/availability?stationId=&bookingDate=&bookingTime=&duration=
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	useCaseReq, err := ToUseCaseRequest(r.URL.Query())
	if err != nil {
		h.logger.Warn("GET /availability - Invalid query: %v", err)
		switch {
		case errors.Is(err, errInvalidStationID):
			handlers.RespondBadRequest(w, msgInvalidStationID)
		case errors.Is(err, types.ErrInvalidDateFormat):
			handlers.RespondBadRequest(w, msgInvalidDate)
		case errors.Is(err, types.ErrInvalidTimeFormat):
			handlers.RespondBadRequest(w, msgInvalidTime)
		default:
			handlers.RespondBadRequest(w, msgInvalidDuration)
		}
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, checkAvailability.ErrStationNotFound):
			h.logger.Warn("GET /availability - Station not found: station_id=%d", useCaseReq.StationID)
			handlers.RespondNotFound(w, msgStationNotFound)

		case errors.Is(err, checkAvailability.ErrInvalidInput):
			handlers.RespondBadRequest(w, handlers.Detail(err, checkAvailability.ErrInvalidInput))

		default:
			h.logger.Error("GET /availability - Failed to check availability: station_id=%d, error=%v", useCaseReq.StationID, err)
			handlers.RespondError(w, http.StatusInternalServerError, msgFailed)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromDomain(result))
}
