package export_occupancy

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/chargemate-booking/internal/api/handlers"
	exportOccupancy "github.com/m04kA/chargemate-booking/internal/usecase/export_occupancy"
	"github.com/m04kA/chargemate-booking/pkg/types"
)

const (
	msgInvalidStationID = "Invalid station ID"
	msgInvalidDate      = "Invalid date, expected YYYY-MM-DD"
	msgStationNotFound  = "Station not found"
)

type Handler struct {
	useCase ExportOccupancyUseCase
	logger  Logger
}

func NewHandler(useCase ExportOccupancyUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/stations/{stationId}/occupancy.xlsx?date=YYYY-MM-DD
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	stationID, err := strconv.ParseInt(mux.Vars(r)["stationId"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /stations/{id}/occupancy.xlsx - Invalid station ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidStationID)
		return
	}

	date, err := types.ParseDate(r.URL.Query().Get("date"))
	if err != nil {
		h.logger.Warn("GET /stations/{id}/occupancy.xlsx - Invalid date: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &exportOccupancy.Request{StationID: stationID, Date: date})
	if err != nil {
		switch {
		case errors.Is(err, exportOccupancy.ErrStationNotFound):
			h.logger.Warn("GET /stations/{id}/occupancy.xlsx - Station not found: station_id=%d", stationID)
			handlers.RespondNotFound(w, msgStationNotFound)

		case errors.Is(err, exportOccupancy.ErrInvalidInput):
			handlers.RespondBadRequest(w, handlers.Detail(err, exportOccupancy.ErrInvalidInput))

		default:
			h.logger.Error("GET /stations/{id}/occupancy.xlsx - Failed to export: station_id=%d, error=%v", stationID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	w.Header().Set("Content-Type", exportOccupancy.ContentType)
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", result.FileName))
	w.Header().Set("Content-Length", strconv.Itoa(len(result.Content)))
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(result.Content); err != nil {
		h.logger.Warn("GET /stations/{id}/occupancy.xlsx - Failed to write response: %v", err)
		return
	}

	h.logger.Info("GET /stations/{id}/occupancy.xlsx - Exported: station_id=%d, date=%s, bytes=%d",
		stationID, date, len(result.Content))
}
