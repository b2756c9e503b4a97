package get_user_bookings

import (
	"errors"
	"net/http"

	"github.com/m04kA/chargemate-booking/internal/api/handlers"
	"github.com/m04kA/chargemate-booking/internal/api/middleware"
	"github.com/m04kA/chargemate-booking/internal/service/bookings"
)

const (
	msgUnauthorized = "Authentication required"
	msgMissingEmail = "Token has no email"
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

// Handle GET /api/v1/mybookings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	actor, ok := middleware.GetActor(r.Context())
	if !ok {
		h.logger.Warn("GET /mybookings - Missing actor")
		handlers.RespondUnauthorized(w, msgUnauthorized)
		return
	}

	result, err := h.service.ListMyBookings(r.Context(), actor)
	if err != nil {
		if errors.Is(err, bookings.ErrInvalidInput) {
			h.logger.Warn("GET /mybookings - Token without email: user_id=%s", actor.UserID)
			handlers.RespondBadRequest(w, msgMissingEmail)
			return
		}
		h.logger.Error("GET /mybookings - Failed to get bookings: user=%s, error=%v", actor.Email, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /mybookings - Bookings retrieved successfully: user=%s, count=%d",
		actor.Email, len(result.Bookings))
	handlers.RespondJSON(w, http.StatusOK, result.Bookings)
}
