package cancel_booking

import (
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"github.com/m04kA/chargemate-booking/internal/api/handlers"
	"github.com/m04kA/chargemate-booking/internal/service/dispatch"
	cancelBooking "github.com/m04kA/chargemate-booking/internal/usecase/cancel_booking"
)

const (
	msgSuccess          = "Booking deleted successfully"
	msgInvalidBookingID = "Invalid booking ID"
	msgNotFound         = "Booking not found"
	msgFailed           = "Failed to delete booking"
)

type Handler struct {
	useCase    CancelBookingUseCase
	dispatcher Dispatcher
	logger     Logger
}

func NewHandler(useCase CancelBookingUseCase, dispatcher Dispatcher, logger Logger) *Handler {
	return &Handler{
		useCase:    useCase,
		dispatcher: dispatcher,
		logger:     logger,
	}
}

// Handle DELETE /api/v1/bookings/{bookingId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	bookingID, err := uuid.Parse(mux.Vars(r)["bookingId"])
	if err != nil {
		h.logger.Warn("DELETE /bookings/{id} - Invalid booking ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBookingID)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &cancelBooking.Request{BookingID: bookingID})
	if err != nil {
		switch {
		case errors.Is(err, cancelBooking.ErrBookingNotFound):
			h.logger.Warn("DELETE /bookings/{id} - Booking not found: booking_id=%s", bookingID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, cancelBooking.ErrInvalidInput):
			handlers.RespondBadRequest(w, msgInvalidBookingID)

		default:
			h.logger.Error("DELETE /bookings/{id} - Failed to delete booking: booking_id=%s, error=%v", bookingID, err)
			handlers.RespondError(w, http.StatusInternalServerError, msgFailed)
		}
		return
	}

	warnings := h.dispatcher.Dispatch(r.Context(), result.Outbox)

	h.logger.Info("DELETE /bookings/{id} - Booking deleted successfully: booking_id=%s", bookingID)
	handlers.RespondJSON(w, http.StatusOK, &CancelBookingResponse{
		Message: msgSuccess,
		Warning: dispatch.Warning(warnings),
	})
}
