package edit_booking

import (
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"github.com/m04kA/chargemate-booking/internal/api/handlers"
	"github.com/m04kA/chargemate-booking/internal/domain"
	"github.com/m04kA/chargemate-booking/internal/service/bookings/models"
	"github.com/m04kA/chargemate-booking/internal/service/dispatch"
	editBooking "github.com/m04kA/chargemate-booking/internal/usecase/edit_booking"
	"github.com/m04kA/chargemate-booking/pkg/types"
)

const (
	msgSuccess            = "Booking updated successfully"
	msgInvalidBookingID   = "Invalid booking ID"
	msgInvalidRequestBody = "Invalid request body"
	msgInvalidDate        = "Invalid bookingDate, expected YYYY-MM-DD"
	msgInvalidTime        = "Invalid bookingTime, expected HH:MM"
	msgPastBooking        = "Cannot book a slot in the past"
	msgVehicleRequired    = "Vehicle details (name, number, connectorType) are required"
	msgBookingNotFound    = "Booking not found"
	msgStationNotFound    = "Station not found"
	msgConnectorMismatch  = "Vehicle connector type does not match station connector type"
	msgSlotNotAvailable   = "No available slots"
)

type Handler struct {
	useCase    EditBookingUseCase
	dispatcher Dispatcher
	logger     Logger
}

func NewHandler(useCase EditBookingUseCase, dispatcher Dispatcher, logger Logger) *Handler {
	return &Handler{
		useCase:    useCase,
		dispatcher: dispatcher,
		logger:     logger,
	}
}

// Handle PUT /api/v1/bookings/{bookingId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	bookingID, err := uuid.Parse(mux.Vars(r)["bookingId"])
	if err != nil {
		h.logger.Warn("PUT /bookings/{id} - Invalid booking ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBookingID)
		return
	}

	var req EditBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /bookings/{id} - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest(bookingID)
	if err != nil {
		h.logger.Warn("PUT /bookings/{id} - Failed to parse request: %v", err)
		if errors.Is(err, types.ErrInvalidTimeFormat) {
			handlers.RespondBadRequest(w, msgInvalidTime)
		} else {
			handlers.RespondBadRequest(w, msgInvalidDate)
		}
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		var slotErr *domain.SlotUnavailableError

		switch {
		case errors.Is(err, editBooking.ErrBookingNotFound):
			h.logger.Warn("PUT /bookings/{id} - Booking not found: booking_id=%s", bookingID)
			handlers.RespondNotFound(w, msgBookingNotFound)

		case errors.Is(err, editBooking.ErrStationNotFound):
			h.logger.Warn("PUT /bookings/{id} - Station not found: booking_id=%s", bookingID)
			handlers.RespondNotFound(w, msgStationNotFound)

		case errors.Is(err, editBooking.ErrSlotNotAvailable):
			h.logger.Warn("PUT /bookings/{id} - Slot not available: booking_id=%s", bookingID)
			if errors.As(err, &slotErr) {
				handlers.RespondConflict(w, slotErr.Error())
			} else {
				handlers.RespondConflict(w, msgSlotNotAvailable)
			}

		case errors.Is(err, editBooking.ErrConnectorMismatch):
			h.logger.Warn("PUT /bookings/{id} - Connector mismatch: booking_id=%s", bookingID)
			handlers.RespondBadRequest(w, msgConnectorMismatch)

		case errors.Is(err, editBooking.ErrPastBooking):
			handlers.RespondBadRequest(w, msgPastBooking)

		case errors.Is(err, editBooking.ErrVehicleRequired):
			handlers.RespondBadRequest(w, msgVehicleRequired)

		case errors.Is(err, editBooking.ErrInvalidInput):
			h.logger.Warn("PUT /bookings/{id} - Invalid input: %v", err)
			handlers.RespondBadRequest(w, handlers.Detail(err, editBooking.ErrInvalidInput))

		default:
			h.logger.Error("PUT /bookings/{id} - Failed to update booking: booking_id=%s, error=%v", bookingID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	warnings := h.dispatcher.Dispatch(r.Context(), result.Outbox)

	h.logger.Info("PUT /bookings/{id} - Booking updated successfully: booking_id=%s", bookingID)
	handlers.RespondJSON(w, http.StatusOK, &BookingResponse{
		Message: msgSuccess,
		Booking: models.FromDomainBooking(result.Booking),
		Warning: dispatch.Warning(warnings),
	})
}
