package create_booking

import (
	"errors"
	"net/http"

	"github.com/m04kA/chargemate-booking/internal/api/handlers"
	"github.com/m04kA/chargemate-booking/internal/domain"
	"github.com/m04kA/chargemate-booking/internal/service/bookings/models"
	"github.com/m04kA/chargemate-booking/internal/service/dispatch"
	createBooking "github.com/m04kA/chargemate-booking/internal/usecase/create_booking"
	"github.com/m04kA/chargemate-booking/pkg/types"
)

const (
	msgSuccess            = "Booking successful"
	msgInvalidRequestBody = "Invalid request body"
	msgInvalidDate        = "Invalid bookingDate, expected YYYY-MM-DD"
	msgInvalidTime        = "Invalid bookingTime, expected HH:MM"
	msgPastBooking        = "Cannot book a slot in the past"
	msgEmailRequired      = "Customer email is required"
	msgNameRequired       = "Customer name is required"
	msgVehicleRequired    = "Vehicle details (name, number, connectorType) are required"
	msgStationNotFound    = "Station not found"
	msgConnectorMismatch  = "Vehicle connector type does not match station connector type"
	msgSlotNotAvailable   = "No available slots"
)

type Handler struct {
	useCase    CreateBookingUseCase
	dispatcher Dispatcher
	logger     Logger
}

func NewHandler(useCase CreateBookingUseCase, dispatcher Dispatcher, logger Logger) *Handler {
	return &Handler{
		useCase:    useCase,
		dispatcher: dispatcher,
		logger:     logger,
	}
}

// Handle POST /api/v1/bookings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CreateBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /bookings - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest()
	if err != nil {
		h.logger.Warn("POST /bookings - Failed to parse request: %v", err)
		if errors.Is(err, types.ErrInvalidTimeFormat) {
			handlers.RespondBadRequest(w, msgInvalidTime)
		} else {
			handlers.RespondBadRequest(w, msgInvalidDate)
		}
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		h.respondError(w, &req, err)
		return
	}

	// Уведомления и письма не влияют на результат, сбои попадают в warning
	warnings := h.dispatcher.Dispatch(r.Context(), result.Outbox)

	h.logger.Info("POST /bookings - Booking created successfully: booking_id=%s, station_id=%d, warnings=%d",
		result.Booking.ID, result.Booking.StationID, len(warnings))
	handlers.RespondJSON(w, http.StatusCreated, &BookingResponse{
		Message: msgSuccess,
		Booking: models.FromDomainBooking(result.Booking),
		Warning: dispatch.Warning(warnings),
	})
}

func (h *Handler) respondError(w http.ResponseWriter, req *CreateBookingRequest, err error) {
	var slotErr *domain.SlotUnavailableError

	switch {
	case errors.Is(err, createBooking.ErrSlotNotAvailable):
		h.logger.Warn("POST /bookings - Slot not available: station_id=%d, date=%s, time=%s",
			req.StationID, req.BookingDate, req.BookingTime)
		if errors.As(err, &slotErr) {
			handlers.RespondConflict(w, slotErr.Error())
		} else {
			handlers.RespondConflict(w, msgSlotNotAvailable)
		}

	case errors.Is(err, createBooking.ErrConnectorMismatch):
		h.logger.Warn("POST /bookings - Connector mismatch: station_id=%d, connector=%s",
			req.StationID, req.Vehicle.ConnectorType)
		handlers.RespondBadRequest(w, msgConnectorMismatch)

	case errors.Is(err, createBooking.ErrStationNotFound):
		h.logger.Warn("POST /bookings - Station not found: station_id=%d", req.StationID)
		handlers.RespondNotFound(w, msgStationNotFound)

	case errors.Is(err, createBooking.ErrPastBooking):
		h.logger.Warn("POST /bookings - Past booking: date=%s, time=%s", req.BookingDate, req.BookingTime)
		handlers.RespondBadRequest(w, msgPastBooking)

	case errors.Is(err, createBooking.ErrCustomerEmailRequired):
		handlers.RespondBadRequest(w, msgEmailRequired)

	case errors.Is(err, createBooking.ErrCustomerNameRequired):
		handlers.RespondBadRequest(w, msgNameRequired)

	case errors.Is(err, createBooking.ErrVehicleRequired):
		handlers.RespondBadRequest(w, msgVehicleRequired)

	case errors.Is(err, createBooking.ErrInvalidInput):
		h.logger.Warn("POST /bookings - Invalid input: %v", err)
		handlers.RespondBadRequest(w, handlers.Detail(err, createBooking.ErrInvalidInput))

	default:
		h.logger.Error("POST /bookings - Failed to create booking: station_id=%d, error=%v", req.StationID, err)
		handlers.RespondInternalError(w)
	}
}
