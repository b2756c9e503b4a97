package get_connector_types

import (
	"net/http"

	"github.com/m04kA/chargemate-booking/internal/api/handlers"
)

type Handler struct {
	service ConnectorService
}

func NewHandler(service ConnectorService) *Handler {
	return &Handler{service: service}
}

// Handle GET /api/v1/connector-types
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	handlers.RespondJSON(w, http.StatusOK, h.service.ConnectorTypes())
}
