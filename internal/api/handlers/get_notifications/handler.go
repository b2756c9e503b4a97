package get_notifications

import (
	"net/http"
	"time"

	"github.com/m04kA/chargemate-booking/internal/api/handlers"
	"github.com/m04kA/chargemate-booking/internal/api/middleware"
)

const (
	msgUnauthorized = "Authentication required"
	msgMissingEmail = "Token has no email"
)

type Handler struct {
	reader NotificationReader
	now    func() time.Time
	logger Logger
}

func NewHandler(reader NotificationReader, logger Logger) *Handler {
	return &Handler{
		reader: reader,
		now:    time.Now,
		logger: logger,
	}
}

// Handle GET /api/v1/notifications?unread=true
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	actor, ok := middleware.GetActor(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgUnauthorized)
		return
	}
	if actor.Email == "" {
		h.logger.Warn("GET /notifications - Token without email: user_id=%s", actor.UserID)
		handlers.RespondBadRequest(w, msgMissingEmail)
		return
	}

	unreadOnly := r.URL.Query().Get("unread") == "true"

	items, err := h.reader.ListByUser(r.Context(), actor.Email, unreadOnly)
	if err != nil {
		h.logger.Error("GET /notifications - Failed to list notifications: user=%s, error=%v", actor.Email, err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromDomainList(items, h.now()))
}
