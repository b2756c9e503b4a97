package mark_all_notifications_read

import (
	"net/http"

	"github.com/m04kA/chargemate-booking/internal/api/handlers"
	"github.com/m04kA/chargemate-booking/internal/api/middleware"
)

const (
	msgSuccess      = "All notifications marked as read"
	msgUnauthorized = "Authentication required"
	msgMissingEmail = "Token has no email"
)

type Handler struct {
	marker NotificationMarker
	logger Logger
}

func NewHandler(marker NotificationMarker, logger Logger) *Handler {
	return &Handler{
		marker: marker,
		logger: logger,
	}
}

// Handle PATCH /api/v1/notifications/mark-all-read
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	actor, ok := middleware.GetActor(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgUnauthorized)
		return
	}
	if actor.Email == "" {
		h.logger.Warn("PATCH /notifications/mark-all-read - Token without email: user_id=%s", actor.UserID)
		handlers.RespondBadRequest(w, msgMissingEmail)
		return
	}

	modified, err := h.marker.MarkAllRead(r.Context(), actor.Email)
	if err != nil {
		h.logger.Error("PATCH /notifications/mark-all-read - Failed to mark notifications: user=%s, error=%v", actor.Email, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("PATCH /notifications/mark-all-read - Marked as read: user=%s, count=%d", actor.Email, modified)
	handlers.RespondJSON(w, http.StatusOK, MarkAllReadResponse{
		Message:       msgSuccess,
		ModifiedCount: modified,
	})
}
