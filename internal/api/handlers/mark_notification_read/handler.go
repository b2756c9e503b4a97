package mark_notification_read

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/chargemate-booking/internal/api/handlers"
	"github.com/m04kA/chargemate-booking/internal/api/middleware"
	notificationRepo "github.com/m04kA/chargemate-booking/internal/infra/storage/notification"
)

const (
	msgInvalidNotificationID = "Invalid notification ID"
	msgNotFound              = "Notification not found"
	msgUnauthorized          = "Authentication required"
	msgMissingEmail          = "Token has no email"
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

// Handle PATCH /api/v1/notifications/{notificationId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(mux.Vars(r)["notificationId"], 10, 64)
	if err != nil || id <= 0 {
		h.logger.Warn("PATCH /notifications/{id} - Invalid notification ID: %s", mux.Vars(r)["notificationId"])
		handlers.RespondBadRequest(w, msgInvalidNotificationID)
		return
	}

	actor, ok := middleware.GetActor(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgUnauthorized)
		return
	}
	if actor.Email == "" {
		h.logger.Warn("PATCH /notifications/{id} - Token without email: user_id=%s", actor.UserID)
		handlers.RespondBadRequest(w, msgMissingEmail)
		return
	}

	// Чужое уведомление неотличимо от несуществующего
	n, err := h.marker.MarkRead(r.Context(), id, actor.Email)
	if err != nil {
		if errors.Is(err, notificationRepo.ErrNotificationNotFound) {
			h.logger.Warn("PATCH /notifications/{id} - Notification not found: id=%d, user=%s", id, actor.Email)
			handlers.RespondNotFound(w, msgNotFound)
			return
		}
		h.logger.Error("PATCH /notifications/{id} - Failed to mark notification: id=%d, error=%v", id, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("PATCH /notifications/{id} - Notification marked as read: id=%d, user=%s", id, actor.Email)
	handlers.RespondJSON(w, http.StatusOK, FromDomain(n))
}
