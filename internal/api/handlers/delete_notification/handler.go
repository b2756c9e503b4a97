package delete_notification

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
	msgSuccess               = "Notification deleted successfully"
	msgInvalidNotificationID = "Invalid notification ID"
	msgNotFound              = "Notification not found"
	msgUnauthorized          = "Authentication required"
	msgMissingEmail          = "Token has no email"
)

type Handler struct {
	deleter NotificationDeleter
	logger  Logger
}

func NewHandler(deleter NotificationDeleter, logger Logger) *Handler {
	return &Handler{
		deleter: deleter,
		logger:  logger,
	}
}

// Handle DELETE /api/v1/notifications/{notificationId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(mux.Vars(r)["notificationId"], 10, 64)
	if err != nil || id <= 0 {
		h.logger.Warn("DELETE /notifications/{id} - Invalid notification ID: %s", mux.Vars(r)["notificationId"])
		handlers.RespondBadRequest(w, msgInvalidNotificationID)
		return
	}

	actor, ok := middleware.GetActor(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgUnauthorized)
		return
	}
	if actor.Email == "" {
		h.logger.Warn("DELETE /notifications/{id} - Token without email: user_id=%s", actor.UserID)
		handlers.RespondBadRequest(w, msgMissingEmail)
		return
	}

	if err := h.deleter.Delete(r.Context(), id, actor.Email); err != nil {
		if errors.Is(err, notificationRepo.ErrNotificationNotFound) {
			h.logger.Warn("DELETE /notifications/{id} - Notification not found: id=%d, user=%s", id, actor.Email)
			handlers.RespondNotFound(w, msgNotFound)
			return
		}
		h.logger.Error("DELETE /notifications/{id} - Failed to delete notification: id=%d, error=%v", id, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("DELETE /notifications/{id} - Notification deleted: id=%d, user=%s", id, actor.Email)
	handlers.RespondJSON(w, http.StatusOK, DeleteNotificationResponse{Message: msgSuccess})
}
