package delete_notification

type DeleteNotificationResponse struct {
	Message string `json:"message"`
}
