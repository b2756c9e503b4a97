package mark_all_notifications_read

type MarkAllReadResponse struct {
	Message       string `json:"message"`
	ModifiedCount int64  `json:"modifiedCount"`
}
