package delete_notification

import "context"

type NotificationDeleter interface {
	Delete(ctx context.Context, id int64, email string) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
