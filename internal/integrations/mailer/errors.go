package mailer

import "errors"

var (
	// ErrConnect ошибка подключения к RabbitMQ
	ErrConnect = errors.New("mailer: failed to connect to broker")

	// ErrEncode ошибка сериализации задания
	ErrEncode = errors.New("mailer: failed to encode mail job")

	// ErrPublish ошибка публикации задания
	ErrPublish = errors.New("mailer: failed to publish mail job")
)
