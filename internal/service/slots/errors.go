package slots

import "errors"

var (
	// ErrInvalidDuration длительность не кратна 30 минутам или не положительна
	ErrInvalidDuration = errors.New("slots: duration must be a positive multiple of 30 minutes")

	// ErrMisalignedTime время начала не попадает на границу гранулы
	ErrMisalignedTime = errors.New("slots: time must fall on a 30-minute boundary")

	// ErrCrossesMidnight интервал заканчивается после полуночи
	ErrCrossesMidnight = errors.New("slots: booking must end by midnight")

	// ErrLedger ошибка чтения реестра бронирований
	ErrLedger = errors.New("slots: failed to read bookings")
)
