package edit_booking

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("edit_booking: invalid input data")

	// ErrPastBooking новое начало сессии не в будущем
	ErrPastBooking = errors.New("edit_booking: cannot move a booking into the past")

	// ErrVehicleRequired не заполнены название, номер или тип разъёма
	ErrVehicleRequired = errors.New("edit_booking: vehicle name, number and connector type are required")

	// ErrBookingNotFound возвращается, когда бронирование не найдено
	ErrBookingNotFound = errors.New("edit_booking: booking not found")

	// ErrStationNotFound возвращается, когда станция бронирования не найдена
	ErrStationNotFound = errors.New("edit_booking: station not found")

	// ErrConnectorMismatch тип разъёма нового автомобиля не совпадает со станцией
	ErrConnectorMismatch = errors.New("edit_booking: vehicle connector type does not match station")

	// ErrSlotNotAvailable на новом интервале нет свободных постов
	ErrSlotNotAvailable = errors.New("edit_booking: slot is not available")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("edit_booking: internal error")
)
