package create_booking

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_booking: invalid input data")

	// ErrPastBooking возвращается, когда начало сессии не в будущем
	ErrPastBooking = errors.New("create_booking: cannot book a slot in the past")

	// ErrCustomerEmailRequired не указан email клиента
	ErrCustomerEmailRequired = errors.New("create_booking: customer email is required")

	// ErrCustomerNameRequired не указано имя клиента
	ErrCustomerNameRequired = errors.New("create_booking: customer name is required")

	// ErrVehicleRequired не заполнены название, номер или тип разъёма
	ErrVehicleRequired = errors.New("create_booking: vehicle name, number and connector type are required")

	// ErrStationNotFound возвращается, когда станция не найдена
	ErrStationNotFound = errors.New("create_booking: station not found")

	// ErrConnectorMismatch тип разъёма автомобиля не совпадает со станцией
	ErrConnectorMismatch = errors.New("create_booking: vehicle connector type does not match station")

	// ErrSlotNotAvailable на одной из гранул нет свободных постов
	ErrSlotNotAvailable = errors.New("create_booking: slot is not available")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_booking: internal error")
)
