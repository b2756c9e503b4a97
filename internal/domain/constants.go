package domain

// Гранулы времени
const (
	GranuleMinutes         = 30
	GranulesPerDay         = 24 * 60 / GranuleMinutes
	DefaultDurationMinutes = 30
)

// DefaultAllowedDurations допустимые длительности сессии в минутах
var DefaultAllowedDurations = []int{30, 60, 90, 120}

// Business validation constants
const (
	MaxCustomerNameLength  = 200
	MaxVehicleFieldLength  = 100
	MaxConnectorTypeLength = 64
	MaxVehicleSpecLength   = 64
)

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// Ссылки в уведомлениях
const (
	MyBookingsURL = "/mybookings"
)
