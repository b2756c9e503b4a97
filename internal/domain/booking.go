package domain

import (
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/m04kA/chargemate-booking/pkg/types"
)

// Vehicle транспортное средство, для которого бронируется зарядка
type Vehicle struct {
	Name            string
	Number          string
	ConnectorType   string
	BatteryCapacity *string
	Range           *string
}

// HasRequiredFields проверяет, что заполнены название, номер и тип разъёма
func (v *Vehicle) HasRequiredFields() bool {
	return strings.TrimSpace(v.Name) != "" &&
		strings.TrimSpace(v.Number) != "" &&
		strings.TrimSpace(v.ConnectorType) != ""
}

// OversizedField первое поле длиннее своей колонки в реестре и его предел.
// Пустое имя, если все поля укладываются.
func (v *Vehicle) OversizedField() (string, int) {
	fields := []struct {
		name  string
		value string
		limit int
	}{
		{"name", v.Name, MaxVehicleFieldLength},
		{"number", v.Number, MaxVehicleFieldLength},
		{"connectorType", v.ConnectorType, MaxConnectorTypeLength},
		{"batteryCapacity", deref(v.BatteryCapacity), MaxVehicleSpecLength},
		{"range", deref(v.Range), MaxVehicleSpecLength},
	}
	for _, f := range fields {
		if utf8.RuneCountInString(f.value) > f.limit {
			return f.name, f.limit
		}
	}
	return "", 0
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

// Booking бронирование зарядного места на станции.
// Бронирование занимает DurationMinutes/30 подряд идущих гранул начиная с BookingTime.
// Отмена удаляет запись, статусов нет.
type Booking struct {
	ID              uuid.UUID
	StationID       int64
	CustomerName    string
	CustomerEmail   string // ключ владельца, по нему строится "мои бронирования"
	BookingDate     types.Date
	BookingTime     types.TimeOfDay
	DurationMinutes int
	Vehicle         Vehicle
	PaymentMethod   *string
	PaymentVerified bool
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// EndMinutes минута окончания сессии от полуночи дня бронирования (может быть > 1440)
func (b *Booking) EndMinutes() int {
	return b.BookingTime.Minutes() + b.DurationMinutes
}

// Occupies проверяет, занимает ли бронирование гранулу, начинающуюся в g
func (b *Booking) Occupies(g types.TimeOfDay) bool {
	return g.Minutes() >= b.BookingTime.Minutes() && g.Minutes() < b.EndMinutes()
}

// StartsAt момент начала сессии в часовом поясе станции
func (b *Booking) StartsAt(loc *time.Location) time.Time {
	return b.BookingDate.At(b.BookingTime, loc)
}

// IsOwnedBy сравнивает владельца без учёта регистра
func (b *Booking) IsOwnedBy(email string) bool {
	return email != "" && strings.EqualFold(strings.TrimSpace(b.CustomerEmail), strings.TrimSpace(email))
}

// BookingPatch изменения при редактировании. nil означает "не менять".
type BookingPatch struct {
	BookingDate     *types.Date
	BookingTime     *types.TimeOfDay
	DurationMinutes *int
	Vehicle         *Vehicle
}

// Apply возвращает копию бронирования с применёнными изменениями
func (p BookingPatch) Apply(b Booking) Booking {
	if p.BookingDate != nil {
		b.BookingDate = *p.BookingDate
	}
	if p.BookingTime != nil {
		b.BookingTime = *p.BookingTime
	}
	if p.DurationMinutes != nil {
		b.DurationMinutes = *p.DurationMinutes
	}
	if p.Vehicle != nil {
		b.Vehicle = *p.Vehicle
	}
	return b
}

// ChangesSchedule проверяет, затрагивает ли патч дату, время или длительность
func (p BookingPatch) ChangesSchedule(b Booking) bool {
	if p.BookingDate != nil && !p.BookingDate.Equal(b.BookingDate) {
		return true
	}
	if p.BookingTime != nil && *p.BookingTime != b.BookingTime {
		return true
	}
	if p.DurationMinutes != nil && *p.DurationMinutes != b.DurationMinutes {
		return true
	}
	return false
}

// ChangesStart проверяет, меняется ли момент начала (дата или время)
func (p BookingPatch) ChangesStart(b Booking) bool {
	if p.BookingDate != nil && !p.BookingDate.Equal(b.BookingDate) {
		return true
	}
	return p.BookingTime != nil && *p.BookingTime != b.BookingTime
}
