package types

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"fmt"
	"time"
)

// MinutesPerDay количество минут в сутках
const MinutesPerDay = 24 * 60

const timeOfDayLayout = "15:04"

var (
	// ErrInvalidTimeFormat возвращается, если строка не в формате HH:MM
	ErrInvalidTimeFormat = errors.New("invalid time format, expected HH:MM")
)

// TimeOfDay время суток с точностью до минуты, хранится как количество минут от полуночи.
// В JSON и в БД передаётся строкой "HH:MM".
type TimeOfDay int

// TimeOfDayOf возвращает время суток момента t в его часовом поясе
func TimeOfDayOf(t time.Time) TimeOfDay {
	return TimeOfDay(t.Hour()*60 + t.Minute())
}

// ParseTimeOfDay парсит строку строго в формате HH:MM (24 часа)
func ParseTimeOfDay(s string) (TimeOfDay, error) {
	if len(s) != len(timeOfDayLayout) || s[2] != ':' {
		return 0, fmt.Errorf("%w: %q", ErrInvalidTimeFormat, s)
	}
	t, err := time.Parse(timeOfDayLayout, s)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidTimeFormat, s)
	}
	return TimeOfDayOf(t), nil
}

// Hour часы
func (t TimeOfDay) Hour() int { return int(t) / 60 }

// Minute минуты внутри часа
func (t TimeOfDay) Minute() int { return int(t) % 60 }

// Minutes количество минут от полуночи
func (t TimeOfDay) Minutes() int { return int(t) }

// String форматирует время как HH:MM
func (t TimeOfDay) String() string {
	return fmt.Sprintf("%02d:%02d", t.Hour(), t.Minute())
}

// AddMinutes сдвигает время на m минут по модулю суток.
// Переход через полночь не является ошибкой: 23:30 + 30 = 00:00.
func (t TimeOfDay) AddMinutes(m int) TimeOfDay {
	v := (int(t) + m) % MinutesPerDay
	if v < 0 {
		v += MinutesPerDay
	}
	return TimeOfDay(v)
}

// IsAligned проверяет, что время кратно шагу step минут
func (t TimeOfDay) IsAligned(step int) bool {
	if step <= 0 {
		return false
	}
	return int(t)%step == 0
}

// Scan реализует sql.Scanner
func (t *TimeOfDay) Scan(src interface{}) error {
	switch v := src.(type) {
	case string:
		return t.scanString(v)
	case []byte:
		return t.scanString(string(v))
	case time.Time:
		*t = TimeOfDayOf(v)
		return nil
	case nil:
		return fmt.Errorf("%w: NULL", ErrInvalidTimeFormat)
	default:
		return fmt.Errorf("%w: unsupported type %T", ErrInvalidTimeFormat, src)
	}
}

// scanString принимает как HH:MM, так и HH:MM:SS (формат TIME в Postgres)
func (t *TimeOfDay) scanString(s string) error {
	if len(s) > len(timeOfDayLayout) {
		s = s[:len(timeOfDayLayout)]
	}
	parsed, err := ParseTimeOfDay(s)
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}

// Value реализует driver.Valuer
func (t TimeOfDay) Value() (driver.Value, error) {
	return t.String(), nil
}

// MarshalJSON сериализует время как "HH:MM"
func (t TimeOfDay) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.String())
}

// UnmarshalJSON принимает только строку "HH:MM"
func (t *TimeOfDay) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("%w: %s", ErrInvalidTimeFormat, string(data))
	}
	parsed, err := ParseTimeOfDay(s)
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}
