package get_available_slots

import (
	"github.com/m04kA/chargemate-booking/pkg/types"
)

// Request модель запроса сетки слотов на день
type Request struct {
	StationID int64
	Date      types.Date
}

// Response сетка из 48 гранул дня
type Response struct {
	StationID int64
	Date      types.Date
	Slots     []Slot
}

// Slot модель временного слота
type Slot struct {
	StartTime      types.TimeOfDay // Время начала гранулы
	BookedSpots    int             // Сколько постов занято
	AvailableSpots int             // Количество свободных мест
	TotalSpots     int             // Общее количество мест
	Bookable       bool            // Гранула ещё не началась и есть свободные места
}
