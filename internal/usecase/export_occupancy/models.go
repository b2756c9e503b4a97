package export_occupancy

import "github.com/m04kA/chargemate-booking/pkg/types"

// ContentType тип содержимого xlsx
const ContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// Request модель запроса отчёта
type Request struct {
	StationID int64
	Date      types.Date
}

// Response готовый файл отчёта
type Response struct {
	FileName string
	Content  []byte
}
