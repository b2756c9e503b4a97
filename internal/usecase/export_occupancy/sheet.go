package export_occupancy

import (
	"bytes"
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/m04kA/chargemate-booking/internal/domain"
	"github.com/m04kA/chargemate-booking/pkg/types"
)

const sheetName = "Occupancy"

const (
	colorFree    = "#E2EFDA"
	colorPartial = "#FFF2CC"
	colorFull    = "#F8CBAD"
	colorHeader  = "#DDEBF7"
)

var headers = []string{"Time", "Booked", "Available", "Total", "Occupancy %"}

// renderSheet рисует сетку гранул дня: строка на гранулу, цвет по загрузке
func renderSheet(station *domain.Station, date types.Date, occupancy []domain.GranuleOccupancy) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	index, err := f.NewSheet(sheetName)
	if err != nil {
		return nil, fmt.Errorf("create sheet: %w", err)
	}
	f.SetActiveSheet(index)

	// Заголовок отчёта
	_ = f.SetCellValue(sheetName, "A1", fmt.Sprintf("%s, %s (%d posts, %s)",
		station.Title, date, station.Quantity, station.ConnectionType))
	_ = f.MergeCell(sheetName, "A1", "E1")
	titleStyle, _ := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Size: 14},
		Alignment: &excelize.Alignment{Horizontal: "center"},
	})
	_ = f.SetCellStyle(sheetName, "A1", "A1", titleStyle)

	// Заголовки колонок
	headerStyle, _ := f.NewStyle(&excelize.Style{
		Fill:      excelize.Fill{Type: "pattern", Color: []string{colorHeader}, Pattern: 1},
		Font:      &excelize.Font{Bold: true},
		Alignment: &excelize.Alignment{Horizontal: "center"},
	})
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 2)
		_ = f.SetCellValue(sheetName, cell, h)
		_ = f.SetCellStyle(sheetName, cell, cell, headerStyle)
	}

	styles := make(map[string]int, 3)
	for _, color := range []string{colorFree, colorPartial, colorFull} {
		id, err := f.NewStyle(&excelize.Style{
			Fill: excelize.Fill{Type: "pattern", Color: []string{color}, Pattern: 1},
		})
		if err != nil {
			return nil, fmt.Errorf("create style: %w", err)
		}
		styles[color] = id
	}

	for i := range occupancy {
		g := occupancy[i]
		row := i + 3

		values := []interface{}{g.Time.String(), g.Booked, g.Available(), g.Total, g.OccupancyRate()}
		for col, v := range values {
			cell, _ := excelize.CoordinatesToCellName(col+1, row)
			_ = f.SetCellValue(sheetName, cell, v)
		}

		first, _ := excelize.CoordinatesToCellName(1, row)
		last, _ := excelize.CoordinatesToCellName(len(headers), row)
		_ = f.SetCellStyle(sheetName, first, last, styles[rowColor(g)])
	}

	_ = f.SetColWidth(sheetName, "A", "A", 12)
	_ = f.SetColWidth(sheetName, "B", "E", 14)

	_ = f.DeleteSheet("Sheet1")

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("write workbook: %w", err)
	}
	return bytes.Clone(buf.Bytes()), nil
}

func rowColor(g domain.GranuleOccupancy) string {
	switch {
	case g.IsFull():
		return colorFull
	case g.Booked > 0:
		return colorPartial
	default:
		return colorFree
	}
}
