package domain

import "strings"

// Station зарядная станция из справочника.
// Quantity число одновременно доступных постов, бронирования его не уменьшают.
type Station struct {
	ID             int64
	StationID      string // идентификатор из внешнего каталога
	Title          string
	AddressLine    string
	State          string
	Country        string
	Latitude       float64
	Longitude      float64
	ConnectionType string
	PowerKW        float64
	Quantity       int
	Price          float64
	Rating         float64
}

// AcceptsConnector сравнивает тип разъёма без учёта регистра
func (s *Station) AcceptsConnector(connectorType string) bool {
	return strings.EqualFold(strings.TrimSpace(s.ConnectionType), strings.TrimSpace(connectorType))
}

// ConnectorIndex неизменяемый справочник типов разъёмов.
// Код типа равен порядку его первого появления в каталоге.
type ConnectorIndex struct {
	types []string
	codes map[string]int
}

// BuildConnectorIndex строит справочник за один проход по каталогу станций
func BuildConnectorIndex(stations []Station) ConnectorIndex {
	idx := ConnectorIndex{
		types: make([]string, 0),
		codes: make(map[string]int),
	}
	for _, s := range stations {
		if s.ConnectionType == "" {
			continue
		}
		if _, ok := idx.codes[s.ConnectionType]; ok {
			continue
		}
		idx.codes[s.ConnectionType] = len(idx.types)
		idx.types = append(idx.types, s.ConnectionType)
	}
	return idx
}

// Code возвращает код типа разъёма
func (i ConnectorIndex) Code(connectionType string) (int, bool) {
	code, ok := i.codes[connectionType]
	return code, ok
}

// Types возвращает копию списка типов в порядке кодов
func (i ConnectorIndex) Types() []string {
	out := make([]string, len(i.types))
	copy(out, i.types)
	return out
}

// Len количество типов
func (i ConnectorIndex) Len() int {
	return len(i.types)
}
