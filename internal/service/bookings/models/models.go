package models

import (
	"time"

	"github.com/m04kA/chargemate-booking/internal/domain"
)

// VehicleDTO автомобиль в ответах и запросах
type VehicleDTO struct {
	Name            string  `json:"name"`
	Number          string  `json:"number"`
	ConnectorType   string  `json:"connectorType"`
	BatteryCapacity *string `json:"batteryCapacity,omitempty"`
	Range           *string `json:"range,omitempty"`
}

// ToDomain конвертирует DTO в domain модель
func (v VehicleDTO) ToDomain() domain.Vehicle {
	return domain.Vehicle{
		Name:            v.Name,
		Number:          v.Number,
		ConnectorType:   v.ConnectorType,
		BatteryCapacity: v.BatteryCapacity,
		Range:           v.Range,
	}
}

// BookingResponse ответ с данными бронирования
type BookingResponse struct {
	ID              string     `json:"id"`
	StationID       int64      `json:"stationId"`
	CustomerName    string     `json:"customerName"`
	CustomerEmail   string     `json:"customerEmail"`
	BookingDate     string     `json:"bookingDate"` // "2025-06-01"
	BookingTime     string     `json:"bookingTime"` // "10:00"
	TimeSlot        int        `json:"timeSlot"`    // длительность в минутах
	Vehicle         VehicleDTO `json:"vehicle"`
	PaymentMethod   *string    `json:"paymentMethod,omitempty"`
	PaymentVerified bool       `json:"paymentVerified"`
	CreatedAt       time.Time  `json:"createdAt"`
	UpdatedAt       time.Time  `json:"updatedAt"`
}

// BookingListResponse ответ со списком бронирований
type BookingListResponse struct {
	Bookings []BookingResponse `json:"bookings"`
}

// ConnectorTypesResponse справочник типов разъёмов
type ConnectorTypesResponse struct {
	ConnectorTypes []string `json:"connectorTypes"`
}

// FromDomainBooking конвертирует domain модель в DTO
func FromDomainBooking(b *domain.Booking) *BookingResponse {
	if b == nil {
		return nil
	}

	return &BookingResponse{
		ID:            b.ID.String(),
		StationID:     b.StationID,
		CustomerName:  b.CustomerName,
		CustomerEmail: b.CustomerEmail,
		BookingDate:   b.BookingDate.String(),
		BookingTime:   b.BookingTime.String(),
		TimeSlot:      b.DurationMinutes,
		Vehicle: VehicleDTO{
			Name:            b.Vehicle.Name,
			Number:          b.Vehicle.Number,
			ConnectorType:   b.Vehicle.ConnectorType,
			BatteryCapacity: b.Vehicle.BatteryCapacity,
			Range:           b.Vehicle.Range,
		},
		PaymentMethod:   b.PaymentMethod,
		PaymentVerified: b.PaymentVerified,
		CreatedAt:       b.CreatedAt,
		UpdatedAt:       b.UpdatedAt,
	}
}

// FromDomainBookingList конвертирует список domain моделей в DTO
func FromDomainBookingList(bookings []*domain.Booking) *BookingListResponse {
	resp := &BookingListResponse{
		Bookings: make([]BookingResponse, 0, len(bookings)),
	}

	for _, booking := range bookings {
		if bookingResp := FromDomainBooking(booking); bookingResp != nil {
			resp.Bookings = append(resp.Bookings, *bookingResp)
		}
	}

	return resp
}

// FromConnectorIndex конвертирует справочник разъёмов в DTO
func FromConnectorIndex(index domain.ConnectorIndex) *ConnectorTypesResponse {
	return &ConnectorTypesResponse{ConnectorTypes: index.Types()}
}
