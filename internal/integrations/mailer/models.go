package mailer

import "time"

// Subjects писем
const (
	SubjectConfirmation = "Your Station Booking is Confirmed!"
	SubjectCancellation = "Your Station Booking is Cancelled!"
)

// Job задание для почтового воркера
type Job struct {
	ID      string          `json:"id"`
	Kind    string          `json:"kind"`
	To      string          `json:"to"`
	Subject string          `json:"subject"`
	Message string          `json:"message,omitempty"`
	Booking *BookingPayload `json:"booking,omitempty"`
	SendAt  *time.Time      `json:"sendAt,omitempty"`
}

// BookingPayload данные бронирования для шаблона письма
type BookingPayload struct {
	ID            string  `json:"id"`
	CustomerName  string  `json:"customerName"`
	StationTitle  string  `json:"stationTitle"`
	BookingDate   string  `json:"bookingDate"`
	BookingTime   string  `json:"bookingTime"`
	TimeSlot      int     `json:"timeSlot"`
	VehicleName   string  `json:"vehicleName"`
	VehicleNumber string  `json:"vehicleNumber"`
	ConnectorType string  `json:"connectorType"`
	PaymentMethod *string `json:"paymentMethod,omitempty"`
}
