// Package metrics содержит prometheus-метрики сервиса.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics набор метрик сервиса
type Metrics struct {
	// HTTP
	HTTPRequestsTotal   *prometheus.CounterVec
	HTTPRequestDuration *prometheus.HistogramVec

	// База данных
	DBQueryDuration *prometheus.HistogramVec
	DBConnections   *prometheus.GaugeVec

	// Бронирования
	BookingsTotal      *prometheus.CounterVec
	SlotConflictsTotal prometheus.Counter
	DispatchFailures   *prometheus.CounterVec
}

// New регистрирует метрики в глобальном registry prometheus
func New(serviceName string) *Metrics {
	return NewWithRegistry(prometheus.DefaultRegisterer, serviceName)
}

// NewWithRegistry регистрирует метрики в переданном registry.
// В тестах используется отдельный prometheus.NewRegistry().
func NewWithRegistry(reg prometheus.Registerer, serviceName string) *Metrics {
	factory := promauto.With(reg)
	constLabels := prometheus.Labels{"service": serviceName}

	return &Metrics{
		HTTPRequestsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name:        "http_requests_total",
				Help:        "Total number of HTTP requests",
				ConstLabels: constLabels,
			},
			[]string{"method", "path", "status"},
		),
		HTTPRequestDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:        "http_request_duration_seconds",
				Help:        "HTTP request latency",
				Buckets:     prometheus.DefBuckets,
				ConstLabels: constLabels,
			},
			[]string{"method", "path"},
		),
		DBQueryDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:        "db_query_duration_seconds",
				Help:        "Database query latency",
				Buckets:     []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1},
				ConstLabels: constLabels,
			},
			[]string{"operation"},
		),
		DBConnections: factory.NewGaugeVec(
			prometheus.GaugeOpts{
				Name:        "db_connections",
				Help:        "Database connection pool state",
				ConstLabels: constLabels,
			},
			[]string{"state"},
		),
		BookingsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name:        "bookings_total",
				Help:        "Booking lifecycle operations by result",
				ConstLabels: constLabels,
			},
			[]string{"operation", "result"},
		),
		SlotConflictsTotal: factory.NewCounter(
			prometheus.CounterOpts{
				Name:        "slot_conflicts_total",
				Help:        "Booking attempts rejected because a granule was full",
				ConstLabels: constLabels,
			},
		),
		DispatchFailures: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name:        "dispatch_failures_total",
				Help:        "Failed notification and email deliveries",
				ConstLabels: constLabels,
			},
			[]string{"channel"},
		),
	}
}

// ObserveBooking учитывает результат операции над бронированием.
// Безопасен для nil-получателя, чтобы вызывающему коду не нужны были проверки.
func (m *Metrics) ObserveBooking(operation, result string) {
	if m == nil {
		return
	}
	m.BookingsTotal.WithLabelValues(operation, result).Inc()
}

// IncSlotConflict учитывает отказ из-за заполненного слота
func (m *Metrics) IncSlotConflict() {
	if m == nil {
		return
	}
	m.SlotConflictsTotal.Inc()
}

// IncDispatchFailure учитывает неудачную доставку уведомления или письма
func (m *Metrics) IncDispatchFailure(channel string) {
	if m == nil {
		return
	}
	m.DispatchFailures.WithLabelValues(channel).Inc()
}
