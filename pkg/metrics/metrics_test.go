package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestObserveBooking(t *testing.T) {
	m := NewWithRegistry(prometheus.NewRegistry(), "test")

	m.ObserveBooking("create", "success")
	m.ObserveBooking("create", "success")
	m.ObserveBooking("create", "conflict")

	assert.Equal(t, 2.0, testutil.ToFloat64(m.BookingsTotal.WithLabelValues("create", "success")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.BookingsTotal.WithLabelValues("create", "conflict")))
}

func TestCounters(t *testing.T) {
	m := NewWithRegistry(prometheus.NewRegistry(), "test")

	m.IncSlotConflict()
	m.IncDispatchFailure("email")

	assert.Equal(t, 1.0, testutil.ToFloat64(m.SlotConflictsTotal))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.DispatchFailures.WithLabelValues("email")))
}

func TestNilMetricsIsNoop(t *testing.T) {
	var m *Metrics

	assert.NotPanics(t, func() {
		m.ObserveBooking("create", "success")
		m.IncSlotConflict()
		m.IncDispatchFailure("notification")
	})
}
