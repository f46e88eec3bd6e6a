package metrics

import (
	"net/http"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestMetrics_Counters(t *testing.T) {
	m := NewWithRegistry("hotel-test", prometheus.NewRegistry())

	m.ReservationCreated("direct")
	m.ReservationCreated("direct")
	m.ReservationCreated("block")
	m.BlockCreated()
	m.AllocationFailed("make_block", "no_availability")

	assert.Equal(t, 2.0, testutil.ToFloat64(m.reservationsTotal.WithLabelValues("hotel-test", "direct")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.reservationsTotal.WithLabelValues("hotel-test", "block")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.blocksTotal.WithLabelValues("hotel-test")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.allocationFailures.WithLabelValues("hotel-test", "make_block", "no_availability")))
}

func TestMetrics_Occupancy(t *testing.T) {
	m := NewWithRegistry("hotel-test", prometheus.NewRegistry())

	m.SetOccupancy(3, 5, 12)

	assert.Equal(t, 3.0, testutil.ToFloat64(m.rooms.WithLabelValues("hotel-test", "reserved")))
	assert.Equal(t, 5.0, testutil.ToFloat64(m.rooms.WithLabelValues("hotel-test", "blocked")))
	assert.Equal(t, 12.0, testutil.ToFloat64(m.rooms.WithLabelValues("hotel-test", "free")))
}

func TestMetrics_HTTP(t *testing.T) {
	m := NewWithRegistry("hotel-test", prometheus.NewRegistry())

	m.ObserveHTTPRequest(http.MethodGet, "/api/v1/rooms", http.StatusOK, 10*time.Millisecond)

	assert.Equal(t, 1.0, testutil.ToFloat64(m.httpRequestsTotal.WithLabelValues("hotel-test", "GET", "/api/v1/rooms", "200")))
}
