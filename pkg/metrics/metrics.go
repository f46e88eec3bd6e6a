package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "hotel"

// Metrics коллектор метрик сервиса
type Metrics struct {
	serviceName string

	httpRequestsTotal   *prometheus.CounterVec
	httpRequestDuration *prometheus.HistogramVec

	reservationsTotal  *prometheus.CounterVec
	blocksTotal        *prometheus.CounterVec
	allocationFailures *prometheus.CounterVec
	rooms              *prometheus.GaugeVec
}

// New создает коллектор и регистрирует его в default registry
func New(serviceName string) *Metrics {
	return NewWithRegistry(serviceName, prometheus.DefaultRegisterer)
}

// NewWithRegistry создает коллектор в указанном registry
func NewWithRegistry(serviceName string, reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		serviceName: serviceName,
		httpRequestsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "Total number of HTTP requests",
		}, []string{"service", "method", "path", "status"}),
		httpRequestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request duration in seconds",
			Buckets:   prometheus.DefBuckets,
		}, []string{"service", "method", "path"}),
		reservationsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "reservations_total",
			Help:      "Reservations created, by source (direct or block)",
		}, []string{"service", "source"}),
		blocksTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "blocks_total",
			Help:      "Room blocks created",
		}, []string{"service"}),
		allocationFailures: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "allocation_failures_total",
			Help:      "Rejected reservation and block requests",
		}, []string{"service", "operation", "reason"}),
		rooms: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "rooms_tonight",
			Help:      "Rooms by status for the current night",
		}, []string{"service", "status"}),
	}

	reg.MustRegister(
		m.httpRequestsTotal,
		m.httpRequestDuration,
		m.reservationsTotal,
		m.blocksTotal,
		m.allocationFailures,
		m.rooms,
	)

	return m
}

// ObserveHTTPRequest записывает запрос и его длительность
func (m *Metrics) ObserveHTTPRequest(method, path string, status int, duration time.Duration) {
	m.httpRequestsTotal.WithLabelValues(m.serviceName, method, path, strconv.Itoa(status)).Inc()
	m.httpRequestDuration.WithLabelValues(m.serviceName, method, path).Observe(duration.Seconds())
}

func (m *Metrics) ReservationCreated(source string) {
	m.reservationsTotal.WithLabelValues(m.serviceName, source).Inc()
}

func (m *Metrics) BlockCreated() {
	m.blocksTotal.WithLabelValues(m.serviceName).Inc()
}

func (m *Metrics) AllocationFailed(operation, reason string) {
	m.allocationFailures.WithLabelValues(m.serviceName, operation, reason).Inc()
}

// SetOccupancy обновляет gauge номеров по статусам
func (m *Metrics) SetOccupancy(reserved, blocked, free int) {
	m.rooms.WithLabelValues(m.serviceName, "reserved").Set(float64(reserved))
	m.rooms.WithLabelValues(m.serviceName, "blocked").Set(float64(blocked))
	m.rooms.WithLabelValues(m.serviceName, "free").Set(float64(free))
}
