package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics набор prometheus-коллекторов сервиса
type Metrics struct {
	httpRequestsTotal   *prometheus.CounterVec
	httpRequestDuration *prometheus.HistogramVec

	storageOperationsTotal   *prometheus.CounterVec
	storageOperationDuration *prometheus.HistogramVec

	activeBookings *prometheus.GaugeVec
}

// New регистрирует коллекторы в default registry
func New(serviceName string) *Metrics {
	constLabels := prometheus.Labels{"service": serviceName}

	return &Metrics{
		httpRequestsTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Name:        "http_requests_total",
			Help:        "Total number of HTTP requests.",
			ConstLabels: constLabels,
		}, []string{"method", "path", "status"}),

		httpRequestDuration: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Name:        "http_request_duration_seconds",
			Help:        "HTTP request latency.",
			ConstLabels: constLabels,
			Buckets:     prometheus.DefBuckets,
		}, []string{"method", "path"}),

		storageOperationsTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Name:        "storage_operations_total",
			Help:        "Total number of booking store operations.",
			ConstLabels: constLabels,
		}, []string{"operation", "status"}),

		storageOperationDuration: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Name:        "storage_operation_duration_seconds",
			Help:        "Booking store operation latency.",
			ConstLabels: constLabels,
			Buckets:     []float64{.0005, .001, .005, .01, .05, .1, .5, 1},
		}, []string{"operation"}),

		activeBookings: promauto.NewGaugeVec(prometheus.GaugeOpts{
			Name:        "bookings_active",
			Help:        "Number of bookings currently persisted.",
			ConstLabels: constLabels,
		}, []string{}),
	}
}

// ObserveHTTPRequest записывает метрики одного HTTP запроса
func (m *Metrics) ObserveHTTPRequest(method, path, status string, duration time.Duration) {
	m.httpRequestsTotal.WithLabelValues(method, path, status).Inc()
	m.httpRequestDuration.WithLabelValues(method, path).Observe(duration.Seconds())
}

// ObserveStorageOperation записывает метрики одной операции хранилища
func (m *Metrics) ObserveStorageOperation(operation, status string, duration time.Duration) {
	m.storageOperationsTotal.WithLabelValues(operation, status).Inc()
	m.storageOperationDuration.WithLabelValues(operation).Observe(duration.Seconds())
}

// SetActiveBookings выставляет gauge текущего количества бронирований
func (m *Metrics) SetActiveBookings(n int) {
	m.activeBookings.WithLabelValues().Set(float64(n))
}
