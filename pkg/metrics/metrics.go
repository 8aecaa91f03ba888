package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics набор prometheus-метрик сервиса
type Metrics struct {
	serviceName string

	httpRequestsTotal   *prometheus.CounterVec
	httpRequestDuration *prometheus.HistogramVec

	bookingsCreatedTotal *prometheus.CounterVec
	webhooksTotal        *prometheus.CounterVec

	dbQueryDuration   *prometheus.HistogramVec
	dbConnectionsOpen *prometheus.GaugeVec
	dbConnectionsIdle *prometheus.GaugeVec
}

// New создает и регистрирует метрики сервиса
func New(serviceName string) *Metrics {
	return &Metrics{
		serviceName: serviceName,

		httpRequestsTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		}, []string{"service", "method", "path", "status"}),

		httpRequestDuration: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		}, []string{"service", "method", "path"}),

		bookingsCreatedTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "bookings_created_total",
			Help: "Total number of booking creation attempts by result",
		}, []string{"service", "result"}),

		webhooksTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "payment_webhooks_total",
			Help: "Total number of processed payment webhooks by payment status and outcome",
		}, []string{"service", "payment_status", "outcome"}),

		dbQueryDuration: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "db_query_duration_seconds",
			Help:    "Database query duration in seconds",
			Buckets: []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5},
		}, []string{"service", "operation"}),

		dbConnectionsOpen: promauto.NewGaugeVec(prometheus.GaugeOpts{
			Name: "db_connections_open",
			Help: "Number of open database connections",
		}, []string{"service"}),

		dbConnectionsIdle: promauto.NewGaugeVec(prometheus.GaugeOpts{
			Name: "db_connections_idle",
			Help: "Number of idle database connections",
		}, []string{"service"}),
	}
}

// ObserveHTTPRequest фиксирует завершенный HTTP запрос
func (m *Metrics) ObserveHTTPRequest(method, path, status string, duration time.Duration) {
	m.httpRequestsTotal.WithLabelValues(m.serviceName, method, path, status).Inc()
	m.httpRequestDuration.WithLabelValues(m.serviceName, method, path).Observe(duration.Seconds())
}

// IncBookingCreated фиксирует попытку создания бронирования
// result: created | validation_failed | payment_failed | error
func (m *Metrics) IncBookingCreated(result string) {
	m.bookingsCreatedTotal.WithLabelValues(m.serviceName, result).Inc()
}

// IncWebhook фиксирует обработанное уведомление платежного провайдера
func (m *Metrics) IncWebhook(paymentStatus, outcome string) {
	m.webhooksTotal.WithLabelValues(m.serviceName, paymentStatus, outcome).Inc()
}

// ObserveDBQuery фиксирует длительность запроса к БД
func (m *Metrics) ObserveDBQuery(operation string, duration time.Duration) {
	m.dbQueryDuration.WithLabelValues(m.serviceName, operation).Observe(duration.Seconds())
}

// SetDBConnections обновляет gauge-метрики пула соединений
func (m *Metrics) SetDBConnections(open, idle int) {
	m.dbConnectionsOpen.WithLabelValues(m.serviceName).Set(float64(open))
	m.dbConnectionsIdle.WithLabelValues(m.serviceName).Set(float64(idle))
}
