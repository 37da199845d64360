package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Store-API Metrics
var (
	// Request counters
	RequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "autocart",
			Subsystem: "store_api",
			Name:      "requests_total",
			Help:      "Total number of HTTP requests",
		},
		[]string{"method", "endpoint", "status"},
	)

	// Request duration histogram
	RequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "autocart",
			Subsystem: "store_api",
			Name:      "request_duration_seconds",
			Help:      "HTTP request duration in seconds",
			Buckets:   []float64{0.1, 0.5, 1, 2, 5, 10, 30, 60},
		},
		[]string{"method", "endpoint", "status"},
	)

	// Chat turns by resolved intent
	ChatTurnsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "autocart",
			Subsystem: "store_api",
			Name:      "chat_turns_total",
			Help:      "Chat turns processed, by resolved intent",
		},
		[]string{"intent"},
	)

	// Conversations
	ConversationsCreatedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Namespace: "autocart",
			Subsystem: "store_api",
			Name:      "conversations_created_total",
			Help:      "Total conversations created",
		},
	)

	// Purchases
	PurchasesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "autocart",
			Subsystem: "store_api",
			Name:      "purchases_total",
			Help:      "Purchase attempts by outcome",
		},
		[]string{"outcome"},
	)

	// Payment gateway call failures
	GatewayErrorsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "autocart",
			Subsystem: "store_api",
			Name:      "gateway_errors_total",
			Help:      "Payment gateway call failures",
		},
		[]string{"operation"},
	)

	// Payment gateway call duration
	GatewayDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "autocart",
			Subsystem: "store_api",
			Name:      "gateway_duration_seconds",
			Help:      "Payment gateway call duration in seconds",
			Buckets:   []float64{0.1, 0.25, 0.5, 1, 2, 5, 10, 30},
		},
		[]string{"operation"},
	)

	// Auth requests
	AuthRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "autocart",
			Subsystem: "store_api",
			Name:      "auth_requests_total",
			Help:      "Total authentication requests",
		},
		[]string{"auth_type", "status"},
	)

	// Retention sweep
	RetentionDeletedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Namespace: "autocart",
			Subsystem: "store_api",
			Name:      "retention_deleted_total",
			Help:      "Conversations removed by the retention sweep",
		},
	)
)

// RecordRequest records an HTTP request with all relevant labels
func RecordRequest(method, endpoint, status string, durationSec float64) {
	RequestsTotal.WithLabelValues(method, endpoint, status).Inc()
	RequestDuration.WithLabelValues(method, endpoint, status).Observe(durationSec)
}

// RecordChatTurn records a processed chat turn by resolved intent
func RecordChatTurn(intent string) {
	if intent == "" {
		intent = "unknown"
	}
	ChatTurnsTotal.WithLabelValues(intent).Inc()
}

// RecordPurchase records a purchase attempt outcome
func RecordPurchase(outcome string) {
	PurchasesTotal.WithLabelValues(outcome).Inc()
}

// RecordGatewayCall records a payment gateway call and its duration
func RecordGatewayCall(operation string, durationSec float64, err error) {
	GatewayDuration.WithLabelValues(operation).Observe(durationSec)
	if err != nil {
		GatewayErrorsTotal.WithLabelValues(operation).Inc()
	}
}

// RecordAuthRequest records an authentication attempt
func RecordAuthRequest(authType, status string) {
	AuthRequestsTotal.WithLabelValues(authType, status).Inc()
}
