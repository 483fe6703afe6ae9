package http

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/fivetwenty-io/identifier-client/pkg/identifier"
)

const (
	metricsNamespace = "identifier_client"

	labelService   = "service"
	labelOperation = "operation"
	labelCode      = "code"

	// codeTransportError labels calls that never received a response.
	codeTransportError = "error"
)

var requestMetricsLabels = []string{
	labelService,
	labelOperation,
	labelCode,
}

// Metrics records per-operation request counts and latencies.
type Metrics struct {
	requests *prometheus.CounterVec
	duration *prometheus.HistogramVec
}

// NewMetrics creates the request metrics and registers them with registerer.
// Collectors already registered by another client are reused.
func NewMetrics(registerer prometheus.Registerer) (*Metrics, error) {
	requests := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Name:      "requests_total",
			Help:      "count of identifier API requests by operation and status code",
		}, requestMetricsLabels)

	duration := prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: metricsNamespace,
			Name:      "request_duration_seconds",
			Help:      "latency of identifier API requests including retries",
			Buckets:   prometheus.DefBuckets,
		}, requestMetricsLabels)

	var err error

	requests, err = register(registerer, requests)
	if err != nil {
		return nil, err
	}

	duration, err = register(registerer, duration)
	if err != nil {
		return nil, err
	}

	return &Metrics{requests: requests, duration: duration}, nil
}

func register[T prometheus.Collector](registerer prometheus.Registerer, collector T) (T, error) {
	err := registerer.Register(collector)
	if err == nil {
		return collector, nil
	}

	alreadyRegistered := prometheus.AlreadyRegisteredError{}
	if errors.As(err, &alreadyRegistered) {
		existing, ok := alreadyRegistered.ExistingCollector.(T)
		if ok {
			return existing, nil
		}
	}

	return collector, fmt.Errorf("registering metrics: %w", err)
}

func (m *Metrics) observe(req *identifier.Request, statusCode int, elapsed time.Duration) {
	if m == nil {
		return
	}

	code := codeTransportError
	if statusCode > 0 {
		code = strconv.Itoa(statusCode)
	}

	labels := prometheus.Labels{
		labelService:   req.Service,
		labelOperation: req.Operation,
		labelCode:      code,
	}

	m.requests.With(labels).Inc()
	m.duration.With(labels).Observe(elapsed.Seconds())
}
