// Package metrics records per-run API and deployment counters.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "cfpages_prune"

// Recorder holds the metrics of a single run in its own registry.
// A nil *Recorder is valid and records nothing.
type Recorder struct {
	registry *prometheus.Registry

	apiRequests *prometheus.CounterVec
	apiLatency  *prometheus.HistogramVec
	deployments *prometheus.CounterVec
	listRetries prometheus.Counter
}

// New creates a Recorder with all collectors registered.
func New() *Recorder {
	r := &Recorder{
		registry: prometheus.NewRegistry(),
		apiRequests: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "api_requests_total",
				Help:      "Total number of Cloudflare API requests by operation and result",
			},
			[]string{"operation", "result"},
		),
		apiLatency: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "api_request_duration_seconds",
				Help:      "Latency of Cloudflare API requests in seconds",
				Buckets:   prometheus.ExponentialBuckets(0.05, 2, 8), // 50ms to ~6.4s
			},
			[]string{"operation"},
		),
		deployments: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "deployments_total",
				Help:      "Deployments processed by outcome (deleted, skipped, failed, planned)",
			},
			[]string{"outcome"},
		),
		listRetries: prometheus.NewCounter(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "list_retries_total",
				Help:      "Total number of retried deployment page fetches",
			},
		),
	}

	r.registry.MustRegister(r.apiRequests, r.apiLatency, r.deployments, r.listRetries)
	return r
}

// ObserveAPIRequest records one API call. Its signature matches
// cloudflare.Observer.
func (r *Recorder) ObserveAPIRequest(operation string, duration time.Duration, err error) {
	if r == nil {
		return
	}
	result := "success"
	if err != nil {
		result = "error"
	}
	r.apiRequests.WithLabelValues(operation, result).Inc()
	r.apiLatency.WithLabelValues(operation).Observe(duration.Seconds())
}

// DeploymentOutcome counts one processed deployment.
func (r *Recorder) DeploymentOutcome(outcome string) {
	if r == nil {
		return
	}
	r.deployments.WithLabelValues(outcome).Inc()
}

// ListRetry counts one retried page fetch.
func (r *Recorder) ListRetry() {
	if r == nil {
		return
	}
	r.listRetries.Inc()
}

// Registry exposes the underlying registry.
func (r *Recorder) Registry() *prometheus.Registry {
	return r.registry
}

// WriteTextfile writes all metrics in the Prometheus text format to path,
// suitable for the node_exporter textfile collector.
func (r *Recorder) WriteTextfile(path string) error {
	return prometheus.WriteToTextfile(path, r.registry)
}
