// api/metrics/metrics.go
package metrics

import (
	"errors"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	etmf_errors "github.com/dev-mohitbeniwal/etmf/api/errors"
)

var (
	HTTPRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "etmf",
		Name:      "http_requests_total",
		Help:      "HTTP requests by route, method and status code.",
	}, []string{"route", "method", "status"})

	HTTPDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "etmf",
		Name:      "http_request_duration_seconds",
		Help:      "HTTP request latency by route and method.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"route", "method"})

	Operations = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "etmf",
		Name:      "operations_total",
		Help:      "Domain operations by entity, operation and outcome kind.",
	}, []string{"entity", "operation", "outcome"})

	UploadedBytes = promauto.NewHistogram(prometheus.HistogramOpts{
		Namespace: "etmf",
		Name:      "upload_size_bytes",
		Help:      "Size of accepted document file uploads.",
		Buckets:   prometheus.ExponentialBuckets(1024, 4, 10),
	})

	RevisionConflicts = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "etmf",
		Name:      "revision_conflicts_total",
		Help:      "Operations that failed after exhausting optimistic revision retries.",
	}, []string{"entity"})
)

// ObserveOperation counts one domain operation under the kind of its error.
func ObserveOperation(entity, operation string, err error) {
	outcome := "ok"
	if err != nil {
		outcome = etmf_errors.KindName(etmf_errors.KindOf(err))
		if errors.Is(err, etmf_errors.ErrConcurrentModification) {
			RevisionConflicts.WithLabelValues(entity).Inc()
		}
	}
	Operations.WithLabelValues(entity, operation, outcome).Inc()
}
