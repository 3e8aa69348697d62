package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

var (
	// Registry is the dedicated Prometheus registry for the service.
	Registry = prometheus.NewRegistry()

	// HTTPRequests counts requests by method, path, and status.
	HTTPRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{Name: "http_requests_total", Help: "Total HTTP requests."},
		[]string{"method", "path", "status"},
	)
	// HTTPDuration records request durations in seconds.
	HTTPDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{Name: "http_request_duration_seconds", Help: "HTTP request duration in seconds.", Buckets: prometheus.DefBuckets},
		[]string{"method", "path", "status"},
	)

	// TravelFallbacks counts travel estimates resolved without live routing.
	TravelFallbacks = prometheus.NewCounterVec(
		prometheus.CounterOpts{Name: "travel_fallbacks_total", Help: "Travel estimates served from fallback, by reason."},
		[]string{"reason"},
	)
	// PricingClamps counts total-multiplier clamp events against the band.
	PricingClamps = prometheus.NewCounterVec(
		prometheus.CounterOpts{Name: "pricing_multiplier_clamps_total", Help: "Pricing multiplier clamp events by bound."},
		[]string{"bound"},
	)
)

// RegisterDefault registers collectors to the service registry.
func RegisterDefault() {
	regOnce.Do(func() {
		Registry.MustRegister(HTTPRequests)
		Registry.MustRegister(HTTPDuration)
		Registry.MustRegister(TravelFallbacks)
		Registry.MustRegister(PricingClamps)
		// Go/process collectors on our registry
		Registry.MustRegister(collectors.NewGoCollector())
		Registry.MustRegister(collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	})
}

var regOnce sync.Once
