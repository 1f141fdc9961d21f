package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

type Prometheus struct {
	markersGenerated prometheus.Histogram
	ridesBooked      *prometheus.CounterVec
	useCaseTotal     *prometheus.CounterVec
	useCaseDuration  *prometheus.HistogramVec
	httpDuration     *prometheus.HistogramVec
	externalDuration *prometheus.HistogramVec
	cacheHits        *prometheus.CounterVec
	cacheMisses      *prometheus.CounterVec
	staleDropped     *prometheus.CounterVec
	bookingEvents    *prometheus.CounterVec
}

func NewPrometheusMetrics(reg prometheus.Registerer, serviceName string) *Prometheus {
	m := &Prometheus{
		markersGenerated: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:        "rideflow_markers_generated",
			Help:        "Markers produced per driver refresh.",
			Buckets:     []float64{0, 1, 2, 5, 10, 20, 50},
			ConstLabels: prometheus.Labels{"service": serviceName},
		}),
		ridesBooked: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:        "rideflow_rides_booked_total",
			Help:        "Total rides booked.",
			ConstLabels: prometheus.Labels{"service": serviceName},
		}, []string{"status"}),
		useCaseTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:        "app_usecase_total",
			Help:        "Total number of Use Case executions.",
			ConstLabels: prometheus.Labels{"service": serviceName},
		}, []string{"use_case", "status"}),
		useCaseDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:        "app_usecase_duration_seconds",
			Help:        "Use Case execution latency.",
			Buckets:     []float64{.005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10},
			ConstLabels: prometheus.Labels{"service": serviceName},
		}, []string{"use_case", "status"}),
		httpDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:        "app_http_duration_seconds",
			Help:        "Duration of HTTP requests.",
			Buckets:     []float64{.005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10},
			ConstLabels: prometheus.Labels{"service": serviceName},
		}, []string{"method", "path", "status_code"}),
		externalDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:        "app_external_call_duration_seconds",
			Help:        "Latency of calls to external collaborators.",
			Buckets:     prometheus.DefBuckets,
			ConstLabels: prometheus.Labels{"service": serviceName},
		}, []string{"external_service", "status"}),
		cacheHits: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:        "app_cache_hits_total",
			Help:        "Total cache hits.",
			ConstLabels: prometheus.Labels{"service": serviceName},
		}, []string{"cache_type"}),
		cacheMisses: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:        "app_cache_misses_total",
			Help:        "Total cache misses.",
			ConstLabels: prometheus.Labels{"service": serviceName},
		}, []string{"cache_type"}),
		staleDropped: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:        "app_stale_responses_dropped_total",
			Help:        "Responses discarded because newer state superseded them.",
			ConstLabels: prometheus.Labels{"service": serviceName},
		}, []string{"kind"}),
		bookingEvents: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:        "app_booking_events_processed_total",
			Help:        "Total booking events processed by the worker.",
			ConstLabels: prometheus.Labels{"service": serviceName},
		}, []string{"status"}),
	}

	reg.MustRegister(
		m.markersGenerated,
		m.ridesBooked,
		m.useCaseTotal,
		m.useCaseDuration,
		m.httpDuration,
		m.externalDuration,
		m.cacheHits,
		m.cacheMisses,
		m.staleDropped,
		m.bookingEvents,
	)
	reg.MustRegister(collectors.NewGoCollector())
	reg.MustRegister(collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

	return m
}

func (p *Prometheus) RecordMarkersGenerated(count int) {
	p.markersGenerated.Observe(float64(count))
}

func (p *Prometheus) RecordRideBooked(status string) {
	p.ridesBooked.WithLabelValues(status).Inc()
}

func (p *Prometheus) RecordUseCaseExecution(useCase string, success bool, duration time.Duration) {
	status := "success"
	if !success {
		status = "failure"
	}
	p.useCaseTotal.WithLabelValues(useCase, status).Inc()
	p.useCaseDuration.WithLabelValues(useCase, status).Observe(duration.Seconds())
}

func (p *Prometheus) ObserveHTTPRequestDuration(method, path, code string, duration float64) {
	p.httpDuration.WithLabelValues(method, path, code).Observe(duration)
}

func (p *Prometheus) ObserveExternalCallDuration(service string, success bool, duration float64) {
	p.externalDuration.WithLabelValues(service, strconv.FormatBool(success)).Observe(duration)
}

func (p *Prometheus) IncCacheHit(cacheType string) {
	p.cacheHits.WithLabelValues(cacheType).Inc()
}

func (p *Prometheus) IncCacheMiss(cacheType string) {
	p.cacheMisses.WithLabelValues(cacheType).Inc()
}

func (p *Prometheus) IncStaleResponsesDropped(kind string) {
	p.staleDropped.WithLabelValues(kind).Inc()
}

func (p *Prometheus) IncBookingEventsProcessed(status string) {
	p.bookingEvents.WithLabelValues(status).Inc()
}
