package metrics

import "time"

type Metrics interface {
	// Business
	RecordMarkersGenerated(count int)
	RecordRideBooked(status string)
	RecordUseCaseExecution(useCaseName string, success bool, duration time.Duration)

	// Infrastructure (HTTP & external services)
	ObserveHTTPRequestDuration(method, path, statusCode string, duration float64)
	ObserveExternalCallDuration(service string, success bool, duration float64)

	// Performance and Resilience
	IncCacheHit(cacheType string)
	IncCacheMiss(cacheType string)
	IncStaleResponsesDropped(kind string)
	IncBookingEventsProcessed(status string)
}
