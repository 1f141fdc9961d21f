package metrics

import "time"

type nopMetrics struct{}

// NewNop returns a metrics sink that records nothing. Intended for tests.
func NewNop() Metrics { return nopMetrics{} }

func (nopMetrics) RecordMarkersGenerated(count int)                                             {}
func (nopMetrics) RecordRideBooked(status string)                                               {}
func (nopMetrics) RecordUseCaseExecution(useCaseName string, success bool, d time.Duration)     {}
func (nopMetrics) ObserveHTTPRequestDuration(method, path, statusCode string, duration float64) {}
func (nopMetrics) ObserveExternalCallDuration(service string, success bool, duration float64)   {}
func (nopMetrics) IncCacheHit(cacheType string)                                                 {}
func (nopMetrics) IncCacheMiss(cacheType string)                                                {}
func (nopMetrics) IncStaleResponsesDropped(kind string)                                         {}
func (nopMetrics) IncBookingEventsProcessed(status string)                                      {}
