package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "medibuddy"

var (
	// CandidatesTotal cuenta candidatos por outcome (normalized/defaulted/discarded).
	CandidatesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "candidates_total",
			Help:      "Extracted medicine candidates by normalization outcome.",
		},
		[]string{"outcome"},
	)

	IntakeLabelsDropped = promauto.NewCounter(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "intake_labels_dropped_total",
			Help:      "Free-text intake labels that matched no canonical slot.",
		},
	)

	TimelineDateFallbacks = promauto.NewCounter(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "timeline_date_fallbacks_total",
			Help:      "Timeline day labels that failed to parse and fell back to now.",
		},
	)

	ProviderRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "provider_requests_total",
			Help:      "Calls to external AI providers by result.",
		},
		[]string{"provider", "result"},
	)

	// AlarmMarks cuenta alarmas marcadas por status (taken/missed/delayed).
	AlarmMarks = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "alarm_marks_total",
			Help:      "Alarms marked by the patient or caretaker, by status.",
		},
		[]string{"status"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request latency by route pattern.",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"method", "route", "status"},
	)
)

// Handler expone el registry default para /metrics.
func Handler() http.Handler {
	return promhttp.Handler()
}
