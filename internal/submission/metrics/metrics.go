package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type Metrics struct {
	EventsAppended     *prometheus.CounterVec
	ProjectionDuration *prometheus.HistogramVec
	GuardDenials       prometheus.Counter
	SubmissionsCreated prometheus.Counter
}

func New() *Metrics {
	return &Metrics{
		EventsAppended: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "consign_events_appended_total",
			Help: "Total events appended to the submission log, by kind",
		}, []string{"kind"}),
		ProjectionDuration: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "consign_projection_duration_seconds",
			Help:    "Duration of status projections (read critical path)",
			Buckets: []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1},
		}, []string{"projection"}),
		GuardDenials: promauto.NewCounter(prometheus.CounterOpts{
			Name: "consign_submit_guard_denials_total",
			Help: "Total submit attempts denied because the file chain was not valid",
		}),
		SubmissionsCreated: promauto.NewCounter(prometheus.CounterOpts{
			Name: "consign_submissions_created_total",
			Help: "Total submission headers created",
		}),
	}
}

func (m *Metrics) IncrementEventsAppended(kind string) {
	m.EventsAppended.WithLabelValues(kind).Inc()
}

func (m *Metrics) ObserveProjection(projection string, start time.Time) {
	m.ProjectionDuration.WithLabelValues(projection).Observe(time.Since(start).Seconds())
}

func (m *Metrics) IncrementGuardDenials() {
	m.GuardDenials.Inc()
}

func (m *Metrics) IncrementSubmissionsCreated() {
	m.SubmissionsCreated.Inc()
}
