package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type Collector struct {
	registry *prometheus.Registry

	RequestsTotal   *prometheus.CounterVec
	RequestDuration *prometheus.HistogramVec
	InFlightGauge   prometheus.Gauge

	PatientsCreatedTotal     prometheus.Counter
	AppointmentsCreatedTotal prometheus.Counter
	BillsCreatedTotal        prometheus.Counter
	PrescriptionsIssued      prometheus.Counter
	RoomAssignmentsTotal     prometheus.Counter
	DeletesTotal             *prometheus.CounterVec
	ConstraintRejections     *prometheus.CounterVec
}

// NewCollector registers all clinic metrics on a private registry.
func NewCollector(serviceName string) *Collector {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	factory := promauto.With(reg)

	return &Collector{
		registry: reg,

		RequestsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: serviceName,
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "Total number of HTTP requests by method, path, and status code.",
		}, []string{"method", "path", "status"}),

		RequestDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: serviceName,
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "HTTP request latency distribution.",
			Buckets:   []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1.0, 2.5, 5.0},
		}, []string{"method", "path", "status"}),

		InFlightGauge: factory.NewGauge(prometheus.GaugeOpts{
			Namespace: serviceName,
			Subsystem: "http",
			Name:      "in_flight_requests",
			Help:      "Current number of in-flight HTTP requests.",
		}),

		PatientsCreatedTotal: factory.NewCounter(prometheus.CounterOpts{
			Namespace: serviceName,
			Subsystem: "clinic",
			Name:      "patients_created_total",
			Help:      "Total number of patient records created.",
		}),

		AppointmentsCreatedTotal: factory.NewCounter(prometheus.CounterOpts{
			Namespace: serviceName,
			Subsystem: "clinic",
			Name:      "appointments_created_total",
			Help:      "Total appointments booked.",
		}),

		BillsCreatedTotal: factory.NewCounter(prometheus.CounterOpts{
			Namespace: serviceName,
			Subsystem: "clinic",
			Name:      "bills_created_total",
			Help:      "Total bills issued.",
		}),

		PrescriptionsIssued: factory.NewCounter(prometheus.CounterOpts{
			Namespace: serviceName,
			Subsystem: "clinic",
			Name:      "prescriptions_issued_total",
			Help:      "Total prescriptions issued.",
		}),

		RoomAssignmentsTotal: factory.NewCounter(prometheus.CounterOpts{
			Namespace: serviceName,
			Subsystem: "clinic",
			Name:      "room_assignments_total",
			Help:      "Total appointments assigned to a room.",
		}),

		DeletesTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: serviceName,
			Subsystem: "clinic",
			Name:      "deletes_total",
			Help:      "Deleted records by entity.",
		}, []string{"entity"}),

		ConstraintRejections: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: serviceName,
			Subsystem: "db",
			Name:      "constraint_rejections_total",
			Help:      "Writes rejected by a database constraint or trigger, by kind.",
		}, []string{"kind"}),
	}
}

// Handler exposes the collector's registry in the Prometheus text format.
func (c *Collector) Handler() http.Handler {
	return promhttp.HandlerFor(c.registry, promhttp.HandlerOpts{Registry: c.registry})
}

// Registry returns the underlying registry, mostly for tests.
func (c *Collector) Registry() *prometheus.Registry {
	return c.registry
}
