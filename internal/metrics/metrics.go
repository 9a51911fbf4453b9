package metrics

import "github.com/prometheus/client_golang/prometheus"

type Counter interface {
	Inc(labels ...string)
}

type Counters struct {
	LogsCreated Counter
	LogsDeleted Counter

	APIRequests Counter
}

type PrometheusCounter struct {
	counter *prometheus.CounterVec
}

func NewPrometheusCounter(name, help string, labels []string) *PrometheusCounter {
	c := &PrometheusCounter{
		counter: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: name,
			Help: help,
		}, labels),
	}
	prometheus.MustRegister(c.counter)
	return c
}

func (p *PrometheusCounter) Inc(labels ...string) {
	p.counter.WithLabelValues(labels...).Inc()
}

func New() *Counters {
	return &Counters{
		LogsCreated: NewPrometheusCounter(
			"logs_created_total",
			"Log entries created via the API",
			[]string{"source", "severity"},
		),
		LogsDeleted: NewPrometheusCounter(
			"logs_deleted_total",
			"Log entries hard-deleted via the API",
			[]string{},
		),
		APIRequests: NewPrometheusCounter(
			"api_requests_total",
			"API requests by operation and outcome",
			[]string{"operation", "status"},
		),
	}
}

// NewTestCounters registers on a throwaway registry so parallel tests do not
// collide on the default one.
func NewTestCounters() *Counters {
	reg := prometheus.NewRegistry()

	logsCreated := &PrometheusCounter{
		counter: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "logs_created_total",
			Help: "Log entries created via the API",
		}, []string{"source", "severity"}),
	}

	logsDeleted := &PrometheusCounter{
		counter: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "logs_deleted_total",
			Help: "Log entries hard-deleted via the API",
		}, []string{}),
	}

	apiRequests := &PrometheusCounter{
		counter: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "api_requests_total",
			Help: "API requests by operation and outcome",
		}, []string{"operation", "status"}),
	}

	reg.MustRegister(logsCreated.counter)
	reg.MustRegister(logsDeleted.counter)
	reg.MustRegister(apiRequests.counter)

	return &Counters{
		LogsCreated: logsCreated,
		LogsDeleted: logsDeleted,
		APIRequests: apiRequests,
	}
}
