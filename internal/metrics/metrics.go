// Package metrics exposes Prometheus collectors for the ledger service.
package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/mmynk/debtbook/internal/calculator"
)

const namespace = "debtbook"

// Metrics holds every collector. A nil *Metrics is valid and records nothing.
type Metrics struct {
	registry *prometheus.Registry

	requests *prometheus.CounterVec
	duration *prometheus.HistogramVec

	people       prometheus.Gauge
	transactions prometheus.Gauge
	owedToMe     prometheus.Gauge
	iOwe         prometheus.Gauge
	net          prometheus.Gauge
}

// New creates the collectors and registers them on reg.
func New(reg *prometheus.Registry) *Metrics {
	m := &Metrics{
		registry: reg,
		requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "rpc_requests_total",
			Help:      "RPC requests by procedure and result code.",
		}, []string{"procedure", "code"}),
		duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "rpc_duration_seconds",
			Help:      "RPC latency by procedure.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"procedure"}),
		people: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "people",
			Help:      "Number of people in the ledger.",
		}),
		transactions: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "transactions",
			Help:      "Number of transactions in the ledger.",
		}),
		owedToMe: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "owed_to_me",
			Help:      "Sum of positive signed amounts.",
		}),
		iOwe: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "i_owe",
			Help:      "Magnitude of the sum of negative signed amounts.",
		}),
		net: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "net_balance",
			Help:      "Net balance across the ledger.",
		}),
	}
	reg.MustRegister(m.requests, m.duration, m.people, m.transactions, m.owedToMe, m.iOwe, m.net)
	return m
}

// ObserveRPC records one finished call.
func (m *Metrics) ObserveRPC(procedure, code string, elapsed time.Duration) {
	if m == nil {
		return
	}
	m.requests.WithLabelValues(procedure, code).Inc()
	m.duration.WithLabelValues(procedure).Observe(elapsed.Seconds())
}

// SetSummary refreshes the ledger gauges.
func (m *Metrics) SetSummary(s calculator.Summary) {
	if m == nil {
		return
	}
	m.people.Set(float64(s.PersonCount))
	m.transactions.Set(float64(s.TransactionCount))
	m.owedToMe.Set(s.PositiveTotal.InexactFloat64())
	m.iOwe.Set(s.NegativeTotal.Abs().InexactFloat64())
	m.net.Set(s.Net.InexactFloat64())
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}
