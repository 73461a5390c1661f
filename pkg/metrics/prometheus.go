package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Recorder implements domain.repository.LtpMetrics using Prometheus.
type Recorder struct {
	fetchTotal     *prometheus.CounterVec
	fetchDuration  *prometheus.HistogramVec
	lastPrice      *prometheus.GaugeVec
	aggregatePairs prometheus.Gauge
}

// New creates a Prometheus metrics recorder registered on reg.
// A nil reg uses the default registerer.
func New(reg prometheus.Registerer) *Recorder {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	f := promauto.With(reg)
	return &Recorder{
		fetchTotal: f.NewCounterVec(
			prometheus.CounterOpts{
				Name: "krakenltp_fetch_total",
				Help: "Ticker fetches by pair and outcome",
			},
			[]string{"pair", "outcome"},
		),
		fetchDuration: f.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "krakenltp_fetch_duration_seconds",
				Help:    "Duration of ticker fetches in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"pair"},
		),
		lastPrice: f.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "krakenltp_last_price",
				Help: "Last reported trade price for a pair",
			},
			[]string{"pair"},
		),
		aggregatePairs: f.NewGauge(
			prometheus.GaugeOpts{
				Name: "krakenltp_aggregate_pairs",
				Help: "Number of priced pairs in the last aggregate",
			},
		),
	}
}

// RecordFetch records one fetch outcome and its latency in seconds.
func (r *Recorder) RecordFetch(pair, outcome string, seconds float64) {
	r.fetchTotal.WithLabelValues(pair, outcome).Inc()
	r.fetchDuration.WithLabelValues(pair).Observe(seconds)
}

// RecordLastPrice records the last price for a pair.
func (r *Recorder) RecordLastPrice(pair string, price float64) {
	r.lastPrice.WithLabelValues(pair).Set(price)
}

// RecordAggregate records how many pairs the last aggregate priced.
func (r *Recorder) RecordAggregate(priced int) {
	r.aggregatePairs.Set(float64(priced))
}
