// Package metrics instruments the simulation engine with Prometheus
// collectors. The registry is plain prometheus; callers decide whether
// and how to expose it.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

// Registry holds all Prometheus metrics.
type Registry struct {
	*prometheus.Registry

	signalsGenerated *prometheus.CounterVec
	backtestsTotal   *prometheus.CounterVec
	backtestDuration prometheus.Histogram
	tradesExecuted   *prometheus.CounterVec
	feedSteps        prometheus.Counter
	ledgerEquity     prometheus.Gauge
	ledgerCash       prometheus.Gauge
}

// NewRegistry creates a new metrics registry with all metrics registered.
func NewRegistry() *Registry {
	reg := prometheus.NewRegistry()

	// Register Go runtime metrics
	reg.MustRegister(collectors.NewGoCollector())
	reg.MustRegister(collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

	r := &Registry{
		Registry: reg,

		signalsGenerated: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "tradesim_signals_generated_total",
				Help: "Total number of signals generated",
			},
			[]string{"strategy", "action"},
		),
		backtestsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "tradesim_backtests_total",
				Help: "Total number of backtests",
			},
			[]string{"strategy", "status"},
		),
		backtestDuration: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "tradesim_backtest_duration_seconds",
				Help:    "Backtest duration in seconds",
				Buckets: []float64{0.001, 0.01, 0.1, 0.5, 1, 5, 10, 30},
			},
		),
		tradesExecuted: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "tradesim_trades_executed_total",
				Help: "Total number of trades executed in the ledger",
			},
			[]string{"side"},
		),
		feedSteps: prometheus.NewCounter(
			prometheus.CounterOpts{
				Name: "tradesim_feed_steps_total",
				Help: "Total number of synthetic feed candles processed",
			},
		),
		ledgerEquity: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Name: "tradesim_ledger_equity",
				Help: "Current ledger equity (cash plus position value)",
			},
		),
		ledgerCash: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Name: "tradesim_ledger_cash",
				Help: "Current ledger cash balance",
			},
		),
	}

	reg.MustRegister(r.signalsGenerated)
	reg.MustRegister(r.backtestsTotal)
	reg.MustRegister(r.backtestDuration)
	reg.MustRegister(r.tradesExecuted)
	reg.MustRegister(r.feedSteps)
	reg.MustRegister(r.ledgerEquity)
	reg.MustRegister(r.ledgerCash)

	return r
}

// RecordSignal records a generated signal.
func (r *Registry) RecordSignal(strategy, action string) {
	r.signalsGenerated.WithLabelValues(strategy, action).Inc()
}

// RecordBacktest records a backtest completion.
func (r *Registry) RecordBacktest(strategy, status string, duration float64) {
	r.backtestsTotal.WithLabelValues(strategy, status).Inc()
	r.backtestDuration.Observe(duration)
}

// RecordTrade records an executed ledger trade.
func (r *Registry) RecordTrade(side string) {
	r.tradesExecuted.WithLabelValues(side).Inc()
}

// RecordFeedStep records one processed synthetic candle.
func (r *Registry) RecordFeedStep() {
	r.feedSteps.Inc()
}

// SetLedgerState updates the ledger equity and cash gauges.
func (r *Registry) SetLedgerState(equity, cash float64) {
	r.ledgerEquity.Set(equity)
	r.ledgerCash.Set(cash)
}
