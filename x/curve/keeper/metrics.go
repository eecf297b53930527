package keeper

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds all Prometheus metrics for the curve module
type Metrics struct {
	// Trade metrics
	TradesTotal   *prometheus.CounterVec
	TradeVolume   *prometheus.CounterVec
	TradeLatency  prometheus.Histogram
	TradeSlippage prometheus.Histogram

	// Registry metrics
	PairsTotal prometheus.Gauge

	// Maintenance metrics
	BackupsTotal  prometheus.Counter
	RestoresTotal prometheus.Counter
}

var (
	metricsOnce sync.Once
	metrics     *Metrics
)

// NewMetrics creates and registers curve metrics (singleton pattern)
func NewMetrics() *Metrics {
	metricsOnce.Do(func() {
		metrics = &Metrics{
			TradesTotal: promauto.NewCounterVec(
				prometheus.CounterOpts{
					Namespace: "curved",
					Subsystem: "curve",
					Name:      "trades_total",
					Help:      "Total number of inbound trade requests by outcome",
				},
				[]string{"status"},
			),
			TradeVolume: promauto.NewCounterVec(
				prometheus.CounterOpts{
					Namespace: "curved",
					Subsystem: "curve",
					Name:      "trade_volume_total",
					Help:      "Total traded input volume in raw units",
				},
				[]string{"symbol"},
			),
			TradeLatency: promauto.NewHistogram(
				prometheus.HistogramOpts{
					Namespace: "curved",
					Subsystem: "curve",
					Name:      "trade_latency_seconds",
					Help:      "Trade request handling latency",
					Buckets:   prometheus.DefBuckets,
				},
			),
			TradeSlippage: promauto.NewHistogram(
				prometheus.HistogramOpts{
					Namespace: "curved",
					Subsystem: "curve",
					Name:      "trade_slippage_ratio",
					Help:      "Realized output relative to declared minimum, as a ratio above it",
					Buckets:   []float64{0, 0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1},
				},
			),
			PairsTotal: promauto.NewGauge(
				prometheus.GaugeOpts{
					Namespace: "curved",
					Subsystem: "curve",
					Name:      "pairs_total",
					Help:      "Number of registered pairs",
				},
			),
			BackupsTotal: promauto.NewCounter(
				prometheus.CounterOpts{
					Namespace: "curved",
					Subsystem: "curve",
					Name:      "backups_total",
					Help:      "Total number of registry snapshots taken",
				},
			),
			RestoresTotal: promauto.NewCounter(
				prometheus.CounterOpts{
					Namespace: "curved",
					Subsystem: "curve",
					Name:      "restores_total",
					Help:      "Total number of registry restores from snapshot",
				},
			),
		}
	})
	return metrics
}
