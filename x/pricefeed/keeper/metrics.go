package keeper

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// PricefeedMetrics holds all Prometheus metrics for the pricefeed module
type PricefeedMetrics struct {
	// Valuation metrics
	ValuationsTotal *prometheus.CounterVec

	// Circuit breaker metrics
	RiskOff              prometheus.Gauge
	RiskTransitionsTotal *prometheus.CounterVec
	PegDeviation         prometheus.Gauge
	InBandCount          prometheus.Gauge

	// Registry metrics
	SourcesConfigured prometheus.Gauge
}

var (
	pricefeedMetricsOnce sync.Once
	pricefeedMetrics     *PricefeedMetrics
)

// NewPricefeedMetrics creates and registers pricefeed metrics (singleton pattern)
func NewPricefeedMetrics() *PricefeedMetrics {
	pricefeedMetricsOnce.Do(func() {
		pricefeedMetrics = &PricefeedMetrics{
			ValuationsTotal: promauto.NewCounterVec(
				prometheus.CounterOpts{
					Namespace: "cairn",
					Subsystem: "pricefeed",
					Name:      "valuations_total",
					Help:      "Valuation calls by path and result",
				},
				[]string{"path", "result"},
			),
			RiskOff: promauto.NewGauge(
				prometheus.GaugeOpts{
					Namespace: "cairn",
					Subsystem: "pricefeed",
					Name:      "risk_off",
					Help:      "Whether the risk circuit breaker is tripped (1) or clear (0)",
				},
			),
			RiskTransitionsTotal: promauto.NewCounterVec(
				prometheus.CounterOpts{
					Namespace: "cairn",
					Subsystem: "pricefeed",
					Name:      "risk_transitions_total",
					Help:      "Risk circuit breaker flips by direction",
				},
				[]string{"direction"},
			),
			PegDeviation: promauto.NewGauge(
				prometheus.GaugeOpts{
					Namespace: "cairn",
					Subsystem: "pricefeed",
					Name:      "peg_deviation",
					Help:      "Last observed absolute peg deviation from parity",
				},
			),
			InBandCount: promauto.NewGauge(
				prometheus.GaugeOpts{
					Namespace: "cairn",
					Subsystem: "pricefeed",
					Name:      "peg_in_band_rounds",
					Help:      "Consecutive in-band peg rounds observed",
				},
			),
			SourcesConfigured: promauto.NewGauge(
				prometheus.GaugeOpts{
					Namespace: "cairn",
					Subsystem: "pricefeed",
					Name:      "sources_configured",
					Help:      "Number of configured pair sources",
				},
			),
		}
	})
	return pricefeedMetrics
}

// GetPricefeedMetrics returns the singleton pricefeed metrics instance
func GetPricefeedMetrics() *PricefeedMetrics {
	if pricefeedMetrics == nil {
		return NewPricefeedMetrics()
	}
	return pricefeedMetrics
}
