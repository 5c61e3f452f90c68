package keeper

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// LaunchMetrics holds the Prometheus metrics for the launch module.
type LaunchMetrics struct {
	PoolsCreated     prometheus.Counter
	TradesTotal      *prometheus.CounterVec
	GraduationsTotal prometheus.Counter
}

var (
	launchMetricsOnce sync.Once
	launchMetrics     *LaunchMetrics
)

// NewLaunchMetrics creates and registers the module metrics (singleton).
func NewLaunchMetrics() *LaunchMetrics {
	launchMetricsOnce.Do(func() {
		launchMetrics = &LaunchMetrics{
			PoolsCreated: promauto.NewCounter(
				prometheus.CounterOpts{
					Namespace: "kiln",
					Subsystem: "launch",
					Name:      "pools_created_total",
					Help:      "Total number of launch pools created",
				},
			),
			TradesTotal: promauto.NewCounterVec(
				prometheus.CounterOpts{
					Namespace: "kiln",
					Subsystem: "launch",
					Name:      "trades_total",
					Help:      "Total number of trades executed",
				},
				[]string{"direction"},
			),
			GraduationsTotal: promauto.NewCounter(
				prometheus.CounterOpts{
					Namespace: "kiln",
					Subsystem: "launch",
					Name:      "graduations_total",
					Help:      "Total number of pools graduated",
				},
			),
		}
	})
	return launchMetrics
}

func recordPoolCreated() {
	NewLaunchMetrics().PoolsCreated.Inc()
}

func recordTrade(direction string) {
	NewLaunchMetrics().TradesTotal.WithLabelValues(direction).Inc()
}

func recordGraduation() {
	NewLaunchMetrics().GraduationsTotal.Inc()
}
