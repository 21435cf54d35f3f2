package keeper

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// SwapMetrics exposes module activity counters to Prometheus
type SwapMetrics struct {
	poolsCreated     prometheus.Counter
	liquidityAdds    prometheus.Counter
	liquidityRemoves prometheus.Counter
	rewardsClaimed   prometheus.Counter
	swaps            *prometheus.CounterVec
}

var (
	metricsOnce     sync.Once
	metricsInstance *SwapMetrics
)

// NewSwapMetrics returns the process-wide metrics instance. Collectors
// register against the default registry exactly once, no matter how
// many keepers are constructed.
func NewSwapMetrics() *SwapMetrics {
	metricsOnce.Do(func() {
		metricsInstance = &SwapMetrics{
			poolsCreated: promauto.NewCounter(prometheus.CounterOpts{
				Namespace: "swap",
				Name:      "pools_created_total",
				Help:      "Number of liquidity pools created",
			}),
			liquidityAdds: promauto.NewCounter(prometheus.CounterOpts{
				Namespace: "swap",
				Name:      "liquidity_adds_total",
				Help:      "Number of add-liquidity operations",
			}),
			liquidityRemoves: promauto.NewCounter(prometheus.CounterOpts{
				Namespace: "swap",
				Name:      "liquidity_removes_total",
				Help:      "Number of remove-liquidity operations",
			}),
			rewardsClaimed: promauto.NewCounter(prometheus.CounterOpts{
				Namespace: "swap",
				Name:      "rewards_claimed_total",
				Help:      "Number of farming reward claims",
			}),
			swaps: promauto.NewCounterVec(prometheus.CounterOpts{
				Namespace: "swap",
				Name:      "trades_total",
				Help:      "Number of executed trades by direction",
			}, []string{"direction"}),
		}
	})
	return metricsInstance
}
