package metrics

import (
	"time"

	"github.com/goodnatureofminers/blockinsight7000-anomaly/internal/anomaly/model"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	statsRPCRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "blockinsight7000",
		Subsystem: "stats_rpc",
		Name:      "operations_total",
		Help:      "Count of node RPC calls made while collecting block statistics.",
	}, []string{"operation", "coin", "network", "status"})
	statsRPCRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "blockinsight7000",
		Subsystem: "stats_rpc",
		Name:      "operation_duration_seconds",
		Help:      "Duration of node RPC calls made while collecting block statistics.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"operation", "coin", "network", "status"})
)

// RPCClient tracks node RPC calls for one coin/network.
type RPCClient struct {
	coin    string
	network string
}

// NewRPCClient constructs a metrics collector for RPC calls.
func NewRPCClient(coin model.Coin, network model.Network) *RPCClient {
	return &RPCClient{coin: orUnknown(string(coin)), network: orUnknown(string(network))}
}

// Observe records a single RPC call outcome and duration.
func (m RPCClient) Observe(operation string, err error, started time.Time) {
	statsRPCRequestsTotal.WithLabelValues(operation, m.coin, m.network, status(err)).Inc()
	statsRPCRequestDuration.WithLabelValues(operation, m.coin, m.network, status(err)).Observe(time.Since(started).Seconds())
}

func orUnknown(s string) string {
	if s == "" {
		return "unknown"
	}
	return s
}
