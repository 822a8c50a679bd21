package metrics

import (
	"time"

	"github.com/goodnatureofminers/blockinsight7000-anomaly/internal/anomaly/model"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	statsIngesterSyncTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "blockinsight7000",
		Subsystem: "stats_ingester",
		Name:      "sync_total",
		Help:      "Count of block stats sync iterations.",
	}, []string{"coin", "network", "status"})

	statsIngesterSyncDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "blockinsight7000",
		Subsystem: "stats_ingester",
		Name:      "sync_duration_seconds",
		Help:      "Duration of a block stats sync iteration.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"coin", "network", "status"})

	statsIngesterBlocksTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "blockinsight7000",
		Subsystem: "stats_ingester",
		Name:      "blocks_total",
		Help:      "Count of block stats rows stored.",
	}, []string{"coin", "network"})

	statsIngesterHeight = promauto.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: "blockinsight7000",
		Subsystem: "stats_ingester",
		Name:      "stored_height",
		Help:      "Highest block height with stored statistics.",
	}, []string{"coin", "network"})
)

// StatsIngester tracks block stats ingestion for one coin/network.
type StatsIngester struct {
	coin    string
	network string
}

// NewStatsIngester constructs a StatsIngester metrics collector.
func NewStatsIngester(coin model.Coin, network model.Network) *StatsIngester {
	return &StatsIngester{coin: orUnknown(string(coin)), network: orUnknown(string(network))}
}

// ObserveSync records one sync iteration storing blocks rows up to height.
func (m StatsIngester) ObserveSync(err error, blocks int, height uint64, started time.Time) {
	statsIngesterSyncTotal.WithLabelValues(m.coin, m.network, status(err)).Inc()
	statsIngesterSyncDuration.WithLabelValues(m.coin, m.network, status(err)).Observe(time.Since(started).Seconds())
	if err != nil || blocks == 0 {
		return
	}
	statsIngesterBlocksTotal.WithLabelValues(m.coin, m.network).Add(float64(blocks))
	statsIngesterHeight.WithLabelValues(m.coin, m.network).Set(float64(height))
}
