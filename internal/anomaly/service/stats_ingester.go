package service

import (
	"context"
	"errors"
	"time"

	"github.com/goodnatureofminers/blockinsight7000-anomaly/internal/anomaly/model"
	"github.com/goodnatureofminers/blockinsight7000-anomaly/pkg/workerpool"
	"go.uber.org/zap"
)

// StatsIngesterConfig tunes the stats ingestion loop. Zero values select defaults.
type StatsIngesterConfig struct {
	StartHeight  uint64
	ChunkSize    uint64
	WorkerCount  int
	PollInterval time.Duration
}

// StatsIngester copies per-block statistics from a node into the repository,
// following the chain tip.
type StatsIngester struct {
	logger       *zap.Logger
	coin         model.Coin
	network      model.Network
	repository   StatsRepository
	source       StatsSource
	metrics      StatsIngesterMetrics
	sleep        func(context.Context, time.Duration) error
	startHeight  uint64
	chunkSize    uint64
	workerCount  int
	pollInterval time.Duration
}

func NewStatsIngester(
	repo StatsRepository,
	source StatsSource,
	metrics StatsIngesterMetrics,
	coin model.Coin,
	network model.Network,
	cfg StatsIngesterConfig,
	logger *zap.Logger,
) (*StatsIngester, error) {
	if metrics == nil {
		return nil, errors.New("stats ingester metrics is required")
	}
	if cfg.ChunkSize == 0 {
		cfg.ChunkSize = defaultStatsChunkSize
	}
	if cfg.WorkerCount <= 0 {
		cfg.WorkerCount = defaultStatsWorkerCount
	}
	if cfg.PollInterval <= 0 {
		cfg.PollInterval = defaultStatsPollInterval
	}

	return &StatsIngester{
		logger: logger.With(
			zap.String("coin", string(coin)),
			zap.String("network", string(network)),
		).Named("statsIngester"),
		coin:         coin,
		network:      network,
		repository:   repo,
		source:       source,
		metrics:      metrics,
		sleep:        sleepContext,
		startHeight:  cfg.StartHeight,
		chunkSize:    cfg.ChunkSize,
		workerCount:  cfg.WorkerCount,
		pollInterval: cfg.PollInterval,
	}, nil
}

// Run syncs until ctx is canceled. Failed iterations are retried after the poll interval.
func (s *StatsIngester) Run(ctx context.Context) error {
	for {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		n, err := s.SyncOnce(ctx)
		if err != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			s.logger.Warn("sync iteration failed, backing off", zap.Error(err), zap.Duration("sleep", s.pollInterval))
		}
		if err != nil || n == 0 {
			if sleepErr := s.sleep(ctx, s.pollInterval); sleepErr != nil {
				return sleepErr
			}
		}
	}
}

// SyncOnce stores the next chunk of missing heights and returns how many rows were written.
func (s *StatsIngester) SyncOnce(ctx context.Context) (n int, err error) {
	started := time.Now()
	var last uint64
	defer func() {
		s.metrics.ObserveSync(err, n, last, started)
	}()

	latest, err := s.source.LatestHeight(ctx)
	if err != nil {
		return 0, err
	}
	stored, err := s.repository.MaxBlockStatsHeight(ctx, s.coin, s.network)
	if err != nil {
		return 0, err
	}

	next := stored + 1
	if next < s.startHeight {
		next = s.startHeight
	}
	if next > latest {
		s.logger.Debug("block stats are up to date", zap.Uint64("height", stored))
		return 0, nil
	}
	last = latest
	if last-next+1 > s.chunkSize {
		last = next + s.chunkSize - 1
	}

	heights := make([]uint64, 0, last-next+1)
	for h := next; h <= last; h++ {
		heights = append(heights, h)
	}

	s.logger.Info("fetching block stats", zap.Uint64("from_height", next), zap.Uint64("to_height", last))
	stats, err := workerpool.Map(ctx, s.workerCount, heights, s.source.FetchBlockStats)
	if err != nil {
		return 0, err
	}
	if err := s.repository.InsertBlockStats(ctx, stats); err != nil {
		return 0, err
	}
	return len(stats), nil
}

func sleepContext(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
