package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/goodnatureofminers/blockinsight7000-anomaly/internal/anomaly/model"
	"github.com/goodnatureofminers/blockinsight7000-anomaly/internal/anomaly/pipeline"
	"github.com/goodnatureofminers/blockinsight7000-anomaly/pkg/safe"
	"go.uber.org/zap"
)

// ScanRequest selects the blocks to analyse.
type ScanRequest struct {
	Coin       model.Coin
	Network    model.Network
	FromHeight uint64
	ToHeight   uint64
	Percentile int
	Store      bool
}

// ScanService loads block tables, runs the anomaly pipeline and optionally
// persists the scores.
type ScanService struct {
	source TableSource
	store  ScoreStore
	runner Runner
	logger *zap.Logger
	now    func() time.Time
}

// NewScanService constructs a ScanService. source and store may be nil when
// only ScanTable is used.
func NewScanService(source TableSource, store ScoreStore, runner Runner, logger *zap.Logger) *ScanService {
	return &ScanService{
		source: source,
		store:  store,
		runner: runner,
		logger: logger.Named("scan"),
		now:    time.Now,
	}
}

// Scan loads the requested height range and runs the pipeline over it.
func (s *ScanService) Scan(ctx context.Context, req ScanRequest) (*pipeline.Result, error) {
	if s.source == nil {
		return nil, errors.New("scan source is not configured")
	}
	if req.ToHeight < req.FromHeight {
		return nil, fmt.Errorf("invalid height range [%d, %d]", req.FromHeight, req.ToHeight)
	}
	table, err := s.source.BlockStats(ctx, req.Coin, req.Network, req.FromHeight, req.ToHeight)
	if err != nil {
		return nil, fmt.Errorf("load block stats: %w", err)
	}

	logger := s.logger.With(
		zap.String("coin", string(req.Coin)),
		zap.String("network", string(req.Network)),
		zap.Uint64("from_height", req.FromHeight),
		zap.Uint64("to_height", req.ToHeight),
	)
	res, err := s.run(logger, table, req.Percentile)
	if err != nil {
		return nil, err
	}

	if req.Store {
		if err := s.Store(ctx, req.Coin, req.Network, res); err != nil {
			return nil, err
		}
	}
	return res, nil
}

// ScanTable runs the pipeline over an already loaded table.
func (s *ScanService) ScanTable(table *model.Table, percentile int) (*pipeline.Result, error) {
	return s.run(s.logger, table, percentile)
}

// Store persists the scored rows of res.
func (s *ScanService) Store(ctx context.Context, coin model.Coin, network model.Network, res *pipeline.Result) error {
	if s.store == nil {
		return errors.New("score store is not configured")
	}
	scores, err := RiskScores(res, coin, network, s.now().UTC())
	if err != nil {
		return err
	}
	if err := s.store.InsertRiskScores(ctx, scores); err != nil {
		return fmt.Errorf("store risk scores: %w", err)
	}
	s.logger.Info("risk scores stored", zap.Int("rows", len(scores)))
	return nil
}

func (s *ScanService) run(logger *zap.Logger, table *model.Table, percentile int) (*pipeline.Result, error) {
	res, err := s.runner.Run(table, percentile)
	if err != nil {
		logger.Error("anomaly pipeline failed", zap.Int("percentile", percentile), zap.Error(err))
		return nil, err
	}
	logger.Info("anomaly pipeline finished",
		zap.Int("percentile", percentile),
		zap.Int("rows_in", res.RowsIn),
		zap.Int("rows_cleaned", res.RowsCleaned),
		zap.Int("rows_dropped", res.RowsIn-res.RowsCleaned),
		zap.Int("suspicious", res.SuspiciousCount()),
	)
	return res, nil
}

// RiskScores converts a pipeline result into rows for persistence. Every row
// must carry a non-negative integral height.
func RiskScores(res *pipeline.Result, coin model.Coin, network model.Network, scoredAt time.Time) ([]model.RiskScore, error) {
	percentile, err := safe.Uint64(res.Percentile)
	if err != nil {
		return nil, fmt.Errorf("percentile: %w", err)
	}

	out := make([]model.RiskScore, len(res.RiskScores))
	for i := range out {
		h, ok := res.Height(i)
		if !ok {
			return nil, fmt.Errorf("row %d: %w", i, model.MissingColumn(model.ColumnHeight))
		}
		height, err := safe.Uint64FromFloat(h)
		if err != nil {
			return nil, fmt.Errorf("row %d height: %w", i, err)
		}
		out[i] = model.RiskScore{
			Coin:         coin,
			Network:      network,
			Height:       height,
			FeeSpread:    res.Features.FeeSpread[i],
			TxComplexity: res.Features.TxComplexity[i],
			FeePerTx:     res.Features.FeePerTx[i],
			Suspicious:   res.Suspicious[i],
			RiskScore:    res.RiskScores[i],
			Percentile:   uint8(percentile),
			ScoredAt:     scoredAt,
		}
	}
	return out, nil
}
