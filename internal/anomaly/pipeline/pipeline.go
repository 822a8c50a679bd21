// Package pipeline flags anomalous blocks and scores their risk.
//
// A run is a pure function of the input table and the percentile: every
// threshold and maximum is recomputed from the cleaned table on each call.
package pipeline

import (
	"errors"
	"time"

	"github.com/goodnatureofminers/blockinsight7000-anomaly/internal/anomaly/model"
	"go.uber.org/zap"
)

// Pipeline runs Clean, DeriveFeatures, FlagAnomalies and ScoreRisk in order.
type Pipeline struct {
	logger    *zap.Logger
	metrics   Metrics
	whitelist []string
}

// New constructs a Pipeline. A nil whitelist selects model.DefaultNonNegativeColumns.
func New(logger *zap.Logger, metrics Metrics, whitelist []string) *Pipeline {
	if whitelist == nil {
		whitelist = model.DefaultNonNegativeColumns()
	}
	return &Pipeline{
		logger:    logger.Named("pipeline"),
		metrics:   metrics,
		whitelist: append([]string(nil), whitelist...),
	}
}

// Run cleans, enriches, flags and scores table. Either the full result or an
// error is returned.
func (p *Pipeline) Run(table *model.Table, percentile int) (res *Result, err error) {
	started := time.Now()
	defer func() {
		rows, suspicious := 0, 0
		if res != nil {
			rows = res.Table.Len()
			suspicious = res.SuspiciousCount()
		}
		p.metrics.ObserveRun(err, percentile, rows, suspicious, started)
	}()

	if table == nil {
		return nil, errors.New("table is required")
	}
	if err = ValidatePercentile(percentile); err != nil {
		return nil, err
	}

	cleaned, err := p.stage(StageClean, table, func(t *model.Table) (*model.Table, error) {
		return Clean(t, p.whitelist)
	})
	if err != nil {
		return nil, err
	}
	if cleaned.Len() == 0 {
		p.logger.Warn("no rows left after cleaning", zap.Int("rows_in", table.Len()))
		return nil, model.ErrEmptyDataset
	}

	derived, err := p.stage(StageDerive, cleaned, DeriveFeatures)
	if err != nil {
		return nil, err
	}

	var th Thresholds
	flagged, err := p.stage(StageFlag, derived, func(t *model.Table) (out *model.Table, err error) {
		out, th, err = FlagAnomalies(t, percentile)
		return out, err
	})
	if err != nil {
		return nil, err
	}

	var norm Normalization
	scored, err := p.stage(StageScore, flagged, func(t *model.Table) (out *model.Table, err error) {
		out, norm, err = ScoreRisk(t)
		return out, err
	})
	if err != nil {
		return nil, err
	}
	for _, feature := range norm.Degenerate {
		p.logger.Warn("feature maximum is not positive; its risk contribution is zero", zap.String("feature", feature))
		p.metrics.ObserveDegenerate(feature)
	}

	res, err = newResult(scored, percentile, th, norm, table.Len())
	if err != nil {
		return nil, err
	}

	p.logger.Debug("pipeline finished",
		zap.Int("percentile", percentile),
		zap.Int("rows_in", res.RowsIn),
		zap.Int("rows_cleaned", res.RowsCleaned),
		zap.Int("suspicious", res.SuspiciousCount()),
		zap.Float64("fee_spread_thresh", th.FeeSpread),
		zap.Float64("complexity_thresh", th.TxComplexity),
		zap.Float64("fee_tx_thresh", th.FeePerTx),
	)
	return res, nil
}

func (p *Pipeline) stage(name string, in *model.Table, fn func(*model.Table) (*model.Table, error)) (out *model.Table, err error) {
	started := time.Now()
	defer func() {
		rowsOut := 0
		if out != nil {
			rowsOut = out.Len()
		}
		p.metrics.ObserveStage(name, err, in.Len(), rowsOut, started)
	}()

	out, err = fn(in)
	if err != nil {
		p.logger.Error("stage failed", zap.String("stage", name), zap.Error(err))
		return nil, err
	}
	return out, nil
}

func newResult(t *model.Table, percentile int, th Thresholds, norm Normalization, rowsIn int) (*Result, error) {
	f, err := features(t)
	if err != nil {
		return nil, err
	}
	c, _ := t.ColumnIndex(model.ColumnSuspicious)
	s, _ := t.ColumnIndex(model.ColumnRiskScore)

	res := &Result{
		Table:         t,
		Percentile:    percentile,
		Thresholds:    th,
		Normalization: norm,
		RowsIn:        rowsIn,
		RowsCleaned:   t.Len(),
		Features:      f,
		Suspicious:    make([]bool, t.Len()),
		RiskScores:    make([]float64, t.Len()),
	}
	for i := 0; i < t.Len(); i++ {
		row := t.Row(i)
		res.Suspicious[i], _ = row[c].Bool()
		res.RiskScores[i], _ = row[s].Float64()
	}
	return res, nil
}
