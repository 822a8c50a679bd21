package clickhouse

import (
	"context"
	"fmt"
	"time"

	"github.com/goodnatureofminers/blockinsight7000-anomaly/internal/anomaly/model"
)

// InsertRiskScores stores the scored rows of a pipeline run.
func (r *Repository) InsertRiskScores(ctx context.Context, scores []model.RiskScore) (err error) {
	start := time.Now()
	defer func() {
		coin, network := firstLabels(scores, func(s model.RiskScore) (model.Coin, model.Network) { return s.Coin, s.Network })
		r.metrics.Observe("insert_risk_scores", coin, network, err, start)
	}()

	if len(scores) == 0 {
		return nil
	}

	const query = `
INSERT INTO block_risk_scores (
	coin,
	network,
	height,
	fee_spread,
	tx_complexity,
	fee_per_tx,
	suspicious,
	risk_score,
	percentile,
	scored_at
) VALUES`

	batch, err := r.conn.PrepareBatch(ctx, query)
	if err != nil {
		return fmt.Errorf("prepare risk scores batch: %w", err)
	}

	for _, s := range scores {
		if err = batch.Append(
			string(s.Coin),
			string(s.Network),
			s.Height,
			s.FeeSpread,
			s.TxComplexity,
			s.FeePerTx,
			s.Suspicious,
			s.RiskScore,
			s.Percentile,
			s.ScoredAt,
		); err != nil {
			return fmt.Errorf("append risk score: %w", err)
		}
	}

	if err = batch.Send(); err != nil {
		return fmt.Errorf("insert risk scores: %w", err)
	}
	return nil
}
