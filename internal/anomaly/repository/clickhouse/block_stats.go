package clickhouse

import (
	"context"
	"fmt"
	"time"

	"github.com/goodnatureofminers/blockinsight7000-anomaly/internal/anomaly/model"
)

const blockStatsQuery = `
SELECT
	height,
	hash,
	timestamp,
	size,
	tx_count,
	difficulty,
	median_fee_rate,
	avg_fee_rate,
	total_fees,
	fee_range_min,
	fee_range_max,
	input_count,
	output_count,
	output_amount
FROM block_stats FINAL
WHERE coin = ? AND network = ? AND height BETWEEN ? AND ?
ORDER BY height`

// BlockStats loads the statistics of blocks in [fromHeight, toHeight] as a
// pipeline input table ordered by height.
func (r *Repository) BlockStats(ctx context.Context, coin model.Coin, network model.Network, fromHeight, toHeight uint64) (_ *model.Table, err error) {
	start := time.Now()
	defer func() {
		r.metrics.Observe("block_stats", coin, network, err, start)
	}()

	rows, err := r.conn.Query(ctx, blockStatsQuery, string(coin), string(network), fromHeight, toHeight)
	if err != nil {
		return nil, fmt.Errorf("query block stats: %w", err)
	}
	defer func() {
		if closeErr := rows.Close(); closeErr != nil && err == nil {
			err = fmt.Errorf("close rows: %w", closeErr)
		}
	}()

	stats := make([]model.BlockStats, 0)
	for rows.Next() {
		s := model.BlockStats{Coin: coin, Network: network}
		if err = rows.Scan(
			&s.Height,
			&s.Hash,
			&s.Timestamp,
			&s.Size,
			&s.TxCount,
			&s.Difficulty,
			&s.MedianFeeRate,
			&s.AvgFeeRate,
			&s.TotalFees,
			&s.FeeRangeMin,
			&s.FeeRangeMax,
			&s.InputCount,
			&s.OutputCount,
			&s.OutputAmount,
		); err != nil {
			return nil, fmt.Errorf("scan block stats: %w", err)
		}
		stats = append(stats, s)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate block stats: %w", err)
	}

	return model.NewBlockStatsTable(stats), nil
}

// MaxBlockStatsHeight returns the highest stored height for a coin/network, or 0.
func (r *Repository) MaxBlockStatsHeight(ctx context.Context, coin model.Coin, network model.Network) (_ uint64, err error) {
	start := time.Now()
	defer func() {
		r.metrics.Observe("max_block_stats_height", coin, network, err, start)
	}()

	const query = `
SELECT coalesce(max(height), toUInt64(0)) AS max_height
FROM block_stats
WHERE coin = ? AND network = ?`

	rows, err := r.conn.Query(ctx, query, string(coin), string(network))
	if err != nil {
		return 0, fmt.Errorf("query max block stats height: %w", err)
	}
	defer func() {
		if closeErr := rows.Close(); closeErr != nil && err == nil {
			err = fmt.Errorf("close rows: %w", closeErr)
		}
	}()

	var height uint64
	if !rows.Next() {
		return 0, fmt.Errorf("max block stats height not found")
	}
	if err = rows.Scan(&height); err != nil {
		return 0, fmt.Errorf("scan max block stats height: %w", err)
	}
	if err = rows.Err(); err != nil {
		return 0, fmt.Errorf("iterate max block stats height: %w", err)
	}
	return height, nil
}

// InsertBlockStats stores block statistics rows.
func (r *Repository) InsertBlockStats(ctx context.Context, stats []model.BlockStats) (err error) {
	start := time.Now()
	defer func() {
		coin, network := firstLabels(stats, func(s model.BlockStats) (model.Coin, model.Network) { return s.Coin, s.Network })
		r.metrics.Observe("insert_block_stats", coin, network, err, start)
	}()

	if len(stats) == 0 {
		return nil
	}

	const query = `
INSERT INTO block_stats (
	coin,
	network,
	height,
	hash,
	timestamp,
	size,
	tx_count,
	difficulty,
	median_fee_rate,
	avg_fee_rate,
	total_fees,
	fee_range_min,
	fee_range_max,
	input_count,
	output_count,
	output_amount
) VALUES`

	batch, err := r.conn.PrepareBatch(ctx, query)
	if err != nil {
		return fmt.Errorf("prepare block stats batch: %w", err)
	}

	for _, s := range stats {
		if err = batch.Append(
			string(s.Coin),
			string(s.Network),
			s.Height,
			s.Hash,
			s.Timestamp,
			s.Size,
			s.TxCount,
			s.Difficulty,
			s.MedianFeeRate,
			s.AvgFeeRate,
			s.TotalFees,
			s.FeeRangeMin,
			s.FeeRangeMax,
			s.InputCount,
			s.OutputCount,
			s.OutputAmount,
		); err != nil {
			return fmt.Errorf("append block stats: %w", err)
		}
	}

	if err = batch.Send(); err != nil {
		return fmt.Errorf("insert block stats: %w", err)
	}
	return nil
}

func firstLabels[T any](items []T, labels func(T) (model.Coin, model.Network)) (model.Coin, model.Network) {
	if len(items) == 0 {
		return "", ""
	}
	return labels(items[0])
}
