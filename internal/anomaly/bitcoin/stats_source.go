// Package bitcoin collects per-block statistics from a bitcoind node.
package bitcoin

import (
	"context"
	"fmt"
	"time"

	"github.com/btcsuite/btcd/btcutil"
	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/goodnatureofminers/blockinsight7000-anomaly/internal/anomaly/model"
	"github.com/goodnatureofminers/blockinsight7000-anomaly/pkg/safe"
	"go.uber.org/ratelimit"
)

// medianPercentileIndex is the position of the 50th percentile in
// getblockstats feerate_percentiles (10th, 25th, 50th, 75th, 90th).
const medianPercentileIndex = 2

// StatsSource reads block statistics over RPC.
type StatsSource struct {
	rpc     RPCClient
	limiter ratelimit.Limiter
	coin    model.Coin
	network model.Network
}

// NewStatsSource creates a StatsSource. rps caps node requests per second;
// zero or less disables the limit.
func NewStatsSource(rpc RPCClient, coin model.Coin, network model.Network, rps int) *StatsSource {
	limiter := ratelimit.NewUnlimited()
	if rps > 0 {
		limiter = ratelimit.New(rps)
	}
	return &StatsSource{
		rpc:     rpc,
		limiter: limiter,
		coin:    coin,
		network: network,
	}
}

// LatestHeight returns the latest block height from the node.
func (s *StatsSource) LatestHeight(ctx context.Context) (uint64, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	s.limiter.Take()
	count, err := s.rpc.GetBlockCount()
	if err != nil {
		return 0, fmt.Errorf("get block count: %w", err)
	}
	height, err := safe.Uint64(count)
	if err != nil {
		return 0, fmt.Errorf("block count overflow: %w", err)
	}
	return height, nil
}

// FetchBlockStats returns the statistics row of the block at height.
func (s *StatsSource) FetchBlockStats(ctx context.Context, height uint64) (model.BlockStats, error) {
	h, err := safe.Int64(height)
	if err != nil {
		return model.BlockStats{}, fmt.Errorf("block height %d exceeds rpc limit: %w", height, err)
	}
	if err := ctx.Err(); err != nil {
		return model.BlockStats{}, err
	}

	s.limiter.Take()
	stats, err := s.rpc.GetBlockStats(h)
	if err != nil {
		return model.BlockStats{}, fmt.Errorf("get block stats at height %d: %w", height, err)
	}
	if stats.Height != h {
		return model.BlockStats{}, fmt.Errorf("block stats height mismatch: got %d, want %d", stats.Height, h)
	}

	hash, err := chainhash.NewHashFromStr(stats.Hash)
	if err != nil {
		return model.BlockStats{}, fmt.Errorf("parse block hash %q: %w", stats.Hash, err)
	}
	if err := ctx.Err(); err != nil {
		return model.BlockStats{}, err
	}
	s.limiter.Take()
	header, err := s.rpc.GetBlockHeaderVerbose(hash)
	if err != nil {
		return model.BlockStats{}, fmt.Errorf("get block header %s: %w", hash, err)
	}

	counts := make(map[string]uint64, 5)
	for name, v := range map[string]int64{
		"total_size": stats.TotalSize,
		"txs":        stats.Txs,
		"totalfee":   stats.TotalFee,
		"ins":        stats.Ins,
		"outs":       stats.Outs,
	} {
		u, err := safe.Uint64(v)
		if err != nil {
			return model.BlockStats{}, fmt.Errorf("block %d %s: %w", height, name, err)
		}
		counts[name] = u
	}

	var median float64
	if len(stats.FeeratePercentiles) > medianPercentileIndex {
		median = float64(stats.FeeratePercentiles[medianPercentileIndex])
	}

	return model.BlockStats{
		Coin:          s.coin,
		Network:       s.network,
		Height:        height,
		Hash:          hash.String(),
		Timestamp:     time.Unix(stats.Time, 0).UTC(),
		Size:          counts["total_size"],
		TxCount:       counts["txs"],
		Difficulty:    header.Difficulty,
		MedianFeeRate: median,
		AvgFeeRate:    float64(stats.AverageFeeRate),
		TotalFees:     counts["totalfee"],
		FeeRangeMin:   float64(stats.MinFeeRate),
		FeeRangeMax:   float64(stats.MaxFeeRate),
		InputCount:    counts["ins"],
		OutputCount:   counts["outs"],
		OutputAmount:  btcutil.Amount(stats.TotalOut).ToBTC(),
	}, nil
}
