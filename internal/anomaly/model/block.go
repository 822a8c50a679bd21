package model

import "time"

// Coin identifies the chain a block belongs to.
type Coin string

// Network identifies the chain network.
type Network string

var (
	BTC Coin = "BTC"
	LTC Coin = "LTC"
)

var (
	Testnet Network = "testnet"
	Mainnet Network = "mainnet"
)

// BlockStats is the per-block statistics row stored in ClickHouse and fed to the pipeline.
type BlockStats struct {
	Coin          Coin
	Network       Network
	Height        uint64
	Hash          string
	Timestamp     time.Time
	Size          uint64
	TxCount       uint64
	Difficulty    float64
	MedianFeeRate float64
	AvgFeeRate    float64
	TotalFees     uint64
	FeeRangeMin   float64
	FeeRangeMax   float64
	InputCount    uint64
	OutputCount   uint64
	OutputAmount  float64
}

// BlockStatsColumns is the header of a table built from BlockStats.
func BlockStatsColumns() []string {
	return []string{
		ColumnHeight,
		ColumnHash,
		ColumnTimestamp,
		ColumnSize,
		ColumnTxCount,
		ColumnDifficulty,
		ColumnMedianFeeRate,
		ColumnAvgFeeRate,
		ColumnTotalFees,
		ColumnFeeRangeMin,
		ColumnFeeRangeMax,
		ColumnInputCount,
		ColumnOutputCount,
		ColumnOutputAmount,
	}
}

// Row converts the stats into table cells ordered as BlockStatsColumns.
func (b BlockStats) Row() []Value {
	return []Value{
		Number(float64(b.Height)),
		Text(b.Hash),
		Text(b.Timestamp.UTC().Format(time.RFC3339)),
		Number(float64(b.Size)),
		Number(float64(b.TxCount)),
		Number(b.Difficulty),
		Number(b.MedianFeeRate),
		Number(b.AvgFeeRate),
		Number(float64(b.TotalFees)),
		Number(b.FeeRangeMin),
		Number(b.FeeRangeMax),
		Number(float64(b.InputCount)),
		Number(float64(b.OutputCount)),
		Number(b.OutputAmount),
	}
}

// NewBlockStatsTable builds a pipeline input table from stats rows.
func NewBlockStatsTable(stats []BlockStats) *Table {
	t := MustTable(BlockStatsColumns())
	for _, s := range stats {
		t.rows = append(t.rows, s.Row())
	}
	return t
}

// RiskScore is a scored block persisted after a pipeline run.
type RiskScore struct {
	Coin         Coin
	Network      Network
	Height       uint64
	FeeSpread    float64
	TxComplexity float64
	FeePerTx     float64
	Suspicious   bool
	RiskScore    float64
	Percentile   uint8
	ScoredAt     time.Time
}
