package model

// Raw block columns.
const (
	ColumnHeight        = "height"
	ColumnHash          = "hash"
	ColumnTimestamp     = "timestamp"
	ColumnSize          = "size"
	ColumnTxCount       = "tx_count"
	ColumnDifficulty    = "difficulty"
	ColumnMedianFeeRate = "median_fee_rate"
	ColumnAvgFeeRate    = "avg_fee_rate"
	ColumnTotalFees     = "total_fees"
	ColumnFeeRangeMin   = "fee_range_min"
	ColumnFeeRangeMax   = "fee_range_max"
	ColumnInputCount    = "input_count"
	ColumnOutputCount   = "output_count"
	ColumnOutputAmount  = "output_amount"
)

// Columns added by the pipeline, in the order they are appended.
const (
	ColumnFeeSpread    = "fee_spread"
	ColumnTxComplexity = "tx_complexity"
	ColumnFeePerTx     = "fee_per_tx"
	ColumnSuspicious   = "suspicious"
	ColumnRiskScore    = "risk_score"
)

// Percentile bounds accepted by the anomaly flagger.
const (
	MinPercentile     = 90
	MaxPercentile     = 99
	DefaultPercentile = 95
)

// DefaultNonNegativeColumns lists the raw columns that must not hold negative values.
func DefaultNonNegativeColumns() []string {
	return []string{
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

// FeatureInputColumns lists the raw columns feature derivation depends on.
func FeatureInputColumns() []string {
	return []string{
		ColumnFeeRangeMax,
		ColumnFeeRangeMin,
		ColumnInputCount,
		ColumnOutputCount,
		ColumnTotalFees,
		ColumnTxCount,
	}
}
