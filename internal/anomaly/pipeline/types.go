package pipeline

import "time"

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	// Metrics records pipeline stage and run outcomes.
	Metrics interface {
		ObserveStage(stage string, err error, rowsIn, rowsOut int, started time.Time)
		ObserveRun(err error, percentile, rows, suspicious int, started time.Time)
		ObserveDegenerate(feature string)
	}
)

// Thresholds holds the per-feature percentile values a row is compared against.
type Thresholds struct {
	FeeSpread    float64
	TxComplexity float64
	FeePerTx     float64
}

// Normalization holds the per-feature dataset maxima used by the risk scorer.
// Degenerate lists features whose maximum is not positive; such features
// contribute nothing to any score.
type Normalization struct {
	MaxFeeSpread    float64
	MaxTxComplexity float64
	MaxFeePerTx     float64
	Degenerate      []string
}

// Features holds the engineered columns of a scored table.
type Features struct {
	FeeSpread    []float64
	TxComplexity []float64
	FeePerTx     []float64
}
