package pipeline

const (
	StageClean  = "clean"
	StageDerive = "derive_features"
	StageFlag   = "flag_anomalies"
	StageScore  = "score_risk"
)

// Risk score weights. They sum to 1.
const (
	WeightFeeSpread    = 0.4
	WeightTxComplexity = 0.3
	WeightFeePerTx     = 0.3
)

// riskScoreScale rounds scores to three decimals.
const riskScoreScale = 1000

// feePerTxSmoothing keeps fee_per_tx defined for blocks without transactions.
const feePerTxSmoothing = 1
