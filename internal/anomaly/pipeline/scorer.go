package pipeline

import (
	"math"

	"github.com/goodnatureofminers/blockinsight7000-anomaly/internal/anomaly/model"
)

// ComputeNormalization returns the per-feature maxima of the table.
func ComputeNormalization(t *model.Table) (Normalization, error) {
	if t.Len() == 0 {
		return Normalization{}, model.ErrEmptyDataset
	}
	f, err := features(t)
	if err != nil {
		return Normalization{}, err
	}
	n := Normalization{
		MaxFeeSpread:    columnMax(f.FeeSpread),
		MaxTxComplexity: columnMax(f.TxComplexity),
		MaxFeePerTx:     columnMax(f.FeePerTx),
	}
	for _, c := range []struct {
		name string
		max  float64
	}{
		{model.ColumnFeeSpread, n.MaxFeeSpread},
		{model.ColumnTxComplexity, n.MaxTxComplexity},
		{model.ColumnFeePerTx, n.MaxFeePerTx},
	} {
		if !(c.max > 0) {
			n.Degenerate = append(n.Degenerate, c.name)
		}
	}
	return n, nil
}

// Score returns the rounded weighted risk score of a single row.
func (n Normalization) Score(feeSpread, txComplexity, feePerTx float64) float64 {
	raw := WeightFeeSpread*normalize(feeSpread, n.MaxFeeSpread) +
		WeightTxComplexity*normalize(txComplexity, n.MaxTxComplexity) +
		WeightFeePerTx*normalize(feePerTx, n.MaxFeePerTx)
	return math.RoundToEven(raw*riskScoreScale) / riskScoreScale
}

// normalize divides by the feature maximum; a non-positive maximum yields 0.
func normalize(v, max float64) float64 {
	if !(max > 0) {
		return 0
	}
	return v / max
}

// ScoreRisk appends the risk_score column.
func ScoreRisk(t *model.Table) (*model.Table, Normalization, error) {
	norm, err := ComputeNormalization(t)
	if err != nil {
		return nil, Normalization{}, err
	}
	f, err := features(t)
	if err != nil {
		return nil, Normalization{}, err
	}

	scores := make([]model.Value, t.Len())
	for i := range scores {
		scores[i] = model.Number(norm.Score(f.FeeSpread[i], f.TxComplexity[i], f.FeePerTx[i]))
	}
	out, err := t.WithColumn(model.ColumnRiskScore, scores)
	if err != nil {
		return nil, Normalization{}, err
	}
	return out, norm, nil
}
