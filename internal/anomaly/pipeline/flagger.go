package pipeline

import (
	"fmt"

	"github.com/goodnatureofminers/blockinsight7000-anomaly/internal/anomaly/model"
)

// ValidatePercentile checks that percentile lies in the accepted range.
func ValidatePercentile(percentile int) error {
	if percentile < model.MinPercentile || percentile > model.MaxPercentile {
		return fmt.Errorf("%w: %d not in [%d, %d]", model.ErrInvalidPercentile, percentile, model.MinPercentile, model.MaxPercentile)
	}
	return nil
}

// ComputeThresholds returns the percentile value of each engineered feature
// over the whole table.
func ComputeThresholds(t *model.Table, percentile int) (Thresholds, error) {
	if err := ValidatePercentile(percentile); err != nil {
		return Thresholds{}, err
	}
	if t.Len() == 0 {
		return Thresholds{}, model.ErrEmptyDataset
	}
	f, err := features(t)
	if err != nil {
		return Thresholds{}, err
	}
	q := float64(percentile) / 100
	return Thresholds{
		FeeSpread:    Quantile(f.FeeSpread, q),
		TxComplexity: Quantile(f.TxComplexity, q),
		FeePerTx:     Quantile(f.FeePerTx, q),
	}, nil
}

// FlagAnomalies appends the suspicious column. A row is suspicious when any of
// its engineered features is strictly greater than that feature's threshold.
func FlagAnomalies(t *model.Table, percentile int) (*model.Table, Thresholds, error) {
	th, err := ComputeThresholds(t, percentile)
	if err != nil {
		return nil, Thresholds{}, err
	}
	f, err := features(t)
	if err != nil {
		return nil, Thresholds{}, err
	}

	flags := make([]model.Value, t.Len())
	for i := range flags {
		flags[i] = model.Bool(th.exceeded(f.FeeSpread[i], f.TxComplexity[i], f.FeePerTx[i]))
	}
	out, err := t.WithColumn(model.ColumnSuspicious, flags)
	if err != nil {
		return nil, Thresholds{}, err
	}
	return out, th, nil
}

func (th Thresholds) exceeded(feeSpread, txComplexity, feePerTx float64) bool {
	bySpread := feeSpread > th.FeeSpread
	byComplexity := txComplexity > th.TxComplexity
	byFee := feePerTx > th.FeePerTx
	return bySpread || byComplexity || byFee
}
