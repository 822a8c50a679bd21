package pipeline

import (
	"github.com/goodnatureofminers/blockinsight7000-anomaly/internal/anomaly/model"
)

// DeriveFeatures appends fee_spread, tx_complexity and fee_per_tx to every row.
// All six input columns are required.
func DeriveFeatures(t *model.Table) (*model.Table, error) {
	inputs := make(map[string][]float64, len(model.FeatureInputColumns()))
	for _, name := range model.FeatureInputColumns() {
		values, err := t.Float64s(name)
		if err != nil {
			return nil, err
		}
		inputs[name] = values
	}

	n := t.Len()
	spread := make([]model.Value, n)
	complexity := make([]model.Value, n)
	perTx := make([]model.Value, n)
	for i := 0; i < n; i++ {
		spread[i] = model.Number(inputs[model.ColumnFeeRangeMax][i] - inputs[model.ColumnFeeRangeMin][i])
		complexity[i] = model.Number(inputs[model.ColumnInputCount][i] + inputs[model.ColumnOutputCount][i])
		perTx[i] = model.Number(inputs[model.ColumnTotalFees][i] / (inputs[model.ColumnTxCount][i] + feePerTxSmoothing))
	}

	out, err := t.WithColumn(model.ColumnFeeSpread, spread)
	if err != nil {
		return nil, err
	}
	if out, err = out.WithColumn(model.ColumnTxComplexity, complexity); err != nil {
		return nil, err
	}
	return out.WithColumn(model.ColumnFeePerTx, perTx)
}

func features(t *model.Table) (Features, error) {
	var (
		f   Features
		err error
	)
	if f.FeeSpread, err = t.Float64s(model.ColumnFeeSpread); err != nil {
		return Features{}, err
	}
	if f.TxComplexity, err = t.Float64s(model.ColumnTxComplexity); err != nil {
		return Features{}, err
	}
	if f.FeePerTx, err = t.Float64s(model.ColumnFeePerTx); err != nil {
		return Features{}, err
	}
	return f, nil
}
