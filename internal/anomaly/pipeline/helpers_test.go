package pipeline

import (
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/goodnatureofminers/blockinsight7000-anomaly/internal/anomaly/model"
	"go.uber.org/zap"
)

type blockRow struct {
	height      float64
	size        float64
	txCount     float64
	totalFees   float64
	feeRangeMin float64
	feeRangeMax float64
	inputCount  float64
	outputCount float64
}

var testColumns = []string{
	model.ColumnHeight,
	model.ColumnSize,
	model.ColumnTxCount,
	model.ColumnTotalFees,
	model.ColumnFeeRangeMin,
	model.ColumnFeeRangeMax,
	model.ColumnInputCount,
	model.ColumnOutputCount,
}

func (r blockRow) values() []model.Value {
	return []model.Value{
		model.Number(r.height),
		model.Number(r.size),
		model.Number(r.txCount),
		model.Number(r.totalFees),
		model.Number(r.feeRangeMin),
		model.Number(r.feeRangeMax),
		model.Number(r.inputCount),
		model.Number(r.outputCount),
	}
}

func buildTable(t *testing.T, rows []blockRow) *model.Table {
	t.Helper()

	tbl, err := model.NewTable(testColumns)
	if err != nil {
		t.Fatalf("NewTable() error = %v", err)
	}
	for _, r := range rows {
		if err := tbl.Append(r.values()); err != nil {
			t.Fatalf("Append() error = %v", err)
		}
	}
	return tbl
}

// uniformRows returns n rows with identical features and distinct heights.
func uniformRows(n int) []blockRow {
	rows := make([]blockRow, n)
	for i := range rows {
		rows[i] = blockRow{
			height:      float64(800_000 + i),
			size:        1_000_000,
			txCount:     4,
			totalFees:   50,
			feeRangeMin: 0,
			feeRangeMax: 10,
			inputCount:  3,
			outputCount: 2,
		}
	}
	return rows
}

func newTestPipeline(t *testing.T) *Pipeline {
	t.Helper()

	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	m := NewMockMetrics(ctrl)
	m.EXPECT().ObserveStage(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).AnyTimes()
	m.EXPECT().ObserveRun(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).AnyTimes()
	m.EXPECT().ObserveDegenerate(gomock.Any()).AnyTimes()

	return New(zap.NewNop(), m, nil)
}

func floatCell(t *testing.T, tbl *model.Table, i int, column string) float64 {
	t.Helper()

	v, ok := tbl.Value(i, column)
	if !ok {
		t.Fatalf("column %q missing", column)
	}
	f, ok := v.Float64()
	if !ok {
		t.Fatalf("column %q row %d is not numeric: %v", column, i, v)
	}
	return f
}
