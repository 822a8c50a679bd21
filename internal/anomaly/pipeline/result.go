package pipeline

import (
	"sort"

	"github.com/goodnatureofminers/blockinsight7000-anomaly/internal/anomaly/model"
)

// Result is the augmented table of a pipeline run plus the statistics it was
// computed with.
type Result struct {
	Table         *model.Table
	Percentile    int
	Thresholds    Thresholds
	Normalization Normalization
	RowsIn        int
	RowsCleaned   int
	Features      Features
	Suspicious    []bool
	RiskScores    []float64
}

// SuspiciousRows returns the indexes of flagged rows in table order.
func (r *Result) SuspiciousRows() []int {
	out := make([]int, 0)
	for i, s := range r.Suspicious {
		if s {
			out = append(out, i)
		}
	}
	return out
}

// SuspiciousCount returns the number of flagged rows.
func (r *Result) SuspiciousCount() int {
	n := 0
	for _, s := range r.Suspicious {
		if s {
			n++
		}
	}
	return n
}

// Ranking returns row indexes ordered by risk score, highest first. Rows with
// equal scores keep table order.
func (r *Result) Ranking() []int {
	idx := make([]int, len(r.RiskScores))
	for i := range idx {
		idx[i] = i
	}
	sort.SliceStable(idx, func(a, b int) bool {
		return r.RiskScores[idx[a]] > r.RiskScores[idx[b]]
	})
	return idx
}

// Top returns the n highest-risk row indexes.
func (r *Result) Top(n int) []int {
	ranked := r.Ranking()
	if n >= 0 && n < len(ranked) {
		ranked = ranked[:n]
	}
	return ranked
}

// Height returns the height column value of row i, if present and numeric.
func (r *Result) Height(i int) (float64, bool) {
	v, ok := r.Table.Value(i, model.ColumnHeight)
	if !ok {
		return 0, false
	}
	return v.Float64()
}
