package pipeline

import (
	"strings"

	"github.com/goodnatureofminers/blockinsight7000-anomaly/internal/anomaly/model"
)

// Clean drops rows with missing values, exact duplicates (first occurrence is
// kept) and rows holding a negative value in any whitelisted column present in
// the table. Whitelisted columns absent from the schema are skipped.
func Clean(t *model.Table, whitelist []string) (*model.Table, error) {
	complete := t.Filter(func(_ int, row []model.Value) bool {
		for _, v := range row {
			if v.IsNull() {
				return false
			}
		}
		return true
	})

	seen := make(map[string]struct{}, complete.Len())
	out := complete.Filter(func(i int, _ []model.Value) bool {
		key := complete.RowKey(i)
		if _, dup := seen[key]; dup {
			return false
		}
		seen[key] = struct{}{}
		return true
	})

	for _, name := range whitelist {
		name = strings.TrimSpace(name)
		if !out.HasColumn(name) {
			continue
		}
		values, err := out.Float64s(name)
		if err != nil {
			return nil, err
		}
		out = out.Filter(func(i int, _ []model.Value) bool {
			return values[i] >= 0
		})
	}
	return out, nil
}
