package model

import (
	"fmt"
	"strings"
)

// Table is an ordered, immutable collection of rows sharing a schema.
// Column names are trimmed of surrounding whitespace on construction.
type Table struct {
	columns []string
	index   map[string]int
	rows    [][]Value
}

// NewTable creates an empty table with the given header.
func NewTable(columns []string) (*Table, error) {
	t := &Table{
		columns: make([]string, len(columns)),
		index:   make(map[string]int, len(columns)),
	}
	for i, c := range columns {
		name := strings.TrimSpace(c)
		if _, dup := t.index[name]; dup {
			return nil, &SchemaError{Column: name, Reason: "duplicate column name"}
		}
		t.columns[i] = name
		t.index[name] = i
	}
	return t, nil
}

// MustTable builds a table and panics on error. Intended for tests and fixed schemas.
func MustTable(columns []string, rows ...[]Value) *Table {
	t, err := NewTable(columns)
	if err != nil {
		panic(err)
	}
	for _, r := range rows {
		if err := t.Append(r); err != nil {
			panic(err)
		}
	}
	return t
}

// Append copies row into the table. It is meant for table construction only;
// a table handed to the pipeline must not be appended to afterwards.
func (t *Table) Append(row []Value) error {
	if len(row) != len(t.columns) {
		return fmt.Errorf("row has %d values, table has %d columns", len(row), len(t.columns))
	}
	t.rows = append(t.rows, append([]Value(nil), row...))
	return nil
}

// Columns returns a copy of the header.
func (t *Table) Columns() []string {
	return append([]string(nil), t.columns...)
}

// Len returns the number of rows.
func (t *Table) Len() int { return len(t.rows) }

// HasColumn reports whether name is part of the schema.
func (t *Table) HasColumn(name string) bool {
	_, ok := t.index[name]
	return ok
}

// Row returns a copy of row i.
func (t *Table) Row(i int) []Value {
	return append([]Value(nil), t.rows[i]...)
}

// Value returns the cell at row i in the named column.
func (t *Table) Value(i int, column string) (Value, bool) {
	c, ok := t.index[column]
	if !ok {
		return Value{}, false
	}
	return t.rows[i][c], true
}

// Float64s returns a numeric column. Null cells are returned as NaN.
func (t *Table) Float64s(column string) ([]float64, error) {
	c, ok := t.index[column]
	if !ok {
		return nil, MissingColumn(column)
	}
	out := make([]float64, len(t.rows))
	for i, row := range t.rows {
		v := row[c]
		if v.IsNull() {
			out[i] = nan()
			continue
		}
		f, ok := v.Float64()
		if !ok {
			return nil, &SchemaError{Column: column, Reason: fmt.Sprintf("non-numeric value %q at row %d", v.String(), i)}
		}
		out[i] = f
	}
	return out, nil
}

// WithColumn returns a new table with the column set to values. An existing
// column keeps its position; a new one is appended.
func (t *Table) WithColumn(name string, values []Value) (*Table, error) {
	if len(values) != len(t.rows) {
		return nil, fmt.Errorf("column %q has %d values, table has %d rows", name, len(values), len(t.rows))
	}
	name = strings.TrimSpace(name)
	out := &Table{
		columns: append([]string(nil), t.columns...),
		index:   make(map[string]int, len(t.columns)+1),
		rows:    make([][]Value, len(t.rows)),
	}
	for k, v := range t.index {
		out.index[k] = v
	}
	c, exists := out.index[name]
	if !exists {
		c = len(out.columns)
		out.columns = append(out.columns, name)
		out.index[name] = c
	}
	for i, row := range t.rows {
		nr := make([]Value, len(out.columns))
		copy(nr, row)
		nr[c] = values[i]
		out.rows[i] = nr
	}
	return out, nil
}

// Filter returns a new table holding the rows for which keep returns true.
// Row order is preserved.
func (t *Table) Filter(keep func(i int, row []Value) bool) *Table {
	out := &Table{
		columns: t.columns,
		index:   t.index,
		rows:    make([][]Value, 0, len(t.rows)),
	}
	for i, row := range t.rows {
		if keep(i, row) {
			out.rows = append(out.rows, row)
		}
	}
	return out
}

// ColumnIndex returns the position of name in the header.
func (t *Table) ColumnIndex(name string) (int, bool) {
	c, ok := t.index[name]
	return c, ok
}

// RowKey encodes every cell of row i; two rows have equal keys iff all their cells are equal.
func (t *Table) RowKey(i int) string {
	buf := make([]byte, 0, 16*len(t.columns))
	for _, v := range t.rows[i] {
		buf = v.appendKey(buf)
	}
	return string(buf)
}
