package table

import (
	"github.com/ajitpratap0/tabular/pkg/errors"
)

// Table is an ordered collection of named columns of equal length.
// It is not safe for concurrent use; callers needing concurrency must
// use separate instances or impose external locking.
type Table struct {
	names   []string
	columns map[string]Column
	rows    int
}

// New creates an empty table
func New() *Table {
	return &Table{
		columns: make(map[string]Column),
	}
}

// AddColumn appends a column to the table. The column keeps its position
// in insertion order. All columns must have the same length.
func (t *Table) AddColumn(name string, col Column) error {
	if _, exists := t.columns[name]; exists {
		return errors.Newf(errors.ErrorTypeValidation, "column %q already exists", name)
	}
	if len(t.names) > 0 && col.Len() != t.rows {
		return errors.Newf(errors.ErrorTypeValidation,
			"column %q has %d rows, table has %d", name, col.Len(), t.rows)
	}

	if len(t.names) == 0 {
		t.rows = col.Len()
	}
	t.names = append(t.names, name)
	t.columns[name] = col
	return nil
}

// Column returns the column with the given name
func (t *Table) Column(name string) (Column, bool) {
	col, ok := t.columns[name]
	return col, ok
}

// Has reports whether a column with the given name exists
func (t *Table) Has(name string) bool {
	_, ok := t.columns[name]
	return ok
}

// Names returns the column names in order
func (t *Table) Names() []string {
	out := make([]string, len(t.names))
	copy(out, t.names)
	return out
}

// NumRows returns the number of rows
func (t *Table) NumRows() int { return t.rows }

// NumCols returns the number of columns
func (t *Table) NumCols() int { return len(t.names) }

// Row returns the values of row i in column order
func (t *Table) Row(i int) ([]interface{}, error) {
	if i < 0 || i >= t.rows {
		return nil, errors.Newf(errors.ErrorTypeValidation,
			"row index %d out of range [0, %d)", i, t.rows)
	}

	row := make([]interface{}, len(t.names))
	for j, name := range t.names {
		row[j] = t.columns[name].Get(i)
	}
	return row, nil
}

// AppendRow appends one value per column, in column order. The row is
// validated against every column before any column is modified, so a
// rejected row leaves the table unchanged.
func (t *Table) AppendRow(values []interface{}) error {
	if len(values) != len(t.names) {
		return errors.Newf(errors.ErrorTypeValidation,
			"row has %d values, table has %d columns", len(values), len(t.names))
	}
	for j, name := range t.names {
		col := t.columns[name]
		if !accepts(col.Type(), values[j]) {
			return errors.Newf(errors.ErrorTypeData,
				"column %q (%s) cannot hold %T", name, col.Type(), values[j])
		}
	}

	for j, name := range t.names {
		if err := t.columns[name].Append(values[j]); err != nil {
			return errors.Wrap(err, errors.ErrorTypeData, "column "+name)
		}
	}
	t.rows++
	return nil
}

// accepts mirrors the value types each column kind's Append converts
func accepts(ct ColumnType, v interface{}) bool {
	switch ct {
	case ColumnTypeString, ColumnTypeCategorical:
		_, ok := v.(string)
		return ok
	case ColumnTypeInt:
		switch v.(type) {
		case int, int32, int64:
			return true
		}
	case ColumnTypeFloat:
		switch v.(type) {
		case float32, float64, int, int64:
			return true
		}
	case ColumnTypeBool:
		_, ok := v.(bool)
		return ok
	}
	return false
}

// Select returns a table containing the named columns in the given order.
// Column storage is shared with the receiver, not copied.
func (t *Table) Select(names []string) (*Table, error) {
	out := New()
	for _, name := range names {
		col, ok := t.columns[name]
		if !ok {
			return nil, errors.Newf(errors.ErrorTypeNotFound, "column %q not found", name)
		}
		if err := out.AddColumn(name, col); err != nil {
			return nil, err
		}
	}
	// A selection of zero columns still spans the source rows
	if len(names) == 0 {
		out.rows = t.rows
	}
	return out, nil
}

// Equal reports whether two tables have the same column names in the same
// order, with element-wise equal values
func (t *Table) Equal(o *Table) bool {
	if o == nil || len(t.names) != len(o.names) || t.rows != o.rows {
		return false
	}
	for i, name := range t.names {
		if o.names[i] != name {
			return false
		}
		a, b := t.columns[name], o.columns[name]
		for r := 0; r < t.rows; r++ {
			if a.Get(r) != b.Get(r) {
				return false
			}
		}
	}
	return true
}
