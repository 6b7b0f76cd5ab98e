// Package dummies provides bulk one-hot expansion of categorical columns
package dummies

import (
	"github.com/ajitpratap0/tabular/pkg/errors"
	"github.com/ajitpratap0/tabular/pkg/table"
)

// Expand replaces each named column of t with one 0/1 indicator column per
// distinct observed value, named "<column>_<value>" and ordered by first
// observation. Indicator columns take the position of the column they
// replace; all other columns pass through unchanged, sharing storage with
// the input. Named columns absent from t are skipped. Row order is
// preserved.
func Expand(t *table.Table, columns []string) (*table.Table, error) {
	requested := make(map[string]bool, len(columns))
	for _, name := range columns {
		requested[name] = true
	}

	out := table.New()
	for _, name := range t.Names() {
		col, _ := t.Column(name)

		if !requested[name] {
			if err := out.AddColumn(name, col); err != nil {
				return nil, err
			}
			continue
		}

		values, err := stringValues(name, col)
		if err != nil {
			return nil, err
		}

		for _, level := range distinctLevels(values) {
			indicator := make([]int64, len(values))
			for i, v := range values {
				if v == level {
					indicator[i] = 1
				}
			}
			if err := out.AddColumn(name+"_"+level, table.NewIntColumnFromSlice(indicator)); err != nil {
				return nil, err
			}
		}
	}

	return out, nil
}

// stringValues extracts the raw values of a string-backed column
func stringValues(name string, col table.Column) ([]string, error) {
	switch c := col.(type) {
	case *table.StringColumn:
		return c.Strings(), nil
	case *table.CategoricalColumn:
		values := make([]string, c.Len())
		for i := 0; i < c.Len(); i++ {
			values[i] = c.Get(i).(string)
		}
		return values, nil
	default:
		return nil, errors.Newf(errors.ErrorTypeData,
			"cannot expand column %q of type %s", name, col.Type())
	}
}

// distinctLevels returns the distinct values in first-observed order
func distinctLevels(values []string) []string {
	seen := make(map[string]bool, len(values))
	levels := make([]string, 0, len(values))
	for _, v := range values {
		if !seen[v] {
			seen[v] = true
			levels = append(levels, v)
		}
	}
	return levels
}
