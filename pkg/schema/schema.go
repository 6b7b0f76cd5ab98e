// Package schema provides column schemas and dtype inference for untyped
// tabular input
package schema

import (
	"strconv"

	"github.com/ajitpratap0/tabular/pkg/table"
)

// Field describes a single column
type Field struct {
	Name string           `json:"name"`
	Type table.ColumnType `json:"type"`
}

// Schema describes the columns of a table, in order
type Schema struct {
	Fields []Field `json:"fields"`
}

// Names returns the field names in order
func (s *Schema) Names() []string {
	names := make([]string, len(s.Fields))
	for i, f := range s.Fields {
		names[i] = f.Name
	}
	return names
}

// TypeOf returns the declared type of the named field
func (s *Schema) TypeOf(name string) (table.ColumnType, bool) {
	for _, f := range s.Fields {
		if f.Name == name {
			return f.Type, true
		}
	}
	return 0, false
}

// FromTable derives a schema from a typed table
func FromTable(t *table.Table) *Schema {
	s := &Schema{Fields: make([]Field, 0, t.NumCols())}
	for _, name := range t.Names() {
		col, _ := t.Column(name)
		s.Fields = append(s.Fields, Field{Name: name, Type: col.Type()})
	}
	return s
}

// InferOptions configures schema inference
type InferOptions struct {
	// SampleSize limits the rows inspected per column (0 = all rows)
	SampleSize int

	// CategoricalMaxLevels promotes a string column to categorical when
	// its sampled distinct-value count is at or below this bound
	// (0 = never promote)
	CategoricalMaxLevels int
}

// DefaultInferOptions returns the default inference configuration
func DefaultInferOptions() InferOptions {
	return InferOptions{
		SampleSize:           1000,
		CategoricalMaxLevels: 32,
	}
}

// Infer detects a column type for each header from raw string rows.
// Detection is strictest-first per column: bool, int, float, then string;
// low-cardinality string columns become categorical.
func Infer(headers []string, rows [][]string, opts InferOptions) *Schema {
	sample := rows
	if opts.SampleSize > 0 && len(sample) > opts.SampleSize {
		sample = sample[:opts.SampleSize]
	}

	s := &Schema{Fields: make([]Field, len(headers))}
	for j, name := range headers {
		values := make([]string, 0, len(sample))
		for _, row := range sample {
			if j < len(row) {
				values = append(values, row[j])
			}
		}
		s.Fields[j] = Field{Name: name, Type: inferColumnType(values, opts)}
	}
	return s
}

func inferColumnType(values []string, opts InferOptions) table.ColumnType {
	if len(values) == 0 {
		return table.ColumnTypeString
	}

	isBool, isInt, isFloat := true, true, true
	for _, v := range values {
		if isBool && v != "true" && v != "false" {
			isBool = false
		}
		if isInt {
			if _, err := strconv.ParseInt(v, 10, 64); err != nil {
				isInt = false
			}
		}
		if isFloat {
			if _, err := strconv.ParseFloat(v, 64); err != nil {
				isFloat = false
			}
		}
		if !isBool && !isInt && !isFloat {
			break
		}
	}

	switch {
	case isBool:
		return table.ColumnTypeBool
	case isInt:
		return table.ColumnTypeInt
	case isFloat:
		return table.ColumnTypeFloat
	}

	if opts.CategoricalMaxLevels > 0 {
		distinct := make(map[string]struct{}, len(values))
		for _, v := range values {
			distinct[v] = struct{}{}
		}
		if len(distinct) <= opts.CategoricalMaxLevels {
			return table.ColumnTypeCategorical
		}
	}
	return table.ColumnTypeString
}
