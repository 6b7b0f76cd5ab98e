// Package table provides an ordered, typed, in-memory tabular container
package table

import (
	"fmt"
)

// ColumnType represents the declared data type of a column
type ColumnType int

const (
	ColumnTypeString ColumnType = iota
	ColumnTypeCategorical
	ColumnTypeInt
	ColumnTypeFloat
	ColumnTypeBool
)

// String returns the type tag name
func (t ColumnType) String() string {
	switch t {
	case ColumnTypeString:
		return "string"
	case ColumnTypeCategorical:
		return "categorical"
	case ColumnTypeInt:
		return "int"
	case ColumnTypeFloat:
		return "float"
	case ColumnTypeBool:
		return "bool"
	default:
		return "unknown"
	}
}

// ParseColumnType parses a type tag name into a ColumnType
func ParseColumnType(s string) (ColumnType, error) {
	switch s {
	case "string":
		return ColumnTypeString, nil
	case "categorical":
		return ColumnTypeCategorical, nil
	case "int":
		return ColumnTypeInt, nil
	case "float":
		return ColumnTypeFloat, nil
	case "bool":
		return ColumnTypeBool, nil
	default:
		return 0, fmt.Errorf("unknown column type %q", s)
	}
}

// Column is the base interface for all column types
type Column interface {
	Type() ColumnType
	Len() int
	Get(i int) interface{}
	Append(value interface{}) error
}

// StringColumn stores free-text string values
type StringColumn struct {
	values []string
}

// NewStringColumn creates a new string column
func NewStringColumn() *StringColumn {
	return &StringColumn{values: make([]string, 0, 64)}
}

// NewStringColumnFromSlice creates a string column holding the given values
func NewStringColumnFromSlice(values []string) *StringColumn {
	c := &StringColumn{values: make([]string, len(values))}
	copy(c.values, values)
	return c
}

func (c *StringColumn) Type() ColumnType { return ColumnTypeString }
func (c *StringColumn) Len() int { return len(c.values) }
func (c *StringColumn) Get(i int) interface{} { return c.values[i] }

func (c *StringColumn) Append(value interface{}) error {
	str, ok := value.(string)
	if !ok {
		return fmt.Errorf("expected string, got %T", value)
	}
	c.values = append(c.values, str)
	return nil
}

// Strings returns the backing values of the column
func (c *StringColumn) Strings() []string { return c.values }

// CategoricalColumn stores string values with dictionary encoding.
// The dictionary preserves first-observed order of distinct values.
type CategoricalColumn struct {
	dict   map[string]uint32
	levels []string // distinct values, first-observed order
	codes  []uint32
}

// NewCategoricalColumn creates a new categorical column
func NewCategoricalColumn() *CategoricalColumn {
	return &CategoricalColumn{
		dict:  make(map[string]uint32),
		codes: make([]uint32, 0, 64),
	}
}

// NewCategoricalColumnFromSlice creates a categorical column holding the given values
func NewCategoricalColumnFromSlice(values []string) *CategoricalColumn {
	c := NewCategoricalColumn()
	for _, v := range values {
		c.AppendString(v)
	}
	return c
}

func (c *CategoricalColumn) Type() ColumnType { return ColumnTypeCategorical }
func (c *CategoricalColumn) Len() int         { return len(c.codes) }

func (c *CategoricalColumn) Get(i int) interface{} {
	return c.levels[c.codes[i]]
}

func (c *CategoricalColumn) Append(value interface{}) error {
	str, ok := value.(string)
	if !ok {
		return fmt.Errorf("expected string, got %T", value)
	}
	c.AppendString(str)
	return nil
}

// AppendString appends a value, extending the dictionary if needed
func (c *CategoricalColumn) AppendString(value string) {
	code, exists := c.dict[value]
	if !exists {
		code = uint32(len(c.levels))
		c.dict[value] = code
		c.levels = append(c.levels, value)
	}
	c.codes = append(c.codes, code)
}

// Levels returns the distinct values in first-observed order
func (c *CategoricalColumn) Levels() []string {
	out := make([]string, len(c.levels))
	copy(out, c.levels)
	return out
}

// IntColumn stores integer values
type IntColumn struct {
	values []int64
}

// NewIntColumn creates a new integer column
func NewIntColumn() *IntColumn {
	return &IntColumn{values: make([]int64, 0, 64)}
}

// NewIntColumnFromSlice creates an integer column holding the given values
func NewIntColumnFromSlice(values []int64) *IntColumn {
	c := &IntColumn{values: make([]int64, len(values))}
	copy(c.values, values)
	return c
}

// NewZeroIntColumn creates an integer column of n zero values
func NewZeroIntColumn(n int) *IntColumn {
	return &IntColumn{values: make([]int64, n)}
}

func (c *IntColumn) Type() ColumnType { return ColumnTypeInt }
func (c *IntColumn) Len() int { return len(c.values) }
func (c *IntColumn) Get(i int) interface{} { return c.values[i] }

func (c *IntColumn) Append(value interface{}) error {
	switch v := value.(type) {
	case int:
		c.values = append(c.values, int64(v))
	case int32:
		c.values = append(c.values, int64(v))
	case int64:
		c.values = append(c.values, v)
	default:
		return fmt.Errorf("expected int, got %T", value)
	}
	return nil
}

// AppendInt appends a value without boxing
func (c *IntColumn) AppendInt(value int64) {
	c.values = append(c.values, value)
}

// Ints returns the backing values of the column
func (c *IntColumn) Ints() []int64 { return c.values }

// FloatColumn stores floating point values
type FloatColumn struct {
	values []float64
}

// NewFloatColumn creates a new float column
func NewFloatColumn() *FloatColumn {
	return &FloatColumn{values: make([]float64, 0, 64)}
}

// NewFloatColumnFromSlice creates a float column holding the given values
func NewFloatColumnFromSlice(values []float64) *FloatColumn {
	c := &FloatColumn{values: make([]float64, len(values))}
	copy(c.values, values)
	return c
}

func (c *FloatColumn) Type() ColumnType { return ColumnTypeFloat }
func (c *FloatColumn) Len() int { return len(c.values) }
func (c *FloatColumn) Get(i int) interface{} { return c.values[i] }

func (c *FloatColumn) Append(value interface{}) error {
	switch v := value.(type) {
	case float64:
		c.values = append(c.values, v)
	case float32:
		c.values = append(c.values, float64(v))
	case int:
		c.values = append(c.values, float64(v))
	case int64:
		c.values = append(c.values, float64(v))
	default:
		return fmt.Errorf("expected float, got %T", value)
	}
	return nil
}

// Floats returns the backing values of the column
func (c *FloatColumn) Floats() []float64 { return c.values }

// BoolColumn stores boolean values
type BoolColumn struct {
	values []bool
}

// NewBoolColumn creates a new boolean column
func NewBoolColumn() *BoolColumn {
	return &BoolColumn{values: make([]bool, 0, 64)}
}

// NewBoolColumnFromSlice creates a boolean column holding the given values
func NewBoolColumnFromSlice(values []bool) *BoolColumn {
	c := &BoolColumn{values: make([]bool, len(values))}
	copy(c.values, values)
	return c
}

func (c *BoolColumn) Type() ColumnType { return ColumnTypeBool }
func (c *BoolColumn) Len() int { return len(c.values) }
func (c *BoolColumn) Get(i int) interface{} { return c.values[i] }

func (c *BoolColumn) Append(value interface{}) error {
	b, ok := value.(bool)
	if !ok {
		return fmt.Errorf("expected bool, got %T", value)
	}
	c.values = append(c.values, b)
	return nil
}

// NewColumnOfType creates an empty column of the given type
func NewColumnOfType(colType ColumnType) Column {
	switch colType {
	case ColumnTypeCategorical:
		return NewCategoricalColumn()
	case ColumnTypeInt:
		return NewIntColumn()
	case ColumnTypeFloat:
		return NewFloatColumn()
	case ColumnTypeBool:
		return NewBoolColumn()
	default:
		return NewStringColumn()
	}
}
