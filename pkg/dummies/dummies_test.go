package dummies

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ajitpratap0/tabular/pkg/errors"
	"github.com/ajitpratap0/tabular/pkg/table"
)

func buildTable(t *testing.T) *table.Table {
	t.Helper()

	tbl := table.New()
	require.NoError(t, tbl.AddColumn("foo", table.NewIntColumnFromSlice([]int64{1, 2})))
	require.NoError(t, tbl.AddColumn("bar", table.NewCategoricalColumnFromSlice([]string{"a", "c"})))
	require.NoError(t, tbl.AddColumn("baz", table.NewCategoricalColumnFromSlice([]string{"b", "d"})))
	return tbl
}

func intValues(t *testing.T, tbl *table.Table, name string) []int64 {
	t.Helper()

	col, ok := tbl.Column(name)
	require.True(t, ok, "column %q missing", name)
	ic, ok := col.(*table.IntColumn)
	require.True(t, ok, "column %q is not an int column", name)
	return ic.Ints()
}

func TestExpandReplacesInPlace(t *testing.T) {
	out, err := Expand(buildTable(t), []string{"bar", "baz"})
	require.NoError(t, err)

	assert.Equal(t, []string{"foo", "bar_a", "bar_c", "baz_b", "baz_d"}, out.Names())
	assert.Equal(t, 2, out.NumRows())
	assert.Equal(t, []int64{1, 0}, intValues(t, out, "bar_a"))
	assert.Equal(t, []int64{0, 1}, intValues(t, out, "bar_c"))
	assert.Equal(t, []int64{1, 0}, intValues(t, out, "baz_b"))
	assert.Equal(t, []int64{0, 1}, intValues(t, out, "baz_d"))
}

func TestExpandFirstObservedOrder(t *testing.T) {
	tbl := table.New()
	require.NoError(t, tbl.AddColumn("grok",
		table.NewStringColumnFromSlice([]string{"there", "hi", "there", "hi"})))

	out, err := Expand(tbl, []string{"grok"})
	require.NoError(t, err)

	assert.Equal(t, []string{"grok_there", "grok_hi"}, out.Names())
	assert.Equal(t, []int64{1, 0, 1, 0}, intValues(t, out, "grok_there"))
	assert.Equal(t, []int64{0, 1, 0, 1}, intValues(t, out, "grok_hi"))
}

func TestExpandNoColumnsIsIdentity(t *testing.T) {
	tbl := buildTable(t)

	out, err := Expand(tbl, nil)
	require.NoError(t, err)
	assert.True(t, tbl.Equal(out))
}

func TestExpandSkipsAbsentColumn(t *testing.T) {
	tbl := buildTable(t)

	out, err := Expand(tbl, []string{"bar", "missing"})
	require.NoError(t, err)
	assert.Equal(t, []string{"foo", "bar_a", "bar_c", "baz"}, out.Names())
}

func TestExpandIncompatibleType(t *testing.T) {
	tbl := buildTable(t)

	_, err := Expand(tbl, []string{"foo"})
	require.Error(t, err)
	assert.True(t, errors.IsType(err, errors.ErrorTypeData))
}

func TestExpandPassthroughSharesStorage(t *testing.T) {
	tbl := buildTable(t)

	out, err := Expand(tbl, []string{"bar"})
	require.NoError(t, err)

	orig, _ := tbl.Column("foo")
	kept, _ := out.Column("foo")
	assert.Same(t, orig, kept)
}
