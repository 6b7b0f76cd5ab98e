package pipeline

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ajitpratap0/tabular/pkg/encoder"
	"github.com/ajitpratap0/tabular/pkg/errors"
	"github.com/ajitpratap0/tabular/pkg/table"
	"github.com/ajitpratap0/tabular/pkg/testutil"
)

func trainTable(t *testing.T) *table.Table {
	t.Helper()

	tbl := table.New()
	require.NoError(t, tbl.AddColumn("id", table.NewIntColumnFromSlice([]int64{10, 11})))
	require.NoError(t, tbl.AddColumn("foo", table.NewIntColumnFromSlice([]int64{1, 2})))
	require.NoError(t, tbl.AddColumn("bar", table.NewCategoricalColumnFromSlice([]string{"a", "c"})))
	return tbl
}

func TestPipelineSelectThenEncode(t *testing.T) {
	p := NewPipeline(
		SelectColumns("features", "foo", "bar"),
		OneHot("onehot", encoder.New(encoder.WithLogger(testutil.TestLogger(t)))),
	)

	out, err := p.FitTransform(trainTable(t))
	require.NoError(t, err)
	assert.Equal(t, []string{"foo", "bar_a", "bar_c"}, out.Names())

	names, err := p.FeatureNames()
	require.NoError(t, err)
	assert.Equal(t, []string{"foo", "bar_a", "bar_c"}, names)
}

func TestPipelineTransformBeforeFit(t *testing.T) {
	p := NewPipeline(SelectColumns("features", "foo"))

	_, err := p.Transform(trainTable(t))
	require.Error(t, err)
	assert.True(t, errors.IsType(err, errors.ErrorTypeState))
}

func TestPipelineFitFailsOnMissingColumn(t *testing.T) {
	p := NewPipeline(SelectColumns("features", "nope"))

	err := p.Fit(trainTable(t))
	require.Error(t, err)
}

func TestPipelineTransformMatchesEncoderAlone(t *testing.T) {
	train := trainTable(t)

	enc := encoder.New(encoder.WithLogger(testutil.TestLogger(t)))
	want, err := enc.FitTransform(train)
	require.NoError(t, err)

	p := NewPipeline(OneHot("onehot", encoder.New(encoder.WithLogger(testutil.TestLogger(t)))))
	got, err := p.FitTransform(train)
	require.NoError(t, err)

	assert.True(t, want.Equal(got))
}

func TestColumnSelectorFeatureNames(t *testing.T) {
	sel := &ColumnSelector{columns: []string{"foo"}}

	_, err := sel.FeatureNames()
	require.Error(t, err)
	assert.True(t, errors.IsType(err, errors.ErrorTypeState))

	require.NoError(t, sel.Fit(trainTable(t)))
	names, err := sel.FeatureNames()
	require.NoError(t, err)
	assert.Equal(t, []string{"foo"}, names)
}

func TestEmptyPipelineFeatureNames(t *testing.T) {
	p := NewPipeline()
	_, err := p.FeatureNames()
	require.Error(t, err)
}
