// Package encoder provides a stateful one-hot encoder for tabular data.
//
// The encoder learns which columns are categorical and what the fully
// expanded output schema looks like at fit time, then reproduces that exact
// schema on arbitrary later tables: indicator columns for values absent at
// transform time are zero-filled, values unseen at fit time are dropped.
package encoder

import (
	"go.uber.org/zap"

	"github.com/ajitpratap0/tabular/pkg/dummies"
	"github.com/ajitpratap0/tabular/pkg/errors"
	"github.com/ajitpratap0/tabular/pkg/logger"
	"github.com/ajitpratap0/tabular/pkg/table"
)

// OneHotEncoder one-hot encodes the categorical columns of a table with a
// schema fixed at fit time. Not safe for concurrent Fit/Transform on the
// same instance.
type OneHotEncoder struct {
	selectors map[table.ColumnType]bool

	// Populated by Fit, replaced entirely by a second Fit
	categoricalColumns []string
	outputColumns      []string
	fitted             bool

	log *zap.Logger
}

// Option configures a OneHotEncoder
type Option func(*OneHotEncoder)

// WithDTypes sets the column types selected for encoding. The default is
// string and categorical columns.
func WithDTypes(types ...table.ColumnType) Option {
	return func(e *OneHotEncoder) {
		e.selectors = make(map[table.ColumnType]bool, len(types))
		for _, t := range types {
			e.selectors[t] = true
		}
	}
}

// WithLogger sets the logger used by the encoder
func WithLogger(log *zap.Logger) Option {
	return func(e *OneHotEncoder) {
		e.log = log
	}
}

// New creates an unfitted OneHotEncoder
func New(opts ...Option) *OneHotEncoder {
	e := &OneHotEncoder{
		selectors: map[table.ColumnType]bool{
			table.ColumnTypeString:      true,
			table.ColumnTypeCategorical: true,
		},
		log: logger.Get(),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Fit selects the columns of t whose type matches the configured selectors,
// expands them, and records the resulting column sequence as the output
// schema for all subsequent transforms. A second Fit replaces prior state
// entirely. Returns the receiver to support chained fit-then-transform use.
func (e *OneHotEncoder) Fit(t *table.Table) (*OneHotEncoder, error) {
	categorical := make([]string, 0)
	for _, name := range t.Names() {
		col, _ := t.Column(name)
		if e.selectors[col.Type()] {
			categorical = append(categorical, name)
		}
	}

	expanded, err := dummies.Expand(t, categorical)
	if err != nil {
		// Expansion failures surface unmodified; prior state is kept
		return nil, err
	}

	e.categoricalColumns = categorical
	e.outputColumns = expanded.Names()
	e.fitted = true

	e.log.Debug("encoder fitted",
		zap.Strings("categorical_columns", e.categoricalColumns),
		zap.Int("output_columns", len(e.outputColumns)))

	return e, nil
}

// Transform expands t using the fit-time categorical columns and reconciles
// the result against the fit-time schema: fit-time columns absent from this
// table are added as all-zero indicator columns, columns produced here but
// unseen at fit time are dropped, and the output column sequence is exactly
// the fit-time sequence.
func (e *OneHotEncoder) Transform(t *table.Table) (*table.Table, error) {
	if !e.fitted {
		return nil, errors.New(errors.ErrorTypeState,
			"transform called before fit")
	}

	produced, err := dummies.Expand(t, e.categoricalColumns)
	if err != nil {
		return nil, err
	}

	// Zero-fill fit-time columns missing from this table
	for _, name := range e.outputColumns {
		if !produced.Has(name) {
			if err := produced.AddColumn(name, table.NewZeroIntColumn(t.NumRows())); err != nil {
				return nil, err
			}
		}
	}

	if e.log.Core().Enabled(zap.DebugLevel) {
		known := make(map[string]bool, len(e.outputColumns))
		for _, name := range e.outputColumns {
			known[name] = true
		}
		var dropped []string
		for _, name := range produced.Names() {
			if !known[name] {
				dropped = append(dropped, name)
			}
		}
		if len(dropped) > 0 {
			e.log.Debug("dropping columns unseen at fit time",
				zap.Strings("columns", dropped))
		}
	}

	return produced.Select(e.outputColumns)
}

// FitTransform fits the encoder on t and transforms the same table
func (e *OneHotEncoder) FitTransform(t *table.Table) (*table.Table, error) {
	if _, err := e.Fit(t); err != nil {
		return nil, err
	}
	return e.Transform(t)
}

// FeatureNames returns the fit-time output column sequence
func (e *OneHotEncoder) FeatureNames() ([]string, error) {
	if !e.fitted {
		return nil, errors.New(errors.ErrorTypeState,
			"feature names requested before fit")
	}

	out := make([]string, len(e.outputColumns))
	copy(out, e.outputColumns)
	return out, nil
}
