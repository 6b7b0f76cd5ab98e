package pipeline

import (
	"github.com/ajitpratap0/tabular/pkg/errors"
	"github.com/ajitpratap0/tabular/pkg/table"
)

// ColumnSelector is a Transformer that keeps only the named columns, in
// the given order. Columns named but absent at transform time are an
// error; selection is structural, not reconciling.
type ColumnSelector struct {
	columns []string
	fitted  bool
}

// SelectColumns creates a ColumnSelector stage
func SelectColumns(name string, columns ...string) Stage {
	return Stage{Name: name, Transformer: &ColumnSelector{columns: columns}}
}

// Fit verifies that every selected column exists
func (s *ColumnSelector) Fit(t *table.Table) error {
	for _, name := range s.columns {
		if !t.Has(name) {
			return errors.Newf(errors.ErrorTypeNotFound,
				"selected column %q not found", name)
		}
	}
	s.fitted = true
	return nil
}

// Transform keeps the selected columns
func (s *ColumnSelector) Transform(t *table.Table) (*table.Table, error) {
	if !s.fitted {
		return nil, errors.New(errors.ErrorTypeState,
			"selector transform called before fit")
	}
	return t.Select(s.columns)
}

// FitTransform fits and transforms in one pass
func (s *ColumnSelector) FitTransform(t *table.Table) (*table.Table, error) {
	if err := s.Fit(t); err != nil {
		return nil, err
	}
	return s.Transform(t)
}

// FeatureNames returns the selected column names
func (s *ColumnSelector) FeatureNames() ([]string, error) {
	if !s.fitted {
		return nil, errors.New(errors.ErrorTypeState,
			"selector feature names requested before fit")
	}
	out := make([]string, len(s.columns))
	copy(out, s.columns)
	return out, nil
}
