package encoder

import (
	"io"
	"sort"

	jsonutil "github.com/ajitpratap0/tabular/pkg/json"

	"github.com/ajitpratap0/tabular/pkg/errors"
	"github.com/ajitpratap0/tabular/pkg/table"
)

// State is the serializable fitted state of a OneHotEncoder
type State struct {
	CategoricalColumns []string `json:"categorical_columns"`
	OutputColumns      []string `json:"output_columns"`
	DTypeSelectors     []string `json:"dtype_selectors"`
}

// State returns the fitted state of the encoder. It fails if the encoder
// was never fitted.
func (e *OneHotEncoder) State() (*State, error) {
	if !e.fitted {
		return nil, errors.New(errors.ErrorTypeState,
			"state requested before fit")
	}

	selectors := make([]string, 0, len(e.selectors))
	for t := range e.selectors {
		selectors = append(selectors, t.String())
	}
	sort.Strings(selectors)

	s := &State{
		CategoricalColumns: make([]string, len(e.categoricalColumns)),
		OutputColumns:      make([]string, len(e.outputColumns)),
		DTypeSelectors:     selectors,
	}
	copy(s.CategoricalColumns, e.categoricalColumns)
	copy(s.OutputColumns, e.outputColumns)
	return s, nil
}

// Restore creates a fitted encoder from a previously captured state
func Restore(s *State, opts ...Option) (*OneHotEncoder, error) {
	types := make([]table.ColumnType, 0, len(s.DTypeSelectors))
	for _, tag := range s.DTypeSelectors {
		t, err := table.ParseColumnType(tag)
		if err != nil {
			return nil, errors.Wrap(err, errors.ErrorTypeValidation,
				"invalid dtype selector in state")
		}
		types = append(types, t)
	}

	e := New(append([]Option{WithDTypes(types...)}, opts...)...)
	e.categoricalColumns = append([]string(nil), s.CategoricalColumns...)
	e.outputColumns = append([]string(nil), s.OutputColumns...)
	e.fitted = true
	return e, nil
}

// WriteState serializes the fitted state as JSON
func (e *OneHotEncoder) WriteState(w io.Writer) error {
	s, err := e.State()
	if err != nil {
		return err
	}
	return jsonutil.Encode(w, s)
}

// ReadState deserializes a fitted encoder from JSON state
func ReadState(r io.Reader, opts ...Option) (*OneHotEncoder, error) {
	var s State
	if err := jsonutil.Decode(r, &s); err != nil {
		return nil, errors.Wrap(err, errors.ErrorTypeData,
			"cannot decode encoder state")
	}
	return Restore(&s, opts...)
}
