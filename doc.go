// Package tabular provides one-hot encoding of categorical columns over an
// in-memory tabular container, with the output schema fixed at fit time.
//
// The core is the fit/transform contract: fitting an encoder records which
// columns are categorical and the full expanded column sequence; every later
// transform reproduces exactly that sequence, zero-filling indicator columns
// whose values are absent from the new data and dropping values that were
// never seen at fit time.
//
// # Quick start
//
//	import (
//	    "github.com/ajitpratap0/tabular/pkg/encoder"
//	    "github.com/ajitpratap0/tabular/pkg/table"
//	)
//
//	train := table.New()
//	_ = train.AddColumn("foo", table.NewIntColumnFromSlice([]int64{1, 2}))
//	_ = train.AddColumn("bar", table.NewCategoricalColumnFromSlice([]string{"a", "c"}))
//
//	enc := encoder.New()
//	encoded, err := enc.FitTransform(train)
//	if err != nil {
//	    // handle
//	}
//	names, _ := enc.FeatureNames() // [foo bar_a bar_c]
//	_ = encoded
//
// # Packages
//
//   - pkg/table: ordered, typed column container
//   - pkg/dummies: bulk one-hot expansion primitive
//   - pkg/encoder: the stateful encoder and its serializable state
//   - pkg/pipeline: fit/transform stage chaining
//   - pkg/schema: dtype inference for untyped input
//   - pkg/tableio: CSV read/write
//   - cmd/tabular: CLI for encoding CSV files
package tabular
