// Package pipeline provides a small estimator framework for chaining
// table transformers, in the style of fit/transform estimators.
package pipeline

import (
	"go.uber.org/zap"

	"github.com/ajitpratap0/tabular/pkg/encoder"
	"github.com/ajitpratap0/tabular/pkg/errors"
	"github.com/ajitpratap0/tabular/pkg/logger"
	"github.com/ajitpratap0/tabular/pkg/table"
)

// Transformer is a fit/transform stage over tables
type Transformer interface {
	// Fit learns the parameters of the transformation
	Fit(t *table.Table) error

	// Transform applies the learned transformation
	Transform(t *table.Table) (*table.Table, error)

	// FitTransform fits on t and transforms the same table
	FitTransform(t *table.Table) (*table.Table, error)

	// FeatureNames returns the output column names learned at fit time
	FeatureNames() ([]string, error)
}

// Stage is a named pipeline step
type Stage struct {
	Name        string
	Transformer Transformer
}

// Pipeline chains transformers; each stage consumes the previous stage's
// output. Fit runs fit-transform through the chain so later stages are
// fitted on transformed data.
type Pipeline struct {
	stages []Stage
	fitted bool
	log    *zap.Logger
}

// NewPipeline creates a pipeline from the given stages
func NewPipeline(stages ...Stage) *Pipeline {
	return &Pipeline{
		stages: stages,
		log:    logger.With(zap.String("component", "pipeline")),
	}
}

// Fit fits every stage in order, feeding each stage the output of the
// previous one
func (p *Pipeline) Fit(t *table.Table) error {
	current := t
	for _, stage := range p.stages {
		out, err := stage.Transformer.FitTransform(current)
		if err != nil {
			return errors.Wrap(err, errors.ErrorTypeData,
				"pipeline stage "+stage.Name+" failed to fit")
		}
		p.log.Debug("pipeline stage fitted",
			zap.String("stage", stage.Name),
			zap.Int("output_columns", out.NumCols()))
		current = out
	}
	p.fitted = true
	return nil
}

// Transform applies every fitted stage in order
func (p *Pipeline) Transform(t *table.Table) (*table.Table, error) {
	if !p.fitted {
		return nil, errors.New(errors.ErrorTypeState,
			"pipeline transform called before fit")
	}

	current := t
	for _, stage := range p.stages {
		out, err := stage.Transformer.Transform(current)
		if err != nil {
			return nil, errors.Wrap(err, errors.ErrorTypeData,
				"pipeline stage "+stage.Name+" failed to transform")
		}
		current = out
	}
	return current, nil
}

// FitTransform fits the pipeline and transforms the same table
func (p *Pipeline) FitTransform(t *table.Table) (*table.Table, error) {
	if err := p.Fit(t); err != nil {
		return nil, err
	}
	return p.Transform(t)
}

// FeatureNames returns the output column names of the final stage
func (p *Pipeline) FeatureNames() ([]string, error) {
	if len(p.stages) == 0 {
		return nil, errors.New(errors.ErrorTypeState, "pipeline has no stages")
	}
	return p.stages[len(p.stages)-1].Transformer.FeatureNames()
}

// onehotStage adapts the encoder's chained-fit API to the Transformer
// interface
type onehotStage struct {
	enc *encoder.OneHotEncoder
}

// OneHot wraps a OneHotEncoder as a pipeline stage
func OneHot(name string, enc *encoder.OneHotEncoder) Stage {
	return Stage{Name: name, Transformer: &onehotStage{enc: enc}}
}

func (s *onehotStage) Fit(t *table.Table) error {
	_, err := s.enc.Fit(t)
	return err
}

func (s *onehotStage) Transform(t *table.Table) (*table.Table, error) {
	return s.enc.Transform(t)
}

func (s *onehotStage) FitTransform(t *table.Table) (*table.Table, error) {
	return s.enc.FitTransform(t)
}

func (s *onehotStage) FeatureNames() ([]string, error) {
	return s.enc.FeatureNames()
}
