package app

import (
	"context"

	"golang.org/x/sync/errgroup"

	"rngbias/domain/bias"
	"rngbias/domain/core"
	"rngbias/internal"
)

// EvalConfig selects which features and dimensional tests an evaluation
// runs, with the acceptance band of every feature.
type EvalConfig struct {
	// Objectives holds 1-based feature index sets; each set becomes one
	// summed penalty in the objective vector.
	Objectives [][]int
	// Constraints holds dimensional test dimensions; LowerBounds and
	// UpperBounds are the parallel acceptance quantiles.
	Constraints []int
	LowerBounds []float64
	UpperBounds []float64
	// Alpha, Beta, Gamma are parallel bands, one triple per feature.
	Alpha []float64
	Beta  []float64
	Gamma []float64
}

// Validate rejects malformed configurations before any computation: band
// arrays must cover all fifteen features, objective sets must be non-empty
// with in-range indices, and constraint dimensions need monotonic quantile
// bounds.
func (c EvalConfig) Validate() error {
	if len(c.Alpha) != bias.NumFeatures || len(c.Beta) != bias.NumFeatures || len(c.Gamma) != bias.NumFeatures {
		return core.ErrBandShape
	}
	for _, set := range c.Objectives {
		if len(set) == 0 {
			return core.ErrEmptyObjectiveSet
		}
		for _, ix := range set {
			if ix < 1 || ix > bias.NumFeatures {
				return core.NewFeatureIndexError(ix)
			}
		}
	}
	// Bounds are indexed per constraint position, so they must cover the
	// constraint list; surplus entries are inert.
	if len(c.LowerBounds) < len(c.Constraints) || len(c.UpperBounds) < len(c.Constraints) {
		return core.ErrBoundShape
	}
	for i, d := range c.Constraints {
		if d < 1 || d > bias.MaxTestDimension {
			return core.NewTestDimensionError(d, bias.MaxTestDimension)
		}
		lo, hi := c.LowerBounds[i], c.UpperBounds[i]
		if lo <= 0 || hi >= 1 || lo >= hi {
			return core.ErrBoundOrder
		}
	}
	return nil
}

// bands pairs each feature with its acceptance band, 0-based.
func (c EvalConfig) bands() []bias.Band {
	bands := make([]bias.Band, bias.NumFeatures)
	for i := range bands {
		bands[i] = bias.Band{Alpha: c.Alpha[i], Beta: c.Beta[i], Gamma: c.Gamma[i]}
	}
	return bands
}

// Service evaluates sequences against a validated configuration.
type Service struct {
	cfg      EvalConfig
	features []bias.Feature
	bands    []bias.Band
	log      *internal.Logger
}

// NewService validates the configuration once and returns an evaluation
// service. A nil logger falls back to the environment default.
func NewService(cfg EvalConfig, logger *internal.Logger) (*Service, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if logger == nil {
		logger = internal.NewDefaultLogger()
	}
	return &Service{
		cfg:      cfg,
		features: bias.Features(),
		bands:    cfg.bands(),
		log:      logger,
	}, nil
}

// Evaluate computes the objective and constraint vectors for one sequence.
// Entries are independent pure computations, so they fan out across
// goroutines; results land in their configured order.
func (s *Service) Evaluate(ctx context.Context, seq core.Sequence) ([]float64, []float64, error) {
	id := core.NewEvaluationID()
	s.log.Debug("evaluation %s: sequence of %d symbols, %d objectives, %d constraints",
		id, seq.Len(), len(s.cfg.Objectives), len(s.cfg.Constraints))

	objectives := make([]float64, len(s.cfg.Objectives))
	constraints := make([]float64, len(s.cfg.Constraints))

	g, _ := errgroup.WithContext(ctx)
	for i, set := range s.cfg.Objectives {
		i, set := i, set
		g.Go(func() error {
			var sum float64
			for _, ix := range set {
				f := s.features[ix-1]
				sum += s.bands[ix-1].Penalty(f.Value(seq))
			}
			objectives[i] = sum
			return nil
		})
	}
	for j, d := range s.cfg.Constraints {
		j, d := j, d
		g.Go(func() error {
			constraints[j] = bias.DimensionalTest(seq, d, s.cfg.LowerBounds[j], s.cfg.UpperBounds[j])
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, nil, err
	}

	s.log.Info("evaluation %s: objectives=%v constraints=%v", id, objectives, constraints)
	return objectives, constraints, nil
}
