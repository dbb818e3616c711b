package rangemap

import (
	"fmt"
	"slices"
)

// DefaultStageCount is the number of maps in a puzzle almanac.
const DefaultStageCount = 7

// A Pipeline folds a set of seed ranges through its stages in order.
type Pipeline struct {
	seeds  []Range
	stages []Map
}

type options struct {
	stageCount int
}

// An Option configures New.
type Option func(*options)

// WithStageCount requires exactly n stages.
func WithStageCount(n int) Option {
	return func(o *options) {
		o.stageCount = n
	}
}

// New builds a pipeline. It fails with ErrStageCount when stages is empty or
// does not match the count given with WithStageCount.
func New(seeds []Range, stages []Map, opts ...Option) (*Pipeline, error) {
	var o options
	for _, opt := range opts {
		opt(&o)
	}
	if len(stages) == 0 {
		return nil, fmt.Errorf("%w: no stages", ErrStageCount)
	}
	if o.stageCount > 0 && len(stages) != o.stageCount {
		return nil, fmt.Errorf("%w: want %d stages, got %d", ErrStageCount, o.stageCount, len(stages))
	}
	if o.stageCount < 0 {
		return nil, fmt.Errorf("%w: want %d stages", ErrStageCount, o.stageCount)
	}
	return &Pipeline{
		seeds:  slices.Clone(seeds),
		stages: slices.Clone(stages),
	}, nil
}

func (p *Pipeline) Seeds() []Range {
	return slices.Clone(p.seeds)
}

func (p *Pipeline) Stages() []Map {
	return slices.Clone(p.stages)
}

// Fold runs the seeds through every stage and returns the final ranges.
// If observe is not nil it is called after each stage with the stage index,
// the stage and its output.
func (p *Pipeline) Fold(observe func(i int, m Map, out []Range)) []Range {
	current := NonEmpty(p.seeds)
	for i, m := range p.stages {
		current = m.Apply(current)
		if observe != nil {
			observe(i, m, current)
		}
	}
	return current
}

// Lowest returns the smallest value reachable from the seeds.
func (p *Pipeline) Lowest() (uint64, error) {
	final := p.Fold(nil)
	if len(final) == 0 {
		return 0, ErrEmptyResult
	}
	return slices.MinFunc(final, Compare).Start, nil
}

// LowestReachableValue builds a pipeline from seeds and stages and returns
// its lowest reachable value.
func LowestReachableValue(seeds []Range, stages []Map, opts ...Option) (uint64, error) {
	p, err := New(seeds, stages, opts...)
	if err != nil {
		return 0, err
	}
	return p.Lowest()
}
