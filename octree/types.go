// Package octree: types and configuration options for octree construction
// and evaluation.
//
// Options:
//
//   - LeafSize:   max resident particles per leaf before it is
//     redistributed into children. Must be >= 1. Default 8.
//   - MaxWorkers: upper bound on concurrent goroutines for BuildParallel
//     and EvalAllParallel. Default runtime.NumCPU().
//   - Strategy:   traversal fan-out strategy for EvalAllParallel.
//     Default TargetPartitioned.
//   - Metrics:    optional metrics.Recorder; defaults to the zero-cost
//     metrics.NoopRecorder.
package octree

import (
	"runtime"

	"github.com/gravkit/octforce/metrics"
)

// Strategy selects how EvalAllParallel fans work out across goroutines.
type Strategy int

const (
	// TargetPartitioned splits the target slice into contiguous chunks up
	// front and runs a batched descent (EvalBatch) over each chunk in its
	// own goroutine; within a chunk, the list of still-live target indices
	// is partitioned at each internal node (MAC-satisfied vs MAC-failing).
	// This is the default: it shares inner-node traversal work across the
	// targets of a chunk instead of repeating it per target.
	TargetPartitioned Strategy = iota

	// ParticleSliceDispatch splits the target slice into contiguous
	// chunks up front and runs an ordinary serial per-target descent
	// (EvalOne) over each chunk in its own goroutine. Simpler and lower
	// overhead per target, but it repeats the upper-tree descent once
	// per target rather than sharing it.
	ParticleSliceDispatch
)

// Options configures Build, BuildParallel, and EvalAllParallel. EvalOne
// and EvalBatch take no options.
type Options struct {
	LeafSize   int
	MaxWorkers int
	Strategy   Strategy
	Metrics    metrics.Recorder
}

// Option is a functional option for Options.
type Option func(*Options)

// WithLeafSize overrides the maximum number of resident particles a leaf
// may hold before it is redistributed into children. n must be >= 1.
func WithLeafSize(n int) Option {
	if n < 1 {
		panic(ErrLeafSizeTooSmall.Error())
	}
	return func(o *Options) {
		o.LeafSize = n
	}
}

// WithMaxWorkers overrides the upper bound on concurrent goroutines used
// by BuildParallel and EvalAllParallel. n must be >= 1.
func WithMaxWorkers(n int) Option {
	if n < 1 {
		panic("octree: MaxWorkers must be >= 1")
	}
	return func(o *Options) {
		o.MaxWorkers = n
	}
}

// WithStrategy overrides the traversal fan-out strategy EvalAllParallel
// uses.
func WithStrategy(s Strategy) Option {
	return func(o *Options) {
		o.Strategy = s
	}
}

// WithMetrics attaches a metrics.Recorder. Passing nil is equivalent to
// not calling WithMetrics at all (the default NoopRecorder is kept).
func WithMetrics(r metrics.Recorder) Option {
	return func(o *Options) {
		if r != nil {
			o.Metrics = r
		}
	}
}

// DefaultOptions returns the default configuration: LeafSize 8,
// MaxWorkers runtime.NumCPU(), Strategy TargetPartitioned, and a
// NoopRecorder.
func DefaultOptions() Options {
	return Options{
		LeafSize:   8,
		MaxWorkers: runtime.NumCPU(),
		Strategy:   TargetPartitioned,
		Metrics:    metrics.NewNoopRecorder(),
	}
}

func resolve(opts []Option) Options {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return o
}
