package nbody

import (
	"runtime"

	"github.com/gravkit/octforce/metrics"
	"github.com/gravkit/octforce/octree"
	"github.com/gravkit/octforce/vecmath"
)

// Particle is one body in the simulation: a position and a mass.
type Particle struct {
	X, Y, Z float64
	Mass    float64
}

// Acceleration is the gravitational acceleration felt by one particle.
type Acceleration struct {
	X, Y, Z float64
}

// Options configures ComputeAccelerations and ComputeAccelerationsBruteForce.
//
//   - G:              gravitational constant. Must be > 0. Default 1.0.
//   - Eps:             softening length. Must be >= 0. Default 0.
//   - Theta:          opening angle for the multipole acceptance
//     criterion; smaller is more accurate and slower. Must be > 0.
//     Ignored by ComputeAccelerationsBruteForce. Default 0.5.
//   - RootCenter/RootWidth: the root cell's cube. If RootWidth is left
//     at its zero value, ComputeAccelerations derives a cube that
//     tightly bounds the input particles.
//   - StrictGeometry: if true, reject any particle that falls outside
//     a caller-supplied root cube instead of silently misclassifying it.
//   - LeafSize/MaxWorkers/Strategy/Metrics: forwarded to the octree
//     package unchanged.
type Options struct {
	G              float64
	Eps            float64
	Theta          float64
	RootCenter     vecmath.Vec3
	RootWidth      float64
	StrictGeometry bool

	LeafSize   int
	MaxWorkers int
	Strategy   octree.Strategy
	Metrics    metrics.Recorder
}

// Option is a functional option for Options.
type Option func(*Options)

// WithG overrides the gravitational constant.
func WithG(g float64) Option {
	return func(o *Options) { o.G = g }
}

// WithEpsilon overrides the softening length.
func WithEpsilon(eps float64) Option {
	return func(o *Options) { o.Eps = eps }
}

// WithTheta overrides the multipole acceptance criterion's opening angle.
func WithTheta(theta float64) Option {
	return func(o *Options) { o.Theta = theta }
}

// WithRoot overrides the root cell explicitly: a cube of edge length
// width centered at (cx,cy,cz). If not called, ComputeAccelerations
// derives a bounding cube from the input particles.
func WithRoot(cx, cy, cz, width float64) Option {
	return func(o *Options) {
		o.RootCenter = vecmath.Vec3{X: cx, Y: cy, Z: cz}
		o.RootWidth = width
	}
}

// WithStrictGeometry enables rejecting particles that fall outside an
// explicitly supplied root cube (WithRoot) instead of letting ChildIndex
// silently route them to whichever octant their coordinates compare into.
// Has no effect when the root is auto-derived, since the derived cube
// always contains every particle by construction.
func WithStrictGeometry() Option {
	return func(o *Options) { o.StrictGeometry = true }
}

// WithLeafSize overrides the octree's maximum leaf occupancy.
func WithLeafSize(n int) Option {
	return func(o *Options) { o.LeafSize = n }
}

// WithMaxWorkers overrides the upper bound on concurrent goroutines.
func WithMaxWorkers(n int) Option {
	return func(o *Options) { o.MaxWorkers = n }
}

// WithStrategy overrides the parallel traversal fan-out strategy.
func WithStrategy(s octree.Strategy) Option {
	return func(o *Options) { o.Strategy = s }
}

// WithMetrics attaches a metrics.Recorder, forwarded to the octree build
// and traversal calls.
func WithMetrics(r metrics.Recorder) Option {
	return func(o *Options) {
		if r != nil {
			o.Metrics = r
		}
	}
}

// DefaultOptions returns G=1.0, Eps=0, Theta=0.5, an auto-derived root,
// non-strict geometry, LeafSize 8, MaxWorkers runtime.NumCPU(),
// TargetPartitioned traversal, and a NoopRecorder.
func DefaultOptions() Options {
	return Options{
		G:          1.0,
		Eps:        0,
		Theta:      0.5,
		LeafSize:   8,
		MaxWorkers: runtime.NumCPU(),
		Strategy:   octree.TargetPartitioned,
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
