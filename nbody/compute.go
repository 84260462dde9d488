package nbody

import (
	"fmt"
	"math"

	"github.com/gravkit/octforce/bruteforce"
	"github.com/gravkit/octforce/octnode"
	"github.com/gravkit/octforce/octree"
	"github.com/gravkit/octforce/vecmath"
)

// ComputeAccelerations computes the gravitational acceleration felt by
// every particle due to every other particle, approximated via a
// Barnes-Hut octree built and traversed in parallel.
//
// It validates the inputs, determines the root cell (from WithRoot, or a
// cube auto-derived to tightly bound the particles), builds the tree
// with BuildParallel, evaluates every particle's acceleration with
// EvalAllParallel, and returns results in input order.
func ComputeAccelerations(particles []Particle, opts ...Option) ([]Acceleration, error) {
	o := resolve(opts)
	if err := validate(o, "ComputeAccelerations", true); err != nil {
		return nil, err
	}

	positions, masses, err := toArrays(particles, "ComputeAccelerations")
	if err != nil {
		return nil, err
	}

	center, width := o.RootCenter, o.RootWidth
	if width <= 0 {
		center, width = boundingCube(positions)
	} else if o.StrictGeometry {
		if err := checkContainment(positions, center, width, "ComputeAccelerations"); err != nil {
			return nil, err
		}
	}

	root := octnode.New(width, center.X, center.Y, center.Z)
	treeOpts := []octree.Option{
		octree.WithLeafSize(o.LeafSize),
		octree.WithMaxWorkers(o.MaxWorkers),
		octree.WithMetrics(o.Metrics),
	}
	if err := octree.BuildParallel(root, positions, masses, treeOpts...); err != nil {
		return nil, fmt.Errorf("nbody.ComputeAccelerations: %w", err)
	}

	evalOpts := append(treeOpts, octree.WithStrategy(o.Strategy))
	accs, err := octree.EvalAllParallel(root, positions, positions, masses, o.G, o.Theta, o.Eps, evalOpts...)
	if err != nil {
		return nil, fmt.Errorf("nbody.ComputeAccelerations: %w", err)
	}

	return toAccelerations(accs), nil
}

// ComputeAccelerationsBruteForce computes the exact gravitational
// acceleration felt by every particle due to every other particle via
// direct O(N^2) pairwise summation, bypassing the octree entirely.
func ComputeAccelerationsBruteForce(particles []Particle, opts ...Option) ([]Acceleration, error) {
	o := resolve(opts)
	if err := validate(o, "ComputeAccelerationsBruteForce", false); err != nil {
		return nil, err
	}

	positions, masses, err := toArrays(particles, "ComputeAccelerationsBruteForce")
	if err != nil {
		return nil, err
	}

	accs, err := bruteforce.AccelerationsSymmetric(positions, masses, o.G, o.Eps)
	if err != nil {
		return nil, fmt.Errorf("nbody.ComputeAccelerationsBruteForce: %w", err)
	}

	return toAccelerations(accs), nil
}

func validate(o Options, method string, requireTheta bool) error {
	if o.G <= 0 {
		return errorf(method, ErrInvalidG, "got %v", o.G)
	}
	if o.Eps < 0 {
		return errorf(method, ErrInvalidEpsilon, "got %v", o.Eps)
	}
	if requireTheta && o.Theta <= 0 {
		return errorf(method, ErrInvalidTheta, "got %v", o.Theta)
	}
	if o.LeafSize < 1 {
		return fmt.Errorf("nbody.%s: %w", method, octree.ErrLeafSizeTooSmall)
	}
	return nil
}

func toArrays(particles []Particle, method string) ([]vecmath.Vec3, []float64, error) {
	positions := make([]vecmath.Vec3, len(particles))
	masses := make([]float64, len(particles))
	for i, p := range particles {
		if !finite(p.X) || !finite(p.Y) || !finite(p.Z) || !finite(p.Mass) {
			return nil, nil, errorf(method, ErrNonFinite, "particle %d", i)
		}
		positions[i] = vecmath.Vec3{X: p.X, Y: p.Y, Z: p.Z}
		masses[i] = p.Mass
	}
	return positions, masses, nil
}

func toAccelerations(accs []vecmath.Vec3) []Acceleration {
	out := make([]Acceleration, len(accs))
	for i, a := range accs {
		out[i] = Acceleration{X: a.X, Y: a.Y, Z: a.Z}
	}
	return out
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

// boundingCube derives a cube that tightly contains every position, with
// a small proportional pad so that particles sitting exactly on the
// natural bounding box's edge remain strictly inside the root cell.
func boundingCube(positions []vecmath.Vec3) (vecmath.Vec3, float64) {
	if len(positions) == 0 {
		return vecmath.Vec3{}, 1
	}
	minX, maxX := positions[0].X, positions[0].X
	minY, maxY := positions[0].Y, positions[0].Y
	minZ, maxZ := positions[0].Z, positions[0].Z
	for _, p := range positions[1:] {
		minX, maxX = math.Min(minX, p.X), math.Max(maxX, p.X)
		minY, maxY = math.Min(minY, p.Y), math.Max(maxY, p.Y)
		minZ, maxZ = math.Min(minZ, p.Z), math.Max(maxZ, p.Z)
	}

	center := vecmath.Vec3{X: (minX + maxX) / 2, Y: (minY + maxY) / 2, Z: (minZ + maxZ) / 2}
	width := math.Max(maxX-minX, math.Max(maxY-minY, maxZ-minZ))
	if width <= 0 {
		return center, 1
	}
	return center, width * 1.001
}

func checkContainment(positions []vecmath.Vec3, center vecmath.Vec3, width float64, method string) error {
	half := width / 2
	for i, p := range positions {
		if p.X < center.X-half || p.X >= center.X+half ||
			p.Y < center.Y-half || p.Y >= center.Y+half ||
			p.Z < center.Z-half || p.Z >= center.Z+half {
			return errorf(method, ErrOutsideRoot, "particle %d", i)
		}
	}
	return nil
}
