package octree

import (
	"time"

	"github.com/gravkit/octforce/octnode"
	"github.com/gravkit/octforce/vecmath"
	"golang.org/x/sync/errgroup"
)

// EvalOne computes the acceleration a single target point feels from
// every particle in the tree rooted at root, via serial per-particle
// descent. positions and masses are the same slices the tree was built
// over; indices stored in leaf buckets refer into them.
//
// A node whose center of mass coincides exactly with target (d = 0)
// contributes nothing — this is both the self-interaction guard (when
// target is itself one of the tree's particles) and a numerical guard
// against division by zero.
//
// Complexity: O(log N) expected for a well-separated target, O(N) worst
// case.
func EvalOne(root *octnode.Node, target vecmath.Vec3, positions []vecmath.Vec3, masses []float64, g, theta, eps float64) vecmath.Vec3 {
	if root == nil {
		return vecmath.Vec3{}
	}
	return descendOne(root, target, positions, masses, g, theta, eps)
}

func descendOne(n *octnode.Node, target vecmath.Vec3, positions []vecmath.Vec3, masses []float64, g, theta, eps float64) vecmath.Vec3 {
	dx, dy, dz, d2 := vecmath.Displacement(target.X, target.Y, target.Z, n.RX, n.RY, n.RZ)
	if d2 == 0 {
		return vecmath.Vec3{}
	}

	if n.IsLeaf() {
		var acc vecmath.Vec3
		for _, idx := range n.Leaf.Indices {
			p := positions[idx]
			ddx, ddy, ddz, dd2 := vecmath.Displacement(target.X, target.Y, target.Z, p.X, p.Y, p.Z)
			if dd2 == 0 {
				continue
			}
			f := vecmath.ForceCoeff(g, masses[idx], dd2, eps)
			acc.X += f * ddx
			acc.Y += f * ddy
			acc.Z += f * ddz
		}
		return acc
	}

	if n.Width*n.Width < theta*theta*d2 {
		f := vecmath.ForceCoeff(g, n.Mass, d2, eps)
		return vecmath.Vec3{X: f * dx, Y: f * dy, Z: f * dz}
	}

	var acc vecmath.Vec3
	for _, c := range n.Children {
		if c != nil {
			acc = acc.Add(descendOne(c, target, positions, masses, g, theta, eps))
		}
	}
	return acc
}

// EvalBatch computes the acceleration every point in targets feels from
// the tree rooted at root, via batched descent: at each internal node the
// surviving target index list is partitioned into
// MAC-satisfied (resolved immediately from the node's aggregate) and
// MAC-failing (carried down to present children), so inner-node work is
// shared across every target still live at that node rather than redone
// once per target.
//
// Complexity: O(T log N) expected for T targets, amortizing descent cost
// across targets better than T calls to EvalOne for well-separated target
// sets.
func EvalBatch(root *octnode.Node, targets []vecmath.Vec3, positions []vecmath.Vec3, masses []float64, g, theta, eps float64) []vecmath.Vec3 {
	accs := make([]vecmath.Vec3, len(targets))
	if root == nil || len(targets) == 0 {
		return accs
	}
	all := make([]int, len(targets))
	for i := range all {
		all[i] = i
	}
	descendBatch(root, all, targets, positions, masses, g, theta, eps, accs)
	return accs
}

func descendBatch(n *octnode.Node, idxs []int, targets []vecmath.Vec3, positions []vecmath.Vec3, masses []float64, g, theta, eps float64, accs []vecmath.Vec3) {
	if n == nil || len(idxs) == 0 {
		return
	}

	if n.IsLeaf() {
		for _, ti := range idxs {
			t := targets[ti]
			for _, pi := range n.Leaf.Indices {
				p := positions[pi]
				dx, dy, dz, d2 := vecmath.Displacement(t.X, t.Y, t.Z, p.X, p.Y, p.Z)
				if d2 == 0 {
					continue
				}
				f := vecmath.ForceCoeff(g, masses[pi], d2, eps)
				accs[ti].X += f * dx
				accs[ti].Y += f * dy
				accs[ti].Z += f * dz
			}
		}
		return
	}

	w2 := n.Width * n.Width
	thetaSq := theta * theta

	var failing []int
	for _, ti := range idxs {
		t := targets[ti]
		dx, dy, dz, d2 := vecmath.Displacement(t.X, t.Y, t.Z, n.RX, n.RY, n.RZ)
		if d2 == 0 {
			continue
		}
		if w2 < thetaSq*d2 {
			f := vecmath.ForceCoeff(g, n.Mass, d2, eps)
			accs[ti].X += f * dx
			accs[ti].Y += f * dy
			accs[ti].Z += f * dz
		} else {
			failing = append(failing, ti)
		}
	}
	if len(failing) == 0 {
		return
	}
	for _, c := range n.Children {
		if c != nil {
			descendBatch(c, failing, targets, positions, masses, g, theta, eps, accs)
		}
	}
}

// EvalAllParallel computes the acceleration every point in targets feels
// from the tree rooted at root, fanning the work out across
// options.MaxWorkers goroutines according to options.Strategy. Each
// goroutine writes only to the disjoint slice of accs it owns.
func EvalAllParallel(root *octnode.Node, targets []vecmath.Vec3, positions []vecmath.Vec3, masses []float64, g, theta, eps float64, opts ...Option) ([]vecmath.Vec3, error) {
	if root == nil {
		return nil, ErrEmptyTree
	}
	o := resolve(opts)

	n := len(targets)
	accs := make([]vecmath.Vec3, n)
	if n == 0 {
		return accs, nil
	}

	threads := o.MaxWorkers
	if threads > n {
		threads = n
	}
	if threads < 1 {
		threads = 1
	}

	start := time.Now()
	bounds := splitContiguous(n, threads)

	var eg errgroup.Group
	switch o.Strategy {
	case ParticleSliceDispatch:
		for _, b := range bounds {
			lo, hi := b[0], b[1]
			eg.Go(func() error {
				for i := lo; i < hi; i++ {
					accs[i] = EvalOne(root, targets[i], positions, masses, g, theta, eps)
				}
				return nil
			})
		}
	default: // TargetPartitioned
		for _, b := range bounds {
			lo, hi := b[0], b[1]
			eg.Go(func() error {
				sub := EvalBatch(root, targets[lo:hi], positions, masses, g, theta, eps)
				copy(accs[lo:hi], sub)
				return nil
			})
		}
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}

	o.Metrics.ObserveTraversalDuration(time.Since(start))
	o.Metrics.AddParticlesProcessed(n)

	return accs, nil
}

// splitContiguous partitions [0,n) into at most parts contiguous,
// roughly equal ranges, returned as [lo, hi) pairs. It never returns more
// parts than n.
func splitContiguous(n, parts int) [][2]int {
	if parts > n {
		parts = n
	}
	if parts < 1 {
		parts = 1
	}
	bounds := make([][2]int, 0, parts)
	base := n / parts
	rem := n % parts
	lo := 0
	for i := 0; i < parts; i++ {
		size := base
		if i < rem {
			size++
		}
		hi := lo + size
		if hi > lo {
			bounds = append(bounds, [2]int{lo, hi})
		}
		lo = hi
	}
	return bounds
}
