package octree_test

import (
	"testing"

	"github.com/gravkit/octforce/octnode"
	"github.com/gravkit/octforce/octree"
	"github.com/gravkit/octforce/vecmath"
	"github.com/stretchr/testify/require"
)

// TestThreadCountDoesNotAffectResult builds and evaluates the same
// particle set under worker counts 1, 2, 4, and 8, and requires identical
// accelerations (up to floating-point summation order) regardless of how
// many goroutines did the work. Run with -race to also catch any
// disjoint-write violation in BuildParallel/EvalAllParallel.
func TestThreadCountDoesNotAffectResult(t *testing.T) {
	n := 160
	positions := make([]vecmath.Vec3, n)
	masses := make([]float64, n)
	for i := range positions {
		positions[i] = vecmath.Vec3{
			X: float64(i%8) - 3.5,
			Y: float64((i/8)%8) - 3.5,
			Z: float64(i/64) - 1,
		}
		masses[i] = float64(i%6 + 1)
	}

	var reference []vecmath.Vec3
	for _, workers := range []int{1, 2, 4, 8} {
		root := octnode.New(20, 0, 0, 0)
		require.NoError(t, octree.BuildParallel(root, positions, masses,
			octree.WithLeafSize(4), octree.WithMaxWorkers(workers)))

		accs, err := octree.EvalAllParallel(root, positions, positions, masses, 1.0, 0.5, 1e-6,
			octree.WithMaxWorkers(workers))
		require.NoError(t, err)

		if reference == nil {
			reference = accs
			continue
		}
		for i := range accs {
			require.InDelta(t, reference[i].X, accs[i].X, 1e-9, "workers=%d index=%d", workers, i)
			require.InDelta(t, reference[i].Y, accs[i].Y, 1e-9, "workers=%d index=%d", workers, i)
			require.InDelta(t, reference[i].Z, accs[i].Z, 1e-9, "workers=%d index=%d", workers, i)
		}
	}
}

func TestBuildParallelDisjointChildrenNoRace(t *testing.T) {
	n := 500
	positions := make([]vecmath.Vec3, n)
	masses := make([]float64, n)
	for i := range positions {
		positions[i] = vecmath.Vec3{
			X: float64(i%20) - 9.5,
			Y: float64((i/20)%20) - 9.5,
			Z: float64(i/400) - 0.5,
		}
		masses[i] = 1
	}
	root := octnode.New(40, 0, 0, 0)
	require.NoError(t, octree.BuildParallel(root, positions, masses,
		octree.WithLeafSize(8), octree.WithMaxWorkers(8)))
	require.InDelta(t, float64(n), root.Mass, 1e-9)
}
