package bruteforce

import (
	"math"

	"github.com/gravkit/octforce/vecmath"
)

// AccelerationsSymmetric computes the exact O(N²) pairwise gravitational
// acceleration on every particle in positions, under the softened
// inverse-square law, accumulating each unordered pair exactly once via
// Newton's third law.
//
// G is folded into each particle's mass inside this call rather than
// applied to the force coefficient: each side of a pair is scaled by
// g times the other particle's mass.
//
// Self-interaction is excluded structurally: the inner loop only visits
// j > i. For eps > 0, coincident particles (d=0) never divide by zero
// because of the eps term in the denominator; with eps == 0 they do.
//
// Complexity: O(N²) time, O(N) space for the result.
func AccelerationsSymmetric(positions []vecmath.Vec3, masses []float64, g, eps float64) ([]vecmath.Vec3, error) {
	if len(positions) != len(masses) {
		return nil, ErrLengthMismatch
	}

	n := len(positions)
	accs := make([]vecmath.Vec3, n)
	if n == 0 {
		return accs, nil
	}

	for i := 0; i < n; i++ {
		k2 := masses[i] * g
		pi := positions[i]
		for j := i + 1; j < n; j++ {
			k1 := masses[j] * g
			dx, dy, dz, d2 := vecmath.Displacement(pi.X, pi.Y, pi.Z, positions[j].X, positions[j].Y, positions[j].Z)
			d := math.Sqrt(d2)
			f := 1.0 / (d*d2 + eps)

			accs[i].X += f * k1 * dx
			accs[i].Y += f * k1 * dy
			accs[i].Z += f * k1 * dz

			accs[j].X -= f * k2 * dx
			accs[j].Y -= f * k2 * dy
			accs[j].Z -= f * k2 * dz
		}
	}

	return accs, nil
}

// AccelerationOnSingle returns the acceleration on a probe particle at
// target due to every particle in others, under the softened
// inverse-square law.
//
// Callers are responsible for excluding the probe itself from others —
// unlike the whole-system AccelerationsSymmetric, there is no pair
// structure here to exclude self-interaction automatically.
//
// Complexity: O(len(others)) time, O(1) space.
func AccelerationOnSingle(target vecmath.Vec3, others []vecmath.Vec3, otherMasses []float64, g, eps float64) (vecmath.Vec3, error) {
	if len(others) != len(otherMasses) {
		return vecmath.Vec3{}, ErrLengthMismatch
	}

	var acc vecmath.Vec3
	for i, o := range others {
		dx, dy, dz, d2 := vecmath.Displacement(target.X, target.Y, target.Z, o.X, o.Y, o.Z)
		f := vecmath.ForceCoeff(g, otherMasses[i], d2, eps)
		acc.X += f * dx
		acc.Y += f * dy
		acc.Z += f * dz
	}

	return acc, nil
}
