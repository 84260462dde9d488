// Package nbody orchestrates gravitational acceleration computation over
// a set of particles: it builds a Barnes-Hut octree and evaluates the
// multipole-accepted force on every particle. ComputeAccelerationsBruteForce
// offers the exact O(N²) alternative for callers who want it directly.
//
// Quick start:
//
//	accs, err := nbody.ComputeAccelerations(particles, nbody.WithTheta(0.5))
//	if err != nil {
//	    log.Fatal(err)
//	}
package nbody
