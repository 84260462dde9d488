// Package octforce computes gravitational accelerations on a set of
// point masses in three-dimensional space.
//
// 🪐 What is octforce?
//
//	A small, thread-safe library offering two interchangeable strategies
//	for N-body force evaluation:
//
//	  • Brute force: exact O(N²) pairwise summation under a softened
//	    inverse-square law.
//	  • Barnes–Hut: approximate O(N log N) evaluation via an adaptive
//	    octree and an opening-angle (θ) multipole-acceptance criterion.
//
// ✨ Why choose octforce?
//
//   - Deterministic     — fixed thread count and partition policy give
//     bitwise-reproducible output.
//   - Concurrent        — particle-partitioned tree construction and
//     dual parallel traversal strategies via errgroup worker pools.
//   - Observable        — optional Prometheus counters/histograms for
//     build and traversal telemetry, opt-in and zero-cost by default.
//   - Pure Go           — no cgo.
//
// Under the hood, everything is organized under six subpackages:
//
//	vecmath/    — softened inverse-square force primitives
//	bruteforce/ — exact pairwise kernel
//	octnode/    — the adaptive octree's cubical cell type
//	octree/     — tree builder and traversal/evaluator
//	nbody/      — top-level orchestrator: Particle/Acceleration, ComputeAccelerations
//	metrics/    — optional Prometheus instrumentation
//
// Quick start:
//
//	accs, err := nbody.ComputeAccelerations(particles,
//	    nbody.WithG(1), nbody.WithTheta(0.5))
//
// See SPEC_FULL.md and DESIGN.md in the repository root for the full
// design rationale.
package octforce
