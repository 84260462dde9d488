// Package bruteforce provides the exact O(N²) pairwise gravitational
// kernel: the reference nbody.ComputeAccelerationsBruteForce entry point
// delegates to it directly, and octree's approximation is validated
// against it in tests.
//
// Two entry points are exposed, matching the two conventions present in
// the reference implementation this package is derived from:
//
//   - AccelerationsSymmetric applies Newton's third law across every
//     unordered pair, folding G into each side's mass once; this is the
//     whole-system kernel.
//   - AccelerationOnSingle computes the force on one probe particle due
//     to a slice of others, with no reciprocal bookkeeping; this is the
//     asymmetric convention octree's tree descent also uses.
//
// Both kernels rely on vecmath's softened inverse-square coefficient: a
// positive softening length keeps coincident particles finite, but with
// eps=0 a coincident pair still divides by zero, same as the unsoftened
// physics. AccelerationsSymmetric avoids this for true self-interaction
// structurally (its inner loop never pairs a particle with itself);
// AccelerationOnSingle relies on the caller to exclude the probe from
// others.
package bruteforce
