// Package octree builds Barnes-Hut octrees over octnode.Node cells and
// evaluates gravitational acceleration against them under a multipole
// acceptance criterion.
//
// Build (serial) and BuildParallel insert particles into a caller-owned
// root node. EvalOne, EvalBatch, and EvalAllParallel descend a built tree
// to approximate the acceleration on one or many targets under a
// multipole acceptance criterion.
package octree
