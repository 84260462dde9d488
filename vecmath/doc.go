// Package vecmath provides the softened inverse-square force primitives
// shared by the brute-force kernel and the octree traversal.
//
// Everything here is a pure, allocation-free function over float64
// triples: squared distance, the from→to displacement/squared-distance
// pair, and the asymmetric force coefficient
//
//	f = G·M / (d²·d + ε),  d = √d²
//
// which bounds the force at short range for ε > 0.
package vecmath
