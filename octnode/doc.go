// Package octnode defines the cubical cell at the heart of the octree:
// a node that is either a leaf (holding a bucket of resident particle
// indices) or internal (holding up to eight child subtrees), never both.
//
// A Node carries its center, edge length (Width), and the aggregate mass
// and center-of-mass (Mass, R) of every particle in its subtree. Child
// indexing follows a fixed 3-bit convention: for a point p, the child
// index is
//
//	(p.X >= c.X)<<2 | (p.Y >= c.Y)<<1 | (p.Z >= c.Z)
//
// so child k's center sits at the parent's center offset by ±Width/4 on
// each axis according to the sign pattern of k's bits, and child k's
// width is half the parent's.
package octnode
