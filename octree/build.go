package octree

import (
	"time"

	"github.com/gravkit/octforce/metrics"
	"github.com/gravkit/octforce/octnode"
	"github.com/gravkit/octforce/vecmath"
	"golang.org/x/sync/errgroup"
)

// Build inserts every particle in positions/masses into root, one at a
// time, in index order. root must be a freshly constructed empty leaf
// (octnode.New); inserting into a partially built tree is undefined.
//
// Each insertion follows one of three branches depending on the state of
// the node it lands on:
//
//   - Leaf, room available: append the particle to the bucket and fold
//     its mass and position into the leaf's running mass and center of
//     mass.
//   - Leaf, at capacity (overflow): finalize the leaf's center of mass
//     from its residents, release the bucket, switch the node to
//     internal, and redistribute every resident into the appropriate
//     child (creating children on demand) before re-attempting the
//     insert that triggered the overflow.
//   - Internal: incrementally fold the new particle into the node's mass
//     and center of mass, then recurse into the appropriate child
//     (creating it on demand).
//
// Complexity: O(N log N) expected time for N particles over a roughly
// balanced tree; for a degenerate (near-coincident) distribution each
// insertion costs the depth of the tree, which grows with how closely
// the particles cluster rather than with log N. O(N) space.
func Build(root *octnode.Node, positions []vecmath.Vec3, masses []float64, opts ...Option) error {
	if root == nil {
		return ErrEmptyTree
	}
	if len(positions) != len(masses) {
		return ErrLengthMismatch
	}
	o := resolve(opts)
	if o.LeafSize < 1 {
		return ErrLeafSizeTooSmall
	}

	start := time.Now()
	for i := range positions {
		insert(root, i, positions, masses, o.LeafSize)
	}
	recordBuildMetrics(o, root, len(positions), time.Since(start))

	return nil
}

// BuildParallel builds the same tree Build would, but partitions
// particles across the root's eight children and inserts each child's
// share concurrently. Every goroutine writes only inside the subtree of
// the single root child it owns, so no locking is required.
//
// When N is small enough that the root would not yet have overflowed into
// children (N <= LeafSize), there is nothing to partition and
// BuildParallel falls back to Build.
func BuildParallel(root *octnode.Node, positions []vecmath.Vec3, masses []float64, opts ...Option) error {
	if root == nil {
		return ErrEmptyTree
	}
	if len(positions) != len(masses) {
		return ErrLengthMismatch
	}
	o := resolve(opts)
	if o.LeafSize < 1 {
		return ErrLeafSizeTooSmall
	}

	n := len(positions)
	threads := o.MaxWorkers
	if threads > 8 {
		threads = 8
	}
	if n <= o.LeafSize || threads <= 1 {
		return Build(root, positions, masses, opts...)
	}

	start := time.Now()

	childID := make([]int, n)
	var present [8]bool
	for i, p := range positions {
		c := root.ChildIndex(p.X, p.Y, p.Z)
		childID[i] = c
		present[c] = true
	}

	root.Leaf = nil
	for c := 0; c < 8; c++ {
		if present[c] && root.Children[c] == nil {
			root.MakeChild(c)
		}
	}

	bins := make([][]int, threads)
	for i, c := range childID {
		b := c % threads
		bins[b] = append(bins[b], i)
	}

	var g errgroup.Group
	for b := 0; b < threads; b++ {
		bin := bins[b]
		if len(bin) == 0 {
			continue
		}
		g.Go(func() error {
			for _, idx := range bin {
				insert(root.Children[childID[idx]], idx, positions, masses, o.LeafSize)
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	reduceRoot(root)
	recordBuildMetrics(o, root, n, time.Since(start))

	return nil
}

// reduceRoot recomputes root's own mass and center of mass as the
// mass-weighted sum over its present children, mirroring the incremental
// fold insert performs one particle at a time.
func reduceRoot(root *octnode.Node) {
	var totalMass, sumX, sumY, sumZ float64
	for _, c := range root.Children {
		if c == nil {
			continue
		}
		totalMass += c.Mass
		sumX += c.Mass * c.RX
		sumY += c.Mass * c.RY
		sumZ += c.Mass * c.RZ
	}
	root.Mass = totalMass
	if totalMass > 0 {
		root.RX = sumX / totalMass
		root.RY = sumY / totalMass
		root.RZ = sumZ / totalMass
	}
}

func insert(n *octnode.Node, idx int, positions []vecmath.Vec3, masses []float64, leafSize int) {
	p := positions[idx]
	m := masses[idx]

	if n.IsLeaf() {
		if n.Occupancy() < leafSize {
			n.Leaf.Indices = append(n.Leaf.Indices, idx)
			leafMass := n.Mass + m
			if leafMass > 0 {
				k1 := m / leafMass
				k2 := n.Mass / leafMass
				n.RX = k1*p.X + k2*n.RX
				n.RY = k1*p.Y + k2*n.RY
				n.RZ = k1*p.Z + k2*n.RZ
			}
			n.Mass = leafMass
			return
		}
		overflow(n, positions, masses, leafSize)
	}

	newMass := n.Mass + m
	if newMass > 0 {
		k1 := m / newMass
		k2 := n.Mass / newMass
		n.RX = k1*p.X + k2*n.RX
		n.RY = k1*p.Y + k2*n.RY
		n.RZ = k1*p.Z + k2*n.RZ
	}
	n.Mass = newMass

	ci := n.ChildIndex(p.X, p.Y, p.Z)
	child := n.Children[ci]
	if child == nil {
		child = n.MakeChild(ci)
	}
	insert(child, idx, positions, masses, leafSize)
}

// overflow finalizes n's center of mass from its current residents, then
// switches n from leaf to internal and redistributes every resident into
// the appropriate child. n.Mass already holds the sum of resident masses
// (accumulated incrementally as each was appended), so only R needs
// computing here.
func overflow(n *octnode.Node, positions []vecmath.Vec3, masses []float64, leafSize int) {
	residents := n.Leaf.Indices

	if n.Mass > 0 {
		var sumX, sumY, sumZ float64
		for _, r := range residents {
			mr := masses[r]
			sumX += mr * positions[r].X
			sumY += mr * positions[r].Y
			sumZ += mr * positions[r].Z
		}
		n.RX = sumX / n.Mass
		n.RY = sumY / n.Mass
		n.RZ = sumZ / n.Mass
	}

	n.Leaf = nil
	for _, r := range residents {
		ci := n.ChildIndex(positions[r].X, positions[r].Y, positions[r].Z)
		child := n.Children[ci]
		if child == nil {
			child = n.MakeChild(ci)
		}
		insert(child, r, positions, masses, leafSize)
	}
}

func recordBuildMetrics(o Options, root *octnode.Node, n int, elapsed time.Duration) {
	o.Metrics.ObserveBuildDuration(elapsed)
	o.Metrics.AddParticlesProcessed(n)
	if metrics.IsNoop(o.Metrics) {
		return
	}
	nodes, leaves := countNodes(root)
	o.Metrics.AddNodesCreated(nodes)
	o.Metrics.AddLeavesCreated(leaves)
}

func countNodes(n *octnode.Node) (nodes, leaves int) {
	if n == nil {
		return 0, 0
	}
	nodes = 1
	if n.IsLeaf() {
		return nodes, 1
	}
	for _, c := range n.Children {
		cn, cl := countNodes(c)
		nodes += cn
		leaves += cl
	}
	return nodes, leaves
}
