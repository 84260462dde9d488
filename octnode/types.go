package octnode

// Bucket holds the particle indices resident in a leaf node. Indices
// refer into the caller-owned position/mass slices; the bucket never
// copies particle data.
type Bucket struct {
	Indices []int
}

// Node is a cubical cell of the octree: either a leaf (Leaf != nil) or
// internal (Leaf == nil, at least one entry of Children non-nil), never
// both at once — a tagged-variant representation in place of an
// always-present bucket plus a sentinel counter.
//
// Mass and R (RX,RY,RZ) are the aggregate mass and center-of-mass of
// every particle in the subtree rooted here; for a leaf these are the
// sum/average over its residents, for an internal node the
// mass-weighted sum/average over its present children.
type Node struct {
	Width      float64 // edge length of this cubical cell
	CX, CY, CZ float64 // cell center
	Mass       float64
	RX, RY, RZ float64 // aggregate center-of-mass

	Leaf     *Bucket
	Children [8]*Node
}

// New returns an empty leaf node covering a cube of the given edge
// length (width) centered at (cx,cy,cz).
//
// Complexity: O(1) time, O(1) space.
func New(width, cx, cy, cz float64) *Node {
	return &Node{
		Width: width,
		CX:    cx,
		CY:    cy,
		CZ:    cz,
		Leaf:  &Bucket{},
	}
}

// IsLeaf reports whether n is a leaf (bucket present).
func (n *Node) IsLeaf() bool {
	return n.Leaf != nil
}

// IsInternal reports whether n is internal (bucket absent).
func (n *Node) IsInternal() bool {
	return n.Leaf == nil
}

// Occupancy returns the number of particles resident in n's bucket, or
// 0 if n is internal.
func (n *Node) Occupancy() int {
	if n.Leaf == nil {
		return 0
	}

	return len(n.Leaf.Indices)
}

// ChildIndex returns the 3-bit child slot that a point at (px,py,pz)
// belongs to, per the ≥ convention: bit 2 is set iff px >= n.CX, bit 1
// iff py >= n.CY, bit 0 iff pz >= n.CZ.
//
// Complexity: O(1) time, O(1) space.
func (n *Node) ChildIndex(px, py, pz float64) int {
	idx := 0
	if px >= n.CX {
		idx |= 1 << 2
	}
	if py >= n.CY {
		idx |= 1 << 1
	}
	if pz >= n.CZ {
		idx |= 1 << 0
	}

	return idx
}

// childSigns gives the (±1,±1,±1) offset direction for each of the
// eight 3-bit child indices, MSB-first over (x,y,z), matching the ≥
// convention ChildIndex uses: bit set means the child lies in the +
// direction on that axis.
var childSigns = [8][3]float64{
	{-1, -1, -1}, // 000
	{-1, -1, +1}, // 001
	{-1, +1, -1}, // 010
	{-1, +1, +1}, // 011
	{+1, -1, -1}, // 100
	{+1, -1, +1}, // 101
	{+1, +1, -1}, // 110
	{+1, +1, +1}, // 111
}

// MakeChild allocates an empty child at slot i (0..7), attaches it to
// n.Children[i], and returns it. The child's width is half of n's width;
// its center is offset from n's center by ±n.Width/4 on each axis
// according to childSigns[i]. MakeChild is a no-op-free allocator: it
// does not check whether n.Children[i] is already populated, so callers
// must guard against double allocation themselves.
//
// Complexity: O(1) time, O(1) space.
func (n *Node) MakeChild(i int) *Node {
	f1 := 0.25 * n.Width
	sign := childSigns[i]
	child := New(
		0.5*n.Width,
		n.CX+f1*sign[0],
		n.CY+f1*sign[1],
		n.CZ+f1*sign[2],
	)
	n.Children[i] = child

	return child
}
