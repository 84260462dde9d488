package octnode_test

import (
	"fmt"

	"github.com/gravkit/octforce/octnode"
)

// ExampleNode_MakeChild shows how a root cell subdivides into its
// eight children.
func ExampleNode_MakeChild() {
	root := octnode.New(4, 0, 0, 0)
	child := root.MakeChild(root.ChildIndex(1, 1, 1))
	fmt.Printf("child width=%.1f center=(%.1f,%.1f,%.1f)\n", child.Width, child.CX, child.CY, child.CZ)
	// Output:
	// child width=2.0 center=(1.0,1.0,1.0)
}
