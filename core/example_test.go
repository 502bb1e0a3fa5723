package core_test

import (
	"fmt"

	"github.com/zmalkmus/maxclique/core"
)

// ExampleFromEdges builds a triangle with one isolated vertex and queries
// the basic adjacency surface.
//
//	0───1
//	 \ /     3
//	  2
func ExampleFromEdges() {
	g, err := core.FromEdges(4, [][2]int{{0, 1}, {1, 2}, {0, 2}})
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	fmt.Println("order:", g.Order())
	fmt.Println("size:", g.Size())

	ids, _ := g.NeighborIDs(0)
	fmt.Println("neighbors of 0:", ids)

	deg, _ := g.Degree(3)
	fmt.Println("degree of 3:", deg)

	// Output:
	// order: 4
	// size: 3
	// neighbors of 0: [1 2]
	// degree of 3: 0
}
