package core_test

import (
	"fmt"

	"github.com/katalvlaran/crimenet/core"
)

// ExampleGraph demonstrates accumulation of shared-case weights.
func ExampleGraph() {
	g := core.NewGraph()
	_ = g.AddVertex(1, 2)
	_ = g.AddVertex(2, 2)

	// criminals 1 and 2 appear together in two cases
	_ = g.AddEdge(1, 2, 1)
	_ = g.AddEdge(1, 2, 1)
	g.Seal()

	w, _ := g.Weight(2, 1)
	fmt.Println("vertices:", g.Vertices())
	fmt.Println("weight:", w)
	fmt.Println("sealed add:", g.AddEdge(1, 2, 1))

	// Output:
	// vertices: [1 2]
	// weight: 2
	// sealed add: core: graph is sealed
}
