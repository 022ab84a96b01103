package bfs_test

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/crimenet/bfs"
	"github.com/katalvlaran/crimenet/builder"
	"github.com/katalvlaran/crimenet/dataset"
)

// ExampleBFS finds the shortest chain of shared cases linking two criminals.
func ExampleBFS() {
	// 1 and 2 share case 10, 2 and 3 share case 11, 3 and 4 share case 12
	ds, _ := dataset.Parse(strings.NewReader("1 10\n2 10\n2 11\n3 11\n3 12\n4 12\n"))
	g, _ := builder.BuildGraph(ds)

	res, err := bfs.BFS(g, 1)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	path, _ := res.PathTo(4)
	fmt.Println("order:", res.Order)
	fmt.Println("path 1→4:", path, "hops:", res.Depth[4])

	// Output:
	// order: [1 2 3 4]
	// path 1→4: [1 2 3 4] hops: 3
}

// ExampleComponents splits the network into groups that never interact.
func ExampleComponents() {
	ds, _ := dataset.Parse(strings.NewReader("1 10\n2 10\n3 10\n7 20\n8 20\n9 30\n"))
	g, _ := builder.BuildGraph(ds)

	for _, c := range bfs.Components(g) {
		fmt.Println(c)
	}

	// Output:
	// [1 2 3]
	// [7 8]
	// [9]
}
