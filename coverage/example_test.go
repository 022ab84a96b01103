package coverage_test

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/crimenet/coverage"
	"github.com/katalvlaran/crimenet/dataset"
)

// ExampleSelect picks the criminals involved in most cases until 80%
// of all cases are covered.
func ExampleSelect() {
	ds, _ := dataset.Parse(strings.NewReader(`% criminal case
1 10
1 11
1 12
2 12
2 13
3 14
4 14
5 15
`))
	res, err := coverage.Select(ds)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println("selected:", res.Selected)
	fmt.Printf("covered %d of %d cases (%.2f)\n", res.Covered, res.Total, res.Coverage)

	// Output:
	// selected: [1 2 3]
	// covered 5 of 6 cases (0.83)
}
