package cnf_test

import (
	"fmt"

	"github.com/katalvlaran/cliquegen/cnf"
)

// ExampleReduce shows the 2-clause construction: one vertex per literal,
// one partition per clause, edges between non-complementary cross-clause
// literals only.
func ExampleReduce() {
	f := cnf.Formula{
		{1, 2, 3},   // (x1 ∨ x2 ∨ x3)
		{-1, -2, 4}, // (¬x1 ∨ ¬x2 ∨ x4)
	}

	g, parts, err := cnf.Reduce(f)
	if err != nil {
		fmt.Println("error:", err)

		return
	}

	fmt.Println("vertices:", g.VertexCount)
	fmt.Println("edges:", g.Edges.Len())
	fmt.Println("partitions:", len(parts))
	fmt.Println("partition 0:", parts[0].Sorted())
	// Output:
	// vertices: 6
	// edges: 7
	// partitions: 2
	// partition 0: [0 1 2]
}
