package digraph_test

import (
	"fmt"

	"github.com/libsemigroups/libsemigroups-sub005/digraph"
)

func ExampleWordGraph_SCC() {
	g := digraph.New(3, 1)
	g.SetTarget(0, 0, 1)
	g.SetTarget(1, 0, 2)
	g.SetTarget(2, 0, 0)
	fmt.Println(g.IsAcyclic(), g.NumberOfSCC())
	// Output: false 1
}
