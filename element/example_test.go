package element_test

import (
	"fmt"

	"github.com/libsemigroups/libsemigroups-sub005/element"
)

func ExampleTransf_Product() {
	x := element.Transf{1, 0, 2}
	y := element.Transf{2, 2, 0}
	var out element.Transf
	x.Product(&out, x, y, 0)
	fmt.Println(out)
	// Output: [2 2 0]
}
