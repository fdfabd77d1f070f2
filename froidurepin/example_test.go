package froidurepin_test

import (
	"fmt"

	"github.com/libsemigroups/libsemigroups-sub005/element"
	"github.com/libsemigroups/libsemigroups-sub005/froidurepin"
)

func ExampleFroidurePin_Size() {
	gen := element.Transf{1, 2, 0}
	fp := froidurepin.New(gen)
	size, err := fp.Size()
	if err != nil {
		panic(err)
	}
	fmt.Println(size)
	// Output: 3
}
