package konieczny_test

import (
	"fmt"

	"github.com/libsemigroups/libsemigroups-sub005/element"
	"github.com/libsemigroups/libsemigroups-sub005/konieczny"
)

func ExampleKonieczny_NumberOfDClasses() {
	gen := element.Transf{1, 2, 0}
	k := konieczny.New(gen)
	n, err := k.NumberOfDClasses()
	if err != nil {
		panic(err)
	}
	fmt.Println(n)
	// Output: 1
}
