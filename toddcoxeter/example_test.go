package toddcoxeter_test

import (
	"fmt"

	"github.com/libsemigroups/libsemigroups-sub005/present"
	"github.com/libsemigroups/libsemigroups-sub005/toddcoxeter"
)

func ExampleToddCoxeter_NumberOfClasses() {
	p := &present.Presentation{AlphabetSize: 1, ContainsEmptyWord: true}
	p.AddRelation(present.Word{0, 0, 0}, present.Word{})

	tc := toddcoxeter.New(p)
	n, err := tc.NumberOfClasses()
	if err != nil {
		panic(err)
	}
	fmt.Println(n)
	// Output: 3
}
