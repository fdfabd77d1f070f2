package knuthbendix_test

import (
	"fmt"

	"github.com/libsemigroups/libsemigroups-sub005/knuthbendix"
	"github.com/libsemigroups/libsemigroups-sub005/present"
)

func ExampleKnuthBendix_Run() {
	p := &present.Presentation{AlphabetSize: 1}
	p.AddRelation(present.Word{0, 0}, present.Word{0})

	kb := knuthbendix.New(p)
	if err := kb.Run(); err != nil {
		panic(err)
	}
	fmt.Println(kb.Confluent(), kb.NumberOfActiveRules())
	// Output: true 1
}
