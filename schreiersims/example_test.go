package schreiersims_test

import (
	"fmt"

	"github.com/libsemigroups/libsemigroups-sub005/element"
	"github.com/libsemigroups/libsemigroups-sub005/schreiersims"
)

func ExampleSchreierSims_Size() {
	s := schreiersims.New(3)
	if err := s.AddGenerator(element.Perm{1, 0, 2}); err != nil {
		panic(err)
	}
	if err := s.AddGenerator(element.Perm{1, 2, 0}); err != nil {
		panic(err)
	}
	size, err := s.Size()
	if err != nil {
		panic(err)
	}
	fmt.Println(size)
	// Output: 6
}
