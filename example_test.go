// Copyright 2026 Michael Grady.

package comb_test

import (
	"fmt"
	"strings"

	"github.com/mgrady/comb"
)

func Example() {
	type C = comb.SliceCursor[string]
	p := comb.And(
		comb.Eq[C]("the"),
		comb.Or(
			comb.Do(
				comb.Repeat(comb.Eq[C]("big")),
				func(bigs []string) string {
					return fmt.Sprintf("big^%d", len(bigs))
				}),
			comb.Eq[C]("small")),
		comb.Eq[C]("dog"))
	val, err := p.Parse(comb.NewSliceCursor(strings.Fields("the big big big dog")))
	if err != nil {
		panic(err)
	}
	fmt.Println(val)

	// Output: [the big^3 dog]
}

func ExampleOptional() {
	sign := comb.Optional(comb.Eq[comb.SliceCursor[rune]]('-'))
	for _, in := range []string{"-1", "1"} {
		r := sign(comb.Runes(in))
		fmt.Println(r.Value != nil, r.Next.Pos())
	}

	// Output:
	// true 1
	// false 0
}
