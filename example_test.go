package veccalc_test

import (
	"fmt"

	"github.com/zephyrtronium/veccalc"
)

func ExampleEvalString() {
	for _, src := range []string{
		"1 + 2 * 3",
		"(1,2,3) + [4 5 6]",
		"(1,0,0) x (0,1,0)",
		"(1,2,3) * (4,5,6)",
		"(1,2) / 0",
	} {
		r, err := veccalc.EvalString(src)
		if err != nil {
			fmt.Println(err)
			continue
		}
		fmt.Println(r)
	}

	// Output:
	// 7
	// (5, 7, 9)
	// (0, 0, 1)
	// 32
	// 7: division by zero: (1, 2) / 0
}

func ExampleTrace() {
	ctx := veccalc.NewContext(veccalc.Trace(func(s veccalc.Step) { fmt.Println(s) }))
	e, _ := veccalc.ParseString("2 * (1,2,3) + (1,0,0) x (0,1,0)")
	fmt.Println(ctx.Eval(e))

	// Output:
	// (1, 0, 0) x (0, 1, 0) = (0, 0, 1)
	// 2 * (1, 2, 3) = (2, 4, 6)
	// (2, 4, 6) + (0, 0, 1) = (2, 4, 7)
	// (2, 4, 7)
}
