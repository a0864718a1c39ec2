package veccalc_test

import (
	"testing"

	"github.com/zephyrtronium/veccalc"
)

func FuzzParse(f *testing.F) {
	f.Add("1+2")
	f.Add("[1 2 3]")
	f.Add(")(")
	f.Fuzz(func(t *testing.T, s string) {
		e, err := veccalc.ParseString(s)
		if err != nil {
			return
		}
		_ = e.String()
		ctx := veccalc.NewContext()
		if r := ctx.Eval(e); r.Kind() == veccalc.KindNone && ctx.Err() == nil {
			t.Fatalf("%q gave no result and no error", s)
		}
	})
}
