package main

import (
	"strings"
	"testing"
)

func TestREPL(t *testing.T) {
	cases := []struct {
		name string
		in   string
		cfg  config
		want string
	}{
		{
			name: "results",
			in:   "1 + 2 * 3\n(1,2,3) + (4,5,6)\n",
			want: "7\n(5, 7, 9)\n",
		},
		{
			name: "errors-continue",
			in:   "5 / 0\n(1,2) x (1,2)\n2 * (1,2)\n",
			want: "error: 3: division by zero: 5 / 0\n" +
				"error: 7: cross product defined only in 3D, not 2 and 2\n" +
				"(2, 4)\n",
		},
		{
			name: "exit",
			in:   "1+1\nplease EXIT now\n2+2\n",
			want: "2\n",
		},
		{
			name: "blank",
			in:   "\n   \n3\n",
			want: "3\n",
		},
		{
			name: "no-newline",
			in:   "4*4",
			want: "16\n",
		},
		{
			name: "trace",
			in:   "(1+2)*3\n",
			cfg:  config{trace: true},
			want: "   1 + 2 = 3\n   3 * 3 = 9\n9\n",
		},
		{
			name: "echo",
			in:   "[1 2]+(3,4)\n",
			cfg:  config{echo: true},
			want: "(1, 2) + (3, 4)\n(4, 6)\n",
		},
		{
			name: "interactive",
			in:   "1+1\n",
			cfg:  config{interactive: true, prompt: "> "},
			want: "> 2\n> \n",
		},
		{
			name: "banner",
			in:   "exit\n",
			cfg:  config{banner: true},
			want: banner,
		},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			var out strings.Builder
			if err := repl(strings.NewReader(c.in), &out, c.cfg); err != nil {
				t.Fatal(err)
			}
			if got := out.String(); got != c.want {
				t.Errorf("want output\n%q\ngot\n%q", c.want, got)
			}
		})
	}
}

func TestEvalArgs(t *testing.T) {
	var out strings.Builder
	if !evalArgs(&out, []string{"1+1", "(1,0,0) x (0,1,0)"}, config{}) {
		t.Error("good arguments failed")
	}
	if got, want := out.String(), "2\n(0, 0, 1)\n"; got != want {
		t.Errorf("want %q, got %q", want, got)
	}
	out.Reset()
	if evalArgs(&out, []string{"1+", "2"}, config{}) {
		t.Error("bad argument succeeded")
	}
	if got, want := out.String(), "error: 2: missing right operand at \"+\"\n2\n"; got != want {
		t.Errorf("want %q, got %q", want, got)
	}
}
