package veccalc

import (
	"io"
	"strings"
	"testing"
)

func TestLex(t *testing.T) {
	cases := []struct {
		src    string
		tokens []lexToken
	}{
		// spaces
		{"", nil},
		{" \t", []lexToken{{text: " ", kind: tokenSpace, pos: 1}, {text: "\t", kind: tokenSpace, pos: 2}}},
		// numbers
		{"0", []lexToken{{text: "0", kind: tokenNum, pos: 1}}},
		{"9876543210", []lexToken{{text: "9876543210", kind: tokenNum, pos: 1}}},
		{"1 0", []lexToken{{text: "1", kind: tokenNum, pos: 1}, {text: " ", kind: tokenSpace, pos: 2}, {text: "0", kind: tokenNum, pos: 3}}},
		{"1.25", []lexToken{{text: "1.25", kind: tokenNum, pos: 1}}},
		{"1.", []lexToken{{text: "1", kind: tokenNum, pos: 1}, {text: ".", kind: tokenOther, pos: 2}}},
		{"1.x", []lexToken{{text: "1", kind: tokenNum, pos: 1}, {text: ".", kind: tokenOther, pos: 2}, {text: "x", kind: tokenOp, pos: 3}}},
		{".5", []lexToken{{text: ".", kind: tokenOther, pos: 1}, {text: "5", kind: tokenNum, pos: 2}}},
		{"1.2.3", []lexToken{{text: "1.2", kind: tokenNum, pos: 1}, {text: ".", kind: tokenOther, pos: 4}, {text: "3", kind: tokenNum, pos: 5}}},
		{"-1", []lexToken{{text: "-", kind: tokenOp, pos: 1}, {text: "1", kind: tokenNum, pos: 2}}},
		// operators
		{"1+2", []lexToken{{text: "1", kind: tokenNum, pos: 1}, {text: "+", kind: tokenOp, pos: 2}, {text: "2", kind: tokenNum, pos: 3}}},
		{"*/x", []lexToken{{text: "*", kind: tokenOp, pos: 1}, {text: "/", kind: tokenOp, pos: 2}, {text: "x", kind: tokenOp, pos: 3}}},
		// brackets
		{"()", []lexToken{{text: "(", kind: tokenOpen, pos: 1}, {text: ")", kind: tokenClose, pos: 2}}},
		{"[]", []lexToken{{text: "[", kind: tokenOpen, pos: 1}, {text: "]", kind: tokenClose, pos: 2}}},
		{"(1,2)", []lexToken{
			{text: "(", kind: tokenOpen, pos: 1},
			{text: "1", kind: tokenNum, pos: 2},
			{text: ",", kind: tokenOther, pos: 3},
			{text: "2", kind: tokenNum, pos: 4},
			{text: ")", kind: tokenClose, pos: 5},
		}},
		// anything else is a single rune
		{"{", []lexToken{{text: "{", kind: tokenOther, pos: 1}}},
		{"ab", []lexToken{{text: "a", kind: tokenOther, pos: 1}, {text: "b", kind: tokenOther, pos: 2}}},
		{"π1", []lexToken{{text: "π", kind: tokenOther, pos: 1}, {text: "1", kind: tokenNum, pos: 2}}},
	}

	for _, c := range cases {
		scan := lex(strings.NewReader(c.src))
		for _, want := range c.tokens {
			got, err := scan.next()
			if err == io.EOF {
				t.Errorf("scanning %q: expected token %v but got EOF", c.src, want)
				continue
			}
			if err != nil {
				t.Errorf("scanning %q: unexpected error %v", c.src, err)
			}
			if got != want {
				t.Errorf("scanning %q: want %v, got %v", c.src, want, got)
			}
		}
		for got, err := scan.next(); err != io.EOF; got, err = scan.next() {
			t.Errorf("scanning %q: extra token %v with error: %v", c.src, got, err)
		}
	}
}

func TestFuse(t *testing.T) {
	cases := []struct {
		name string
		src  string
		want []string
	}{
		{"empty", "", nil},
		{"number", "1", []string{"1"}},
		{"spaces", " 1 + 2 ", []string{"1", "+", "2"}},
		{"commas", "(1,2,3)", []string{"(1,2,3)"}},
		{"spaced", "[1 2 3]", []string{"[1 2 3]"}},
		{"padded", "( 1 , 2 )", []string{"( 1 , 2 )"}},
		{"mixed", "(1.5,2]", []string{"(1.5,2]"}},
		{"one", "(1)", []string{"(", "1", ")"}},
		{"operator", "(1+2)", []string{"(", "1", "+", "2", ")"}},
		{"operator-wins", "(1,2,3-4)", []string{"(", "1", ",", "2", ",", "3", "-", "4", ")"}},
		{"cross-wins", "(1 x 2)", []string{"(", "1", "x", "2", ")"}},
		{"signed", "(1,-2)", []string{"(", "1", ",", "-", "2", ")"}},
		{"two", "(1,2)+(3,4)", []string{"(1,2)", "+", "(3,4)"}},
		{"adjacent", "(1,2)(3,4)", []string{"(1,2)", "(3,4)"}},
		{"grouped", "((1,2)+(3,4))", []string{"(", "(1,2)", "+", "(3,4)", ")"}},
		{"nested", "((1,2),3,4)", []string{"(", "(1,2)", ",", "3", ",", "4", ")"}},
		{"deep", "[[(1,2,3)]]", []string{"[", "[", "(1,2,3)", "]", "]"}},
		{"unclosed", "((1,2)", []string{"(", "(1,2)"}},
		{"stray", "1,2)", []string{"1", ",", "2", ")"}},
		{"stray-then-group", ")(1,2)", []string{")", "(1,2)"}},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			toks, err := lex(strings.NewReader(c.src)).tokens()
			if err != nil {
				t.Fatalf("lexing %q: %v", c.src, err)
			}
			toks = fuse(toks)
			got := make([]string, len(toks))
			for i, tok := range toks {
				got[i] = tok.text
			}
			if len(got) != len(c.want) {
				t.Fatalf("fusing %q: want %q, got %q", c.src, c.want, got)
			}
			for i := range got {
				if got[i] != c.want[i] {
					t.Errorf("fusing %q: want %q, got %q", c.src, c.want, got)
					break
				}
			}
		})
	}
}

func TestFusePos(t *testing.T) {
	toks, err := lex(strings.NewReader("1 + [2 3]")).tokens()
	if err != nil {
		t.Fatal(err)
	}
	toks = fuse(toks)
	if len(toks) != 3 {
		t.Fatalf("wrong tokens: %v", toks)
	}
	want := lexToken{text: "[2 3]", kind: tokenVec, pos: 5}
	if toks[2] != want {
		t.Errorf("want %v, got %v", want, toks[2])
	}
}
