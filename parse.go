package veccalc

import (
	"io"
	"math/big"
	"regexp"
	"strconv"
	"strings"
)

// Expr = Operand { op Operand }
// Operand = num | vec | ( '(' | '[' ) Expr ( ')' | ']' )
// vec = ( '(' | '[' ) num { sep num } ( ')' | ']' ), with at least two nums
// op = '+' | '-' | '*' | '/' | 'x'

// Expr is a parsed expression. Its brackets are balanced, but it is otherwise
// unchecked until it is evaluated. An Expr is never modified by evaluation.
type Expr struct {
	items []item
	// end is the position just past the last rune of the input.
	end int
}

// item is an element of an expression buffer.
type item struct {
	kind itemKind
	// val is the operand for itemVal.
	val Value
	// op is the operator for itemOp.
	op operator
	// text is the source text, used in errors and String.
	text string
	pos  int
}

type itemKind int8

const (
	itemNone itemKind = iota
	itemVal
	itemOp
	itemOpen
	itemClose
)

// Parse parses an expression so it can be evaluated with a context.
func Parse(src io.RuneScanner) (*Expr, error) {
	scan := lex(src)
	toks, err := scan.tokens()
	if err != nil {
		return nil, err
	}
	toks = fuse(toks)
	e := Expr{
		items: make([]item, 0, len(toks)),
		end:   scan.rune + 1,
	}
	for _, tok := range toks {
		it, err := parseitem(tok)
		if err != nil {
			return nil, err
		}
		e.items = append(e.items, it)
	}
	if err := checkbrackets(e.items); err != nil {
		return nil, err
	}
	return &e, nil
}

// ParseString is a shortcut to parse an expression from a string.
func ParseString(src string) (*Expr, error) {
	return Parse(strings.NewReader(src))
}

// parseitem converts a token to a buffer item.
func parseitem(tok lexToken) (item, error) {
	it := item{text: tok.text, pos: tok.pos}
	switch tok.kind {
	case tokenVec:
		v, err := parsevec(tok)
		if err != nil {
			return item{}, err
		}
		it.kind, it.val = itemVal, v
	case tokenNum:
		n, ok := parsenum(tok.text)
		if !ok {
			return item{}, &NumberError{Col: tok.pos, Text: tok.text}
		}
		it.kind, it.val = itemVal, NumberValue(n)
	case tokenOp:
		it.kind, it.op = itemOp, binop(tok.text)
	case tokenOpen:
		it.kind = itemOpen
	case tokenClose:
		it.kind = itemClose
	default:
		return item{}, &TokenError{Col: tok.pos, Text: tok.text}
	}
	return it, nil
}

// vecelem matches each signed integer or decimal in a vector literal.
var vecelem = regexp.MustCompile(`[-+]?\d*\.\d+|[-+]?\d+`)

func parsevec(tok lexToken) (Value, error) {
	m := vecelem.FindAllString(tok.text, -1)
	if len(m) == 0 {
		return Value{}, &VectorError{Col: tok.pos, Text: tok.text}
	}
	v := make([]Number, len(m))
	for i, s := range m {
		n, ok := parsenum(s)
		if !ok {
			return Value{}, &VectorError{Col: tok.pos, Text: tok.text}
		}
		v[i] = n
	}
	return Value{kind: KindVector, vec: v}, nil
}

// parsenum parses an integer if it can, otherwise a float.
func parsenum(s string) (Number, bool) {
	if i, ok := new(big.Int).SetString(s, 10); ok {
		return Number{i: i}, true
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return Number{}, false
	}
	return Float(f), true
}

// checkbrackets verifies that open and close brackets balance in count and
// that no close bracket comes before all open brackets are closed.
func checkbrackets(items []item) error {
	var opens []item
	var stray []item
	for _, it := range items {
		switch it.kind {
		case itemOpen:
			opens = append(opens, it)
		case itemClose:
			if len(opens) == 0 {
				stray = append(stray, it)
				continue
			}
			opens = opens[:len(opens)-1]
		}
	}
	switch {
	case len(stray) > len(opens):
		return &BracketError{Col: stray[0].pos, Right: stray[0].text, Count: len(stray) - len(opens)}
	case len(opens) > len(stray):
		return &BracketError{Col: opens[0].pos, Left: opens[0].text, Count: len(opens) - len(stray)}
	case len(stray) > 0:
		// Balanced in count, but in the wrong order, like )1(.
		return &BracketError{Col: stray[0].pos, Right: stray[0].text, Count: len(stray)}
	}
	return nil
}

// String creates a string representation of the parsed expression, with
// vector literals in canonical form.
func (e *Expr) String() string {
	var b strings.Builder
	for i, it := range e.items {
		if i > 0 && it.kind != itemClose && e.items[i-1].kind != itemOpen {
			b.WriteByte(' ')
		}
		if it.kind == itemVal {
			b.WriteString(it.val.String())
		} else {
			b.WriteString(it.text)
		}
	}
	return b.String()
}

type operator struct {
	// prec is the precedence value. Lower is more binding, and the most
	// binding operator is applied first.
	prec int8
	// op selects the row of the operation table.
	op opKind
}

// binop gets the operator for a token string. Panics if there is no such
// operator.
func binop(text string) operator {
	switch text {
	case "x":
		return operator{0, opCross}
	case "*":
		return operator{1, opMul}
	case "/":
		return operator{1, opDiv}
	case "+":
		return operator{2, opAdd}
	case "-":
		return operator{2, opSub}
	default:
		panic("veccalc: invalid operator " + strconv.Quote(text))
	}
}
