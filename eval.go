package veccalc

import (
	"io"
	"slices"
	"strings"
)

// Context is a context for evaluating expressions. It is not safe to use a
// Context concurrently.
type Context struct {
	buf   []item
	trace func(Step)
	res   Value
	err   error
	used  bool
}

// Step describes one application of an operator during evaluation.
type Step struct {
	Left   Value
	Op     string
	Right  Value
	Result Value
}

func (s Step) String() string {
	return s.Left.String() + " " + s.Op + " " + s.Right.String() + " = " + s.Result.String()
}

// ContextOption is an option used when creating a context.
type ContextOption interface {
	ctxOption()
}

type traceopt func(Step)

func (traceopt) ctxOption() {}

// Trace calls f with each operation a context performs, in the order it
// performs them. Operations that fail are not reported.
func Trace(f func(Step)) ContextOption {
	return traceopt(f)
}

// NewContext creates a new evaluation context.
func NewContext(opts ...ContextOption) *Context {
	var ctx Context
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		switch opt := opt.(type) {
		case traceopt:
			ctx.trace = opt
		default:
			panic("veccalc: unknown option type")
		}
	}
	return &ctx
}

// Eval evaluates an expression and returns the result. If an error occurs,
// e.g. dividing by zero or adding vectors of different lengths, then the
// result is the zero Value and ctx.Err returns the error.
func (ctx *Context) Eval(e *Expr) Value {
	ctx.used = true
	ctx.buf = append(ctx.buf[:0], e.items...)
	ctx.res, ctx.err = ctx.reduce(e.end)
	clear(ctx.buf)
	if ctx.err != nil {
		ctx.res = Value{}
	}
	return ctx.res
}

// Result returns the result obtained after evaluating an expression. Panics if
// ctx has not been used to evaluate an expression. Returns the zero Value if
// an error occurred during evaluation.
func (ctx *Context) Result() Value {
	if !ctx.used {
		panic("veccalc: Context.Result called before evaluating any expression")
	}
	return ctx.res
}

// Err returns the error that occurred while evaluating the last expression
// with ctx, if any.
func (ctx *Context) Err() error {
	return ctx.err
}

// reduce resolves the groups in ctx.buf innermost first, then reduces what
// remains. end is the position after the input, for reporting empty input.
func (ctx *Context) reduce(end int) (Value, error) {
	for {
		c := slices.IndexFunc(ctx.buf, func(it item) bool { return it.kind == itemClose })
		if c < 0 {
			break
		}
		o := c - 1
		for o >= 0 && ctx.buf[o].kind != itemOpen {
			o--
		}
		if o < 0 {
			// Parse rejects this, but an Expr could have been built elsewhere.
			return Value{}, &BracketError{Col: ctx.buf[c].pos, Right: ctx.buf[c].text, Count: 1}
		}
		// Nothing between o and c is a bracket, so the group reduces
		// directly. The reduction works in place within the group.
		v, err := ctx.operate(ctx.buf[o+1:c], ctx.buf[c])
		if err != nil {
			return Value{}, err
		}
		ctx.buf[o] = item{kind: itemVal, val: v, text: v.String(), pos: ctx.buf[o].pos}
		ctx.buf = slices.Delete(ctx.buf, o+1, c+1)
	}
	return ctx.operate(ctx.buf, item{pos: end})
}

// operate reduces a bracket-free span to a single value by repeatedly applying
// the most binding operator, leftmost first. end is the token following the
// span, for reporting empty spans.
func (ctx *Context) operate(span []item, end item) (Value, error) {
	if len(span) == 0 {
		if end.text == "" {
			return Value{}, &MalformedError{Col: end.pos, Reason: "no expression"}
		}
		return Value{}, &MalformedError{Col: end.pos, Near: end.text, Reason: "empty group"}
	}
	for len(span) > 1 {
		k := mostbinding(span)
		switch {
		case k < 0:
			return Value{}, &MalformedError{Col: span[1].pos, Near: span[1].text, Reason: "missing operator"}
		case k == 0:
			return Value{}, &MalformedError{Col: span[k].pos, Near: span[k].text, Reason: "missing left operand"}
		case k == len(span)-1:
			return Value{}, &MalformedError{Col: span[k].pos, Near: span[k].text, Reason: "missing right operand"}
		}
		v, err := ctx.apply(span[k-1], span[k], span[k+1])
		if err != nil {
			return Value{}, err
		}
		span[k-1] = item{kind: itemVal, val: v, text: v.String(), pos: span[k-1].pos}
		span = slices.Delete(span, k, k+2)
	}
	if span[0].kind != itemVal {
		return Value{}, &MalformedError{Col: span[0].pos, Near: span[0].text, Reason: "missing operands"}
	}
	return span[0].val, nil
}

// mostbinding finds the index of the operator with the lowest precedence
// value, choosing the leftmost among ties. The result is -1 if there are no
// operators.
func mostbinding(span []item) int {
	k := -1
	for i, it := range span {
		if it.kind != itemOp {
			continue
		}
		if k < 0 || it.op.prec < span[k].op.prec {
			k = i
		}
	}
	return k
}

// apply applies an operator to its neighbors.
func (ctx *Context) apply(l, op, r item) (Value, error) {
	p, ok := pair(l, r)
	if !ok {
		return Value{}, &OperandError{Col: op.pos, Op: op.text, Left: l.text, Right: r.text}
	}
	v, err := optable[op.op.op][p](op.text, l.val, r.val)
	if err != nil {
		switch err := err.(type) {
		case *DimensionError:
			err.Col = op.pos
		case *UnsupportedError:
			err.Col = op.pos
		case *ZeroDivisionError:
			err.Col = op.pos
		}
		return Value{}, err
	}
	if ctx.trace != nil {
		ctx.trace(Step{Left: l.val, Op: op.text, Right: r.val, Result: v})
	}
	return v, nil
}

// Eval is a shortcut to parse an expression and return its result.
func Eval(src io.RuneScanner, opts ...ContextOption) (Value, error) {
	ctx := NewContext(opts...)
	a, err := Parse(src)
	if err != nil {
		return Value{}, err
	}
	ctx.Eval(a)
	return ctx.Result(), ctx.Err()
}

// EvalString is a shortcut to parse and evaluate a string expression.
func EvalString(src string, opts ...ContextOption) (Value, error) {
	return Eval(strings.NewReader(src), opts...)
}
