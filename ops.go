package veccalc

import (
	"math/big"
	"strconv"
)

// opKind identifies an operator's row in the operation table.
type opKind int8

const (
	opAdd opKind = iota
	opSub
	opMul
	opDiv
	opCross
	opCount
)

// pairKind classifies the operands of an operator.
type pairKind int8

const (
	// pairNumber is two numbers.
	pairNumber pairKind = iota
	// pairVector is two vectors.
	pairVector
	// pairScalar is a number and a vector in either order.
	pairScalar
	pairCount
)

func (k pairKind) String() string {
	switch k {
	case pairNumber:
		return "number"
	case pairVector:
		return "vector"
	case pairScalar:
		return "scalar"
	default:
		return "pairKind(" + strconv.Itoa(int(k)) + ")"
	}
}

// pair classifies two items. The second result is false if either item is not
// an operand.
func pair(a, b item) (pairKind, bool) {
	if a.kind != itemVal || b.kind != itemVal {
		return 0, false
	}
	switch {
	case a.val.kind == KindNumber && b.val.kind == KindNumber:
		return pairNumber, true
	case a.val.kind == KindVector && b.val.kind == KindVector:
		return pairVector, true
	default:
		return pairScalar, true
	}
}

// binfunc computes a binary operation. sym is the operator symbol, used only
// in errors; the caller attaches positions.
type binfunc func(sym string, a, b Value) (Value, error)

// optable holds the behavior of every operator for every kind of operand
// pair. Combinations the algebra leaves undefined are unsupported rather than
// missing.
var optable = [opCount][pairCount]binfunc{
	opAdd: {
		pairNumber: numfunc(addnum),
		pairVector: elementwise(addnum),
		pairScalar: unsupported,
	},
	opSub: {
		pairNumber: numfunc(subnum),
		pairVector: elementwise(subnum),
		pairScalar: unsupported,
	},
	opMul: {
		pairNumber: numfunc(mulnum),
		pairVector: dot,
		pairScalar: scale,
	},
	opDiv: {
		pairNumber: divnumbers,
		pairVector: unsupported,
		pairScalar: divscalar,
	},
	opCross: {
		pairNumber: unsupported,
		pairVector: cross,
		pairScalar: unsupported,
	},
}

// numfunc lifts an arithmetic function to numbers.
func numfunc(f func(a, b Number) Number) binfunc {
	return func(sym string, a, b Value) (Value, error) {
		return NumberValue(f(a.num, b.num)), nil
	}
}

// elementwise lifts an arithmetic function to pairs of vectors of equal
// length.
func elementwise(f func(a, b Number) Number) binfunc {
	return func(sym string, a, b Value) (Value, error) {
		if len(a.vec) != len(b.vec) {
			return Value{}, &DimensionError{Op: sym, Left: len(a.vec), Right: len(b.vec)}
		}
		r := make([]Number, len(a.vec))
		for i := range r {
			r[i] = f(a.vec[i], b.vec[i])
		}
		return Value{kind: KindVector, vec: r}, nil
	}
}

func unsupported(sym string, a, b Value) (Value, error) {
	return Value{}, &UnsupportedError{Op: sym, Left: a.kind, Right: b.kind}
}

// dot computes the dot product of two vectors of equal length.
func dot(sym string, a, b Value) (Value, error) {
	if len(a.vec) != len(b.vec) {
		return Value{}, &DimensionError{Op: sym, Left: len(a.vec), Right: len(b.vec)}
	}
	s := Int(0)
	for i := range a.vec {
		s = addnum(s, mulnum(a.vec[i], b.vec[i]))
	}
	return NumberValue(s), nil
}

// scale multiplies each element of a vector by a number. Either may come
// first.
func scale(sym string, a, b Value) (Value, error) {
	s, v := a, b
	if a.kind == KindVector {
		s, v = b, a
	}
	r := make([]Number, len(v.vec))
	for i, x := range v.vec {
		r[i] = mulnum(s.num, x)
	}
	return Value{kind: KindVector, vec: r}, nil
}

func divnumbers(sym string, a, b Value) (Value, error) {
	if b.num.isZero() {
		return Value{}, &ZeroDivisionError{Dividend: a}
	}
	return NumberValue(quonum(a.num, b.num)), nil
}

// divscalar divides each element of a vector by a number. Only the vector may
// be the dividend.
func divscalar(sym string, a, b Value) (Value, error) {
	if a.kind != KindVector {
		return unsupported(sym, a, b)
	}
	if b.num.isZero() {
		return Value{}, &ZeroDivisionError{Dividend: a}
	}
	r := make([]Number, len(a.vec))
	for i, x := range a.vec {
		r[i] = quonum(x, b.num)
	}
	return Value{kind: KindVector, vec: r}, nil
}

// cross computes the cross product of two 3-vectors.
func cross(sym string, a, b Value) (Value, error) {
	if len(a.vec) != 3 || len(b.vec) != 3 {
		return Value{}, &DimensionError{Op: sym, Left: len(a.vec), Right: len(b.vec), Need: 3}
	}
	x, y := a.vec, b.vec
	r := []Number{
		subnum(mulnum(x[1], y[2]), mulnum(x[2], y[1])),
		subnum(mulnum(x[2], y[0]), mulnum(x[0], y[2])),
		subnum(mulnum(x[0], y[1]), mulnum(x[1], y[0])),
	}
	return Value{kind: KindVector, vec: r}, nil
}

// Integer arithmetic stays exact. Anything involving a float is a float.

func addnum(a, b Number) Number {
	if a.float || b.float {
		return Float(a.Float64() + b.Float64())
	}
	return Number{i: new(big.Int).Add(a.int(), b.int())}
}

func subnum(a, b Number) Number {
	if a.float || b.float {
		return Float(a.Float64() - b.Float64())
	}
	return Number{i: new(big.Int).Sub(a.int(), b.int())}
}

func mulnum(a, b Number) Number {
	if a.float || b.float {
		return Float(a.Float64() * b.Float64())
	}
	return Number{i: new(big.Int).Mul(a.int(), b.int())}
}

// quonum is true division. The result is always a float, even for integers
// that divide evenly. The divisor must be nonzero.
func quonum(a, b Number) Number {
	if a.float || b.float {
		return Float(a.Float64() / b.Float64())
	}
	// Divide at full precision so that large integers don't lose more than
	// the final rounding.
	x := new(big.Float).SetInt(a.int())
	y := new(big.Float).SetInt(b.int())
	f, _ := x.Quo(x, y).Float64()
	return Float(f)
}

// OperandError is an error indicating an operator whose neighbor is not a
// number or vector, e.g. another operator. It implements InputError.
type OperandError struct {
	// Col is the position of the operator.
	Col int
	// Op is the operator.
	Op string
	// Left and Right are the source text of the operator's neighbors.
	Left, Right string
}

func (err *OperandError) Error() string {
	return errpos(err.Col, "invalid operands for "+err.Op+": "+strconv.Quote(err.Left)+" and "+strconv.Quote(err.Right))
}

func (err *OperandError) Pos() int {
	return err.Col
}

// UnsupportedError is an error indicating an operator applied to kinds of
// operands for which it is not defined, e.g. adding a number to a vector. It
// implements InputError.
type UnsupportedError struct {
	// Col is the position of the operator.
	Col int
	// Op is the operator.
	Op string
	// Left and Right are the kinds of the operands.
	Left, Right Kind
}

func (err *UnsupportedError) Error() string {
	return errpos(err.Col, "unsupported operation: "+err.Left.String()+" "+err.Op+" "+err.Right.String())
}

func (err *UnsupportedError) Pos() int {
	return err.Col
}

// DimensionError is an error indicating vectors whose lengths don't suit an
// operator. It implements InputError.
type DimensionError struct {
	// Col is the position of the operator.
	Col int
	// Op is the operator.
	Op string
	// Left and Right are the lengths of the operands.
	Left, Right int
	// Need is the length the operator requires of both operands, or 0 if
	// they only need to be equal.
	Need int
}

func (err *DimensionError) Error() string {
	dims := strconv.Itoa(err.Left) + " and " + strconv.Itoa(err.Right)
	if err.Need == 3 && err.Op == "x" {
		return errpos(err.Col, "cross product defined only in 3D, not "+dims)
	}
	if err.Need > 0 {
		return errpos(err.Col, err.Op+" needs vectors of length "+strconv.Itoa(err.Need)+", not "+dims)
	}
	return errpos(err.Col, "dimension mismatch for "+err.Op+": "+dims)
}

func (err *DimensionError) Pos() int {
	return err.Col
}

// ZeroDivisionError is an error indicating a division of a number or of each
// element of a vector by zero. It implements InputError.
type ZeroDivisionError struct {
	// Col is the position of the operator.
	Col int
	// Dividend is the left operand.
	Dividend Value
}

func (err *ZeroDivisionError) Error() string {
	return errpos(err.Col, "division by zero: "+err.Dividend.String()+" / 0")
}

func (err *ZeroDivisionError) Pos() int {
	return err.Col
}
