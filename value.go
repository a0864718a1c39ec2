package veccalc

import (
	"math"
	"math/big"
	"strconv"
	"strings"
)

// Number is an integer or a floating-point scalar. Integers have arbitrary
// precision. The zero Number is the integer 0.
type Number struct {
	i     *big.Int
	f     float64
	float bool
}

// Int returns an integer Number.
func Int(x int64) Number {
	return Number{i: big.NewInt(x)}
}

// BigInt returns an integer Number with the value of x.
func BigInt(x *big.Int) Number {
	return Number{i: new(big.Int).Set(x)}
}

// Float returns a floating-point Number.
func Float(x float64) Number {
	return Number{f: x, float: true}
}

// IsInt returns whether n is an integer.
func (n Number) IsInt() bool {
	return !n.float
}

// int returns the integer value of n. It must not be modified.
func (n Number) int() *big.Int {
	if n.i == nil {
		return new(big.Int)
	}
	return n.i
}

// Float64 returns the value of n as a float64.
func (n Number) Float64() float64 {
	if n.float {
		return n.f
	}
	f, _ := new(big.Float).SetInt(n.int()).Float64()
	return f
}

// BigInt returns the value of n and true if n is an integer, or nil and false
// otherwise.
func (n Number) BigInt() (*big.Int, bool) {
	if n.float {
		return nil, false
	}
	return new(big.Int).Set(n.int()), true
}

func (n Number) isZero() bool {
	if n.float {
		return n.f == 0
	}
	return n.int().Sign() == 0
}

// String formats n. Integers are written in decimal. Finite floats always
// show a fractional part or exponent so that they read as floats.
func (n Number) String() string {
	if !n.float {
		return n.int().String()
	}
	s := strconv.FormatFloat(n.f, 'g', -1, 64)
	if !math.IsInf(n.f, 0) && !math.IsNaN(n.f) && !strings.ContainsAny(s, ".e") {
		s += ".0"
	}
	return s
}

// Equal returns whether n and m are the same kind of number with the same
// value.
func (n Number) Equal(m Number) bool {
	if n.float != m.float {
		return false
	}
	if n.float {
		return n.f == m.f
	}
	return n.int().Cmp(m.int()) == 0
}

// Kind is the type of a Value.
type Kind int8

const (
	// KindNone is the kind of the zero Value, which is returned alongside
	// errors.
	KindNone Kind = iota
	// KindNumber is a scalar.
	KindNumber
	// KindVector is a vector of scalars.
	KindVector
)

func (k Kind) String() string {
	switch k {
	case KindNone:
		return "none"
	case KindNumber:
		return "number"
	case KindVector:
		return "vector"
	default:
		return "Kind(" + strconv.Itoa(int(k)) + ")"
	}
}

// Value is the result of an evaluation: either a Number or a Vector. Values
// are immutable.
type Value struct {
	kind Kind
	num  Number
	vec  []Number
}

// NumberValue wraps a Number.
func NumberValue(n Number) Value {
	return Value{kind: KindNumber, num: n}
}

// VectorValue creates a vector from its elements. Panics if there are none.
func VectorValue(elems ...Number) Value {
	if len(elems) == 0 {
		panic("veccalc: empty vector")
	}
	return Value{kind: KindVector, vec: append([]Number(nil), elems...)}
}

// Kind returns the kind of v.
func (v Value) Kind() Kind {
	return v.kind
}

// Number returns v's scalar value. The result is meaningless unless v is a
// KindNumber.
func (v Value) Number() Number {
	return v.num
}

// Vector returns a copy of v's elements, or nil if v is not a vector.
func (v Value) Vector() []Number {
	if v.kind != KindVector {
		return nil
	}
	return append([]Number(nil), v.vec...)
}

// Len returns the dimension of a vector, 1 for a number, and 0 for the zero
// Value.
func (v Value) Len() int {
	switch v.kind {
	case KindNumber:
		return 1
	case KindVector:
		return len(v.vec)
	default:
		return 0
	}
}

// Equal returns whether v and w are the same kind with equal elements.
func (v Value) Equal(w Value) bool {
	if v.kind != w.kind {
		return false
	}
	switch v.kind {
	case KindNumber:
		return v.num.Equal(w.num)
	case KindVector:
		if len(v.vec) != len(w.vec) {
			return false
		}
		for i := range v.vec {
			if !v.vec[i].Equal(w.vec[i]) {
				return false
			}
		}
	}
	return true
}

// String formats a number alone or a vector as a parenthesized list, e.g.
// "(1, 2.5, 3)".
func (v Value) String() string {
	switch v.kind {
	case KindNumber:
		return v.num.String()
	case KindVector:
		var b strings.Builder
		b.WriteByte('(')
		for i, x := range v.vec {
			if i > 0 {
				b.WriteString(", ")
			}
			b.WriteString(x.String())
		}
		b.WriteByte(')')
		return b.String()
	default:
		return "<none>"
	}
}
