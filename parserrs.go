package veccalc

import "strconv"

// TokenError is an error indicating input that is not a number, vector,
// operator, or bracket. It implements InputError.
type TokenError struct {
	// Col is the position of the token.
	Col int
	// Text is the token that was not understood.
	Text string
}

func (err *TokenError) Error() string {
	return errpos(err.Col, "unrecognized token "+strconv.Quote(err.Text))
}

func (err *TokenError) Pos() int {
	return err.Col
}

// NumberError is an error indicating a number token with no integer or
// floating-point value. It implements InputError.
type NumberError struct {
	// Col is the position of the number.
	Col int
	// Text is the number token.
	Text string
}

func (err *NumberError) Error() string {
	return errpos(err.Col, "invalid number "+strconv.Quote(err.Text))
}

func (err *NumberError) Pos() int {
	return err.Col
}

// VectorError is an error indicating a vector literal with no elements. It
// implements InputError.
type VectorError struct {
	// Col is the position of the literal's open bracket.
	Col int
	// Text is the whole literal.
	Text string
}

func (err *VectorError) Error() string {
	return errpos(err.Col, "invalid vector "+strconv.Quote(err.Text))
}

func (err *VectorError) Pos() int {
	return err.Col
}

// BracketError is an error indicating unbalanced brackets in the input. It
// implements InputError.
type BracketError struct {
	// Col is the position of the first bracket without a partner.
	Col int
	// Left is the unclosed open bracket, or empty if there are too many close
	// brackets.
	Left string
	// Right is the unmatched close bracket, or empty if there are too many
	// open brackets.
	Right string
	// Count is the number of brackets without partners.
	Count int
}

func (err *BracketError) Error() string {
	if err.Left == "" {
		return errpos(err.Col, "close bracket "+err.Right+" with no open bracket"+extra(err.Count))
	}
	return errpos(err.Col, "open bracket "+err.Left+" with no close bracket"+extra(err.Count))
}

func (err *BracketError) Pos() int {
	return err.Col
}

// extra describes the brackets beyond the first one reported.
func extra(count int) string {
	switch count {
	case 0, 1:
		return ""
	case 2:
		return " (and 1 more)"
	default:
		return " (and " + strconv.Itoa(count-1) + " more)"
	}
}

// MalformedError is an error indicating an expression that doesn't alternate
// between operands and operators, e.g. an operator with no right operand or
// an empty group. It implements InputError.
type MalformedError struct {
	// Col is the position of the token where the problem was found.
	Col int
	// Near is that token, or empty if the expression or group is empty.
	Near string
	// Reason describes the problem.
	Reason string
}

func (err *MalformedError) Error() string {
	if err.Near == "" {
		return errpos(err.Col, err.Reason)
	}
	return errpos(err.Col, err.Reason+" at "+strconv.Quote(err.Near))
}

func (err *MalformedError) Pos() int {
	return err.Col
}

// errpos is a shortcut to create an error message with a position.
func errpos(pos int, msg string) string {
	return strconv.Itoa(pos) + ": " + msg
}

// InputError is an error with position information. Every error resulting from
// invalid input implements InputError.
type InputError interface {
	error
	// Pos returns the position of the error as the number of runes up to and
	// including the start of the token that caused the error.
	Pos() int
}

var (
	_ InputError = (*TokenError)(nil)
	_ InputError = (*NumberError)(nil)
	_ InputError = (*VectorError)(nil)
	_ InputError = (*BracketError)(nil)
	_ InputError = (*MalformedError)(nil)
	_ InputError = (*OperandError)(nil)
	_ InputError = (*UnsupportedError)(nil)
	_ InputError = (*DimensionError)(nil)
	_ InputError = (*ZeroDivisionError)(nil)
)
