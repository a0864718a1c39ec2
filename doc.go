// Package veccalc implements a calculator for numbers and small vectors.
//
// Expressions are written in ordinary infix notation. Numbers are integers or
// decimals; vectors are written as a bracketed list of at least two numbers
// separated by commas or spaces, e.g. "(1, 2, 3)" or "[1 2 3]". A bracketed
// span that contains an operator is a grouping instead, so "(1+2)" is 3.
//
// The operators are +, -, * (product, dot product, or scaling), / and x
// (cross product). x binds tightest, then * and /, then + and -. Operators of
// equal priority associate to the left.
package veccalc
