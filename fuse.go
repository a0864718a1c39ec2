package veccalc

import "strings"

// fuse collapses bracketed spans that spell vector literals into single
// tokens, then drops whitespace. Spans are examined as their close brackets
// arrive, so inner groups are settled before the groups around them.
func fuse(toks []lexToken) []lexToken {
	out := make([]lexToken, 0, len(toks))
	// opens holds the indices in out of open brackets not yet closed.
	var opens []int
	for _, tok := range toks {
		out = append(out, tok)
		switch tok.kind {
		case tokenOpen:
			opens = append(opens, len(out)-1)
		case tokenClose:
			if len(opens) == 0 {
				// Stray close bracket. Parse reports it.
				continue
			}
			k := opens[len(opens)-1]
			opens = opens[:len(opens)-1]
			if isLiteral(out[k+1 : len(out)-1]) {
				lit := join(out[k:])
				out = append(out[:k], lit)
			}
		}
	}
	// Whitespace has done its job of separating literal elements.
	r := out[:0]
	for _, tok := range out {
		if tok.kind != tokenSpace {
			r = append(r, tok)
		}
	}
	return r
}

// isLiteral reports whether the interior of a bracketed span is a vector
// literal: more than one number, no operators, and nothing nested.
func isLiteral(interior []lexToken) bool {
	n := 0
	for _, tok := range interior {
		switch tok.kind {
		case tokenNum:
			n++
		case tokenOp, tokenOpen, tokenClose, tokenVec:
			return false
		}
	}
	return n > 1
}

// join concatenates a span of tokens into one literal token positioned at the
// first of them.
func join(span []lexToken) lexToken {
	var b strings.Builder
	for _, tok := range span {
		b.WriteString(tok.text)
	}
	return lexToken{text: b.String(), kind: tokenVec, pos: span[0].pos}
}
