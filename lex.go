package veccalc

import (
	"errors"
	"io"
	"strconv"
	"strings"
	"unicode"
)

type lexToken struct {
	text string
	kind tokenKind
	pos  int
}

func (t lexToken) String() string {
	return t.kind.String() + ":" + t.text + "@" + strconv.Itoa(t.pos)
}

type tokenKind int

const (
	tokenNone tokenKind = iota
	// tokenNum is an unsigned integer or decimal.
	tokenNum
	// tokenOp is one of the operators.
	tokenOp
	// tokenOpen is an open bracket, ( or [.
	tokenOpen
	// tokenClose is a close bracket, ) or ].
	tokenClose
	// tokenSpace is a single whitespace rune. The fuser needs these to keep
	// the elements of literals like [1 2 3] apart, then drops them.
	tokenSpace
	// tokenVec is a fused vector literal, brackets included.
	tokenVec
	// tokenOther is any other single rune, e.g. a comma.
	tokenOther
)

func (k tokenKind) String() string {
	switch k {
	case tokenNone:
		return "None"
	case tokenNum:
		return "Num"
	case tokenOp:
		return "Op"
	case tokenOpen:
		return "Open"
	case tokenClose:
		return "Close"
	case tokenSpace:
		return "Space"
	case tokenVec:
		return "Vec"
	case tokenOther:
		return "Other"
	default:
		return "tokenKind(" + strconv.Itoa(int(k)) + ")"
	}
}

// Operators contains the runes which are considered to be operators.
const Operators = "+-*/x"

// OpenBrackets and CloseBrackets contain the runes which group expressions or
// delimit vector literals. Any open bracket may be closed by any close
// bracket.
const (
	OpenBrackets  = "(["
	CloseBrackets = ")]"
)

type lexer struct {
	src  io.RuneScanner
	buf  strings.Builder
	rune int
	p    lexToken
}

func lex(src io.RuneScanner) *lexer {
	return &lexer{src: src}
}

// push unreads a token so that it is the next token returned from next. Panics
// if there is already a pushed token.
func (l *lexer) push(tok lexToken) {
	if l.p.kind != tokenNone {
		panic("veccalc: double push")
	}
	l.p = tok
}

// readRune reads a rune from the src and updates the lexer's position info.
func (l *lexer) readRune() (r rune, err error) {
	r, sz, err := l.src.ReadRune()
	if sz > 0 {
		l.rune++
	}
	return r, err
}

// unreadRune unreads a rune from the src and updates the lexer's position
// info. Panics if unreading returns an error.
func (l *lexer) unreadRune() {
	if err := l.src.UnreadRune(); err != nil {
		panic(err)
	}
	l.rune--
}

// next scans the next token from the input. At the end of the input, the
// result is an empty token with io.EOF.
func (l *lexer) next() (lexToken, error) {
	if l.p.kind != tokenNone {
		tok := l.p
		l.p = lexToken{}
		return tok, nil
	}
	defer l.buf.Reset()
	r, err := l.readRune()
	if err != nil {
		return lexToken{}, err
	}
	tok := lexToken{text: string(r), pos: l.rune}
	switch {
	case '0' <= r && r <= '9':
		l.unreadRune()
		if err := l.scanNum(); err != nil {
			return lexToken{}, err
		}
		tok.text = l.buf.String()
		tok.kind = tokenNum
	case unicode.IsSpace(r):
		tok.kind = tokenSpace
	case strings.ContainsRune(Operators, r):
		tok.kind = tokenOp
	case strings.ContainsRune(OpenBrackets, r):
		tok.kind = tokenOpen
	case strings.ContainsRune(CloseBrackets, r):
		tok.kind = tokenClose
	default:
		tok.kind = tokenOther
	}
	return tok, nil
}

// scanNum scans a run of digits, then a decimal point and another run of
// digits if there is at least one digit after the point. A point that isn't
// followed by a digit becomes its own token.
func (l *lexer) scanNum() error {
	if err := l.scanDigits(); err != nil {
		return err
	}
	r, err := l.readRune()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil
		}
		return err
	}
	if r != '.' {
		l.unreadRune()
		return nil
	}
	dot := lexToken{text: ".", kind: tokenOther, pos: l.rune}
	d, err := l.readRune()
	if err != nil {
		if errors.Is(err, io.EOF) {
			l.push(dot)
			return nil
		}
		return err
	}
	l.unreadRune()
	if d < '0' || '9' < d {
		// Only one rune can be unread, so the point goes back as a token.
		l.push(dot)
		return nil
	}
	l.buf.WriteRune('.')
	return l.scanDigits()
}

func (l *lexer) scanDigits() error {
	for {
		r, err := l.readRune()
		if err != nil {
			if errors.Is(err, io.EOF) {
				return nil
			}
			return err
		}
		if r < '0' || '9' < r {
			l.unreadRune()
			return nil
		}
		l.buf.WriteRune(r)
	}
}

// tokens scans the whole input.
func (l *lexer) tokens() ([]lexToken, error) {
	var toks []lexToken
	for {
		tok, err := l.next()
		if err != nil {
			if errors.Is(err, io.EOF) {
				return toks, nil
			}
			return nil, err
		}
		toks = append(toks, tok)
	}
}
