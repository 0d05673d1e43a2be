// Copyright (C) 2024 The havjson Authors. All Rights Reserved.

package havjson

import (
	"strconv"
	"strings"

	"go4.org/mem"
)

// Token is the type of a lexical token in the restricted JSON grammar.
type Token byte

// Constants defining the valid Token values.
const (
	Invalid Token = iota // invalid token
	EOF                  // end of input
	LBrace               // left brace "{"
	RBrace               // right brace "}"
	LSquare              // left square bracket "["
	RSquare              // right square bracket "]"
	Comma                // comma ","
	Colon                // colon ":"
	Number               // number: optional sign, digits, optional decimal point
	String               // quoted string, content taken verbatim
	True                 // constant: true
	False                // constant: false
	Null                 // constant: null
)

var tokenStr = [...]string{
	Invalid: "invalid token",
	EOF:     "end of input",
	LBrace:  `"{"`,
	RBrace:  `"}"`,
	LSquare: `"["`,
	RSquare: `"]"`,
	Comma:   `","`,
	Colon:   `":"`,
	Number:  "number",
	String:  "string",
	True:    "true",
	False:   "false",
	Null:    "null",
}

func (t Token) String() string {
	v := int(t)
	if v >= len(tokenStr) {
		return tokenStr[Invalid]
	}
	return tokenStr[v]
}

// A Scanner reads lexical tokens from an in-memory input string. Each call
// to Next advances the scanner to the next token, or reports an error. The
// scanner performs no I/O; the caller supplies the complete input up front.
type Scanner struct {
	src  string
	pos  int  // offset of the next unread byte
	last byte // last consumed byte, for internal consistency checks only

	tok  Token
	text string // lexeme of the current token
	num  float64
}

// NewScanner constructs a new lexical scanner that consumes src.
func NewScanner(src string) *Scanner { return &Scanner{src: src} }

// Next consumes and returns the next token of the input, or reports a
// lexical error. Once the input is exhausted, Next returns EOF on this and
// every subsequent call.
func (s *Scanner) Next() (Token, error) {
	s.eatSpace()
	s.tok, s.text, s.num = Invalid, "", 0

	ch, ok := s.bump()
	if !ok {
		s.tok = EOF
		return EOF, nil
	}

	// Handle punctuation.
	if t, ok := selfDelim(ch); ok {
		s.tok, s.text = t, s.src[s.pos-1:s.pos]
		return t, nil
	}

	// Handle constants: null, true, false.
	switch ch {
	case 'n':
		return s.scanLiteral(Null, "null", ErrInvalidNull)
	case 't':
		return s.scanLiteral(True, "true", ErrInvalidTrue)
	case 'f':
		return s.scanLiteral(False, "false", ErrInvalidFalse)
	}

	// Handle string values.
	if ch == '"' {
		return s.scanString()
	}

	// Handle numbers.
	if ch == '-' || isDigit(ch) {
		return s.scanNumber()
	}

	return Invalid, s.failf("%w %q", ErrUnexpectedChar, ch)
}

// Peek reports what Next would return without consuming it. It snapshots the
// read position, runs the ordinary scan, and restores the position. Exactly
// one token of lookahead is supported.
func (s *Scanner) Peek() (Token, error) {
	saved := *s
	tok, err := s.Next()
	*s = saved
	return tok, err
}

// Token returns the type of the current token.
func (s *Scanner) Token() Token { return s.tok }

// Text returns the lexeme of the current token. For String tokens this is
// the verbatim content between the quotes, with no escape interpretation.
// The value is only valid until the next call of Next.
func (s *Scanner) Text() string { return s.text }

// Float64 returns the numeric value of the current token.
// It is zero unless the current token is a Number.
func (s *Scanner) Float64() float64 { return s.num }

// Bool reports whether the current token is the constant true.
func (s *Scanner) Bool() bool { return s.tok == True }

// scanLiteral matches the remainder of the constant want, whose first byte
// the dispatch in Next has already consumed. Any deviation, including end of
// input mid-literal, reports bad.
func (s *Scanner) scanLiteral(tok Token, want string, bad error) (Token, error) {
	start := s.pos - 1
	if s.last != want[0] {
		panic("scanner: literal start out of sync")
	}
	end := start + len(want)
	if end > len(s.src) || !mem.S(s.src[start:end]).Equal(mem.S(want)) {
		return Invalid, s.fail(bad)
	}
	s.pos = end
	s.last = want[len(want)-1]
	s.tok, s.text = tok, want
	return tok, nil
}

func (s *Scanner) scanString() (Token, error) {
	start := s.pos
	for {
		ch, ok := s.bump()
		if !ok {
			return Invalid, s.failf("%w: unterminated string opened by %q", ErrUnexpectedEOF, `"`)
		}
		if ch == '"' {
			s.tok, s.text = String, s.src[start:s.pos-1]
			return String, nil
		}
	}
}

// scanNumber accumulates bytes greedily until whitespace, a closing
// delimiter, or end of input, then decodes the lexeme. The greedy extent
// means a would-be exponent such as "12e3" becomes one lexeme that fails
// validation rather than two tokens.
func (s *Scanner) scanNumber() (Token, error) {
	start := s.pos - 1
	for s.pos < len(s.src) {
		ch := s.src[s.pos]
		if isSpace(ch) || isEndDelim(ch) {
			break
		}
		s.pos++
		s.last = ch
	}
	text := s.src[start:s.pos]
	if !isNumberText(text) {
		return Invalid, s.failf("%w %q", ErrInvalidNumber, text)
	}
	num, err := strconv.ParseFloat(text, 64)
	if err != nil {
		return Invalid, s.failf("%w %q", ErrInvalidNumber, text)
	}
	s.tok, s.text, s.num = Number, text, num
	return Number, nil
}

// bump consumes and returns the next byte of the input.
func (s *Scanner) bump() (byte, bool) {
	if s.pos >= len(s.src) {
		return 0, false
	}
	ch := s.src[s.pos]
	s.pos++
	s.last = ch
	return ch, true
}

// eatSpace discards whitespace before the next token.
func (s *Scanner) eatSpace() {
	for s.pos < len(s.src) && isSpace(s.src[s.pos]) {
		s.pos++
	}
}

func isSpace(ch byte) bool { return ch == ' ' || ch == '\t' || ch == '\n' || ch == '\r' }
func isDigit(ch byte) bool { return '0' <= ch && ch <= '9' }

// isEndDelim reports whether ch terminates a number lexeme.
func isEndDelim(ch byte) bool { return ch == ',' || ch == ']' || ch == '}' }

// isNumberText reports whether text matches the grammar's number shape: an
// optional leading minus, at least one digit, and at most one decimal point.
// Exponent notation is outside the grammar.
func isNumberText(text string) bool {
	rest := strings.TrimPrefix(text, "-")
	if rest == "" {
		return false
	}
	var digits int
	var dot bool
	for i := 0; i < len(rest); i++ {
		switch {
		case isDigit(rest[i]):
			digits++
		case rest[i] == '.' && !dot:
			dot = true
		default:
			return false
		}
	}
	return digits > 0
}

var self = [...]Token{LBrace, RBrace, LSquare, RSquare, Comma, Colon}

func selfDelim(ch byte) (Token, bool) {
	i := strings.IndexByte("{}[],:", ch)
	if i >= 0 {
		return self[i], true
	}
	return Invalid, false
}
