// Copyright (C) 2024 The havjson Authors. All Rights Reserved.

package ast

import (
	"errors"
	"fmt"

	"havjson"
)

// Sentinel errors reported by the parser for structural failures. Errors
// returned by Parse wrap one of these, or a scanner error for lexical
// failures, and can be classified with errors.Is.
var (
	ErrMissingColon    = errors.New("missing colon after object key")
	ErrTrailingComma   = errors.New("trailing comma")
	ErrExtraData       = errors.New("extra data after value")
	ErrInvalidKey      = errors.New("object key is not a string")
	ErrBadToken        = errors.New("unexpected token at start of value")
	ErrTokenAfterValue = errors.New("unexpected token after value")
	ErrDuplicateKey    = errors.New("duplicate object key")
	ErrTooDeep         = errors.New("nesting depth exceeds limit")
)

// SyntaxError is the concrete type of all errors reported by Parse.
type SyntaxError struct {
	Message string
	err     error
}

// Error satisfies the error interface.
func (e *SyntaxError) Error() string {
	switch {
	case e.err == nil:
		return e.Message
	case e.Message == "":
		return e.err.Error()
	}
	return e.Message + ": " + e.err.Error()
}

// Unwrap supports error wrapping.
func (e *SyntaxError) Unwrap() error { return e.err }

// DefaultMaxDepth is the nesting depth limit applied when ParseOptions does
// not specify one.
const DefaultMaxDepth = 512

// ParseOptions control the behavior of ParseWithOptions.
type ParseOptions struct {
	// MaxDepth bounds the nesting depth of arrays and objects. Zero applies
	// DefaultMaxDepth; a negative value disables the check, leaving deep
	// inputs to exhaust the call stack.
	MaxDepth int
}

// Parse parses input into a Value tree. An empty input (or one containing
// only whitespace) is valid and yields nil with no error, distinct from
// Null. The first error encountered aborts the parse; there is no partial
// result.
func Parse(input string) (Value, error) {
	return ParseWithOptions(input, ParseOptions{})
}

// ParseWithOptions is Parse with explicit options.
func ParseWithOptions(input string, opts ParseOptions) (Value, error) {
	max := opts.MaxDepth
	if max == 0 {
		max = DefaultMaxDepth
	}
	p := &parser{sc: havjson.NewScanner(input), max: max}

	v, err := p.parseValue()
	if err != nil {
		return nil, err
	}
	tok, err := p.next()
	if err != nil {
		return nil, err
	}
	if tok != havjson.EOF {
		return nil, p.failTok(ErrExtraData)
	}
	return v, nil
}

// ParseOne is like Parse, but requires the input to contain exactly one
// value: an empty input is an error.
func ParseOne(input string) (Value, error) {
	v, err := Parse(input)
	if err != nil {
		return nil, err
	}
	if v == nil {
		return nil, &SyntaxError{Message: "empty input"}
	}
	return v, nil
}

// A parser consumes tokens from one scanner and builds a Value tree. It is
// single-use: one parse runs to a value, a "no value" result, or the first
// error, and ends permanently.
type parser struct {
	sc    *havjson.Scanner
	depth int
	max   int
}

// parseValue parses zero or one value. At the end of the input it returns
// nil, nil; callers that cannot accept "no value" check for it.
func (p *parser) parseValue() (Value, error) {
	tok, err := p.next()
	if err != nil {
		return nil, err
	}
	switch tok {
	case havjson.EOF:
		return nil, nil
	case havjson.Null:
		return Null{}, nil
	case havjson.True:
		return Bool(true), nil
	case havjson.False:
		return Bool(false), nil
	case havjson.String:
		return String(p.sc.Text()), nil
	case havjson.Number:
		return Number(p.sc.Float64()), nil
	case havjson.LSquare:
		return p.parseArray()
	case havjson.LBrace:
		return p.parseObject()
	default:
		return nil, p.failTok(ErrBadToken)
	}
}

func (p *parser) parseArray() (Value, error) {
	if err := p.enter(); err != nil {
		return nil, err
	}
	defer p.leave()

	items := Array{}

	// Handle an empty array right away: "[]".
	switch tok, err := p.peek(); {
	case err != nil:
		return nil, err
	case tok == havjson.RSquare:
		p.mustNext(havjson.RSquare)
		return items, nil
	case tok == havjson.EOF:
		return nil, p.failEOF(havjson.LSquare)
	}

	for {
		// The peek above, and the one after each comma, exclude EOF here,
		// so v cannot be the "no value" result.
		v, err := p.parseValue()
		if err != nil {
			return nil, err
		}
		items = append(items, v)

		// After a value we must see either "," (more) or "]" (end).
		tok, err := p.next()
		if err != nil {
			return nil, err
		}
		switch tok {
		case havjson.Comma:
			// Disallow a trailing comma: ",]".
			switch nt, err := p.peek(); {
			case err != nil:
				return nil, err
			case nt == havjson.RSquare:
				return nil, &SyntaxError{err: ErrTrailingComma}
			case nt == havjson.EOF:
				return nil, p.failEOF(havjson.LSquare)
			}
		case havjson.RSquare:
			return items, nil
		case havjson.EOF:
			return nil, p.failEOF(havjson.LSquare)
		default:
			return nil, p.failTok(ErrTokenAfterValue)
		}
	}
}

func (p *parser) parseObject() (Value, error) {
	if err := p.enter(); err != nil {
		return nil, err
	}
	defer p.leave()

	members := Object{}

	// Handle an empty object right away: "{}".
	switch tok, err := p.peek(); {
	case err != nil:
		return nil, err
	case tok == havjson.RBrace:
		p.mustNext(havjson.RBrace)
		return members, nil
	case tok == havjson.EOF:
		return nil, p.failEOF(havjson.LBrace)
	}

	for {
		// The key must be a string.
		kv, err := p.parseValue()
		if err != nil {
			return nil, err
		}
		if kv == nil {
			return nil, p.failEOF(havjson.LBrace)
		}
		key, ok := kv.(String)
		if !ok {
			return nil, &SyntaxError{err: fmt.Errorf("%w: %s", ErrInvalidKey, kv.JSON())}
		}

		// A colon follows the key.
		tok, err := p.next()
		if err != nil {
			return nil, err
		}
		switch tok {
		case havjson.Colon:
		case havjson.EOF:
			return nil, p.failEOF(havjson.LBrace)
		default:
			return nil, p.failTok(ErrMissingColon)
		}

		v, err := p.parseValue()
		if err != nil {
			return nil, err
		}
		if v == nil {
			return nil, p.failEOF(havjson.LBrace)
		}

		// Reject a duplicate key rather than overwriting the first value.
		if _, ok := members[string(key)]; ok {
			return nil, &SyntaxError{err: fmt.Errorf("%w %q", ErrDuplicateKey, string(key))}
		}
		members[string(key)] = v

		// After a member, require "," or "}".
		tok, err = p.next()
		if err != nil {
			return nil, err
		}
		switch tok {
		case havjson.Comma:
			// Disallow a trailing comma: ",}".
			switch nt, err := p.peek(); {
			case err != nil:
				return nil, err
			case nt == havjson.RBrace:
				return nil, &SyntaxError{err: ErrTrailingComma}
			case nt == havjson.EOF:
				return nil, p.failEOF(havjson.LBrace)
			}
		case havjson.RBrace:
			return members, nil
		case havjson.EOF:
			return nil, p.failEOF(havjson.LBrace)
		default:
			return nil, p.failTok(ErrTokenAfterValue)
		}
	}
}

// next fetches a token, wrapping any lexical error in a SyntaxError.
func (p *parser) next() (havjson.Token, error) {
	tok, err := p.sc.Next()
	if err != nil {
		return havjson.Invalid, &SyntaxError{Message: "lexical error", err: err}
	}
	return tok, nil
}

// peek inspects the next token without consuming it.
func (p *parser) peek() (havjson.Token, error) {
	tok, err := p.sc.Peek()
	if err != nil {
		return havjson.Invalid, &SyntaxError{Message: "lexical error", err: err}
	}
	return tok, nil
}

// mustNext consumes a token the caller has already seen via peek.
func (p *parser) mustNext(want havjson.Token) {
	tok, err := p.sc.Next()
	if err != nil || tok != want {
		panic(fmt.Sprintf("parser: lookahead out of sync: got %v, want %v", tok, want))
	}
}

func (p *parser) enter() error {
	p.depth++
	if p.max >= 0 && p.depth > p.max {
		return &SyntaxError{err: fmt.Errorf("%w (%d)", ErrTooDeep, p.max)}
	}
	return nil
}

func (p *parser) leave() { p.depth-- }

// failTok reports sentinel against the current token.
func (p *parser) failTok(sentinel error) error {
	return &SyntaxError{err: fmt.Errorf("%w: %s", sentinel, p.describe())}
}

// failEOF reports that the input ended while open was unmatched.
func (p *parser) failEOF(open havjson.Token) error {
	return &SyntaxError{err: fmt.Errorf("%w: unclosed %v", havjson.ErrUnexpectedEOF, open)}
}

// describe names the current token for an error message, including the
// payload of string and number tokens.
func (p *parser) describe() string {
	switch tok := p.sc.Token(); tok {
	case havjson.String:
		return fmt.Sprintf("string %q", p.sc.Text())
	case havjson.Number:
		return fmt.Sprintf("number %v", p.sc.Float64())
	default:
		return tok.String()
	}
}
