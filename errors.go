// Copyright (C) 2024 The havjson Authors. All Rights Reserved.

package havjson

import (
	"errors"
	"fmt"
)

// Sentinel errors reported by the scanner. Errors returned by Next wrap one
// of these values and can be classified with errors.Is.
var (
	ErrInvalidNull    = errors.New("invalid null literal")
	ErrInvalidTrue    = errors.New("invalid true literal")
	ErrInvalidFalse   = errors.New("invalid false literal")
	ErrInvalidNumber  = errors.New("invalid number")
	ErrUnexpectedChar = errors.New("unexpected character")

	// ErrUnexpectedEOF reports that the input ended inside an unfinished
	// construct. The scanner reports it for an unterminated string; the ast
	// parser wraps it for unclosed arrays and objects.
	ErrUnexpectedEOF = errors.New("unexpected end of input")
)

type posError struct {
	pos int
	err error
}

func (p posError) Error() string {
	return fmt.Sprintf("%s (offset %d)", p.err.Error(), p.pos)
}

func (p posError) Unwrap() error { return p.err }

func (s *Scanner) fail(err error) error {
	return posError{pos: s.pos, err: err}
}

func (s *Scanner) failf(msg string, args ...any) error {
	return posError{pos: s.pos, err: fmt.Errorf(msg, args...)}
}
