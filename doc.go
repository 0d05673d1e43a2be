// Copyright (C) 2024 The havjson Authors. All Rights Reserved.

// Package havjson implements a lexical scanner for a restricted subset of
// JSON, used to load coordinate-pair datasets for the haversine benchmark.
//
// The subset differs from standard JSON in two ways: strings carry no escape
// sequences (a backslash is an ordinary character), and numbers have no
// exponent part (an optional leading minus, digits, and at most one decimal
// point). Whitespace between tokens is insignificant.
//
// # Scanning
//
// The Scanner type reads tokens from an in-memory input string. Each call to
// Next consumes one token and returns its type, or reports a lexical error:
//
//	s := havjson.NewScanner(input)
//	for {
//	   tok, err := s.Next()
//	   if err != nil {
//	      log.Fatalf("Scanning failed: %v", err)
//	   } else if tok == havjson.EOF {
//	      break
//	   }
//	   log.Printf("Next token: %v", tok)
//	}
//
// Once the input is exhausted, Next returns EOF on every subsequent call.
// Peek reports what Next would return without consuming it; exactly one token
// of lookahead is supported.
//
// Lexical errors wrap the exported sentinel errors (ErrInvalidNull,
// ErrInvalidNumber, and so on) and carry the byte offset at which scanning
// stopped; use errors.Is to classify them.
//
// # Parsing
//
// The ast subpackage implements a recursive-descent parser over the Scanner
// that produces a Value tree, and the haversine subpackage consumes such
// trees to compute great-circle distances.
package havjson
