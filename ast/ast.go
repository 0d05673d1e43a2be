// Copyright (C) 2024 The havjson Authors. All Rights Reserved.

// Package ast defines the value tree for the restricted JSON subset, and a
// parser that constructs value trees from source text.
package ast

import (
	"fmt"
	"slices"
	"strconv"
	"strings"
)

// A Value is a parsed value: exactly one of Null, Bool, Number, String,
// Array, or Object. A Value tree is immutable once produced and is owned by
// the caller that received it.
type Value interface {
	// Kind returns a label for the kind of the value, for diagnostics.
	Kind() string

	// Equal reports whether the value is structurally equal to other.
	// Object equality does not depend on member order.
	Equal(other Value) bool

	// JSON renders the value as source text. Object keys are emitted in
	// sorted order, since a mapping has no iteration order of its own.
	JSON() string

	isValue()
}

// Null represents the null constant.
type Null struct{}

func (Null) Kind() string { return "null" }
func (Null) JSON() string { return "null" }
func (Null) isValue()     {}

func (Null) Equal(other Value) bool {
	_, ok := other.(Null)
	return ok
}

// A Bool is a Boolean constant, true or false.
type Bool bool

func (Bool) Kind() string   { return "bool" }
func (b Bool) JSON() string { return strconv.FormatBool(bool(b)) }
func (Bool) isValue()       {}

func (b Bool) Equal(other Value) bool {
	o, ok := other.(Bool)
	return ok && o == b
}

// A Number is a numeric value. All numeric literals are stored as
// double-precision values; there is no integer distinction.
type Number float64

func (Number) Kind() string { return "number" }
func (Number) isValue()     {}

// JSON renders n without an exponent, so the output stays inside the
// grammar the parser accepts.
func (n Number) JSON() string { return strconv.FormatFloat(float64(n), 'f', -1, 64) }

func (n Number) Equal(other Value) bool {
	o, ok := other.(Number)
	return ok && o == n
}

// A String is a string value. The content is the raw text between the
// quotes; no escape sequences are interpreted.
type String string

func (String) Kind() string   { return "string" }
func (s String) JSON() string { return `"` + string(s) + `"` }
func (String) isValue()       {}

func (s String) Equal(other Value) bool {
	o, ok := other.(String)
	return ok && o == s
}

// An Array is an ordered sequence of values.
type Array []Value

func (Array) Kind() string { return "array" }
func (Array) isValue()     {}

func (a Array) JSON() string {
	elts := make([]string, len(a))
	for i, v := range a {
		elts[i] = v.JSON()
	}
	return "[" + strings.Join(elts, ",") + "]"
}

func (a Array) Equal(other Value) bool {
	o, ok := other.(Array)
	if !ok || len(o) != len(a) {
		return false
	}
	for i, v := range a {
		if !v.Equal(o[i]) {
			return false
		}
	}
	return true
}

// An Object is a mapping from keys to values. Keys are unique by
// construction; the parser rejects duplicates rather than overwriting.
type Object map[string]Value

func (Object) Kind() string { return "object" }
func (Object) isValue()     {}

func (o Object) JSON() string {
	keys := make([]string, 0, len(o))
	for key := range o {
		keys = append(keys, key)
	}
	slices.Sort(keys)
	mems := make([]string, len(keys))
	for i, key := range keys {
		mems[i] = String(key).JSON() + ":" + o[key].JSON()
	}
	return "{" + strings.Join(mems, ",") + "}"
}

func (o Object) Equal(other Value) bool {
	p, ok := other.(Object)
	if !ok || len(p) != len(o) {
		return false
	}
	for key, v := range o {
		w, ok := p[key]
		if !ok || !v.Equal(w) {
			return false
		}
	}
	return true
}

// Float64 extracts the numeric value of v. It panics if v is not a Number;
// callers that cannot guarantee the kind must type-assert instead.
func Float64(v Value) float64 {
	n, ok := v.(Number)
	if !ok {
		panic(fmt.Sprintf("ast: value is %s, not number", kindOf(v)))
	}
	return float64(n)
}

func kindOf(v Value) string {
	if v == nil {
		return "nothing"
	}
	return v.Kind()
}
