// Copyright (C) 2024 The havjson Authors. All Rights Reserved.

package ast_test

import (
	"testing"

	"havjson/ast"

	"github.com/creachadair/mds/mtest"
)

func TestEqual(t *testing.T) {
	tests := []struct {
		name string
		a, b ast.Value
		want bool
	}{
		{"NullNull", ast.Null{}, ast.Null{}, true},
		{"NullBool", ast.Null{}, ast.Bool(false), false},
		{"BoolSame", ast.Bool(true), ast.Bool(true), true},
		{"BoolDiff", ast.Bool(true), ast.Bool(false), false},
		{"NumberSame", ast.Number(-12.9), ast.Number(-12.9), true},
		{"NumberDiff", ast.Number(1), ast.Number(2), false},
		{"NumberString", ast.Number(1), ast.String("1"), false},
		{"StringSame", ast.String("a b"), ast.String("a b"), true},
		{"StringDiff", ast.String("a"), ast.String("b"), false},

		{"ArrayEmpty", ast.Array{}, ast.Array{}, true},
		{"ArraySame",
			ast.Array{ast.Number(1), ast.Number(2)},
			ast.Array{ast.Number(1), ast.Number(2)}, true},
		{"ArrayOrderMatters",
			ast.Array{ast.Number(1), ast.Number(2)},
			ast.Array{ast.Number(2), ast.Number(1)}, false},
		{"ArrayLength",
			ast.Array{ast.Number(1)},
			ast.Array{ast.Number(1), ast.Number(1)}, false},

		{"ObjectEmpty", ast.Object{}, ast.Object{}, true},
		{"ObjectSame",
			ast.Object{"one": ast.Number(1), "two": ast.Number(2)},
			ast.Object{"two": ast.Number(2), "one": ast.Number(1)}, true},
		{"ObjectValueDiff",
			ast.Object{"one": ast.Number(1)},
			ast.Object{"one": ast.Number(2)}, false},
		{"ObjectKeyDiff",
			ast.Object{"one": ast.Number(1)},
			ast.Object{"uno": ast.Number(1)}, false},
		{"ObjectExtraKey",
			ast.Object{"one": ast.Number(1)},
			ast.Object{"one": ast.Number(1), "two": ast.Number(2)}, false},

		{"Nested",
			ast.Object{"xs": ast.Array{ast.Bool(true), ast.Null{}}},
			ast.Object{"xs": ast.Array{ast.Bool(true), ast.Null{}}}, true},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.a.Equal(tc.b); got != tc.want {
				t.Errorf("Equal(%s, %s): got %v, want %v", tc.a.JSON(), tc.b.JSON(), got, tc.want)
			}
			if got := tc.b.Equal(tc.a); got != tc.want {
				t.Errorf("Equal(%s, %s): got %v, want %v", tc.b.JSON(), tc.a.JSON(), got, tc.want)
			}
		})
	}
}

func TestJSON(t *testing.T) {
	tests := []struct {
		input ast.Value
		want  string
	}{
		{ast.Null{}, "null"},

		{ast.Bool(false), "false"},
		{ast.Bool(true), "true"},

		{ast.String(""), `""`},
		{ast.String("a b"), `"a b"`},

		{ast.Number(0), `0`},
		{ast.Number(12.5), `12.5`},
		{ast.Number(-120), `-120`},
		{ast.Number(-12.9), `-12.9`},
		{ast.Number(0.0000001), `0.0000001`}, // no exponent notation

		{ast.Array{}, `[]`},
		{ast.Array{ast.Bool(false)}, `[false]`},
		{ast.Array{ast.Bool(true), ast.Number(199)}, `[true,199]`},

		{ast.Object{}, `{}`},
		{ast.Object{"xs": ast.Null{}}, `{"xs":null}`},

		// Keys render in sorted order, the mapping itself has none.
		{ast.Object{
			"name": ast.String("Dennis"),
			"age":  ast.Number(37),
		}, `{"age":37,"name":"Dennis"}`},

		{ast.Object{
			"values": ast.Array{ast.Number(5), ast.Number(10), ast.Bool(true)},
			"page":   ast.Object{"count": ast.Number(100)},
		}, `{"page":{"count":100},"values":[5,10,true]}`},
	}
	for _, test := range tests {
		got := test.input.JSON()
		if got != test.want {
			t.Errorf("Input: %+v\nGot:  %s\nWant: %s", test.input, got, test.want)
		}
	}
}

// JSON output must stay inside the grammar the parser accepts.
func TestJSONRoundTrip(t *testing.T) {
	values := []ast.Value{
		ast.Null{},
		ast.Bool(true),
		ast.Number(-0.00239),
		ast.String("free your mind"),
		ast.Array{ast.Number(1), ast.String("two"), ast.Null{}},
		ast.Object{
			"radius":   ast.Number(6372.8),
			"avg_dist": ast.Number(0.002),
			"pairs": ast.Array{
				ast.Object{
					"x0": ast.Number(-12.9), "y0": ast.Number(3),
					"x1": ast.Number(100.25), "y1": ast.Number(-89.125),
				},
			},
		},
	}
	for _, v := range values {
		text := v.JSON()
		got, err := ast.ParseOne(text)
		if err != nil {
			t.Errorf("ParseOne(%#q) failed: %v", text, err)
			continue
		}
		if !got.Equal(v) {
			t.Errorf("Round trip of %#q: got %s", text, got.JSON())
		}
	}
}

func TestFloat64(t *testing.T) {
	if got := ast.Float64(ast.Number(12.5)); got != 12.5 {
		t.Errorf("Float64: got %v, want 12.5", got)
	}

	// Extracting a number from anything else is an API-misuse fault.
	mtest.MustPanic(t, func() { ast.Float64(ast.String("12.5")) })
	mtest.MustPanic(t, func() { ast.Float64(ast.Null{}) })
	mtest.MustPanic(t, func() { ast.Float64(nil) })
}
