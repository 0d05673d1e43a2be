// Copyright (C) 2024 The havjson Authors. All Rights Reserved.

// Package haversine computes great-circle distances for the coordinate-pair
// datasets the benchmark harness reads, and defines the typed-access layer
// between a parsed value tree and the computation.
package haversine

import (
	"fmt"
	"math"

	"havjson/ast"
)

// Distance returns the great-circle distance between two points on a sphere
// of the given radius. x0, x1 are longitudes and y0, y1 latitudes, all in
// degrees; the result is in the units of the radius. The computation is
// pure and stateless.
func Distance(x0, y0, x1, y1, radius float64) float64 {
	dphi := radians(x0 - x1)
	t0, t1 := radians(y0), radians(y1)
	dtheta := t1 - t0

	a := sq(math.Sin(dtheta/2)) + math.Cos(t0)*math.Cos(t1)*sq(math.Sin(dphi/2))
	return 2 * radius * math.Asin(math.Sqrt(a))
}

func radians(deg float64) float64 { return deg * math.Pi / 180 }
func sq(x float64) float64        { return x * x }

// A Pair is one coordinate pair: the longitudes (X) and latitudes (Y) of
// two points, in degrees.
type Pair struct {
	X0, Y0, X1, Y1 float64
}

// A Dataset is the benchmark input: coordinate pairs on a sphere, plus the
// precomputed reference average distance.
type Dataset struct {
	Radius  float64
	AvgDist float64
	Pairs   []Pair
}

// Average returns the mean great-circle distance over the pairs of d.
// It is zero for an empty dataset.
func (d *Dataset) Average() float64 {
	if len(d.Pairs) == 0 {
		return 0
	}
	var sum float64
	for _, p := range d.Pairs {
		sum += Distance(p.X0, p.Y0, p.X1, p.Y1, d.Radius)
	}
	return sum / float64(len(d.Pairs))
}

// Value renders d as a value tree in the shape FromValue accepts.
func (d *Dataset) Value() ast.Value {
	pairs := make(ast.Array, len(d.Pairs))
	for i, p := range d.Pairs {
		pairs[i] = ast.Object{
			"x0": ast.Number(p.X0),
			"y0": ast.Number(p.Y0),
			"x1": ast.Number(p.X1),
			"y1": ast.Number(p.Y1),
		}
	}
	return ast.Object{
		"radius":   ast.Number(d.Radius),
		"avg_dist": ast.Number(d.AvgDist),
		"pairs":    pairs,
	}
}

// FromValue extracts a Dataset from a parsed value tree. The top-level
// value must be an object with number members "radius" and "avg_dist" and
// an array member "pairs" whose elements are objects with number members
// x0, y0, x1, y1. Any missing key or wrong kind is reported with the key
// and the kind found.
func FromValue(v ast.Value) (*Dataset, error) {
	root, ok := v.(ast.Object)
	if !ok {
		return nil, fmt.Errorf("top-level value is %s, not object", kindOf(v))
	}

	radius, err := numMember(root, "radius")
	if err != nil {
		return nil, err
	}
	avg, err := numMember(root, "avg_dist")
	if err != nil {
		return nil, err
	}

	pv, ok := root["pairs"]
	if !ok {
		return nil, fmt.Errorf(`key "pairs" not found`)
	}
	arr, ok := pv.(ast.Array)
	if !ok {
		return nil, fmt.Errorf(`key "pairs" is %s, not array`, pv.Kind())
	}

	pairs := make([]Pair, len(arr))
	for i, elt := range arr {
		obj, ok := elt.(ast.Object)
		if !ok {
			return nil, fmt.Errorf("pair %d is %s, not object", i, elt.Kind())
		}
		var p Pair
		for _, f := range []struct {
			key string
			dst *float64
		}{
			{"x0", &p.X0}, {"y0", &p.Y0}, {"x1", &p.X1}, {"y1", &p.Y1},
		} {
			n, err := numMember(obj, f.key)
			if err != nil {
				return nil, fmt.Errorf("pair %d: %w", i, err)
			}
			*f.dst = n
		}
		pairs[i] = p
	}

	return &Dataset{Radius: radius, AvgDist: avg, Pairs: pairs}, nil
}

func numMember(obj ast.Object, key string) (float64, error) {
	v, ok := obj[key]
	if !ok {
		return 0, fmt.Errorf("key %q not found", key)
	}
	n, ok := v.(ast.Number)
	if !ok {
		return 0, fmt.Errorf("key %q is %s, not number", key, v.Kind())
	}
	return float64(n), nil
}

func kindOf(v ast.Value) string {
	if v == nil {
		return "nothing"
	}
	return v.Kind()
}
