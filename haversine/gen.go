// Copyright (C) 2024 The havjson Authors. All Rights Reserved.

package haversine

import (
	"math/rand"
)

// Bounds of the coordinate space, in degrees.
const (
	phiMin, phiMax     = -180, 180 // longitude
	thetaMin, thetaMax = -90, 90   // latitude
)

// GenOptions control Generate.
type GenOptions struct {
	Pairs    int     // number of coordinate pairs (required, > 0)
	Clusters int     // number of clusters to sample in; 0 means 1
	Radius   float64 // sphere radius; 0 means 1
	Seed     int64   // random seed; equal options and seed reproduce the dataset
}

// Generate produces a random dataset of coordinate pairs. Points are
// sampled in clusters: each cluster has a uniformly random center, and the
// points of its pairs deviate from the center by at most the cluster's
// share of each coordinate range. Coordinates are clipped to the valid
// ranges. The reference average distance is precomputed over the result.
func Generate(opts GenOptions) *Dataset {
	clusters := opts.Clusters
	if clusters <= 0 {
		clusters = 1
	}
	radius := opts.Radius
	if radius == 0 {
		radius = 1
	}
	rng := rand.New(rand.NewSource(opts.Seed))

	dphi := float64(phiMax-phiMin) / float64(clusters)
	dtheta := float64(thetaMax-thetaMin) / float64(clusters)

	d := &Dataset{Radius: radius, Pairs: make([]Pair, 0, opts.Pairs)}
	for i := 0; i < clusters; i++ {
		phi := uniform(rng, phiMin, phiMax)
		theta := uniform(rng, thetaMin, thetaMax)

		// Spread the requested pair count evenly over the clusters, giving
		// the remainder to the leading clusters.
		n := opts.Pairs / clusters
		if i < opts.Pairs%clusters {
			n++
		}
		for j := 0; j < n; j++ {
			d.Pairs = append(d.Pairs, Pair{
				X0: clip(phi+uniform(rng, -dphi, dphi), phiMin, phiMax),
				Y0: clip(theta+uniform(rng, -dtheta, dtheta), thetaMin, thetaMax),
				X1: clip(phi+uniform(rng, -dphi, dphi), phiMin, phiMax),
				Y1: clip(theta+uniform(rng, -dtheta, dtheta), thetaMin, thetaMax),
			})
		}
	}
	d.AvgDist = d.Average()
	return d
}

func uniform(rng *rand.Rand, lo, hi float64) float64 {
	return lo + rng.Float64()*(hi-lo)
}

func clip(x, lo, hi float64) float64 {
	if x < lo {
		return lo
	}
	if x > hi {
		return hi
	}
	return x
}
