// Copyright (C) 2024 The havjson Authors. All Rights Reserved.

// Command havjson generates coordinate-pair datasets and runs the haversine
// benchmark over them, reporting parse and compute timings separately.
package main

import (
	"fmt"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/urfave/cli/v2"

	"havjson/ast"
	"havjson/haversine"
)

var logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()

var generateCommand = &cli.Command{
	Name:  "generate",
	Usage: "generate a random dataset and write it as JSON",
	Flags: []cli.Flag{
		&cli.IntFlag{Name: "pairs", Value: 1000, Usage: "number of coordinate pairs"},
		&cli.IntFlag{Name: "clusters", Value: 1, Usage: "number of clusters to sample in"},
		&cli.Float64Flag{Name: "radius", Value: 1, Usage: "sphere radius"},
		&cli.Int64Flag{Name: "seed", Usage: "random seed (default: current time)"},
		&cli.StringFlag{Name: "output", Value: "pairs.json", Usage: "output file path"},
	},
	Action: runGenerate,
}

var calculateCommand = &cli.Command{
	Name:      "calculate",
	Usage:     "parse a dataset file and compute the average pair distance",
	ArgsUsage: "path",
	Action:    runCalculate,
}

func runGenerate(c *cli.Context) error {
	seed := c.Int64("seed")
	if !c.IsSet("seed") {
		seed = time.Now().UnixNano()
	}
	opts := haversine.GenOptions{
		Pairs:    c.Int("pairs"),
		Clusters: c.Int("clusters"),
		Radius:   c.Float64("radius"),
		Seed:     seed,
	}
	if opts.Pairs <= 0 {
		return cli.Exit("generate: --pairs must be positive", 2)
	}

	start := time.Now()
	d := haversine.Generate(opts)
	genElapsed := time.Since(start)

	output := c.String("output")
	if err := os.WriteFile(output, []byte(d.Value().JSON()), 0644); err != nil {
		return fmt.Errorf("writing dataset: %w", err)
	}

	logger.Info().
		Int("pairs", len(d.Pairs)).
		Int("clusters", opts.Clusters).
		Float64("radius", d.Radius).
		Float64("avg_dist", d.AvgDist).
		Dur("elapsed", genElapsed).
		Str("output", output).
		Msg("dataset generated")
	return nil
}

func runCalculate(c *cli.Context) error {
	path := c.Args().First()
	if path == "" {
		return cli.Exit("calculate: missing input path", 2)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading input: %w", err)
	}

	parseStart := time.Now()
	v, err := ast.ParseOne(string(data))
	if err != nil {
		return fmt.Errorf("parsing input: %w", err)
	}
	parseElapsed := time.Since(parseStart)

	d, err := haversine.FromValue(v)
	if err != nil {
		// The harness contract: a missing key or wrong value kind is fatal.
		logger.Fatal().Err(err).Msg("dataset does not match the expected shape")
	}

	computeStart := time.Now()
	avg := d.Average()
	computeElapsed := time.Since(computeStart)

	throughput := float64(len(d.Pairs)) / computeElapsed.Seconds()
	logger.Info().
		Int("pairs", len(d.Pairs)).
		Float64("avg_dist_read", d.AvgDist).
		Float64("avg_dist_computed", avg).
		Dur("parse", parseElapsed).
		Dur("compute", computeElapsed).
		Float64("haversines_per_sec", throughput).
		Msg("calculation complete")
	return nil
}

func main() {
	app := &cli.App{
		Name:     "havjson",
		Usage:    "haversine benchmark over a restricted-JSON dataset",
		Commands: []*cli.Command{generateCommand, calculateCommand},
	}
	if err := app.Run(os.Args); err != nil {
		logger.Fatal().Err(err).Msg("command failed")
	}
}
