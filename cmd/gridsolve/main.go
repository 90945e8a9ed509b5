// Command gridsolve reads a puzzle grid from a file (or stdin when the file
// is "-") and prints a single integer answer.
//
// Usage:
//
//	gridsolve [-v] regions [-bulk] FILE
//	gridsolve [-v] maze [-tiles] [-config COST.yaml] [-costs STEP,TURN] FILE
//
// regions prints the sum of area × perimeter over all regions, or
// area × sides with -bulk. maze prints the minimum route cost, or the number
// of tiles on any optimal route with -tiles; an unreachable end prints -1.
// -costs overrides the step and turn costs from -config.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/katalvlaran/gridlab/grid"
	"github.com/katalvlaran/gridlab/maze"
	"github.com/katalvlaran/gridlab/region"
)

// noPath is printed when the maze end cannot be reached.
const noPath = -1

var errUsage = errors.New("usage: gridsolve [-v] regions|maze [flags] FILE")

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

// run executes one command and returns the process exit code.
func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	root := flag.NewFlagSet("gridsolve", flag.ContinueOnError)
	root.SetOutput(stderr)
	verbose := root.Bool("v", false, "log search progress to stderr")
	if err := root.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		return 2
	}

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	rest := root.Args()
	if len(rest) == 0 {
		fmt.Fprintln(stderr, errUsage)
		return 2
	}

	var (
		answer int
		err    error
	)
	switch rest[0] {
	case "regions":
		answer, err = runRegions(rest[1:], stdin, stderr, logger)
	case "maze":
		answer, err = runMaze(rest[1:], stdin, stderr, logger)
	default:
		err = fmt.Errorf("%w: unknown command %q", errUsage, rest[0])
	}
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		logger.Error("gridsolve failed", "err", err)
		if errors.Is(err, errUsage) {
			return 2
		}
		return 1
	}

	fmt.Fprintln(stdout, answer)
	return 0
}

func runRegions(args []string, stdin io.Reader, stderr io.Writer, logger *slog.Logger) (int, error) {
	fs := flag.NewFlagSet("regions", flag.ContinueOnError)
	fs.SetOutput(stderr)
	bulk := fs.Bool("bulk", false, "price by number of sides instead of perimeter")
	if err := fs.Parse(args); err != nil {
		return 0, err
	}

	g, err := readGrid(fs.Args(), stdin)
	if err != nil {
		return 0, err
	}
	regions, err := region.Partition(g, region.WithOnRegion(func(r region.Region) {
		logger.Debug("region", "label", string(r.Label), "area", r.Area(), "perimeter", r.Perimeter())
	}))
	if err != nil {
		return 0, err
	}
	logger.Debug("partitioned", "regions", len(regions), "cells", g.Len())

	if *bulk {
		return region.TotalBulkPrice(regions), nil
	}
	return region.TotalPrice(regions), nil
}

func runMaze(args []string, stdin io.Reader, stderr io.Writer, logger *slog.Logger) (int, error) {
	fs := flag.NewFlagSet("maze", flag.ContinueOnError)
	fs.SetOutput(stderr)
	tiles := fs.Bool("tiles", false, "print the number of tiles on any optimal route")
	configPath := fs.String("config", "", "YAML cost model (step_cost, turn_cost, facing, start, end, wall)")
	costs := fs.String("costs", "", "step and turn cost as STEP,TURN")
	if err := fs.Parse(args); err != nil {
		return 0, err
	}

	var opts []maze.Option
	if *configPath != "" {
		cm, err := loadCostModel(*configPath)
		if err != nil {
			return 0, err
		}
		if opts, err = cm.options(); err != nil {
			return 0, err
		}
	}
	if *costs != "" {
		costOpts, err := parseCosts(*costs)
		if err != nil {
			return 0, err
		}
		opts = append(opts, costOpts...)
	}
	expanded := 0
	opts = append(opts,
		maze.WithOnExpand(func(maze.State) { expanded++ }),
		maze.WithOnImprove(func(cost int) { logger.Debug("goal reached", "cost", cost) }),
	)

	g, err := readGrid(fs.Args(), stdin)
	if err != nil {
		return 0, err
	}
	res, err := maze.Search(g, opts...)
	if err != nil {
		return 0, err
	}
	logger.Debug("search finished", "expanded", expanded, "found", res.Found, "routes", res.PathCount())

	switch {
	case !res.Found:
		return noPath, nil
	case *tiles:
		return res.TileCount(), nil
	default:
		return res.Cost, nil
	}
}

// readGrid loads the single FILE argument ("-" for stdin) and parses it.
func readGrid(args []string, stdin io.Reader) (*grid.Grid, error) {
	if len(args) != 1 {
		return nil, fmt.Errorf("%w: expected exactly one FILE", errUsage)
	}

	var (
		data []byte
		err  error
	)
	if args[0] == "-" {
		data, err = io.ReadAll(stdin)
	} else {
		data, err = os.ReadFile(args[0])
	}
	if err != nil {
		return nil, err
	}

	return grid.Parse(string(data))
}
