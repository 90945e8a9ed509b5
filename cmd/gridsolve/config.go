package main

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"unicode/utf8"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/gridlab/maze"
	"github.com/katalvlaran/gridlab/numparse"
	"github.com/katalvlaran/gridlab/point"
)

// ErrBadConfig indicates a cost-model file that cannot be applied.
var ErrBadConfig = errors.New("gridsolve: invalid cost model")

// costModel is the YAML form of the maze cost model. Zero values keep the
// library defaults.
type costModel struct {
	StepCost *int   `yaml:"step_cost"`
	TurnCost *int   `yaml:"turn_cost"`
	Facing   string `yaml:"facing"`
	Start    string `yaml:"start"`
	End      string `yaml:"end"`
	Wall     string `yaml:"wall"`
}

var facings = map[string]point.Point{
	"north": point.North,
	"east":  point.East,
	"south": point.South,
	"west":  point.West,
}

// loadCostModel reads and decodes a YAML cost model. Unknown keys are rejected.
func loadCostModel(path string) (costModel, error) {
	var cm costModel
	f, err := os.Open(path)
	if err != nil {
		return cm, err
	}
	defer f.Close()

	dec := yaml.NewDecoder(f)
	dec.KnownFields(true)
	if err = dec.Decode(&cm); err != nil {
		return cm, fmt.Errorf("%w: %s: %v", ErrBadConfig, path, err)
	}

	return cm, nil
}

// options converts the model into maze options. Range checks on costs are
// left to the maze package so the CLI reports the same sentinels.
func (cm costModel) options() ([]maze.Option, error) {
	var opts []maze.Option
	if cm.StepCost != nil {
		opts = append(opts, maze.WithStepCost(*cm.StepCost))
	}
	if cm.TurnCost != nil {
		opts = append(opts, maze.WithTurnCost(*cm.TurnCost))
	}
	if cm.Facing != "" {
		dir, ok := facings[strings.ToLower(cm.Facing)]
		if !ok {
			return nil, fmt.Errorf("%w: facing %q", ErrBadConfig, cm.Facing)
		}
		opts = append(opts, maze.WithFacing(dir))
	}

	def := maze.DefaultOptions()
	start, err := marker("start", cm.Start, def.Start)
	if err != nil {
		return nil, err
	}
	end, err := marker("end", cm.End, def.End)
	if err != nil {
		return nil, err
	}
	wall, err := marker("wall", cm.Wall, def.Wall)
	if err != nil {
		return nil, err
	}
	opts = append(opts, maze.WithMarkers(start, end, wall))

	return opts, nil
}

// marker decodes a single-rune label, falling back to def when empty.
func marker(name, s string, def rune) (rune, error) {
	if s == "" {
		return def, nil
	}
	if utf8.RuneCountInString(s) != 1 {
		return 0, fmt.Errorf("%w: %s marker must be one character, got %q", ErrBadConfig, name, s)
	}
	r, _ := utf8.DecodeRuneInString(s)

	return r, nil
}

// parseCosts decodes a "STEP,TURN" pair given on the command line.
func parseCosts(s string) ([]maze.Option, error) {
	costs, err := numparse.Fields[int](s, ",")
	if err != nil {
		return nil, fmt.Errorf("%w: -costs %q: %w", errUsage, s, err)
	}
	if len(costs) != 2 {
		return nil, fmt.Errorf("%w: -costs wants STEP,TURN, got %q", errUsage, s)
	}

	return []maze.Option{maze.WithStepCost(costs[0]), maze.WithTurnCost(costs[1])}, nil
}
