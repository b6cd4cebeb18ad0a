package astar

import (
	"fmt"
	"time"

	"gopkg.in/yaml.v3"
)

// Config is a declarative snapshot of an Engine's movement configuration,
// suitable for decoding from a host application's own YAML configuration
// (gopkg.in/yaml.v3, matching itohio-EasyRobot's x/marshaller/yaml
// wrapper). The engine itself never touches a file, socket, or environment
// variable — LoadConfig only decodes bytes the caller already has.
type Config struct {
	DX              [numDirs]int32  `yaml:"dx"`
	DY              [numDirs]int32  `yaml:"dy"`
	MoveCost        [numDirs]uint32 `yaml:"move_cost"`
	SteeringPenalty uint32          `yaml:"steering_penalty"`
	HeuristicFactor uint32          `yaml:"heuristic_factor"`
	MaxCost         uint32          `yaml:"max_cost"`
	TimeoutUsecs    int64           `yaml:"timeout_usecs"`
	MovementMode    string          `yaml:"movement_mode"` // "cardinal" or "eight_way"
	Heuristic       string          `yaml:"heuristic"`     // one of SupportedHeuristics
}

// DefaultConfig returns the configuration New applies before any Option is
// processed: default dx/dy table, cardinal cost 10 / diagonal cost 14, no
// steering penalty, heuristic factor 9, no cost cap, no timeout, cardinal
// movement, Manhattan heuristic.
func DefaultConfig() Config {
	c := Config{
		DX:              defaultDX,
		DY:              defaultDY,
		HeuristicFactor: defaultHeuristicFactor,
		MovementMode:    "cardinal",
		Heuristic:       "manhattan",
	}
	for d := 0; d < numDirs; d++ {
		if Direction(d).IsDiagonal() {
			c.MoveCost[d] = defaultDiagonalCost
		} else {
			c.MoveCost[d] = defaultCardinalCost
		}
	}
	return c
}

// Presets holds named configurations a host application can select by
// name, e.g. from its own CLI flag or settings file.
var Presets = map[string]Config{
	"default":        DefaultConfig(),
	"smooth-8way":    smooth8Way(),
	"cheap-cardinal": cheapCardinal(),
}

func smooth8Way() Config {
	c := DefaultConfig()
	c.MovementMode = "eight_way"
	c.Heuristic = "octile"
	c.SteeringPenalty = 2
	return c
}

func cheapCardinal() Config {
	c := DefaultConfig()
	for d := 0; d < numDirs; d++ {
		c.MoveCost[d] = defaultCardinalCost
	}
	c.HeuristicFactor = defaultCardinalCost
	return c
}

// LoadConfig decodes a YAML document into a Config.
func LoadConfig(data []byte) (Config, error) {
	var c Config
	if err := yaml.Unmarshal(data, &c); err != nil {
		return Config{}, fmt.Errorf("astar: decoding config: %w", err)
	}
	return c, nil
}

// Options converts the Config into Engine constructor Options. MovementMode
// and Heuristic are resolved by name; an unrecognised MovementMode is
// treated as Cardinal, and an unrecognised Heuristic falls back to
// Manhattan.
func (c Config) Options() []Option {
	mode := Cardinal
	if c.MovementMode == "eight_way" {
		mode = EightWay
	}
	heuristic, ok := HeuristicByName(c.Heuristic)
	if !ok {
		heuristic = Manhattan
	}
	return []Option{
		WithMovementMode(mode),
		WithHeuristic(heuristic),
		func(e *Engine) {
			e.dx, e.dy = c.DX, c.DY
			e.moveCost = c.MoveCost
			e.steeringPenalty = c.SteeringPenalty
			e.heuristicFactor = c.HeuristicFactor
			e.maxCost = c.MaxCost
			e.timeout = time.Duration(c.TimeoutUsecs) * time.Microsecond
			e.mustReset = true
		},
	}
}
