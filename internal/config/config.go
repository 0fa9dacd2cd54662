// Package config loads the optional YAML file that tunes a run: balance
// overrides, the maze catalog and the seed.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/leofattal/smoking-crack/internal/maze"
	"github.com/leofattal/smoking-crack/internal/sim"
)

// ErrInvalid is returned for values the simulation cannot run with.
var ErrInvalid = errors.New("config: invalid value")

// Config is the decoded file. Keys missing from the file keep their
// defaults.
type Config struct {
	Seed     int64       `yaml:"seed"`
	TickHz   int         `yaml:"tick_hz"`
	MazeFile string      `yaml:"maze_file"`
	Balance  sim.Balance `yaml:"balance"`

	dir string // directory of the loaded file; relative paths resolve here
}

// Default returns the stock tuning at 60 ticks per second.
func Default() Config {
	return Config{
		Seed:    1,
		TickHz:  60,
		Balance: sim.DefaultBalance(),
	}
}

// Load reads path over the defaults.
func Load(path string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path) // #nosec G304 -- operator-supplied config path
	if err != nil {
		return cfg, fmt.Errorf("config: read %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("config: decode %s: %w", path, err)
	}
	cfg.dir = filepath.Dir(path)
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("config: %s: %w", path, err)
	}
	return cfg, nil
}

// LoadOrDefault loads path, or returns Default when path is empty.
func LoadOrDefault(path string) (Config, error) {
	if path == "" {
		return Default(), nil
	}
	return Load(path)
}

// Validate rejects settings that would stall or break the simulation.
func (c Config) Validate() error {
	b := c.Balance
	switch {
	case c.TickHz <= 0:
		return fmt.Errorf("%w: tick_hz must be positive", ErrInvalid)
	case b.MaxTickMs <= 0:
		return fmt.Errorf("%w: max_tick_ms must be positive", ErrInvalid)
	case b.CollectPhaseMs <= 0 || b.SellPhaseMs <= 0:
		return fmt.Errorf("%w: phase durations must be positive", ErrInvalid)
	case b.HeatMax <= 0:
		return fmt.Errorf("%w: heat_max must be positive", ErrInvalid)
	case b.PlayerSpeed <= 0 || b.AdversarySpeed <= 0:
		return fmt.Errorf("%w: speeds must be positive", ErrInvalid)
	case b.StartingLives <= 0:
		return fmt.Errorf("%w: starting_lives must be positive", ErrInvalid)
	case b.ItemDensity < 0 || b.ItemDensity > 1:
		return fmt.Errorf("%w: item_density must be within [0,1]", ErrInvalid)
	}
	return nil
}

// TickMs is the nominal tick length.
func (c Config) TickMs() float64 { return 1000 / float64(c.TickHz) }

// Catalog returns the maze catalog named by the file, or the built-in one.
func (c Config) Catalog() (*maze.Catalog, error) {
	if c.MazeFile == "" {
		return maze.DefaultCatalog(), nil
	}
	path := c.MazeFile
	if !filepath.IsAbs(path) && c.dir != "" {
		path = filepath.Join(c.dir, path)
	}
	return maze.LoadCatalog(path)
}

// NewSession starts a fresh run with this tuning.
func (c Config) NewSession() *sim.Session {
	return sim.NewSession(sim.NewState(c.Balance), c.Balance, sim.NewRand(c.Seed))
}
