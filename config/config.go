// Package config provides configuration loading and access for the
// simulation. Defaults are embedded; a user file merges over them.
package config

import (
	_ "embed"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

//go:embed defaults.yaml
var defaultsYAML []byte

// Config holds all simulation configuration parameters.
type Config struct {
	Screen     ScreenConfig     `yaml:"screen"`
	Simulation SimulationConfig `yaml:"simulation"`
	World      WorldConfig      `yaml:"world"`
	Eye        EyeConfig        `yaml:"eye"`
	Flocking   FlockingConfig   `yaml:"flocking"`
	Telemetry  TelemetryConfig  `yaml:"telemetry"`
	Server     ServerConfig     `yaml:"server"`
}

// ScreenConfig holds viewer window settings.
type ScreenConfig struct {
	Width     int `yaml:"width"`
	Height    int `yaml:"height"`
	TargetFPS int `yaml:"target_fps"`
}

// SimulationConfig holds the per-tick motion limits and the evolution
// parameters.
type SimulationConfig struct {
	SpeedMin          float64 `yaml:"speed_min"`
	SpeedMax          float64 `yaml:"speed_max"`
	SpeedAccel        float64 `yaml:"speed_accel"`        // max speed delta per tick
	RotationAccel     float64 `yaml:"rotation_accel"`     // max rotation delta per tick, radians
	MutationChance    float64 `yaml:"mutation_chance"`    // per-gene probability
	MutationMagnitude float64 `yaml:"mutation_magnitude"` // max perturbation per gene
	GenerationLength  int     `yaml:"generation_length"`  // ticks between evolve events
}

// WorldConfig holds population sizes and world-space constants. The
// world is a unit square with wrap-around edges.
type WorldConfig struct {
	Animals         int     `yaml:"animals"`
	Foods           int     `yaml:"foods"`
	InitialSpeed    float64 `yaml:"initial_speed"`
	CollisionRadius float64 `yaml:"collision_radius"`
}

// EyeConfig holds the sensory geometry shared by all animals.
type EyeConfig struct {
	FovRange float64 `yaml:"fov_range"`
	FovAngle float64 `yaml:"fov_angle"` // radians
	Cells    int     `yaml:"cells"`
}

// FlockingConfig holds the boid force weights.
type FlockingConfig struct {
	CoherenceWeight    float64 `yaml:"coherence_weight"`
	SeparationWeight   float64 `yaml:"separation_weight"`
	AlignmentWeight    float64 `yaml:"alignment_weight"`
	SeparationDistance float64 `yaml:"separation_distance"`
}

// TelemetryConfig holds stats output settings.
type TelemetryConfig struct {
	StatsLog bool `yaml:"stats_log"`
}

// ServerConfig holds the snapshot bridge settings.
type ServerConfig struct {
	Addr          string `yaml:"addr"`
	SnapshotEvery int    `yaml:"snapshot_every"` // ticks between broadcasts
}

// global holds the loaded configuration.
var global *Config

// Init loads configuration from the given path, or uses embedded
// defaults if path is empty. Must be called before Cfg().
func Init(path string) error {
	cfg, err := Load(path)
	if err != nil {
		return err
	}
	global = cfg
	return nil
}

// Cfg returns the global configuration. Panics if Init was not called.
func Cfg() *Config {
	if global == nil {
		panic("config: Cfg() called before Init()")
	}
	return global
}

// Load loads configuration from a YAML file, merging with embedded
// defaults. If path is empty, only embedded defaults are used.
func Load(path string) (*Config, error) {
	cfg := &Config{}
	if err := yaml.Unmarshal(defaultsYAML, cfg); err != nil {
		return nil, fmt.Errorf("parsing embedded defaults: %w", err)
	}

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
		// Unmarshal into the same struct - only overwrites fields
		// present in the file.
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config file: %w", err)
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate rejects parameter combinations the simulation core treats as
// invariant violations, so they surface at load time instead of as
// panics mid-run.
func (c *Config) Validate() error {
	s := c.Simulation
	switch {
	case s.SpeedMin <= 0 || s.SpeedMax <= 0:
		return fmt.Errorf("config: speed bounds must be positive (min=%v max=%v)", s.SpeedMin, s.SpeedMax)
	case s.SpeedMin > s.SpeedMax:
		return fmt.Errorf("config: speed_min %v exceeds speed_max %v", s.SpeedMin, s.SpeedMax)
	case s.SpeedAccel <= 0 || s.RotationAccel <= 0:
		return fmt.Errorf("config: acceleration limits must be positive")
	case s.MutationChance < 0 || s.MutationChance > 1:
		return fmt.Errorf("config: mutation_chance %v outside [0, 1]", s.MutationChance)
	case s.GenerationLength <= 0:
		return fmt.Errorf("config: generation_length must be positive")
	}

	if c.World.Animals <= 0 {
		return fmt.Errorf("config: need at least one animal, got %d", c.World.Animals)
	}
	if c.World.Foods < 0 {
		return fmt.Errorf("config: negative food count %d", c.World.Foods)
	}
	if c.World.CollisionRadius <= 0 {
		return fmt.Errorf("config: collision_radius must be positive")
	}

	e := c.Eye
	if e.FovRange <= 0 || e.FovAngle <= 0 || e.Cells < 1 {
		return fmt.Errorf("config: eye geometry must be positive (range=%v angle=%v cells=%d)",
			e.FovRange, e.FovAngle, e.Cells)
	}

	if c.Server.SnapshotEvery <= 0 {
		return fmt.Errorf("config: snapshot_every must be positive, got %d", c.Server.SnapshotEvery)
	}

	return nil
}

// WriteYAML saves the configuration to a YAML file.
func (c *Config) WriteYAML(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	return nil
}
