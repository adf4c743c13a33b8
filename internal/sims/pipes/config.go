package pipes

import "strconv"

// Config controls the pipe map dimensions and solver pacing.
type Config struct {
	Rows int
	Cols int

	Seed int64

	// StepsPerTick is the number of solver steps run per Step call.
	StepsPerTick int
	// RestartOnContradiction starts a fresh attempt with a derived seed
	// instead of stopping when the map contradicts.
	RestartOnContradiction bool

	// Tileset is a YAML tile set path; empty selects the embedded pipes.
	Tileset string
}

// DefaultConfig returns the standard configuration.
func DefaultConfig() Config {
	return Config{
		Rows:         64,
		Cols:         64,
		Seed:         42,
		StepsPerTick: 1,
	}
}

// FromMap populates the config from a string map (flag-style key/value pairs).
func FromMap(cfg map[string]string) Config {
	c := DefaultConfig()
	if cfg == nil {
		return c
	}
	if v, ok := cfg["rows"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Rows = parsed
		}
	}
	if v, ok := cfg["cols"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Cols = parsed
		}
	}
	if v, ok := cfg["seed"]; ok {
		if parsed, err := strconv.ParseInt(v, 10, 64); err == nil {
			c.Seed = parsed
		}
	}
	if v, ok := cfg["steps_per_tick"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.StepsPerTick = parsed
		}
	}
	if v, ok := cfg["restart_on_contradiction"]; ok {
		if parsed, err := strconv.ParseBool(v); err == nil {
			c.RestartOnContradiction = parsed
		}
	}
	if v, ok := cfg["tileset"]; ok {
		c.Tileset = v
	}
	return c
}
