package app

import (
	"flag"
	"strconv"
)

// Config represents the command-line parameters for the viewer.
type Config struct {
	Sim     string
	Scale   int
	TPS     int
	Seed    int64
	Rows    int
	Cols    int
	Tileset string
	HUD     int
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	return &Config{Sim: "pipes", Scale: 0, TPS: 60, Seed: 42, Rows: 64, Cols: 64, HUD: 220}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.StringVar(&c.Sim, "sim", c.Sim, "simulation to run")
	fs.IntVar(&c.Scale, "scale", c.Scale, "tile size in screen pixels (0 uses the tile set size)")
	fs.IntVar(&c.TPS, "tps", c.TPS, "solver steps per second")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for the first attempt")
	fs.IntVar(&c.Rows, "rows", c.Rows, "tile map rows")
	fs.IntVar(&c.Cols, "cols", c.Cols, "tile map columns")
	fs.StringVar(&c.Tileset, "tileset", c.Tileset, "YAML tile set (empty uses the built-in pipes)")
	fs.IntVar(&c.HUD, "hud", c.HUD, "HUD panel width in pixels (0 hides it)")
}

// SimConfig converts the flags into the string map sim factories accept.
func (c *Config) SimConfig() map[string]string {
	return map[string]string{
		"rows":    strconv.Itoa(c.Rows),
		"cols":    strconv.Itoa(c.Cols),
		"seed":    strconv.FormatInt(c.Seed, 10),
		"tileset": c.Tileset,
	}
}
