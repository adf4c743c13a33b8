package app

import (
	"flag"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfigBind(t *testing.T) {
	cfg := NewConfig()
	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	cfg.Bind(fs)
	require.NoError(t, fs.Parse([]string{"-rows", "8", "-cols", "5", "-seed", "3", "-tileset", "a.yaml", "-tps", "120"}))

	assert.Equal(t, "pipes", cfg.Sim)
	assert.Equal(t, 120, cfg.TPS)
	assert.Equal(t, map[string]string{
		"rows": "8", "cols": "5", "seed": "3", "tileset": "a.yaml",
	}, cfg.SimConfig())
}
