// Package tilecfg loads tile set definitions from YAML files.
package tilecfg

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"tilewave/internal/wfc"
)

//go:embed pipes.yaml
var pipesYAML []byte

// DefaultTileSize is the sprite edge length used when a file omits tile_size.
const DefaultTileSize = 16

// File is the on-disk tile set layout.
type File struct {
	TileSize int    `yaml:"tile_size"`
	Tiles    []Tile `yaml:"tiles"`
}

// Tile is one unrotated tile definition.
type Tile struct {
	Name      string    `yaml:"name"`
	Faces     Faces     `yaml:"faces"`
	Rotations string    `yaml:"rotations"`
	Weight    *float64  `yaml:"weight"`
	Weights   []float64 `yaml:"weights"`
}

// Faces names the socket on each side. Empty sides are blank.
type Faces struct {
	Left  string `yaml:"left"`
	Down  string `yaml:"down"`
	Right string `yaml:"right"`
	Up    string `yaml:"up"`
}

// Load reads a tile set from a YAML file.
func Load(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("tilecfg: failed to read tile set: %w", err)
	}
	f, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return f, nil
}

// Default returns the embedded pipe tile set.
func Default() *File {
	f, err := Parse(pipesYAML)
	if err != nil {
		panic(err)
	}
	return f
}

// LoadOrDefault loads path, or the embedded set when path is empty.
func LoadOrDefault(path string) (*File, error) {
	if path == "" {
		return Default(), nil
	}
	return Load(path)
}

// Parse decodes YAML tile set data and fills defaults.
func Parse(data []byte) (*File, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var f File
	if err := dec.Decode(&f); err != nil {
		return nil, fmt.Errorf("tilecfg: failed to parse tile set: %w", err)
	}
	if len(f.Tiles) == 0 {
		return nil, errors.New("tilecfg: tile set has no tiles")
	}
	if f.TileSize == 0 {
		f.TileSize = DefaultTileSize
	}
	if f.TileSize < 0 {
		return nil, fmt.Errorf("tilecfg: invalid tile_size %d", f.TileSize)
	}
	return &f, nil
}

// BaseTiles converts the file into solver definitions.
func (f *File) BaseTiles() ([]wfc.BaseTile, error) {
	out := make([]wfc.BaseTile, 0, len(f.Tiles))
	for i, t := range f.Tiles {
		if t.Name == "" {
			return nil, fmt.Errorf("tilecfg: tile %d has no name", i)
		}
		var faces wfc.Faces
		names := [4]string{
			wfc.Left:  t.Faces.Left,
			wfc.Down:  t.Faces.Down,
			wfc.Right: t.Faces.Right,
			wfc.Up:    t.Faces.Up,
		}
		for _, d := range wfc.Directions {
			name := names[d]
			if name == "" {
				continue
			}
			s, err := wfc.ParseSocket(name)
			if err != nil {
				return nil, fmt.Errorf("tilecfg: tile %q %s face: %w", t.Name, d, err)
			}
			faces[d] = s
		}
		sym, err := wfc.ParseSymmetry(t.Rotations)
		if err != nil {
			return nil, fmt.Errorf("tilecfg: tile %q: %w", t.Name, err)
		}
		base := wfc.NewBaseTile(t.Name, faces, sym)
		if t.Weight != nil {
			base.Weight = *t.Weight
		}
		base.Weights = t.Weights
		out = append(out, base)
	}
	return out, nil
}

// TileSet builds the variant registry described by the file.
func (f *File) TileSet() (*wfc.TileSet, error) {
	defs, err := f.BaseTiles()
	if err != nil {
		return nil, err
	}
	ts, err := wfc.NewTileSet(defs)
	if err != nil {
		return nil, fmt.Errorf("tilecfg: %w", err)
	}
	return ts, nil
}
