// Command tilewave-run solves a tile map without a window and prints it as
// box-drawing text.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"tilewave/internal/core"
	"tilewave/internal/tilecfg"
	"tilewave/internal/wfc"
)

type options struct {
	rows     int
	cols     int
	seed     int64
	tileset  string
	attempts int
	quiet    bool
}

func parseOptions(args []string) (options, error) {
	opts := options{rows: 16, cols: 32, seed: 42, attempts: 10}
	fs := flag.NewFlagSet("tilewave-run", flag.ContinueOnError)
	fs.IntVar(&opts.rows, "rows", opts.rows, "tile map rows")
	fs.IntVar(&opts.cols, "cols", opts.cols, "tile map columns")
	fs.Int64Var(&opts.seed, "seed", opts.seed, "seed for the first attempt")
	fs.StringVar(&opts.tileset, "tileset", opts.tileset, "YAML tile set (empty uses the built-in pipes)")
	fs.IntVar(&opts.attempts, "attempts", opts.attempts, "attempts before giving up on contradictions")
	fs.BoolVar(&opts.quiet, "quiet", opts.quiet, "suppress progress logging")
	if err := fs.Parse(args); err != nil {
		return opts, err
	}
	if opts.attempts < 1 {
		opts.attempts = 1
	}
	return opts, nil
}

// solve runs up to opts.attempts fresh maps, seeding attempt i with seed+i,
// and returns the first one that completes.
func solve(opts options, ts *wfc.TileSet, logger *log.Logger) (*wfc.TileMap, error) {
	var last error
	for i := 0; i < opts.attempts; i++ {
		seed := opts.seed + int64(i)
		tm, err := wfc.NewTileMap(opts.rows, opts.cols, ts, core.NewRNG(seed))
		if err != nil {
			return nil, err
		}
		err = tm.Initialize()
		if err == nil {
			err = tm.Solve()
		}
		if err == nil {
			logger.Printf("solved %dx%d seed=%d steps=%d", opts.rows, opts.cols, seed, tm.Steps())
			return tm, nil
		}
		if !errors.Is(err, wfc.ErrContradiction) {
			return nil, err
		}
		logger.Printf("attempt %d seed=%d: %v after %d/%d cells", i+1, seed, err, tm.Collapsed(), opts.rows*opts.cols)
		last = err
	}
	return nil, fmt.Errorf("no solution in %d attempts: %w", opts.attempts, last)
}

func run(args []string, stdout, stderr io.Writer) error {
	opts, err := parseOptions(args)
	if err != nil {
		return err
	}
	logger := log.New(stderr, "tilewave-run: ", log.LstdFlags)
	if opts.quiet {
		logger.SetOutput(io.Discard)
	}

	file, err := tilecfg.LoadOrDefault(opts.tileset)
	if err != nil {
		return err
	}
	ts, err := file.TileSet()
	if err != nil {
		return err
	}
	logger.Printf("loaded %d variants from %d tiles", ts.Len(), len(file.Tiles))

	tm, err := solve(opts, ts, logger)
	if err != nil {
		return err
	}
	if err := tm.CheckAdjacency(); err != nil {
		return err
	}
	_, err = io.WriteString(stdout, wfc.RenderASCII(tm))
	return err
}

func main() {
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			os.Exit(0)
		}
		log.Fatalf("tilewave-run: %v", err)
	}
}
