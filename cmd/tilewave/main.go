//go:build ebiten

package main

import (
	"errors"
	"flag"
	"log"

	"tilewave/internal/app"
	"tilewave/internal/core"
	_ "tilewave/internal/sims/pipes"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	factory, ok := core.Sims()[cfg.Sim]
	if !ok {
		log.Fatalf("unknown sim %q", cfg.Sim)
	}

	sim := factory(cfg.SimConfig())
	sim.Reset(cfg.Seed)

	game := app.New(sim, cfg.Scale, cfg.TPS, cfg.HUD, cfg.Seed)
	w, h := game.Layout(0, 0)

	ebiten.SetWindowTitle("tilewave — " + sim.Name())
	ebiten.SetWindowSize(w, h)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
