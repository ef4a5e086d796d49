//go:build ebiten

package main

import (
	"errors"
	"log"

	"golife/internal/app"
	"golife/internal/render"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/integrii/flaggy"
)

func main() {
	flaggy.SetName("life")
	flaggy.SetDescription("Conway's Game of Life on a toroidal grid")

	cfg := app.NewConfig()
	cfg.Bind()
	flaggy.Parse()

	universe, err := cfg.BuildUniverse()
	if err != nil {
		log.Fatal(err)
	}

	game, err := app.New(universe)
	if err != nil {
		log.Fatal(err)
	}

	ebiten.SetWindowTitle("golife")
	ebiten.SetTPS(cfg.TPS)
	ebiten.SetWindowSize(render.SurfaceSize(universe.Size()))

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
