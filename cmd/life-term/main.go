package main

import (
	"log"
	"os"
	"time"

	"golife/internal/app"
	"golife/internal/view"

	"github.com/integrii/flaggy"
)

func main() {
	flaggy.SetName("life-term")
	flaggy.SetDescription("Conway's Game of Life in the terminal")
	flaggy.DefaultParser.ShowHelpOnUnexpected = true

	cfg := app.NewConfig()
	cfg.Bind()

	interactive := false
	interval := 100 * time.Millisecond
	maxSteps := 1000
	flaggy.Bool(&interactive, "n", "interactive", "Start the interactive terminal UI")
	flaggy.Duration(&interval, "i", "interval", "Delay between generations, e.g. 150ms")
	flaggy.Int(&maxSteps, "m", "max-steps", "Stop a batch run after this many generations (0 = unlimited)")
	flaggy.Parse()

	universe, err := cfg.BuildUniverse()
	if err != nil {
		log.Fatal(err)
	}
	runner := view.NewRunner(universe, interval, maxSteps)

	if interactive {
		ui, err := view.NewTermUI(runner)
		if err != nil {
			log.Fatal(err)
		}
		if err := ui.Start(); err != nil {
			log.Fatal(err)
		}
		return
	}

	out := view.NewConsoleOut(os.Stdout)
	out.PrintHeader(runner.Status(), interval, maxSteps, cfg.Fill)
	runner.OnChange(func() { out.Progress(runner.Status()) })

	runner.Run()
	<-runner.Done()
	out.Summary(runner.Status())
}
