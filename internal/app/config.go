package app

import (
	"fmt"
	"time"

	"golife/internal/core"
	"golife/internal/life"

	"github.com/integrii/flaggy"
)

// Fill modes for the starting board.
const (
	FillRandom = "random"
	FillNoise  = "noise"
)

// noiseThreshold sits just above the perlin midline, giving distinct blobs
// with breathing room between them.
const noiseThreshold = 0.1

// Config holds the command-line options shared by the golife entrypoints.
type Config struct {
	Width  int
	Height int
	TPS    int
	Seed   int64
	Fill   string
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	return &Config{Width: 64, Height: 48, TPS: 10, Fill: FillRandom}
}

// Bind attaches the shared options to flaggy's default parser.
func (c *Config) Bind() {
	flaggy.Int(&c.Width, "x", "width", "Board width in cells")
	flaggy.Int(&c.Height, "y", "height", "Board height in cells")
	flaggy.Int(&c.TPS, "t", "tps", "Generations per second")
	flaggy.Int64(&c.Seed, "s", "seed", "RNG seed; 0 picks a time-based seed")
	flaggy.String(&c.Fill, "f", "fill", "Starting board fill: random|noise")
}

// BuildUniverse constructs a universe from the options: seeded or time-based
// RNG, uniform random or perlin-noise starting fill.
func (c *Config) BuildUniverse() (*life.Universe, error) {
	seed := c.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	u := life.New(c.Width, c.Height, core.NewRNG(seed))
	switch c.Fill {
	case FillRandom:
		// New already randomized the board.
	case FillNoise:
		mask := core.NoiseMask(u.Size(), seed, noiseThreshold)
		if err := u.Seed(mask); err != nil {
			return nil, err
		}
	default:
		return nil, fmt.Errorf("unknown fill mode %q", c.Fill)
	}
	return u, nil
}
