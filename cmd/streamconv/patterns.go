package main

import (
	"fmt"
	"math/rand"

	"github.com/sarchlab/streamconv/conv"
)

var patterns = map[string]func(cfg conv.Config, seed int64) []uint8{
	"gradient": gradient,
	"checker":  checker,
	"random":   random,
	"ramp":     ramp,
}

func makeFrame(pattern string, cfg conv.Config, seed int64) ([]uint8, error) {
	gen, ok := patterns[pattern]
	if !ok {
		return nil, fmt.Errorf("unknown pattern %q", pattern)
	}

	return gen(cfg, seed), nil
}

// gradient brightens towards the bottom-right corner.
func gradient(cfg conv.Config, _ int64) []uint8 {
	px := make([]uint8, cfg.StreamLength())
	span := cfg.Width + cfg.Height - 2
	for r := 0; r < cfg.Height; r++ {
		for c := 0; c < cfg.Width; c++ {
			px[r*cfg.Width+c] = uint8((r + c) * 255 / span)
		}
	}

	return px
}

// checker alternates black and white squares of four pixels.
func checker(cfg conv.Config, _ int64) []uint8 {
	px := make([]uint8, cfg.StreamLength())
	for r := 0; r < cfg.Height; r++ {
		for c := 0; c < cfg.Width; c++ {
			if (r/4+c/4)%2 == 1 {
				px[r*cfg.Width+c] = 255
			}
		}
	}

	return px
}

func random(cfg conv.Config, seed int64) []uint8 {
	r := rand.New(rand.NewSource(seed))
	px := make([]uint8, cfg.StreamLength())
	for i := range px {
		px[i] = uint8(r.Intn(256))
	}

	return px
}

// ramp numbers the pixels in stream order, which makes traces easy to read.
func ramp(cfg conv.Config, _ int64) []uint8 {
	px := make([]uint8, cfg.StreamLength())
	for i := range px {
		px[i] = uint8(i)
	}

	return px
}
