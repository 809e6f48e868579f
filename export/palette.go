package export

import (
	"math"
	"math/rand"

	"github.com/lucasb-eyer/go-colorful"
)

// candidateDraws is the number of random candidates considered per
// issued color.
const candidateDraws = 100

// paletteSeeds are pre-claimed colors routes must keep their distance
// from: the two hues reserved for the map backdrop plus its water tint.
var paletteSeeds = []colorful.Color{
	{R: 1, G: 1, B: 0},
	{R: 0.5, G: 0.5, B: 0},
	{R: 0.878, G: 0.984, B: 0.957},
}

// Palette issues a visually distinct color per route. It is stateful:
// every issued color becomes part of the set future colors are pushed
// away from.
type Palette struct {
	pastel float64
	rng    *rand.Rand
	used   []colorful.Color
}

// NewPalette seeds a palette. pastelFactor in [0, 1] washes candidates
// out toward white; a fixed seed makes color assignment reproducible.
func NewPalette(pastelFactor float64, seed int64) *Palette {
	return &Palette{
		pastel: pastelFactor,
		rng:    rand.New(rand.NewSource(seed)),
		used:   append([]colorful.Color(nil), paletteSeeds...),
	}
}

// Next returns the candidate, out of candidateDraws pastel-biased
// random draws, that maximizes the minimum distance to every color
// issued so far.
func (p *Palette) Next() colorful.Color {
	best := p.random()
	bestDist := p.minDistance(best)
	for i := 1; i < candidateDraws; i++ {
		c := p.random()
		if d := p.minDistance(c); d > bestDist {
			best, bestDist = c, d
		}
	}
	p.used = append(p.used, best)
	return best
}

func (p *Palette) random() colorful.Color {
	f := p.pastel
	return colorful.Color{
		R: (p.rng.Float64() + f) / (1 + f),
		G: (p.rng.Float64() + f) / (1 + f),
		B: (p.rng.Float64() + f) / (1 + f),
	}
}

func (p *Palette) minDistance(c colorful.Color) float64 {
	min := math.MaxFloat64
	for _, u := range p.used {
		if d := c.DistanceRgb(u); d < min {
			min = d
		}
	}
	return min
}
