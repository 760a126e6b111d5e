// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package style

import (
	"fmt"
	"math/rand/v2"
)

// DefaultParticleCount is how many light particles float over the hero.
const DefaultParticleCount = 20

// ParticleSpec is the randomised placement and timing of one particle.
type ParticleSpec struct {
	Width    float64 // px, 2 to 7
	Height   float64 // px, 2 to 7, drawn independently of Width
	Left     float64 // %, 0 to 100
	Top      float64 // %, 0 to 100
	Delay    float64 // s, 0 to 5
	Duration float64 // s, 5 to 15
}

// InlineStyle renders the particle as a style attribute value.
func (p ParticleSpec) InlineStyle() string {
	return fmt.Sprintf(
		"width: %.2fpx; height: %.2fpx; left: %.2f%%; top: %.2f%%; animation-delay: %.2fs; animation-duration: %.2fs;",
		p.Width, p.Height, p.Left, p.Top, p.Delay, p.Duration,
	)
}

// GenerateParticles lays out n particles from rng. The same seed always
// yields the same layout.
func GenerateParticles(rng *rand.Rand, n int) []ParticleSpec {
	out := make([]ParticleSpec, n)
	for i := range out {
		out[i] = ParticleSpec{
			Width:    rng.Float64()*5 + 2,
			Height:   rng.Float64()*5 + 2,
			Left:     rng.Float64() * 100,
			Top:      rng.Float64() * 100,
			Delay:    rng.Float64() * 5,
			Duration: rng.Float64()*10 + 5,
		}
	}
	return out
}

// SeededParticles is GenerateParticles with a PCG source built from seed.
func SeededParticles(seed uint64, n int) []ParticleSpec {
	return GenerateParticles(rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)), n)
}
