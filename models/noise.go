package models

import (
	crand "crypto/rand"
	"encoding/binary"
	"time"

	"golang.org/x/exp/rand"
)

// Sampler draws one variate from Normal(mean, stddev).
type Sampler interface {
	Generate(mean, stddev float64) float64
}

// GaussianNoise is a Sampler backed by a single seeded PCG source. Every call
// to Generate advances the source. It is not safe for concurrent use; give
// each goroutine its own instance.
type GaussianNoise struct {
	Seed uint64 // Seed the source was created with
	rng  *rand.Rand
}

func NewGaussianNoise(seed uint64) *GaussianNoise {
	return &GaussianNoise{
		Seed: seed,
		rng:  rand.New(rand.NewSource(seed)),
	}
}

// NewEntropyNoise seeds from crypto/rand, falling back to the wall clock.
func NewEntropyNoise() *GaussianNoise {
	return NewGaussianNoise(entropySeed())
}

func (g *GaussianNoise) Generate(mean, stddev float64) float64 {
	return g.rng.NormFloat64()*stddev + mean
}

func entropySeed() uint64 {
	var b [8]byte
	if _, err := crand.Read(b[:]); err != nil {
		return uint64(time.Now().UnixNano())
	}
	return binary.LittleEndian.Uint64(b[:])
}
