// Package rng provides the seeded random source a battle draws from.
package rng

import (
	"hash/fnv"
	"math/rand/v2"
)

// streamSalt separates the second PCG word from the seed
const streamSalt = 0x9e3779b97f4a7c15

// Battle is a deterministic random source: the same seed yields the same draws.
// It is not safe for concurrent use; each battle owns its own.
type Battle struct {
	seed  uint64
	r     *rand.Rand
	draws int
}

// NewBattle creates a source seeded with seed
func NewBattle(seed uint64) *Battle {
	return &Battle{
		seed: seed,
		r:    rand.New(rand.NewPCG(seed, seed^streamSalt)),
	}
}

// SeedFromString hashes a textual battle seed, e.g. a battle id
func SeedFromString(s string) uint64 {
	h := fnv.New64a()
	_, _ = h.Write([]byte(s))
	return h.Sum64()
}

// Intn returns a value in [0, n). It returns 0 without drawing when n <= 0.
func (b *Battle) Intn(n int) int {
	if n <= 0 {
		return 0
	}
	b.draws++
	return b.r.IntN(n)
}

// Float64 returns a value in [0, 1)
func (b *Battle) Float64() float64 {
	b.draws++
	return b.r.Float64()
}

// Seed returns the seed the source was created with
func (b *Battle) Seed() uint64 { return b.seed }

// Draws returns how many values have been drawn
func (b *Battle) Draws() int { return b.draws }
