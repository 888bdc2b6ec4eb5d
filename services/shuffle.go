package services

import (
	"math/rand"
)

const (
	lcgMultiplier = 9301
	lcgIncrement  = 49297
	lcgModulus    = 233280
)

// lcg is a tiny linear-congruential generator. The recurrence is fixed:
// generated programs must come out identical for the same seed across
// releases, so this must never change.
type lcg struct {
	seed int64
}

func newLCG(seed int64) *lcg {
	return &lcg{seed: ((seed % lcgModulus) + lcgModulus) % lcgModulus}
}

// next returns a pseudo-random float in [0, 1).
func (g *lcg) next() float64 {
	g.seed = (g.seed*lcgMultiplier + lcgIncrement) % lcgModulus
	return float64(g.seed) / lcgModulus
}

// ShuffleDeterministic returns a shuffled copy of items. The same items and
// seed always produce the same order.
func ShuffleDeterministic[T any](items []T, seed int64) []T {
	out := make([]T, len(items))
	copy(out, items)
	g := newLCG(seed)
	for i := len(out) - 1; i > 0; i-- {
		j := int(g.next() * float64(i+1))
		out[i], out[j] = out[j], out[i]
	}
	return out
}

// ShuffleRandom returns a shuffled copy of items using a non-reproducible
// random source. Used when the caller does not care about reproducibility.
func ShuffleRandom[T any](items []T) []T {
	out := make([]T, len(items))
	copy(out, items)
	rand.Shuffle(len(out), func(i, j int) {
		out[i], out[j] = out[j], out[i]
	})
	return out
}
