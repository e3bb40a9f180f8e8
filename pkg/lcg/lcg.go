package lcg

import (
	"errors"
	"math/bits"
)

// Default parameters, the Numerical Recipes constants.
const (
	DefaultMultiplier uint64 = 1664525
	DefaultIncrement  uint64 = 1013904223
	DefaultModulus    uint64 = 1 << 32
)

var ErrInvalidModulus = errors.New("lcg modulus must be greater than 0")

// Generator is a linear congruential generator producing
// value = (a*value + c) mod m on every draw.
// A Generator must only be drawn from by a single goroutine.
type Generator struct {
	value uint64
	a     uint64
	c     uint64
	m     uint64
}

func New(seed uint64) *Generator {
	// The default modulus is never zero.
	gen, _ := NewWithParams(seed, DefaultMultiplier, DefaultIncrement, DefaultModulus)
	return gen
}

func NewWithParams(seed, a, c, m uint64) (*Generator, error) {
	if m == 0 {
		return nil, ErrInvalidModulus
	}
	return &Generator{value: seed, a: a, c: c, m: m}, nil
}

// Next advances the generator and returns the new state.
// The seed itself is never returned.
func (g *Generator) Next() uint64 {
	// The full 128-bit product is reduced so large multipliers
	// or states can never overflow before the modulo.
	hi, lo := bits.Mul64(g.a, g.value)
	lo, carry := bits.Add64(lo, g.c, 0)
	hi += carry
	g.value = bits.Rem64(hi%g.m, lo, g.m)
	return g.value
}

// Value returns the current state without advancing.
func (g *Generator) Value() uint64 {
	return g.value
}
