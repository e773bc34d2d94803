package rng

import (
	"context"
	"fmt"
	"math/rand"

	"rngbias/domain/core"
)

// Generator draws die-face symbols from a seeded stream, uniformly or with
// per-symbol weights. The same seed always yields the same sequence.
type Generator struct {
	rnd     *rand.Rand
	cumsum  []float64
	total   float64
	uniform bool
}

// NewGenerator creates a seeded generator. weights is either nil (uniform)
// or one non-negative weight per symbol with a positive total.
func NewGenerator(seed int64, weights []float64) (*Generator, error) {
	g := &Generator{
		rnd:     rand.New(rand.NewSource(seed)),
		uniform: weights == nil,
	}
	if weights == nil {
		return g, nil
	}

	if len(weights) != core.AlphabetSize {
		return nil, fmt.Errorf("expected %d weights, got %d", core.AlphabetSize, len(weights))
	}
	g.cumsum = make([]float64, core.AlphabetSize)
	for i, w := range weights {
		if w < 0 {
			return nil, fmt.Errorf("weight for symbol %d is negative", i+1)
		}
		g.total += w
		g.cumsum[i] = g.total
	}
	if g.total <= 0 {
		return nil, fmt.Errorf("weights sum to zero")
	}
	return g, nil
}

// Generate returns a sequence of exactly length symbols over {1..6}.
func (g *Generator) Generate(ctx context.Context, length int) (string, error) {
	if length < 1 {
		return "", fmt.Errorf("sequence length must be at least 1")
	}
	buf := make([]byte, length)
	for i := range buf {
		if err := ctx.Err(); err != nil {
			return "", err
		}
		buf[i] = '1' + byte(g.draw())
	}
	return string(buf), nil
}

func (g *Generator) draw() int {
	if g.uniform {
		return g.rnd.Intn(core.AlphabetSize)
	}
	x := g.rnd.Float64() * g.total
	for i, c := range g.cumsum {
		if x < c {
			return i
		}
	}
	return core.AlphabetSize - 1
}
