package problem

import (
	"fmt"
	"math/rand/v2"
)

// Config controls how the Generator picks a.
type Config struct {
	// MinA and MaxA bound the uniform choice of a (inclusive).
	// The range is load-bearing for reproducibility of shared
	// problems, so changes here are breaking.
	MinA int
	MaxA int
}

// DefaultConfig returns the standard range a ∈ {2, …, 12}.
func DefaultConfig() Config {
	return Config{MinA: MinA, MaxA: MaxA}
}

// Generator produces limit problems. A Generator with a fixed seed
// yields a reproducible sequence; the zero-value seed path uses the
// shared crypto-seeded source from math/rand/v2.
type Generator struct {
	cfg Config
	rng *rand.Rand
}

// NewGenerator creates a Generator with the given config.
func NewGenerator(cfg Config) (*Generator, error) {
	if cfg.MinA < MinA || cfg.MaxA > MaxShared || cfg.MinA > cfg.MaxA {
		return nil, fmt.Errorf("invalid generator range [%d, %d]", cfg.MinA, cfg.MaxA)
	}
	return &Generator{cfg: cfg}, nil
}

// NewSeededGenerator creates a Generator with a deterministic source.
func NewSeededGenerator(cfg Config, seed uint64) (*Generator, error) {
	g, err := NewGenerator(cfg)
	if err != nil {
		return nil, err
	}
	g.rng = rand.New(rand.NewPCG(seed, 0))
	return g, nil
}

// Generate picks a uniformly from the configured range and derives the
// Problem. The derivation cannot fail for an in-range a; the error
// return exists only for the CheckDerivation assertion.
func (g *Generator) Generate() (Problem, error) {
	span := g.cfg.MaxA - g.cfg.MinA + 1
	var a int
	if g.rng != nil {
		a = g.cfg.MinA + g.rng.IntN(span)
	} else {
		a = g.cfg.MinA + rand.IntN(span)
	}

	p, err := New(a)
	if err != nil {
		return Problem{}, err
	}
	if err := p.CheckDerivation(); err != nil {
		return Problem{}, fmt.Errorf("derivation check failed for a=%d: %w", a, err)
	}
	return p, nil
}
