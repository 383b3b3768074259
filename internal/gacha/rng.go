package gacha

import (
	cryptoRand "crypto/rand"
	"encoding/binary"
	"math/rand/v2"
)

// RandomSource is the injectable uniform generator. The engine asks for
// floats in [0, 1) (flat-mode walks) and integers in [0, n) (fixed-point
// walks); tests and simulations inject a seeded source for reproducibility.
type RandomSource interface {
	Float64() float64     // uniform in [0, 1)
	Int64N(n int64) int64 // uniform in [0, n); n must be > 0
}

// crypto random: default generation method
type cryptoRNG struct{}

func (cryptoRNG) Float64() float64 {
	// Read 53 random bits => [0, 1)
	var buf [8]byte
	if _, err := cryptoRand.Read(buf[:]); err != nil {
		// back to math/rand/v2
		return rand.Float64()
	}
	u := binary.BigEndian.Uint64(buf[:]) >> 11 // 53 bits
	return float64(u) / (1 << 53)
}

func (cryptoRNG) Int64N(n int64) int64 {
	if n <= 0 {
		return 0
	}
	// rejection sampling keeps the modulo unbiased
	bound := ^uint64(0) - ^uint64(0)%uint64(n)
	for {
		var buf [8]byte
		if _, err := cryptoRand.Read(buf[:]); err != nil {
			return rand.Int64N(n)
		}
		u := binary.BigEndian.Uint64(buf[:])
		if u < bound {
			return int64(u % uint64(n))
		}
	}
}

func DefaultRNG() RandomSource { return cryptoRNG{} }

// Replicable RNG (tests, Monte Carlo)
type seededRNG struct{ r *rand.Rand }

func NewSeededRNG(seed uint64) RandomSource {
	return &seededRNG{r: rand.New(rand.NewPCG(seed, 0))}
}

func (s *seededRNG) Float64() float64 { return s.r.Float64() }

func (s *seededRNG) Int64N(n int64) int64 {
	if n <= 0 {
		return 0
	}
	return s.r.Int64N(n)
}
