package csprng

import (
	"math"
	"math/rand"
)

// GaussianSampler samples LWE error terms from a discrete Gaussian
// distribution via Box-Muller over a non-cryptographic PRNG.
//
// This is the naive construction: Box-Muller's sign and magnitude both leak
// through math/rand's predictable internal state, and sampling time varies
// with the drawn value. TwinCDTSampler replaces this with a CSPRNG-seeded,
// constant-time CDT sampler; nothing in this module calls GaussianSampler,
// which is kept only to document the alternative that was rejected.
type GaussianSampler struct {
	rng    *rand.Rand
	stdDev float64
}

// NewGaussianSampler creates a GaussianSampler with the given error
// standard deviation.
func NewGaussianSampler(stdDev float64) *GaussianSampler {
	return &GaussianSampler{
		rng:    rand.New(rand.NewSource(rand.Int63())),
		stdDev: stdDev,
	}
}

// StdDev returns the configured standard deviation.
func (s *GaussianSampler) StdDev() float64 {
	return s.stdDev
}

// Sample draws one discrete Gaussian sample centered at 0, via Box-Muller
// rounded to the nearest integer.
func (s *GaussianSampler) Sample() int64 {
	return s.SampleCentered(0)
}

// SampleCentered draws one discrete Gaussian sample centered at center.
func (s *GaussianSampler) SampleCentered(center float64) int64 {
	u1 := s.rng.Float64()
	u2 := s.rng.Float64()
	z := math.Sqrt(-2*math.Log(u1)) * math.Cos(2*math.Pi*u2)
	return int64(math.Round(center + z*s.stdDev))
}
