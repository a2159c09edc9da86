package lwe

import (
	"io"
	"math/big"

	"github.com/lattice-snarg/r1cs-ppsnarg/csprng"
)

// slack is the number of extra random bits drawn beyond ceil(log2(Q)) so
// that reducing mod Q bounds the statistical distance from uniform by
// 2^-slack.
const slack = 128

// zqSampler draws uniform elements of Z_Q by oversampling and reducing,
// rather than by rejection (package field's Random, used for Z_p, uses
// rejection sampling instead — the two moduli have different statistical
// distance/throughput tradeoffs at this scale).
type zqSampler struct {
	src      io.Reader
	numBytes int
}

func newZqSampler(src io.Reader) *zqSampler {
	bits := Q.BitLen() + slack
	return &zqSampler{src: src, numBytes: (bits + 7) / 8}
}

func (s *zqSampler) Sample() *big.Int {
	buf := make([]byte, s.numBytes)
	if _, err := io.ReadFull(s.src, buf); err != nil {
		panic(err)
	}
	x := big.NewInt(0).SetBytes(buf)
	x.Mod(x, Q)
	return x
}

// gaussianSource is the minimal interface this package's error/randomness
// sampler satisfies, so keygen/encrypt are not tied to one concrete CSPRNG
// implementation.
type gaussianSource interface {
	Sample() int64
}

// centeredGaussian adapts csprng.TwinCDTSampler's centered-at-x interface
// to gaussianSource: this scheme only ever samples centered at 0.
type centeredGaussian struct {
	s *csprng.TwinCDTSampler
}

func (c centeredGaussian) Sample() int64 {
	return c.s.Sample(0)
}

// samplers bundles the randomness sources a key-generation or encryption
// call needs: a CSPRNG-seeded uniform sampler over Z_Q and a discrete
// Gaussian error sampler.
//
// zqBulk draws Z_Q's uniform entries through an AES-CTR stream sampler:
// keygen's n x n matrix Â is the only bulk uniform draw in this package, so
// stream-cipher throughput matters more here than which CSPRNG primitive
// produced the bytes. The error terms come from a CDT table-lookup
// sampler rather than a Box-Muller one, so sampling runs in constant time
// regardless of the drawn value — a timing side-channel a Box-Muller
// sampler would otherwise open up around the error distribution central to
// this scheme's security.
type samplers struct {
	gaussian gaussianSource
	zqBulk   *zqSampler
}

// newSamplers creates a fresh, independently-seeded set of samplers.
func newSamplers() *samplers {
	return &samplers{
		gaussian: centeredGaussian{s: csprng.NewTwinCDTSampler(StdDev)},
		zqBulk:   newZqSampler(csprng.NewStreamSampler()),
	}
}

// gaussianBigInt draws one error term from the Gaussian sampler, lifted to
// a canonical element of Z_Q.
func (s *samplers) gaussianBigInt() *big.Int {
	e := s.gaussian.Sample()
	x := big.NewInt(e)
	if e < 0 {
		x.Add(x, Q)
	}
	return x
}
