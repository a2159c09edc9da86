// Package lwe implements the additively homomorphic secret-key LWE vector
// encryption scheme the ppSNARG core is built on, grounded on the
// [LP10]-style construction named by the original source (the scheme
// encodes the message in the low-order bits of the ciphertext).
package lwe

import (
	"math/big"

	"github.com/lattice-snarg/r1cs-ppsnarg/field"
)

// Parameters, fixed at compile time. Changing any of these couples into
// the scheme's noise budget and must not be done without re-deriving the
// correctness bound.
const (
	// N is the LWE lattice dimension, chosen for ~80 bits of security.
	N = 1455

	// StdDev is the standard deviation of the error distribution.
	StdDev = 6.0

	// NumQueries (ℓ) is the number of independent linear-PCP queries for
	// soundness amplification to roughly 2^-40.
	NumQueries = 15

	// PlaintextDim (d) is the dimension of the plaintext vector, 4*ℓ.
	PlaintextDim = 4 * NumQueries
)

// Q is the ciphertext modulus, 2^58.
var Q = func() *big.Int {
	q := big.NewInt(1)
	q.Lsh(q, 58)
	return q
}()

// PModulus is the plaintext modulus p as a big.Int, mirrored from package
// field's compile-time constant for use in Z_q/Z_p conversions.
var PModulus = big.NewInt(int64(field.Modulus))
