// Package snarg implements the preprocessing succinct non-interactive
// argument for R1CS satisfiability: a generator that compiles a constraint
// system into a common reference string and verification key, a prover
// that folds a witness into a single LWE ciphertext, and a verifier that
// checks the resulting linear-PCP divisibility identity.
package snarg

import (
	"github.com/lattice-snarg/r1cs-ppsnarg/field"
	"github.com/lattice-snarg/r1cs-ppsnarg/lwe"
	"github.com/lattice-snarg/r1cs-ppsnarg/modring"
	"github.com/lattice-snarg/r1cs-ppsnarg/qap"
)

// CRS is the common reference string: one ciphertext per row of the masked
// query matrix, plus the constraint system the prover needs to reduce its
// input/witness into a QAP assignment.
type CRS struct {
	Rows             []lwe.Ciphertext
	ConstraintSystem *qap.System
}

// VK is the secret verification key: the LWE decryption key, the per-query
// vanishing-polynomial values, the un-masking matrix, and the public-input
// correction prefixes.
type VK struct {
	SK                        lwe.SecretKey
	Z                         []field.Elem
	YInvT                     modring.Matrix
	APrefix, BPrefix, CPrefix [][]field.Elem
	NumInputs                 int
}

// Proof is the prover's single output ciphertext.
type Proof = lwe.Ciphertext
