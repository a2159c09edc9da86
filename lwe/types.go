package lwe

import (
	"github.com/lattice-snarg/r1cs-ppsnarg/field"
	"github.com/lattice-snarg/r1cs-ppsnarg/modring"
)

// ringQ is the Z_Q ring shared by every SecretKey/Ciphertext in this
// package. It carries its own modulus rather than relying on a process-wide
// context.
var ringQ = modring.NewRing(Q)

// SecretKey holds the two matrices A and S: A is structured as
// [Â ; Ŝᵀ·Â + p·Ê] and S as [−Ŝ ; I_d], so that Sᵀ·c isolates the
// plaintext portion of a ciphertext upon decryption.
type SecretKey struct {
	A modring.Matrix // (N+PlaintextDim) x N, over Z_Q
	S modring.Matrix // (N+PlaintextDim) x PlaintextDim, over Z_Q
}

// Plaintext is a vector of PlaintextDim elements of F_p.
type Plaintext []field.Elem

// NewPlaintext allocates a zero plaintext of the scheme's fixed dimension.
func NewPlaintext() Plaintext {
	return make(Plaintext, PlaintextDim)
}

// Ciphertext is a (N+PlaintextDim)-dimensional vector over Z_Q.
type Ciphertext struct {
	ctxt modring.Vector
}

// Clone returns a deep copy of ct.
func (ct Ciphertext) Clone() Ciphertext {
	return Ciphertext{ctxt: ct.ctxt.Clone()}
}
