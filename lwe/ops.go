package lwe

import (
	"math/big"

	"github.com/lattice-snarg/r1cs-ppsnarg/field"
)

// Add returns the ciphertext encrypting the sum of the two plaintexts
// a and b encrypt, exploiting the scheme's additive homomorphism: both
// A*r and the embedded message add linearly.
func Add(a, b Ciphertext) Ciphertext {
	return Ciphertext{ctxt: ringQ.AddVec(a.ctxt, b.ctxt)}
}

// AddAssign adds b into a in place.
func (a *Ciphertext) AddAssign(b Ciphertext) {
	a.ctxt = ringQ.AddVec(a.ctxt, b.ctxt)
}

// ScalarMul returns the ciphertext encrypting c*pt, where ct encrypts pt
// and c is a public field element.
func ScalarMul(c field.Elem, ct Ciphertext) Ciphertext {
	scalar := bigFromUint64(c.Uint64())
	return Ciphertext{ctxt: ringQ.ScalarMulVec(scalar, ct.ctxt)}
}

// ScalarMulAssign scales ct in place by c.
func (ct *Ciphertext) ScalarMulAssign(c field.Elem) {
	scalar := bigFromUint64(c.Uint64())
	ct.ctxt = ringQ.ScalarMulVec(scalar, ct.ctxt)
}

// PerturbCoordinate adds delta, taken mod Q, to ct's i-th raw Z_Q coordinate
// in place. It exists to let tests corrupt a single coordinate without
// going through encryption, exercising the soundness of the scheme against
// ciphertexts that are not honestly generated.
func (ct *Ciphertext) PerturbCoordinate(i int, delta *big.Int) {
	ct.ctxt.Coeffs[i].Add(ct.ctxt.Coeffs[i], delta)
	ringQ.Reduce(ct.ctxt.Coeffs[i])
}
