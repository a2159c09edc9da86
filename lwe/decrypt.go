package lwe

import (
	"math/big"

	"github.com/lattice-snarg/r1cs-ppsnarg/field"
)

// halfQ is Q/2, used to recenter canonical Z_Q values to a signed
// representative before reducing mod p.
var halfQ = func() *big.Int {
	h := big.NewInt(0).Rsh(Q, 1)
	return h
}()

// Decrypt recovers the plaintext vector encrypted under sk: compute
// w = S^T*ctxt over Z_Q, then for each coordinate recenter to (-Q/2, Q/2]
// and reduce mod p (adding p if negative).
func Decrypt(sk SecretKey, ct Ciphertext) Plaintext {
	sT := ringQ.Transpose(sk.S)
	w := ringQ.MulVec(sT, ct.ctxt)

	pt := NewPlaintext()
	for i := range pt {
		signed := big.NewInt(0).Set(w.Coeffs[i])
		if signed.Cmp(halfQ) > 0 {
			signed.Sub(signed, Q)
		}

		coord := big.NewInt(0).Mod(signed, PModulus)
		pt[i] = field.FromBigInt(coord)
	}
	return pt
}
