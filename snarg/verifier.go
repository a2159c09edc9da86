package snarg

import (
	"github.com/lattice-snarg/r1cs-ppsnarg/field"
	"github.com/lattice-snarg/r1cs-ppsnarg/lwe"
)

// Verifier checks a proof against a verification key and public input.
type Verifier struct{}

// Verify reports whether proof is a valid argument that some witness
// satisfies the constraint system vk was built from, given primary input
// x.
func (Verifier) Verify(vk *VK, x []field.Elem, proof Proof) bool {
	ell := len(vk.Z)
	d := 4 * ell
	if vk.YInvT.Rows != d || vk.YInvT.Cols != d {
		return false
	}

	v := lwe.Decrypt(vk.SK, proof)
	if len(v) != d {
		return false
	}

	u := unmask(vk.YInvT, v)

	for i := 0; i < ell; i++ {
		a := u[i]
		b := u[ell+i]
		c := u[2*ell+i]
		h := u[3*ell+i]

		a = a.Add(prefixCorrection(vk.APrefix[i], x))
		b = b.Add(prefixCorrection(vk.BPrefix[i], x))
		c = c.Add(prefixCorrection(vk.CPrefix[i], x))

		if !a.Mul(b).Equal(h.Mul(vk.Z[i]).Add(c)) {
			return false
		}
	}
	return true
}

// prefixCorrection folds the public input into a query's constant+input
// coefficients: prefix[0] + sum_j x[j]*prefix[j+1].
func prefixCorrection(prefix []field.Elem, x []field.Elem) field.Elem {
	acc := prefix[0]
	for j, xv := range x {
		acc = xv.MulAdd(prefix[j+1], acc)
	}
	return acc
}
