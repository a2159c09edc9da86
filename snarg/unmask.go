package snarg

import (
	"math/big"

	"github.com/lattice-snarg/r1cs-ppsnarg/field"
	"github.com/lattice-snarg/r1cs-ppsnarg/modring"
	"github.com/lattice-snarg/r1cs-ppsnarg/querypack"
)

// unmask computes Y^{-T} * v over Z_p, recovering the per-query sums the
// Y-mask hid from the individual CRS rows.
func unmask(yInvT modring.Matrix, v []field.Elem) []field.Elem {
	vec := querypack.RingP.NewVector(len(v))
	for i, x := range v {
		vec.Coeffs[i] = big.NewInt(0).SetUint64(x.Uint64())
	}

	out := querypack.RingP.MulVec(yInvT, vec)

	u := make([]field.Elem, len(out.Coeffs))
	for i, c := range out.Coeffs {
		u[i] = field.FromBigInt(c)
	}
	return u
}
