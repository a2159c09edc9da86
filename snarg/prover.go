package snarg

import (
	"fmt"

	"github.com/lattice-snarg/r1cs-ppsnarg/csprng"
	"github.com/lattice-snarg/r1cs-ppsnarg/field"
	"github.com/lattice-snarg/r1cs-ppsnarg/lwe"
	"github.com/lattice-snarg/r1cs-ppsnarg/qap"
)

// Prover folds a primary input and auxiliary witness into a single proof
// ciphertext.
type Prover struct{}

// Prove computes the proof for (x, w) against crs.
func (Prover) Prove(crs *CRS, x []field.Elem, w []field.Elem) (Proof, error) {
	cs := crs.ConstraintSystem
	src := csprng.NewUniformSampler()

	d1 := field.Random(src)
	d2 := field.Random(src)
	d3 := field.Random(src)

	z := qap.FullAssignment(cs, x, w)
	h := qap.WitnessMap(cs, z, d1, d2, d3)

	numInputs := cs.NumInputs
	pi := make([]field.Elem, 0, (cs.NumVariables-numInputs-1)+3+len(h))
	pi = append(pi, z[numInputs+1:]...)
	pi = append(pi, d1, d2, d3)
	pi = append(pi, h...)

	if len(pi) != len(crs.Rows) {
		return Proof{}, fmt.Errorf("snarg: prover: proof vector length %d does not match CRS length %d", len(pi), len(crs.Rows))
	}

	ct := lwe.ScalarMul(pi[0], crs.Rows[0])
	for i := 1; i < len(pi); i++ {
		ct.AddAssign(lwe.ScalarMul(pi[i], crs.Rows[i]))
	}
	return ct, nil
}
