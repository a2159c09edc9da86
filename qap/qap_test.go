package qap_test

import (
	"testing"

	"github.com/lattice-snarg/r1cs-ppsnarg/csprng"
	"github.com/lattice-snarg/r1cs-ppsnarg/field"
	"github.com/lattice-snarg/r1cs-ppsnarg/qap"
	"github.com/stretchr/testify/assert"
)

func TestGeneratedInstanceIsSatisfied(t *testing.T) {
	src := csprng.NewUniformSampler()
	cs, _, z := qap.GenerateR1CSExampleWithFieldInput(src, 20, 3)
	assert.True(t, cs.IsSatisfied(z))
}

// TestQAPIdentity checks that, for a satisfied assignment, the blinded QAP
// identity (A.z+d1*Z)(tau) * (B.z+d2*Z)(tau) - (C.z+d3*Z)(tau) ==
// Z(tau)*H'(tau) holds at an arbitrary evaluation point, tying InstanceAt
// and WitnessMap together exactly as the prover/verifier pair relies on.
func TestQAPIdentity(t *testing.T) {
	src := csprng.NewUniformSampler()
	cs, _, z := qap.GenerateR1CSExampleWithFieldInput(src, 16, 2)

	d1, d2, d3 := field.New(11), field.New(22), field.New(33)
	h := qap.WitnessMap(cs, z, d1, d2, d3)

	for _, tauVal := range []uint64{12345, 7, 999983} {
		tau := field.New(tauVal)
		a, b, c, zAt, hBasis := qap.InstanceAt(cs, tau)

		az, bz, cz := field.Zero, field.Zero, field.Zero
		for i := range z {
			az = z[i].MulAdd(a[i], az)
			bz = z[i].MulAdd(b[i], bz)
			cz = z[i].MulAdd(c[i], cz)
		}
		az = az.Add(d1.Mul(zAt))
		bz = bz.Add(d2.Mul(zAt))
		cz = cz.Add(d3.Mul(zAt))

		hz := field.Zero
		for i, coeff := range h {
			hz = coeff.MulAdd(hBasis[i], hz)
		}

		lhs := az.Mul(bz).Sub(cz)
		rhs := zAt.Mul(hz)
		assert.True(t, lhs.Equal(rhs), "tau=%d: %v != %v", tauVal, lhs, rhs)
	}
}

func TestUnsatisfiedAssignmentFails(t *testing.T) {
	src := csprng.NewUniformSampler()
	cs, _, z := qap.GenerateR1CSExampleWithFieldInput(src, 10, 2)

	z[len(z)-1] = z[len(z)-1].Add(field.One)
	assert.False(t, cs.IsSatisfied(z))
}
