package lwe_test

import (
	"testing"

	"github.com/lattice-snarg/r1cs-ppsnarg/field"
	"github.com/lattice-snarg/r1cs-ppsnarg/lwe"
	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
)

func genFieldElem() gopter.Gen {
	return gen.UInt64Range(0, uint64(field.Modulus-1)).Map(func(x uint64) field.Elem {
		return field.New(x)
	})
}

func genPlaintext() gopter.Gen {
	return gen.SliceOfN(lwe.PlaintextDim, genFieldElem()).Map(func(xs []field.Elem) lwe.Plaintext {
		return lwe.Plaintext(xs)
	})
}

// TestLinearCombinationProperty is testable property 4: for any alpha, beta
// in Z_p and fresh ciphertexts c1, c2, decrypt(alpha*c1 + beta*c2) equals
// alpha*v1 + beta*v2 coordinatewise.
func TestLinearCombinationProperty(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 30
	properties := gopter.NewProperties(parameters)

	sk := lwe.KeyGen()

	properties.Property("decrypt(a*c1+b*c2) == a*v1+b*v2", prop.ForAll(
		func(alpha, beta field.Elem, v1, v2 lwe.Plaintext) bool {
			c1 := lwe.Encrypt(sk, v1)
			c2 := lwe.Encrypt(sk, v2)

			combined := lwe.Add(lwe.ScalarMul(alpha, c1), lwe.ScalarMul(beta, c2))
			got := lwe.Decrypt(sk, combined)

			for i := range got {
				want := alpha.Mul(v1[i]).Add(beta.Mul(v2[i]))
				if !got[i].Equal(want) {
					return false
				}
			}
			return true
		},
		genFieldElem(), genFieldElem(), genPlaintext(), genPlaintext(),
	))

	properties.TestingRun(t)
}
