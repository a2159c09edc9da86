package qap

import "github.com/lattice-snarg/r1cs-ppsnarg/field"

// exampleSource is the minimal randomness interface
// GenerateR1CSExampleWithFieldInput needs, satisfied by any of package
// csprng's samplers via field.Random.
type exampleSource = field.RandomSource

// GenerateR1CSExampleWithFieldInput builds a random satisfiable R1CS
// instance with the given number of constraints and public-input size,
// grounded on the multiplication-chain benchmark harness used throughout
// the R1CS test literature: each constraint multiplies the running value by
// a fresh random constant, so satisfiability is immediate by construction.
//
// Returns the system, the public input vector, and the full assignment
// (including the constant wire), so callers can exercise both
// System.IsSatisfied and WitnessMap without recomputing the witness.
func GenerateR1CSExampleWithFieldInput(src exampleSource, numConstraints, inputSize int) (*System, []field.Elem, Assignment) {
	if inputSize < 1 {
		inputSize = 1
	}

	numVariables := 1 + inputSize + numConstraints
	cs := &System{
		NumVariables: numVariables,
		NumInputs:    inputSize,
	}

	z := make(Assignment, numVariables)
	z[0] = field.One
	for i := 0; i < inputSize; i++ {
		z[1+i] = nonzeroRandom(src)
	}

	acc := 1 // variable index of the running product
	for i := 0; i < numConstraints; i++ {
		varIdx := 1 + inputSize + i
		multiplier := nonzeroRandom(src)
		z[varIdx] = z[acc].Mul(multiplier)

		cs.Constraints = append(cs.Constraints, Constraint{
			A: []Term{{Index: acc, Coeff: field.One}},
			B: []Term{{Index: 0, Coeff: multiplier}},
			C: []Term{{Index: varIdx, Coeff: field.One}},
		})

		acc = varIdx
	}

	input := append([]field.Elem(nil), z[1:1+inputSize]...)
	return cs, input, z
}

func nonzeroRandom(src exampleSource) field.Elem {
	x := field.Random(src)
	if x.IsZero() {
		return field.One
	}
	return x
}
