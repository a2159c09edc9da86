// Package qap reduces a Rank-1 Constraint System to a Quadratic Arithmetic
// Program and evaluates both the instance side (for CRS construction) and
// the witness side (for proof generation) of that reduction, grounded on
// the dot-product/interpolation formulation used throughout the linear-PCP
// literature this scheme composes with.
package qap

import "github.com/lattice-snarg/r1cs-ppsnarg/field"

// Term is one nonzero entry of an R1CS constraint row: the coefficient of
// variable Index.
type Term struct {
	Index int
	Coeff field.Elem
}

// Constraint is one row of an R1CS: (A . z) * (B . z) = (C . z).
type Constraint struct {
	A, B, C []Term
}

// System is a full constraint system over a fixed variable layout. Variable
// 0 is always the constant wire, bound to field.One; variables 1..NumInputs
// are the public inputs; the remainder are auxiliary witness variables.
type System struct {
	Constraints  []Constraint
	NumVariables int
	NumInputs    int
}

// Assignment is a full variable vector, including the constant wire at
// index 0.
type Assignment []field.Elem

// FullAssignment builds the full variable vector from the public input and
// the auxiliary witness, prepending the constant wire.
func FullAssignment(cs *System, input, witness []field.Elem) Assignment {
	z := make(Assignment, cs.NumVariables)
	z[0] = field.One
	copy(z[1:], input)
	copy(z[1+len(input):], witness)
	return z
}

func dot(terms []Term, z Assignment) field.Elem {
	acc := field.Zero
	for _, t := range terms {
		acc = t.Coeff.MulAdd(z[t.Index], acc)
	}
	return acc
}

// IsSatisfied reports whether z satisfies every constraint of cs.
func (cs *System) IsSatisfied(z Assignment) bool {
	for _, c := range cs.Constraints {
		a := dot(c.A, z)
		b := dot(c.B, z)
		out := dot(c.C, z)
		if !a.Mul(b).Equal(out) {
			return false
		}
	}
	return true
}
