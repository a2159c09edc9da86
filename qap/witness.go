package qap

import "github.com/lattice-snarg/r1cs-ppsnarg/field"

// WitnessMap computes the zero-knowledge-blinded quotient polynomial
// H' = (A'*B' - C') / Z for a satisfying assignment z, where
//
//	A'(X) = A(X) + d1*Z(X)
//	B'(X) = B(X) + d2*Z(X)
//	C'(X) = C(X) + d3*Z(X)
//
// and A, B, C are the QAP polynomials interpolated from z's dot products
// with each constraint row. Expanding the product gives
//
//	H'(X) = H(X) + d1*B(X) + d2*A(X) + d1*d2*Z(X) - d3
//
// where H = (A*B-C)/Z is the unblinded quotient (degree <= m-2). Since
// d1*d2*Z(X) contributes a term of degree m, H' has degree <= m, so its
// coefficient vector has length m+1 (matching InstanceAt's hBasis).
//
// d1, d2, d3 are the prover's zero-knowledge blinds; this construction
// folds them into the divisibility identity the verifier checks.
func WitnessMap(cs *System, z Assignment, d1, d2, d3 field.Elem) []field.Elem {
	m := DomainSize(cs)

	aVals := make([]field.Elem, m)
	bVals := make([]field.Elem, m)
	cVals := make([]field.Elem, m)
	for i := 0; i < m; i++ {
		if i < len(cs.Constraints) {
			aVals[i] = dot(cs.Constraints[i].A, z)
			bVals[i] = dot(cs.Constraints[i].B, z)
			cVals[i] = dot(cs.Constraints[i].C, z)
		}
	}

	field.INTT(aVals)
	field.INTT(bVals)
	field.INTT(cVals)
	aCoeffs, bCoeffs := aVals, bVals

	n2 := nextPow2(2*m - 1)
	aPad := padTo(aCoeffs, n2)
	bPad := padTo(bCoeffs, n2)

	field.NTT(aPad)
	field.NTT(bPad)
	for i := range aPad {
		aPad[i] = aPad[i].Mul(bPad[i])
	}
	field.INTT(aPad)

	prod := aPad[:2*m-1]
	for i := 0; i < m; i++ {
		prod[i] = prod[i].Sub(cVals[i])
	}

	h := divideByVanishing(prod, m) // length m-1, unblinded quotient

	blinded := make([]field.Elem, m+1)
	copy(blinded, h)
	for j := 0; j < m; j++ {
		blinded[j] = blinded[j].Add(d1.Mul(bCoeffs[j])).Add(d2.Mul(aCoeffs[j]))
	}
	blinded[0] = blinded[0].Sub(d3).Sub(d1.Mul(d2))
	blinded[m] = blinded[m].Add(d1.Mul(d2))

	return blinded
}

func padTo(a []field.Elem, n int) []field.Elem {
	out := make([]field.Elem, n)
	copy(out, a)
	return out
}

// divideByVanishing divides dividend (of degree <= 2m-2) by X^m - 1,
// returning the quotient coefficients (length m-1). The remainder is not
// computed: callers only invoke this on dividends known to vanish on the
// domain.
func divideByVanishing(dividend []field.Elem, m int) []field.Elem {
	h := make([]field.Elem, m-1)
	for i := 0; i < m-1; i++ {
		if m+i < len(dividend) {
			h[i] = dividend[m+i]
		}
	}
	return h
}
