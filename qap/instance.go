package qap

import "github.com/lattice-snarg/r1cs-ppsnarg/field"

// InstanceAt evaluates the QAP's per-variable polynomials A_k, B_k, C_k at
// tau, for every variable k of cs, along with the vanishing polynomial's
// value Z(tau) = tau^m - 1 and the power basis [1, tau, ..., tau^m] the
// verifier needs to recover H(tau) from its linear-PCP answer. The basis
// runs to degree m, two past the unblinded quotient's degree (m-2), because the
// zero-knowledge blinds WitnessMap folds in push the quotient's degree up
// to m (see WitnessMap).
//
// Evaluation uses the roots-of-unity Lagrange basis directly rather than
// building the A_k/B_k/C_k polynomials explicitly:
//
//	L_i(tau) = Z(tau) * omega^i / (m * (tau - omega^i))
//	A_k(tau) = sum_i L_i(tau) * cs.Constraints[i].A[k]
//
// which reduces every variable's evaluation to one weighted sum over the
// m constraint rows.
func InstanceAt(cs *System, tau field.Elem) (a, b, c []field.Elem, z field.Elem, hBasis []field.Elem) {
	m := DomainSize(cs)
	domain := domainPoints(m)

	a = make([]field.Elem, cs.NumVariables)
	b = make([]field.Elem, cs.NumVariables)
	c = make([]field.Elem, cs.NumVariables)

	z = tau.Exp(uint64(m)).Sub(field.One)

	hBasis = make([]field.Elem, m+1)
	hBasis[0] = field.One
	for i := 1; i <= m; i++ {
		hBasis[i] = hBasis[i-1].Mul(tau)
	}

	for i := 0; i < m; i++ {
		if domain[i].Equal(tau) {
			// tau coincides with a domain point: the Lagrange basis is
			// degenerate there, but trivially L_i=1 and L_j=0 for j != i.
			if i < len(cs.Constraints) {
				accumulateRow(a, cs.Constraints[i].A, field.One)
				accumulateRow(b, cs.Constraints[i].B, field.One)
				accumulateRow(c, cs.Constraints[i].C, field.One)
			}
			return a, b, c, z, hBasis
		}
	}

	mInv := field.New(uint64(m)).Inverse()
	for i := 0; i < m; i++ {
		denom := tau.Sub(domain[i])
		li := z.Mul(domain[i]).Mul(mInv).Div(denom)
		if li.IsZero() || i >= len(cs.Constraints) {
			continue
		}
		accumulateRow(a, cs.Constraints[i].A, li)
		accumulateRow(b, cs.Constraints[i].B, li)
		accumulateRow(c, cs.Constraints[i].C, li)
	}
	return a, b, c, z, hBasis
}

func accumulateRow(dst []field.Elem, terms []Term, weight field.Elem) {
	for _, t := range terms {
		dst[t.Index] = weight.MulAdd(t.Coeff, dst[t.Index])
	}
}
