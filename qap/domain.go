package qap

import "github.com/lattice-snarg/r1cs-ppsnarg/field"

// DomainSize returns the evaluation domain size for cs: the smallest power
// of two at least as large as the number of constraints (and at least 1),
// so the domain is a subgroup of F_p's roots of unity and the QAP
// polynomials can be interpolated with an NTT.
func DomainSize(cs *System) int {
	return nextPow2(len(cs.Constraints))
}

func nextPow2(n int) int {
	if n <= 1 {
		return 1
	}
	p := 1
	for p < n {
		p <<= 1
	}
	return p
}

// domainPoints returns the m distinct m-th roots of unity {omega^0, ...,
// omega^(m-1)} used as the QAP's evaluation domain.
func domainPoints(m int) []field.Elem {
	pts := make([]field.Elem, m)
	if m == 1 {
		pts[0] = field.One
		return pts
	}
	omega := field.RootOfUnity(uint64(m))
	pts[0] = field.One
	for i := 1; i < m; i++ {
		pts[i] = pts[i-1].Mul(omega)
	}
	return pts
}
