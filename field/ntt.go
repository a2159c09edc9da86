package field

import "github.com/lattice-snarg/r1cs-ppsnarg/num"

// NTT and INTT implement the number-theoretic transform over F_p, usable
// for any transform length that is a power of two dividing 2^TwoAdicity
// (p being a Fermat prime puts every such length's root of unity in F_p
// itself, so no extension field is needed). Package qap uses these to
// interpolate and multiply the QAP's constraint polynomials.

// RootOfUnity returns a primitive n-th root of unity in F_p, for n a power
// of two dividing 2^TwoAdicity. Package qap uses this directly to build its
// evaluation domains.
func RootOfUnity(n uint64) Elem {
	if n == 0 || n&(n-1) != 0 || n > (1<<TwoAdicity) {
		panic("field: transform length must be a power of two dividing 2^TwoAdicity")
	}
	return Root.Exp((uint64(1) << TwoAdicity) / n)
}

func transform(a []Elem, root Elem) {
	n := len(a)
	num.BitReverseInPlace(a)

	for length := 2; length <= n; length <<= 1 {
		w := root.Exp(uint64(n / length))
		for i := 0; i < n; i += length {
			wn := One
			half := length / 2
			for j := 0; j < half; j++ {
				u := a[i+j]
				v := a[i+j+half].Mul(wn)
				a[i+j] = u.Add(v)
				a[i+j+half] = u.Sub(v)
				wn = wn.Mul(w)
			}
		}
	}
}

// NTT applies the forward transform to a in place. len(a) must be a power
// of two dividing 2^TwoAdicity.
func NTT(a []Elem) {
	n := uint64(len(a))
	transform(a, RootOfUnity(n))
}

// INTT applies the inverse transform to a in place.
func INTT(a []Elem) {
	n := uint64(len(a))
	root := RootOfUnity(n)
	transform(a, root.Inverse())

	nInv := New(n).Inverse()
	for i := range a {
		a[i] = a[i].Mul(nInv)
	}
}
