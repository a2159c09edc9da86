// Package field implements arithmetic in the small prime field F_p used to
// encode plaintexts of the LWE scheme and the coefficients of the QAP.
//
// The modulus is a single compile-time constant rather than a runtime or
// process-global value: curve/field parameterization collapses, for this
// module, to one Go package instantiation instead of a class hierarchy.
package field

import (
	"fmt"
	"math/big"

	"github.com/lattice-snarg/r1cs-ppsnarg/num"
)

// Modulus is the plaintext prime p. It is a Fermat prime (p = 2^16 + 1), so
// every power-of-two size up to 2^16 has a root of unity in F_p, which is
// what makes the NTT-based QAP interpolation in package qap possible.
const Modulus uint64 = 65537

// Generator is a generator of F_p^*.
const Generator uint64 = 3

// TwoAdicity is s such that p-1 = 2^s * t with t odd. For p = 65537,
// p-1 = 65536 = 2^16, so s = 16 and t = 1.
const TwoAdicity = 16

// Elem is an element of F_p, always held canonical in [0, Modulus).
type Elem struct {
	v uint64
}

// Zero is the additive identity.
var Zero = Elem{0}

// One is the multiplicative identity.
var One = Elem{1}

// Root is a primitive 2^TwoAdicity-th root of unity, i.e. Generator^t with
// t = (p-1)/2^TwoAdicity. Since t = 1 here, Root = Generator.
var Root = New(Generator)

// New reduces x into a canonical Elem.
func New(x uint64) Elem {
	return Elem{x % Modulus}
}

// FromInt64 reduces a signed integer into a canonical Elem.
func FromInt64(x int64) Elem {
	m := int64(Modulus)
	x %= m
	if x < 0 {
		x += m
	}
	return Elem{uint64(x)}
}

// FromBigInt reduces a big.Int into a canonical Elem.
func FromBigInt(x *big.Int) Elem {
	m := big.NewInt(int64(Modulus))
	r := big.NewInt(0).Mod(x, m)
	return Elem{r.Uint64()}
}

// Uint64 returns the canonical representative in [0, Modulus).
func (x Elem) Uint64() uint64 { return x.v }

// Int64 returns the canonical representative as an int64.
func (x Elem) Int64() int64 { return int64(x.v) }

// String implements fmt.Stringer.
func (x Elem) String() string {
	return fmt.Sprintf("%d", x.v)
}

// Equal reports whether x and y represent the same field element.
func (x Elem) Equal(y Elem) bool { return x.v == y.v }

// IsZero reports whether x is the additive identity.
func (x Elem) IsZero() bool { return x.v == 0 }

// Add returns x + y.
func (x Elem) Add(y Elem) Elem {
	s := x.v + y.v
	if s >= Modulus {
		s -= Modulus
	}
	return Elem{s}
}

// Sub returns x - y.
func (x Elem) Sub(y Elem) Elem {
	if x.v >= y.v {
		return Elem{x.v - y.v}
	}
	return Elem{x.v + Modulus - y.v}
}

// Neg returns -x.
func (x Elem) Neg() Elem {
	if x.v == 0 {
		return x
	}
	return Elem{Modulus - x.v}
}

// Mul returns x * y.
func (x Elem) Mul(y Elem) Elem {
	return Elem{(x.v * y.v) % Modulus}
}

// MulAdd returns acc + x*y.
func (x Elem) MulAdd(y, acc Elem) Elem {
	return acc.Add(x.Mul(y))
}

// Exp returns x^e.
func (x Elem) Exp(e uint64) Elem {
	return Elem{num.ModExp(x.v, e, Modulus)}
}

// ExpBigInt returns x^e for a big.Int exponent, reduced mod p-1 by Fermat's
// little theorem when x is nonzero.
func (x Elem) ExpBigInt(e *big.Int) Elem {
	if e.Sign() == 0 {
		return One
	}
	if x.IsZero() {
		return Zero
	}
	ee := big.NewInt(0).Mod(e, big.NewInt(int64(Modulus-1)))
	return x.Exp(ee.Uint64())
}

// Inverse returns x^-1. Panics if x is zero.
func (x Elem) Inverse() Elem {
	if x.v == 0 {
		panic("field: inverse of zero")
	}
	return Elem{num.ModInverse(x.v, Modulus)}
}

// Div returns x / y. Panics if y is zero.
func (x Elem) Div(y Elem) Elem {
	return x.Mul(y.Inverse())
}

// Sqrt returns a square root of x, if one exists, via Tonelli-Shanks. The
// second return value is false if x is not a quadratic residue.
func (x Elem) Sqrt() (Elem, bool) {
	if x.IsZero() {
		return Zero, true
	}
	legendre := x.Exp((Modulus - 1) / 2)
	if !legendre.Equal(One) {
		return Zero, false
	}

	// Tonelli-Shanks: p-1 = 2^s * q, q odd.
	q := Modulus - 1
	s := 0
	for q%2 == 0 {
		q /= 2
		s++
	}

	// Find a quadratic non-residue z.
	z := New(2)
	for z.Exp((Modulus - 1) / 2).Equal(One) {
		z = z.Add(One)
	}

	m := s
	c := z.Exp(q)
	t := x.Exp(q)
	r := x.Exp((q + 1) / 2)

	for !t.Equal(One) {
		// Find least i, 0 < i < m, such that t^(2^i) = 1.
		i := 0
		tt := t
		for !tt.Equal(One) {
			tt = tt.Mul(tt)
			i++
		}

		b := c
		for j := 0; j < m-i-1; j++ {
			b = b.Mul(b)
		}
		m = i
		c = b.Mul(b)
		t = t.Mul(c)
		r = r.Mul(b)
	}

	return r, true
}

// RandomSource is satisfied by any sampler that can draw a uniform integer
// in [0, n).
type RandomSource interface {
	SampleN(n uint64) uint64
}

// Random draws a uniform element of F_p from src.
func Random(src RandomSource) Elem {
	return Elem{src.SampleN(Modulus)}
}
