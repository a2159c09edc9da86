// Package modring implements matrices and vectors over Z_m for a
// run-time-selected modulus m, serving both the ciphertext ring Z_q and the
// plaintext ring Z_p without a process-global modulus switch: every Ring
// value carries its own modulus rather than relying on shared mutable
// state.
//
// The reduction itself is a Barrett reducer generalized from a fixed
// compile-time modulus to a run-time modulus, so the same ring code backs
// both Z_q and Z_p.
package modring

import "math/big"

// Reducer computes Barrett reduction modulo a fixed modulus M.
// It assumes inputs lie in [0, 2*M^2).
type Reducer struct {
	M *big.Int

	rBound  *big.Int
	mBitLen uint
	barConst *big.Int

	quo  *big.Int
	quoM *big.Int
}

// NewReducer creates a new Reducer for modulus m.
func NewReducer(m *big.Int) *Reducer {
	if m.Sign() <= 0 {
		panic("modring: modulus must be positive")
	}

	mBitLen := uint(m.BitLen())
	exp := big.NewInt(0).Lsh(big.NewInt(1), (mBitLen<<1)+1)
	barConst := big.NewInt(0).Div(exp, m)

	rBound := big.NewInt(0).Mul(m, m)
	rBound.Lsh(rBound, 1)

	return &Reducer{
		M: m,

		rBound:   rBound,
		mBitLen:  mBitLen,
		barConst: barConst,

		quo:  big.NewInt(0),
		quoM: big.NewInt(0),
	}
}

// ShallowCopy returns a copy of r that is safe to use concurrently with r.
func (r *Reducer) ShallowCopy() *Reducer {
	return &Reducer{
		M: r.M,

		rBound:   r.rBound,
		mBitLen:  r.mBitLen,
		barConst: r.barConst,

		quo:  big.NewInt(0),
		quoM: big.NewInt(0),
	}
}

// Reduce reduces x in place into [0, M).
func (r *Reducer) Reduce(x *big.Int) {
	if x.Sign() < 0 {
		x.Add(x, r.rBound)
	}

	if x.Sign() < 0 || x.Cmp(r.rBound) >= 0 {
		// Outside the Barrett fast path (e.g. a product of two already-large
		// accumulations): fall back to exact division.
		x.Mod(x, r.M)
		return
	}

	quo := big.NewInt(0).Mul(x, r.barConst)
	quo.Rsh(quo, (r.mBitLen<<1)+1)
	quo.Mul(quo, r.M)
	x.Sub(x, quo)
	if x.Cmp(r.M) >= 0 {
		x.Sub(x, r.M)
	}
	if x.Sign() < 0 {
		x.Add(x, r.M)
	}
}
