package modring

import "math/big"

// Inverse computes the inverse of the square matrix m over Z_p by
// Gauss-Jordan elimination with partial pivoting. It returns ok=false if m
// is singular.
//
// This requires every nonzero element of Z_p to be a unit, i.e. p must be
// prime (or m's entries must otherwise avoid non-unit pivots) — the only
// caller in this module is the Y-mask inversion in package querypack, which
// always operates over the plaintext prime p, so this invariant holds by
// construction rather than by a runtime check.
func (r *Ring) Inverse(m Matrix) (Matrix, bool) {
	if m.Rows != m.Cols {
		panic("modring: Inverse requires a square matrix")
	}
	n := m.Rows

	aug := r.NewMatrix(n, 2*n)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			aug.Data[i][j].Set(m.Data[i][j])
		}
		aug.Data[i][n+i].SetInt64(1)
	}

	for col := 0; col < n; col++ {
		pivot := -1
		for row := col; row < n; row++ {
			if aug.Data[row][col].Sign() != 0 {
				pivot = row
				break
			}
		}
		if pivot == -1 {
			return Matrix{}, false
		}
		aug.Data[col], aug.Data[pivot] = aug.Data[pivot], aug.Data[col]

		inv := big.NewInt(0).ModInverse(aug.Data[col][col], r.Modulus())
		if inv == nil {
			return Matrix{}, false
		}
		for j := 0; j < 2*n; j++ {
			aug.Data[col][j].Mul(aug.Data[col][j], inv)
			r.Reduce(aug.Data[col][j])
		}

		for row := 0; row < n; row++ {
			if row == col {
				continue
			}
			factor := big.NewInt(0).Set(aug.Data[row][col])
			if factor.Sign() == 0 {
				continue
			}
			tmp := big.NewInt(0)
			for j := 0; j < 2*n; j++ {
				tmp.Mul(factor, aug.Data[col][j])
				aug.Data[row][j].Sub(aug.Data[row][j], tmp)
				r.Reduce(aug.Data[row][j])
			}
		}
	}

	out := r.NewMatrix(n, n)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			out.Data[i][j].Set(aug.Data[i][n+j])
		}
	}
	return out, true
}
