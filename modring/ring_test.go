package modring_test

import (
	"math/big"
	"testing"

	"github.com/lattice-snarg/r1cs-ppsnarg/modring"
	"github.com/stretchr/testify/assert"
)

func TestMatrixVectorProduct(t *testing.T) {
	r := modring.NewRing(big.NewInt(17))

	a := r.NewMatrix(2, 2)
	a.Set(0, 0, big.NewInt(1))
	a.Set(0, 1, big.NewInt(2))
	a.Set(1, 0, big.NewInt(3))
	a.Set(1, 1, big.NewInt(4))

	v := r.NewVector(2)
	v.Coeffs[0].SetInt64(5)
	v.Coeffs[1].SetInt64(6)

	out := r.MulVec(a, v)
	assert.Equal(t, big.NewInt((1*5+2*6)%17), out.Coeffs[0])
	assert.Equal(t, big.NewInt((3*5+4*6)%17), out.Coeffs[1])
}

func TestIdentityAndInverse(t *testing.T) {
	r := modring.NewRing(big.NewInt(97))

	a := r.NewMatrix(3, 3)
	vals := [][]int64{{1, 2, 3}, {0, 1, 4}, {5, 6, 0}}
	for i := range vals {
		for j := range vals[i] {
			a.Data[i][j].SetInt64(vals[i][j])
		}
	}

	inv, ok := r.Inverse(a)
	assert.True(t, ok)

	prod := r.MulMat(a, inv)
	id := r.Identity(3)
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			assert.Equal(t, id.Data[i][j].Int64(), prod.Data[i][j].Int64()%97, "at (%d,%d)", i, j)
		}
	}
}

func TestTransposeAndScalarMul(t *testing.T) {
	r := modring.NewRing(big.NewInt(13))

	a := r.NewMatrix(2, 3)
	for i := 0; i < 2; i++ {
		for j := 0; j < 3; j++ {
			a.Data[i][j].SetInt64(int64(i*3 + j))
		}
	}

	at := r.Transpose(a)
	assert.Equal(t, 3, at.Rows)
	assert.Equal(t, 2, at.Cols)
	for i := 0; i < 2; i++ {
		for j := 0; j < 3; j++ {
			assert.Equal(t, a.Data[i][j].Int64(), at.Data[j][i].Int64())
		}
	}

	scaled := r.ScalarMul(big.NewInt(10), a)
	for i := 0; i < 2; i++ {
		for j := 0; j < 3; j++ {
			want := (a.Data[i][j].Int64() * 10) % 13
			assert.Equal(t, want, scaled.Data[i][j].Int64())
		}
	}
}
