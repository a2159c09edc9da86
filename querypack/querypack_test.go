package querypack_test

import (
	"testing"

	"github.com/lattice-snarg/r1cs-ppsnarg/csprng"
	"github.com/lattice-snarg/r1cs-ppsnarg/field"
	"github.com/lattice-snarg/r1cs-ppsnarg/qap"
	"github.com/lattice-snarg/r1cs-ppsnarg/querypack"
	"github.com/stretchr/testify/assert"
)

func buildInstances(t *testing.T, cs *qap.System, ell int) []querypack.Instance {
	t.Helper()
	src := csprng.NewUniformSampler()

	instances := make([]querypack.Instance, ell)
	for i := 0; i < ell; i++ {
		tau := field.Random(src)
		a, b, c, z, hBasis := qap.InstanceAt(cs, tau)
		instances[i] = querypack.Instance{A: a, B: b, C: c, Z: z, HBasis: hBasis}
	}
	return instances
}

func TestPackShape(t *testing.T) {
	src := csprng.NewUniformSampler()
	cs, _, _ := qap.GenerateR1CSExampleWithFieldInput(src, 8, 2)

	ell := 4
	instances := buildInstances(t, cs, ell)
	packed := querypack.Pack(instances, cs.NumVariables, cs.NumInputs)

	h := len(instances[0].HBasis)
	wantRows := (cs.NumVariables - cs.NumInputs - 1) + 3 + h
	wantCols := 4 * ell

	assert.Equal(t, wantRows, packed.M.Rows)
	assert.Equal(t, wantCols, packed.M.Cols)
	assert.Len(t, packed.APrefix, ell)
	assert.Len(t, packed.APrefix[0], cs.NumInputs+1)
}

func TestYMaskInverts(t *testing.T) {
	src := csprng.NewUniformSampler()
	cs, _, _ := qap.GenerateR1CSExampleWithFieldInput(src, 8, 2)

	instances := buildInstances(t, cs, 4)
	packed := querypack.Pack(instances, cs.NumVariables, cs.NumInputs)

	masked, yInvT, err := querypack.Mask(src, packed.M)
	assert.NoError(t, err)
	assert.Equal(t, packed.M.Rows, masked.Rows)
	assert.Equal(t, packed.M.Cols, masked.Cols)

	// Unmasking M*Y by Y^{-T} on the right (i.e. multiplying by (Y^{-T})^T =
	// Y^{-1} on the right) must recover M exactly.
	recovered := querypack.RingP.MulMat(masked, querypack.RingP.Transpose(yInvT))
	for i := 0; i < packed.M.Rows; i++ {
		for j := 0; j < packed.M.Cols; j++ {
			assert.Equal(t, 0, packed.M.Data[i][j].Cmp(recovered.Data[i][j]))
		}
	}
}
