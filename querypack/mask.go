package querypack

import (
	"fmt"
	"math/big"

	"github.com/lattice-snarg/r1cs-ppsnarg/field"
	"github.com/lattice-snarg/r1cs-ppsnarg/modring"
	"github.com/rs/zerolog/log"
)

// maxMaskAttempts bounds the retry-on-singular-draw loop when sampling the
// Y-mask: a uniform d x d matrix over Z_p is invertible with overwhelming
// probability, so a genuine run of 64 consecutive singular draws indicates
// a broken sampler rather than bad luck.
const maxMaskAttempts = 64

// Mask samples a random invertible Y in Z_p^{d x d} (d = packed.M.Cols),
// retrying on a singular draw, and returns M' = M*Y along with Y^{-T}
// (the transpose of Y's inverse), which the verifier uses to undo the mask.
func Mask(src field.RandomSource, M modring.Matrix) (masked modring.Matrix, yInvT modring.Matrix, err error) {
	d := M.Cols

	for attempt := 0; attempt < maxMaskAttempts; attempt++ {
		Y := sampleUniformMatrix(src, d, d)
		inv, ok := RingP.Inverse(Y)
		if !ok {
			if attempt > 0 {
				log.Debug().Int("attempt", attempt).Msg("querypack: mask: singular Y draw, resampling")
			}
			continue
		}
		masked = RingP.MulMat(M, Y)
		yInvT = RingP.Transpose(inv)
		return masked, yInvT, nil
	}

	return modring.Matrix{}, modring.Matrix{}, fmt.Errorf("querypack: no invertible Y-mask found after %d attempts", maxMaskAttempts)
}

func sampleUniformMatrix(src field.RandomSource, rows, cols int) modring.Matrix {
	m := RingP.NewMatrix(rows, cols)
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			e := field.Random(src)
			m.Data[i][j] = big.NewInt(0).SetUint64(e.Uint64())
		}
	}
	return m
}
