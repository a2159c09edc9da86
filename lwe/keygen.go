package lwe

import "math/big"

// KeyGen samples a fresh SecretKey:
//
//  1. Â  ← uniform from Z_Q^{N x N}
//  2. Ŝ  ← Z_Q^{N x PlaintextDim}, entries from the discrete Gaussian
//  3. Ê  ← Z_Q^{PlaintextDim x N}, entries from the discrete Gaussian
//  4. A_bottom = Ŝᵀ·Â + p·Ê  (over Z_Q)
//  5. A = [Â ; A_bottom],  S = [−Ŝ ; I_{PlaintextDim}]
func KeyGen() SecretKey {
	return keyGenWithSamplers(newSamplers())
}

func keyGenWithSamplers(s *samplers) SecretKey {
	aHat := ringQ.NewMatrix(N, N)
	for i := 0; i < N; i++ {
		for j := 0; j < N; j++ {
			aHat.Data[i][j].Set(s.zqBulk.Sample())
		}
	}

	sHat := ringQ.NewMatrix(N, PlaintextDim)
	for i := 0; i < N; i++ {
		for j := 0; j < PlaintextDim; j++ {
			sHat.Data[i][j].Set(s.gaussianBigInt())
		}
	}

	eHat := ringQ.NewMatrix(PlaintextDim, N)
	for i := 0; i < PlaintextDim; i++ {
		for j := 0; j < N; j++ {
			eHat.Data[i][j].Set(s.gaussianBigInt())
		}
	}

	sHatT := ringQ.Transpose(sHat)
	aBottom := ringQ.MulMat(sHatT, aHat)
	pEHat := ringQ.ScalarMul(PModulus, eHat)
	aBottom = ringQ.Add(aBottom, pEHat)

	A := ringQ.NewMatrix(N+PlaintextDim, N)
	for i := 0; i < N; i++ {
		for j := 0; j < N; j++ {
			A.Data[i][j].Set(aHat.Data[i][j])
		}
	}
	for i := 0; i < PlaintextDim; i++ {
		for j := 0; j < N; j++ {
			A.Data[N+i][j].Set(aBottom.Data[i][j])
		}
	}

	S := ringQ.NewMatrix(N+PlaintextDim, PlaintextDim)
	for i := 0; i < N; i++ {
		for j := 0; j < PlaintextDim; j++ {
			neg := big.NewInt(0).Neg(sHat.Data[i][j])
			ringQ.Reduce(neg)
			S.Data[i][j].Set(neg)
		}
	}
	for i := 0; i < PlaintextDim; i++ {
		S.Data[N+i][i].SetInt64(1)
	}

	return SecretKey{A: A, S: S}
}
