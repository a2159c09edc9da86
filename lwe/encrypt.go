package lwe

// Encrypt encrypts pt under sk, returning a fresh Ciphertext:
//
//  1. r ∈ Z_Q^N, each coordinate a discrete Gaussian sample.
//  2. v_pad ∈ Z_Q^{N+d}: zero on the top N coordinates, pt on the bottom d.
//  3. e ∈ Z_Q^{N+d}, each coordinate a discrete Gaussian sample.
//  4. ctxt = A*r + v_pad + p*e.
//
// Decrypt recovers pt via S^T*ctxt = pt + p*(noise) (mod Q), the noise
// being the Gaussian terms folded through S — an exact multiple of p added
// to pt, peeled off by centered reduction mod p (see Decrypt).
func Encrypt(sk SecretKey, pt Plaintext) Ciphertext {
	return encryptWithSamplers(sk, pt, newSamplers())
}

func encryptWithSamplers(sk SecretKey, pt Plaintext, s *samplers) Ciphertext {
	r := ringQ.NewVector(N)
	for i := 0; i < N; i++ {
		r.Coeffs[i].Set(s.gaussianBigInt())
	}

	c := ringQ.MulVec(sk.A, r)

	for i := 0; i < PlaintextDim; i++ {
		c.Coeffs[N+i].Add(c.Coeffs[N+i], bigFromUint64(pt[i].Uint64()))
	}

	for i := 0; i < N+PlaintextDim; i++ {
		e := s.gaussianBigInt()
		e.Mul(e, PModulus)
		c.Coeffs[i].Add(c.Coeffs[i], e)
		ringQ.Reduce(c.Coeffs[i])
	}

	return Ciphertext{ctxt: c}
}
