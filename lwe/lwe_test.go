package lwe_test

import (
	"testing"

	"github.com/lattice-snarg/r1cs-ppsnarg/field"
	"github.com/lattice-snarg/r1cs-ppsnarg/lwe"
	"github.com/stretchr/testify/assert"
)

func randomPlaintext() lwe.Plaintext {
	pt := lwe.NewPlaintext()
	for i := range pt {
		pt[i] = field.New(uint64(i*7 + 1))
	}
	return pt
}

func TestEncryptDecrypt(t *testing.T) {
	sk := lwe.KeyGen()

	t.Run("RoundTrip", func(t *testing.T) {
		pt := randomPlaintext()
		ct := lwe.Encrypt(sk, pt)
		out := lwe.Decrypt(sk, ct)
		assert.Equal(t, pt, out)
	})

	t.Run("ZeroPlaintext", func(t *testing.T) {
		pt := lwe.NewPlaintext()
		ct := lwe.Encrypt(sk, pt)
		out := lwe.Decrypt(sk, ct)
		assert.Equal(t, pt, out)
	})
}

func TestHomomorphicAdd(t *testing.T) {
	sk := lwe.KeyGen()

	a := randomPlaintext()
	b := randomPlaintext()

	ctA := lwe.Encrypt(sk, a)
	ctB := lwe.Encrypt(sk, b)

	ctSum := lwe.Add(ctA, ctB)
	out := lwe.Decrypt(sk, ctSum)

	want := lwe.NewPlaintext()
	for i := range want {
		want[i] = a[i].Add(b[i])
	}
	assert.Equal(t, want, out)
}

func TestHomomorphicScalarMul(t *testing.T) {
	sk := lwe.KeyGen()

	pt := randomPlaintext()
	c := field.New(3)

	ct := lwe.Encrypt(sk, pt)
	ctScaled := lwe.ScalarMul(c, ct)
	out := lwe.Decrypt(sk, ctScaled)

	want := lwe.NewPlaintext()
	for i := range want {
		want[i] = pt[i].Mul(c)
	}
	assert.Equal(t, want, out)
}

func TestCiphertextSerializeRoundTrip(t *testing.T) {
	sk := lwe.KeyGen()
	pt := randomPlaintext()
	ct := lwe.Encrypt(sk, pt)

	data, err := ct.MarshalBinary()
	assert.NoError(t, err)

	var out lwe.Ciphertext
	assert.NoError(t, out.UnmarshalBinary(data))

	assert.Equal(t, lwe.Decrypt(sk, ct), lwe.Decrypt(sk, out))
}

func TestCiphertextAddAssign(t *testing.T) {
	sk := lwe.KeyGen()

	a := randomPlaintext()
	b := randomPlaintext()

	ctA := lwe.Encrypt(sk, a)
	ctB := lwe.Encrypt(sk, b)

	ctA.AddAssign(ctB)
	out := lwe.Decrypt(sk, ctA)

	want := lwe.NewPlaintext()
	for i := range want {
		want[i] = a[i].Add(b[i])
	}
	assert.Equal(t, want, out)
}
