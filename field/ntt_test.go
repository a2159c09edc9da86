package field_test

import (
	"testing"

	"github.com/lattice-snarg/r1cs-ppsnarg/field"
	"github.com/stretchr/testify/assert"
)

func TestNTTRoundTrip(t *testing.T) {
	a := make([]field.Elem, 16)
	for i := range a {
		a[i] = field.New(uint64(i*31 + 1))
	}

	want := make([]field.Elem, len(a))
	copy(want, a)

	field.NTT(a)
	field.INTT(a)

	assert.Equal(t, want, a)
}

func TestSqrt(t *testing.T) {
	x := field.New(4)
	r, ok := x.Sqrt()
	assert.True(t, ok)
	assert.True(t, r.Mul(r).Equal(x))
}
