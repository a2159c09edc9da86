package snarg_test

import (
	"testing"

	"github.com/lattice-snarg/r1cs-ppsnarg/csprng"
	"github.com/lattice-snarg/r1cs-ppsnarg/field"
	"github.com/lattice-snarg/r1cs-ppsnarg/lwe"
	"github.com/lattice-snarg/r1cs-ppsnarg/qap"
	"github.com/lattice-snarg/r1cs-ppsnarg/snarg"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runEndToEnd(t *testing.T, numConstraints, inputSize int) (*snarg.VK, []field.Elem, snarg.Proof) {
	t.Helper()

	src := csprng.NewUniformSampler()
	cs, x, z := qap.GenerateR1CSExampleWithFieldInput(src, numConstraints, inputSize)
	require.True(t, cs.IsSatisfied(z))
	w := z[1+inputSize:]

	crs, vk, err := snarg.Generator{}.Setup(cs)
	require.NoError(t, err)

	proof, err := snarg.Prover{}.Prove(crs, x, w)
	require.NoError(t, err)

	return vk, x, proof
}

// TestCompletenessSmall is scenario S4: 100 constraints, 5 public inputs.
func TestCompletenessSmall(t *testing.T) {
	vk, x, proof := runEndToEnd(t, 100, 5)
	assert.True(t, snarg.Verifier{}.Verify(vk, x, proof))
}

// TestCompletenessLarge is scenario S5: 1000 constraints, 20 public inputs.
func TestCompletenessLarge(t *testing.T) {
	vk, x, proof := runEndToEnd(t, 1000, 20)
	assert.True(t, snarg.Verifier{}.Verify(vk, x, proof))
}

// TestSoundnessProbe is scenario S6: corrupting a single raw ciphertext
// coordinate by adding p must cause verification to reject with
// overwhelming probability. Reported statistically over 10 independent
// setups.
func TestSoundnessProbe(t *testing.T) {
	const trials = 10
	rejected := 0

	for i := 0; i < trials; i++ {
		vk, x, proof := runEndToEnd(t, 40, 4)

		corrupted := lwe.Ciphertext(proof).Clone()
		corrupted.PerturbCoordinate(0, lwe.PModulus)

		verifier := snarg.Verifier{}
		if !verifier.Verify(vk, x, corrupted) {
			rejected++
		}
	}

	assert.GreaterOrEqual(t, rejected, 9, "expected overwhelming rejection of corrupted proofs, got %d/%d", rejected, trials)
}

// TestCRSVKProofRoundTrip is property 6: serialize and deserialize CRS, VK,
// and Proof, and confirm the restored objects verify identically.
func TestCRSVKProofRoundTrip(t *testing.T) {
	src := csprng.NewUniformSampler()
	cs, x, z := qap.GenerateR1CSExampleWithFieldInput(src, 30, 3)
	w := z[1+3:]

	crs, vk, err := snarg.Generator{}.Setup(cs)
	require.NoError(t, err)

	crsBytes, err := crs.MarshalBinary()
	require.NoError(t, err)
	var crsOut snarg.CRS
	require.NoError(t, crsOut.UnmarshalBinary(crsBytes))

	vkBytes, err := vk.MarshalBinary()
	require.NoError(t, err)
	var vkOut snarg.VK
	require.NoError(t, vkOut.UnmarshalBinary(vkBytes))

	proof, err := snarg.Prover{}.Prove(&crsOut, x, w)
	require.NoError(t, err)

	proofBytes, err := proof.MarshalBinary()
	require.NoError(t, err)
	var proofOut snarg.Proof
	require.NoError(t, proofOut.UnmarshalBinary(proofBytes))

	assert.True(t, snarg.Verifier{}.Verify(&vkOut, x, proofOut))
}
