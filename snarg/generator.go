package snarg

import (
	"fmt"
	"time"

	"github.com/lattice-snarg/r1cs-ppsnarg/csprng"
	"github.com/lattice-snarg/r1cs-ppsnarg/field"
	"github.com/lattice-snarg/r1cs-ppsnarg/lwe"
	"github.com/lattice-snarg/r1cs-ppsnarg/modring"
	"github.com/lattice-snarg/r1cs-ppsnarg/qap"
	"github.com/lattice-snarg/r1cs-ppsnarg/querypack"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"
)

// Generator compiles a constraint system into a CRS/VK pair: one
// independent QAP instance evaluation per linear-PCP query, packed and
// Y-masked by package querypack, then encrypted row by row under a fresh
// LWE key.
type Generator struct{}

// Setup runs key generation and produces the CRS and VK for cs.
func (Generator) Setup(cs *qap.System) (*CRS, *VK, error) {
	start := time.Now()
	logger := log.With().
		Int("num_constraints", len(cs.Constraints)).
		Int("num_variables", cs.NumVariables).
		Int("num_inputs", cs.NumInputs).
		Int("num_queries", lwe.NumQueries).
		Logger()
	logger.Debug().Msg("snarg: generator: setup starting")

	src := csprng.NewUniformSampler()

	instances := make([]querypack.Instance, lwe.NumQueries)
	zs := make([]field.Elem, lwe.NumQueries)
	for i := 0; i < lwe.NumQueries; i++ {
		tau := field.Random(src)
		a, b, c, z, hBasis := qap.InstanceAt(cs, tau)
		instances[i] = querypack.Instance{A: a, B: b, C: c, Z: z, HBasis: hBasis}
		zs[i] = z
	}

	packed := querypack.Pack(instances, cs.NumVariables, cs.NumInputs)
	logger.Debug().Int("query_matrix_rows", packed.M.Rows).Int("query_matrix_cols", packed.M.Cols).Msg("snarg: generator: queries packed")

	masked, yInvT, err := querypack.Mask(src, packed.M)
	if err != nil {
		return nil, nil, fmt.Errorf("snarg: generator: %w", err)
	}

	sk := lwe.KeyGen()

	rows, err := encryptRowsParallel(sk, masked)
	if err != nil {
		return nil, nil, err
	}

	crs := &CRS{Rows: rows, ConstraintSystem: cs}
	vk := &VK{
		SK:        sk,
		Z:         zs,
		YInvT:     yInvT,
		APrefix:   packed.APrefix,
		BPrefix:   packed.BPrefix,
		CPrefix:   packed.CPrefix,
		NumInputs: cs.NumInputs,
	}
	logger.Info().Dur("elapsed", time.Since(start)).Int("crs_rows", len(rows)).Msg("snarg: generator: setup complete")
	return crs, vk, nil
}

// encryptRowsParallel encrypts every row of the masked query matrix under
// sk, fanning the independent encryptions out across goroutines: each row
// is an independent ciphertext, so there is no shared mutable state beyond
// each goroutine's own slice index.
func encryptRowsParallel(sk lwe.SecretKey, masked modring.Matrix) ([]lwe.Ciphertext, error) {
	rows := make([]lwe.Ciphertext, masked.Rows)

	var g errgroup.Group
	for i := 0; i < masked.Rows; i++ {
		i := i
		g.Go(func() error {
			pt := make(lwe.Plaintext, masked.Cols)
			for j := 0; j < masked.Cols; j++ {
				pt[j] = field.FromBigInt(masked.Data[i][j])
			}
			rows[i] = lwe.Encrypt(sk, pt)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("snarg: generator: %w", err)
	}
	return rows, nil
}
