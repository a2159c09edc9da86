// Command snargcli is an end-to-end test driver: it generates a random
// satisfiable R1CS instance of the requested size, runs the generator,
// prover, and verifier in sequence, and reports the boolean outcome. Exit
// code 0 iff the verifier accepted.
package main

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/lattice-snarg/r1cs-ppsnarg/csprng"
	"github.com/lattice-snarg/r1cs-ppsnarg/qap"
	"github.com/lattice-snarg/r1cs-ppsnarg/snarg"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	if os.Getenv("SNARGCLI_DEBUG") != "" {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}

	numConstraints, inputSize, err := parseArgs(os.Args[1:])
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		fmt.Fprintln(os.Stderr, "usage: snargcli n_constraints n_inputs")
		os.Exit(2)
	}

	accepted, err := run(numConstraints, inputSize)
	if err != nil {
		log.Error().Err(err).Msg("snargcli: run failed")
		fmt.Println(false)
		os.Exit(1)
	}

	fmt.Println(accepted)
	if !accepted {
		os.Exit(1)
	}
}

func parseArgs(args []string) (numConstraints, inputSize int, err error) {
	if len(args) != 2 {
		return 0, 0, fmt.Errorf("snargcli: expected 2 arguments, got %d", len(args))
	}
	numConstraints, err = strconv.Atoi(args[0])
	if err != nil || numConstraints < 1 {
		return 0, 0, fmt.Errorf("snargcli: n_constraints must be a positive integer: %q", args[0])
	}
	inputSize, err = strconv.Atoi(args[1])
	if err != nil || inputSize < 1 {
		return 0, 0, fmt.Errorf("snargcli: n_inputs must be a positive integer: %q", args[1])
	}
	return numConstraints, inputSize, nil
}

func run(numConstraints, inputSize int) (bool, error) {
	src := csprng.NewUniformSampler()
	cs, x, z := qap.GenerateR1CSExampleWithFieldInput(src, numConstraints, inputSize)
	w := z[1+inputSize:]

	log.Info().Int("num_constraints", numConstraints).Int("input_size", inputSize).Msg("snargcli: generated random satisfiable instance")

	setupStart := time.Now()
	crs, vk, err := snarg.Generator{}.Setup(cs)
	if err != nil {
		return false, fmt.Errorf("snargcli: generator: %w", err)
	}
	log.Info().Dur("elapsed", time.Since(setupStart)).Msg("snargcli: setup done")

	proveStart := time.Now()
	proof, err := snarg.Prover{}.Prove(crs, x, w)
	if err != nil {
		return false, fmt.Errorf("snargcli: prover: %w", err)
	}
	log.Info().Dur("elapsed", time.Since(proveStart)).Msg("snargcli: prove done")

	verifyStart := time.Now()
	accepted := snarg.Verifier{}.Verify(vk, x, proof)
	log.Info().Dur("elapsed", time.Since(verifyStart)).Bool("accepted", accepted).Msg("snargcli: verify done")

	return accepted, nil
}
