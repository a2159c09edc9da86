// Package querypack assembles the block-structured linear-PCP query matrix
// from independent QAP instance evaluations and applies the random Y-mask
// that hides individual queries from the CRS rows.
package querypack

import (
	"math/big"

	"github.com/lattice-snarg/r1cs-ppsnarg/field"
	"github.com/lattice-snarg/r1cs-ppsnarg/modring"
)

// PModulus is the plaintext prime as a modring modulus, so the packed query
// matrix and its Y-mask can use package modring's run-time-modulus matrix
// algebra rather than field.Elem arithmetic directly.
var PModulus = big.NewInt(int64(field.Modulus))

// RingP is the Z_p ring the query matrix and its mask live over.
var RingP = modring.NewRing(PModulus)

// Instance is one of the ℓ independent QAP instance evaluations the
// generator gathers before packing, matching qap.InstanceAt's return shape.
type Instance struct {
	A, B, C []field.Elem // length V, one entry per QAP variable
	Z       field.Elem
	HBasis  []field.Elem // length H = deg(quotient poly)+1
}

// Packed holds the result of Pack: the block-structured query matrix and
// the per-query prefixes the verifier needs to fold in the public input.
type Packed struct {
	M                         modring.Matrix
	APrefix, BPrefix, CPrefix [][]field.Elem // each ell x (numInputs+1)
}

func bigFromElem(x field.Elem) *big.Int {
	return big.NewInt(0).SetUint64(x.Uint64())
}

// Pack assembles the R x d query matrix M from ell independent QAP
// instances, where R = (numVariables-numInputs-1) + 3 + H and d = 4*ell,
// per the block layout:
//
//	cols        1..ell    ell+1..2ell  2ell+1..3ell  3ell+1..4ell
//	rows A/B/C  A-slice    B-slice      C-slice       0
//	3 Z-rows    Z*e1^T     Z*e2^T       Z*e3^T        0
//	H-rows      0          0            0             H-slice
//
// The A/B/C slices place instance i's evaluation at variable k into row
// (k - numInputs - 1), skipping the first numInputs+1 coordinates of each
// instance (those are returned separately as the A/B/C prefixes).
func Pack(instances []Instance, numVariables, numInputs int) Packed {
	ell := len(instances)
	h := len(instances[0].HBasis)

	varRows := numVariables - numInputs - 1
	R := varRows + 3 + h
	d := 4 * ell

	M := RingP.NewMatrix(R, d)

	aPrefix := make([][]field.Elem, ell)
	bPrefix := make([][]field.Elem, ell)
	cPrefix := make([][]field.Elem, ell)

	zRowA := varRows
	zRowB := varRows + 1
	zRowC := varRows + 2
	hRowBase := varRows + 3

	for i, inst := range instances {
		aPrefix[i] = append([]field.Elem(nil), inst.A[:numInputs+1]...)
		bPrefix[i] = append([]field.Elem(nil), inst.B[:numInputs+1]...)
		cPrefix[i] = append([]field.Elem(nil), inst.C[:numInputs+1]...)

		for row, k := 0, numInputs+1; k < numVariables; row, k = row+1, k+1 {
			M.Data[row][i].Set(bigFromElem(inst.A[k]))
			M.Data[row][ell+i].Set(bigFromElem(inst.B[k]))
			M.Data[row][2*ell+i].Set(bigFromElem(inst.C[k]))
		}

		M.Data[zRowA][i].Set(bigFromElem(inst.Z))
		M.Data[zRowB][ell+i].Set(bigFromElem(inst.Z))
		M.Data[zRowC][2*ell+i].Set(bigFromElem(inst.Z))

		for j := 0; j < h; j++ {
			M.Data[hRowBase+j][3*ell+i].Set(bigFromElem(inst.HBasis[j]))
		}
	}

	return Packed{M: M, APrefix: aPrefix, BPrefix: bPrefix, CPrefix: cPrefix}
}
