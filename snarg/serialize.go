package snarg

import (
	"encoding/binary"
	"fmt"
	"math/big"

	"github.com/lattice-snarg/r1cs-ppsnarg/field"
	"github.com/lattice-snarg/r1cs-ppsnarg/lwe"
	"github.com/lattice-snarg/r1cs-ppsnarg/modring"
	"github.com/lattice-snarg/r1cs-ppsnarg/qap"
	"github.com/lattice-snarg/r1cs-ppsnarg/querypack"
)

// MarshalBinary encodes crs as a length-prefixed row count followed by each
// row's own ciphertext encoding, then the constraint system.
func (crs CRS) MarshalBinary() ([]byte, error) {
	buf := putUint32(nil, uint32(len(crs.Rows)))
	for i, row := range crs.Rows {
		b, err := row.MarshalBinary()
		if err != nil {
			return nil, fmt.Errorf("snarg: crs: row %d: %w", i, err)
		}
		buf = putUint32(buf, uint32(len(b)))
		buf = append(buf, b...)
	}
	csBytes, err := marshalSystem(crs.ConstraintSystem)
	if err != nil {
		return nil, fmt.Errorf("snarg: crs: constraint system: %w", err)
	}
	buf = append(buf, csBytes...)
	return buf, nil
}

// UnmarshalBinary decodes a CRS produced by MarshalBinary.
func (crs *CRS) UnmarshalBinary(data []byte) error {
	n, data, err := takeUint32(data)
	if err != nil {
		return fmt.Errorf("snarg: crs: %w", err)
	}
	rows := make([]lwe.Ciphertext, n)
	for i := range rows {
		l, rest, err := takeUint32(data)
		if err != nil {
			return fmt.Errorf("snarg: crs: row %d: %w", i, err)
		}
		data = rest
		if uint32(len(data)) < l {
			return fmt.Errorf("snarg: crs: row %d truncated", i)
		}
		if err := rows[i].UnmarshalBinary(data[:l]); err != nil {
			return fmt.Errorf("snarg: crs: row %d: %w", i, err)
		}
		data = data[l:]
	}
	cs, err := unmarshalSystem(data)
	if err != nil {
		return fmt.Errorf("snarg: crs: constraint system: %w", err)
	}
	crs.Rows = rows
	crs.ConstraintSystem = cs
	return nil
}

// MarshalBinary encodes vk: the LWE secret key, the per-query vanishing
// values, the un-masking matrix, and the three public-input prefix tables.
func (vk VK) MarshalBinary() ([]byte, error) {
	var buf []byte
	buf = putUint32(buf, uint32(vk.NumInputs))
	buf = append(buf, marshalElems(vk.Z)...)
	buf = append(buf, marshalMatrix(vk.YInvT)...)
	buf = append(buf, marshalElemTable(vk.APrefix)...)
	buf = append(buf, marshalElemTable(vk.BPrefix)...)
	buf = append(buf, marshalElemTable(vk.CPrefix)...)

	skBytes, err := vk.SK.MarshalBinary()
	if err != nil {
		return nil, fmt.Errorf("snarg: vk: secret key: %w", err)
	}
	buf = putUint32(buf, uint32(len(skBytes)))
	buf = append(buf, skBytes...)
	return buf, nil
}

// UnmarshalBinary decodes a VK produced by MarshalBinary.
func (vk *VK) UnmarshalBinary(data []byte) error {
	numInputs, data, err := takeUint32(data)
	if err != nil {
		return fmt.Errorf("snarg: vk: %w", err)
	}
	z, data, err := unmarshalElems(data)
	if err != nil {
		return fmt.Errorf("snarg: vk: Z: %w", err)
	}
	yInvT, data, err := unmarshalMatrix(data)
	if err != nil {
		return fmt.Errorf("snarg: vk: YInvT: %w", err)
	}
	aPrefix, data, err := unmarshalElemTable(data)
	if err != nil {
		return fmt.Errorf("snarg: vk: APrefix: %w", err)
	}
	bPrefix, data, err := unmarshalElemTable(data)
	if err != nil {
		return fmt.Errorf("snarg: vk: BPrefix: %w", err)
	}
	cPrefix, data, err := unmarshalElemTable(data)
	if err != nil {
		return fmt.Errorf("snarg: vk: CPrefix: %w", err)
	}
	l, data, err := takeUint32(data)
	if err != nil {
		return fmt.Errorf("snarg: vk: secret key: %w", err)
	}
	if uint32(len(data)) < l {
		return fmt.Errorf("snarg: vk: secret key truncated")
	}
	var sk lwe.SecretKey
	if err := sk.UnmarshalBinary(data[:l]); err != nil {
		return fmt.Errorf("snarg: vk: secret key: %w", err)
	}

	vk.NumInputs = int(numInputs)
	vk.Z = z
	vk.YInvT = yInvT
	vk.APrefix = aPrefix
	vk.BPrefix = bPrefix
	vk.CPrefix = cPrefix
	vk.SK = sk
	return nil
}

func putUint32(buf []byte, v uint32) []byte {
	b := make([]byte, 4)
	binary.BigEndian.PutUint32(b, v)
	return append(buf, b...)
}

func takeUint32(data []byte) (uint32, []byte, error) {
	if len(data) < 4 {
		return 0, nil, fmt.Errorf("truncated length header")
	}
	return binary.BigEndian.Uint32(data), data[4:], nil
}

func marshalElems(xs []field.Elem) []byte {
	buf := putUint32(nil, uint32(len(xs)))
	for _, x := range xs {
		buf = putUint32(buf, uint32(x.Uint64()))
	}
	return buf
}

func unmarshalElems(data []byte) ([]field.Elem, []byte, error) {
	n, data, err := takeUint32(data)
	if err != nil {
		return nil, nil, err
	}
	xs := make([]field.Elem, n)
	for i := range xs {
		var v uint32
		v, data, err = takeUint32(data)
		if err != nil {
			return nil, nil, fmt.Errorf("element %d: %w", i, err)
		}
		xs[i] = field.New(uint64(v))
	}
	return xs, data, nil
}

func marshalElemTable(rows [][]field.Elem) []byte {
	buf := putUint32(nil, uint32(len(rows)))
	for _, row := range rows {
		buf = append(buf, marshalElems(row)...)
	}
	return buf
}

func unmarshalElemTable(data []byte) ([][]field.Elem, []byte, error) {
	n, data, err := takeUint32(data)
	if err != nil {
		return nil, nil, err
	}
	rows := make([][]field.Elem, n)
	for i := range rows {
		var row []field.Elem
		row, data, err = unmarshalElems(data)
		if err != nil {
			return nil, nil, fmt.Errorf("row %d: %w", i, err)
		}
		rows[i] = row
	}
	return rows, data, nil
}

func marshalMatrix(m modring.Matrix) []byte {
	buf := putUint32(nil, uint32(m.Rows))
	buf = putUint32(buf, uint32(m.Cols))
	for i := 0; i < m.Rows; i++ {
		for j := 0; j < m.Cols; j++ {
			b := m.Data[i][j].Bytes()
			buf = putUint32(buf, uint32(len(b)))
			buf = append(buf, b...)
		}
	}
	return buf
}

func unmarshalMatrix(data []byte) (modring.Matrix, []byte, error) {
	rows, data, err := takeUint32(data)
	if err != nil {
		return modring.Matrix{}, nil, err
	}
	cols, data, err := takeUint32(data)
	if err != nil {
		return modring.Matrix{}, nil, err
	}
	m := querypack.RingP.NewMatrix(int(rows), int(cols))
	for i := 0; i < int(rows); i++ {
		for j := 0; j < int(cols); j++ {
			l, rest, err := takeUint32(data)
			if err != nil {
				return modring.Matrix{}, nil, fmt.Errorf("entry (%d,%d): %w", i, j, err)
			}
			data = rest
			if uint32(len(data)) < l {
				return modring.Matrix{}, nil, fmt.Errorf("entry (%d,%d) truncated", i, j)
			}
			m.Data[i][j] = big.NewInt(0).SetBytes(data[:l])
			data = data[l:]
		}
	}
	return m, data, nil
}

// marshalSystem encodes a constraint system's constraints, variable count,
// and input count. Term indices and coefficients are written as fixed-width
// big-endian uint32 words (a canonical residue mod p fits in 32 bits), as
// marshalElems writes field elements.
func marshalSystem(cs *qap.System) ([]byte, error) {
	buf := putUint32(nil, uint32(cs.NumVariables))
	buf = putUint32(buf, uint32(cs.NumInputs))
	buf = putUint32(buf, uint32(len(cs.Constraints)))
	for _, ct := range cs.Constraints {
		buf = append(buf, marshalTerms(ct.A)...)
		buf = append(buf, marshalTerms(ct.B)...)
		buf = append(buf, marshalTerms(ct.C)...)
	}
	return buf, nil
}

func unmarshalSystem(data []byte) (*qap.System, error) {
	numVariables, data, err := takeUint32(data)
	if err != nil {
		return nil, err
	}
	numInputs, data, err := takeUint32(data)
	if err != nil {
		return nil, err
	}
	numConstraints, data, err := takeUint32(data)
	if err != nil {
		return nil, err
	}
	cs := &qap.System{
		NumVariables: int(numVariables),
		NumInputs:    int(numInputs),
		Constraints:  make([]qap.Constraint, numConstraints),
	}
	for i := range cs.Constraints {
		var a, b, c []qap.Term
		a, data, err = unmarshalTerms(data)
		if err != nil {
			return nil, fmt.Errorf("constraint %d: A: %w", i, err)
		}
		b, data, err = unmarshalTerms(data)
		if err != nil {
			return nil, fmt.Errorf("constraint %d: B: %w", i, err)
		}
		c, data, err = unmarshalTerms(data)
		if err != nil {
			return nil, fmt.Errorf("constraint %d: C: %w", i, err)
		}
		cs.Constraints[i] = qap.Constraint{A: a, B: b, C: c}
	}
	return cs, nil
}

func marshalTerms(terms []qap.Term) []byte {
	buf := putUint32(nil, uint32(len(terms)))
	for _, t := range terms {
		buf = putUint32(buf, uint32(t.Index))
		buf = putUint32(buf, uint32(t.Coeff.Uint64()))
	}
	return buf
}

func unmarshalTerms(data []byte) ([]qap.Term, []byte, error) {
	n, data, err := takeUint32(data)
	if err != nil {
		return nil, nil, err
	}
	terms := make([]qap.Term, n)
	for i := range terms {
		var idx, coeff uint32
		idx, data, err = takeUint32(data)
		if err != nil {
			return nil, nil, fmt.Errorf("term %d index: %w", i, err)
		}
		coeff, data, err = takeUint32(data)
		if err != nil {
			return nil, nil, fmt.Errorf("term %d coeff: %w", i, err)
		}
		terms[i] = qap.Term{Index: int(idx), Coeff: field.New(uint64(coeff))}
	}
	return terms, data, nil
}
