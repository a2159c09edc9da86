package lwe

import (
	"encoding/binary"
	"fmt"
	"math/big"

	"github.com/lattice-snarg/r1cs-ppsnarg/modring"
)

// MarshalBinary encodes ct as a length-prefixed sequence of big-endian
// coordinates: a uint32 coordinate count, followed by each coordinate as a
// uint32 byte length and its big-endian magnitude.
func (ct Ciphertext) MarshalBinary() ([]byte, error) {
	buf := make([]byte, 4)
	binary.BigEndian.PutUint32(buf, uint32(ct.ctxt.Len()))

	for _, c := range ct.ctxt.Coeffs {
		b := c.Bytes()
		lenBuf := make([]byte, 4)
		binary.BigEndian.PutUint32(lenBuf, uint32(len(b)))
		buf = append(buf, lenBuf...)
		buf = append(buf, b...)
	}
	return buf, nil
}

// UnmarshalBinary decodes a Ciphertext produced by MarshalBinary.
func (ct *Ciphertext) UnmarshalBinary(data []byte) error {
	if len(data) < 4 {
		return fmt.Errorf("lwe: ciphertext header truncated")
	}
	n := int(binary.BigEndian.Uint32(data))
	data = data[4:]

	v := ringQ.NewVector(n)
	for i := 0; i < n; i++ {
		if len(data) < 4 {
			return fmt.Errorf("lwe: ciphertext coordinate %d header truncated", i)
		}
		l := int(binary.BigEndian.Uint32(data))
		data = data[4:]
		if len(data) < l {
			return fmt.Errorf("lwe: ciphertext coordinate %d truncated", i)
		}
		v.Coeffs[i] = big.NewInt(0).SetBytes(data[:l])
		data = data[l:]
	}

	ct.ctxt = v
	return nil
}

// MarshalBinary encodes sk's two matrices A and S, each as a row-major
// sequence of length-prefixed big-endian magnitudes.
func (sk SecretKey) MarshalBinary() ([]byte, error) {
	buf := marshalMatrix(sk.A)
	buf = append(buf, marshalMatrix(sk.S)...)
	return buf, nil
}

// UnmarshalBinary decodes a SecretKey produced by MarshalBinary.
func (sk *SecretKey) UnmarshalBinary(data []byte) error {
	a, rest, err := unmarshalMatrix(data)
	if err != nil {
		return fmt.Errorf("lwe: secret key: A: %w", err)
	}
	s, _, err := unmarshalMatrix(rest)
	if err != nil {
		return fmt.Errorf("lwe: secret key: S: %w", err)
	}
	sk.A = a
	sk.S = s
	return nil
}

func marshalMatrix(m modring.Matrix) []byte {
	buf := make([]byte, 8)
	binary.BigEndian.PutUint32(buf[0:4], uint32(m.Rows))
	binary.BigEndian.PutUint32(buf[4:8], uint32(m.Cols))
	for i := 0; i < m.Rows; i++ {
		for j := 0; j < m.Cols; j++ {
			b := m.Data[i][j].Bytes()
			lenBuf := make([]byte, 4)
			binary.BigEndian.PutUint32(lenBuf, uint32(len(b)))
			buf = append(buf, lenBuf...)
			buf = append(buf, b...)
		}
	}
	return buf
}

func unmarshalMatrix(data []byte) (modring.Matrix, []byte, error) {
	if len(data) < 8 {
		return modring.Matrix{}, nil, fmt.Errorf("matrix header truncated")
	}
	rows := int(binary.BigEndian.Uint32(data[0:4]))
	cols := int(binary.BigEndian.Uint32(data[4:8]))
	data = data[8:]

	m := ringQ.NewMatrix(rows, cols)
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			if len(data) < 4 {
				return modring.Matrix{}, nil, fmt.Errorf("entry (%d,%d) header truncated", i, j)
			}
			l := int(binary.BigEndian.Uint32(data))
			data = data[4:]
			if len(data) < l {
				return modring.Matrix{}, nil, fmt.Errorf("entry (%d,%d) truncated", i, j)
			}
			m.Data[i][j] = big.NewInt(0).SetBytes(data[:l])
			data = data[l:]
		}
	}
	return m, data, nil
}
