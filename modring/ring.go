package modring

import "math/big"

// Ring is Z_m for a run-time modulus m. It supplies vector and matrix
// construction and arithmetic for components C2-C4, which must work over
// both the ciphertext modulus q and the plaintext modulus p without sharing
// any global state between the two.
type Ring struct {
	reducer *big.Int
	*Reducer
}

// NewRing creates a Ring over Z_m.
func NewRing(m *big.Int) *Ring {
	return &Ring{
		reducer: big.NewInt(0).Set(m),
		Reducer: NewReducer(m),
	}
}

// Modulus returns m.
func (r *Ring) Modulus() *big.Int {
	return r.reducer
}

// ShallowCopy returns a Ring safe to use concurrently with r.
func (r *Ring) ShallowCopy() *Ring {
	return &Ring{
		reducer: r.reducer,
		Reducer: r.Reducer.ShallowCopy(),
	}
}

// Vector is a vector over Z_m.
type Vector struct {
	Coeffs []*big.Int
}

// NewVector creates a zero vector of length n.
func (r *Ring) NewVector(n int) Vector {
	c := make([]*big.Int, n)
	for i := range c {
		c[i] = big.NewInt(0)
	}
	return Vector{Coeffs: c}
}

// Len returns the vector's dimension.
func (v Vector) Len() int { return len(v.Coeffs) }

// Clone returns a deep copy of v.
func (v Vector) Clone() Vector {
	c := make([]*big.Int, len(v.Coeffs))
	for i := range c {
		c[i] = big.NewInt(0).Set(v.Coeffs[i])
	}
	return Vector{Coeffs: c}
}

// Matrix is a dense matrix over Z_m, stored row-major.
type Matrix struct {
	Rows, Cols int
	Data       [][]*big.Int
}

// NewMatrix creates a zero matrix of the given dimensions.
func (r *Ring) NewMatrix(rows, cols int) Matrix {
	data := make([][]*big.Int, rows)
	for i := range data {
		data[i] = make([]*big.Int, cols)
		for j := range data[i] {
			data[i][j] = big.NewInt(0)
		}
	}
	return Matrix{Rows: rows, Cols: cols, Data: data}
}

// At returns the (i,j) entry.
func (m Matrix) At(i, j int) *big.Int { return m.Data[i][j] }

// Set assigns the (i,j) entry to x (reduced mod the owning ring's modulus by
// the caller; this method does not itself reduce).
func (m Matrix) Set(i, j int, x *big.Int) { m.Data[i][j].Set(x) }

// Identity returns the n x n identity matrix.
func (r *Ring) Identity(n int) Matrix {
	id := r.NewMatrix(n, n)
	for i := 0; i < n; i++ {
		id.Data[i][i].SetInt64(1)
	}
	return id
}

// Zeroize overwrites every entry of m with 0 in place.
func (r *Ring) Zeroize(m Matrix) {
	for i := 0; i < m.Rows; i++ {
		for j := 0; j < m.Cols; j++ {
			m.Data[i][j].SetInt64(0)
		}
	}
}

// Transpose returns the transpose of m.
func (r *Ring) Transpose(m Matrix) Matrix {
	out := r.NewMatrix(m.Cols, m.Rows)
	for i := 0; i < m.Rows; i++ {
		for j := 0; j < m.Cols; j++ {
			out.Data[j][i].Set(m.Data[i][j])
		}
	}
	return out
}

// ScalarMul returns c * m.
func (r *Ring) ScalarMul(c *big.Int, m Matrix) Matrix {
	out := r.NewMatrix(m.Rows, m.Cols)
	tmp := big.NewInt(0)
	for i := 0; i < m.Rows; i++ {
		for j := 0; j < m.Cols; j++ {
			tmp.Mul(m.Data[i][j], c)
			r.Reduce(tmp)
			out.Data[i][j].Set(tmp)
		}
	}
	return out
}

// Add returns a + b.
func (r *Ring) Add(a, b Matrix) Matrix {
	out := r.NewMatrix(a.Rows, a.Cols)
	for i := 0; i < a.Rows; i++ {
		for j := 0; j < a.Cols; j++ {
			out.Data[i][j].Add(a.Data[i][j], b.Data[i][j])
			r.Reduce(out.Data[i][j])
		}
	}
	return out
}

// MulMat returns a * b (matrix-matrix product).
func (r *Ring) MulMat(a, b Matrix) Matrix {
	if a.Cols != b.Rows {
		panic("modring: dimension mismatch in matrix product")
	}
	out := r.NewMatrix(a.Rows, b.Cols)
	acc := big.NewInt(0)
	term := big.NewInt(0)
	for i := 0; i < a.Rows; i++ {
		for j := 0; j < b.Cols; j++ {
			acc.SetInt64(0)
			for k := 0; k < a.Cols; k++ {
				term.Mul(a.Data[i][k], b.Data[k][j])
				acc.Add(acc, term)
			}
			r.Reduce(acc)
			out.Data[i][j].Set(acc)
		}
	}
	return out
}

// MulVec returns a * v (matrix-vector product).
func (r *Ring) MulVec(a Matrix, v Vector) Vector {
	if a.Cols != v.Len() {
		panic("modring: dimension mismatch in matrix-vector product")
	}
	out := r.NewVector(a.Rows)
	acc := big.NewInt(0)
	term := big.NewInt(0)
	for i := 0; i < a.Rows; i++ {
		acc.SetInt64(0)
		for k := 0; k < a.Cols; k++ {
			term.Mul(a.Data[i][k], v.Coeffs[k])
			acc.Add(acc, term)
		}
		r.Reduce(acc)
		out.Coeffs[i].Set(acc)
	}
	return out
}

// AddVec returns u + v.
func (r *Ring) AddVec(u, v Vector) Vector {
	out := r.NewVector(u.Len())
	for i := range out.Coeffs {
		out.Coeffs[i].Add(u.Coeffs[i], v.Coeffs[i])
		r.Reduce(out.Coeffs[i])
	}
	return out
}

// ScalarMulVec returns c * v.
func (r *Ring) ScalarMulVec(c *big.Int, v Vector) Vector {
	out := r.NewVector(v.Len())
	for i := range out.Coeffs {
		out.Coeffs[i].Mul(v.Coeffs[i], c)
		r.Reduce(out.Coeffs[i])
	}
	return out
}
