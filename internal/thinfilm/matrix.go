package thinfilm

// Cplx2x2 is a 2x2 complex matrix, row major. Values are immutable:
// every operation returns a new matrix.
type Cplx2x2 struct {
	A00, A01 complex128
	A10, A11 complex128
}

// Identity2 returns the 2x2 identity matrix.
func Identity2() Cplx2x2 {
	return Cplx2x2{1, 0, 0, 1}
}

// Mul returns m * o.
func (m Cplx2x2) Mul(o Cplx2x2) Cplx2x2 {
	return Cplx2x2{
		m.A00*o.A00 + m.A01*o.A10, m.A00*o.A01 + m.A01*o.A11,
		m.A10*o.A00 + m.A11*o.A10, m.A10*o.A01 + m.A11*o.A11,
	}
}

// DivScalar divides all four entries by s.
func (m Cplx2x2) DivScalar(s complex128) Cplx2x2 {
	return Cplx2x2{m.A00 / s, m.A01 / s, m.A10 / s, m.A11 / s}
}
