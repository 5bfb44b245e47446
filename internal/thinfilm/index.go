package thinfilm

import (
	"fmt"
	"sort"
)

// RefractiveIndexProvider supplies the complex refractive index n + ik of a
// medium at a given vacuum wavelength (metres). Positive k means absorption.
//
// Implementations must be pure functions of the wavelength: providers are
// shared across stacks and read concurrently during evaluation.
type RefractiveIndexProvider interface {
	GetComplexRefractiveIndex(lambda Real) complex128
}

// ConstantIndex is a wavelength-independent complex refractive index.
type ConstantIndex complex128

func (c ConstantIndex) GetComplexRefractiveIndex(lambda Real) complex128 {
	return complex128(c)
}

// Constant builds a ConstantIndex from index n and extinction coefficient k.
func Constant(n, k Real) ConstantIndex { return ConstantIndex(complex(n, k)) }

// CauchyFormula is Cauchy's dispersion equation
//
//	n(lambda) = A + B/lambda^2 + C/lambda^4
//
// with lambda expressed in micrometres, as the coefficients are
// conventionally tabulated. The extinction coefficient is zero.
type CauchyFormula struct {
	A Real // dimensionless
	B Real // um^2
	C Real // um^4
}

func (f CauchyFormula) GetComplexRefractiveIndex(lambda Real) complex128 {
	um2 := (lambda / Um) * (lambda / Um)
	return complex(f.A+f.B/um2+f.C/(um2*um2), 0)
}

// TableIndex interpolates n and k linearly between tabulated wavelength
// samples. Outside the table the nearest sample is used.
type TableIndex struct {
	lambda []Real
	n      []Real
	k      []Real
}

// NewTableIndex builds a TableIndex from parallel slices. lambda must be
// strictly increasing; k may be nil for a lossless material.
func NewTableIndex(lambda, n, k []Real) (*TableIndex, error) {
	if len(lambda) == 0 || len(n) != len(lambda) {
		return nil, fmt.Errorf("need matching lambda/n samples, got %d/%d", len(lambda), len(n))
	}
	if k != nil && len(k) != len(lambda) {
		return nil, fmt.Errorf("k table length %d does not match %d wavelengths", len(k), len(lambda))
	}
	if !sort.SliceIsSorted(lambda, func(i, j int) bool { return lambda[i] < lambda[j] }) {
		return nil, fmt.Errorf("wavelength samples must be strictly increasing")
	}
	for i := 1; i < len(lambda); i++ {
		if lambda[i] == lambda[i-1] {
			return nil, fmt.Errorf("duplicate wavelength sample %g", lambda[i])
		}
	}
	t := &TableIndex{
		lambda: append([]Real(nil), lambda...),
		n:      append([]Real(nil), n...),
	}
	if k != nil {
		t.k = append([]Real(nil), k...)
	}
	return t, nil
}

func (t *TableIndex) GetComplexRefractiveIndex(lambda Real) complex128 {
	last := len(t.lambda) - 1
	if lambda <= t.lambda[0] {
		return complex(t.n[0], t.kAt(0))
	}
	if lambda >= t.lambda[last] {
		return complex(t.n[last], t.kAt(last))
	}
	j := sort.Search(len(t.lambda), func(i int) bool { return t.lambda[i] >= lambda })
	i := j - 1
	u := (lambda - t.lambda[i]) / (t.lambda[j] - t.lambda[i])
	n := t.n[i] + u*(t.n[j]-t.n[i])
	k := t.kAt(i) + u*(t.kAt(j)-t.kAt(i))
	return complex(n, k)
}

func (t *TableIndex) kAt(i int) Real {
	if t.k == nil {
		return 0
	}
	return t.k[i]
}

// IndexFunc adapts a plain function to the provider interface.
type IndexFunc func(lambda Real) complex128

func (f IndexFunc) GetComplexRefractiveIndex(lambda Real) complex128 { return f(lambda) }
