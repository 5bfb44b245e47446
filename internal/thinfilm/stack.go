package thinfilm

import (
	"fmt"
	"math"
)

// Layer couples an index model with a physical thickness in metres.
// Thickness is +Inf exactly for the two semi-infinite boundary layers.
type Layer struct {
	Index     RefractiveIndexProvider
	Thickness Real
}

// Stack is an ordered list of layers, incidence side first, exit side last.
// A stack always has at least the two semi-infinite boundary media; films
// are added between them with InsertLayer. Once evaluation starts the stack
// is treated as read-only.
type Stack struct {
	layers []Layer
}

// NewStack builds the minimal two-layer stack: the medium the light comes
// from (top) and the medium it exits into (bottom). Nil providers are a
// programming error and panic.
func NewStack(top, bottom RefractiveIndexProvider) *Stack {
	if top == nil || bottom == nil {
		panic("thinfilm: stack boundary providers must be non-nil")
	}
	inf := math.Inf(1)
	return &Stack{layers: []Layer{{top, inf}, {bottom, inf}}}
}

// InsertLayer adds a film directly above the bottom medium, so repeated
// insertion follows deposition order onto the substrate:
//
//	----------------- top medium
//	----------------- 1st film
//	...
//	----------------- <-- new film goes here
//	----------------- bottom medium
//
// Thickness must be finite and >= 0; anything else is a programming error.
func (s *Stack) InsertLayer(p RefractiveIndexProvider, thickness Real) {
	if p == nil {
		panic("thinfilm: layer provider must be non-nil")
	}
	if !isFinite(thickness) || thickness < 0 {
		panic(fmt.Sprintf("thinfilm: interior layer thickness must be finite and >= 0, got %g", thickness))
	}
	i := len(s.layers) - 1
	s.layers = append(s.layers, Layer{})
	copy(s.layers[i+1:], s.layers[i:])
	s.layers[i] = Layer{Index: p, Thickness: thickness}
}

// NumLayers returns the layer count including the two boundary media.
func (s *Stack) NumLayers() int { return len(s.layers) }

// Layer returns the i-th layer, incidence side first.
func (s *Stack) Layer(i int) Layer { return s.layers[i] }

// indices queries every layer's provider at the given vacuum wavelength.
func (s *Stack) indices(lambda Real) []complex128 {
	n := make([]complex128, len(s.layers))
	for i, l := range s.layers {
		n[i] = l.Index.GetComplexRefractiveIndex(lambda)
	}
	return n
}

// PrintLayers dumps per-layer index and thickness at the given wavelength.
func (s *Stack) PrintLayers(lambda Real) {
	for i, l := range s.layers {
		n := l.Index.GetComplexRefractiveIndex(lambda)
		fmt.Println("----------------------------------------")
		fmt.Printf("%d\tn_i = %.6g%+.6gi\td_i = %.6g (nm)\n", i, real(n), imag(n), l.Thickness/Nm)
	}
	fmt.Println("----------------------------------------")
}
