package thinfilm

import (
	"math"
	"math/cmplx"
)

// IsForwardAngle reports whether a wave traveling at (complex) angle theta
// from normal in a medium with index n is the forward-traveling wave, i.e.
// the one going from the front to the back of the stack. For real n and
// theta the criterion is simply -pi/2 < theta < pi/2; with absorption or
// evanescent decay it is the solution whose amplitude decays into the
// stack. If theta is the forward angle then pi-theta is the backward one.
//
// Cross-checks that fail, and gain media (where the labeling is inherently
// ambiguous), are recorded on rep; rep may be nil.
func IsForwardAngle(n, theta complex128, rep *Report) bool {
	if real(n)*imag(n) < 0 {
		rep.add(GainMediumAmbiguity,
			"medium with gain, incoming vs outgoing beam is ambiguous: n=%v theta=%v", n, theta)
	}
	nct := n * cmplx.Cos(theta)
	var answer bool
	if math.Abs(imag(nct)) > angleTol {
		// Either evanescent decay or a lossy medium. Either way the
		// decaying solution is the forward-moving wave.
		answer = imag(nct) > 0
	} else {
		// Lossless propagation: forward is the positive Poynting direction.
		// Re[n cos(theta)] covers s-polarization, Re[n cos(theta*)]
		// p-polarization; the cross-check below covers both.
		answer = real(nct) > 0
	}
	ncct := n * cmplx.Cos(cmplx.Conj(theta))
	var ok bool
	if answer {
		ok = imag(nct) > -angleTol && real(nct) > -angleTol && real(ncct) > -angleTol
	} else {
		ok = imag(nct) < angleTol && real(nct) < angleTol && real(ncct) < angleTol
	}
	if !ok {
		rep.add(AmbiguousForwardDirection,
			"unclear which beam is incoming vs outgoing, weird index maybe? n=%v theta=%v", n, theta)
	}
	return answer
}

// ListSnell solves complex Snell's law in every layer for incidence angle
// th0 in the first layer: theta_i = asin(n_0 sin(th0) / n_i). The first and
// last entries are forced into the forward-angle convention; intermediate
// layers don't matter, their directionality cancels out of the net result.
func ListSnell(th0 complex128, nList []complex128, rep *Report) []complex128 {
	thetas := make([]complex128, len(nList))
	n0sin := nList[0] * cmplx.Sin(th0)
	for i, n := range nList {
		thetas[i] = cmplx.Asin(n0sin / n)
	}
	last := len(thetas) - 1
	if !IsForwardAngle(nList[0], thetas[0], rep) {
		thetas[0] = complex(math.Pi, 0) - thetas[0]
	}
	if !IsForwardAngle(nList[last], thetas[last], rep) {
		thetas[last] = complex(math.Pi, 0) - thetas[last]
	}
	return thetas
}
