package thinfilm

type Real = float64

// Wavelengths and thicknesses are metres everywhere in this package.
const (
	Nm = 1e-9
	Um = 1e-6
)

const (
	// machine epsilon for float64
	eps = 2.220446049250313e-16
	// tolerance for "is this imaginary part negligible" checks
	angleTol = 100 * eps
	// Im(delta) = 35 means single-pass transmitted intensity below 1e-30;
	// anything above that only risks overflow in the exp terms
	maxImagDelta = 35.0

	// sweep defaults used when the config leaves them out
	SweepSteps = 101
	SweepPol   = "s"
)
