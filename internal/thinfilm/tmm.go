package thinfilm

import (
	"math"
	"math/cmplx"
)

// Polarization selects the Fresnel coefficient family.
type Polarization uint8

const (
	PolS Polarization = iota // E field perpendicular to the plane of incidence
	PolP                     // E field parallel to the plane of incidence
)

func (p Polarization) String() string {
	if p == PolP {
		return "p"
	}
	return "s"
}

// CoherentTMM runs the coherent transfer-matrix method over the stack:
// given a polarization, the (possibly complex) incidence angle th0 in the
// top medium and a vacuum wavelength, it returns the net reflectance and
// transmittance plus the diagnostics collected along the way.
//
// th0 is 0 for normal incidence, pi/2 for glancing. For a dissipative top
// medium th0 should be complex so that n0 sin(th0) stays real. Physical
// edge cases never abort; they are recorded on the returned Report and the
// computation proceeds with best-effort values.
func (s *Stack) CoherentTMM(pol Polarization, th0 complex128, lamVac Real) (reflectance, transmittance Real, rep *Report) {
	if len(s.layers) < 2 {
		panic("thinfilm: stack must have at least two layers")
	}
	if !(lamVac > 0) {
		panic("thinfilm: vacuum wavelength must be positive")
	}
	rep = &Report{}
	num := len(s.layers)
	nList := s.indices(lamVac)

	// Input test: lateral intensity must be constant, and th0 must already
	// be the forward angle in the top medium.
	if math.Abs(imag(nList[0]*cmplx.Sin(th0))) >= angleTol || !IsForwardAngle(nList[0], th0, rep) {
		rep.add(InvalidIncidenceAngle, "bad n0 or th0: n0=%v th0=%v", nList[0], th0)
	}

	thList := ListSnell(th0, nList, rep)

	// kz is the z component of the complex angular wavevector of the
	// forward-moving wave; positive imaginary part means decay.
	kz := make([]complex128, num)
	for i := range nList {
		kz[i] = 2 * math.Pi * nList[i] * cmplx.Cos(thList[i]) / complex(lamVac, 0)
	}

	// delta is the total phase accrued crossing a layer. The boundary media
	// are semi-infinite and accrue none. Nearly opaque layers get their
	// decay clamped: Im(delta)=35 already means single-pass transmission
	// below 1e-30, and larger values blow up the exp terms below.
	delta := make([]complex128, num)
	for i := 1; i < num-1; i++ {
		delta[i] = kz[i] * complex(s.layers[i].Thickness, 0)
		if imag(delta[i]) > maxImagDelta {
			delta[i] = complex(real(delta[i]), maxImagDelta)
			if !rep.opacityWarned {
				rep.opacityWarned = true
				rep.add(NearOpaqueLayerClamped,
					"nearly opaque layer %d made slightly transmissive (1 in 1e30) for numerical stability", i)
			}
		}
	}

	// Fresnel amplitudes for light crossing the interface from layer i into
	// layer i+1.
	tList := make([]complex128, num)
	rList := make([]complex128, num)
	for i := 0; i < num-1; i++ {
		cosi := cmplx.Cos(thList[i])
		cosf := cmplx.Cos(thList[i+1])
		ii := nList[i] * cosi
		if pol == PolS {
			ff := nList[i+1] * cosf
			tList[i] = 2 * ii / (ii + ff)
			rList[i] = (ii - ff) / (ii + ff)
		} else {
			fi := nList[i+1] * cosi
			fo := nList[i] * cosf
			tList[i] = 2 * ii / (fi + fo)
			rList[i] = (fi - fo) / (fi + fo)
		}
	}

	// Per-layer transfer matrix: phase propagation through the layer, then
	// the interface into the next one, composed left to right in physical
	// order with the top interface folded into the first factor.
	mtilde := Identity2()
	for i := 1; i < num-1; i++ {
		phase := Cplx2x2{cmplx.Exp(-1i * delta[i]), 0, 0, cmplx.Exp(1i * delta[i])}
		mtilde = mtilde.Mul(phase.Mul(Cplx2x2{1, rList[i], rList[i], 1}).DivScalar(tList[i]))
	}
	mtilde = Cplx2x2{1, rList[0], rList[0], 1}.DivScalar(tList[0]).Mul(mtilde)

	// Net complex reflection and transmission amplitudes.
	r := mtilde.A10 / mtilde.A00
	t := 1 / mtilde.A00

	ra := cmplx.Abs(r)
	ta := cmplx.Abs(t)
	reflectance = ra * ra

	// The transmitted power picks up the ratio of the exit and entry medium
	// impedance factors; p-polarization conjugates the cosine.
	nI, nF := nList[0], nList[num-1]
	thI, thF := th0, thList[num-1]
	if pol == PolS {
		transmittance = ta * ta * real(nF*cmplx.Cos(thF)) / real(nI*cmplx.Cos(thI))
	} else {
		transmittance = ta * ta * real(nF*cmplx.Conj(cmplx.Cos(thF))) / real(nI*cmplx.Conj(cmplx.Cos(thI)))
	}
	return reflectance, transmittance, rep
}
