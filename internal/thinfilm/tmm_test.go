package thinfilm

import (
	"math"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSingleInterfaceNormalIncidence(t *testing.T) {
	// Fresnel: R = |(n0-n1)/(n0+n1)|^2 = 0.04 for air/glass
	s := NewStack(Constant(1, 0), Constant(1.5, 0))
	for _, pol := range []Polarization{PolS, PolP} {
		R, T, rep := s.CoherentTMM(pol, 0, 550*Nm)
		assert.InDelta(t, 0.04, R, 1e-12, "pol %s", pol)
		assert.InDelta(t, 0.96, T, 1e-12, "pol %s", pol)
		assert.Empty(t, rep.Diagnostics)
	}
}

func TestEnergyConservationLossless(t *testing.T) {
	s := NewStack(Constant(1, 0), Constant(1.52, 0))
	s.InsertLayer(Constant(1.38, 0), 110*Nm)
	s.InsertLayer(Constant(2.2, 0), 70*Nm)
	for _, pol := range []Polarization{PolS, PolP} {
		for _, deg := range []Real{0, 17, 33.5, 58, 80} {
			th0 := complex(deg*math.Pi/180, 0)
			for _, lamNm := range []Real{420, 550, 633, 780} {
				R, T, _ := s.CoherentTMM(pol, th0, lamNm*Nm)
				assert.InDelta(t, 1.0, R+T, 1e-9,
					"pol=%s angle=%g lambda=%gnm", pol, deg, lamNm)
			}
		}
	}
}

func TestQuarterWaveAntireflection(t *testing.T) {
	// single film of n = sqrt(n0*nsub) and thickness lambda/(4n) nulls the
	// reflection at the design wavelength
	const lam = 550 * Nm
	n0, nsub := 1.0, 2.25
	nf := math.Sqrt(n0 * nsub)
	s := NewStack(Constant(n0, 0), Constant(nsub, 0))
	s.InsertLayer(Constant(nf, 0), lam/(4*nf))

	R, T, _ := s.CoherentTMM(PolS, 0, lam)
	assert.Less(t, R, 1e-6)
	assert.InDelta(t, 1.0, R+T, 1e-9)

	// off the design wavelength the null goes away
	Roff, _, _ := s.CoherentTMM(PolS, 0, 400*Nm)
	assert.Greater(t, Roff, 1e-4)
}

func TestOpacityClampStaysFinite(t *testing.T) {
	s := NewStack(Constant(1, 0), Constant(1.5, 0))
	s.InsertLayer(Constant(2, 5), 20*Um)
	s.InsertLayer(Constant(3, 4), 15*Um)

	R, T, rep := s.CoherentTMM(PolS, 0, 500*Nm)
	require.True(t, isFinite(R))
	require.True(t, isFinite(T))
	assert.GreaterOrEqual(t, T, 0.0)
	assert.Less(t, T, 1e-25)
	assert.True(t, rep.Has(NearOpaqueLayerClamped))

	// latched: one diagnostic per evaluation even with two opaque layers
	count := 0
	for _, d := range rep.Diagnostics {
		if d.Condition == NearOpaqueLayerClamped {
			count++
		}
	}
	assert.Equal(t, 1, count)
}

func TestPolarizationSplitObliqueOnly(t *testing.T) {
	s := NewStack(Constant(1, 0), Constant(1.52, 0))
	s.InsertLayer(Constant(1.38, 0), 100*Nm)
	s.InsertLayer(Constant(2.3, 0), 60*Nm)

	th := complex(45*math.Pi/180, 0)
	Rs, _, _ := s.CoherentTMM(PolS, th, 550*Nm)
	Rp, _, _ := s.CoherentTMM(PolP, th, 550*Nm)
	assert.Greater(t, math.Abs(Rs-Rp), 1e-6)

	Rs0, _, _ := s.CoherentTMM(PolS, 0, 550*Nm)
	Rp0, _, _ := s.CoherentTMM(PolP, 0, 550*Nm)
	assert.InDelta(t, Rs0, Rp0, 1e-9)
}

func TestBrewsterAngle(t *testing.T) {
	s := NewStack(Constant(1, 0), Constant(1.5, 0))
	thB := complex(math.Atan(1.5), 0)
	Rp, _, _ := s.CoherentTMM(PolP, thB, 633*Nm)
	Rs, _, _ := s.CoherentTMM(PolS, thB, 633*Nm)
	assert.Less(t, Rp, 1e-9)
	assert.Greater(t, Rs, 0.01)
}

func TestTotalInternalReflection(t *testing.T) {
	// glass -> air past the critical angle: everything comes back
	s := NewStack(Constant(1.5, 0), Constant(1, 0))
	th := complex(60*math.Pi/180, 0)
	for _, pol := range []Polarization{PolS, PolP} {
		R, T, _ := s.CoherentTMM(pol, th, 550*Nm)
		assert.InDelta(t, 1.0, R, 1e-9, "pol %s", pol)
		assert.InDelta(t, 0.0, T, 1e-9, "pol %s", pol)
	}
}

func TestAbsorbingFilmLosesEnergy(t *testing.T) {
	s := NewStack(Constant(1, 0), Constant(1.5, 0))
	s.InsertLayer(Constant(1.7, 0.05), 300*Nm)
	R, T, _ := s.CoherentTMM(PolS, 0, 550*Nm)
	assert.Less(t, R+T, 1.0-1e-4)
	assert.Greater(t, R, 0.0)
	assert.Greater(t, T, 0.0)
}

func TestInvalidIncidenceReported(t *testing.T) {
	s := NewStack(Constant(1, 0), Constant(1.5, 0))
	// backward-traveling incidence angle: warn, don't abort
	R, T, rep := s.CoherentTMM(PolS, complex(math.Pi-0.2, 0), 550*Nm)
	assert.True(t, rep.Has(InvalidIncidenceAngle))
	assert.True(t, isFinite(R))
	assert.True(t, isFinite(T))
}

func TestConcurrentEvaluations(t *testing.T) {
	s := NewStack(Constant(1, 0), Constant(1.52, 0))
	s.InsertLayer(Constant(1.38, 0), 100*Nm)

	var wg sync.WaitGroup
	for w := 0; w < 8; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < 200; i++ {
				lam := (400 + Real(i)) * Nm
				R, T, _ := s.CoherentTMM(PolS, 0, lam)
				if !isFinite(R) || !isFinite(T) {
					t.Errorf("non-finite result at lambda=%g", lam)
				}
			}
		}()
	}
	wg.Wait()
}
