package thinfilm

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewStackBoundaries(t *testing.T) {
	s := NewStack(Constant(1, 0), Constant(1.5, 0))
	require.Equal(t, 2, s.NumLayers())
	assert.True(t, math.IsInf(s.Layer(0).Thickness, 1))
	assert.True(t, math.IsInf(s.Layer(1).Thickness, 1))
}

func TestInsertLayerDepositionOrder(t *testing.T) {
	air, glass := Constant(1, 0), Constant(1.52, 0)
	a, b := Constant(1.38, 0), Constant(2.3, 0)

	s := NewStack(air, glass)
	s.InsertLayer(a, 100*Nm)
	s.InsertLayer(b, 50*Nm)

	require.Equal(t, 4, s.NumLayers())
	// last inserted film ends up adjacent to the substrate
	assert.Equal(t, a, s.Layer(1).Index)
	assert.Equal(t, b, s.Layer(2).Index)
	assert.Equal(t, glass, s.Layer(3).Index)
	assert.Equal(t, 100*Nm, s.Layer(1).Thickness)
	assert.Equal(t, 50*Nm, s.Layer(2).Thickness)
	assert.True(t, math.IsInf(s.Layer(0).Thickness, 1))
	assert.True(t, math.IsInf(s.Layer(3).Thickness, 1))
}

func TestStackConstructionPanics(t *testing.T) {
	assert.Panics(t, func() { NewStack(nil, Constant(1, 0)) })
	assert.Panics(t, func() { NewStack(Constant(1, 0), nil) })

	s := NewStack(Constant(1, 0), Constant(1.5, 0))
	assert.Panics(t, func() { s.InsertLayer(Constant(1.4, 0), -1*Nm) })
	assert.Panics(t, func() { s.InsertLayer(Constant(1.4, 0), math.Inf(1)) })
	assert.Panics(t, func() { s.InsertLayer(Constant(1.4, 0), math.NaN()) })
	assert.Panics(t, func() { s.InsertLayer(nil, 10*Nm) })
}

func TestZeroThicknessFilmIsNoop(t *testing.T) {
	bare := NewStack(Constant(1, 0), Constant(1.5, 0))
	coated := NewStack(Constant(1, 0), Constant(1.5, 0))
	coated.InsertLayer(Constant(2.0, 0), 0)

	R0, T0, _ := bare.CoherentTMM(PolS, 0, 550*Nm)
	R1, T1, _ := coated.CoherentTMM(PolS, 0, 550*Nm)
	assert.InDelta(t, R0, R1, 1e-12)
	assert.InDelta(t, T0, T1, 1e-12)
}
