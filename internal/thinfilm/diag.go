package thinfilm

import (
	"fmt"
)

// Condition classifies the physical edge cases an evaluation can run into.
// None of them abort the computation; they are recorded on the Report and
// the solver carries on with best-effort values.
type Condition uint8

const (
	InvalidIncidenceAngle     Condition = iota // Im(n0 sin th0) above tolerance, or th0 not the forward angle
	AmbiguousForwardDirection                  // forward/backward cross-check failed
	GainMediumAmbiguity                        // Re(n)*Im(n) < 0, direction labels are ill-defined
	NearOpaqueLayerClamped                     // Im(delta) clamped to 35 for numerical stability
)

func (c Condition) String() string {
	switch c {
	case InvalidIncidenceAngle:
		return "invalid_incidence_angle"
	case AmbiguousForwardDirection:
		return "ambiguous_forward_direction"
	case GainMediumAmbiguity:
		return "gain_medium_ambiguity"
	case NearOpaqueLayerClamped:
		return "near_opaque_layer_clamped"
	}
	return fmt.Sprintf("condition(%d)", uint8(c))
}

// Diagnostic is one recorded condition with a human-readable detail line.
type Diagnostic struct {
	Condition Condition
	Detail    string
}

// Report collects the diagnostics of a single evaluation. Every CoherentTMM
// call allocates its own Report, so concurrent evaluations never share
// state; the opacity latch in particular lives here and not process-wide.
type Report struct {
	Diagnostics []Diagnostic

	opacityWarned bool
}

func (r *Report) add(c Condition, format string, args ...interface{}) {
	if r == nil {
		return
	}
	d := Diagnostic{Condition: c, Detail: fmt.Sprintf(format, args...)}
	r.Diagnostics = append(r.Diagnostics, d)
	DebugLog("%s: %s", c, d.Detail)
}

// Has reports whether at least one diagnostic with the given condition was
// recorded.
func (r *Report) Has(c Condition) bool {
	if r == nil {
		return false
	}
	for _, d := range r.Diagnostics {
		if d.Condition == c {
			return true
		}
	}
	return false
}
