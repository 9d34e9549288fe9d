package sde

import (
	"errors"
	"fmt"
	"math"

	"github.com/helioforge/pvsde/ndarray"
	"github.com/helioforge/pvsde/units"
)

var (
	// ErrConvergence indicates at least one element of a batch failed
	// to converge; no partial results are returned.
	ErrConvergence = errors.New("sde: solver failed to converge")
	// ErrDomain indicates an initial-condition formula received
	// out-of-domain inputs; surfaced before any iteration starts.
	ErrDomain = errors.New("sde: initial condition outside domain")
	// ErrBadParameters indicates structurally or physically unusable
	// model parameters.
	ErrBadParameters = errors.New("sde: invalid model parameters")
)

// ModelParameters holds the five physical parameters of the
// single-diode equation plus the two structural constants, each a
// broadcastable array. All fields are required; every solver entry
// point broadcasts all seven fields together with its free variable
// to one common shape before evaluating. Fields are never mutated.
type ModelParameters struct {
	Ns    ndarray.Array // number of series-connected cells, positive integer-valued
	TdegC ndarray.Array // junction temperature [°C]
	IphA  ndarray.Array // photogenerated current [A], ≥ 0
	IrsA  ndarray.Array // diode reverse-saturation current [A], > 0
	N     ndarray.Array // diode ideality factor, typically 1–2
	RsOhm ndarray.Array // series resistance [Ω], ≥ 0
	GpS   ndarray.Array // shunt (parallel) conductance [S], ≥ 0
}

// IVData is a paired sample of terminal current and voltage, used as
// the evaluation point of the current-balance residual.
type IVData struct {
	IA ndarray.Array // terminal current [A]
	VV ndarray.Array // terminal voltage [V]
}

// IVCurveParameters is the canonical set of I-V curve descriptors.
// Every field carries the broadcast shape of the originating
// ModelParameters.
type IVCurveParameters struct {
	IscA   ndarray.Array // short-circuit current [A]
	RscOhm ndarray.Array // terminal resistance at short circuit [Ω]
	VxV    ndarray.Array // first auxiliary voltage, V_oc/2 [V]
	IxA    ndarray.Array // current at VxV [A]
	ImpA   ndarray.Array // current at maximum power [A]
	PmpW   ndarray.Array // maximum power [W]
	VmpV   ndarray.Array // voltage at maximum power [V]
	VxxV   ndarray.Array // second auxiliary voltage, (V_mp+V_oc)/2 [V]
	IxxA   ndarray.Array // current at VxxV [A]
	RocOhm ndarray.Array // terminal resistance at open circuit [Ω]
	VocV   ndarray.Array // open-circuit voltage [V]
	FF     ndarray.Array // fill factor, NaN where I_sc·V_oc == 0
}

// MaxPowerResult is the outcome of the maximum-power-point search.
type MaxPowerResult struct {
	PmpW ndarray.Array // maximum power [W]
	ImpA ndarray.Array // current at maximum power [A]
	VmpV ndarray.Array // voltage at maximum power [V]
	VocV ndarray.Array // open-circuit voltage [V]
}

// FillFactorResult bundles the fill factor with the quantities
// computed on the way to it.
type FillFactorResult struct {
	FF   ndarray.Array // fill factor, NaN where I_sc·V_oc == 0
	IscA ndarray.Array // short-circuit current [A]
	ImpA ndarray.Array // current at maximum power [A]
	PmpW ndarray.Array // maximum power [W]
	VmpV ndarray.Array // voltage at maximum power [V]
	VocV ndarray.Array // open-circuit voltage [V]
}

// Validate checks that the parameter fields are populated, mutually
// broadcast-compatible, and inside their physical ranges. The solver
// entry points deliberately do not call Validate: out-of-range
// parameters are legal solver inputs (they simply may not converge),
// and callers probing degenerate devices rely on that. Use Validate
// at ingestion boundaries where physically meaningful parameters are
// a requirement.
func (p ModelParameters) Validate() error {
	fields := []struct {
		name string
		arr  ndarray.Array
		ok   func(float64) bool
		want string
	}{
		{"Ns", p.Ns, func(v float64) bool { return v >= 1 && v == math.Trunc(v) }, "positive integer-valued"},
		{"TdegC", p.TdegC, func(v float64) bool { return v > -units.ZeroCelsiusK }, "above absolute zero"},
		{"IphA", p.IphA, func(v float64) bool { return v >= 0 }, "≥ 0"},
		{"IrsA", p.IrsA, func(v float64) bool { return v > 0 }, "> 0"},
		{"N", p.N, func(v float64) bool { return v > 0 }, "> 0"},
		{"RsOhm", p.RsOhm, func(v float64) bool { return v >= 0 }, "≥ 0"},
		{"GpS", p.GpS, func(v float64) bool { return v >= 0 }, "≥ 0"},
	}

	shapes := make([]ndarray.Shape, 0, len(fields))
	for _, f := range fields {
		if f.arr.Size() == 0 {
			return fmt.Errorf("%w: field %s is not initialized", ErrBadParameters, f.name)
		}
		for i := 0; i < f.arr.Size(); i++ {
			if v := f.arr.At(i); !f.ok(v) || math.IsNaN(v) {
				return fmt.Errorf("%w: field %s must be %s, got %g", ErrBadParameters, f.name, f.want, v)
			}
		}
		shapes = append(shapes, f.arr.Shape())
	}
	if _, err := ndarray.CommonShape(shapes...); err != nil {
		return fmt.Errorf("%w: %v", ErrBadParameters, err)
	}

	return nil
}
