package sde

import (
	"fmt"
	"math"

	"github.com/helioforge/pvsde/ndarray"
	"github.com/helioforge/pvsde/physconst"
	"github.com/helioforge/pvsde/rootfind"
	"github.com/helioforge/pvsde/units"
)

// element holds the per-element diode coefficients after broadcasting,
// with the ideality factor, cell count, and temperature already folded
// into the modified ideality factor n_mod. All scalar kernels of the
// solver live here; the exported API loops these over the broadcast
// shape.
type element struct {
	iphA  float64 // photogenerated current [A]
	irsA  float64 // reverse-saturation current [A]
	nModV float64 // modified ideality factor n·N_s·k_B·T_K/q [V]
	rsOhm float64 // series resistance [Ω]
	gpS   float64 // shunt conductance [S]
}

// iSumAtIV is the current balance at the diode's anode node; zero
// exactly at a physically consistent operating point.
func (e element) iSumAtIV(iA, vV float64) float64 {
	vDiodeV := vV + iA*e.rsOhm

	return e.iphA - e.irsA*math.Expm1(vDiodeV/e.nModV) - e.gpS*vDiodeV - iA
}

// iAtV solves the balance for terminal current at a fixed voltage.
// Initial condition: the explicit zero-series-resistance solution.
func (e element) iAtV(vV float64, opts rootfind.Options) (float64, error) {
	ic := e.iphA - e.irsA*math.Expm1(vV/e.nModV) - e.gpS*vV

	return rootfind.Halley(func(iA float64) (f, df, d2f float64) {
		expTerm := math.Exp((vV + iA*e.rsOhm) / e.nModV)
		f = e.iSumAtIV(iA, vV)
		df = -e.irsA*e.rsOhm/e.nModV*expTerm - e.gpS*e.rsOhm - 1
		d2f = -e.irsA * (e.rsOhm / e.nModV) * (e.rsOhm / e.nModV) * expTerm

		return f, df, d2f
	}, ic, opts)
}

// vAtI solves the balance for terminal voltage at a fixed current.
// Initial condition: the explicit zero-shunt-conductance solution;
// the caller has already verified I_ph + I_rs − I > 0.
func (e element) vAtI(iA float64, opts rootfind.Options) (float64, error) {
	ic := e.nModV*(math.Log(e.iphA+e.irsA-iA)-math.Log(e.irsA)) - iA*e.rsOhm

	return rootfind.Halley(func(vV float64) (f, df, d2f float64) {
		expTerm := math.Exp((vV + iA*e.rsOhm) / e.nModV)
		f = e.iSumAtIV(iA, vV)
		df = -e.irsA/e.nModV*expTerm - e.gpS
		d2f = -e.irsA / (e.nModV * e.nModV) * expTerm

		return f, df, d2f
	}, ic, opts)
}

// slopeAtIV is dI/dV at a solved (I, V) point, from the implicit
// function theorem applied to the current balance.
func (e element) slopeAtIV(iA, vV float64) float64 {
	expr1 := e.irsA/e.nModV*math.Exp((vV+iA*e.rsOhm)/e.nModV) + e.gpS

	return -expr1 / (1 + e.rsOhm*expr1)
}

// curvatureAtIV is d²I/dV² (and dI/dV) at a solved (I, V) point.
func (e element) curvatureAtIV(iA, vV float64) (d2IdV2, dIdV float64) {
	expr0 := math.Exp((vV + iA*e.rsOhm) / e.nModV)
	expr2 := e.irsA / e.nModV * expr0
	expr3 := expr2 + e.gpS
	expr4 := 1 + e.rsOhm*expr3
	dIdV = -expr3 / expr4
	d2IdV2 = (-expr2 / e.nModV * (1 + dIdV*e.rsOhm)) / expr4

	return d2IdV2, dIdV
}

// reciprocalSlopeAtIV is dV/dI at a solved (I, V) point.
func (e element) reciprocalSlopeAtIV(iA, vV float64) float64 {
	expr1 := e.irsA/e.nModV*math.Exp((vV+iA*e.rsOhm)/e.nModV) + e.gpS

	return -1/expr1 - e.rsOhm
}

// broadcastParams reconciles the free variables xs with the seven
// parameter fields, returning the materialized xs and one element of
// diode coefficients per broadcast position.
func broadcastParams(p ModelParameters, xs ...ndarray.Array) ([]ndarray.Array, []element, error) {
	all := make([]ndarray.Array, 0, len(xs)+7)
	all = append(all, xs...)
	all = append(all, p.Ns, p.TdegC, p.IphA, p.IrsA, p.N, p.RsOhm, p.GpS)
	for i, a := range all {
		if a.Size() == 0 {
			return nil, nil, fmt.Errorf("%w: argument %d is not initialized", ErrBadParameters, i)
		}
	}

	bc, err := ndarray.Broadcast(all...)
	if err != nil {
		return nil, nil, err
	}

	ns, tDegC := bc[len(xs)], bc[len(xs)+1]
	iph, irs := bc[len(xs)+2], bc[len(xs)+3]
	n, rs, gp := bc[len(xs)+4], bc[len(xs)+5], bc[len(xs)+6]

	elems := make([]element, ns.Size())
	for k := range elems {
		vThermal := physconst.KBJPerK * units.CelsiusToKelvin(tDegC.At(k)) / physconst.QC
		elems[k] = element{
			iphA:  iph.At(k),
			irsA:  irs.At(k),
			nModV: n.At(k) * ns.At(k) * vThermal,
			rsOhm: rs.At(k),
			gpS:   gp.At(k),
		}
	}

	return bc[:len(xs)], elems, nil
}

// solverOptions resolves the optional caller configuration.
func solverOptions(opts *rootfind.Options) rootfind.Options {
	if opts == nil {
		return rootfind.DefaultOptions()
	}

	return *opts
}

// convergenceFailure wraps a batch convergence failure: both
// ErrConvergence and the first per-element cause satisfy errors.Is.
func convergenceFailure(op string, failed, total int, first error) error {
	return fmt.Errorf("sde: %s: %d of %d elements did not converge: %w (first failure: %w)",
		op, failed, total, ErrConvergence, first)
}
