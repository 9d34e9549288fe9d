// Package sde solves the photovoltaic single-diode equation (SDE),
// the five-parameter equivalent-circuit model relating the terminal
// current I and terminal voltage V of a PV cell, module, or string:
//
//	I_ph − I_rs·(exp(V_d/n_mod) − 1) − G_p·V_d − I = 0
//	V_d    = V + I·R_s                 (diode junction voltage)
//	n_mod  = n · N_s · k_B·T_K / q     (scaled thermal voltage)
//
// The relation is implicit — the exponential has no closed-form
// inverse — so terminal current at a voltage (and voltage at a
// current) is computed by Halley iteration on the current balance at
// the diode's anode node, using exact closed-form first and second
// derivatives. No numeric differentiation occurs anywhere in the
// package.
//
// 🚀 What does sde provide?
//
//   - IAtV / VAtI — terminal current at voltage and voltage at
//     current, with analytic initial guesses (zero series resistance
//     and zero shunt conductance, respectively)
//   - DIDVAtV, D2IDV2AtV, DVDIAtI — closed-form derivative curves via
//     the implicit function theorem
//   - PAtV, MaxPower — power curve and the maximum power point,
//     located by a nested root-find on dP/dV = 0
//   - FillFactor, RAtSc, RAtOc — fill factor and the terminal
//     resistances at short and open circuit
//   - IVCurveParams — the canonical twelve-field I-V curve descriptor
//
// ✨ Vectorized evaluation:
//
//	Every operation accepts ndarray values for its free variable and
//	for all seven model-parameter fields. Inputs are reconciled to one
//	common shape by the broadcast rule and each element is solved as
//	an independent scalar problem. Results always carry the common
//	broadcast shape.
//
// ⚙️ Usage:
//
//	import (
//		"github.com/helioforge/pvsde/ndarray"
//		"github.com/helioforge/pvsde/sde"
//	)
//
//	params := sde.ModelParameters{
//		Ns:    ndarray.Scalar(72),
//		TdegC: ndarray.Scalar(25),
//		IphA:  ndarray.Scalar(6.0),
//		IrsA:  ndarray.Scalar(1e-7),
//		N:     ndarray.Scalar(1.2),
//		RsOhm: ndarray.Scalar(0.5),
//		GpS:   ndarray.Scalar(0.001),
//	}
//	iA, err := sde.IAtV(ndarray.Scalar(30.0), params, nil)
//
// Convergence contract:
//
//	Every element of a batch must converge, or the whole call fails
//	with ErrConvergence — a wrong operating point in device physics is
//	worse than a loud failure, so there are no partial results and no
//	silent tolerance relaxation. The one deliberate exception is the
//	fill factor: a zero I_sc·V_oc denominator is a legitimate
//	degenerate device state and yields NaN for that element only.
//
// Errors:
//   - ErrConvergence   — at least one batch element failed to converge.
//   - ErrDomain        — an initial-condition formula received
//     out-of-domain inputs (VAtI above the short-circuit asymptote).
//   - ErrBadParameters — structurally unusable ModelParameters.
package sde
