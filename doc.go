// Package pvsde is your in-memory toolkit for simulating photovoltaic
// devices with the single-diode equation — from raw diode residuals to
// full I-V curve characterization.
//
// 🚀 What is pvsde?
//
//	A modern, broadcast-vectorized, pure-Go library that brings together:
//		• The single-diode residual: I_sum = I_ph − I_rs·expm1(V_d/n·V_th) − G_p·V_d − I
//		• Implicit solves: terminal current I(V) and terminal voltage V(I)
//		• Closed-form derivatives: dI/dV, d²I/dV², dV/dI via the implicit function theorem
//		• Power: P(V), maximum power point, fill factor
//		• Characteristic resistances: Rsc at short circuit, Roc at open circuit
//		• The twelve-parameter I-V curve summary in one call
//
// ✨ Why choose pvsde?
//
//   - NumPy-style broadcasting – mix scalars, sweeps and batches freely
//   - Rock-solid numerics – Halley iteration with closed-form derivatives
//   - Pure Go – no cgo, no hidden deps
//   - Explicit failure – convergence and domain errors, never silent NaNs
//
// Under the hood, everything is organized under five subpackages:
//
//	ndarray/   — shapes, right-aligned broadcasting, element-wise maps
//	rootfind/  — scalar Newton and Halley iteration with shared tolerances
//	physconst/ — CODATA constants, STC reference values, material bandgaps
//	units/     — Celsius/Kelvin conversion
//	sde/       — the single-diode model itself: solves, derivatives, curve parameters
//
// Quick ASCII example:
//
//	 I ▲
//	   │────────╮ (Vmp, Imp)
//	   │         ╲
//	   │          ╲
//	   └───────────●──▶ V
//	              Voc
//
//	a characteristic I-V curve: flat near short circuit, a knee at the
//	maximum power point, then a steep drop to open circuit.
//
// Dive into the sde package docs for the model equations, and cmd/ivplot
// for a ready-made characterization CLI.
//
//	go get github.com/helioforge/pvsde
package pvsde
