// Package physconst is the physical-constants provider for pvsde:
// CODATA-2018 exact constants, Standard Test Condition (STC)
// reference values, and bandgap data for common photovoltaic
// materials.
//
// All values are untyped float64 constants so they participate in
// constant folding at call sites. The two constants the solver core
// depends on are QC (elementary charge) and KBJPerK (Boltzmann
// constant); the rest support characterization workflows built on top
// of the solver.
package physconst
