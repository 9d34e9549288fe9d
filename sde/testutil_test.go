package sde_test

import (
	"github.com/helioforge/pvsde/ndarray"
	"github.com/helioforge/pvsde/sde"
)

// cellParams is the reference single-cell device used throughout the
// package tests: a 6 A silicon cell at STC with non-negligible series
// resistance and shunt conductance.
func cellParams() sde.ModelParameters {
	return sde.ModelParameters{
		Ns:    ndarray.Scalar(1),
		TdegC: ndarray.Scalar(25),
		IphA:  ndarray.Scalar(6.0),
		IrsA:  ndarray.Scalar(1e-9),
		N:     ndarray.Scalar(1.0),
		RsOhm: ndarray.Scalar(0.05),
		GpS:   ndarray.Scalar(0.001),
	}
}

// moduleParams is a 72-cell module-scale device.
func moduleParams() sde.ModelParameters {
	return sde.ModelParameters{
		Ns:    ndarray.Scalar(72),
		TdegC: ndarray.Scalar(25),
		IphA:  ndarray.Scalar(6.0),
		IrsA:  ndarray.Scalar(1e-7),
		N:     ndarray.Scalar(1.2),
		RsOhm: ndarray.Scalar(0.5),
		GpS:   ndarray.Scalar(0.001),
	}
}

// Reference values for cellParams, computed independently with the
// same Halley iteration at the default tolerances.
const (
	refIAt06     = -0.3976876809403602 // I at V=0.6 [A]
	refIscA      = 5.999582343507077   // I at V=0 [A]
	refVocV      = 0.5784665919272246  // V at I=0 [V]
	refVmpV      = 0.3122462069297311  // voltage at max power [V]
	refImpA      = 4.582751443237727   // current at max power [A]
	refPmpW      = 1.4309467554527313  // max power [W]
	refFF        = 0.4123102900337418  // fill factor
	refRscOhm    = 179.2535154159553   // resistance at short circuit [Ω]
	refRocOhm    = 0.05428249106109533 // resistance at open circuit [Ω]
	refIxA       = 4.9086729719575635  // I at V_oc/2 [A]
	refIxxA      = 2.3997235947319466  // I at (V_mp+V_oc)/2 [A]
	refModuleVoc = 39.74223950801559   // V_oc of moduleParams [V]
)
