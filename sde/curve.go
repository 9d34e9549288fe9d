package sde

import (
	"math"

	"github.com/helioforge/pvsde/ndarray"
	"github.com/helioforge/pvsde/rootfind"
)

// FillFactor computes the fill factor FF = P_mp / (I_sc·V_oc)
// together with the quantities computed on the way.
//
// Division by zero is explicitly not an error here: a zero I_sc·V_oc
// denominator is a legitimate degenerate device state (e.g. no
// photocurrent), and the corresponding elements carry NaN while the
// rest of the batch stays valid. This is the one per-element policy
// in the package; convergence failures still fail the whole call.
func FillFactor(params ModelParameters, opts *rootfind.Options) (FillFactorResult, error) {
	iscA, err := IAtV(ndarray.Scalar(0), params, opts)
	if err != nil {
		return FillFactorResult{}, err
	}

	mp, err := MaxPower(params, opts)
	if err != nil {
		return FillFactorResult{}, err
	}

	ff := make([]float64, iscA.Size())
	for k := range ff {
		if denom := iscA.At(k) * mp.VocV.At(k); denom != 0 {
			ff[k] = mp.PmpW.At(k) / denom
		} else {
			ff[k] = math.NaN()
		}
	}
	ffArr, err := ndarray.New(iscA.Shape(), ff)
	if err != nil {
		return FillFactorResult{}, err
	}

	return FillFactorResult{
		FF:   ffArr,
		IscA: iscA,
		ImpA: mp.ImpA,
		PmpW: mp.PmpW,
		VmpV: mp.VmpV,
		VocV: mp.VocV,
	}, nil
}

// RAtSc computes the terminal resistance at short circuit,
// R_sc = −1 / (dI/dV at V=0), together with the short-circuit
// current.
func RAtSc(params ModelParameters, opts *rootfind.Options) (rScOhm, iScA ndarray.Array, err error) {
	dIdVS, iScA, err := DIDVAtV(ndarray.Scalar(0), params, opts)
	if err != nil {
		return ndarray.Array{}, ndarray.Array{}, err
	}

	rScOhm = ndarray.Apply(func(s float64) float64 { return -1 / s }, dIdVS)

	return rScOhm, iScA, nil
}

// RAtOc computes the terminal resistance at open circuit,
// R_oc = −1 / (dI/dV at V=V_oc), together with the open-circuit
// voltage.
func RAtOc(params ModelParameters, opts *rootfind.Options) (rOcOhm, vOcV ndarray.Array, err error) {
	vOcV, err = VAtI(ndarray.Scalar(0), params, opts)
	if err != nil {
		return ndarray.Array{}, ndarray.Array{}, err
	}

	dIdVS, _, err := DIDVAtV(vOcV, params, opts)
	if err != nil {
		return ndarray.Array{}, ndarray.Array{}, err
	}

	rOcOhm = ndarray.Apply(func(s float64) float64 { return -1 / s }, dIdVS)

	return rOcOhm, vOcV, nil
}

// IVCurveParams assembles the canonical I-V curve descriptor set:
// the fill-factor chain (I_sc, P_mp, I_mp, V_mp, V_oc, FF), the
// terminal resistances at short and open circuit, and the two
// standard auxiliary characterization points V_x = V_oc/2 and
// V_xx = (V_mp+V_oc)/2 with their currents. Pure orchestration over
// the other entry points; fixes the canonical set and order other
// tooling depends on.
func IVCurveParams(params ModelParameters, opts *rootfind.Options) (IVCurveParameters, error) {
	ffRes, err := FillFactor(params, opts)
	if err != nil {
		return IVCurveParameters{}, err
	}

	rScOhm, _, err := RAtSc(params, opts)
	if err != nil {
		return IVCurveParameters{}, err
	}

	vxV := ndarray.Apply(func(voc float64) float64 { return voc / 2 }, ffRes.VocV)
	ixA, err := IAtV(vxV, params, opts)
	if err != nil {
		return IVCurveParameters{}, err
	}

	vxxV, err := ndarray.Zip(func(vmp, voc float64) float64 { return (vmp + voc) / 2 }, ffRes.VmpV, ffRes.VocV)
	if err != nil {
		return IVCurveParameters{}, err
	}
	ixxA, err := IAtV(vxxV, params, opts)
	if err != nil {
		return IVCurveParameters{}, err
	}

	rOcOhm, _, err := RAtOc(params, opts)
	if err != nil {
		return IVCurveParameters{}, err
	}

	return IVCurveParameters{
		IscA:   ffRes.IscA,
		RscOhm: rScOhm,
		VxV:    vxV,
		IxA:    ixA,
		ImpA:   ffRes.ImpA,
		PmpW:   ffRes.PmpW,
		VmpV:   ffRes.VmpV,
		VxxV:   vxxV,
		IxxA:   ixxA,
		RocOhm: rOcOhm,
		VocV:   ffRes.VocV,
		FF:     ffRes.FF,
	}, nil
}
