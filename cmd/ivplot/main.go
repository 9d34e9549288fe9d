// Command ivplot characterizes a single-diode PV device: it prints
// the canonical I-V curve parameters for the given model and renders
// the I-V and P-V curves to PNG files.
//
// Usage:
//
//	ivplot -iph 6.0 -irs 1e-7 -n 1.2 -rs 0.5 -gp 0.001 -ns 72 -t 25 -out module
//
// writes module-iv.png and module-pv.png next to the printed table.
package main

import (
	"flag"
	"fmt"
	"log"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/helioforge/pvsde/ndarray"
	"github.com/helioforge/pvsde/rootfind"
	"github.com/helioforge/pvsde/sde"
)

func main() {
	log.SetFlags(0)
	log.SetPrefix("ivplot: ")

	var (
		ns    = flag.Float64("ns", 1, "number of series-connected cells")
		tDegC = flag.Float64("t", 25, "junction temperature [°C]")
		iphA  = flag.Float64("iph", 6.0, "photogenerated current [A]")
		irsA  = flag.Float64("irs", 1e-9, "diode reverse-saturation current [A]")
		n     = flag.Float64("n", 1.0, "diode ideality factor")
		rsOhm = flag.Float64("rs", 0.05, "series resistance [Ohm]")
		gpS   = flag.Float64("gp", 0.001, "shunt conductance [S]")

		points  = flag.Int("points", 200, "samples per rendered curve")
		out     = flag.String("out", "device", "output file prefix")
		absTol  = flag.Float64("tol", rootfind.DefaultAbsTol, "solver absolute tolerance")
		maxIter = flag.Int("maxiter", rootfind.DefaultMaxIter, "solver iteration budget")
	)
	flag.Parse()

	params := sde.ModelParameters{
		Ns:    ndarray.Scalar(*ns),
		TdegC: ndarray.Scalar(*tDegC),
		IphA:  ndarray.Scalar(*iphA),
		IrsA:  ndarray.Scalar(*irsA),
		N:     ndarray.Scalar(*n),
		RsOhm: ndarray.Scalar(*rsOhm),
		GpS:   ndarray.Scalar(*gpS),
	}
	if err := params.Validate(); err != nil {
		log.Fatal(err)
	}
	opts := rootfind.Options{AbsTol: *absTol, MaxIter: *maxIter}

	cp, err := sde.IVCurveParams(params, &opts)
	if err != nil {
		log.Fatal(err)
	}
	printTable(cp)

	if err := renderCurves(params, cp, &opts, *points, *out); err != nil {
		log.Fatal(err)
	}
}

func printTable(cp sde.IVCurveParameters) {
	rows := []struct {
		name, unit string
		value      float64
	}{
		{"Isc", "A", cp.IscA.At(0)},
		{"Rsc", "Ohm", cp.RscOhm.At(0)},
		{"Vx", "V", cp.VxV.At(0)},
		{"Ix", "A", cp.IxA.At(0)},
		{"Imp", "A", cp.ImpA.At(0)},
		{"Pmp", "W", cp.PmpW.At(0)},
		{"Vmp", "V", cp.VmpV.At(0)},
		{"Vxx", "V", cp.VxxV.At(0)},
		{"Ixx", "A", cp.IxxA.At(0)},
		{"Roc", "Ohm", cp.RocOhm.At(0)},
		{"Voc", "V", cp.VocV.At(0)},
		{"FF", "", cp.FF.At(0)},
	}
	for _, r := range rows {
		fmt.Printf("%-4s %12.6g %s\n", r.name, r.value, r.unit)
	}
}

// renderCurves sweeps terminal voltage from short circuit to just
// past open circuit and writes the I-V and P-V traces.
func renderCurves(params sde.ModelParameters, cp sde.IVCurveParameters, opts *rootfind.Options, points int, prefix string) error {
	vocV := cp.VocV.At(0)
	sweep := make([]float64, points)
	for k := range sweep {
		sweep[k] = vocV * 1.02 * float64(k) / float64(points-1)
	}

	iA, err := sde.IAtV(ndarray.FromSlice(sweep), params, opts)
	if err != nil {
		return err
	}

	ivXYs := make(plotter.XYs, points)
	pvXYs := make(plotter.XYs, points)
	for k := range sweep {
		ivXYs[k] = plotter.XY{X: sweep[k], Y: iA.At(k)}
		pvXYs[k] = plotter.XY{X: sweep[k], Y: sweep[k] * iA.At(k)}
	}

	knee := plotter.XYs{{X: cp.VmpV.At(0), Y: cp.ImpA.At(0)}}
	if err := savePlot(prefix+"-iv.png", "I-V curve", "I [A]", ivXYs, knee); err != nil {
		return err
	}

	peak := plotter.XYs{{X: cp.VmpV.At(0), Y: cp.PmpW.At(0)}}

	return savePlot(prefix+"-pv.png", "P-V curve", "P [W]", pvXYs, peak)
}

func savePlot(path, title, yLabel string, curve, marker plotter.XYs) error {
	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = "V [V]"
	p.Y.Label.Text = yLabel

	line, err := plotter.NewLine(curve)
	if err != nil {
		return err
	}
	p.Add(line, plotter.NewGrid())

	dots, err := plotter.NewScatter(marker)
	if err != nil {
		return err
	}
	p.Add(dots)
	p.Legend.Add("max power", dots)

	return p.Save(8*vg.Inch, 5*vg.Inch, path)
}
