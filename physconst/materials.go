package physconst

import "errors"

// ErrUnknownMaterial indicates a material with no recorded bandgap.
var ErrUnknownMaterial = errors.New("physconst: unknown photovoltaic material")

// Material identifies a photovoltaic absorber material.
type Material string

// Recognized photovoltaic materials.
const (
	CIGS    Material = "CIGS"     // Copper Indium Gallium Selenide
	CIS     Material = "CIS"      // Copper Indium diSelenide
	CdTe    Material = "CdTe"     // Cadmium Telluride
	GaAs    Material = "GaAs"     // Gallium Arsenide
	MonoSi  Material = "mono-Si"  // Mono-crystalline Silicon
	MultiSi Material = "multi-Si" // Multi-crystalline Silicon
	PolySi  Material = "poly-Si"  // Poly-crystalline Silicon
	XSi     Material = "x-Si"     // Crystalline Silicon
)

// bandgapEVSTC holds bandgap energy at STC [eV] per material.
// Silicon entries follow De Soto et al. 2006; GaAs follows Kittel,
// Introduction to Solid State Physics, 6th ed., p. 185 (300 K).
var bandgapEVSTC = map[Material]float64{
	CIGS:    1.15,
	CIS:     1.010,
	CdTe:    1.475,
	GaAs:    1.43,
	MonoSi:  1.121,
	MultiSi: 1.121,
	PolySi:  1.121,
	XSi:     1.121,
}

// BandgapEVSTC returns the material's bandgap energy at STC [eV].
func (m Material) BandgapEVSTC() (float64, error) {
	eg, ok := bandgapEVSTC[m]
	if !ok {
		return 0, ErrUnknownMaterial
	}

	return eg, nil
}
