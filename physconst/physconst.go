package physconst

// Fundamental constants (CODATA 2018, exact by definition).
const (
	// QC is the elementary charge [C].
	QC = 1.602176634e-19
	// KBJPerK is the Boltzmann constant [J/K].
	KBJPerK = 1.380649e-23
	// KBEVPerK is the Boltzmann constant [eV/K].
	KBEVPerK = 8.617333262e-5
	// CMPerS is the speed of light in vacuum [m/s].
	CMPerS = 299792458.0
	// HJS is the Planck constant [J·s].
	HJS = 6.62607015e-34
)

// Standard Test Condition (STC) reference values.
const (
	// TdegCSTC is the STC junction temperature [°C].
	TdegCSTC = 25.0
	// TKSTC is the STC junction temperature [K].
	TKSTC = TdegCSTC + 273.15
	// GHemiWPerM2STC is the STC hemispherical irradiance [W/m²].
	GHemiWPerM2STC = 1000.0
)

// Bounds on the first-diode ideality factor used when seeding
// characterization fits.
const (
	// NICMin is the lower ideality-factor bound.
	NICMin = 1.0
	// NICMax is the upper ideality-factor bound.
	NICMax = 2.0
)
