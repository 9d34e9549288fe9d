package units

// ZeroCelsiusK is the Kelvin value of 0 °C.
const ZeroCelsiusK = 273.15

// CelsiusToKelvin converts a temperature from Celsius to Kelvin.
func CelsiusToKelvin(tDegC float64) float64 { return tDegC + ZeroCelsiusK }

// KelvinToCelsius converts a temperature from Kelvin to Celsius.
func KelvinToCelsius(tK float64) float64 { return tK - ZeroCelsiusK }
