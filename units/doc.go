// Package units provides the temperature-unit conversions used at the
// photovoltaic model boundary: device datasheets and measurement rigs
// report junction temperature in Celsius, while the thermal-voltage
// term of the diode equation requires Kelvin.
package units
