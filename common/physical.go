package common

// All units are SI unless the name says otherwise:
// - Pressure is in pascals (N/m^2)
// - Temperature is in degrees Celsius at the edges, kelvin inside formulas
// - Density is in kg/m^3
// - Speed is in m/s
// - Force is in newtons
// - Length is in meters, area in m^2

// GasConstantAir is the specific gas constant for dry air in (N m)/(kg K).
const GasConstantAir = 287.0

// CelsiusOffset converts Celsius to kelvin. 273, not 273.15.
const CelsiusOffset = 273.0

// SpecificGravityManometerFluid is the manometer fluid's density relative to water.
const SpecificGravityManometerFluid = 0.85

// SpecificWeightWater is the specific weight of water in N/m^3.
const SpecificWeightWater = 9790.0

const ManometerHeightReference = 0.020 // m
const AreaAirfoilReference = 0.1       // m^2

const PressureReference = 98000.0  // Pa
const TemperatureReference = 25.0 // C

// Uncertainty bounds. Pressure is kPa-scaled.
const PressureUncertaintyMin = 75.0
const PressureUncertaintyMax = 101.0
const TemperatureUncertaintyMin = -56.0
const TemperatureUncertaintyMax = 53.0

const PascalsPerKilopascal = 1000.0
