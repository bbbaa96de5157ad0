package unit

import "fmt"

//PressureMmHg is the value indicating that the pressure value is expressed in millimeters of mercury
const PressureMmHg byte = 40

//PressureInHg is the value indicating that the pressure value is expressed in inches of mercury
const PressureInHg byte = 41

//PressureBar is the value indicating that the pressure value is expressed in bar
const PressureBar byte = 42

//PressureHP is the value indicating that the pressure value is expressed in hectopascals
const PressureHP byte = 43

//PressurePSI is the value indicating that the pressure value is expressed in pounds per square inch
const PressurePSI byte = 44

//PressurePa is the value indicating that the pressure value is expressed in pascals
const PressurePa byte = 45

func pressureToDefault(value float64, units byte) (float64, error) {
	switch units {
	case PressureMmHg:
		return value, nil
	case PressureInHg:
		return value * 25.4, nil
	case PressureBar:
		return value * 750.061683, nil
	case PressureHP:
		return value * 750.061683 / 1000, nil
	case PressurePSI:
		return value * 51.714924102396, nil
	case PressurePa:
		return value * 750.061683 / 100000, nil
	default:
		return 0, fmt.Errorf("Pressure: unit %d is not supported", units)
	}
}

func pressureFromDefault(value float64, units byte) (float64, error) {
	switch units {
	case PressureMmHg:
		return value, nil
	case PressureInHg:
		return value / 25.4, nil
	case PressureBar:
		return value / 750.061683, nil
	case PressureHP:
		return value / 750.061683 * 1000, nil
	case PressurePSI:
		return value / 51.714924102396, nil
	case PressurePa:
		return value / 750.061683 * 100000, nil
	default:
		return 0, fmt.Errorf("Pressure: unit %d is not supported", units)
	}
}

//Pressure keeps an atmospheric pressure value, stored internally in millimeters of mercury
type Pressure struct {
	value        float64
	defaultUnits byte
}

//CreatePressure creates a pressure value.
//
//units are measurement unit and may be any value from
//unit.Pressure* constants.
func CreatePressure(value float64, units byte) (Pressure, error) {
	v, err := pressureToDefault(value, units)
	if err != nil {
		return Pressure{}, err
	}
	if v <= 0 {
		return Pressure{}, &DimensionError{Dimension: "Pressure", Reason: "pressure must be positive", Value: value}
	}
	return Pressure{value: v, defaultUnits: units}, nil
}

//MustCreatePressure creates the pressure value but panics instead of returning an error
func MustCreatePressure(value float64, units byte) Pressure {
	v, err := CreatePressure(value, units)
	if err != nil {
		panic(err)
	}
	return v
}

//Value returns the value of the pressure in the specified units.
func (v Pressure) Value(units byte) (float64, error) {
	return pressureFromDefault(v.value, units)
}

//ValueOrZero returns the value of the pressure in the specified units, or 0 if unsupported.
func (v Pressure) ValueOrZero(units byte) float64 {
	x, e := pressureFromDefault(v.value, units)
	if e != nil {
		return 0
	}
	return x
}

//Convert converts the value into the specified units.
func (v Pressure) Convert(units byte) Pressure {
	return Pressure{value: v.value, defaultUnits: units}
}

//In converts the value into the specified units.
//Returns 0 if unit conversion is not possible.
func (v Pressure) In(units byte) float64 {
	return v.ValueOrZero(units)
}

//Units returns the units in which the value is displayed.
func (v Pressure) Units() byte {
	return v.defaultUnits
}

//MmHg returns the canonical magnitude of the pressure, in millimeters of mercury.
func (v Pressure) MmHg() float64 {
	return v.value
}

//Pascals returns the pressure in pascals, the SI unit used by the atmosphere model.
func (v Pressure) Pascals() float64 {
	return v.ValueOrZero(PressurePa)
}

//Equals reports whether two pressures are equal within a relative tolerance of 1e-6.
func (v Pressure) Equals(o Pressure) bool {
	return quantityEquals(v.value, o.value)
}

func (v Pressure) String() string {
	x, e := pressureFromDefault(v.value, v.defaultUnits)
	if e != nil {
		return "!error: default units aren't correct"
	}
	var unitName, format string
	var accuracy int
	switch v.defaultUnits {
	case PressureMmHg:
		unitName, accuracy = "mmHg", 0
	case PressureInHg:
		unitName, accuracy = "inHg", 2
	case PressureBar:
		unitName, accuracy = "bar", 2
	case PressureHP:
		unitName, accuracy = "hPa", 4
	case PressurePSI:
		unitName, accuracy = "psi", 4
	case PressurePa:
		unitName, accuracy = "Pa", 1
	default:
		unitName, accuracy = "?", 6
	}
	format = fmt.Sprintf("%%.%df%%s", accuracy)
	return fmt.Sprintf(format, x, unitName)
}
