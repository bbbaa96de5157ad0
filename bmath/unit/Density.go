package unit

import "fmt"

//DensityKgM3 is the value indicating that the density value is expressed in kilograms per cubic meter
const DensityKgM3 byte = 80

//DensityLbFt3 is the value indicating that the density value is expressed in pounds per cubic foot
const DensityLbFt3 byte = 81

func densityToDefault(value float64, units byte) (float64, error) {
	switch units {
	case DensityKgM3:
		return value, nil
	case DensityLbFt3:
		return value * 16.01846337396, nil
	default:
		return 0, fmt.Errorf("Density: unit %d is not supported", units)
	}
}

func densityFromDefault(value float64, units byte) (float64, error) {
	switch units {
	case DensityKgM3:
		return value, nil
	case DensityLbFt3:
		return value / 16.01846337396, nil
	default:
		return 0, fmt.Errorf("Density: unit %d is not supported", units)
	}
}

//Density keeps an air (or material) density value, stored internally in kilograms per cubic meter
type Density struct {
	value        float64
	defaultUnits byte
}

//CreateDensity creates a density value.
//
//units are measurement unit and may be any value from
//unit.Density* constants.
func CreateDensity(value float64, units byte) (Density, error) {
	v, err := densityToDefault(value, units)
	if err != nil {
		return Density{}, err
	}
	return Density{value: v, defaultUnits: units}, nil
}

//MustCreateDensity creates the density value but panics instead of returning an error
func MustCreateDensity(value float64, units byte) Density {
	v, err := CreateDensity(value, units)
	if err != nil {
		panic(err)
	}
	return v
}

//Value returns the value of the density in the specified units.
func (v Density) Value(units byte) (float64, error) {
	return densityFromDefault(v.value, units)
}

//ValueOrZero returns the value of the density in the specified units, or 0 if unsupported.
func (v Density) ValueOrZero(units byte) float64 {
	x, e := densityFromDefault(v.value, units)
	if e != nil {
		return 0
	}
	return x
}

//Convert converts the value into the specified units.
func (v Density) Convert(units byte) Density {
	return Density{value: v.value, defaultUnits: units}
}

//In converts the value into the specified units.
//Returns 0 if unit conversion is not possible.
func (v Density) In(units byte) float64 {
	return v.ValueOrZero(units)
}

//Units returns the units in which the value is displayed.
func (v Density) Units() byte {
	return v.defaultUnits
}

//KgM3 returns the canonical magnitude of the density, in kilograms per cubic meter.
func (v Density) KgM3() float64 {
	return v.value
}

//Equals reports whether two densities are equal within a relative tolerance of 1e-6.
func (v Density) Equals(o Density) bool {
	return quantityEquals(v.value, o.value)
}

func (v Density) String() string {
	x, e := densityFromDefault(v.value, v.defaultUnits)
	if e != nil {
		return "!error: default units aren't correct"
	}
	var unitName, format string
	var accuracy int
	switch v.defaultUnits {
	case DensityKgM3:
		unitName, accuracy = "kg/m³", 4
	case DensityLbFt3:
		unitName, accuracy = "lb/ft³", 4
	default:
		unitName, accuracy = "?", 6
	}
	format = fmt.Sprintf("%%.%df%%s", accuracy)
	return fmt.Sprintf(format, x, unitName)
}
