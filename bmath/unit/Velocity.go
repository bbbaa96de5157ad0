package unit

import "fmt"

//VelocityMPS is the value indicating that the velocity value is expressed in meters per second
const VelocityMPS byte = 60

//VelocityKMH is the value indicating that the velocity value is expressed in kilometers per hour
const VelocityKMH byte = 61

//VelocityFPS is the value indicating that the velocity value is expressed in feet per second
const VelocityFPS byte = 62

//VelocityMPH is the value indicating that the velocity value is expressed in miles per hour
const VelocityMPH byte = 63

//VelocityKT is the value indicating that the velocity value is expressed in knots
const VelocityKT byte = 64

func velocityToDefault(value float64, units byte) (float64, error) {
	switch units {
	case VelocityMPS:
		return value, nil
	case VelocityKMH:
		return value / 3.6, nil
	case VelocityFPS:
		return value / 3.2808399, nil
	case VelocityMPH:
		return value / 2.23693629, nil
	case VelocityKT:
		return value / 1.94384449, nil
	default:
		return 0, fmt.Errorf("Velocity: unit %d is not supported", units)
	}
}

func velocityFromDefault(value float64, units byte) (float64, error) {
	switch units {
	case VelocityMPS:
		return value, nil
	case VelocityKMH:
		return value * 3.6, nil
	case VelocityFPS:
		return value * 3.2808399, nil
	case VelocityMPH:
		return value * 2.23693629, nil
	case VelocityKT:
		return value * 1.94384449, nil
	default:
		return 0, fmt.Errorf("Velocity: unit %d is not supported", units)
	}
}

//Velocity keeps a velocity or speed value, stored internally in meters per second
type Velocity struct {
	value        float64
	defaultUnits byte
}

//CreateVelocity creates a velocity value.
//
//units are measurement unit and may be any value from
//unit.Velocity* constants.
func CreateVelocity(value float64, units byte) (Velocity, error) {
	v, err := velocityToDefault(value, units)
	if err != nil {
		return Velocity{}, err
	}
	return Velocity{value: v, defaultUnits: units}, nil
}

//MustCreateVelocity creates the velocity value but panics instead of returning an error
func MustCreateVelocity(value float64, units byte) Velocity {
	v, err := CreateVelocity(value, units)
	if err != nil {
		panic(err)
	}
	return v
}

//Value returns the value of the velocity in the specified units.
func (v Velocity) Value(units byte) (float64, error) {
	return velocityFromDefault(v.value, units)
}

//ValueOrZero returns the value of the velocity in the specified units, or 0 if unsupported.
func (v Velocity) ValueOrZero(units byte) float64 {
	x, e := velocityFromDefault(v.value, units)
	if e != nil {
		return 0
	}
	return x
}

//Convert converts the value into the specified units.
func (v Velocity) Convert(units byte) Velocity {
	return Velocity{value: v.value, defaultUnits: units}
}

//In converts the value into the specified units.
//Returns 0 if unit conversion is not possible.
func (v Velocity) In(units byte) float64 {
	return v.ValueOrZero(units)
}

//Units returns the units in which the value is displayed.
func (v Velocity) Units() byte {
	return v.defaultUnits
}

//MPS returns the canonical magnitude of the velocity, in meters per second.
func (v Velocity) MPS() float64 {
	return v.value
}

//Add returns the sum of two velocities, preserving the receiver's display unit.
func (v Velocity) Add(o Velocity) Velocity {
	return Velocity{value: v.value + o.value, defaultUnits: v.defaultUnits}
}

//Subtract returns the difference of two velocities, preserving the receiver's display unit.
func (v Velocity) Subtract(o Velocity) Velocity {
	return Velocity{value: v.value - o.value, defaultUnits: v.defaultUnits}
}

//Negate returns the velocity with its sign flipped.
func (v Velocity) Negate() Velocity {
	return Velocity{value: -v.value, defaultUnits: v.defaultUnits}
}

//Equals reports whether two velocities are equal within a relative tolerance of 1e-6.
func (v Velocity) Equals(o Velocity) bool {
	return quantityEquals(v.value, o.value)
}

//Less reports whether v is strictly smaller than o, comparing canonical magnitudes.
func (v Velocity) Less(o Velocity) bool {
	return v.value < o.value
}

func (v Velocity) String() string {
	x, e := velocityFromDefault(v.value, v.defaultUnits)
	if e != nil {
		return "!error: default units aren't correct"
	}
	var unitName, format string
	var accuracy int
	switch v.defaultUnits {
	case VelocityMPS:
		unitName, accuracy = "m/s", 0
	case VelocityKMH:
		unitName, accuracy = "km/h", 1
	case VelocityFPS:
		unitName, accuracy = "ft/s", 1
	case VelocityMPH:
		unitName, accuracy = "mph", 1
	case VelocityKT:
		unitName, accuracy = "kt", 1
	default:
		unitName, accuracy = "?", 6
	}
	format = fmt.Sprintf("%%.%df%%s", accuracy)
	return fmt.Sprintf(format, x, unitName)
}
