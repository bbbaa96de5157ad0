package unit

import (
	"fmt"
	"math"
)

//AngularRadian is the value indicating that the angular value is set in radians
const AngularRadian byte = 0

//AngularDegree is the value indicating that the angular value is set in degrees
const AngularDegree byte = 1

//AngularMOA is the value indicating that the angular value is set in minutes of angle
const AngularMOA byte = 2

//AngularMil is the value indicating that the angular value is set in NATO mils (1/6400 of a turn)
const AngularMil byte = 3

//AngularMRad is the value indicating that the angular value is set in milliradians
const AngularMRad byte = 4

//AngularThousand is the value indicating that the angular value is set in Russian thousandths (1/6000 of a turn)
const AngularThousand byte = 5

//AngularInchesPer100Yd is the value indicating that the angular value is set in inches of drift per 100 yards
const AngularInchesPer100Yd byte = 6

//AngularCmPer100M is the value indicating that the angular value is set in centimeters of drift per 100 meters
const AngularCmPer100M byte = 7

func angularToDefault(value float64, units byte) (float64, error) {
	switch units {
	case AngularRadian:
		return value, nil
	case AngularDegree:
		return value / 180 * math.Pi, nil
	case AngularMOA:
		return value / 180 * math.Pi / 60, nil
	case AngularMil:
		return value / 3200 * math.Pi, nil
	case AngularMRad:
		return value / 1000, nil
	case AngularThousand:
		return value / 3000 * math.Pi, nil
	case AngularInchesPer100Yd:
		return math.Atan(value / 3600), nil
	case AngularCmPer100M:
		return math.Atan(value / 10000), nil
	default:
		return 0, fmt.Errorf("Angular: unit %d is not supported", units)
	}
}

func angularFromDefault(value float64, units byte) (float64, error) {
	switch units {
	case AngularRadian:
		return value, nil
	case AngularDegree:
		return value * 180 / math.Pi, nil
	case AngularMOA:
		return value * 180 / math.Pi * 60, nil
	case AngularMil:
		return value * 3200 / math.Pi, nil
	case AngularMRad:
		return value * 1000, nil
	case AngularThousand:
		return value * 3000 / math.Pi, nil
	case AngularInchesPer100Yd:
		return math.Tan(value) * 3600, nil
	case AngularCmPer100M:
		return math.Tan(value) * 10000, nil
	default:
		return 0, fmt.Errorf("Angular: unit %d is not supported", units)
	}
}

//Angular keeps an angle value, stored internally in radians
type Angular struct {
	value        float64
	defaultUnits byte
}

//CreateAngular creates an angular value.
//
//units are measurement unit and may be any value from
//unit.Angular* constants.
func CreateAngular(value float64, units byte) (Angular, error) {
	v, err := angularToDefault(value, units)
	if err != nil {
		return Angular{}, err
	}
	return Angular{value: v, defaultUnits: units}, nil
}

//MustCreateAngular creates the angular value but panics instead of returning an error
func MustCreateAngular(value float64, units byte) Angular {
	v, err := CreateAngular(value, units)
	if err != nil {
		panic(err)
	}
	return v
}

//Value returns the value of the angle in the specified units.
func (v Angular) Value(units byte) (float64, error) {
	return angularFromDefault(v.value, units)
}

//ValueOrZero returns the value of the angle in the specified units, or 0 if the unit is not supported.
func (v Angular) ValueOrZero(units byte) float64 {
	x, e := angularFromDefault(v.value, units)
	if e != nil {
		return 0
	}
	return x
}

//Convert converts the value into the specified units.
func (v Angular) Convert(units byte) Angular {
	return Angular{value: v.value, defaultUnits: units}
}

//In converts the value into the specified units, returning 0 if the conversion is not possible.
func (v Angular) In(units byte) float64 {
	return v.ValueOrZero(units)
}

//Units returns the units in which the value is displayed.
func (v Angular) Units() byte {
	return v.defaultUnits
}

//Radians returns the canonical magnitude of the angle, in radians.
func (v Angular) Radians() float64 {
	return v.value
}

//Add returns the sum of two angles, preserving the receiver's display unit.
func (v Angular) Add(o Angular) Angular {
	return Angular{value: v.value + o.value, defaultUnits: v.defaultUnits}
}

//Subtract returns the difference of two angles, preserving the receiver's display unit.
func (v Angular) Subtract(o Angular) Angular {
	return Angular{value: v.value - o.value, defaultUnits: v.defaultUnits}
}

//Negate returns the angle with its sign flipped.
func (v Angular) Negate() Angular {
	return Angular{value: -v.value, defaultUnits: v.defaultUnits}
}

//Equals reports whether two angles are equal within a relative tolerance of 1e-6.
func (v Angular) Equals(o Angular) bool {
	return quantityEquals(v.value, o.value)
}

//Less reports whether v is strictly smaller than o, comparing canonical magnitudes.
func (v Angular) Less(o Angular) bool {
	return v.value < o.value
}

func (v Angular) String() string {
	x, e := angularFromDefault(v.value, v.defaultUnits)
	if e != nil {
		return "!error: default units aren't correct"
	}
	var unitName, format string
	var accuracy int
	switch v.defaultUnits {
	case AngularRadian:
		unitName, accuracy = "rad", 6
	case AngularDegree:
		unitName, accuracy = "deg", 4
	case AngularMOA:
		unitName, accuracy = "moa", 2
	case AngularMil:
		unitName, accuracy = "mil", 2
	case AngularMRad:
		unitName, accuracy = "mrad", 2
	case AngularThousand:
		unitName, accuracy = "ths", 2
	case AngularInchesPer100Yd:
		unitName, accuracy = "in/100yd", 2
	case AngularCmPer100M:
		unitName, accuracy = "cm/100m", 2
	default:
		unitName, accuracy = "?", 6
	}
	format = fmt.Sprintf("%%.%df%%s", accuracy)
	return fmt.Sprintf(format, x, unitName)
}
