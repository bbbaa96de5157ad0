package unit

import "fmt"

//DistanceInch is the value indicating that the distance value is set in inches
const DistanceInch byte = 10

//DistanceFoot is the value indicating that the distance value is set in feet
const DistanceFoot byte = 11

//DistanceYard is the value indicating that the distance value is set in yards
const DistanceYard byte = 12

//DistanceMile is the value indicating that the distance value is set in miles
const DistanceMile byte = 13

//DistanceNauticalMile is the value indicating that the distance value is set in nautical miles
const DistanceNauticalMile byte = 14

//DistanceMillimeter is the value indicating that the distance value is set in millimeters
const DistanceMillimeter byte = 15

//DistanceCentimeter is the value indicating that the distance value is set in centimeters
const DistanceCentimeter byte = 16

//DistanceMeter is the value indicating that the distance value is set in meters
const DistanceMeter byte = 17

//DistanceKilometer is the value indicating that the distance value is set in kilometers
const DistanceKilometer byte = 18

//DistanceLine is the value indicating that the distance value is set in lines (1/10 of an inch)
const DistanceLine byte = 19

func distanceToDefault(value float64, units byte) (float64, error) {
	switch units {
	case DistanceInch:
		return value, nil
	case DistanceFoot:
		return value * 12, nil
	case DistanceYard:
		return value * 36, nil
	case DistanceMile:
		return value * 63360, nil
	case DistanceNauticalMile:
		return value * 72913.3858, nil
	case DistanceLine:
		return value / 10, nil
	case DistanceMillimeter:
		return value / 25.4, nil
	case DistanceCentimeter:
		return value / 2.54, nil
	case DistanceMeter:
		return value / 25.4 * 1000, nil
	case DistanceKilometer:
		return value / 25.4 * 1000000, nil
	default:
		return 0, fmt.Errorf("Distance: unit %d is not supported", units)
	}
}

func distanceFromDefault(value float64, units byte) (float64, error) {
	switch units {
	case DistanceInch:
		return value, nil
	case DistanceFoot:
		return value / 12, nil
	case DistanceYard:
		return value / 36, nil
	case DistanceMile:
		return value / 63360, nil
	case DistanceNauticalMile:
		return value / 72913.3858, nil
	case DistanceLine:
		return value * 10, nil
	case DistanceMillimeter:
		return value * 25.4, nil
	case DistanceCentimeter:
		return value * 2.54, nil
	case DistanceMeter:
		return value * 25.4 / 1000, nil
	case DistanceKilometer:
		return value * 25.4 / 1000000, nil
	default:
		return 0, fmt.Errorf("Distance: unit %d is not supported", units)
	}
}

//Distance keeps a distance value, stored internally in inches
type Distance struct {
	value        float64
	defaultUnits byte
}

//CreateDistance creates a distance value.
//
//units are measurement unit and may be any value from
//unit.Distance* constants.
func CreateDistance(value float64, units byte) (Distance, error) {
	v, err := distanceToDefault(value, units)
	if err != nil {
		return Distance{}, err
	}
	return Distance{value: v, defaultUnits: units}, nil
}

//MustCreateDistance creates the distance value but panics instead of returning an error
func MustCreateDistance(value float64, units byte) Distance {
	v, err := CreateDistance(value, units)
	if err != nil {
		panic(err)
	}
	return v
}

//Value returns the value of the distance in the specified units.
func (v Distance) Value(units byte) (float64, error) {
	return distanceFromDefault(v.value, units)
}

//ValueOrZero returns the value of the distance in the specified units, or 0 if unsupported.
func (v Distance) ValueOrZero(units byte) float64 {
	x, e := distanceFromDefault(v.value, units)
	if e != nil {
		return 0
	}
	return x
}

//Convert converts the value into the specified units.
func (v Distance) Convert(units byte) Distance {
	return Distance{value: v.value, defaultUnits: units}
}

//In converts the value into the specified units.
//Returns 0 if unit conversion is not possible.
func (v Distance) In(units byte) float64 {
	return v.ValueOrZero(units)
}

//Units returns the units in which the value is displayed.
func (v Distance) Units() byte {
	return v.defaultUnits
}

//Inches returns the canonical magnitude of the distance, in inches.
func (v Distance) Inches() float64 {
	return v.value
}

//Add returns the sum of two distances, preserving the receiver's display unit.
func (v Distance) Add(o Distance) Distance {
	return Distance{value: v.value + o.value, defaultUnits: v.defaultUnits}
}

//Subtract returns the difference of two distances, preserving the receiver's display unit.
func (v Distance) Subtract(o Distance) Distance {
	return Distance{value: v.value - o.value, defaultUnits: v.defaultUnits}
}

//Negate returns the distance with its sign flipped.
func (v Distance) Negate() Distance {
	return Distance{value: -v.value, defaultUnits: v.defaultUnits}
}

//Equals reports whether two distances are equal within a relative tolerance of 1e-6.
func (v Distance) Equals(o Distance) bool {
	return quantityEquals(v.value, o.value)
}

//Less reports whether v is strictly smaller than o, comparing canonical magnitudes.
func (v Distance) Less(o Distance) bool {
	return v.value < o.value
}

func (v Distance) String() string {
	x, e := distanceFromDefault(v.value, v.defaultUnits)
	if e != nil {
		return "!error: default units aren't correct"
	}
	var unitName, format string
	var accuracy int
	switch v.defaultUnits {
	case DistanceInch:
		unitName, accuracy = "\"", 1
	case DistanceFoot:
		unitName, accuracy = "'", 2
	case DistanceYard:
		unitName, accuracy = "yd", 3
	case DistanceMile:
		unitName, accuracy = "mi", 3
	case DistanceNauticalMile:
		unitName, accuracy = "nm", 3
	case DistanceLine:
		unitName, accuracy = "ln", 1
	case DistanceMillimeter:
		unitName, accuracy = "mm", 0
	case DistanceCentimeter:
		unitName, accuracy = "cm", 1
	case DistanceMeter:
		unitName, accuracy = "m", 2
	case DistanceKilometer:
		unitName, accuracy = "km", 3
	default:
		unitName, accuracy = "?", 6
	}
	format = fmt.Sprintf("%%.%df%%s", accuracy)
	return fmt.Sprintf(format, x, unitName)
}
