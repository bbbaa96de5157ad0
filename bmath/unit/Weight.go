package unit

import "fmt"

//WeightGrain is the value indicating that the weight value is expressed in grains
const WeightGrain byte = 70

//WeightOunce is the value indicating that the weight value is expressed in ounces
const WeightOunce byte = 71

//WeightGram is the value indicating that the weight value is expressed in grams
const WeightGram byte = 72

//WeightPound is the value indicating that the weight value is expressed in pounds
const WeightPound byte = 73

//WeightKilogram is the value indicating that the weight value is expressed in kilograms
const WeightKilogram byte = 74

//WeightNewton is the value indicating that the weight value is expressed in newtons (weight-force at standard gravity)
const WeightNewton byte = 75

func weightToDefault(value float64, units byte) (float64, error) {
	switch units {
	case WeightGrain:
		return value, nil
	case WeightGram:
		return value * 15.4323584, nil
	case WeightKilogram:
		return value * 15432.3584, nil
	case WeightNewton:
		return value / 9.80665 * 15432.3584, nil
	case WeightPound:
		return value / 0.000142857143, nil
	case WeightOunce:
		return value * 437.5, nil
	default:
		return 0, fmt.Errorf("Weight: unit %d is not supported", units)
	}
}

func weightFromDefault(value float64, units byte) (float64, error) {
	switch units {
	case WeightGrain:
		return value, nil
	case WeightGram:
		return value / 15.4323584, nil
	case WeightKilogram:
		return value / 15432.3584, nil
	case WeightNewton:
		return value * 9.80665 / 15432.3584, nil
	case WeightPound:
		return value * 0.000142857143, nil
	case WeightOunce:
		return value / 437.5, nil
	default:
		return 0, fmt.Errorf("Weight: unit %d is not supported", units)
	}
}

//Weight keeps a mass value, stored internally in grains
type Weight struct {
	value        float64
	defaultUnits byte
}

//CreateWeight creates a weight value.
//
//units are measurement unit and may be any value from
//unit.Weight* constants.
func CreateWeight(value float64, units byte) (Weight, error) {
	v, err := weightToDefault(value, units)
	if err != nil {
		return Weight{}, err
	}
	return Weight{value: v, defaultUnits: units}, nil
}

//MustCreateWeight creates the weight value but panics instead of returning an error
func MustCreateWeight(value float64, units byte) Weight {
	v, err := CreateWeight(value, units)
	if err != nil {
		panic(err)
	}
	return v
}

//Value returns the value of the weight in the specified units.
func (v Weight) Value(units byte) (float64, error) {
	return weightFromDefault(v.value, units)
}

//ValueOrZero returns the value of the weight in the specified units, or 0 if unsupported.
func (v Weight) ValueOrZero(units byte) float64 {
	x, e := weightFromDefault(v.value, units)
	if e != nil {
		return 0
	}
	return x
}

//Convert converts the value into the specified units.
func (v Weight) Convert(units byte) Weight {
	return Weight{value: v.value, defaultUnits: units}
}

//In converts the value into the specified units.
//Returns 0 if unit conversion is not possible.
func (v Weight) In(units byte) float64 {
	return v.ValueOrZero(units)
}

//Units returns the units in which the value is displayed.
func (v Weight) Units() byte {
	return v.defaultUnits
}

//Grains returns the canonical magnitude of the weight, in grains.
func (v Weight) Grains() float64 {
	return v.value
}

//Add returns the sum of two weights, preserving the receiver's display unit.
func (v Weight) Add(o Weight) Weight {
	return Weight{value: v.value + o.value, defaultUnits: v.defaultUnits}
}

//Subtract returns the difference of two weights, preserving the receiver's display unit.
func (v Weight) Subtract(o Weight) Weight {
	return Weight{value: v.value - o.value, defaultUnits: v.defaultUnits}
}

//Equals reports whether two weights are equal within a relative tolerance of 1e-6.
func (v Weight) Equals(o Weight) bool {
	return quantityEquals(v.value, o.value)
}

//Less reports whether v is strictly smaller than o, comparing canonical magnitudes.
func (v Weight) Less(o Weight) bool {
	return v.value < o.value
}

func (v Weight) String() string {
	x, e := weightFromDefault(v.value, v.defaultUnits)
	if e != nil {
		return "!error: default units aren't correct"
	}
	var unitName, format string
	var accuracy int
	switch v.defaultUnits {
	case WeightGrain:
		unitName, accuracy = "gr", 0
	case WeightGram:
		unitName, accuracy = "g", 1
	case WeightKilogram:
		unitName, accuracy = "kg", 3
	case WeightNewton:
		unitName, accuracy = "N", 3
	case WeightPound:
		unitName, accuracy = "lb", 3
	case WeightOunce:
		unitName, accuracy = "oz", 1
	default:
		unitName, accuracy = "?", 6
	}
	format = fmt.Sprintf("%%.%df%%s", accuracy)
	return fmt.Sprintf(format, x, unitName)
}
