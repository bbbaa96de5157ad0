package unit

import "fmt"

//TemperatureFahrenheit is the value indicating that the temperature value is expressed in degrees Fahrenheit
const TemperatureFahrenheit byte = 50

//TemperatureCelsius is the value indicating that the temperature value is expressed in degrees Celsius
const TemperatureCelsius byte = 51

//TemperatureKelvin is the value indicating that the temperature value is expressed in kelvin
const TemperatureKelvin byte = 52

//TemperatureRankin is the value indicating that the temperature value is expressed in degrees Rankine
const TemperatureRankin byte = 53

func temperatureToDefault(value float64, units byte) (float64, error) {
	switch units {
	case TemperatureFahrenheit:
		return value, nil
	case TemperatureRankin:
		return value - 459.67, nil
	case TemperatureCelsius:
		return value*9/5 + 32, nil
	case TemperatureKelvin:
		return (value-273.15)*9/5 + 32, nil
	default:
		return 0, fmt.Errorf("Temperature: unit %d is not supported", units)
	}
}

func temperatureFromDefault(value float64, units byte) (float64, error) {
	switch units {
	case TemperatureFahrenheit:
		return value, nil
	case TemperatureRankin:
		return value + 459.67, nil
	case TemperatureCelsius:
		return (value - 32) * 5 / 9, nil
	case TemperatureKelvin:
		return (value-32)*5/9 + 273.15, nil
	default:
		return 0, fmt.Errorf("Temperature: unit %d is not supported", units)
	}
}

//Temperature keeps a temperature value, stored internally in degrees Fahrenheit
type Temperature struct {
	value        float64
	defaultUnits byte
}

//CreateTemperature creates a temperature value. Returns a DimensionError if the magnitude is at or
//below absolute zero.
//
//units are measurement unit and may be any value from
//unit.Temperature* constants.
func CreateTemperature(value float64, units byte) (Temperature, error) {
	v, err := temperatureToDefault(value, units)
	if err != nil {
		return Temperature{}, err
	}
	if v <= -459.67 {
		return Temperature{}, &DimensionError{Dimension: "Temperature", Reason: "temperature must be above absolute zero", Value: value}
	}
	return Temperature{value: v, defaultUnits: units}, nil
}

//MustCreateTemperature creates the temperature value but panics instead of returning an error
func MustCreateTemperature(value float64, units byte) Temperature {
	v, err := CreateTemperature(value, units)
	if err != nil {
		panic(err)
	}
	return v
}

//Value returns the value of the temperature in the specified units.
func (v Temperature) Value(units byte) (float64, error) {
	return temperatureFromDefault(v.value, units)
}

//ValueOrZero returns the value of the temperature in the specified units, or 0 if unsupported.
func (v Temperature) ValueOrZero(units byte) float64 {
	x, e := temperatureFromDefault(v.value, units)
	if e != nil {
		return 0
	}
	return x
}

//Convert converts the value into the specified units.
func (v Temperature) Convert(units byte) Temperature {
	return Temperature{value: v.value, defaultUnits: units}
}

//In converts the value into the specified units.
//Returns 0 if unit conversion is not possible.
func (v Temperature) In(units byte) float64 {
	return v.ValueOrZero(units)
}

//Units returns the units in which the value is displayed.
func (v Temperature) Units() byte {
	return v.defaultUnits
}

//Kelvin returns the temperature in kelvin, the SI unit used by the atmosphere model.
func (v Temperature) Kelvin() float64 {
	return v.ValueOrZero(TemperatureKelvin)
}

//Equals reports whether two temperatures are equal within a relative tolerance of 1e-6.
func (v Temperature) Equals(o Temperature) bool {
	return quantityEquals(v.value, o.value)
}

func (v Temperature) String() string {
	x, e := temperatureFromDefault(v.value, v.defaultUnits)
	if e != nil {
		return "!error: default units aren't correct"
	}
	var unitName, format string
	var accuracy int
	switch v.defaultUnits {
	case TemperatureFahrenheit:
		unitName, accuracy = "°F", 1
	case TemperatureRankin:
		unitName, accuracy = "°R", 1
	case TemperatureCelsius:
		unitName, accuracy = "°C", 1
	case TemperatureKelvin:
		unitName, accuracy = "°K", 1
	default:
		unitName, accuracy = "?", 6
	}
	format = fmt.Sprintf("%%.%df%%s", accuracy)
	return fmt.Sprintf(format, x, unitName)
}
