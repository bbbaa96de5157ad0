package unit

import "fmt"

//EnergyFootPound is the value indicating that the energy value is expressed in foot-pounds
const EnergyFootPound byte = 30

//EnergyJoule is the value indicating that the energy value is expressed in joules
const EnergyJoule byte = 31

func energyToDefault(value float64, units byte) (float64, error) {
	switch units {
	case EnergyFootPound:
		return value, nil
	case EnergyJoule:
		return value * 0.737562149277, nil
	default:
		return 0, fmt.Errorf("Energy: unit %d is not supported", units)
	}
}

func energyFromDefault(value float64, units byte) (float64, error) {
	switch units {
	case EnergyFootPound:
		return value, nil
	case EnergyJoule:
		return value / 0.737562149277, nil
	default:
		return 0, fmt.Errorf("Energy: unit %d is not supported", units)
	}
}

//Energy keeps a kinetic energy value, stored internally in foot-pounds
type Energy struct {
	value        float64
	defaultUnits byte
}

//CreateEnergy creates an energy value.
//
//units are measurement unit and may be any value from
//unit.Energy* constants.
func CreateEnergy(value float64, units byte) (Energy, error) {
	v, err := energyToDefault(value, units)
	if err != nil {
		return Energy{}, err
	}
	return Energy{value: v, defaultUnits: units}, nil
}

//MustCreateEnergy creates the energy value but panics instead of returning an error
func MustCreateEnergy(value float64, units byte) Energy {
	v, err := CreateEnergy(value, units)
	if err != nil {
		panic(err)
	}
	return v
}

//Value returns the value of the energy in the specified units.
func (v Energy) Value(units byte) (float64, error) {
	return energyFromDefault(v.value, units)
}

//ValueOrZero returns the value of the energy in the specified units, or 0 if unsupported.
func (v Energy) ValueOrZero(units byte) float64 {
	x, e := energyFromDefault(v.value, units)
	if e != nil {
		return 0
	}
	return x
}

//Convert converts the value into the specified units.
func (v Energy) Convert(units byte) Energy {
	return Energy{value: v.value, defaultUnits: units}
}

//In converts the value into the specified units.
//Returns 0 if unit conversion is not possible.
func (v Energy) In(units byte) float64 {
	return v.ValueOrZero(units)
}

//Units returns the units in which the value is displayed.
func (v Energy) Units() byte {
	return v.defaultUnits
}

//Add returns the sum of two energies, preserving the receiver's display unit.
func (v Energy) Add(o Energy) Energy {
	return Energy{value: v.value + o.value, defaultUnits: v.defaultUnits}
}

//Equals reports whether two energies are equal within a relative tolerance of 1e-6.
func (v Energy) Equals(o Energy) bool {
	return quantityEquals(v.value, o.value)
}

func (v Energy) String() string {
	x, e := energyFromDefault(v.value, v.defaultUnits)
	if e != nil {
		return "!error: default units aren't correct"
	}
	var unitName, format string
	var accuracy int
	switch v.defaultUnits {
	case EnergyFootPound:
		unitName, accuracy = "ft·lb", 0
	case EnergyJoule:
		unitName, accuracy = "J", 0
	default:
		unitName, accuracy = "?", 6
	}
	format = fmt.Sprintf("%%.%df%%s", accuracy)
	return fmt.Sprintf(format, x, unitName)
}
