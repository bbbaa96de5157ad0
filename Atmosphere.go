package ballistics

import (
	"fmt"
	"math"

	"github.com/huntfield/ballistics/bmath/unit"
)

const cIcaoStandardTemperatureR float64 = 518.67
const cIcaoFreezingPointTemperatureR float64 = 459.67
const cTemperatureGradient float64 = -3.56616e-03
const cIcaoStandardHumidity float64 = 0.0
const cPressureExponent float64 = -5.255876
const cSpeedOfSoundConstant float64 = 49.0223
const cA0 float64 = 1.24871
const cA1 float64 = 0.0988438
const cA2 float64 = 0.00152907
const cA3 float64 = -3.07031e-06
const cA4 float64 = 4.21329e-07
const cA5 float64 = 3.342e-04
const cStandardTemperature float64 = 59.0
const cStandardPressure float64 = 29.92
const cStandardDensity float64 = 0.076474

//Atmosphere holds the still-air conditions a shot is fired through: reference altitude,
//pressure, temperature and humidity, plus the density and speed of sound derived from them.
//An Atmosphere is created once per shot and never mutated during integration; the only
//per-altitude-offset recomputation happens through getDensityFactorAndMachForAltitude, which is
//a pure function of the Atmosphere's fields and the altitude argument.
type Atmosphere struct {
	altitude    unit.Distance
	pressure    unit.Pressure
	temperature unit.Temperature
	humidity    float64
	density     float64
	mach        unit.Velocity
	mach1       float64
}

//CreateDefaultAtmosphere returns the ICAO standard atmosphere at sea level, 78% humidity.
func CreateDefaultAtmosphere() Atmosphere {
	a := Atmosphere{
		altitude:    unit.MustCreateDistance(0, unit.DistanceFoot),
		pressure:    unit.MustCreatePressure(cStandardPressure, unit.PressureInHg),
		temperature: unit.MustCreateTemperature(cStandardTemperature, unit.TemperatureFahrenheit),
		humidity:    0.78,
	}
	a.calculate()
	return a
}

//CreateAtmosphere creates an atmosphere from explicit parameters. humidity may be given either
//as a 0..1 ratio or a 0..100 percentage; values outside [0,100] are a DimensionError.
func CreateAtmosphere(altitude unit.Distance, pressure unit.Pressure, temperature unit.Temperature, humidity float64) (Atmosphere, error) {
	if humidity < 0 || humidity > 100 {
		return Atmosphere{}, &unit.DimensionError{Dimension: "Atmosphere.Humidity", Reason: "humidity must be in 0..1 or 0..100 range", Value: humidity}
	}
	if humidity > 1 {
		humidity = humidity / 100
	}

	a := Atmosphere{altitude: altitude, pressure: pressure, temperature: temperature, humidity: humidity}
	a.calculate()
	return a, nil
}

//CreateICAOAtmosphere builds the ICAO standard atmosphere's pressure and temperature at the
//given altitude, applying the standard lapse rate from sea level.
func CreateICAOAtmosphere(altitude unit.Distance) Atmosphere {
	temperature := unit.MustCreateTemperature(
		cIcaoStandardTemperatureR+
			altitude.In(unit.DistanceFoot)*cTemperatureGradient-cIcaoFreezingPointTemperatureR,
		unit.TemperatureFahrenheit)

	pressure := unit.MustCreatePressure(
		cStandardPressure*
			math.Pow(cIcaoStandardTemperatureR/(temperature.In(unit.TemperatureFahrenheit)+
				cIcaoFreezingPointTemperatureR),
				cPressureExponent), unit.PressureInHg)

	a := Atmosphere{
		altitude:    altitude,
		temperature: temperature,
		pressure:    pressure,
		humidity:    cIcaoStandardHumidity,
	}
	a.calculate()
	return a
}

//Altitude returns the atmosphere's reference altitude above sea level.
func (a Atmosphere) Altitude() unit.Distance {
	return a.altitude
}

//Temperature returns the temperature at the reference altitude.
func (a Atmosphere) Temperature() unit.Temperature {
	return a.temperature
}

//Pressure returns the pressure at the reference altitude.
func (a Atmosphere) Pressure() unit.Pressure {
	return a.pressure
}

//Humidity returns relative humidity as a 0..1 ratio.
func (a Atmosphere) Humidity() float64 {
	return a.humidity
}

//HumidityInPercents returns relative humidity as a 0..100 percentage.
func (a Atmosphere) HumidityInPercents() float64 {
	return a.humidity * 100
}

func (a Atmosphere) String() string {
	return fmt.Sprintf("Altitude:%s,Pressure:%s,Temperature:%s,Humidity:%.2f%%",
		a.altitude, a.pressure, a.temperature, a.humidity*100)
}

//DensityFactor returns the ratio of local air density to the ICAO standard density, at the
//atmosphere's reference altitude.
func (a Atmosphere) DensityFactor() float64 {
	return a.density / cStandardDensity
}

//DensityKgM3 returns the local air density in kilograms per cubic meter, at the reference
//altitude, per spec's SI-facing density() operation.
func (a Atmosphere) DensityKgM3() float64 {
	const lbPerFt3ToKgPerM3 = 16.01846337396
	return a.density * lbPerFt3ToKgPerM3
}

//Mach returns the speed of sound at the atmosphere's reference altitude.
func (a Atmosphere) Mach() unit.Velocity {
	return a.mach
}

//calculate0 derives density (lb/ft³) and speed of sound (fps) from a temperature (°F) and
//pressure (inHg), applying the Tetens-approximation vapor-pressure correction for humidity.
func (a *Atmosphere) calculate0(t, p float64) (float64, float64) {
	var hc, et, et0, density, mach float64

	if t > 0.0 {
		et0 = cA0 + t*(cA1+t*(cA2+t*(cA3+t*cA4)))
		et = cA5 * a.humidity * et0
		hc = (p - 0.3783*et) / cStandardPressure
	} else {
		hc = 1.0
	}
	density = cStandardDensity * (cIcaoStandardTemperatureR / (t + cIcaoFreezingPointTemperatureR)) * hc
	mach = math.Sqrt(t+cIcaoFreezingPointTemperatureR) * cSpeedOfSoundConstant
	return density, mach
}

func (a *Atmosphere) calculate() {
	t := a.temperature.In(unit.TemperatureFahrenheit)
	p := a.pressure.In(unit.PressureInHg)

	density, mach := a.calculate0(t, p)

	a.density = density
	a.mach1 = mach
	a.mach = unit.MustCreateVelocity(mach, unit.VelocityFPS)
}

//getDensityFactorAndMachForAltitude re-derives density ratio and local Mach 1 for an altitude
//offset from the atmosphere's reference altitude. Within 30 ft of the reference altitude it
//short-circuits to the already-computed values, since the integrator calls this once per step.
func (a *Atmosphere) getDensityFactorAndMachForAltitude(altitude float64) (float64, float64) {
	orgAltitude := a.altitude.In(unit.DistanceFoot)

	if math.Abs(orgAltitude-altitude) < 30 {
		return a.density / cStandardDensity, a.mach1
	}

	t0 := a.temperature.In(unit.TemperatureFahrenheit)
	p := a.pressure.In(unit.PressureInHg)

	ta := cIcaoStandardTemperatureR + orgAltitude*cTemperatureGradient - cIcaoFreezingPointTemperatureR
	tb := cIcaoStandardTemperatureR + altitude*cTemperatureGradient - cIcaoFreezingPointTemperatureR
	t := t0 + ta - tb
	p = p * math.Pow(t0/t, cPressureExponent)

	density, mach := a.calculate0(t, p)
	return density / cStandardDensity, mach
}
