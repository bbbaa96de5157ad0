package ballistics

import (
	"math"

	"github.com/huntfield/ballistics/bmath/unit"
	"github.com/huntfield/ballistics/bmath/vector"
)

//WindInfo is one segment of a piecewise-constant wind field: a constant (velocity, direction-from)
//that applies for all down-range distances up to untilDistance.
type WindInfo struct {
	untilDistance unit.Distance
	velocity      unit.Velocity
	direction     unit.Angular
}

//UntilDistance returns the down-range distance at which this segment ends.
func (v WindInfo) UntilDistance() unit.Distance {
	return v.untilDistance
}

//Velocity returns the wind speed of this segment.
func (v WindInfo) Velocity() unit.Velocity {
	return v.velocity
}

//Direction returns the direction of this segment: 0 is wind blowing from behind the shooter toward
//the target (a tailwind), and 90 degrees is wind blowing from the shooter's left to right.
func (v WindInfo) Direction() unit.Angular {
	return v.direction
}

//CreateNoWind returns a single windless segment covering the whole range.
func CreateNoWind() []WindInfo {
	return []WindInfo{{untilDistance: unit.MustCreateDistance(9999, unit.DistanceKilometer)}}
}

//CreateOnlyWindInfo returns a single wind segment covering the whole range.
func CreateOnlyWindInfo(windVelocity unit.Velocity, direction unit.Angular) []WindInfo {
	return []WindInfo{{
		untilDistance: unit.MustCreateDistance(9999, unit.DistanceKilometer),
		velocity:      windVelocity,
		direction:     direction,
	}}
}

//AddWindInfo builds one wind segment ending at untilRange.
func AddWindInfo(untilRange unit.Distance, windVelocity unit.Velocity, direction unit.Angular) WindInfo {
	return WindInfo{untilDistance: untilRange, velocity: windVelocity, direction: direction}
}

//CreateWindInfo assembles an ordered wind field from its segments. The last segment's
//UntilDistance is treated as +∞ regardless of its stored value.
func CreateWindInfo(winds ...WindInfo) []WindInfo {
	return winds
}

//WindScratch holds the per-solve cached segment index for amortized O(1) wind lookups during a
//shot, where down-range distance increases monotonically.
type WindScratch struct {
	lastIndex int
}

//windAt returns the wind segment whose upper bound first exceeds rangeFt, using scratch's cached
//index as a starting point since range only increases during a solve.
func windAt(segments []WindInfo, rangeFt float64, scratch *WindScratch) WindInfo {
	if len(segments) == 0 {
		return WindInfo{}
	}
	i := scratch.lastIndex
	if i >= len(segments) {
		i = len(segments) - 1
	}
	for i < len(segments)-1 && rangeFt >= segments[i].untilDistance.In(unit.DistanceFoot) {
		i++
	}
	scratch.lastIndex = i
	return segments[i]
}

//windToVector converts a wind segment's (velocity, direction-from) into a body-frame vector,
//rotated into the shot's sight-line and cant frame.
func windToVector(sightAngle, cantAngle unit.Angular, wind WindInfo) vector.Vector {
	sightCosine := math.Cos(sightAngle.Radians())
	sightSine := math.Sin(sightAngle.Radians())
	cantCosine := math.Cos(cantAngle.Radians())
	cantSine := math.Sin(cantAngle.Radians())
	rangeVelocity := wind.velocity.MPS() * math.Cos(wind.direction.Radians())
	crossComponent := wind.velocity.MPS() * math.Sin(wind.direction.Radians())
	rangeFactor := -rangeVelocity * sightSine
	return vector.Create(
		rangeVelocity*sightCosine,
		rangeFactor*cantCosine+crossComponent*cantSine,
		crossComponent*cantCosine-rangeFactor*cantSine,
	).MultiplyByConst(unit.MustCreateVelocity(1, unit.VelocityMPS).In(unit.VelocityFPS))
}
