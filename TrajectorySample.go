package ballistics

import (
	"math"

	"github.com/huntfield/ballistics/bmath/unit"
	"github.com/huntfield/ballistics/bmath/vector"
)

//TrajFlag marks why a sample was emitted. A sample may carry more than one flag, e.g. a sample
//that both crosses the sight line and lands on a requested range slice.
type TrajFlag uint16

const (
	//FlagNone marks a sample emitted for no event-specific reason.
	FlagNone TrajFlag = 0
	//FlagZeroUp marks the trajectory rising through the sight line.
	FlagZeroUp TrajFlag = 1 << 0
	//FlagZeroDown marks the trajectory falling through the sight line.
	FlagZeroDown TrajFlag = 1 << 1
	//FlagMach marks a Mach-1 crossing.
	FlagMach TrajFlag = 1 << 2
	//FlagApex marks the top of the trajectory, where vertical velocity changes sign.
	FlagApex TrajFlag = 1 << 3
	//FlagRange marks a sample landing on a requested down-range distance slice.
	FlagRange TrajFlag = 1 << 4
	//FlagMRT marks the minimum-time-to-target sample requested by a solve.
	FlagMRT TrajFlag = 1 << 5
	//FlagMax marks the sample where the configured maximum range was reached.
	FlagMax TrajFlag = 1 << 6
)

//Has reports whether flag is set in the receiver.
func (f TrajFlag) Has(flag TrajFlag) bool {
	return f&flag != 0
}

//TrajectorySample is one point of a solved trajectory.
type TrajectorySample struct {
	time              float64
	position          vector.Vector
	velocityVector    vector.Vector
	speed             unit.Velocity
	mach              float64
	energy            unit.Energy
	dropAngle         unit.Angular
	windageFt         float64
	windageAngle      unit.Angular
	lookDistance      unit.Distance
	referenceHeightFt float64
	densityRatio      float64
	drag              float64
	flags             TrajFlag
}

//Time returns the time elapsed since the shot, in seconds.
func (v TrajectorySample) Time() float64 {
	return v.time
}

//Range returns the down-range distance travelled, measured along the horizontal projection of
//the shot's initial direction.
func (v TrajectorySample) Range() unit.Distance {
	return unit.MustCreateDistance(v.position.X, unit.DistanceFoot)
}

//SlantDistance returns the straight-line distance from the muzzle to the sample, in the vertical
//plane containing the shot (range and drop, ignoring windage drift).
func (v TrajectorySample) SlantDistance() unit.Distance {
	return unit.MustCreateDistance(math.Hypot(v.position.X, v.position.Y), unit.DistanceFoot)
}

//Height returns the signed height above the sight line: positive above, negative below. The
//sight line runs at the shot's look angle, so this is position.Y net of that reference slope,
//not the raw vertical drop in the world frame.
func (v TrajectorySample) Height() unit.Distance {
	return unit.MustCreateDistance(v.position.Y-v.referenceHeightFt, unit.DistanceFoot)
}

//Windage returns the lateral deflection from the vertical plane containing the sight line,
//including spin drift.
func (v TrajectorySample) Windage() unit.Distance {
	return unit.MustCreateDistance(v.windageFt, unit.DistanceFoot)
}

//VelocityVector returns the raw (range, vertical, windage) velocity components, in fps.
func (v TrajectorySample) VelocityVector() vector.Vector {
	return v.velocityVector
}

//Velocity returns the projectile's speed.
func (v TrajectorySample) Velocity() unit.Velocity {
	return v.speed
}

//Mach returns the ratio between the projectile's speed and the local speed of sound.
func (v TrajectorySample) Mach() float64 {
	return v.mach
}

//Energy returns the projectile's kinetic energy.
func (v TrajectorySample) Energy() unit.Energy {
	return v.energy
}

//DropAngle returns the angle, in the vertical plane, between the sight line and the line from the
//muzzle to this sample.
func (v TrajectorySample) DropAngle() unit.Angular {
	return v.dropAngle
}

//WindageAngle returns the angle, in the horizontal plane, between the sight line and the line
//from the muzzle to this sample.
func (v TrajectorySample) WindageAngle() unit.Angular {
	return v.windageAngle
}

//LookDistance returns the distance along the sight line to the point directly above or below the
//sample, computed as range divided by the cosine of the look angle. Unlike SlantDistance, it
//ignores how far the bullet has actually drifted above or below that line.
func (v TrajectorySample) LookDistance() unit.Distance {
	return v.lookDistance
}

//DensityRatio returns the local air density divided by the ICAO standard density, at this
//sample's height.
func (v TrajectorySample) DensityRatio() float64 {
	return v.densityRatio
}

//Drag returns the drag coefficient the model returned for this sample's Mach number.
func (v TrajectorySample) Drag() float64 {
	return v.drag
}

//Flags returns the bitmask of events this sample was emitted for.
func (v TrajectorySample) Flags() TrajFlag {
	return v.flags
}
