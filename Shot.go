package ballistics

import (
	"math"

	"github.com/huntfield/ballistics/bmath/unit"
)

//Shot bundles everything one solve needs: the weapon and ammunition fired, the atmosphere and
//wind the bullet flies through, and the aim itself. It owns value copies of all of these; nothing
//in the package stores a reference back to a Shot once a solve completes.
type Shot struct {
	weapon        Weapon
	ammunition    Ammunition
	atmosphere    Atmosphere
	wind          []WindInfo
	lookAngle     unit.Angular
	cantAngle     unit.Angular
	targetAzimuth unit.Angular
	latitude      unit.Angular
}

//CreateShot assembles a Shot and validates it against the invariants the integrator relies on:
//muzzle velocity must be positive, the projectile must have a positive weight and a drag table,
//and the look angle must fall strictly between -90 and 90 degrees. wind may be nil, meaning no
//wind over the whole range.
func CreateShot(weapon Weapon, ammunition Ammunition, atmosphere Atmosphere, wind []WindInfo, lookAngle, cantAngle, targetAzimuth, latitude unit.Angular) (Shot, error) {
	if ammunition.MuzzleVelocity().In(unit.VelocityFPS) <= 0 {
		return Shot{}, &SolverInputError{Reason: "muzzle velocity must be greater than zero"}
	}
	if ammunition.Bullet().BulletWeight().In(unit.WeightGrain) <= 0 {
		return Shot{}, &SolverInputError{Reason: "projectile weight must be greater than zero"}
	}
	if ammunition.Bullet().BallisticCoefficient().Table() == 0 {
		return Shot{}, &SolverInputError{Reason: "projectile has no drag table"}
	}
	if math.Abs(lookAngle.Radians()) >= math.Pi/2 {
		return Shot{}, &SolverInputError{Reason: "look angle must be strictly between -90 and 90 degrees"}
	}
	if wind == nil {
		wind = CreateNoWind()
	}
	return Shot{
		weapon:        weapon,
		ammunition:    ammunition,
		atmosphere:    atmosphere,
		wind:          wind,
		lookAngle:     lookAngle,
		cantAngle:     cantAngle,
		targetAzimuth: targetAzimuth,
		latitude:      latitude,
	}, nil
}

//Weapon returns the weapon fired.
func (s Shot) Weapon() Weapon {
	return s.weapon
}

//Ammunition returns the ammunition fired.
func (s Shot) Ammunition() Ammunition {
	return s.ammunition
}

//Atmosphere returns the still-air conditions the shot flies through.
func (s Shot) Atmosphere() Atmosphere {
	return s.atmosphere
}

//Wind returns the shot's wind field segments.
func (s Shot) Wind() []WindInfo {
	return s.wind
}

//LookAngle returns the pitch of the line from shooter to target relative to horizontal.
func (s Shot) LookAngle() unit.Angular {
	return s.lookAngle
}

//CantAngle returns the roll of the weapon about its own bore line.
func (s Shot) CantAngle() unit.Angular {
	return s.cantAngle
}

//TargetAzimuth returns the compass bearing from the shooter to the target, used by the Coriolis
//term.
func (s Shot) TargetAzimuth() unit.Angular {
	return s.targetAzimuth
}

//Latitude returns the shooter's latitude, used by the Coriolis term.
func (s Shot) Latitude() unit.Angular {
	return s.latitude
}

//WithLookAngle returns a copy of the shot with a different look angle, letting a caller re-aim a
//shot without mutating the original Shot. The zero solver does not use it.
func (s Shot) WithLookAngle(lookAngle unit.Angular) (Shot, error) {
	if math.Abs(lookAngle.Radians()) >= math.Pi/2 {
		return Shot{}, &SolverInputError{Reason: "look angle must be strictly between -90 and 90 degrees"}
	}
	s.lookAngle = lookAngle
	return s, nil
}
