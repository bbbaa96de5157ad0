package ballistics

import "github.com/huntfield/ballistics/bmath/unit"

//Projectile keeps description of a projectile.
type Projectile struct {
	ballisticCoefficient BallisticCoefficient
	weight               unit.Weight
	hasDimensions        bool
	bulletDiameter       unit.Distance
	bulletLength         unit.Distance
}

//CreateProjectileWithDimensions creates the description of a projectile with dimensions
//(diameter and length).
//
//Dimensions are only required to take spin drift into account; TwistInfo must also be set on the
//Weapon in that case.
func CreateProjectileWithDimensions(ballisticCoefficient BallisticCoefficient,
	bulletDiameter unit.Distance,
	bulletLength unit.Distance,
	weight unit.Weight) Projectile {

	return Projectile{ballisticCoefficient: ballisticCoefficient,
		hasDimensions:  true,
		bulletDiameter: bulletDiameter,
		bulletLength:   bulletLength,
		weight:         weight}
}

//CreateProjectile creates a projectile description without dimensions.
//
//Without dimensions spin drift cannot be calculated.
func CreateProjectile(ballisticCoefficient BallisticCoefficient, weight unit.Weight) Projectile {
	return Projectile{ballisticCoefficient: ballisticCoefficient, hasDimensions: false, weight: weight}
}

//BallisticCoefficient returns the ballistic coefficient of the projectile.
func (v Projectile) BallisticCoefficient() BallisticCoefficient {
	return v.ballisticCoefficient
}

//BulletWeight returns the weight of the projectile.
func (v Projectile) BulletWeight() unit.Weight {
	return v.weight
}

//BulletDiameter returns the diameter (caliber) of the projectile.
func (v Projectile) BulletDiameter() unit.Distance {
	return v.bulletDiameter
}

//BulletLength returns the length of the bullet.
func (v Projectile) BulletLength() unit.Distance {
	return v.bulletLength
}

//HasDimensions reports whether the projectile carries diameter and length.
func (v Projectile) HasDimensions() bool {
	return v.hasDimensions
}

//SectionalDensity returns weight in pounds divided by the square of diameter in inches.
func (v Projectile) SectionalDensity() (float64, error) {
	if !v.hasDimensions {
		return 0, &SolverInputError{Reason: "projectile has no dimensions to compute sectional density from"}
	}
	diameterInches := v.bulletDiameter.In(unit.DistanceInch)
	if diameterInches <= 0 {
		return 0, &SolverInputError{Reason: "bullet diameter must be greater than zero"}
	}
	return v.weight.In(unit.WeightPound) / (diameterInches * diameterInches), nil
}

//FormFactor returns the ratio of the projectile's sectional density to the sectional density its
//ballistic coefficient implies against its own reference drag table: how the bullet's actual drag
//compares to the standard drag law it is rated against.
func (v Projectile) FormFactor() (float64, error) {
	sd, err := v.SectionalDensity()
	if err != nil {
		return 0, err
	}
	bc := v.ballisticCoefficient.Value()
	if bc <= 0 {
		return 0, &SolverInputError{Reason: "ballistic coefficient must be greater than zero"}
	}
	return sd / bc, nil
}

//Ammunition keeps the description of ammunition (a projectile loaded into a case shell).
type Ammunition struct {
	projectile     Projectile
	muzzleVelocity unit.Velocity
}

//CreateAmmunition creates the description of the ammunition.
func CreateAmmunition(bullet Projectile, muzzleVelocity unit.Velocity) Ammunition {
	return Ammunition{
		projectile:     bullet,
		muzzleVelocity: muzzleVelocity,
	}
}

//Bullet returns the description of the projectile.
func (v Ammunition) Bullet() Projectile {
	return v.projectile
}

//MuzzleVelocity returns the velocity of the projectile at the muzzle.
func (v Ammunition) MuzzleVelocity() unit.Velocity {
	return v.muzzleVelocity
}
