package ballistics

import "github.com/huntfield/ballistics/bmath/unit"

//ZeroInfo is the information about zeroing of the weapon.
type ZeroInfo struct {
	hasAmmunition  bool
	ammunition     Ammunition
	zeroDistance   unit.Distance
	hasAtmosphere  bool
	zeroAtmosphere Atmosphere
}

//HasAmmunition reports whether different ammunition was used to zero.
func (v ZeroInfo) HasAmmunition() bool {
	return v.hasAmmunition
}

//Ammunition returns the ammunition used to zero.
func (v ZeroInfo) Ammunition() Ammunition {
	return v.ammunition
}

//HasAtmosphere reports whether the weapon was zeroed under non-standard conditions.
func (v ZeroInfo) HasAtmosphere() bool {
	return v.hasAtmosphere
}

//Atmosphere returns the conditions at the time of zeroing.
func (v ZeroInfo) Atmosphere() Atmosphere {
	return v.zeroAtmosphere
}

//ZeroDistance returns the distance at which the weapon was zeroed.
func (v ZeroInfo) ZeroDistance() unit.Distance {
	return v.zeroDistance
}

//CreateZeroInfo creates zero information using distance only.
func CreateZeroInfo(distance unit.Distance) ZeroInfo {
	return ZeroInfo{
		hasAmmunition: false,
		hasAtmosphere: false,
		zeroDistance:  distance,
	}
}

//CreateZeroInfoWithAtmosphere creates zero information using distance and conditions.
func CreateZeroInfoWithAtmosphere(distance unit.Distance, atmosphere Atmosphere) ZeroInfo {
	return ZeroInfo{
		hasAmmunition:  false,
		hasAtmosphere:  true,
		zeroAtmosphere: atmosphere,
		zeroDistance:   distance,
	}
}

//CreateZeroInfoWithAnotherAmmo creates zero information using distance and other ammunition.
func CreateZeroInfoWithAnotherAmmo(distance unit.Distance, ammo Ammunition) ZeroInfo {
	return ZeroInfo{
		hasAmmunition: true,
		ammunition:    ammo,
		hasAtmosphere: false,
		zeroDistance:  distance,
	}
}

//CreateZeroInfoWithAnotherAmmoAndAtmosphere creates zero information using distance, other
//conditions and other ammunition.
func CreateZeroInfoWithAnotherAmmoAndAtmosphere(distance unit.Distance, ammo Ammunition, atmosphere Atmosphere) ZeroInfo {
	return ZeroInfo{
		hasAmmunition:  true,
		ammunition:     ammo,
		hasAtmosphere:  true,
		zeroAtmosphere: atmosphere,
		zeroDistance:   distance,
	}
}

//TwistRight selects right-hand rifling twist.
const TwistRight byte = 1

//TwistLeft selects left-hand rifling twist.
const TwistLeft byte = 2

//TwistInfo is the rifling twist information, used only to calculate spin drift.
type TwistInfo struct {
	twistDirection byte
	riflingTwist   unit.Distance
}

//CreateTwist creates a twist. direction must be either TwistRight or TwistLeft.
func CreateTwist(direction byte, twist unit.Distance) TwistInfo {
	return TwistInfo{
		twistDirection: direction,
		riflingTwist:   twist,
	}
}

//Direction returns TwistRight or TwistLeft.
func (v TwistInfo) Direction() byte {
	return v.twistDirection
}

//Twist returns the rifling twist rate, expressed as the distance of one full bore revolution.
func (v TwistInfo) Twist() unit.Distance {
	return v.riflingTwist
}

//Weapon describes the firearm: sight height above the bore, zeroing, optional twist, and the
//click value of its sight adjustments.
type Weapon struct {
	sightHeight      unit.Distance
	zeroInfo         ZeroInfo
	hasTwistInfo     bool
	twist            TwistInfo
	clickValue       unit.Angular
	hasZeroElevation bool
	zeroElevation    unit.Angular
}

//SightHeight returns the height of the sight above the bore centerline.
func (v Weapon) SightHeight() unit.Distance {
	return v.sightHeight
}

//Zero returns the weapon's zeroing information.
func (v Weapon) Zero() ZeroInfo {
	return v.zeroInfo
}

//HasTwist reports whether rifling twist information is set.
func (v Weapon) HasTwist() bool {
	return v.hasTwistInfo
}

//Twist returns the rifling twist information.
func (v Weapon) Twist() TwistInfo {
	return v.twist
}

//ClickValue returns the angular value of one sight click.
func (v Weapon) ClickValue() unit.Angular {
	return v.clickValue
}

//SetClickValue sets the angular value of one sight click.
func (v *Weapon) SetClickValue(click unit.Angular) {
	v.clickValue = click
}

//ZeroElevation returns the barrel elevation the zero solver found, and whether one has been
//cached yet.
func (v Weapon) ZeroElevation() (unit.Angular, bool) {
	return v.zeroElevation, v.hasZeroElevation
}

//SetZeroElevation caches the barrel elevation found by a zero solve, so later shots against the
//same Weapon need not re-solve for it.
func (v *Weapon) SetZeroElevation(elevation unit.Angular) {
	v.zeroElevation = elevation
	v.hasZeroElevation = true
}

//CreateWeapon creates a weapon with no twist info; spin drift will not be calculated.
func CreateWeapon(sightHeight unit.Distance, zeroInfo ZeroInfo) Weapon {
	return Weapon{sightHeight: sightHeight, zeroInfo: zeroInfo, hasTwistInfo: false}
}

//CreateWeaponWithTwist creates a weapon with twist info; spin drift is calculated when the
//Projectile also carries dimensions.
func CreateWeaponWithTwist(sightHeight unit.Distance, zeroInfo ZeroInfo, twist TwistInfo) Weapon {
	return Weapon{sightHeight: sightHeight, zeroInfo: zeroInfo, hasTwistInfo: true, twist: twist}
}
