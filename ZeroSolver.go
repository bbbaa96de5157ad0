package ballistics

import (
	"math"

	"github.com/huntfield/ballistics/bmath/unit"
)

//SolveZero finds the barrel elevation at which ammunition fired from weapon crosses the sight
//line at zeroDistance, using engine as the oracle that turns a trial elevation into a trajectory.
//It caches the result onto a copy of weapon via SetZeroElevation and returns both.
//
//Method: bracketed secant with bisection fallback, per the elevation root-finding routine this
//package documents in its zero-solver section. The search variable is the zero elevation, which
//Engine adds to the look angle, so the initial bracket [0, 30 mrad] spans barrel angles from the
//sight line to 30 mrad above it; its upper end doubles geometrically until the endpoints disagree
//in sign or it exceeds 60 degrees.
func SolveZero(engine *Engine, weapon Weapon, ammunition Ammunition, atmosphere Atmosphere, zeroDistance unit.Distance, lookAngle unit.Angular, cfg Config) (Weapon, unit.Angular, error) {
	heightAt := func(elevation float64) (float64, error) {
		trial := weapon
		trial.SetZeroElevation(unit.MustCreateAngular(elevation, unit.AngularRadian))
		shot, err := CreateShot(trial, ammunition, atmosphere, nil,
			lookAngle,
			unit.MustCreateAngular(0, unit.AngularRadian),
			unit.MustCreateAngular(0, unit.AngularRadian),
			unit.MustCreateAngular(0, unit.AngularRadian))
		if err != nil {
			return 0, err
		}
		maxRange := unit.MustCreateDistance(zeroDistance.In(unit.DistanceFoot)*1.05, unit.DistanceFoot)
		trajectory, err := engine.Solve(shot, maxRange, zeroDistance, nil)
		if err != nil {
			if rangeErr, ok := err.(*RangeError); ok {
				// The trial elevation could not carry the shot out to the zero distance at all;
				// treat it as a large negative residual so the secant search raises elevation.
				_ = rangeErr
				return -1e6, nil
			}
			return 0, err
		}
		sample, err := trajectory.AtRange(zeroDistance)
		if err != nil {
			return 0, err
		}
		return sample.Height().In(unit.DistanceFoot), nil
	}

	accuracyFt := cfg.ZeroFindingAccuracy.In(unit.DistanceFoot)
	maxIterations := cfg.MaxIterations
	if maxIterations <= 0 {
		maxIterations = 50
	}

	lo, hi := 0.0, 0.03
	fLo, err := heightAt(lo)
	if err != nil {
		return Weapon{}, unit.Angular{}, err
	}
	fHi, err := heightAt(hi)
	if err != nil {
		return Weapon{}, unit.Angular{}, err
	}
	for fLo*fHi > 0 && hi < math.Pi/3 {
		hi *= 2
		fHi, err = heightAt(hi)
		if err != nil {
			return Weapon{}, unit.Angular{}, err
		}
	}
	if fLo*fHi > 0 {
		return Weapon{}, unit.Angular{}, &ZeroFindingError{
			LastElevation: unit.MustCreateAngular(hi, unit.AngularRadian),
			Residual:      unit.MustCreateDistance(fHi, unit.DistanceFoot),
			Reason:        "could not bracket a zero within the searched elevation band",
		}
	}

	e0, e1 := lo, hi
	f0, f1 := fLo, fHi
	var lastElevation float64
	var lastResidual float64

	for i := 0; i < maxIterations && i < 50; i++ {
		var eNext float64
		if f1 != f0 {
			eNext = e1 - f1*(e1-e0)/(f1-f0)
		}
		if f1 == f0 || eNext <= math.Min(e0, e1) || eNext >= math.Max(e0, e1) || math.IsNaN(eNext) {
			eNext = (e0 + e1) / 2
		}

		fNext, err := heightAt(eNext)
		if err != nil {
			return Weapon{}, unit.Angular{}, err
		}
		lastElevation = eNext
		lastResidual = fNext

		if math.Abs(fNext) <= 0.5*accuracyFt || math.Abs(eNext-e1) <= 1e-6 {
			result := weapon
			result.SetZeroElevation(unit.MustCreateAngular(eNext, unit.AngularRadian))
			return result, unit.MustCreateAngular(eNext, unit.AngularRadian), nil
		}

		if fNext*f0 < 0 {
			e1, f1 = eNext, fNext
		} else {
			e0, f0 = e1, f1
			e1, f1 = eNext, fNext
		}
	}

	return Weapon{}, unit.Angular{}, &ZeroFindingError{
		LastElevation: unit.MustCreateAngular(lastElevation, unit.AngularRadian),
		Residual:      unit.MustCreateDistance(lastResidual, unit.DistanceFoot),
		Reason:        "did not converge within the iteration budget",
	}
}
