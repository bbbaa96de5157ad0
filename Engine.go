package ballistics

import (
	"math"

	"github.com/huntfield/ballistics/bmath/unit"
	"github.com/huntfield/ballistics/bmath/vector"
)

const earthRotationRadPerSec = 7.292115e-05

//Engine is a configured integrator: one of the {Euler, RK4, Verlet} step kernels sharing the same
//derivative function, dispatched once per solve rather than per step.
type Engine struct {
	kind   string
	config Config
}

//NewEngine builds an Engine for one of "euler", "rk4" or "verlet". Any other kind is an
//UnknownEngineError.
func NewEngine(kind string, config Config) (*Engine, error) {
	switch kind {
	case "euler", "rk4", "verlet":
		return &Engine{kind: kind, config: config}, nil
	default:
		return nil, &UnknownEngineError{Name: kind}
	}
}

//Kind returns the engine's step kernel name.
func (e *Engine) Kind() string {
	return e.kind
}

func (e *Engine) baseStep() float64 {
	switch e.kind {
	case "rk4":
		return 0.0025 * e.config.StepMultiplier
	case "verlet":
		return 0.0015 * e.config.StepMultiplier
	default:
		return 0.0005 * e.config.StepMultiplier
	}
}

//solveState is the integrator's state vector: position (ft) and velocity (fps) in the shot's body
//frame, plus the time since the shot.
type solveState struct {
	t   float64
	pos vector.Vector
	vel vector.Vector
}

//accelFunc computes acceleration at a given (position, velocity), folding in drag, gravity and
//Coriolis. It closes over everything constant for the whole solve: the shot, the atmosphere's
//reference altitude, and the per-solve wind/drag scratch structures.
type accelFunc func(pos, vel vector.Vector) vector.Vector

func (e *Engine) stepEuler(s solveState, h float64, accel accelFunc) solveState {
	a := accel(s.pos, s.vel)
	return solveState{
		t:   s.t + h,
		pos: s.pos.Add(s.vel.MultiplyByConst(h)),
		vel: s.vel.Add(a.MultiplyByConst(h)),
	}
}

func (e *Engine) stepRK4(s solveState, h float64, accel accelFunc) solveState {
	k1v, k1a := s.vel, accel(s.pos, s.vel)

	p2 := s.pos.Add(k1v.MultiplyByConst(h / 2))
	v2 := s.vel.Add(k1a.MultiplyByConst(h / 2))
	k2v, k2a := v2, accel(p2, v2)

	p3 := s.pos.Add(k2v.MultiplyByConst(h / 2))
	v3 := s.vel.Add(k2a.MultiplyByConst(h / 2))
	k3v, k3a := v3, accel(p3, v3)

	p4 := s.pos.Add(k3v.MultiplyByConst(h))
	v4 := s.vel.Add(k3a.MultiplyByConst(h))
	k4v, k4a := v4, accel(p4, v4)

	dPos := k1v.Add(k2v.MultiplyByConst(2)).Add(k3v.MultiplyByConst(2)).Add(k4v).MultiplyByConst(h / 6)
	dVel := k1a.Add(k2a.MultiplyByConst(2)).Add(k3a.MultiplyByConst(2)).Add(k4a).MultiplyByConst(h / 6)

	return solveState{t: s.t + h, pos: s.pos.Add(dPos), vel: s.vel.Add(dVel)}
}

func (e *Engine) stepVerlet(s solveState, h float64, accel accelFunc) solveState {
	a0 := accel(s.pos, s.vel)
	newPos := s.pos.Add(s.vel.MultiplyByConst(h)).Add(a0.MultiplyByConst(0.5 * h * h))
	predictedVel := s.vel.Add(a0.MultiplyByConst(h))
	a1 := accel(newPos, predictedVel)
	newVel := s.vel.Add(a0.Add(a1).MultiplyByConst(0.5 * h))
	return solveState{t: s.t + h, pos: newPos, vel: newVel}
}

//stepper returns the step kernel for the engine's kind; Solve calls it once, before its loop.
func (e *Engine) stepper() func(s solveState, h float64, accel accelFunc) solveState {
	switch e.kind {
	case "rk4":
		return e.stepRK4
	case "verlet":
		return e.stepVerlet
	default:
		return e.stepEuler
	}
}

//coriolisAcceleration returns the Coriolis deceleration for a velocity expressed in the shot's
//body frame (x downrange, y up, z right), given the shooter's latitude and the target's compass
//azimuth. Earth's rotation vector is decomposed into that frame and crossed with velocity.
func coriolisAcceleration(latitude, azimuth unit.Angular, velocity vector.Vector) vector.Vector {
	lat := latitude.Radians()
	az := azimuth.Radians()
	omega := vector.Create(
		earthRotationRadPerSec*math.Cos(lat)*math.Cos(az),
		earthRotationRadPerSec*math.Sin(lat),
		-earthRotationRadPerSec*math.Cos(lat)*math.Sin(az),
	)
	return omega.Cross(velocity).MultiplyByConst(-2)
}

//sampleFrom converts an internal integrator state into a public TrajectorySample, filling in
//every derived field the spec requires but that the integrator itself has no need of.
func sampleFrom(s solveState, bc BallisticCoefficient, bulletWeightGrains float64, densityRatio, machFps float64, lookAngle unit.Angular, spinDriftFt float64, flags TrajFlag) TrajectorySample {
	speed := s.vel.Magnitude()
	mach := speed / machFps
	look := lookAngle.Radians()
	lookDistance := s.pos.X / math.Cos(look)
	windageFt := s.pos.Z + spinDriftFt

	// The sight line is defined by look angle; position.Y is drop in the world frame, not
	// relative to that line, so the reference height has to be subtracted out separately.
	referenceHeightFt := s.pos.X * math.Tan(look)
	heightAboveSightFt := s.pos.Y - referenceHeightFt

	return TrajectorySample{
		time:              s.t,
		position:          s.pos,
		velocityVector:    s.vel,
		speed:             unit.MustCreateVelocity(speed, unit.VelocityFPS),
		mach:              mach,
		energy:            unit.MustCreateEnergy(calculateEnergy(bulletWeightGrains, speed), unit.EnergyFootPound),
		dropAngle:         unit.MustCreateAngular(getCorrection(s.pos.X, heightAboveSightFt), unit.AngularRadian),
		windageFt:         windageFt,
		windageAngle:      unit.MustCreateAngular(getCorrection(s.pos.X, windageFt), unit.AngularRadian),
		lookDistance:      unit.MustCreateDistance(lookDistance, unit.DistanceFoot),
		referenceHeightFt: referenceHeightFt,
		densityRatio:      densityRatio,
		drag:              bc.CdAt(mach),
		flags:             flags,
	}
}

//spinDriftAt returns the lateral spin-drift offset (ft) at time t, the Miller-formula
//approximation the teacher's trajectory loop folds into reported windage without feeding it back
//into the integrated state.
func spinDriftAt(stabilityCoefficient, twistCoefficient, t float64) float64 {
	if twistCoefficient == 0 {
		return 0
	}
	return (1.25 * (stabilityCoefficient + 1.2) * math.Pow(t, 1.83) * twistCoefficient) / 12.0
}

//Solve integrates shot forward from the muzzle until it reaches maxRange, falls out of the
//configured velocity/altitude/drop bounds, or shouldContinue reports false. It emits a sample on
//every requested range slice plus whenever the trajectory crosses the sight line, passes Mach 1,
//or reaches its apex.
func (e *Engine) Solve(shot Shot, maxRange, rangeStep unit.Distance, shouldContinue func() bool) (*Trajectory, error) {
	bullet := shot.Ammunition().Bullet()
	bc := bullet.BallisticCoefficient()
	bulletWeight := bullet.BulletWeight().In(unit.WeightGrain)

	weapon := shot.Weapon()
	zeroElevation, _ := weapon.ZeroElevation()
	barrelAzimuth := 0.0
	barrelElevation := zeroElevation.Radians() + shot.LookAngle().Radians()

	atmosphere := shot.Atmosphere()
	alt0 := atmosphere.Altitude().In(unit.DistanceFoot)

	windScratch := &WindScratch{}
	dragScratch := &DragScratch{}

	var stabilityCoefficient, twistCoefficient float64
	if weapon.HasTwist() && bullet.HasDimensions() {
		stabilityCoefficient = calculateStabilityCoefficient(shot.Ammunition(), weapon, atmosphere)
		if weapon.Twist().Direction() == TwistLeft {
			twistCoefficient = 1
		} else {
			twistCoefficient = -1
		}
	}

	// Gravity points straight down in the world frame regardless of look angle; only cant (a
	// roll of the weapon about its own bore) and target azimuth rotate it into the body frame.
	gravityBody := vector.Create(0, -e.config.GravityConstant, 0).
		ToShotFrame(shot.CantAngle().Radians(), 0, shot.TargetAzimuth().Radians())

	tanLook := math.Tan(shot.LookAngle().Radians())
	heightAboveSight := func(pos vector.Vector) float64 { return pos.Y - pos.X*tanLook }

	accel := func(pos, vel vector.Vector) vector.Vector {
		densityRatio, machFps := atmosphere.getDensityFactorAndMachForAltitude(alt0 + pos.Y)
		wind := windAt(shot.Wind(), pos.X, windScratch)
		windVec := windToVector(zeroElevation, shot.CantAngle(), wind)
		relative := vel.Subtract(windVec)
		speed := relative.Magnitude()
		mach := speed / machFps
		dragScalar := densityRatio * speed * bc.DragCached(mach, dragScratch)
		coriolis := coriolisAcceleration(shot.Latitude(), shot.TargetAzimuth(), vel)
		return relative.MultiplyByConst(-dragScalar).Add(gravityBody).Add(coriolis)
	}

	muzzleVelocity := shot.Ammunition().MuzzleVelocity().In(unit.VelocityFPS)
	state := solveState{
		t:   0,
		pos: vector.Create(0, -weapon.SightHeight().In(unit.DistanceFoot), 0),
		vel: vector.Create(math.Cos(barrelElevation)*math.Cos(barrelAzimuth), math.Sin(barrelElevation), math.Cos(barrelElevation)*math.Sin(barrelAzimuth)).MultiplyByConst(muzzleVelocity),
	}

	maxRangeFt := maxRange.In(unit.DistanceFoot)
	rangeStepFt := rangeStep.In(unit.DistanceFoot)
	if rangeStepFt <= 0 {
		rangeStepFt = maxRangeFt
	}
	h := e.baseStep()
	step := e.stepper()

	capacity := int(maxRangeFt/rangeStepFt) + 4
	if capacity < 16 {
		capacity = 16
	}
	samples := make([]TrajectorySample, 0, capacity)

	densityRatioAt := func(pos vector.Vector) (float64, float64) {
		return atmosphere.getDensityFactorAndMachForAltitude(alt0 + pos.Y)
	}

	cancelled := false
	emit := func(s solveState, flags TrajFlag) {
		dr, mf := densityRatioAt(s.pos)
		drift := spinDriftAt(stabilityCoefficient, twistCoefficient, s.t)
		samples = append(samples, sampleFrom(s, bc, bulletWeight, dr, mf, shot.LookAngle(), drift, flags))
		if shouldContinue != nil && !shouldContinue() {
			cancelled = true
		}
	}

	nextRangeTarget := 0.0
	emit(state, FlagRange)
	nextRangeTarget += rangeStepFt
	if cancelled {
		return nil, &CancelledError{PartialTrajectory: &Trajectory{samples: samples}}
	}

	apexSeen := false
	reachedMax := false

	for i := 0; i < e.config.MaximumSamples && len(samples) < e.config.MaximumSamples; i++ {
		speed := state.vel.Magnitude()
		if math.IsNaN(speed) || math.IsInf(speed, 0) {
			return nil, &InstabilityError{Reason: "velocity became non-finite", Time: state.t}
		}
		if speed < e.config.MinimumVelocity.In(unit.VelocityFPS) {
			break
		}
		if state.pos.Y < e.config.MaximumDrop.In(unit.DistanceFoot) {
			break
		}
		if alt0+state.pos.Y < e.config.MinimumAltitude.In(unit.DistanceFoot) {
			break
		}

		next := step(state, h, accel)

		_, machFpsPrev := densityRatioAt(state.pos)
		_, machFpsNext := densityRatioAt(next.pos)
		machPrev := state.vel.Magnitude() / machFpsPrev
		machNext := next.vel.Magnitude() / machFpsNext
		if (machPrev-1)*(machNext-1) < 0 {
			frac := (1 - machPrev) / (machNext - machPrev)
			cross := interpolateState(state, next, frac)
			emit(cross, FlagMach)
			if cancelled {
				return nil, &CancelledError{PartialTrajectory: &Trajectory{samples: samples}}
			}
		}

		heightPrev, heightNext := heightAboveSight(state.pos), heightAboveSight(next.pos)
		if heightPrev*heightNext < 0 {
			frac := -heightPrev / (heightNext - heightPrev)
			cross := interpolateState(state, next, frac)
			flag := FlagZeroDown
			if heightNext > heightPrev {
				flag = FlagZeroUp
			}
			emit(cross, flag)
			if cancelled {
				return nil, &CancelledError{PartialTrajectory: &Trajectory{samples: samples}}
			}
		}

		if !apexSeen && state.vel.Y > 0 && next.vel.Y <= 0 {
			frac := state.vel.Y / (state.vel.Y - next.vel.Y)
			cross := interpolateState(state, next, frac)
			emit(cross, FlagApex)
			apexSeen = true
			if cancelled {
				return nil, &CancelledError{PartialTrajectory: &Trajectory{samples: samples}}
			}
		}

		for next.pos.X >= nextRangeTarget && nextRangeTarget <= maxRangeFt {
			frac := (nextRangeTarget - state.pos.X) / (next.pos.X - state.pos.X)
			cross := interpolateState(state, next, frac)
			flags := FlagRange
			if nextRangeTarget >= maxRangeFt {
				flags |= FlagMax
				reachedMax = true
			}
			emit(cross, flags)
			nextRangeTarget += rangeStepFt
			if cancelled {
				return nil, &CancelledError{PartialTrajectory: &Trajectory{samples: samples}}
			}
		}

		if !reachedMax && next.pos.X >= maxRangeFt {
			frac := (maxRangeFt - state.pos.X) / (next.pos.X - state.pos.X)
			cross := interpolateState(state, next, frac)
			emit(cross, FlagMax)
			reachedMax = true
			if cancelled {
				return nil, &CancelledError{PartialTrajectory: &Trajectory{samples: samples}}
			}
		}

		state = next
		if reachedMax {
			break
		}
	}

	if !reachedMax {
		lastEmitted := samples[len(samples)-1]
		if lastEmitted.Range().In(unit.DistanceFoot) < maxRangeFt {
			return nil, &RangeError{
				Reason:               "projectile left its valid envelope before reaching the requested range",
				LastRange:            lastEmitted.Range(),
				IncompleteTrajectory: &Trajectory{samples: samples},
			}
		}
	}

	return &Trajectory{samples: samples}, nil
}

//interpolateState linearly interpolates position, velocity and time between two integrator
//states at fraction frac along the step from a to b.
func interpolateState(a, b solveState, frac float64) solveState {
	lerp := func(x, y float64) float64 { return x + frac*(y-x) }
	return solveState{
		t:   lerp(a.t, b.t),
		pos: vector.Create(lerp(a.pos.X, b.pos.X), lerp(a.pos.Y, b.pos.Y), lerp(a.pos.Z, b.pos.Z)),
		vel: vector.Create(lerp(a.vel.X, b.vel.X), lerp(a.vel.Y, b.vel.Y), lerp(a.vel.Z, b.vel.Z)),
	}
}

//calculateStabilityCoefficient applies the Miller twist-stability formula to decide how strongly
//a spin-stabilized bullet drifts laterally over the course of a shot.
func calculateStabilityCoefficient(ammunitionInfo Ammunition, rifleInfo Weapon, atmosphere Atmosphere) float64 {
	weight := ammunitionInfo.Bullet().BulletWeight().In(unit.WeightGrain)
	diameter := ammunitionInfo.Bullet().BulletDiameter().In(unit.DistanceInch)
	twist := rifleInfo.Twist().Twist().In(unit.DistanceInch) / diameter
	length := ammunitionInfo.Bullet().BulletLength().In(unit.DistanceInch) / diameter
	sd := 30 * weight / (math.Pow(twist, 2) * math.Pow(diameter, 3) * length * (1 + math.Pow(length, 2)))
	fv := math.Pow(ammunitionInfo.MuzzleVelocity().In(unit.VelocityFPS)/2800, 1.0/3.0)

	ft := atmosphere.Temperature().In(unit.TemperatureFahrenheit)
	pt := atmosphere.Pressure().In(unit.PressureInHg)
	ftp := ((ft + 460) / (59 + 460)) * (29.92 / pt)

	return sd * fv * ftp
}

//getCorrection returns the angle (radians) subtended by offset at distance, the sight
//adjustment needed to correct for a drop or windage value at that range.
func getCorrection(distance, offset float64) float64 {
	if distance == 0 {
		return 0
	}
	return math.Atan(offset / distance)
}

//calculateEnergy returns kinetic energy in foot-pounds from bullet weight in grains and speed in
//fps.
func calculateEnergy(bulletWeightGrains, speedFps float64) float64 {
	return bulletWeightGrains * math.Pow(speedFps, 2) / 450400
}
