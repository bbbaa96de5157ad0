package ballistics

import "github.com/huntfield/ballistics/bmath/unit"

//Config bundles the integrator's tunable knobs as a plain value, carried explicitly into each
//engine factory rather than read from process-wide state.
type Config struct {
	//StepMultiplier scales the stepper's base step size.
	StepMultiplier float64
	//MinimumVelocity terminates integration once speed drops below this value.
	MinimumVelocity unit.Velocity
	//MaximumDrop terminates integration once the sample's height drops below this value
	//(expressed as a negative distance).
	MaximumDrop unit.Distance
	//MinimumAltitude terminates integration once height above the atmosphere's reference
	//altitude drops below this value.
	MinimumAltitude unit.Distance
	//MaxIterations caps the zero solver's secant/bisection iteration count.
	MaxIterations int
	//ZeroFindingAccuracy is the zero solver's residual convergence tolerance.
	ZeroFindingAccuracy unit.Distance
	//GravityConstant is the magnitude of gravitational acceleration applied to every sample.
	GravityConstant float64
	//MaximumSamples is the hard cap on emitted samples before the integrator gives up; it also
	//caps the number of integration steps in one solve.
	MaximumSamples int
}

//DefaultConfig returns the knob bundle spec'd for this engine: a 1.0 step multiplier, a 50 fps
//minimum velocity, a -15000 ft maximum drop, a -1500 ft minimum altitude, 20 zero-solver
//iterations, a 5e-6 ft zero accuracy, and standard gravity.
func DefaultConfig() Config {
	return Config{
		StepMultiplier:      1.0,
		MinimumVelocity:     unit.MustCreateVelocity(50, unit.VelocityFPS),
		MaximumDrop:         unit.MustCreateDistance(-15000, unit.DistanceFoot),
		MinimumAltitude:     unit.MustCreateDistance(-1500, unit.DistanceFoot),
		MaxIterations:       20,
		ZeroFindingAccuracy: unit.MustCreateDistance(0.000005, unit.DistanceFoot),
		GravityConstant:     32.17405,
		MaximumSamples:      1000000,
	}
}
