package ballistics

import (
	"fmt"

	"github.com/huntfield/ballistics/bmath/unit"
)

//DimensionError reports a unit-quantity input outside its physical domain; arithmetic across
//dimensions does not compile, since each dimension is its own type. Re-exported from the unit
//package so callers that never import bmath/unit directly can still type-switch on it.
type DimensionError = unit.DimensionError

//SolverInputError reports a structurally invalid Shot: negative muzzle velocity, an empty drag
//curve, zero projectile mass, and similar inputs the engine refuses to integrate at all.
type SolverInputError struct {
	Reason string
}

func (e *SolverInputError) Error() string {
	return fmt.Sprintf("invalid shot input: %s", e.Reason)
}

//RangeError reports that the trajectory could not reach a requested range before the integrator
//terminated. IncompleteTrajectory carries whatever samples were produced before the failure, so a
//caller (or the zero solver) can still inspect how far the shot got.
type RangeError struct {
	Reason               string
	LastRange            unit.Distance
	IncompleteTrajectory *Trajectory
}

func (e *RangeError) Error() string {
	return fmt.Sprintf("trajectory did not reach requested range: %s (reached %s)", e.Reason, e.LastRange)
}

//InstabilityError reports a numerical breakdown: a non-finite state. The integrator steps with a
//fixed step size, so no step-collapse case is detected or reported.
type InstabilityError struct {
	Reason string
	Time   float64
}

func (e *InstabilityError) Error() string {
	return fmt.Sprintf("integration became unstable at t=%.6fs: %s", e.Time, e.Reason)
}

//ZeroFindingError reports that the zero solver did not converge within its iteration budget or
//searched elevation band. LastElevation and Residual describe the last attempt.
type ZeroFindingError struct {
	LastElevation unit.Angular
	Residual      unit.Distance
	Reason        string
}

func (e *ZeroFindingError) Error() string {
	return fmt.Sprintf("zero solver did not converge: %s (last elevation %s, residual %s)",
		e.Reason, e.LastElevation, e.Residual)
}

//UnknownEngineError reports a registry lookup miss.
type UnknownEngineError struct {
	Name string
}

func (e *UnknownEngineError) Error() string {
	return fmt.Sprintf("unknown engine %q", e.Name)
}

//CancelledError reports a cooperative stop requested by the caller's ShouldContinue predicate.
//PartialTrajectory holds every sample emitted before cancellation.
type CancelledError struct {
	PartialTrajectory *Trajectory
}

func (e *CancelledError) Error() string {
	return "solve cancelled"
}
