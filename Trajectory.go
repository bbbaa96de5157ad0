package ballistics

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/huntfield/ballistics/bmath/unit"
	"github.com/huntfield/ballistics/bmath/vector"
)

//Trajectory is the immutable, time-ordered output of one solve.
type Trajectory struct {
	samples []TrajectorySample
}

//Samples returns every sample in time order.
func (t *Trajectory) Samples() []TrajectorySample {
	return t.samples
}

//Len returns the number of samples.
func (t *Trajectory) Len() int {
	return len(t.samples)
}

//Summary describes the headline numbers of a solve, derived from its samples.
type Summary struct {
	TimeOfFlight     float64
	MaxRange         unit.Distance
	Apex             TrajectorySample
	HasApex          bool
	ZeroDistances    []unit.Distance
	TerminalVelocity unit.Velocity
}

//Summary computes the time-of-flight, terminal range, apex and every sight-line crossing found
//among the trajectory's flagged samples.
func (t *Trajectory) Summary() Summary {
	if len(t.samples) == 0 {
		return Summary{}
	}
	last := t.samples[len(t.samples)-1]
	s := Summary{
		TimeOfFlight:     last.time,
		MaxRange:         last.Range(),
		TerminalVelocity: last.speed,
	}
	for _, sample := range t.samples {
		if sample.flags.Has(FlagApex) {
			s.Apex = sample
			s.HasApex = true
		}
		if sample.flags.Has(FlagZeroUp) || sample.flags.Has(FlagZeroDown) {
			s.ZeroDistances = append(s.ZeroDistances, sample.Range())
		}
	}
	return s
}

//AtTime returns the sample at time t (seconds), linearly interpolating between the two bracketing
//samples when t falls strictly between them.
func (t *Trajectory) AtTime(timeSeconds float64) (TrajectorySample, error) {
	n := len(t.samples)
	if n == 0 {
		return TrajectorySample{}, &SolverInputError{Reason: "trajectory has no samples"}
	}
	if timeSeconds <= t.samples[0].time {
		return t.samples[0], nil
	}
	if timeSeconds >= t.samples[n-1].time {
		return t.samples[n-1], nil
	}
	lo := 0
	hi := n - 1
	for hi-lo > 1 {
		mid := (lo + hi) / 2
		if t.samples[mid].time < timeSeconds {
			lo = mid
		} else {
			hi = mid
		}
	}
	return interpolateSamples(t.samples[lo], t.samples[hi], timeSeconds, func(s TrajectorySample) float64 { return s.time }), nil
}

//AtRange returns the sample at the given down-range distance, linearly interpolating between the
//two bracketing samples. Range must be monotonic across the trajectory for this to be meaningful;
//callers solving a shot with an apex beyond the requested range get the ascending branch.
func (t *Trajectory) AtRange(r unit.Distance) (TrajectorySample, error) {
	n := len(t.samples)
	if n == 0 {
		return TrajectorySample{}, &SolverInputError{Reason: "trajectory has no samples"}
	}
	target := r.In(unit.DistanceFoot)
	if target <= t.samples[0].position.X {
		return t.samples[0], nil
	}
	if target >= t.samples[n-1].position.X {
		return t.samples[n-1], nil
	}
	lo := 0
	hi := n - 1
	for hi-lo > 1 {
		mid := (lo + hi) / 2
		if t.samples[mid].position.X < target {
			lo = mid
		} else {
			hi = mid
		}
	}
	return interpolateSamples(t.samples[lo], t.samples[hi], target, func(s TrajectorySample) float64 { return s.position.X }), nil
}

//interpolateSamples linearly interpolates every numeric field of two samples at the point where
//key(sample) equals target.
func interpolateSamples(a, b TrajectorySample, target float64, key func(TrajectorySample) float64) TrajectorySample {
	ka, kb := key(a), key(b)
	if kb == ka {
		return a
	}
	frac := (target - ka) / (kb - ka)
	lerp := func(x, y float64) float64 { return x + frac*(y-x) }
	return TrajectorySample{
		time:              lerp(a.time, b.time),
		position:          vectorLerp(a.position, b.position, frac),
		velocityVector:    vectorLerp(a.velocityVector, b.velocityVector, frac),
		speed:             unit.MustCreateVelocity(lerp(a.speed.In(unit.VelocityFPS), b.speed.In(unit.VelocityFPS)), unit.VelocityFPS),
		mach:              lerp(a.mach, b.mach),
		energy:            unit.MustCreateEnergy(lerp(a.energy.In(unit.EnergyFootPound), b.energy.In(unit.EnergyFootPound)), unit.EnergyFootPound),
		dropAngle:         unit.MustCreateAngular(lerp(a.dropAngle.Radians(), b.dropAngle.Radians()), unit.AngularRadian),
		windageFt:         lerp(a.windageFt, b.windageFt),
		windageAngle:      unit.MustCreateAngular(lerp(a.windageAngle.Radians(), b.windageAngle.Radians()), unit.AngularRadian),
		lookDistance:      unit.MustCreateDistance(lerp(a.lookDistance.In(unit.DistanceFoot), b.lookDistance.In(unit.DistanceFoot)), unit.DistanceFoot),
		referenceHeightFt: lerp(a.referenceHeightFt, b.referenceHeightFt),
		densityRatio:      lerp(a.densityRatio, b.densityRatio),
		drag:              lerp(a.drag, b.drag),
		flags:             FlagNone,
	}
}

func vectorLerp(a, b vector.Vector, frac float64) vector.Vector {
	return vector.Create(
		a.X+frac*(b.X-a.X),
		a.Y+frac*(b.Y-a.Y),
		a.Z+frac*(b.Z-a.Z),
	)
}

//DangerSpace is the range interval over which a trajectory stays within a target's vertical
//extent, centred on a reference range.
type DangerSpace struct {
	Near      unit.Distance
	Far       unit.Distance
	Reference unit.Distance
}

//Length returns Far - Near.
func (d DangerSpace) Length() unit.Distance {
	return unit.MustCreateDistance(d.Far.In(unit.DistanceFoot)-d.Near.In(unit.DistanceFoot), unit.DistanceFoot)
}

//DangerSpace computes the range interval for which the trajectory's height above the sight line
//stays within targetHeight/2 of the sight line itself, i.e. the interval over which a target of
//that height, centred on the point of aim at referenceRange, would be hit.
func (t *Trajectory) DangerSpace(targetHeight unit.Distance, referenceRange unit.Distance) (DangerSpace, error) {
	ref, err := t.AtRange(referenceRange)
	if err != nil {
		return DangerSpace{}, err
	}
	halfHeight := targetHeight.In(unit.DistanceFoot) / 2
	upper := halfHeight
	lower := -halfHeight

	near, err := t.findHeightCrossing(ref.position.X, -1, upper, lower)
	if err != nil {
		return DangerSpace{}, err
	}
	far, err := t.findHeightCrossing(ref.position.X, 1, upper, lower)
	if err != nil {
		return DangerSpace{}, err
	}
	return DangerSpace{
		Near:      unit.MustCreateDistance(near, unit.DistanceFoot),
		Far:       unit.MustCreateDistance(far, unit.DistanceFoot),
		Reference: referenceRange,
	}, nil
}

//findHeightCrossing walks from the sample nearest refRangeFt in direction dir (-1 toward the
//muzzle, +1 downrange) until height leaves [lower, upper], and interpolates the exact range at
//which it does.
func (t *Trajectory) findHeightCrossing(refRangeFt float64, dir int, upper, lower float64) (float64, error) {
	n := len(t.samples)
	idx := 0
	for i, s := range t.samples {
		if s.position.X >= refRangeFt {
			idx = i
			break
		}
		idx = i
	}
	height := func(s TrajectorySample) float64 { return s.Height().In(unit.DistanceFoot) }
	inBand := func(y float64) bool { return y <= upper && y >= lower }

	i := idx
	for i >= 0 && i < n {
		if !inBand(height(t.samples[i])) {
			break
		}
		i += dir
	}
	if i < 0 {
		return t.samples[0].position.X, nil
	}
	if i >= n {
		return t.samples[n-1].position.X, nil
	}
	j := i - dir
	if j < 0 || j >= n {
		return t.samples[i].position.X, nil
	}
	a, b := t.samples[j], t.samples[i]
	ha, hb := height(a), height(b)
	bound := upper
	if ha < lower || hb < lower {
		bound = lower
	}
	if hb == ha {
		return b.position.X, nil
	}
	frac := (bound - ha) / (hb - ha)
	return a.position.X + frac*(b.position.X-a.position.X), nil
}

//ExportCSV writes one row per sample in time order: time, range, height, windage, velocity,
//Mach, energy.
func (t *Trajectory) ExportCSV(w io.Writer) error {
	writer := csv.NewWriter(w)
	defer writer.Flush()

	header := []string{"time_s", "range_ft", "height_ft", "windage_ft", "velocity_fps", "mach", "energy_ftlb"}
	if err := writer.Write(header); err != nil {
		return err
	}
	for _, s := range t.samples {
		row := []string{
			strconv.FormatFloat(s.time, 'f', 6, 64),
			strconv.FormatFloat(s.position.X, 'f', 3, 64),
			strconv.FormatFloat(s.Height().In(unit.DistanceFoot), 'f', 3, 64),
			strconv.FormatFloat(s.windageFt, 'f', 3, 64),
			strconv.FormatFloat(s.speed.In(unit.VelocityFPS), 'f', 1, 64),
			strconv.FormatFloat(s.mach, 'f', 4, 64),
			strconv.FormatFloat(s.energy.In(unit.EnergyFootPound), 'f', 1, 64),
		}
		if err := writer.Write(row); err != nil {
			return err
		}
	}
	return writer.Error()
}

func (t *Trajectory) String() string {
	return fmt.Sprintf("Trajectory[%d samples]", len(t.samples))
}
