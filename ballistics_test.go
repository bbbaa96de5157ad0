package ballistics_test

import (
	"bytes"
	"math"
	"strings"
	"testing"

	"github.com/huntfield/ballistics"
	"github.com/huntfield/ballistics/bmath/unit"
)

func looseConfig() ballistics.Config {
	cfg := ballistics.DefaultConfig()
	cfg.ZeroFindingAccuracy = unit.MustCreateDistance(0.05, unit.DistanceFoot)
	cfg.MaxIterations = 40
	return cfg
}

func sampleShot(t *testing.T) (ballistics.Weapon, ballistics.Ammunition, ballistics.Atmosphere) {
	t.Helper()
	bc, err := ballistics.CreateBallisticCoefficient(0.365, ballistics.DragTableG1)
	if err != nil {
		t.Fatalf("CreateBallisticCoefficient failed: %v", err)
	}
	bullet := ballistics.CreateProjectile(bc, unit.MustCreateWeight(168, unit.WeightGrain))
	ammo := ballistics.CreateAmmunition(bullet, unit.MustCreateVelocity(2650, unit.VelocityFPS))
	weapon := ballistics.CreateWeapon(unit.MustCreateDistance(1.8, unit.DistanceInch), ballistics.CreateZeroInfo(unit.MustCreateDistance(200, unit.DistanceYard)))
	atmosphere := ballistics.CreateDefaultAtmosphere()
	return weapon, ammo, atmosphere
}

func zeroAngle() unit.Angular { return unit.MustCreateAngular(0, unit.AngularRadian) }

func TestCdAtStaysWithinTableBounds(t *testing.T) {
	bc, err := ballistics.CreateBallisticCoefficient(0.5, ballistics.DragTableG1)
	if err != nil {
		t.Fatalf("CreateBallisticCoefficient: %v", err)
	}
	minCd, maxCd := math.Inf(1), math.Inf(-1)
	for mach := 0.0; mach <= 5.0; mach += 0.01 {
		cd := bc.CdAt(mach)
		if cd < minCd {
			minCd = cd
		}
		if cd > maxCd {
			maxCd = cd
		}
	}
	// 0.12 is comfortably below every published G1 Cd; 0.70 comfortably above the transonic peak.
	if minCd < 0.12 || maxCd > 0.70 {
		t.Errorf("Cd(mach) left the expected table envelope: min=%f max=%f", minCd, maxCd)
	}
}

func TestCreateBallisticCoefficientRejectsInvalidInputs(t *testing.T) {
	if _, err := ballistics.CreateBallisticCoefficient(0, ballistics.DragTableG1); err == nil {
		t.Error("expected an error for a non-positive ballistic coefficient")
	}
	if _, err := ballistics.CreateBallisticCoefficient(0.5, 200); err == nil {
		t.Error("expected an error for an unknown drag table byte")
	}
}

func TestSectionalDensityAndFormFactor(t *testing.T) {
	bc, err := ballistics.CreateBallisticCoefficient(0.5, ballistics.DragTableG7)
	if err != nil {
		t.Fatalf("CreateBallisticCoefficient: %v", err)
	}
	bullet := ballistics.CreateProjectileWithDimensions(bc,
		unit.MustCreateDistance(0.308, unit.DistanceInch),
		unit.MustCreateDistance(1.2, unit.DistanceInch),
		unit.MustCreateWeight(175, unit.WeightGrain))

	sd, err := bullet.SectionalDensity()
	if err != nil {
		t.Fatalf("SectionalDensity: %v", err)
	}
	wantSD := unit.MustCreateWeight(175, unit.WeightGrain).In(unit.WeightPound) / (0.308 * 0.308)
	if math.Abs(sd-wantSD) > 1e-9 {
		t.Errorf("sectional density mismatch: got %f, want %f", sd, wantSD)
	}

	ff, err := bullet.FormFactor()
	if err != nil {
		t.Fatalf("FormFactor: %v", err)
	}
	if math.Abs(ff-sd/0.5) > 1e-9 {
		t.Errorf("form factor mismatch: got %f, want %f", ff, sd/0.5)
	}

	dimensionless := ballistics.CreateProjectile(bc, unit.MustCreateWeight(175, unit.WeightGrain))
	if _, err := dimensionless.SectionalDensity(); err == nil {
		t.Error("expected an error computing sectional density without dimensions")
	}
}

func TestAtmosphereHumidityValidation(t *testing.T) {
	if _, err := ballistics.CreateAtmosphere(
		unit.MustCreateDistance(0, unit.DistanceFoot),
		unit.MustCreatePressure(29.92, unit.PressureInHg),
		unit.MustCreateTemperature(59, unit.TemperatureFahrenheit), 150); err == nil {
		t.Error("expected a DimensionError for humidity outside 0..100")
	}

	ratio, err := ballistics.CreateAtmosphere(
		unit.MustCreateDistance(0, unit.DistanceFoot),
		unit.MustCreatePressure(29.92, unit.PressureInHg),
		unit.MustCreateTemperature(59, unit.TemperatureFahrenheit), 0.5)
	if err != nil {
		t.Fatalf("CreateAtmosphere with ratio humidity: %v", err)
	}
	percent, err := ballistics.CreateAtmosphere(
		unit.MustCreateDistance(0, unit.DistanceFoot),
		unit.MustCreatePressure(29.92, unit.PressureInHg),
		unit.MustCreateTemperature(59, unit.TemperatureFahrenheit), 50)
	if err != nil {
		t.Fatalf("CreateAtmosphere with percent humidity: %v", err)
	}
	if math.Abs(ratio.Humidity()-percent.Humidity()) > 1e-9 {
		t.Errorf("0.5 and 50%% humidity should normalize to the same ratio, got %f and %f", ratio.Humidity(), percent.Humidity())
	}
}

func TestWeaponZeroElevationCaching(t *testing.T) {
	weapon := ballistics.CreateWeapon(unit.MustCreateDistance(1.5, unit.DistanceInch), ballistics.CreateZeroInfo(unit.MustCreateDistance(100, unit.DistanceYard)))
	if _, ok := weapon.ZeroElevation(); ok {
		t.Error("a freshly built weapon should not have a cached zero elevation")
	}
	weapon.SetZeroElevation(unit.MustCreateAngular(1.5, unit.AngularMOA))
	elevation, ok := weapon.ZeroElevation()
	if !ok {
		t.Fatal("expected a cached zero elevation after SetZeroElevation")
	}
	if !elevation.Equals(unit.MustCreateAngular(1.5, unit.AngularMOA)) {
		t.Errorf("cached zero elevation mismatch: got %s", elevation)
	}
}

func TestEnergyAtMuzzleMatchesKineticFormula(t *testing.T) {
	weapon, ammo, atmosphere := sampleShot(t)
	engine, err := ballistics.NewEngine("rk4", ballistics.DefaultConfig())
	if err != nil {
		t.Fatalf("NewEngine: %v", err)
	}
	shot, err := ballistics.CreateShot(weapon, ammo, atmosphere, nil, zeroAngle(), zeroAngle(), zeroAngle(), zeroAngle())
	if err != nil {
		t.Fatalf("CreateShot: %v", err)
	}
	trajectory, err := engine.Solve(shot, unit.MustCreateDistance(50, unit.DistanceYard), unit.MustCreateDistance(25, unit.DistanceYard), nil)
	if err != nil {
		t.Fatalf("Solve: %v", err)
	}
	first := trajectory.Samples()[0]
	if first.Time() != 0 {
		t.Fatalf("expected the first sample to be at t=0, got %f", first.Time())
	}
	weightGrains := ammo.Bullet().BulletWeight().In(unit.WeightGrain)
	speedFps := first.Velocity().In(unit.VelocityFPS)
	wantEnergy := weightGrains * speedFps * speedFps / 450400
	if math.Abs(first.Energy().In(unit.EnergyFootPound)-wantEnergy) > 1e-6*wantEnergy {
		t.Errorf("muzzle energy mismatch: got %f, want %f", first.Energy().In(unit.EnergyFootPound), wantEnergy)
	}
}

func TestTimeAndRangeMonotonic(t *testing.T) {
	weapon, ammo, atmosphere := sampleShot(t)
	engine, err := ballistics.NewEngine("rk4", ballistics.DefaultConfig())
	if err != nil {
		t.Fatalf("NewEngine: %v", err)
	}
	shot, err := ballistics.CreateShot(weapon, ammo, atmosphere, nil, zeroAngle(), zeroAngle(), zeroAngle(), zeroAngle())
	if err != nil {
		t.Fatalf("CreateShot: %v", err)
	}
	trajectory, err := engine.Solve(shot, unit.MustCreateDistance(300, unit.DistanceYard), unit.MustCreateDistance(50, unit.DistanceYard), nil)
	if err != nil {
		t.Fatalf("Solve: %v", err)
	}
	samples := trajectory.Samples()
	for i := 1; i < len(samples); i++ {
		if samples[i].Time() < samples[i-1].Time() {
			t.Fatalf("time went backwards between samples %d and %d", i-1, i)
		}
		if samples[i].Range().In(unit.DistanceFoot) < samples[i-1].Range().In(unit.DistanceFoot)-1e-6 {
			t.Fatalf("range went backwards between samples %d and %d", i-1, i)
		}
	}
}

func TestZeroGravityZeroWindStaysOnBoreLine(t *testing.T) {
	weapon, ammo, atmosphere := sampleShot(t)
	weapon.SetZeroElevation(zeroAngle())
	cfg := ballistics.DefaultConfig()
	cfg.GravityConstant = 0
	engine, err := ballistics.NewEngine("rk4", cfg)
	if err != nil {
		t.Fatalf("NewEngine: %v", err)
	}
	shot, err := ballistics.CreateShot(weapon, ammo, atmosphere, nil, zeroAngle(), zeroAngle(), zeroAngle(), zeroAngle())
	if err != nil {
		t.Fatalf("CreateShot: %v", err)
	}
	trajectory, err := engine.Solve(shot, unit.MustCreateDistance(300, unit.DistanceYard), unit.MustCreateDistance(100, unit.DistanceYard), nil)
	if err != nil {
		t.Fatalf("Solve: %v", err)
	}
	for _, sample := range trajectory.Samples() {
		if sample.Height().In(unit.DistanceFoot) != -weapon.SightHeight().In(unit.DistanceFoot) {
			t.Errorf("height drifted off the bore line with zero gravity: got %f", sample.Height().In(unit.DistanceFoot))
		}
		if sample.Windage().In(unit.DistanceFoot) != 0 {
			t.Errorf("windage should be exactly zero with no wind and zero-azimuth Coriolis: got %f", sample.Windage().In(unit.DistanceFoot))
		}
	}
}

func TestZeroSolverConverges(t *testing.T) {
	weapon, ammo, atmosphere := sampleShot(t)
	cfg := looseConfig()
	engine, err := ballistics.NewEngine("rk4", cfg)
	if err != nil {
		t.Fatalf("NewEngine: %v", err)
	}
	zeroed, elevation, err := ballistics.SolveZero(engine, weapon, ammo, atmosphere, unit.MustCreateDistance(200, unit.DistanceYard), zeroAngle(), cfg)
	if err != nil {
		t.Fatalf("SolveZero: %v", err)
	}
	if elevation.In(unit.AngularMOA) <= 0 {
		t.Errorf("expected a positive barrel elevation to reach a 200-yard zero, got %s", elevation)
	}
	cachedElevation, ok := zeroed.ZeroElevation()
	if !ok || !cachedElevation.Equals(elevation) {
		t.Errorf("SolveZero should cache the solved elevation onto the returned weapon")
	}

	shot, err := ballistics.CreateShot(zeroed, ammo, atmosphere, nil, zeroAngle(), zeroAngle(), zeroAngle(), zeroAngle())
	if err != nil {
		t.Fatalf("CreateShot: %v", err)
	}
	trajectory, err := engine.Solve(shot, unit.MustCreateDistance(210, unit.DistanceYard), unit.MustCreateDistance(200, unit.DistanceYard), nil)
	if err != nil {
		t.Fatalf("Solve: %v", err)
	}
	atZero, err := trajectory.AtRange(unit.MustCreateDistance(200, unit.DistanceYard))
	if err != nil {
		t.Fatalf("AtRange: %v", err)
	}
	if math.Abs(atZero.Height().In(unit.DistanceFoot)) > 0.1 {
		t.Errorf("expected the solved zero to cross the sight line near 200 yards, height was %f ft", atZero.Height().In(unit.DistanceFoot))
	}
}

func TestZeroSolverRejectsUnreachableDistance(t *testing.T) {
	weapon, ammo, atmosphere := sampleShot(t)
	cfg := looseConfig()
	cfg.MaxIterations = 5
	engine, err := ballistics.NewEngine("rk4", cfg)
	if err != nil {
		t.Fatalf("NewEngine: %v", err)
	}
	_, _, err = ballistics.SolveZero(engine, weapon, ammo, atmosphere, unit.MustCreateDistance(5000, unit.DistanceYard), zeroAngle(), cfg)
	if err == nil {
		t.Error("expected a ZeroFindingError for a distance far beyond the bullet's reach")
	}
}

func TestZeroSolverHandlesNonzeroLookAngle(t *testing.T) {
	weapon, ammo, atmosphere := sampleShot(t)
	cfg := looseConfig()
	engine, err := ballistics.NewEngine("rk4", cfg)
	if err != nil {
		t.Fatalf("NewEngine: %v", err)
	}
	// A shallow uphill look angle, nonzero enough to exercise the look-angle wiring into the trial shot.
	lookAngle := unit.MustCreateAngular(0.0001, unit.AngularRadian)
	zeroed, elevation, err := ballistics.SolveZero(engine, weapon, ammo, atmosphere, unit.MustCreateDistance(200, unit.DistanceYard), lookAngle, cfg)
	if err != nil {
		t.Fatalf("SolveZero: %v", err)
	}
	if elevation.In(unit.AngularMOA) <= 0 {
		t.Errorf("expected a positive barrel elevation to reach a 200-yard zero, got %s", elevation)
	}

	shot, err := ballistics.CreateShot(zeroed, ammo, atmosphere, nil, lookAngle, zeroAngle(), zeroAngle(), zeroAngle())
	if err != nil {
		t.Fatalf("CreateShot: %v", err)
	}
	trajectory, err := engine.Solve(shot, unit.MustCreateDistance(210, unit.DistanceYard), unit.MustCreateDistance(200, unit.DistanceYard), nil)
	if err != nil {
		t.Fatalf("Solve: %v", err)
	}
	atZero, err := trajectory.AtRange(unit.MustCreateDistance(200, unit.DistanceYard))
	if err != nil {
		t.Fatalf("AtRange: %v", err)
	}
	if math.Abs(atZero.Height().In(unit.DistanceFoot)) > 0.1 {
		t.Errorf("expected the uphill zero to cross the sight line near 200 yards, height was %f ft", atZero.Height().In(unit.DistanceFoot))
	}
}

func TestDangerSpaceBracketsReference(t *testing.T) {
	weapon, ammo, atmosphere := sampleShot(t)
	weapon.SetZeroElevation(unit.MustCreateAngular(5, unit.AngularMOA))
	engine, err := ballistics.NewEngine("rk4", ballistics.DefaultConfig())
	if err != nil {
		t.Fatalf("NewEngine: %v", err)
	}
	shot, err := ballistics.CreateShot(weapon, ammo, atmosphere, nil, zeroAngle(), zeroAngle(), zeroAngle(), zeroAngle())
	if err != nil {
		t.Fatalf("CreateShot: %v", err)
	}
	trajectory, err := engine.Solve(shot, unit.MustCreateDistance(400, unit.DistanceYard), unit.MustCreateDistance(50, unit.DistanceYard), nil)
	if err != nil {
		t.Fatalf("Solve: %v", err)
	}
	reference := unit.MustCreateDistance(200, unit.DistanceYard)
	danger, err := trajectory.DangerSpace(unit.MustCreateDistance(1.5, unit.DistanceFoot), reference)
	if err != nil {
		t.Fatalf("DangerSpace: %v", err)
	}
	if danger.Near.In(unit.DistanceFoot) > reference.In(unit.DistanceFoot) {
		t.Errorf("danger space near edge %f should not be beyond the reference range %f", danger.Near.In(unit.DistanceFoot), reference.In(unit.DistanceFoot))
	}
	if danger.Far.In(unit.DistanceFoot) < reference.In(unit.DistanceFoot) {
		t.Errorf("danger space far edge %f should not fall short of the reference range %f", danger.Far.In(unit.DistanceFoot), reference.In(unit.DistanceFoot))
	}
	if danger.Length().In(unit.DistanceFoot) < 0 {
		t.Errorf("danger space length should not be negative, got %f", danger.Length().In(unit.DistanceFoot))
	}
}

func TestCancellationStopsEarlyAndReturnsPartialTrajectory(t *testing.T) {
	weapon, ammo, atmosphere := sampleShot(t)
	engine, err := ballistics.NewEngine("rk4", ballistics.DefaultConfig())
	if err != nil {
		t.Fatalf("NewEngine: %v", err)
	}
	shot, err := ballistics.CreateShot(weapon, ammo, atmosphere, nil, zeroAngle(), zeroAngle(), zeroAngle(), zeroAngle())
	if err != nil {
		t.Fatalf("CreateShot: %v", err)
	}
	calls := 0
	shouldContinue := func() bool {
		calls++
		return calls < 3
	}
	_, err = engine.Solve(shot, unit.MustCreateDistance(2000, unit.DistanceYard), unit.MustCreateDistance(100, unit.DistanceYard), shouldContinue)
	if err == nil {
		t.Fatal("expected a CancelledError")
	}
	cancelled, ok := err.(*ballistics.CancelledError)
	if !ok {
		t.Fatalf("expected *CancelledError, got %T", err)
	}
	// The predicate is consulted once per emitted sample and returns false on its 3rd call,
	// so the 3rd emitted sample is the last one kept.
	if cancelled.PartialTrajectory.Len() != 3 {
		t.Errorf("expected exactly 3 samples before cancellation, got %d", cancelled.PartialTrajectory.Len())
	}
}

func TestEulerAndRK4RoughlyAgreeOverAShortFlight(t *testing.T) {
	weapon, ammo, atmosphere := sampleShot(t)
	weapon.SetZeroElevation(unit.MustCreateAngular(3, unit.AngularMOA))

	rk4, err := ballistics.NewEngine("rk4", ballistics.DefaultConfig())
	if err != nil {
		t.Fatalf("NewEngine(rk4): %v", err)
	}
	euler, err := ballistics.NewEngine("euler", ballistics.DefaultConfig())
	if err != nil {
		t.Fatalf("NewEngine(euler): %v", err)
	}

	shot, err := ballistics.CreateShot(weapon, ammo, atmosphere, nil, zeroAngle(), zeroAngle(), zeroAngle(), zeroAngle())
	if err != nil {
		t.Fatalf("CreateShot: %v", err)
	}

	rk4Trajectory, err := rk4.Solve(shot, unit.MustCreateDistance(100, unit.DistanceYard), unit.MustCreateDistance(100, unit.DistanceYard), nil)
	if err != nil {
		t.Fatalf("rk4 Solve: %v", err)
	}
	eulerTrajectory, err := euler.Solve(shot, unit.MustCreateDistance(100, unit.DistanceYard), unit.MustCreateDistance(100, unit.DistanceYard), nil)
	if err != nil {
		t.Fatalf("euler Solve: %v", err)
	}

	rk4Sample, err := rk4Trajectory.AtRange(unit.MustCreateDistance(100, unit.DistanceYard))
	if err != nil {
		t.Fatalf("rk4 AtRange: %v", err)
	}
	eulerSample, err := eulerTrajectory.AtRange(unit.MustCreateDistance(100, unit.DistanceYard))
	if err != nil {
		t.Fatalf("euler AtRange: %v", err)
	}

	heightDiff := math.Abs(rk4Sample.Height().In(unit.DistanceFoot) - eulerSample.Height().In(unit.DistanceFoot))
	if heightDiff > 0.5 {
		t.Errorf("euler and rk4 height disagree by more than expected over 100 yards: %f ft", heightDiff)
	}
}

func TestWindDeflectsTrajectoryLaterally(t *testing.T) {
	weapon, ammo, atmosphere := sampleShot(t)
	weapon.SetZeroElevation(zeroAngle())
	engine, err := ballistics.NewEngine("rk4", ballistics.DefaultConfig())
	if err != nil {
		t.Fatalf("NewEngine: %v", err)
	}
	crosswind := ballistics.CreateOnlyWindInfo(unit.MustCreateVelocity(10, unit.VelocityMPH), unit.MustCreateAngular(90, unit.AngularDegree))
	shot, err := ballistics.CreateShot(weapon, ammo, atmosphere, crosswind, zeroAngle(), zeroAngle(), zeroAngle(), zeroAngle())
	if err != nil {
		t.Fatalf("CreateShot: %v", err)
	}
	trajectory, err := engine.Solve(shot, unit.MustCreateDistance(300, unit.DistanceYard), unit.MustCreateDistance(300, unit.DistanceYard), nil)
	if err != nil {
		t.Fatalf("Solve: %v", err)
	}
	sample, err := trajectory.AtRange(unit.MustCreateDistance(300, unit.DistanceYard))
	if err != nil {
		t.Fatalf("AtRange: %v", err)
	}
	if math.Abs(sample.Windage().In(unit.DistanceFoot)) < 0.1 {
		t.Errorf("expected a 10 mph full crosswind to produce noticeable windage over 300 yards, got %f ft", sample.Windage().In(unit.DistanceFoot))
	}
}

func TestCantRotatesDropIntoWindage(t *testing.T) {
	weapon, ammo, atmosphere := sampleShot(t)
	weapon.SetZeroElevation(zeroAngle())
	engine, err := ballistics.NewEngine("rk4", ballistics.DefaultConfig())
	if err != nil {
		t.Fatalf("NewEngine: %v", err)
	}
	// A 90-degree cant rolls the weapon onto its side: the drop that would normally show up as
	// a drop in height instead shows up as windage, while height stays near the bore line.
	cant := unit.MustCreateAngular(90, unit.AngularDegree)
	shot, err := ballistics.CreateShot(weapon, ammo, atmosphere, nil, zeroAngle(), cant, zeroAngle(), zeroAngle())
	if err != nil {
		t.Fatalf("CreateShot: %v", err)
	}
	trajectory, err := engine.Solve(shot, unit.MustCreateDistance(500, unit.DistanceYard), unit.MustCreateDistance(500, unit.DistanceYard), nil)
	if err != nil {
		t.Fatalf("Solve: %v", err)
	}
	sample, err := trajectory.AtRange(unit.MustCreateDistance(500, unit.DistanceYard))
	if err != nil {
		t.Fatalf("AtRange: %v", err)
	}
	if math.Abs(sample.Height().In(unit.DistanceFoot)+weapon.SightHeight().In(unit.DistanceFoot)) > 1.0 {
		t.Errorf("expected a 90-degree cant to leave height near the bore line, got %f ft", sample.Height().In(unit.DistanceFoot))
	}
	if math.Abs(sample.Windage().In(unit.DistanceFoot)) < 2.0 {
		t.Errorf("expected a 90-degree cant to turn drop into substantial windage, got %f ft", sample.Windage().In(unit.DistanceFoot))
	}
}

func TestShotRejectsInvalidInputs(t *testing.T) {
	weapon, ammo, atmosphere := sampleShot(t)
	zeroVelocityAmmo := ballistics.CreateAmmunition(ammo.Bullet(), unit.MustCreateVelocity(0, unit.VelocityFPS))
	if _, err := ballistics.CreateShot(weapon, zeroVelocityAmmo, atmosphere, nil, zeroAngle(), zeroAngle(), zeroAngle(), zeroAngle()); err == nil {
		t.Error("expected an error for a zero muzzle velocity")
	}
	steepLookAngle := unit.MustCreateAngular(91, unit.AngularDegree)
	if _, err := ballistics.CreateShot(weapon, ammo, atmosphere, nil, steepLookAngle, zeroAngle(), zeroAngle(), zeroAngle()); err == nil {
		t.Error("expected an error for a look angle beyond 90 degrees")
	}

	shot, err := ballistics.CreateShot(weapon, ammo, atmosphere, nil, zeroAngle(), zeroAngle(), zeroAngle(), zeroAngle())
	if err != nil {
		t.Fatalf("CreateShot: %v", err)
	}
	if _, err := shot.WithLookAngle(unit.MustCreateAngular(89, unit.AngularDegree)); err != nil {
		t.Errorf("WithLookAngle should accept a valid angle: %v", err)
	}
	if _, err := shot.WithLookAngle(steepLookAngle); err == nil {
		t.Error("WithLookAngle should reject a look angle beyond 90 degrees")
	}
}

func TestEngineRejectsUnknownKind(t *testing.T) {
	if _, err := ballistics.NewEngine("rk5", ballistics.DefaultConfig()); err == nil {
		t.Error("expected an UnknownEngineError for an unrecognised engine kind")
	}
}

func TestRegistryLookup(t *testing.T) {
	for _, name := range ballistics.RegisteredEngines() {
		if _, err := ballistics.LookupEngine(name, ballistics.DefaultConfig()); err != nil {
			t.Errorf("LookupEngine(%q) failed: %v", name, err)
		}
	}
	if _, err := ballistics.LookupEngine("does_not_exist", ballistics.DefaultConfig()); err == nil {
		t.Error("expected an UnknownEngineError for an unregistered engine name")
	}
}

func TestTrajectoryCSVExport(t *testing.T) {
	weapon, ammo, atmosphere := sampleShot(t)
	engine, err := ballistics.NewEngine("rk4", ballistics.DefaultConfig())
	if err != nil {
		t.Fatalf("NewEngine: %v", err)
	}
	shot, err := ballistics.CreateShot(weapon, ammo, atmosphere, nil, zeroAngle(), zeroAngle(), zeroAngle(), zeroAngle())
	if err != nil {
		t.Fatalf("CreateShot: %v", err)
	}
	trajectory, err := engine.Solve(shot, unit.MustCreateDistance(200, unit.DistanceYard), unit.MustCreateDistance(100, unit.DistanceYard), nil)
	if err != nil {
		t.Fatalf("Solve: %v", err)
	}

	var buf bytes.Buffer
	if err := trajectory.ExportCSV(&buf); err != nil {
		t.Fatalf("ExportCSV: %v", err)
	}
	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	if len(lines) != trajectory.Len()+1 {
		t.Errorf("expected a header row plus %d sample rows, got %d lines", trajectory.Len(), len(lines))
	}
	if !strings.HasPrefix(lines[0], "time_s,range_ft,height_ft,windage_ft,velocity_fps,mach,energy_ftlb") {
		t.Errorf("unexpected CSV header: %s", lines[0])
	}
}

func TestTrajectorySummary(t *testing.T) {
	weapon, ammo, atmosphere := sampleShot(t)
	weapon.SetZeroElevation(unit.MustCreateAngular(5, unit.AngularMOA))
	engine, err := ballistics.NewEngine("rk4", ballistics.DefaultConfig())
	if err != nil {
		t.Fatalf("NewEngine: %v", err)
	}
	shot, err := ballistics.CreateShot(weapon, ammo, atmosphere, nil, zeroAngle(), zeroAngle(), zeroAngle(), zeroAngle())
	if err != nil {
		t.Fatalf("CreateShot: %v", err)
	}
	trajectory, err := engine.Solve(shot, unit.MustCreateDistance(500, unit.DistanceYard), unit.MustCreateDistance(100, unit.DistanceYard), nil)
	if err != nil {
		t.Fatalf("Solve: %v", err)
	}
	summary := trajectory.Summary()
	if !summary.HasApex {
		t.Error("expected an apex for an elevated, sub-transonic-range shot")
	}
	if summary.Apex.VelocityVector().Y < -1e-6 {
		t.Errorf("apex sample should have vertical velocity close to zero, got %f", summary.Apex.VelocityVector().Y)
	}
	if summary.TimeOfFlight <= 0 {
		t.Error("expected a positive time of flight")
	}
	if len(summary.ZeroDistances) == 0 {
		t.Error("expected at least one sight-line crossing for an elevated shot")
	}
}

func TestG7BallisticCoefficientValidatesLikeG1(t *testing.T) {
	if _, err := ballistics.CreateBallisticCoefficient(0.22, ballistics.DragTableG7); err != nil {
		t.Fatalf("CreateBallisticCoefficient(G7): %v", err)
	}
	bc, _ := ballistics.CreateBallisticCoefficient(0.22, ballistics.DragTableG7)
	if bc.Table() != ballistics.DragTableG7 {
		t.Errorf("expected Table() to report DragTableG7, got %d", bc.Table())
	}
}
