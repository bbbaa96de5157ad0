package ballistics

import (
	"fmt"
	"math"
)

//DragTableG1 selects the G1 (flat-base, 2-caliber ogive) reference drag curve.
const DragTableG1 byte = 1

//DragTableG2 selects the G2 reference drag curve.
const DragTableG2 byte = 2

//DragTableG5 selects the G5 reference drag curve.
const DragTableG5 byte = 3

//DragTableG6 selects the G6 reference drag curve.
const DragTableG6 byte = 4

//DragTableG7 selects the G7 (boat-tail, secant ogive) reference drag curve.
const DragTableG7 byte = 5

//DragTableG8 selects the G8 reference drag curve.
const DragTableG8 byte = 6

//DragTableGL selects the GL reference drag curve.
const DragTableGL byte = 7

//DragTableGI selects the GI reference drag curve.
const DragTableGI byte = 8

type dragFunction func(float64) float64

//BallisticCoefficient is the dimensionless ratio comparing a projectile's sectional density to a
//reference drag-law standard; combined with the table's Cd(Mach) curve it yields the drag
//deceleration used by the integrator.
type BallisticCoefficient struct {
	value float64
	table byte
	drag  dragFunction
}

func dragFunctionFactory(dragTable byte) dragFunction {
	switch dragTable {
	case DragTableG1:
		return func(mach float64) float64 {
			return calculateByCurve(g1Table, g1Curve, mach)
		}
	case DragTableG2:
		return func(mach float64) float64 {
			switch {
			case mach > 2.5:
				return 0.4465610 + mach*(-0.0958548+mach*0.00799645)
			case mach > 1.2:
				return 0.7016110 + mach*(-0.3075100+mach*0.05192560)
			case mach > 1.0:
				return -1.105010 + mach*(2.77195000-mach*1.26667000)
			case mach > 0.9:
				return -2.240370 + mach*2.63867000
			case mach >= 0.7:
				return 0.9099690 + mach*(-1.9017100+mach*1.21524000)
			default:
				return 0.2302760 + mach*(0.000210564-mach*0.1275050)
			}
		}
	case DragTableG5:
		return func(mach float64) float64 {
			switch {
			case mach > 2.0:
				return 0.671388 + mach*(-0.185208+mach*0.0204508)
			case mach > 1.1:
				return 0.134374 + mach*(0.4378330-mach*0.1570190)
			case mach > 0.9:
				return -0.924258 + mach*1.24904
			case mach >= 0.6:
				return 0.654405 + mach*(-1.4275000+mach*0.998463)
			default:
				return 0.186386 + mach*(-0.0342136-mach*0.035691)
			}
		}
	case DragTableG6:
		return func(mach float64) float64 {
			switch {
			case mach > 2.0:
				return 0.746228 + mach*(-0.255926+mach*0.0291726)
			case mach > 1.1:
				return 0.513638 + mach*(-0.015269-mach*0.0331221)
			case mach > 0.9:
				return -0.908802 + mach*1.25814
			case mach >= 0.6:
				return 0.366723 + mach*(-0.458435+mach*0.337906)
			default:
				return 0.264481 + mach*(-0.157237+mach*0.117441)
			}
		}
	case DragTableG7:
		return func(mach float64) float64 {
			return calculateByCurve(g7Table, g7Curve, mach)
		}
	case DragTableG8:
		return func(mach float64) float64 {
			switch {
			case mach > 1.1:
				return 0.639096 + mach*(-0.197471+mach*0.0216221)
			case mach >= 0.925:
				return -12.9053 + mach*(24.9181-mach*11.6191)
			default:
				return 0.210589 + mach*(-0.00184895+mach*0.00211107)
			}
		}
	case DragTableGI:
		return func(mach float64) float64 {
			switch {
			case mach > 1.65:
				return 0.845362 + mach*(-0.143989+mach*0.0113272)
			case mach > 1.2:
				return 0.630556 + mach*0.00701308
			case mach >= 0.7:
				return 0.531976 + mach*(-1.28079+mach*1.17628)
			default:
				return 0.2282
			}
		}
	case DragTableGL:
		return func(mach float64) float64 {
			switch {
			case mach > 1.0:
				return 0.286629 + mach*(0.3588930-mach*0.0610598)
			case mach >= 0.8:
				return 1.59969 + mach*(-3.9465500+mach*2.831370)
			default:
				return 0.333118 + mach*(-0.498448+mach*0.474774)
			}
		}
	default:
		return nil
	}
}

//CreateBallisticCoefficient constructs a ballistic coefficient for a built-in drag table.
func CreateBallisticCoefficient(value float64, dragTable byte) (BallisticCoefficient, error) {
	if dragTable < DragTableG1 || dragTable > DragTableGI {
		return BallisticCoefficient{}, &SolverInputError{Reason: fmt.Sprintf("unknown drag table %d", dragTable)}
	}
	if value <= 0 {
		return BallisticCoefficient{}, &SolverInputError{Reason: "ballistic coefficient must be greater than zero"}
	}
	return BallisticCoefficient{
		value: value,
		table: dragTable,
		drag:  dragFunctionFactory(dragTable),
	}, nil
}

//Value returns the ballistic coefficient itself.
func (v BallisticCoefficient) Value() float64 {
	return v.value
}

//Table returns the drag table this coefficient is expressed against.
func (v BallisticCoefficient) Table() byte {
	return v.table
}

//Drag returns the drag deceleration factor at the given Mach number: the table's Cd(Mach),
//scaled by the precomputed constant that folds sectional density and BC into one number.
func (v BallisticCoefficient) Drag(mach float64) float64 {
	return v.drag(mach) * cBallisticConstant / v.value
}

//CdAt returns the raw drag coefficient the reference table reports at the given Mach number,
//before it is scaled by ballistic coefficient. For G1/G7 the value comes from the piecewise-quadratic
//fit, which can fall slightly below or rise slightly above the table's own min/max Cd between
//table points, and past the last table Mach the last fitted segment is extrapolated rather than
//held at the boundary value. The closed-form tables are polynomials and are not clamped either.
func (v BallisticCoefficient) CdAt(mach float64) float64 {
	return v.drag(mach)
}

//cBallisticConstant converts a dimensionless drag-table coefficient, a BC in lb/in², and a
//velocity in fps into a deceleration in fps² when combined as Drag(mach)*density_ratio*velocity.
const cBallisticConstant = 2.08551e-04

//DataPoint is a single (Mach, Cd) sample of a drag table.
type DataPoint struct {
	A, B float64
}

//CurvePoint is a locally fitted quadratic spline segment covering one bracket of a drag table.
type CurvePoint struct {
	A, B, C float64
}

//calculateCurve fits a 2nd-degree polynomial through each interior point and its two neighbors,
//giving a piecewise-quadratic spline through the full table.
func calculateCurve(dataPoints []DataPoint) []CurvePoint {
	numPoints := len(dataPoints)
	curve := make([]CurvePoint, numPoints)

	rate := (dataPoints[1].B - dataPoints[0].B) / (dataPoints[1].A - dataPoints[0].A)
	curve[0] = CurvePoint{A: 0, B: rate, C: dataPoints[0].B - dataPoints[0].A*rate}

	for i := 1; i < numPoints-1; i++ {
		x1, x2, x3 := dataPoints[i-1].A, dataPoints[i].A, dataPoints[i+1].A
		y1, y2, y3 := dataPoints[i-1].B, dataPoints[i].B, dataPoints[i+1].B
		a := ((y3-y1)*(x2-x1) - (y2-y1)*(x3-x1)) / ((x3*x3-x1*x1)*(x2-x1) - (x2*x2-x1*x1)*(x3-x1))
		b := (y2 - y1 - a*(x2*x2-x1*x1)) / (x2 - x1)
		c := y1 - (a*x1*x1 + b*x1)
		curve[i] = CurvePoint{A: a, B: b, C: c}
	}
	rate = (dataPoints[numPoints-1].B - dataPoints[numPoints-2].B) / (dataPoints[numPoints-1].A - dataPoints[numPoints-2].A)
	curve[numPoints-1] = CurvePoint{A: 0, B: rate, C: dataPoints[numPoints-1].B - dataPoints[numPoints-2].A*rate}
	return curve
}

//calculateByCurve evaluates a piecewise-quadratic drag curve at mach with no cached bracket;
//values outside the table's domain clamp to the nearest end bracket.
func calculateByCurve(data []DataPoint, curve []CurvePoint, mach float64) float64 {
	numPoints := len(curve)
	mlo, mhi := 0, numPoints-2

	for (mhi - mlo) > 1 {
		mid := (mhi + mlo) / 2
		if data[mid].A < mach {
			mlo = mid
		} else {
			mhi = mid
		}
	}

	m := mlo
	if (data[mhi].A - mach) <= (mach - data[mlo].A) {
		m = mhi
	}

	return curve[m].C + mach*(curve[m].B+curve[m].A*mach)
}

//DragScratch holds the per-solve bracket-search cache for a curve-based drag table (G1/G7).
//It must never be shared across concurrent solves: the bracket index it remembers is only valid
//for the monotonically-descending Mach sequence of a single shot.
type DragScratch struct {
	lastIndex int
}

//dragByCurveCached looks up mach in a piecewise-quadratic curve, starting the bracket search at
//the scratch's last known index. During a shot, Mach decreases roughly monotonically, so the
//search degenerates to O(1) after the first call.
func dragByCurveCached(data []DataPoint, curve []CurvePoint, mach float64, scratch *DragScratch) float64 {
	numPoints := len(curve)
	maxIndex := numPoints - 2

	lo := scratch.lastIndex - 1
	if lo < 0 {
		lo = 0
	}
	hi := scratch.lastIndex + 1
	if hi > maxIndex {
		hi = maxIndex
	}
	if !(data[lo].A <= mach && mach <= data[hi].A) {
		lo, hi = 0, maxIndex
	}

	for (hi - lo) > 1 {
		mid := (hi + lo) / 2
		if data[mid].A < mach {
			lo = mid
		} else {
			hi = mid
		}
	}

	m := lo
	if (data[hi].A - mach) <= (mach - data[lo].A) {
		m = hi
	}
	scratch.lastIndex = int(math.Max(0, math.Min(float64(maxIndex), float64(m))))

	return curve[m].C + mach*(curve[m].B+curve[m].A*mach)
}

//DragCached returns the same value as Drag, but exploits scratch's cached bracket index for the
//G1/G7 curve tables. Closed-form tables ignore the scratch since every lookup is already O(1).
func (v BallisticCoefficient) DragCached(mach float64, scratch *DragScratch) float64 {
	var cd float64
	switch v.table {
	case DragTableG1:
		cd = dragByCurveCached(g1Table, g1Curve, mach, scratch)
	case DragTableG7:
		cd = dragByCurveCached(g7Table, g7Curve, mach, scratch)
	default:
		cd = v.drag(mach)
	}
	return cd * cBallisticConstant / v.value
}
