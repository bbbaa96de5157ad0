package vector_test

import (
	"math"
	"testing"

	"github.com/huntfield/ballistics/bmath/vector"
)

func TestVectorCreation(t *testing.T) {
	v := vector.Create(1, 2, 3)
	if v.X != 1 || v.Y != 2 || v.Z != 3 {
		t.Error("Creation failed")
	}

	c := v.Copy()
	if c.X != 1 || c.Y != 2 || c.Z != 3 {
		t.Error("Copy failed")
	}
}

func TestUnary(t *testing.T) {
	v1 := vector.Create(1, 2, 3)
	if math.Abs(v1.Magnitude()-3.74165738677) > 1e-7 {
		t.Error("Magnitude failed")
	}

	v2 := v1.Negate()
	if v2.X != -1 || v2.Y != -2 || v2.Z != -3 {
		t.Error("Negate failed")
	}

	v2 = v1.Normalize()
	if v2.X > 1 || v2.Y > 1 || v2.Z > 1 {
		t.Error("Normalize failed")
	}

	v1 = vector.Create(0, 0, 0)
	v2 = v1.Normalize()
	if v2.X != 0 || v2.Y != 0 || v2.Z != 0 {
		t.Error("Normalize failed")
	}
}

func TestBinary(t *testing.T) {
	v1 := vector.Create(1, 2, 3)
	v2 := v1.Add(v1.Copy())
	if v2.X != 2 || v2.Y != 4 || v2.Z != 6 {
		t.Error("Add failed")
	}

	v2 = v1.Subtract(v2)
	if v2.X != -1 || v2.Y != -2 || v2.Z != -3 {
		t.Error("Subtract failed")
	}

	if v1.Dot(v1.Copy()) != (1 + 4 + 9) {
		t.Error("Dot failed")
	}

	x := vector.Create(1, 0, 0)
	y := vector.Create(0, 1, 0)
	z := x.Cross(y)
	if math.Abs(z.X) > 1e-9 || math.Abs(z.Y) > 1e-9 || math.Abs(z.Z-1) > 1e-9 {
		t.Errorf("Cross failed: %v", z)
	}
	if y.Cross(x).Z >= 0 {
		t.Error("Cross should anticommute")
	}

	v2 = v1.MultiplyByConst(3)
	if v2.X != 3 || v2.Y != 6 || v2.Z != 9 {
		t.Error("MultiplyByConst failed")
	}
}

func TestRotation(t *testing.T) {
	v := vector.Create(0, 1, 0)

	r := v.RotateAroundZ(math.Pi / 2)
	if math.Abs(r.X-(-1)) > 1e-9 || math.Abs(r.Y) > 1e-9 {
		t.Errorf("RotateAroundZ failed: %v", r)
	}

	r = vector.Create(1, 0, 0).RotateAroundY(math.Pi / 2)
	if math.Abs(r.X) > 1e-9 || math.Abs(r.Z-(-1)) > 1e-9 {
		t.Errorf("RotateAroundY failed: %v", r)
	}

	r = vector.Create(0, 0, 1).RotateAroundX(math.Pi / 2)
	if math.Abs(r.Y-1) > 1e-9 || math.Abs(r.Z) > 1e-9 {
		t.Errorf("RotateAroundX failed: %v", r)
	}

	// no rotation at all should be the identity
	id := v.ToShotFrame(0, 0, 0)
	if math.Abs(id.X-v.X) > 1e-9 || math.Abs(id.Y-v.Y) > 1e-9 || math.Abs(id.Z-v.Z) > 1e-9 {
		t.Errorf("ToShotFrame identity failed: %v", id)
	}

	// a pure look angle pitches the bore direction up, mixing X and Y
	boreUp := vector.Create(1, 0, 0).ToShotFrame(0, math.Pi/2, 0)
	if math.Abs(boreUp.X) > 1e-9 || math.Abs(boreUp.Y-1) > 1e-9 || math.Abs(boreUp.Z) > 1e-9 {
		t.Errorf("ToShotFrame look angle failed: %v", boreUp)
	}

	// a pure cant rolls the up direction into the lateral one, leaving the bore line fixed
	rolledUp := vector.Create(0, 1, 0).ToShotFrame(math.Pi/2, 0, 0)
	if math.Abs(rolledUp.X) > 1e-9 || math.Abs(rolledUp.Y) > 1e-9 || math.Abs(rolledUp.Z-1) > 1e-9 {
		t.Errorf("ToShotFrame cant failed: %v", rolledUp)
	}
}
