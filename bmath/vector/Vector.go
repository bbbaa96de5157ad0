//Package vector provides the fixed-size 3D vector operations the integrator
//needs: addition, scaling, magnitude, and the look/cant/azimuth rotations
//used to carry gravity into a shot's body frame.
package vector

import (
	"fmt"
	"math"
)

//Vector is a 3D vector: X downrange, Y vertical up, Z rightward.
type Vector struct {
	X float64 //X-coordinate
	Y float64 //Y-coordinate
	Z float64 //Z-coordinate
}

func (v Vector) String() string {
	return fmt.Sprintf("[X=%f,Y=%f,Z=%f]", v.X, v.Y, v.Z)
}

//Create builds a vector from its coordinates.
func Create(x, y, z float64) Vector {
	return Vector{X: x, Y: y, Z: z}
}

//Copy returns a copy of the vector.
func (v Vector) Copy() Vector {
	return Vector{X: v.X, Y: v.Y, Z: v.Z}
}

//Dot returns the dot product of two vectors.
func (v Vector) Dot(b Vector) float64 {
	return v.X*b.X + v.Y*b.Y + v.Z*b.Z
}

//Cross returns the cross product of two vectors, used to project Earth's rotation vector onto a
//projectile's velocity for the Coriolis term.
func (v Vector) Cross(b Vector) Vector {
	return Create(v.Y*b.Z-v.Z*b.Y, v.Z*b.X-v.X*b.Z, v.X*b.Y-v.Y*b.X)
}

//Magnitude returns the Euclidean length of the vector.
func (v Vector) Magnitude() float64 {
	return math.Sqrt(v.Dot(v))
}

//MultiplyByConst scales the vector by a.
func (v Vector) MultiplyByConst(a float64) Vector {
	return Create(a*v.X, a*v.Y, a*v.Z)
}

//Add returns the sum of two vectors.
func (a Vector) Add(b Vector) Vector {
	return Create(a.X+b.X, a.Y+b.Y, a.Z+b.Z)
}

//Subtract returns a minus b.
func (a Vector) Subtract(b Vector) Vector {
	return Create(a.X-b.X, a.Y-b.Y, a.Z-b.Z)
}

//Negate returns the vector reflected through the origin.
func (v Vector) Negate() Vector {
	return Create(-v.X, -v.Y, -v.Z)
}

//Normalize returns a unit vector collinear with v, or the zero vector if v is too small to normalize.
func (v Vector) Normalize() Vector {
	magnitude := v.Magnitude()
	if math.Abs(magnitude) < 1e-10 {
		return v.Copy()
	}
	return v.MultiplyByConst(1.0 / magnitude)
}

//RotateAroundZ rotates the vector by angle (radians) around the Z axis, in the XY plane.
//Used to apply look angle: the pitch of the sight line off horizontal.
func (v Vector) RotateAroundZ(angle float64) Vector {
	sin, cos := math.Sincos(angle)
	return Create(v.X*cos-v.Y*sin, v.X*sin+v.Y*cos, v.Z)
}

//RotateAroundY rotates the vector by angle (radians) around the Y axis, in the XZ plane.
//Used to apply target azimuth.
func (v Vector) RotateAroundY(angle float64) Vector {
	sin, cos := math.Sincos(angle)
	return Create(v.X*cos+v.Z*sin, v.Y, -v.X*sin+v.Z*cos)
}

//RotateAroundX rotates the vector by angle (radians) around the X axis, in the YZ plane.
//Used to apply cant: a roll of the weapon about its own bore line.
func (v Vector) RotateAroundX(angle float64) Vector {
	sin, cos := math.Sincos(angle)
	return Create(v.X, v.Y*cos-v.Z*sin, v.Y*sin+v.Z*cos)
}

//ToShotFrame rotates a vector expressed in the horizontal/vertical world frame into the shot's
//body frame, applying look angle, then cant, then azimuth, in that fixed order.
func (v Vector) ToShotFrame(cant, look, azimuth float64) Vector {
	return v.RotateAroundZ(look).RotateAroundX(cant).RotateAroundY(azimuth)
}
