package rmsd

import (
	"errors"
	"math"

	"gonum.org/v1/gonum/spatial/r3"
)

// ErrDegenerateAxis is returned by Matrix.Axis when the rotation angle is too
// close to 0 or pi for the axis to be recovered from the matrix.
var ErrDegenerateAxis = errors.New("rotation axis is ill-conditioned")

// axisTolerance is the smallest |sin(theta)| for which Axis will divide.
const axisTolerance = 1e-6

// Matrix represents a 3x3 matrix, in row-major order
// | 0 1 2 |
// | 3 4 5 |
// | 6 7 8 |
//
// When used as a rotation, a point p is mapped to Mp.
type Matrix [9]float64

// Identity returns the 3x3 identity matrix.
func Identity() Matrix {
	return Matrix{
		1, 0, 0,
		0, 1, 0,
		0, 0, 1,
	}
}

func (a Matrix) Mult(b Matrix) Matrix {
	return Matrix{
		a[0]*b[0] + a[1]*b[3] + a[2]*b[6],
		a[0]*b[1] + a[1]*b[4] + a[2]*b[7],
		a[0]*b[2] + a[1]*b[5] + a[2]*b[8],

		a[3]*b[0] + a[4]*b[3] + a[5]*b[6],
		a[3]*b[1] + a[4]*b[4] + a[5]*b[7],
		a[3]*b[2] + a[4]*b[5] + a[5]*b[8],

		a[6]*b[0] + a[7]*b[3] + a[8]*b[6],
		a[6]*b[1] + a[7]*b[4] + a[8]*b[7],
		a[6]*b[2] + a[7]*b[5] + a[8]*b[8],
	}
}

func (a Matrix) Transpose() Matrix {
	return Matrix{
		a[0], a[3], a[6],
		a[1], a[4], a[7],
		a[2], a[5], a[8],
	}
}

func (a Matrix) Det() float64 {
	// 048 + 156 + 237 - 246 - 138 - 057
	return a[0]*a[4]*a[8] +
		a[1]*a[5]*a[6] +
		a[2]*a[3]*a[7] -
		a[2]*a[4]*a[6] -
		a[1]*a[3]*a[8] -
		a[0]*a[5]*a[7]
}

func (a Matrix) Trace() float64 {
	return a[0] + a[4] + a[8]
}

// Apply returns the product of a and the column vector p.
func (a Matrix) Apply(p r3.Vec) r3.Vec {
	return r3.Vec{
		X: a[0]*p.X + a[1]*p.Y + a[2]*p.Z,
		Y: a[3]*p.X + a[4]*p.Y + a[5]*p.Z,
		Z: a[6]*p.X + a[7]*p.Y + a[8]*p.Z,
	}
}

// Angle returns the angle of rotation (in radians, within [0, pi]) of the
// rotation matrix a: theta = arccos((trace(a) - 1) / 2).
//
// The cosine is clamped to [-1, 1] so that round off in an otherwise proper
// rotation matrix never produces NaN.
func (a Matrix) Angle() float64 {
	c := (a.Trace() - 1) / 2
	switch {
	case c > 1:
		c = 1
	case c < -1:
		c = -1
	}
	return math.Acos(c)
}

// Axis extracts the unit axis of rotation from the skew-symmetric part of a,
// given its rotation angle theta (usually computed with Angle).
//
// The extraction follows Eberly, "3D Game Engine Design", p. 16. It is not
// possible when sin(theta) vanishes, in which case ErrDegenerateAxis is
// returned.
func (a Matrix) Axis(theta float64) (r3.Vec, error) {
	s := math.Sin(theta)
	if math.Abs(s) < axisTolerance {
		return r3.Vec{}, ErrDegenerateAxis
	}
	v := r3.Vec{
		X: a[7] - a[5],
		Y: a[2] - a[6],
		Z: a[3] - a[1],
	}
	v = r3.Scale(1/(2*s), v)
	if r3.Norm(v) == 0 {
		return r3.Vec{}, ErrDegenerateAxis
	}
	return r3.Unit(v), nil
}

// AxisAngle builds the matrix rotating by theta radians (counter-clockwise,
// right-handed) about the axis u. u need not be normalized but must not be
// the zero vector.
func AxisAngle(u r3.Vec, theta float64) Matrix {
	u = r3.Unit(u)
	c, s := math.Cos(theta), math.Sin(theta)
	t := 1 - c
	return Matrix{
		c + u.X*u.X*t, u.X*u.Y*t - u.Z*s, u.X*u.Z*t + u.Y*s,
		u.Y*u.X*t + u.Z*s, c + u.Y*u.Y*t, u.Y*u.Z*t - u.X*s,
		u.Z*u.X*t - u.Y*s, u.Z*u.Y*t + u.X*s, c + u.Z*u.Z*t,
	}
}

func covariant_3x3(cols int, a, b []float64) Matrix {
	var C Matrix
	var index int
	for r := 0; r < 3; r++ {
		for c := 0; c < 3; c++ {
			index = r*3 + c
			C[index] = 0
			for i := 0; i < cols; i++ {
				C[index] += a[r*cols+i] * b[c*cols+i]
			}
		}
	}
	return C
}
