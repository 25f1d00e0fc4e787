package math3d

import (
	"fmt"
	"math"
)

// Quaternion represents a rotation as W + Xi + Yj + Zk.
// Rotations compose right-to-left: a.Multiply(b) applies b first, then a.
type Quaternion struct {
	W, X, Y, Z float32
}

// Q creates a new Quaternion.
func Q(w, x, y, z float32) Quaternion {
	return Quaternion{w, x, y, z}
}

// QuaternionIdentity returns the identity rotation.
func QuaternionIdentity() Quaternion {
	return Quaternion{W: 1}
}

// FromAxisAngle builds a rotation of angle radians around axis.
// The axis does not need to be normalized.
func FromAxisAngle(axis Vec3, angle float32) Quaternion {
	axis = axis.Normalize()
	half := float64(angle) / 2
	s := float32(math.Sin(half))
	return Quaternion{
		W: float32(math.Cos(half)),
		X: axis.X * s,
		Y: axis.Y * s,
		Z: axis.Z * s,
	}
}

// FromEuler builds a rotation from pitch (X), yaw (Y), roll (Z) in radians,
// applied in yaw-pitch-roll order.
func FromEuler(pitch, yaw, roll float32) Quaternion {
	qy := FromAxisAngle(Up(), yaw)
	qx := FromAxisAngle(Right(), pitch)
	qz := FromAxisAngle(V3(0, 0, 1), roll)
	return qy.Multiply(qx).Multiply(qz)
}

// Multiply returns the Hamilton product a * b.
//
//nolint:st1016 // a*b naming convention is clearer for quaternion composition
func (a Quaternion) Multiply(b Quaternion) Quaternion {
	return Quaternion{
		W: a.W*b.W - a.X*b.X - a.Y*b.Y - a.Z*b.Z,
		X: a.W*b.X + a.X*b.W + a.Y*b.Z - a.Z*b.Y,
		Y: a.W*b.Y - a.X*b.Z + a.Y*b.W + a.Z*b.X,
		Z: a.W*b.Z + a.X*b.Y - a.Y*b.X + a.Z*b.W,
	}
}

// Conjugate returns the conjugate (the inverse rotation for unit quaternions).
func (a Quaternion) Conjugate() Quaternion {
	return Quaternion{a.W, -a.X, -a.Y, -a.Z}
}

// Dot returns the 4D dot product a · b.
//
//nolint:st1016 // a·b naming convention is clearer for quaternion operations
func (a Quaternion) Dot(b Quaternion) float32 {
	return a.W*b.W + a.X*b.X + a.Y*b.Y + a.Z*b.Z
}

// Len returns the quaternion magnitude.
func (a Quaternion) Len() float32 {
	return float32(math.Sqrt(float64(a.Dot(a))))
}

// Normalize returns the unit quaternion, or identity if degenerate.
func (a Quaternion) Normalize() Quaternion {
	l := a.Len()
	if l == 0 {
		return QuaternionIdentity()
	}
	return Quaternion{a.W / l, a.X / l, a.Y / l, a.Z / l}
}

// RotateVector rotates v by the quaternion (q * v * q').
func (a Quaternion) RotateVector(v Vec3) Vec3 {
	// Expanded q*v*q' avoids building two intermediate quaternions.
	u := V3(a.X, a.Y, a.Z)
	uv := u.Cross(v)
	uuv := u.Cross(uv)
	return v.Add(uv.Scale(2 * a.W)).Add(uuv.Scale(2))
}

// String returns a readable representation, e.g. "[1.000, 0.000, 0.000, 0.000]".
func (a Quaternion) String() string {
	return fmt.Sprintf("[%.3f, %.3f, %.3f, %.3f]", a.W, a.X, a.Y, a.Z)
}
