package math3d

// Transform composes a position, rotation, and per-axis scale.
// It is consumed by the screen-space projector as the camera transform.
type Transform struct {
	Position Vec3
	Rotation Quaternion
	Scale    Vec3
}

// NewTransform creates a transform with the given position and rotation
// and unit scale.
func NewTransform(position Vec3, rotation Quaternion) Transform {
	return Transform{
		Position: position,
		Rotation: rotation,
		Scale:    One3(),
	}
}

// IdentityTransform returns a transform at the origin with no rotation
// and unit scale.
func IdentityTransform() Transform {
	return NewTransform(Zero3(), QuaternionIdentity())
}

// GetPosition returns the translation component.
func (t Transform) GetPosition() Vec3 {
	return t.Position
}

// GetRotation returns the rotation component.
func (t Transform) GetRotation() Quaternion {
	return t.Rotation
}

// GetScale returns the per-axis scale component.
func (t Transform) GetScale() Vec3 {
	return t.Scale
}

// Apply transforms a point: scale, rotate, then translate.
func (t Transform) Apply(p Vec3) Vec3 {
	return t.Rotation.RotateVector(p.Mul(t.Scale)).Add(t.Position)
}
