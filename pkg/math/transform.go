package math

// Transform is an affine transform made of position, rotation and non-uniform scale.
type Transform struct {
	Position Vec3
	Rotation Quat
	Scale    Vec3
}

// NewTransform returns an identity transform.
func NewTransform() Transform {
	return Transform{
		Rotation: QuatIdentity(),
		Scale:    Vec3{1, 1, 1},
	}
}

// At returns an identity transform placed at p.
func At(p Vec3) Transform {
	t := NewTransform()
	t.Position = p
	return t
}

// Matrix composes the transform as translate * rotate * scale.
func (t Transform) Matrix() Mat4 {
	return TranslateVec(t.Position).
		Mul(t.Rotation.ToMat4()).
		Mul(Scale(t.Scale.X, t.Scale.Y, t.Scale.Z))
}

// Facing returns the direction the local +Z axis points after rotation.
func (t Transform) Facing() Vec3 {
	return t.Rotation.Rotate(UnitZ)
}
