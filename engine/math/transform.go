package math

func TransformFromPositionScale(position Vec3, scale Vec3) *Transform {
	return TransformFromPositionRotationScale(position, NewVec3Zero(), scale)
}

func TransformFromPositionRotationScale(position Vec3, rotation Vec3, scale Vec3) *Transform {
	t := &Transform{}
	t.SetPositionRotationScale(position, rotation, scale)
	t.Local = NewMat4Identity()
	return t
}

// SetRotation sets the Euler angles, in degrees.
func (t *Transform) SetRotation(rotation Vec3) {
	t.Rotation = rotation
	t.IsDirty = true
}

func (t *Transform) SetPositionRotationScale(position Vec3, rotation Vec3, scale Vec3) {
	t.Position = position
	t.Rotation = rotation
	t.Scale = scale
	t.IsDirty = true
}

// GetLocal returns Translate * RotX * RotY * RotZ * Scale, rebuilding it only
// when the transform changed.
func (t *Transform) GetLocal() Mat4 {
	if t == nil {
		return NewMat4Identity()
	}
	if t.IsDirty {
		rot := NewMat4EulerXYZ(DegToRad(t.Rotation.X), DegToRad(t.Rotation.Y), DegToRad(t.Rotation.Z))
		tr := NewMat4Translation(t.Position)
		t.Local = tr.Mul(rot).Mul(NewMat4Scale(t.Scale))
		t.IsDirty = false
	}
	return t.Local
}
