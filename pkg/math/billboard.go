package math

// minLookSq is the squared distance under which the camera is treated as sitting on the object.
const minLookSq = 0.0001

// parallelCos is cos(1°); look vectors closer than this to the rotation axis are degenerate.
const parallelCos = 0.9982547

// Billboard returns a world matrix that turns a quad at object to face the camera.
// The local X axis maps to the camera-relative right vector, Y to up and Z to the
// camera-to-object direction. cameraForward is only used when the camera sits on
// the object and may be zero.
func Billboard(object, cameraPos, cameraUp, cameraForward Vec3) Mat4 {
	look := object.Sub(cameraPos)
	if look.LengthSquared() < minLookSq {
		if cameraForward.LengthSquared() > 0 {
			look = cameraForward.Neg()
		} else {
			look = Forward
		}
	}
	look = look.Normalize()

	right := cameraUp.Cross(look)
	if right.LengthSquared() < minLookSq {
		// up is parallel to the view direction
		right = Right
	}
	right = right.Normalize()
	up := look.Cross(right)

	return Mat4{
		right.X, right.Y, right.Z, 0,
		up.X, up.Y, up.Z, 0,
		look.X, look.Y, look.Z, 0,
		object.X, object.Y, object.Z, 1,
	}
}

// ConstrainedBillboard returns a world matrix that rotates a quad at object about
// axis only, turning it toward the camera as far as the constraint allows.
// The local Y axis is the rotation axis.
func ConstrainedBillboard(object, cameraPos, axis, cameraForward Vec3) Mat4 {
	look := object.Sub(cameraPos)
	if look.LengthSquared() < minLookSq {
		if cameraForward.LengthSquared() > 0 {
			look = cameraForward.Neg()
		} else {
			look = Forward
		}
	}
	look = look.Normalize()

	var right, facing Vec3
	d := axis.Dot(look)
	if d > parallelCos || d < -parallelCos {
		facing = Forward
		if fd := axis.Dot(Forward); fd > parallelCos || fd < -parallelCos {
			facing = Right
		}
		right = axis.Cross(facing).Normalize()
		facing = right.Cross(axis).Normalize()
	} else {
		right = axis.Cross(look).Normalize()
		facing = right.Cross(axis).Normalize()
	}

	return Mat4{
		right.X, right.Y, right.Z, 0,
		axis.X, axis.Y, axis.Z, 0,
		facing.X, facing.Y, facing.Z, 0,
		object.X, object.Y, object.Z, 1,
	}
}
