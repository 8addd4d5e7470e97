package math

import (
	"math"
	"testing"
)

func TestQuatIdentity(t *testing.T) {
	q := QuatIdentity()
	if q.X != 0 || q.Y != 0 || q.Z != 0 || q.W != 1 {
		t.Errorf("Identity quaternion should be (0,0,0,1), got (%v,%v,%v,%v)", q.X, q.Y, q.Z, q.W)
	}
	if q.ToMat4() != Identity() {
		t.Error("identity quaternion should produce identity matrix")
	}
}

func TestQuatNormalize(t *testing.T) {
	q := Quat{X: 1, Y: 2, Z: 3, W: 4}
	n := q.Normalize()

	length := float32(math.Sqrt(float64(n.X*n.X + n.Y*n.Y + n.Z*n.Z + n.W*n.W)))
	if math.Abs(float64(length-1.0)) > 0.0001 {
		t.Errorf("Normalized quaternion length should be 1, got %v", length)
	}
	if (Quat{}).Normalize() != QuatIdentity() {
		t.Error("zero quaternion should normalize to identity")
	}
}

func TestQuatToMat4MatchesRotateY(t *testing.T) {
	angle := float32(math.Pi / 3)
	q := QuatFromAxisAngle(UnitY, angle)
	got := q.ToMat4()
	want := RotateY(angle)
	for i := range got {
		if abs(got[i]-want[i]) > 1e-5 {
			t.Fatalf("element %d: got %v, want %v", i, got[i], want[i])
		}
	}
}

func TestQuatMul(t *testing.T) {
	// Two 45 degree turns about Z make a 90 degree turn.
	q := QuatFromAxisAngle(UnitZ, float32(math.Pi/4))
	r := q.Mul(q)
	got := r.Rotate(UnitX)
	if !approxVec(got, UnitY, 1e-5) {
		t.Errorf("45+45 degrees about Z: got %v, want %v", got, UnitY)
	}
}
