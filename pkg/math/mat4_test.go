package math

import (
	"math"
	"testing"
)

func TestIdentity(t *testing.T) {
	m := Identity()
	// Diagonal should be 1
	if m[0] != 1 || m[5] != 1 || m[10] != 1 || m[15] != 1 {
		t.Error("Identity diagonal should be 1")
	}
	// Off-diagonal should be 0
	if m[1] != 0 || m[4] != 0 {
		t.Error("Identity off-diagonal should be 0")
	}
}

func TestMulIdentity(t *testing.T) {
	m := Translate(1, 2, 3)
	result := m.Mul(Identity())

	if result != m {
		t.Errorf("M * I should equal M: got %v, want %v", result, m)
	}
}

func TestMulOrder(t *testing.T) {
	// Translate after scaling: the point is scaled first.
	m := Translate(10, 0, 0).Mul(Scale(2, 2, 2))
	got := m.TransformVec3(Vec3{1, 1, 1})
	want := Vec3{12, 2, 2}
	if got != want {
		t.Errorf("T*S applied to (1,1,1): got %v, want %v", got, want)
	}
}

func TestTranslate(t *testing.T) {
	m := Translate(5, 10, 15)

	// Translation should be in column 4 (indices 12, 13, 14)
	if m[12] != 5 || m[13] != 10 || m[14] != 15 {
		t.Errorf("Translate: got (%f, %f, %f), want (5, 10, 15)", m[12], m[13], m[14])
	}
	if got := m.Translation(); got != (Vec3{5, 10, 15}) {
		t.Errorf("Translation() = %v", got)
	}
}

func TestWithTranslation(t *testing.T) {
	m := Scale(2, 3, 4).WithTranslation(Vec3{1, 2, 3})
	if m.Translation() != (Vec3{1, 2, 3}) {
		t.Errorf("translation not replaced: %v", m.Translation())
	}
	if m[0] != 2 || m[5] != 3 || m[10] != 4 {
		t.Error("WithTranslation must not touch the basis")
	}
}

func TestScale(t *testing.T) {
	m := Scale(2, 3, 4)

	if m[0] != 2 || m[5] != 3 || m[10] != 4 {
		t.Errorf("Scale diagonal: got (%f, %f, %f), want (2, 3, 4)", m[0], m[5], m[10])
	}
}

func TestAxisScales(t *testing.T) {
	m := RotateY(0.7).Mul(Scale(2, 3, 4))
	s := m.AxisScales()
	if !approxVec(s, Vec3{2, 3, 4}, 1e-5) {
		t.Errorf("AxisScales = %v, want (2, 3, 4)", s)
	}
}

func TestTransformVec3(t *testing.T) {
	m := Translate(10, 20, 30)
	got := m.TransformVec3(Vec3{1, 2, 3})

	want := Vec3{11, 22, 33}
	if got != want {
		t.Errorf("TransformVec3: got %v, want %v", got, want)
	}
}

func TestTransformDirectionIgnoresTranslation(t *testing.T) {
	m := Translate(10, 20, 30).Mul(Scale(2, 2, 2))
	got := m.TransformDirection(Vec3{1, 2, 3})

	want := Vec3{2, 4, 6}
	if got != want {
		t.Errorf("TransformDirection: got %v, want %v", got, want)
	}
}

func TestRotateY90(t *testing.T) {
	m := RotateY(float32(math.Pi / 2)) // 90 degrees
	result := m.TransformVec3(Vec3{1, 0, 0})

	// After 90 degree Y rotation, (1,0,0) should become approximately (0,0,-1)
	if !approxVec(result, Vec3{0, 0, -1}, 0.001) {
		t.Errorf("RotateY 90: got %v, want (0, 0, -1)", result)
	}
}

func TestRotateZ90(t *testing.T) {
	m := RotateZ(float32(math.Pi / 2))
	result := m.TransformVec3(Vec3{1, 0, 0})

	if !approxVec(result, Vec3{0, 1, 0}, 0.001) {
		t.Errorf("RotateZ 90: got %v, want (0, 1, 0)", result)
	}
}

func TestPerspective(t *testing.T) {
	m := Perspective(float32(math.Pi/4), 1, 0.1, 100)

	if m[0] == 0 || m[5] == 0 {
		t.Error("Perspective should have non-zero elements")
	}
	if m[15] != 0 {
		t.Errorf("Perspective [15] should be 0, got %f", m[15])
	}
	if m[11] != -1 {
		t.Errorf("Perspective [11] should be -1, got %f", m[11])
	}
}

func TestLookAtMovesEyeToOrigin(t *testing.T) {
	eye := Vec3{0, 0, 5}
	m := LookAt(eye, Vec3{}, Vec3{0, 1, 0})

	got := m.TransformVec3(eye)
	if !approxVec(got, Vec3{}, 1e-5) {
		t.Errorf("LookAt should map eye to origin, got %v", got)
	}
}

func TestIsFinite(t *testing.T) {
	m := Identity()
	if !m.IsFinite() {
		t.Error("identity should be finite")
	}
	m[13] = float32(math.NaN())
	if m.IsFinite() {
		t.Error("NaN element should make matrix non-finite")
	}
	m[13] = float32(math.Inf(1))
	if m.IsFinite() {
		t.Error("Inf element should make matrix non-finite")
	}
}

func abs(x float32) float32 {
	if x < 0 {
		return -x
	}
	return x
}

func approxVec(a, b Vec3, eps float32) bool {
	return abs(a.X-b.X) <= eps && abs(a.Y-b.Y) <= eps && abs(a.Z-b.Z) <= eps
}

func TestInverse(t *testing.T) {
	m := Translate(3, -2, 5).Mul(RotateY(0.7)).Mul(Scale(2, 1, 0.5))
	inv, ok := m.Inverse()
	if !ok {
		t.Fatal("expected invertible matrix")
	}
	got := m.Mul(inv)
	want := Identity()
	for i := range got {
		if math.Abs(float64(got[i]-want[i])) > 1e-5 {
			t.Fatalf("M * M^-1 [%d] = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestInverseSingular(t *testing.T) {
	if _, ok := Scale(1, 0, 1).Inverse(); ok {
		t.Error("zero-scale matrix should not be invertible")
	}
}
