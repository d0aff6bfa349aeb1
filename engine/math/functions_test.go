package math

import "testing"

const tolerance float32 = 1e-5

func TestMat4TranslationMovesPoints(t *testing.T) {
	mt := NewMat4Translation(NewVec3(0.5, -1, 2))
	got := NewPoint(1, 1, 1).Transform(mt)
	want := NewPoint(1.5, 0, 3)
	if !got.Compare(want, tolerance) {
		t.Errorf("got %v, want %v", got, want)
	}
	// Directions (w = 0) are not translated.
	dir := NewVec4(1, 0, 0, 0).Transform(mt)
	if !dir.Compare(NewVec4(1, 0, 0, 0), tolerance) {
		t.Errorf("direction was translated: %v", dir)
	}
}

func TestMat4EulerRotations(t *testing.T) {
	quarter := DegToRad(90)
	tests := []struct {
		name string
		mt   Mat4
		in   Vec4
		want Vec4
	}{
		{"x rotates y to z", NewMat4EulerX(quarter), NewPoint(0, 1, 0), NewPoint(0, 0, 1)},
		{"y rotates z to x", NewMat4EulerY(quarter), NewPoint(0, 0, 1), NewPoint(1, 0, 0)},
		{"z rotates x to y", NewMat4EulerZ(quarter), NewPoint(1, 0, 0), NewPoint(0, 1, 0)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.in.Transform(tt.mt)
			if !got.Compare(tt.want, tolerance) {
				t.Errorf("got %v, want %v", got, tt.want)
			}
		})
	}
}

func TestMat4MulOrder(t *testing.T) {
	// T * S applies the scale first.
	ts := NewMat4Translation(NewVec3(1, 0, 0)).Mul(NewMat4Scale(NewVec3(2, 2, 2)))
	got := NewPoint(1, 0, 0).Transform(ts)
	if !got.Compare(NewPoint(3, 0, 0), tolerance) {
		t.Errorf("got %v", got)
	}
	if !NewMat4Identity().Mul(ts).Compare(ts, tolerance) {
		t.Error("identity must be neutral")
	}
}

func TestVec3CrossAndNormalize(t *testing.T) {
	x := NewVec3(1, 0, 0)
	y := NewVec3(0, 1, 0)
	if !x.Cross(y).Compare(NewVec3(0, 0, 1), tolerance) {
		t.Error("x cross y must be z")
	}
	n := NewVec3(3, 0, 4).Normalized()
	if !n.Compare(NewVec3(0.6, 0, 0.8), tolerance) {
		t.Errorf("got %v", n)
	}
	if NewVec3Zero().Normalized() != NewVec3Zero() {
		t.Error("zero vector must stay zero")
	}
}
