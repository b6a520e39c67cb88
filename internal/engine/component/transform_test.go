package component

import (
	"testing"

	"github.com/Faultbox/scenekit/pkg/math"
)

func near(a, b float32) bool {
	d := a - b
	return d < 1e-4 && d > -1e-4
}

func vecNear(a, b math.Vec3) bool {
	return near(a.X, b.X) && near(a.Y, b.Y) && near(a.Z, b.Z)
}

func TestTransformDefaults(t *testing.T) {
	tr := NewTransform()

	if tr.Position() != (math.Vec3{}) {
		t.Errorf("Position() = %v, want origin", tr.Position())
	}
	if tr.Rotation() != (math.Vec3{}) {
		t.Errorf("Rotation() = %v, want zero", tr.Rotation())
	}
	if tr.Scale() != (math.Vec3{X: 1, Y: 1, Z: 1}) {
		t.Errorf("Scale() = %v, want [1 1 1]", tr.Scale())
	}
	if tr.Matrix() != math.Identity() {
		t.Errorf("Matrix() = %v, want identity", tr.Matrix())
	}
}

func TestSetRotationNormalizes(t *testing.T) {
	tests := []struct {
		name string
		in   math.Vec3
		want math.Vec3
	}{
		{"mixed", math.Vec3{X: -90, Y: 370, Z: 0}, math.Vec3{X: 270, Y: 10, Z: 0}},
		{"in range", math.Vec3{X: 45, Y: 359, Z: 180}, math.Vec3{X: 45, Y: 359, Z: 180}},
		{"full turns", math.Vec3{X: 360, Y: 720, Z: -360}, math.Vec3{}},
		{"below minus one turn", math.Vec3{X: -450, Y: -1, Z: -719}, math.Vec3{X: 270, Y: 359, Z: 1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tr := NewTransform()
			tr.SetRotation(tt.in)
			got := tr.Rotation()
			if !vecNear(got, tt.want) {
				t.Errorf("Rotation() = %v, want %v", got, tt.want)
			}
			for _, c := range []float32{got.X, got.Y, got.Z} {
				if c < 0 || c >= 360 {
					t.Errorf("component %v outside [0,360)", c)
				}
			}
		})
	}
}

func TestNormalizeAngleRounding(t *testing.T) {
	// A tiny negative angle rounds up to 360 in float32 and must wrap to 0.
	if got := normalizeAngle(-1e-6); got < 0 || got >= 360 {
		t.Errorf("normalizeAngle(-1e-6) = %v, want within [0,360)", got)
	}
}

func TestMatrixCaching(t *testing.T) {
	tr := NewTransform()

	tr.SetPosition(math.Vec3{X: 1, Y: 2, Z: 3})
	if !tr.Dirty() {
		t.Fatal("SetPosition should mark the matrix dirty")
	}

	first := tr.Matrix()
	if tr.recomputes != 1 {
		t.Errorf("recomputes = %d, want 1", tr.recomputes)
	}
	if tr.Dirty() {
		t.Error("Matrix() should clear the dirty flag")
	}

	second := tr.Matrix()
	if tr.recomputes != 1 {
		t.Errorf("recomputes after clean read = %d, want 1", tr.recomputes)
	}
	if first != second {
		t.Errorf("cached matrix changed: %v vs %v", first, second)
	}

	if first[12] != 1 || first[13] != 2 || first[14] != 3 {
		t.Errorf("translation = %v, want [1 2 3]", first[12:15])
	}

	tr.Update(16)
	if tr.recomputes != 1 {
		t.Errorf("Update on clean transform recomputed, recomputes = %d", tr.recomputes)
	}

	tr.SetScale(math.Vec3{X: 2, Y: 2, Z: 2})
	tr.Update(16)
	if tr.recomputes != 2 {
		t.Errorf("recomputes after SetScale+Update = %d, want 2", tr.recomputes)
	}
}

func TestMatrixOrder(t *testing.T) {
	tr := NewTransform()
	tr.SetPosition(math.Vec3{X: 10})
	tr.SetRotation(math.Vec3{Y: 90})
	tr.SetScale(math.Vec3{X: 2, Y: 2, Z: 2})

	// Scale, then rotate, then translate: +X becomes 2 * -Z, shifted by +10 on X.
	got := tr.Matrix().TransformPoint(math.Vec3{X: 1})
	want := math.Vec3{X: 10, Y: 0, Z: -2}
	if !vecNear(got, want) {
		t.Errorf("TransformPoint = %v, want %v", got, want)
	}
}

func TestRevision(t *testing.T) {
	tr := NewTransform()
	rev := tr.Revision()

	tr.SetScale(math.Vec3{X: 3, Y: 3, Z: 3})
	if tr.Revision() != rev {
		t.Error("scale change should not bump the revision")
	}

	tr.SetPosition(math.Vec3{Y: 1})
	if tr.Revision() == rev {
		t.Error("position change should bump the revision")
	}
	rev = tr.Revision()

	tr.SetRotation(math.Vec3{X: 5})
	if tr.Revision() == rev {
		t.Error("rotation change should bump the revision")
	}
}

func TestDeltaPosition(t *testing.T) {
	tr := NewTransform()
	tr.DeltaPosition(math.Vec3{X: 1, Y: -2, Z: 4}, 2)

	want := math.Vec3{X: 0.5, Y: -1, Z: 2}
	if !vecNear(tr.Position(), want) {
		t.Errorf("Position() = %v, want %v", tr.Position(), want)
	}
}

func TestDeltaPositionZeroDtPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("DeltaPosition with zero dt should panic")
		}
	}()
	NewTransform().DeltaPosition(math.Vec3{X: 1}, 0)
}

func TestDeltaRotation(t *testing.T) {
	tr := NewTransform()
	tr.DeltaRotation(math.Vec3{X: 3, Y: -6, Z: 0}, 10)

	// d * dt / 30: [1, -2, 0], then wrapped.
	want := math.Vec3{X: 1, Y: 358, Z: 0}
	if !vecNear(tr.Rotation(), want) {
		t.Errorf("Rotation() = %v, want %v", tr.Rotation(), want)
	}
}

func TestDirections(t *testing.T) {
	tests := []struct {
		name    string
		rot     math.Vec3
		forward math.Vec3
		left    math.Vec3
	}{
		{"identity", math.Vec3{}, math.Vec3{Y: -1}, math.Vec3{X: 1}},
		{"pitch 90", math.Vec3{X: 90}, math.Vec3{Z: 1}, math.Vec3{X: 1}},
		{"yaw 90", math.Vec3{Y: 90}, math.Vec3{Y: -1}, math.Vec3{Z: 1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tr := NewTransform()
			tr.SetRotation(tt.rot)
			if got := tr.Forward(); !vecNear(got, tt.forward) {
				t.Errorf("Forward() = %v, want %v", got, tt.forward)
			}
			if got := tr.Left(); !vecNear(got, tt.left) {
				t.Errorf("Left() = %v, want %v", got, tt.left)
			}
		})
	}
}

func TestCopyFrom(t *testing.T) {
	src := NewTransform()
	src.SetPosition(math.Vec3{X: 1, Y: 2, Z: 3})
	src.SetScale(math.Vec3{X: 4, Y: 5, Z: 6})

	dst := NewTransform()
	dst.Matrix()
	dst.CopyFrom(src)

	if dst.Position() != src.Position() || dst.Scale() != src.Scale() {
		t.Errorf("CopyFrom = %v, want %v", dst, src)
	}
	if !dst.Dirty() {
		t.Error("CopyFrom should mark the matrix dirty")
	}
}
