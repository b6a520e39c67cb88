package component

import (
	"fmt"
	gomath "math"

	"github.com/Faultbox/scenekit/pkg/math"
)

// Transform is the position, rotation and scale of an entity with a lazily
// computed local matrix. Rotation is stored in degrees within [0, 360).
type Transform struct {
	position math.Vec3
	rotation math.Vec3
	scale    math.Vec3

	matrix math.Mat4
	dirty  bool

	recomputes int
	revision   uint64
}

// NewTransform returns a transform at the origin with unit scale.
func NewTransform() *Transform {
	return &Transform{
		scale: math.Vec3{X: 1, Y: 1, Z: 1},
		dirty: true,
	}
}

// Position returns the position.
func (t *Transform) Position() math.Vec3 { return t.position }

// Rotation returns the rotation in degrees.
func (t *Transform) Rotation() math.Vec3 { return t.rotation }

// Scale returns the scale.
func (t *Transform) Scale() math.Vec3 { return t.scale }

// SetPosition moves the transform.
func (t *Transform) SetPosition(v math.Vec3) {
	t.position = v
	t.touch()
}

// SetRotation sets the rotation in degrees. Each component is wrapped into
// [0, 360), so -90 is stored as 270 and 370 as 10.
func (t *Transform) SetRotation(v math.Vec3) {
	t.rotation = math.Vec3{X: normalizeAngle(v.X), Y: normalizeAngle(v.Y), Z: normalizeAngle(v.Z)}
	t.touch()
}

// SetScale sets the scale. Scale changes do not bump the revision.
func (t *Transform) SetScale(v math.Vec3) {
	t.scale = v
	t.dirty = true
}

// CopyFrom takes over the pose of o.
func (t *Transform) CopyFrom(o *Transform) {
	t.SetPosition(o.position)
	t.SetRotation(o.rotation)
	t.SetScale(o.scale)
}

// DeltaPosition moves the transform by d/dt. dt must not be zero.
func (t *Transform) DeltaPosition(d math.Vec3, dt float32) {
	if dt == 0 {
		panic("component: Transform.DeltaPosition with zero dt")
	}
	t.SetPosition(t.position.Add(d.Scale(1 / dt)))
}

// DeltaRotation rotates the transform by d*dt/30 degrees.
func (t *Transform) DeltaRotation(d math.Vec3, dt float32) {
	t.SetRotation(t.rotation.Add(d.Scale(dt / 30)))
}

// Matrix returns translate * rotate * scale, recomputed only when the
// transform changed since the last call.
func (t *Transform) Matrix() math.Mat4 {
	if t.dirty {
		t.recompute()
	}
	return t.matrix
}

// Update refreshes the cached matrix.
func (t *Transform) Update(float32) {
	if t.dirty {
		t.recompute()
	}
}

// Dirty reports whether the cached matrix is stale.
func (t *Transform) Dirty() bool { return t.dirty }

// Revision changes whenever position or rotation change.
func (t *Transform) Revision() uint64 { return t.revision }

// Forward returns the forward direction of the rotation.
func (t *Transform) Forward() math.Vec3 {
	m := t.rotationMatrix()
	return math.Vec3{X: -m[1], Y: -m[5], Z: -m[9]}
}

// Left returns the left direction of the rotation.
func (t *Transform) Left() math.Vec3 {
	m := t.rotationMatrix()
	return math.Vec3{X: m[0], Y: m[4], Z: m[8]}
}

func (t *Transform) String() string {
	return fmt.Sprintf("Transform{pos: %v, rot: %v, scale: %v}", t.position, t.rotation, t.scale)
}

func (t *Transform) rotationMatrix() math.Mat4 {
	r := t.rotation
	return math.RotateEuler(math.Radians(r.X), math.Radians(r.Y), math.Radians(r.Z))
}

func (t *Transform) recompute() {
	p, s := t.position, t.scale
	t.matrix = math.Translate(p.X, p.Y, p.Z).
		Mul(t.rotationMatrix()).
		Mul(math.Scale(s.X, s.Y, s.Z))
	t.dirty = false
	t.recomputes++
}

func (t *Transform) touch() {
	t.dirty = true
	t.revision++
}

func normalizeAngle(v float32) float32 {
	r := float32(gomath.Mod(float64(v), 360))
	if r < 0 {
		r += 360
	}
	if r >= 360 {
		r = 0
	}
	return r
}
