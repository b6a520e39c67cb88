package renderer

import (
	"github.com/Faultbox/scenekit/internal/engine/geometry"
	"github.com/Faultbox/scenekit/pkg/math"
)

// Op names a recorded device call.
type Op string

const (
	OpCreateBuffers Op = "create_buffers"
	OpClear         Op = "clear"
	OpViewport      Op = "viewport"
	OpUseProgram    Op = "use_program"
	OpUniform       Op = "uniform"
	OpDraw          Op = "draw"
)

// Call is one recorded device call. Only the fields relevant to Op are set.
type Call struct {
	Op       Op
	Program  Program
	Name     string
	Matrix   math.Mat4
	Rect     Rect
	Geometry string
}

// Recorder is an in-memory Device. It draws nothing and remembers every
// call, which makes it usable for tests and for running without a GPU.
type Recorder struct {
	Calls []Call

	// FailBuffers, when set, is returned by CreateBuffers.
	FailBuffers error

	// Record disables call recording when false. Counters keep running.
	Record bool

	frames int
	draws  int
	nextID uint32
}

// NewRecorder creates a recorder that keeps every call.
func NewRecorder() *Recorder {
	return &Recorder{Record: true}
}

func (r *Recorder) add(c Call) {
	if r.Record {
		r.Calls = append(r.Calls, c)
	}
}

// CreateBuffers hands out fresh fake handles.
func (r *Recorder) CreateBuffers(g *geometry.Geometry) (*Buffers, error) {
	if r.FailBuffers != nil {
		return nil, r.FailBuffers
	}
	r.add(Call{Op: OpCreateBuffers, Geometry: g.ID})

	id := func() uint32 {
		r.nextID++
		return r.nextID
	}
	return &Buffers{
		Geometry:   g.ID,
		VAO:        id(),
		Vertices:   id(),
		Normals:    id(),
		Indices:    id(),
		IndexCount: int32(g.IndexCount()),
	}, nil
}

// Clear records the start of a frame.
func (r *Recorder) Clear() {
	r.frames++
	r.add(Call{Op: OpClear})
}

// Viewport records a viewport binding.
func (r *Recorder) Viewport(rect Rect) {
	r.add(Call{Op: OpViewport, Rect: rect})
}

// UseProgram records a program binding.
func (r *Recorder) UseProgram(p Program) {
	r.add(Call{Op: OpUseProgram, Program: p})
}

// UniformMatrix4 records a matrix upload.
func (r *Recorder) UniformMatrix4(p Program, name string, m *math.Mat4) {
	r.add(Call{Op: OpUniform, Program: p, Name: name, Matrix: *m})
}

// DrawIndexed records a draw.
func (r *Recorder) DrawIndexed(p Program, b *Buffers) {
	r.draws++
	r.add(Call{Op: OpDraw, Program: p, Geometry: b.Geometry})
}

// Count returns how many recorded calls have the given op.
func (r *Recorder) Count(op Op) int {
	n := 0
	for _, c := range r.Calls {
		if c.Op == op {
			n++
		}
	}
	return n
}

// Filter returns the recorded calls with the given op, in order.
func (r *Recorder) Filter(op Op) []Call {
	var out []Call
	for _, c := range r.Calls {
		if c.Op == op {
			out = append(out, c)
		}
	}
	return out
}

// LastUniform returns the most recent upload of the named uniform.
func (r *Recorder) LastUniform(name string) (math.Mat4, bool) {
	for i := len(r.Calls) - 1; i >= 0; i-- {
		if c := r.Calls[i]; c.Op == OpUniform && c.Name == name {
			return c.Matrix, true
		}
	}
	return math.Mat4{}, false
}

// Frames returns the number of cleared frames.
func (r *Recorder) Frames() int {
	return r.frames
}

// Draws returns the total number of draws.
func (r *Recorder) Draws() int {
	return r.draws
}

// Reset drops the recorded calls.
func (r *Recorder) Reset() {
	r.Calls = r.Calls[:0]
}
