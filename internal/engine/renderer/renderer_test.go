package renderer

import (
	"errors"
	"testing"

	"github.com/Faultbox/scenekit/internal/engine/geometry"
	"github.com/Faultbox/scenekit/pkg/math"
)

func TestCacheSharesBuffers(t *testing.T) {
	dev := NewRecorder()
	cache := NewCache()
	cube := geometry.Cube()

	first, err := cache.Buffers(dev, cube)
	if err != nil {
		t.Fatalf("Buffers() error = %v", err)
	}
	second, err := cache.Buffers(dev, cube)
	if err != nil {
		t.Fatalf("Buffers() error = %v", err)
	}

	if first != second {
		t.Error("same geometry should share buffers")
	}
	if got := dev.Count(OpCreateBuffers); got != 1 {
		t.Errorf("CreateBuffers calls = %d, want 1", got)
	}
	if cache.Len() != 1 {
		t.Errorf("Len() = %d, want 1", cache.Len())
	}
	if first.IndexCount != 36 {
		t.Errorf("IndexCount = %d, want 36", first.IndexCount)
	}
}

func TestCacheDeviceFailure(t *testing.T) {
	deviceErr := errors.New("out of memory")
	dev := NewRecorder()
	dev.FailBuffers = deviceErr
	cache := NewCache()

	_, err := cache.Buffers(dev, geometry.Cube())
	if !errors.Is(err, ErrBufferCreate) {
		t.Errorf("error = %v, want ErrBufferCreate", err)
	}
	if !errors.Is(err, deviceErr) {
		t.Errorf("error = %v, want wrapped device error", err)
	}
	if cache.Len() != 0 {
		t.Errorf("failed upload should not be cached, Len() = %d", cache.Len())
	}
}

func TestCacheRejectsInvalidGeometry(t *testing.T) {
	dev := NewRecorder()
	bad := &geometry.Geometry{ID: "bad", Vertices: []float32{0, 0}}

	if _, err := NewCache().Buffers(dev, bad); !errors.Is(err, ErrBufferCreate) {
		t.Errorf("error = %v, want ErrBufferCreate", err)
	}
	if got := dev.Count(OpCreateBuffers); got != 0 {
		t.Errorf("invalid geometry reached the device %d times", got)
	}
}

func TestRecorder(t *testing.T) {
	dev := NewRecorder()
	b, _ := dev.CreateBuffers(geometry.Cube())
	m := math.Translate(1, 2, 3)

	dev.Clear()
	dev.Viewport(Rect{0, 0, 800, 600})
	dev.UseProgram(7)
	dev.UniformMatrix4(7, UniformWorld, &m)
	dev.DrawIndexed(7, b)

	if dev.Frames() != 1 || dev.Draws() != 1 {
		t.Errorf("Frames() = %d, Draws() = %d, want 1, 1", dev.Frames(), dev.Draws())
	}
	got, ok := dev.LastUniform(UniformWorld)
	if !ok || got != m {
		t.Errorf("LastUniform(%q) = %v, %v, want %v", UniformWorld, got, ok, m)
	}
	vp := dev.Filter(OpViewport)
	if len(vp) != 1 || vp[0].Rect != (Rect{0, 0, 800, 600}) {
		t.Errorf("viewport calls = %v", vp)
	}

	dev.Reset()
	if len(dev.Calls) != 0 {
		t.Errorf("Reset() left %d calls", len(dev.Calls))
	}
	if dev.Draws() != 1 {
		t.Errorf("Reset() should keep counters, Draws() = %d", dev.Draws())
	}
}

func TestRecorderWithoutRecording(t *testing.T) {
	dev := &Recorder{}
	dev.Clear()
	dev.Clear()

	if len(dev.Calls) != 0 {
		t.Errorf("Calls = %d, want 0", len(dev.Calls))
	}
	if dev.Frames() != 2 {
		t.Errorf("Frames() = %d, want 2", dev.Frames())
	}
}
