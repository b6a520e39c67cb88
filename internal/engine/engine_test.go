package engine

import (
	"context"
	"errors"
	"testing"

	"github.com/Faultbox/scenekit/internal/engine/camera"
	"github.com/Faultbox/scenekit/internal/engine/input"
	"github.com/Faultbox/scenekit/internal/engine/object"
	"github.com/Faultbox/scenekit/internal/engine/renderer"
	"github.com/Faultbox/scenekit/internal/engine/scene"
	"github.com/Faultbox/scenekit/pkg/math"
)

type fakeHost struct {
	w, h      int32
	in        *input.Input
	stamps    []float32
	next      int
	presented int
	onFrame   func(i int)
}

func (h *fakeHost) Size() (int32, int32) { return h.w, h.h }
func (h *fakeHost) Input() *input.Input  { return h.in }

func (h *fakeHost) NextFrame() (float32, bool) {
	if h.next >= len(h.stamps) {
		return 0, false
	}
	ts := h.stamps[h.next]
	if h.onFrame != nil {
		h.onFrame(h.next)
	}
	h.next++
	return ts, true
}

func (h *fakeHost) Present() { h.presented++ }

func newHost(stamps ...float32) *fakeHost {
	return &fakeHost{w: 800, h: 600, stamps: stamps}
}

func cube(t *testing.T, pos math.Vec3) *object.Mesh {
	t.Helper()
	m := object.NewCube()
	m.Transform().SetPosition(pos)
	if err := m.Shader().Attach(1); err != nil {
		t.Fatalf("Attach() error = %v", err)
	}
	return m
}

func TestInitWithoutScene(t *testing.T) {
	err := New().Init(renderer.NewRecorder(), newHost())
	if !errors.Is(err, ErrNoScene) {
		t.Errorf("Init() error = %v, want ErrNoScene", err)
	}
}

func TestInitFailureKeepsEngineStopped(t *testing.T) {
	dev := renderer.NewRecorder()
	dev.FailBuffers = errors.New("context lost")

	s := scene.New("main")
	s.PushObject(cube(t, math.Vec3{}))
	e := New()
	e.PushScene(s)

	if err := e.Init(dev, newHost()); !errors.Is(err, renderer.ErrBufferCreate) {
		t.Errorf("Init() error = %v, want ErrBufferCreate", err)
	}
	if err := e.Run(context.Background(), newHost(16)); err == nil {
		t.Error("Run() after failed Init should fail")
	}
}

func TestTickBeforeInitPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("Tick before Init should panic")
		}
	}()
	New().Tick(16)
}

func TestTickEndToEnd(t *testing.T) {
	dev := renderer.NewRecorder()

	cam := camera.New()
	cam.Transform().SetPosition(math.Vec3{Y: 5})
	cam.Transform().SetRotation(math.Vec3{X: 10})

	a := cube(t, math.Vec3{})
	b := cube(t, math.Vec3{X: 3})
	built := []math.Mat4{a.Transform().Matrix(), b.Transform().Matrix()}

	s := scene.New("main")
	s.PushCamera(cam)
	s.PushObject(a)
	s.PushObject(b)

	e := New()
	e.PushScene(s)
	host := newHost()
	if err := e.Init(dev, host); err != nil {
		t.Fatalf("Init() error = %v", err)
	}

	e.Tick(16)

	for i, m := range []*object.Mesh{a, b} {
		if got := m.Transform().Matrix(); got != built[i] {
			t.Errorf("object %d matrix = %v, want %v", i, got, built[i])
		}
	}
	if v, _ := cam.Recomputes(); v != 1 {
		t.Errorf("view recomputes = %d, want 1", v)
	}
	if got := dev.Draws(); got != 2 {
		t.Errorf("draws = %d, want 2", got)
	}
	if w, h := cam.CanvasSize(); w != 800 || h != 600 {
		t.Errorf("camera canvas = %dx%d, want 800x600", w, h)
	}
	if e.Frames() != 1 {
		t.Errorf("Frames() = %d, want 1", e.Frames())
	}
}

type dtProbe struct{ dts []float32 }

func (p *dtProbe) Update(_ *object.Mesh, dt float32, _ *input.Input) {
	p.dts = append(p.dts, dt)
}

func TestTickDeltas(t *testing.T) {
	m := cube(t, math.Vec3{})
	probe := &dtProbe{}
	m.Controllers().Attach(probe)

	s := scene.New("main")
	s.PushCamera(camera.New())
	s.PushObject(m)
	e := New()
	e.PushScene(s)
	if err := e.Init(renderer.NewRecorder(), newHost()); err != nil {
		t.Fatalf("Init() error = %v", err)
	}

	e.Tick(16)
	e.Tick(32)
	e.Tick(32) // duplicate timestamp
	e.Tick(50)

	want := []float32{16, 16, 18}
	if len(probe.dts) != len(want) {
		t.Fatalf("dts = %v, want %v", probe.dts, want)
	}
	for i := range want {
		if probe.dts[i] != want[i] {
			t.Errorf("dt[%d] = %v, want %v", i, probe.dts[i], want[i])
		}
	}
	if e.Frames() != 3 {
		t.Errorf("Frames() = %d, want 3", e.Frames())
	}
}

type inputProbe struct{ seen *input.Input }

func (p *inputProbe) Update(_ *object.Mesh, _ float32, in *input.Input) { p.seen = in }

func TestTickPassesFrameInput(t *testing.T) {
	m := cube(t, math.Vec3{})
	probe := &inputProbe{}
	m.Controllers().Attach(probe)

	s := scene.New("main")
	s.PushObject(m)
	e := New()
	e.PushScene(s)

	host := newHost()
	host.in = &input.Input{}
	if err := e.Init(renderer.NewRecorder(), host); err != nil {
		t.Fatalf("Init() error = %v", err)
	}
	e.Tick(16)

	if probe.seen != host.in {
		t.Error("controllers should receive the canvas input")
	}
}

func TestRun(t *testing.T) {
	s := scene.New("main")
	s.PushCamera(camera.New())
	s.PushObject(cube(t, math.Vec3{}))

	e := New()
	e.PushScene(s)
	dev := renderer.NewRecorder()
	host := newHost(16, 32, 48, 1100)
	if err := e.Init(dev, host); err != nil {
		t.Fatalf("Init() error = %v", err)
	}

	if err := e.Run(context.Background(), host); err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if host.presented != 4 {
		t.Errorf("presented = %d, want 4", host.presented)
	}
	if dev.Frames() != 4 {
		t.Errorf("rendered frames = %d, want 4", dev.Frames())
	}
}

func TestStop(t *testing.T) {
	s := scene.New("main")
	e := New()
	e.PushScene(s)
	host := newHost(16, 32, 48, 64)
	host.onFrame = func(i int) {
		if i == 1 {
			e.Stop()
		}
	}
	if err := e.Init(renderer.NewRecorder(), host); err != nil {
		t.Fatalf("Init() error = %v", err)
	}

	if err := e.Run(context.Background(), host); err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if host.presented != 2 {
		t.Errorf("presented = %d, want 2 (stop after current frame)", host.presented)
	}
}

func TestRunCancelled(t *testing.T) {
	e := New()
	e.PushScene(scene.New("main"))
	host := newHost(16, 32)
	if err := e.Init(renderer.NewRecorder(), host); err != nil {
		t.Fatalf("Init() error = %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if err := e.Run(ctx, host); !errors.Is(err, context.Canceled) {
		t.Errorf("Run() error = %v, want context.Canceled", err)
	}
	if host.presented != 0 {
		t.Errorf("presented = %d, want 0", host.presented)
	}
}

func TestRunSkipsPresentOnDuplicateTimestamp(t *testing.T) {
	s := scene.New("main")
	s.PushCamera(camera.New())
	s.PushObject(cube(t, math.Vec3{}))

	e := New()
	e.PushScene(s)
	dev := renderer.NewRecorder()
	host := newHost(16, 16, 32)
	if err := e.Init(dev, host); err != nil {
		t.Fatalf("Init() error = %v", err)
	}

	if err := e.Run(context.Background(), host); err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if host.presented != dev.Frames() {
		t.Errorf("presented = %d, rendered = %d, want equal", host.presented, dev.Frames())
	}
	if dev.Frames() != 2 {
		t.Errorf("rendered frames = %d, want 2", dev.Frames())
	}
}

func TestTickReportsRendered(t *testing.T) {
	e := New()
	e.PushScene(scene.New("main"))
	if err := e.Init(renderer.NewRecorder(), newHost()); err != nil {
		t.Fatalf("Init() error = %v", err)
	}

	for i, tt := range []struct {
		ts   float32
		want bool
	}{{16, true}, {16, false}, {20, true}} {
		if got := e.Tick(tt.ts); got != tt.want {
			t.Errorf("tick %d: Tick(%v) = %v, want %v", i, tt.ts, got, tt.want)
		}
	}
}

func TestStopBeforeRun(t *testing.T) {
	e := New()
	e.PushScene(scene.New("main"))
	host := newHost(16, 32)
	if err := e.Init(renderer.NewRecorder(), host); err != nil {
		t.Fatalf("Init() error = %v", err)
	}

	e.Stop()
	if err := e.Run(context.Background(), host); err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if host.presented != 0 || e.Frames() != 0 {
		t.Errorf("presented = %d, frames = %d, want 0, 0", host.presented, e.Frames())
	}
}

func TestRunFirstFrameDelta(t *testing.T) {
	m := cube(t, math.Vec3{})
	probe := &dtProbe{}
	m.Controllers().Attach(probe)

	s := scene.New("main")
	s.PushObject(m)
	e := New()
	e.PushScene(s)
	host := newHost(5000, 5020)
	if err := e.Init(renderer.NewRecorder(), host); err != nil {
		t.Fatalf("Init() error = %v", err)
	}

	if err := e.Run(context.Background(), host); err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	want := []float32{FirstFrameMS, 20}
	if len(probe.dts) != len(want) || probe.dts[0] != want[0] || probe.dts[1] != want[1] {
		t.Errorf("dts = %v, want %v", probe.dts, want)
	}
}

type fpsHost struct {
	*fakeHost
	reported []float32
}

func (h *fpsHost) ReportFPS(fps float32) { h.reported = append(h.reported, fps) }

func TestRunReportsFPS(t *testing.T) {
	e := New()
	e.PushScene(scene.New("main"))
	host := &fpsHost{fakeHost: newHost(0, 500, 1000, 1500)}
	if err := e.Init(renderer.NewRecorder(), host); err != nil {
		t.Fatalf("Init() error = %v", err)
	}

	if err := e.Run(context.Background(), host); err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	// Three frames in the first 1000 ms.
	if len(host.reported) != 1 || host.reported[0] != 3 {
		t.Errorf("reported = %v, want [3]", host.reported)
	}
}
