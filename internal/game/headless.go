package game

import "github.com/Faultbox/scenekit/internal/engine/input"

// FrameStep is the headless frame interval in milliseconds.
const FrameStep = 16

// HeadlessHost drives the engine without a window: fixed-step timestamps,
// empty input and a fixed canvas size.
type HeadlessHost struct {
	width, height int32
	limit         int // 0 runs until the context ends

	now       float32
	issued    int
	presented int
	in        *input.Input
}

// NewHeadlessHost creates a host issuing frames frames of FrameStep ms.
func NewHeadlessHost(width, height int32, frames int) *HeadlessHost {
	return &HeadlessHost{
		width:  width,
		height: height,
		limit:  frames,
		in:     &input.Input{},
	}
}

// Size returns the canvas size.
func (h *HeadlessHost) Size() (int32, int32) { return h.width, h.height }

// Input returns an empty input.
func (h *HeadlessHost) Input() *input.Input { return h.in }

// NextFrame advances the clock by one step.
func (h *HeadlessHost) NextFrame() (float32, bool) {
	if h.limit > 0 && h.issued >= h.limit {
		return 0, false
	}
	h.issued++
	h.now += FrameStep
	return h.now, true
}

// Present counts presented frames.
func (h *HeadlessHost) Present() { h.presented++ }

// Presented returns the number of presented frames.
func (h *HeadlessHost) Presented() int { return h.presented }
