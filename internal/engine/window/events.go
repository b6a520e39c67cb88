package window

import (
	"fmt"
	"sort"

	"github.com/veandco/go-sdl2/sdl"
	"go.uber.org/zap"

	"github.com/Faultbox/scenekit/internal/engine/input"
	"github.com/Faultbox/scenekit/internal/logger"
)

// ResolveBindings turns key name to scancode name pairs into a scancode
// lookup table.
func ResolveBindings(names map[string]string) (map[sdl.Scancode]input.Key, error) {
	keys := make([]string, 0, len(names))
	for k := range names {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	out := make(map[sdl.Scancode]input.Key, len(names))
	for _, keyName := range keys {
		key, ok := input.ParseKey(keyName)
		if !ok {
			return nil, fmt.Errorf("unknown key %q", keyName)
		}
		sc := sdl.GetScancodeFromName(names[keyName])
		if sc == sdl.SCANCODE_UNKNOWN {
			return nil, fmt.Errorf("key %s: unknown scancode %q", keyName, names[keyName])
		}
		out[sc] = key
	}
	return out, nil
}

// SDL mouse state bits, in SDL_BUTTON order.
const (
	sdlButtonLeft   = 1 << 0
	sdlButtonMiddle = 1 << 1
	sdlButtonRight  = 1 << 2
	sdlButtonX1     = 1 << 3
	sdlButtonX2     = 1 << 4
)

// buttonMask converts an SDL button state to the input button mask, where
// the secondary button is the right one and the auxiliary the middle one.
func buttonMask(state uint32) uint16 {
	var mask uint16
	set := func(sdlBit uint32, b input.MouseButton) {
		if state&sdlBit != 0 {
			mask |= 1 << b
		}
	}
	set(sdlButtonLeft, input.MousePrimary)
	set(sdlButtonRight, input.MouseSecondary)
	set(sdlButtonMiddle, input.MouseAuxiliary)
	set(sdlButtonX1, input.MouseFourth)
	set(sdlButtonX2, input.MouseFifth)
	return mask
}

// pumpEvents drains the SDL queue into the input state.
func (w *Window) pumpEvents() {
	for event := sdl.PollEvent(); event != nil; event = sdl.PollEvent() {
		switch e := event.(type) {
		case *sdl.QuitEvent:
			w.closed = true

		case *sdl.WindowEvent:
			switch e.Event {
			case sdl.WINDOWEVENT_RESIZED:
				logger.Debug("window resized",
					zap.Int32("width", e.Data1),
					zap.Int32("height", e.Data2),
				)
			case sdl.WINDOWEVENT_LEAVE:
				w.state.Leave()
			}

		case *sdl.KeyboardEvent:
			if e.Keysym.Scancode == sdl.SCANCODE_ESCAPE && e.Type == sdl.KEYDOWN {
				w.closed = true
				continue
			}
			if e.Keysym.Scancode == sdl.SCANCODE_F12 && e.Type == sdl.KEYDOWN && e.Repeat == 0 {
				w.capture = true
				continue
			}
			if key, ok := w.bindings[e.Keysym.Scancode]; ok {
				w.state.SetKey(key, e.Type == sdl.KEYDOWN)
			}

		case *sdl.MouseMotionEvent:
			w.state.MoveMouse(e.XRel, e.YRel)
			w.state.SetButtons(buttonMask(e.State))

		case *sdl.MouseButtonEvent:
			_, _, state := sdl.GetMouseState()
			w.state.SetButtons(buttonMask(state))
		}
	}
}
