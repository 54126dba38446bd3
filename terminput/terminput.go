// Package terminput feeds terminal mouse input from tcell into a
// [uzu.TouchTracker].
//
// Terminals report mouse state as a stream of events rather than a per-frame
// snapshot, so a Source buffers events between frames. Hand every
// *tcell.EventMouse to Feed from the goroutine that runs the frame loop, then
// call TouchTracker.UpdateFrom once per frame:
//
//	src := terminput.New()
//	// on each event:
//	if ev, ok := ev.(*tcell.EventMouse); ok {
//		src.Feed(ev)
//	}
//	// on each tick:
//	tracker.UpdateFrom(src)
package terminput

import (
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/phanxgames/uzu"
)

var buttonMasks = [2]tcell.ButtonMask{
	uzu.MouseButtonLeft:  tcell.Button1,
	uzu.MouseButtonRight: tcell.Button2,
}

// Source converts tcell mouse events into frames. Cell coordinates are
// reported as positions.
type Source struct {
	start  time.Time
	now    func() time.Time
	cursor uzu.Vec2

	down    [2]bool // state at the end of the last polled frame
	current [2]bool // state after the last fed event
	pressed [2]bool // went down at least once since the last poll
	// releasePending holds a release that happened in the same frame as its
	// press; it is reported on the following frame so both are seen.
	releasePending [2]bool
}

// New creates a Source.
func New() *Source {
	s := &Source{now: time.Now}
	s.start = s.now()
	return s
}

// Feed records a mouse event. Call it from the frame loop goroutine.
func (s *Source) Feed(ev *tcell.EventMouse) {
	x, y := ev.Position()
	s.cursor = uzu.Vec2{X: float64(x), Y: float64(y)}
	btns := ev.Buttons()
	for b, mask := range buttonMasks {
		isDown := btns&mask != 0
		if isDown && !s.current[b] {
			s.pressed[b] = true
		}
		s.current[b] = isDown
	}
}

// Poll fills f with the mouse state accumulated since the previous Poll.
// Terminals have no multi-touch, so f.Touches is always empty.
func (s *Source) Poll(f *uzu.Frame) {
	f.Reset()
	f.Time = s.now().Sub(s.start).Seconds()
	f.Cursor = s.cursor

	for b := range buttonMasks {
		pressed := s.pressed[b]
		s.pressed[b] = false

		var phase uzu.ButtonPhase
		switch {
		case s.releasePending[b]:
			s.releasePending[b] = false
			phase = uzu.ButtonReleased
			// A press that arrived before the release was reported shows up
			// next frame.
			s.pressed[b] = pressed
		case s.down[b] && pressed:
			// Released and pressed again within one frame: report the
			// release now and the press next frame.
			phase = uzu.ButtonReleased
			s.pressed[b] = true
		case pressed:
			phase = uzu.ButtonPressed
			if !s.current[b] {
				s.releasePending[b] = true
			}
		case s.down[b] && s.current[b]:
			phase = uzu.ButtonHeld
		case s.down[b]:
			phase = uzu.ButtonReleased
		}

		s.down[b] = phase == uzu.ButtonPressed || phase == uzu.ButtonHeld
		f.Buttons[b] = phase
	}
}
