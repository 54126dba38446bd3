package uzu

import "github.com/eapache/queue"

// defaultInjectStep is the simulated time between injected frames (60 TPS).
const defaultInjectStep = 1.0 / 60

// InjectSource replays scripted frames. Each Poll consumes one queued frame;
// when the queue is empty Poll reports no input. Useful for tests, demos and
// automated input playback.
type InjectSource struct {
	frames *queue.Queue
	step   float64
	now    float64
	cursor Vec2
}

// NewInjectSource creates an empty injection queue.
func NewInjectSource() *InjectSource {
	return &InjectSource{frames: queue.New(), step: defaultInjectStep}
}

// Pending returns the number of frames still queued.
func (s *InjectSource) Pending() int {
	return s.frames.Length()
}

// InjectFrame queues a copy of f. Its Time is ignored; injected frames are
// spaced one step apart.
func (s *InjectSource) InjectFrame(f Frame) {
	f.Touches = append([]Touch(nil), f.Touches...)
	s.frames.Add(f)
}

// InjectTouches queues one frame containing the given touches.
func (s *InjectSource) InjectTouches(touches ...Touch) {
	s.InjectFrame(Frame{Touches: touches, Cursor: s.cursor})
}

// InjectIdle queues n frames with no input.
func (s *InjectSource) InjectIdle(n int) {
	for i := 0; i < n; i++ {
		s.InjectFrame(Frame{Cursor: s.cursor})
	}
}

// InjectPress queues a frame pressing button b at (x, y).
func (s *InjectSource) InjectPress(b MouseButton, x, y float64) {
	s.injectButton(b, ButtonPressed, x, y)
}

// InjectHold queues a frame with button b held at (x, y). Use it between
// InjectPress and InjectRelease to simulate a drag.
func (s *InjectSource) InjectHold(b MouseButton, x, y float64) {
	s.injectButton(b, ButtonHeld, x, y)
}

// InjectRelease queues a frame releasing button b at (x, y).
func (s *InjectSource) InjectRelease(b MouseButton, x, y float64) {
	s.injectButton(b, ButtonReleased, x, y)
}

// InjectClick queues a press followed by a release of the left button at the
// same position. Consumes two frames.
func (s *InjectSource) InjectClick(x, y float64) {
	s.InjectPress(MouseButtonLeft, x, y)
	s.InjectRelease(MouseButtonLeft, x, y)
}

// InjectDrag queues a full left-button drag: press at (fromX, fromY),
// linearly interpolated holds over frames-2 intermediate frames, and release
// at (toX, toY). The sequence consumes frames frames, minimum 2.
func (s *InjectSource) InjectDrag(fromX, fromY, toX, toY float64, frames int) {
	if frames < 2 {
		frames = 2
	}
	s.InjectPress(MouseButtonLeft, fromX, fromY)
	steps := frames - 2
	for i := 1; i <= steps; i++ {
		t := float64(i) / float64(steps+1)
		s.InjectHold(MouseButtonLeft, fromX+(toX-fromX)*t, fromY+(toY-fromY)*t)
	}
	s.InjectRelease(MouseButtonLeft, toX, toY)
}

func (s *InjectSource) injectButton(b MouseButton, phase ButtonPhase, x, y float64) {
	s.cursor = Vec2{X: x, Y: y}
	f := Frame{Cursor: s.cursor}
	f.Buttons[b] = phase
	s.frames.Add(f)
}

// Poll fills f with the next queued frame, or an empty frame if none is left.
func (s *InjectSource) Poll(f *Frame) {
	f.Reset()
	s.now += s.step
	f.Time = s.now

	if s.frames.Length() == 0 {
		return
	}
	next := s.frames.Remove().(Frame)
	f.Touches = append(f.Touches, next.Touches...)
	f.Cursor = next.Cursor
	f.Buttons = next.Buttons
}
