package uzu

import "go.uber.org/zap"

// Reserved contact IDs for the mouse buttons. Real touches use positive IDs.
const (
	LeftButtonTouchID  = -1
	RightButtonTouchID = -2
)

// MouseButton identifies one of the two buttons the tracker emulates touches
// with.
type MouseButton uint8

const (
	MouseButtonLeft  MouseButton = iota // primary (left) mouse button
	MouseButtonRight                    // secondary (right) mouse button
)

// TouchPhase is the phase a backend reports for a touch this frame.
type TouchPhase uint8

const (
	PhaseBegan      TouchPhase = iota // contact started this frame
	PhaseMoved                        // contact moved
	PhaseStationary                   // contact held without moving
	PhaseEnded                        // contact lifted (unreliable on most backends)
	PhaseCanceled                     // contact canceled by the system
)

// ButtonPhase is the state of a mouse button this frame.
type ButtonPhase uint8

const (
	ButtonIdle     ButtonPhase = iota // not pressed
	ButtonPressed                     // went down this frame
	ButtonHeld                        // down, and was down last frame
	ButtonReleased                    // went up this frame
)

// Touch is one raw contact reported by a backend for a single frame.
type Touch struct {
	ID        int
	Position  Vec2
	DeltaTime float64
	Phase     TouchPhase
}

// Frame is the input snapshot for one frame. Backends fill it through
// InputSource.Poll; tests and tools can build one directly.
type Frame struct {
	// Time is the frame timestamp in seconds. Only differences matter.
	Time    float64
	Touches []Touch
	Cursor  Vec2
	Buttons [2]ButtonPhase
}

// Reset clears the frame for reuse, keeping the touch slice's storage.
func (f *Frame) Reset() {
	f.Touches = f.Touches[:0]
	f.Buttons = [2]ButtonPhase{}
}

// InputSource fills a Frame with the current input state. Poll is called
// once per frame.
type InputSource interface {
	Poll(f *Frame)
}

// TouchEvent describes a tracked contact, whether it came from a real touch
// or a mouse button.
type TouchEvent struct {
	ID        int
	Position  Vec2
	DeltaTime float64
}

// TouchEventType identifies a tracker callback kind.
type TouchEventType uint8

const (
	TouchBegin  TouchEventType = iota // a contact started being tracked
	TouchUpdate                       // a tracked contact was seen again
	TouchEnd                          // a tracked contact ended
)

// EventStore is the interface for optional ECS integration. When set on a
// TouchTracker, every begin/update/end is forwarded to it.
type EventStore interface {
	EmitEvent(event InputEvent)
}

// InputEvent carries tracker output for the ECS bridge.
type InputEvent struct {
	Type      TouchEventType
	TouchID   int
	X, Y      float64
	DeltaTime float64
}

// --- Handler registry ---

type touchHandler struct {
	id uint32
	fn func(TouchEvent)
}

type touchEndHandler struct {
	id uint32
	fn func(id int, last Vec2)
}

type handlerRegistry struct {
	begin  []touchHandler
	update []touchHandler
	end    []touchEndHandler
	nextID uint32
}

// CallbackHandle allows removing a registered tracker callback.
type CallbackHandle struct {
	id    uint32
	reg   *handlerRegistry
	event TouchEventType
}

// Remove unregisters this callback so it no longer fires. It is safe to call
// from inside a callback; handlers already being dispatched still run.
func (h CallbackHandle) Remove() {
	if h.reg == nil {
		return
	}
	switch h.event {
	case TouchBegin:
		h.reg.begin = removeTouchHandler(h.reg.begin, h.id)
	case TouchUpdate:
		h.reg.update = removeTouchHandler(h.reg.update, h.id)
	case TouchEnd:
		for i := range h.reg.end {
			if h.reg.end[i].id == h.id {
				h.reg.end = append(h.reg.end[:i:i], h.reg.end[i+1:]...)
				return
			}
		}
	}
}

// removeTouchHandler returns s without the handler id. The result never
// shares storage with s, so a dispatch loop ranging over s is unaffected.
func removeTouchHandler(s []touchHandler, id uint32) []touchHandler {
	for i := range s {
		if s[i].id == id {
			return append(s[:i:i], s[i+1:]...)
		}
	}
	return s
}

// --- Tracker ---

// touchSlot tracks a single contact.
type touchSlot struct {
	active bool
	dirty  bool // seen this frame
	id     int
	last   Vec2
}

// TrackerOption configures a TouchTracker.
type TrackerOption func(*TouchTracker)

// WithTrackerLogger overrides the package logger for one tracker.
func WithTrackerLogger(l *zap.Logger) TrackerOption {
	return func(t *TouchTracker) {
		if l != nil {
			t.log = l
		}
	}
}

// TouchTracker turns per-frame contact snapshots into begin, update and end
// callbacks. Touch-end notifications from backends are unreliable, so a
// tracked contact that is missing from a frame is ended at the end of that
// frame.
//
// A TouchTracker is not safe for concurrent use.
type TouchTracker struct {
	slots    *FixedList[touchSlot]
	handlers handlerRegistry
	store    EventStore
	log      *zap.Logger
	frame    Frame
	downAt   [2]float64
}

// NewTouchTracker creates a tracker that follows at most maxTouches contacts
// at once. Contacts beyond that are ignored until a slot frees up.
func NewTouchTracker(maxTouches int, opts ...TrackerOption) *TouchTracker {
	maxTouches = max(maxTouches, 0)
	t := &TouchTracker{
		slots: NewFixedList[touchSlot](maxTouches),
		log:   logger,
	}
	for i := 0; i < maxTouches; i++ {
		t.slots.Add(touchSlot{})
	}
	for _, o := range opts {
		o(t)
	}
	return t
}

// OnTouchBegin registers a callback fired when a contact starts being tracked.
func (t *TouchTracker) OnTouchBegin(fn func(TouchEvent)) CallbackHandle {
	t.handlers.nextID++
	id := t.handlers.nextID
	t.handlers.begin = append(t.handlers.begin, touchHandler{id: id, fn: fn})
	return CallbackHandle{id: id, reg: &t.handlers, event: TouchBegin}
}

// OnTouchUpdate registers a callback fired each frame a tracked contact is seen.
func (t *TouchTracker) OnTouchUpdate(fn func(TouchEvent)) CallbackHandle {
	t.handlers.nextID++
	id := t.handlers.nextID
	t.handlers.update = append(t.handlers.update, touchHandler{id: id, fn: fn})
	return CallbackHandle{id: id, reg: &t.handlers, event: TouchUpdate}
}

// OnTouchEnd registers a callback fired when a tracked contact ends. Only the
// contact ID and its last known position are passed, since the originating
// contact may no longer exist.
func (t *TouchTracker) OnTouchEnd(fn func(id int, last Vec2)) CallbackHandle {
	t.handlers.nextID++
	id := t.handlers.nextID
	t.handlers.end = append(t.handlers.end, touchEndHandler{id: id, fn: fn})
	return CallbackHandle{id: id, reg: &t.handlers, event: TouchEnd}
}

// SetEventStore sets the optional ECS bridge.
func (t *TouchTracker) SetEventStore(store EventStore) {
	t.store = store
}

// MaxTouches returns the number of tracker slots.
func (t *TouchTracker) MaxTouches() int { return t.slots.Len() }

// ActiveCount returns the number of contacts currently tracked.
func (t *TouchTracker) ActiveCount() int {
	n := 0
	for _, s := range t.slots.Items() {
		if s.active {
			n++
		}
	}
	return n
}

// IsTracking reports whether a contact with the given ID is tracked.
func (t *TouchTracker) IsTracking(id int) bool {
	return t.find(id) != nil
}

// ClearTouches ends every tracked contact.
func (t *TouchTracker) ClearTouches() {
	slots := t.slots.Items()
	for i := range slots {
		if slots[i].active {
			t.end(&slots[i])
		}
	}
}

// UpdateFrom polls src into the tracker's own frame and runs Update on it.
func (t *TouchTracker) UpdateFrom(src InputSource) {
	src.Poll(&t.frame)
	t.Update(&t.frame)
}

// Update processes one frame of input. Call once per frame.
func (t *TouchTracker) Update(frame *Frame) {
	slots := t.slots.Items()
	for i := range slots {
		if slots[i].active {
			slots[i].dirty = false
		}
	}

	for i := range frame.Touches {
		tc := &frame.Touches[i]
		ev := TouchEvent{ID: tc.ID, Position: tc.Position, DeltaTime: tc.DeltaTime}
		s := t.find(tc.ID)

		if tc.Phase != PhaseBegan {
			if s != nil {
				t.update(s, ev)
			}
			continue
		}

		// A begin for a contact we already track is a new contact reusing
		// the ID: close the old one first.
		if s != nil {
			t.log.Warn("touch began while already tracked", zap.Int("touch_id", tc.ID))
			t.end(s)
		}
		if s = t.free(); s == nil {
			t.log.Debug("touch dropped: no free tracker", zap.Int("touch_id", tc.ID))
			continue
		}
		t.begin(s, ev)
	}

	t.processButton(frame, MouseButtonLeft, LeftButtonTouchID)
	t.processButton(frame, MouseButtonRight, RightButtonTouchID)

	// Anything not seen this frame has ended.
	for i := range slots {
		if slots[i].active && !slots[i].dirty {
			t.end(&slots[i])
		}
	}
}

func (t *TouchTracker) processButton(frame *Frame, b MouseButton, id int) {
	switch frame.Buttons[b] {
	case ButtonPressed:
		if s := t.find(id); s != nil {
			t.log.Warn("mouse button pressed twice without release", zap.Uint8("button", uint8(b)))
			t.end(s)
		}
		s := t.free()
		if s == nil {
			return
		}
		t.downAt[b] = frame.Time
		t.begin(s, TouchEvent{ID: id, Position: frame.Cursor})
	case ButtonReleased:
		if s := t.find(id); s != nil {
			t.end(s)
		}
	case ButtonHeld:
		if s := t.find(id); s != nil {
			t.update(s, TouchEvent{ID: id, Position: frame.Cursor, DeltaTime: frame.Time - t.downAt[b]})
		}
	}
}

func (t *TouchTracker) find(id int) *touchSlot {
	slots := t.slots.Items()
	for i := range slots {
		if slots[i].active && slots[i].id == id {
			return &slots[i]
		}
	}
	return nil
}

func (t *TouchTracker) free() *touchSlot {
	slots := t.slots.Items()
	for i := range slots {
		if !slots[i].active {
			return &slots[i]
		}
	}
	return nil
}

func (t *TouchTracker) begin(s *touchSlot, ev TouchEvent) {
	s.active = true
	s.dirty = true
	s.id = ev.ID
	s.last = ev.Position
	for _, h := range t.handlers.begin {
		h.fn(ev)
	}
	t.emit(TouchBegin, ev.ID, ev.Position, ev.DeltaTime)
}

func (t *TouchTracker) update(s *touchSlot, ev TouchEvent) {
	s.dirty = true
	s.last = ev.Position
	for _, h := range t.handlers.update {
		h.fn(ev)
	}
	t.emit(TouchUpdate, ev.ID, ev.Position, ev.DeltaTime)
}

func (t *TouchTracker) end(s *touchSlot) {
	id, last := s.id, s.last
	s.active = false
	s.dirty = false
	for _, h := range t.handlers.end {
		h.fn(id, last)
	}
	t.emit(TouchEnd, id, last, 0)
}

func (t *TouchTracker) emit(typ TouchEventType, id int, pos Vec2, dt float64) {
	if t.store == nil {
		return
	}
	t.store.EmitEvent(InputEvent{Type: typ, TouchID: id, X: pos.X, Y: pos.Y, DeltaTime: dt})
}
