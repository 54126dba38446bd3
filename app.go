package uzu

// App is the application driven by a Main. Begin loads resources and runs
// once when the Main is created; Start runs once before the first Update;
// End runs once when the Main is closed.
type App interface {
	Begin(m *Main) error
	Start() error
	Update(dt float64) error
	End()
}

// mainInstance guards against two Mains running in one process.
var mainInstance Singleton[Main]

// Main is the application entry point. Only one may exist at a time.
type Main struct {
	app     App
	input   *TouchTracker
	source  InputSource
	started bool
	closed  bool
}

// NewMain registers the process-wide Main and calls app.Begin. input and
// source may be nil; when both are set, input is updated from source at the
// start of every frame.
func NewMain(app App, input *TouchTracker, source InputSource) (*Main, error) {
	m := &Main{app: app, input: input, source: source}
	if err := mainInstance.Set(m); err != nil {
		return nil, err
	}
	if err := app.Begin(m); err != nil {
		_ = mainInstance.Set(nil)
		return nil, err
	}
	return m, nil
}

// CurrentMain returns the running Main, or nil.
func CurrentMain() *Main {
	return mainInstance.Get()
}

// Input returns the touch tracker, which may be nil.
func (m *Main) Input() *TouchTracker { return m.input }

// App returns the driven application.
func (m *Main) App() App { return m.app }

// Update advances one frame: input first, then the app.
func (m *Main) Update(dt float64) error {
	if m.closed {
		return nil
	}
	if !m.started {
		m.started = true
		if err := m.app.Start(); err != nil {
			return err
		}
	}
	if m.input != nil && m.source != nil {
		m.input.UpdateFrom(m.source)
	}
	return m.app.Update(dt)
}

// Close calls app.End and releases the process-wide slot. Calling Close more
// than once is a no-op.
func (m *Main) Close() {
	if m.closed || mainInstance.Get() != m {
		return
	}
	m.closed = true
	m.app.End()
	_ = mainInstance.Set(nil)
}
