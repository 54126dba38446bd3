// Package uzu is a small toolkit of game-loop building blocks for
// [Ebitengine] games: growable and fixed-capacity lists, an entity pool,
// a touch tracker that treats mouse buttons as touches, and a persistent
// preference store.
//
// # Quick start
//
// [Run] opens a window, creates a [TouchTracker] fed from Ebitengine input
// and drives an [App]:
//
//	type game struct{}
//
//	func (g *game) Begin(m *uzu.Main) error {
//		m.Input().OnTouchBegin(func(ev uzu.TouchEvent) {
//			log.Println("touch", ev.ID, ev.Position)
//		})
//		return nil
//	}
//	func (g *game) Start() error              { return nil }
//	func (g *game) Update(dt float64) error   { return nil }
//	func (g *game) End()                      {}
//
//	uzu.Run(&game{}, uzu.RunConfig{Title: "My Game", MaxTouches: 10})
//
// # Pools
//
// A [Pool] recycles entities instead of allocating new ones. Values implement
// [Pooled] to hook spawn and unspawn:
//
//	pool, err := uzu.NewPool(uzu.Prefab[*Bullet]{
//		Name: "bullet",
//		New:  func() (*Bullet, error) { return &Bullet{}, nil },
//	}, uzu.PoolConfig{InitialCount: 32, Grow: true})
//
//	e, err := pool.SpawnAt(uzu.Vec3{X: 10, Y: 20})
//	// ...
//	e.Unspawn()
//
// # Input
//
// A [TouchTracker] reads one [Frame] per update from an [InputSource] and
// reports begin, update and end for each contact. The left and right mouse
// buttons are tracked as contacts with IDs [LeftButtonTouchID] and
// [RightButtonTouchID]. Sources exist for Ebitengine ([EbitenSource]),
// scripted playback ([InjectSource]) and terminals (package terminput).
// Package uzu/ecs forwards tracker events into a [Donburi] world.
//
// # Logging
//
// Anomalies such as an exhausted pool or a duplicate touch are reported
// through a [zap] logger named "uzu" that prints warnings to stderr. Replace
// it with [SetLogger].
//
// [Ebitengine]: https://ebitengine.org
// [Donburi]: https://github.com/yohamta/donburi
// [zap]: https://pkg.go.dev/go.uber.org/zap
package uzu
