package uzu

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// TweenGroup animates up to 3 float64 fields of a pooled entity at once.
// Create one with TweenPosition or TweenScale and call Update(dt) each frame.
// If the entity is unspawned the group stops immediately, so a recycled
// entity is never moved by a stale tween.
//
// There is no global animation manager; callers run Update themselves.
type TweenGroup struct {
	tweens [3]*gween.Tween
	count  int
	fields [3]*float64
	target interface{ Active() bool }
	Done   bool
}

// Update advances all tweens by dt seconds and writes the values to the
// target fields.
func (g *TweenGroup) Update(dt float32) {
	if g.Done {
		return
	}
	if g.target != nil && !g.target.Active() {
		g.Done = true
		return
	}

	allDone := true
	for i := 0; i < g.count; i++ {
		val, finished := g.tweens[i].Update(dt)
		*g.fields[i] = float64(val)
		if !finished {
			allDone = false
		}
	}
	g.Done = allDone
}

func (g *TweenGroup) add(field *float64, to float64, duration float32, fn ease.TweenFunc) {
	g.tweens[g.count] = gween.New(float32(*field), float32(to), duration, fn)
	g.fields[g.count] = field
	g.count++
}

// TweenPosition animates e.Position to the target over duration seconds.
func TweenPosition[T Pooled](e *Entity[T], to Vec3, duration float32, fn ease.TweenFunc) *TweenGroup {
	g := &TweenGroup{target: e}
	g.add(&e.Position.X, to.X, duration, fn)
	g.add(&e.Position.Y, to.Y, duration, fn)
	g.add(&e.Position.Z, to.Z, duration, fn)
	return g
}

// TweenScale animates e.Scale to the target over duration seconds.
func TweenScale[T Pooled](e *Entity[T], to Vec3, duration float32, fn ease.TweenFunc) *TweenGroup {
	g := &TweenGroup{target: e}
	g.add(&e.Scale.X, to.X, duration, fn)
	g.add(&e.Scale.Y, to.Y, duration, fn)
	g.add(&e.Scale.Z, to.Z, duration, fn)
	return g
}
