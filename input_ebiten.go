package uzu

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// EbitenSource reads touches, the cursor and the left/right mouse buttons from
// Ebitengine. Poll must be called from the game's Update.
type EbitenSource struct {
	touchIDs []ebiten.TouchID
	ticks    int64
}

// NewEbitenSource creates an input source backed by Ebitengine.
func NewEbitenSource() *EbitenSource {
	return &EbitenSource{}
}

// Poll fills f with this tick's input.
func (s *EbitenSource) Poll(f *Frame) {
	f.Reset()

	s.ticks++
	tick := 1.0 / float64(ebiten.TPS())
	f.Time = float64(s.ticks) * tick

	s.touchIDs = ebiten.AppendTouchIDs(s.touchIDs[:0])
	for _, tid := range s.touchIDs {
		x, y := ebiten.TouchPosition(tid)
		phase := PhaseMoved
		if inpututil.IsTouchJustPressed(tid) {
			phase = PhaseBegan
		}
		f.Touches = append(f.Touches, Touch{
			// Ebitengine touch IDs start at zero; shift them so every touch
			// ID is positive and clear of the reserved button IDs.
			ID:        int(tid) + 1,
			Position:  Vec2{X: float64(x), Y: float64(y)},
			DeltaTime: tick,
			Phase:     phase,
		})
	}

	mx, my := ebiten.CursorPosition()
	f.Cursor = Vec2{X: float64(mx), Y: float64(my)}
	f.Buttons[MouseButtonLeft] = ebitenButtonPhase(ebiten.MouseButtonLeft)
	f.Buttons[MouseButtonRight] = ebitenButtonPhase(ebiten.MouseButtonRight)
}

func ebitenButtonPhase(b ebiten.MouseButton) ButtonPhase {
	switch {
	case inpututil.IsMouseButtonJustPressed(b):
		return ButtonPressed
	case inpututil.IsMouseButtonJustReleased(b):
		return ButtonReleased
	case ebiten.IsMouseButtonPressed(b):
		return ButtonHeld
	default:
		return ButtonIdle
	}
}
