package uzu

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

// FPSCounter averages frames per second over a fixed time span.
type FPSCounter struct {
	// Span is the averaging window in seconds. Zero means one second.
	Span float64

	frames  int
	elapsed float64
	average float64
}

// Tick records one frame that took dt seconds.
func (c *FPSCounter) Tick(dt float64) {
	span := c.Span
	if span <= 0 {
		span = 1
	}
	c.elapsed += dt
	c.frames++
	if c.elapsed > span {
		c.average = float64(c.frames) / span
		c.frames = 0
		c.elapsed = 0
	}
}

// FPS returns the average over the last completed span.
func (c *FPSCounter) FPS() float64 { return c.average }

// fpsOverlay draws the counter in the top-left corner. The text image is only
// redrawn when the whole-number FPS changes.
type fpsOverlay struct {
	img  *ebiten.Image
	last int
}

func newFPSOverlay() *fpsOverlay {
	// 100x32 is enough for "FPS: 60\nTPS: 60.0"
	return &fpsOverlay{img: ebiten.NewImage(100, 32), last: -1}
}

func (o *fpsOverlay) draw(screen *ebiten.Image, c *FPSCounter) {
	fps := int(c.FPS())
	if fps != o.last {
		o.last = fps
		o.img.Clear()
		// Semi-transparent background for readability
		o.img.Fill(color.RGBA{0, 0, 0, 128})
		ebitenutil.DebugPrint(o.img, fmt.Sprintf("FPS: %d\nTPS: %.1f", fps, ebiten.ActualTPS()))
	}
	screen.DrawImage(o.img, nil)
}
