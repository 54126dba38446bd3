package uzu

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"gopkg.in/yaml.v3"
)

// Drawer is optionally implemented by an App that renders each frame.
type Drawer interface {
	Draw(screen *ebiten.Image)
}

// RunConfig configures Run.
type RunConfig struct {
	Title  string `yaml:"title"`
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	// TPS is the update rate. Zero keeps Ebitengine's default (60).
	TPS int `yaml:"tps"`
	// MaxTouches sizes the touch tracker. Zero disables input tracking.
	MaxTouches int `yaml:"max_touches"`
	// ShowFPS draws an FPS counter in the top-left corner.
	ShowFPS bool `yaml:"show_fps"`
	// FPSSpan is the FPS averaging window in seconds.
	FPSSpan float64 `yaml:"fps_span"`
}

// DefaultRunConfig returns the settings Run falls back to for unset fields.
func DefaultRunConfig() RunConfig {
	return RunConfig{
		Title:      "uzu",
		Width:      640,
		Height:     480,
		MaxTouches: 10,
		FPSSpan:    1,
	}
}

func (c *RunConfig) applyDefaults() {
	def := DefaultRunConfig()
	if c.Title == "" {
		c.Title = def.Title
	}
	if c.Width <= 0 {
		c.Width = def.Width
	}
	if c.Height <= 0 {
		c.Height = def.Height
	}
	if c.FPSSpan <= 0 {
		c.FPSSpan = def.FPSSpan
	}
}

// LoadRunConfig reads a YAML run configuration. Fields absent from the file
// keep DefaultRunConfig values. A missing file returns the defaults.
func LoadRunConfig(path string) (RunConfig, error) {
	cfg := DefaultRunConfig()
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return cfg, fmt.Errorf("uzu: load run config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("uzu: parse run config %s: %w", path, err)
	}
	cfg.applyDefaults()
	return cfg, nil
}

// game adapts a Main to ebiten.Game.
type game struct {
	main     *Main
	cfg      RunConfig
	fps      FPSCounter
	overlay  *fpsOverlay
	lastDraw time.Time
}

func (g *game) Update() error {
	return g.main.Update(1.0 / float64(ebiten.TPS()))
}

func (g *game) Draw(screen *ebiten.Image) {
	if d, ok := g.main.app.(Drawer); ok {
		d.Draw(screen)
	}
	if !g.cfg.ShowFPS {
		return
	}
	now := time.Now()
	if !g.lastDraw.IsZero() {
		g.fps.Tick(now.Sub(g.lastDraw).Seconds())
	}
	g.lastDraw = now
	g.overlay.draw(screen, &g.fps)
}

func (g *game) Layout(_, _ int) (int, int) {
	return g.cfg.Width, g.cfg.Height
}

// Run opens a window and drives app until the window closes or app.Update
// returns an error. When cfg.MaxTouches is positive, the app can reach a
// touch tracker fed from Ebitengine through Main.Input.
func Run(app App, cfg RunConfig) error {
	cfg.applyDefaults()

	var input *TouchTracker
	var source InputSource
	if cfg.MaxTouches > 0 {
		input = NewTouchTracker(cfg.MaxTouches)
		source = NewEbitenSource()
	}

	m, err := NewMain(app, input, source)
	if err != nil {
		return err
	}
	defer m.Close()

	ebiten.SetWindowTitle(cfg.Title)
	ebiten.SetWindowSize(cfg.Width, cfg.Height)
	if cfg.TPS > 0 {
		ebiten.SetTPS(cfg.TPS)
	}

	g := &game{main: m, cfg: cfg, fps: FPSCounter{Span: cfg.FPSSpan}}
	if cfg.ShowFPS {
		g.overlay = newFPSOverlay()
	}
	return ebiten.RunGame(g)
}
