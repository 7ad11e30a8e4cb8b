package ebitenhost

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"

	"github.com/phanxgames/textbind"
)

// Updater is advanced by the Game once per tick with the frame delta in
// seconds. textbind.TweenValue and FPSValue satisfy it.
type Updater interface {
	Update(dt float32)
}

// Game adapts a textbind.Scene to ebiten.Game. Each Update runs the user
// hook, advances registered Updaters, then calls Scene.Update so bindings
// publish after all game logic for the frame (a late update).
type Game struct {
	Scene      *textbind.Scene
	ClearColor color.Color
	ShowFPS    bool

	updateFunc func() error
	updaters   []Updater
	labels     []*Label
	width      int
	height     int
}

var _ ebiten.Game = (*Game)(nil)

// NewGame creates a Game for scene with a logical screen of width x height.
func NewGame(scene *textbind.Scene, width, height int) *Game {
	return &Game{Scene: scene, width: width, height: height}
}

// SetUpdateFunc sets the per-tick game logic hook, run before bindings
// publish.
func (g *Game) SetUpdateFunc(fn func() error) {
	g.updateFunc = fn
}

// AddUpdater registers u to be advanced every tick.
func (g *Game) AddUpdater(u Updater) {
	g.updaters = append(g.updaters, u)
}

// AddLabel registers l to be drawn each frame, in registration order.
func (g *Game) AddLabel(l *Label) {
	g.labels = append(g.labels, l)
}

// Labels returns the registered labels.
func (g *Game) Labels() []*Label {
	return g.labels
}

// Update implements ebiten.Game.
func (g *Game) Update() error {
	return g.step(float32(1.0 / float64(ebiten.TPS())))
}

func (g *Game) step(dt float32) error {
	if g.updateFunc != nil {
		if err := g.updateFunc(); err != nil {
			return err
		}
	}
	for _, u := range g.updaters {
		u.Update(dt)
	}
	if g.Scene == nil {
		return nil
	}
	return g.Scene.Update()
}

// Draw implements ebiten.Game.
func (g *Game) Draw(screen *ebiten.Image) {
	if g.ClearColor != nil {
		screen.Fill(g.ClearColor)
	}
	for _, l := range g.labels {
		l.Draw(screen)
	}
	if g.ShowFPS {
		ebitenutil.DebugPrintAt(screen, fmt.Sprintf("FPS: %.1f\nTPS: %.1f", ebiten.ActualFPS(), ebiten.ActualTPS()), 0, g.height-32)
	}
}

// Layout implements ebiten.Game.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if g.width <= 0 || g.height <= 0 {
		return outsideWidth, outsideHeight
	}
	return g.width, g.height
}

// RunConfig holds window options for Run.
type RunConfig struct {
	Title   string
	Width   int
	Height  int
	ShowFPS bool
}

// Run opens a window and runs g until it exits. Zero sizes in cfg fall back
// to the game's logical size.
func Run(g *Game, cfg RunConfig) error {
	if cfg.Width > 0 && cfg.Height > 0 {
		g.width, g.height = cfg.Width, cfg.Height
	}
	if g.width > 0 && g.height > 0 {
		ebiten.SetWindowSize(g.width, g.height)
	}
	if cfg.Title != "" {
		ebiten.SetWindowTitle(cfg.Title)
	}
	g.ShowFPS = g.ShowFPS || cfg.ShowFPS
	if err := ebiten.RunGame(g); err != nil {
		return fmt.Errorf("ebitenhost: run: %w", err)
	}
	return nil
}
