package canvas

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/plus3/blockfall/engine"
	"github.com/plus3/blockfall/render"
)

// Overlay is drawn on top of the board each frame. The imgui debug
// backend satisfies it.
type Overlay interface {
	BeginFrame()
	EndFrame()
	Draw(screen *ebiten.Image)
	Layout(outsideWidth, outsideHeight int)
}

// Game implements ebiten.Game for one session.
type Game struct {
	Scheduler *engine.Scheduler
	Renderer  *Renderer
	Keys      *KeySystem
	Overlay   Overlay

	// Toggles run when their key is pressed, before the frame's systems.
	Toggles map[ebiten.Key]func()
}

// NewGame registers the key and fall systems on scheduler, in that order,
// so a key press and the tick it races with apply in a fixed order.
func NewGame(scheduler *engine.Scheduler) *Game {
	keys := &KeySystem{}
	scheduler.Register(keys)
	scheduler.Register(engine.FallSystem{})

	return &Game{
		Scheduler: scheduler,
		Renderer:  &Renderer{OffsetX: 20, OffsetY: 20},
		Keys:      keys,
	}
}

func (g *Game) Update() error {
	captured := g.Keys.Captured != nil && g.Keys.Captured()
	if !captured && (ebiten.IsKeyPressed(ebiten.KeyQ) || ebiten.IsKeyPressed(ebiten.KeyEscape)) {
		return ebiten.Termination
	}

	for key, fn := range g.Toggles {
		if inpututil.IsKeyJustPressed(key) {
			fn()
		}
	}

	if g.Overlay != nil {
		g.Overlay.BeginFrame()
	}

	g.Scheduler.Once(1.0 / float64(ebiten.TPS()))

	if g.Overlay != nil {
		g.Overlay.EndFrame()
	}
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.Renderer.Draw(screen, render.NewView(g.Scheduler.Session().Board()))

	if g.Overlay != nil {
		g.Overlay.Draw(screen)
	}
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if g.Overlay != nil {
		g.Overlay.Layout(outsideWidth, outsideHeight)
		return outsideWidth, outsideHeight
	}
	return g.Renderer.Size()
}
