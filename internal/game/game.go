// Package game is the desktop frontend: it draws a run with ebiten, reads
// the keyboard into intents and feeds the real frame delta to the run.
package game

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/basicfont"

	"github.com/leofattal/smoking-crack/internal/maze"
	"github.com/leofattal/smoking-crack/internal/run"
	"github.com/leofattal/smoking-crack/internal/sim"
	"github.com/leofattal/smoking-crack/internal/sound"
)

// borderWidth is the pixel gap between the window edge and the maze.
const borderWidth = 24

// tileSize is the drawn size of one maze tile in pixels.
const tileSize = 32

// minHeight keeps room for the feed and the shop list on small mazes.
const minHeight = 560

var (
	colBackground = color.RGBA{R: 12, G: 10, B: 16, A: 255}
	colWall       = color.RGBA{R: 28, G: 36, B: 92, A: 255}
	colWallEdge   = color.RGBA{R: 70, G: 90, B: 200, A: 255}
	colFloor      = color.RGBA{R: 18, G: 16, B: 22, A: 255}
	colHouse      = color.RGBA{R: 40, G: 30, B: 40, A: 255}
	colTunnel     = color.RGBA{R: 30, G: 50, B: 50, A: 255}
	colText       = color.RGBA{R: 220, G: 220, B: 210, A: 255}
	colDim        = color.RGBA{R: 130, G: 130, B: 130, A: 255}
	colAlert      = color.RGBA{R: 230, G: 60, B: 50, A: 255}
	colGold       = color.RGBA{R: 255, G: 200, B: 40, A: 255}
)

// hudFace is the fixed-width face used for every label.
var hudFace = text.NewGoXFace(basicfont.Face7x13)

// Game implements ebiten.Game around one run.
type Game struct {
	width      int
	height     int
	mazeWidth  int
	mazeHeight int
	offX       int
	offY       int

	run    *run.Run
	feed   *EventFeed
	sound  *sound.Manager
	voices *Voices

	speechBubbles []*SpeechBubble

	input      sim.Input
	keys       KeyState
	clip       func(string) error
	prevKeys   map[ebiten.Key]bool
	shopCursor int
	status     string
	paused     bool
	showHelp   bool
}

// Option configures a Game.
type Option func(*Game)

// WithSound plays cues through m.
func WithSound(m *sound.Manager) Option {
	return func(g *Game) { g.sound = m }
}

// WithKeyState replaces the keyboard, mainly for tests.
func WithKeyState(k KeyState) Option {
	return func(g *Game) { g.keys = k }
}

// New builds a frontend for r.
func New(r *run.Run, opts ...Option) *Game {
	grid := r.Day().Grid()
	g := &Game{
		run:      r,
		feed:     NewEventFeed(),
		sound:    sound.NewManager(),
		voices:   NewVoices(sim.NewRand(r.Config().Seed + 1)),
		keys:     ebiten.IsKeyPressed,
		clip:     systemClipboard,
		prevKeys: make(map[ebiten.Key]bool),
		showHelp: true,
	}
	for _, o := range opts {
		o(g)
	}
	g.fit(grid)
	return g
}

// fit sizes the layout around grid. Days on a different maze refit, and
// ebiten scales the new layout into the window.
func (g *Game) fit(grid *maze.Grid) {
	g.mazeWidth = grid.Cols() * tileSize
	g.mazeHeight = grid.Rows() * tileSize
	g.offX, g.offY = borderWidth, borderWidth
	g.width = borderWidth + g.mazeWidth + borderWidth + feedPanelWidth
	g.height = max(borderWidth+g.mazeHeight+borderWidth, minHeight)
}

// Size returns the window size the game wants.
func (g *Game) Size() (int, int) { return g.width, g.height }

// Update reads input and advances the run by one frame.
func (g *Game) Update() error {
	g.handleInput()
	if g.paused {
		return nil
	}
	return g.step(1000 / float64(ebiten.TPS()))
}

// step advances the run by dtMs and fans the events out.
func (g *Game) step(dtMs float64) error {
	events, err := g.run.Update(dtMs, g.input)
	g.input = sim.Input{}
	if err != nil {
		return err
	}
	g.sound.HandleEvents(events)
	for _, e := range events {
		g.feed.AddEvent(e)
		g.say(e)
	}
	g.ageSpeech(dtMs)
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(colBackground)
	v := g.run.View()
	g.drawMaze(screen, v.Day)
	g.drawEntities(screen, v.Day)
	g.drawSpeechBubbles(screen, v.Day)
	g.feed.Draw(screen, g.offX+g.mazeWidth+g.offX, g.height)
	g.drawHUD(screen, v)

	switch v.Screen {
	case run.ScreenStandoff:
		g.drawStandoff(screen, v.Standoff)
	case run.ScreenShop:
		g.drawShop(screen, v)
	case run.ScreenGameOver:
		g.drawGameOver(screen, v)
	}
}

func (g *Game) Layout(_, _ int) (int, int) {
	return g.width, g.height
}

// drawText draws s with its top-left corner at (x, y).
func drawText(dst *ebiten.Image, s string, x, y float64, c color.Color) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(c)
	op.LineSpacing = lineHeight
	text.Draw(dst, s, hudFace, op)
}

// lineHeight is the pixel height of one line of hudFace.
const lineHeight = 14

// charWidth is the advance of one glyph of hudFace.
const charWidth = 7
