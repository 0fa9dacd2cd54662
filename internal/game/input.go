package game

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/leofattal/smoking-crack/internal/run"
	"github.com/leofattal/smoking-crack/internal/sim"
)

// KeyState reports whether a key is held this frame.
type KeyState func(ebiten.Key) bool

var directionKeys = []struct {
	dir  sim.Direction
	keys []ebiten.Key
}{
	{sim.DirUp, []ebiten.Key{ebiten.KeyArrowUp, ebiten.KeyW}},
	{sim.DirDown, []ebiten.Key{ebiten.KeyArrowDown, ebiten.KeyS}},
	{sim.DirLeft, []ebiten.Key{ebiten.KeyArrowLeft, ebiten.KeyA}},
	{sim.DirRight, []ebiten.Key{ebiten.KeyArrowRight, ebiten.KeyD}},
}

// edgeKeys are the keys that act once per press.
var edgeKeys = []ebiten.Key{
	ebiten.KeySpace, ebiten.KeyEnter, ebiten.KeyF, ebiten.KeyC,
	ebiten.KeyArrowUp, ebiten.KeyArrowDown,
	ebiten.KeyP, ebiten.KeyM, ebiten.KeyH, ebiten.KeyR,
}

func (g *Game) handleInput() {
	currentKeys := make(map[ebiten.Key]bool, len(edgeKeys))
	for _, k := range edgeKeys {
		currentKeys[k] = g.keys(k)
	}
	pressed := func(k ebiten.Key) bool { return currentKeys[k] && !g.prevKeys[k] }

	// P pauses, M mutes, H hides the key legend, R copies the run report.
	if pressed(ebiten.KeyP) {
		g.paused = !g.paused
	}
	if pressed(ebiten.KeyM) {
		g.sound.SetMuted(!g.sound.Muted())
	}
	if pressed(ebiten.KeyH) {
		g.showHelp = !g.showHelp
	}
	if pressed(ebiten.KeyR) {
		g.copyReport()
	}

	switch g.run.Screen() {
	case run.ScreenPlaying:
		// Held keys keep re-queuing so a turn lands at the next junction.
		for _, dk := range directionKeys {
			for _, k := range dk.keys {
				if g.keys(k) {
					g.input.Direction = dk.dir
				}
			}
		}
		if pressed(ebiten.KeySpace) {
			g.input.UseConsumable = true
		}
	case run.ScreenStandoff:
		if pressed(ebiten.KeySpace) || pressed(ebiten.KeyEnter) || pressed(ebiten.KeyF) {
			g.setStatus(g.run.Fire())
		}
	case run.ScreenShop:
		offers := g.run.Offers()
		switch {
		case pressed(ebiten.KeyArrowUp):
			g.shopCursor = (g.shopCursor + len(offers) - 1) % len(offers)
		case pressed(ebiten.KeyArrowDown):
			g.shopCursor = (g.shopCursor + 1) % len(offers)
		case pressed(ebiten.KeyEnter):
			o := offers[g.shopCursor]
			if err := g.run.Buy(o.Kind, o.ID); err != nil {
				g.setStatus(err)
			} else {
				g.status = "bought " + o.Name
			}
		case pressed(ebiten.KeyC):
			g.nextDay()
		}
	case run.ScreenGameOver:
		if pressed(ebiten.KeyEnter) {
			g.nextDay()
		}
	}

	g.prevKeys = currentKeys
}

func (g *Game) nextDay() {
	if err := g.run.Continue(); err != nil {
		g.setStatus(err)
		return
	}
	g.status = ""
	g.speechBubbles = nil
	g.voices.Reset()
	d := g.run.Day()
	g.fit(d.Grid())
	g.feed.AddNote(d.TickCount(), "--", fmt.Sprintf("day %d on %s", d.Index(), d.Grid().Name()))
}

func (g *Game) setStatus(err error) {
	if err != nil {
		g.status = err.Error()
		return
	}
	g.status = ""
}
