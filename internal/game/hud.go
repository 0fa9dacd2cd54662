package game

import (
	"fmt"
	"image/color"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/leofattal/smoking-crack/internal/run"
	"github.com/leofattal/smoking-crack/internal/sim"
)

var helpLines = []string{
	"arrows/wasd  move",
	"space        smoke a rock",
	"p pause  m mute  h help",
	"r copy run report",
}

// drawHUD draws the top status line, the heat gauge along the bottom
// border and the modifier timers.
func (g *Game) drawHUD(screen *ebiten.Image, v run.View) {
	s := v.Day
	top := float64(g.offY-lineHeight) / 2
	phase := strings.ToUpper(s.Phase.String())
	drawText(screen, fmt.Sprintf("DAY %d  %s  %4.1fs", s.Day, phase, s.PhaseLeftMs/1000), float64(g.offX), top, colGold)
	drawText(screen, fmt.Sprintf("$%d   lives %d   stock %d   rocks %d", s.Cash, s.Lives, s.Player.Inventory, s.Player.Stash),
		float64(g.offX+200), top, colText)

	g.drawHeat(screen, s)

	// Modifier timers stack in the maze's top-left corner.
	x, y := float64(g.offX+6), float64(g.offY+4)
	if s.Player.High {
		drawText(screen, fmt.Sprintf("HIGH %.1fs", s.Player.HighLeftMs/1000), x, y, color.RGBA{R: 220, G: 90, B: 240, A: 255})
		y += lineHeight
	}
	for _, m := range s.Modifiers {
		drawText(screen, fmt.Sprintf("%s %.1fs", m.Kind, m.RemainingMs/1000), x, y, powerUpColors[m.Kind])
		y += lineHeight
	}

	var flags []string
	if g.paused {
		flags = append(flags, "PAUSED")
	}
	if g.sound.Muted() {
		flags = append(flags, "muted")
	}
	if len(flags) > 0 {
		label := strings.Join(flags, "  ")
		drawText(screen, label, float64(g.offX+g.mazeWidth-len(label)*charWidth), top, colDim)
	}
	if g.status != "" && v.Screen == run.ScreenPlaying {
		drawText(screen, g.status, float64(g.offX+6), float64(g.offY+g.mazeHeight-lineHeight-4), colAlert)
	}

	if g.showHelp && v.Screen == run.ScreenPlaying {
		g.drawHelp(screen)
	}
}

// drawHeat renders heat as a gauge under the maze, red past 60%.
func (g *Game) drawHeat(screen *ebiten.Image, s sim.Snapshot) {
	const h = 8
	x := float32(g.offX + 48)
	y := float32(g.offY+g.mazeHeight) + (borderWidth-h)/2
	w := float32(g.mazeWidth - 48)
	drawText(screen, "HEAT", float64(g.offX), float64(y)-3, colDim)
	vector.FillRect(screen, x, y, w, h, color.RGBA{R: 40, G: 30, B: 40, A: 255}, false)
	if s.HeatMax > 0 {
		frac := float32(min(max(s.Heat/s.HeatMax, 0), 1))
		c := colGold
		if frac > 0.6 {
			c = colAlert
		}
		vector.FillRect(screen, x, y, w*frac, h, c, false)
	}
	vector.StrokeRect(screen, x, y, w, h, 1, colDim, false)
}

func (g *Game) drawHelp(screen *ebiten.Image) {
	w := 0
	for _, l := range helpLines {
		w = max(w, len(l))
	}
	bw := float32(w*charWidth + 12)
	bh := float32(len(helpLines)*lineHeight + 8)
	bx := float32(g.offX+g.mazeWidth) - bw - 4
	by := float32(g.offY + 4)
	vector.FillRect(screen, bx, by, bw, bh, color.RGBA{R: 10, G: 10, B: 14, A: 200}, false)
	for i, l := range helpLines {
		drawText(screen, l, float64(bx+6), float64(by+4)+float64(i*lineHeight), colDim)
	}
}
