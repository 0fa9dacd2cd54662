package game

import (
	"fmt"
	"image/color"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/leofattal/smoking-crack/internal/run"
	"github.com/leofattal/smoking-crack/internal/shop"
	"github.com/leofattal/smoking-crack/internal/standoff"
)

// panel dims the maze and draws a centered box sized for cols x rows of
// text. It returns the text origin.
func (g *Game) panel(screen *ebiten.Image, cols, rows int, accent color.Color) (float64, float64) {
	vector.FillRect(screen, float32(g.offX), float32(g.offY), float32(g.mazeWidth), float32(g.mazeHeight),
		color.RGBA{R: 0, G: 0, B: 0, A: 150}, false)

	w := float32(cols*charWidth + 24)
	h := float32(rows*lineHeight + 20)
	x := float32(g.offX) + (float32(g.mazeWidth)-w)/2
	y := float32(g.offY) + (float32(g.mazeHeight)-h)/2
	vector.FillRect(screen, x, y, w, h, color.RGBA{R: 16, G: 12, B: 20, A: 240}, false)
	vector.StrokeRect(screen, x, y, w, h, 2, accent, false)
	return float64(x + 12), float64(y + 10)
}

func (g *Game) drawStandoff(screen *ebiten.Image, s *run.StandoffView) {
	if s == nil {
		return
	}
	x, y := g.panel(screen, 36, 7, colAlert)
	drawText(screen, "STANDOFF", x, y, colGold)
	drawText(screen, "you: "+s.Gun, x, y+lineHeight, colDim)

	msgY := y + 3*lineHeight
	switch s.Stage {
	case standoff.StageIntro:
		drawText(screen, "A cop blocks the way...", x, msgY, colText)
	case standoff.StageStaredown:
		if s.Countdown > 0 {
			drawText(screen, fmt.Sprintf("%d", s.Countdown), x, msgY, colGold)
		} else {
			drawText(screen, "steady...", x, msgY, colText)
		}
	case standoff.StageDraw:
		drawText(screen, fmt.Sprintf("DRAW!  %.0fms", s.DrawLeftMs), x, msgY, colAlert)
	case standoff.StageResult:
		c := colAlert
		if s.Outcome == standoff.OutcomeWon {
			c = colGold
		}
		drawText(screen, strings.ToUpper(s.Outcome.String()), x, msgY, c)
		drawText(screen, `"`+s.Line+`"`, x, msgY+lineHeight, colText)
	}
	drawText(screen, "space / enter / f to fire", x, y+6*lineHeight, colDim)
}

func (g *Game) drawShop(screen *ebiten.Image, v run.View) {
	rows := len(v.Offers) + 7
	x, y := g.panel(screen, 64, rows, colGold)
	drawText(screen, fmt.Sprintf("CORNER STORE   cash $%d", v.Day.Cash), x, y, colGold)
	if v.Report != nil {
		drawText(screen, fmt.Sprintf("day %d: sold %d for $%d", v.Report.Day, v.Report.UnitsSold, v.Report.Earnings), x, y+lineHeight, colDim)
	}

	for i, o := range v.Offers {
		ly := y + float64(i+3)*lineHeight
		c := colText
		switch {
		case o.Owned:
			c = colDim
		case o.Cost > v.Day.Cash:
			c = color.RGBA{R: 170, G: 90, B: 80, A: 255}
		}
		if i == g.shopCursor {
			vector.FillRect(screen, float32(x-4), float32(ly), float32(64*charWidth+8), lineHeight, color.RGBA{R: 60, G: 50, B: 20, A: 255}, false)
		}
		drawText(screen, offerLine(o), x, ly, c)
	}

	footY := y + float64(len(v.Offers)+4)*lineHeight
	if i := g.shopCursor; i >= 0 && i < len(v.Offers) {
		drawText(screen, v.Offers[i].Detail, x, footY, colDim)
	}
	if g.status != "" {
		drawText(screen, g.status, x, footY+lineHeight, colAlert)
	}
	drawText(screen, "up/down select  enter buy  c next day", x, footY+2*lineHeight, colDim)
}

// offerLine formats one shop row.
func offerLine(o shop.Offer) string {
	price := fmt.Sprintf("$%d", o.Cost)
	switch {
	case o.Equipped:
		price = "equipped"
	case o.Owned:
		price = "owned"
	}
	level := ""
	if o.MaxLevel > 1 {
		level = fmt.Sprintf("%d/%d", o.Level, o.MaxLevel)
	}
	return fmt.Sprintf("%-11s %-18s %-9s %s", o.Kind, o.Name, price, level)
}

func (g *Game) drawGameOver(screen *ebiten.Image, v run.View) {
	lines := []string{"BUSTED FOR GOOD"}
	if v.Report != nil {
		lines = append(lines, strings.Split(strings.TrimRight(v.Report.Format(), "\n"), "\n")...)
	}
	lines = append(lines, "", fmt.Sprintf("total earnings $%d", v.Day.TotalEarnings), "enter to start over  r copy report")
	w := 0
	for _, l := range lines {
		w = max(w, len(l))
	}
	x, y := g.panel(screen, w, len(lines), colAlert)
	for i, l := range lines {
		c := colText
		if i == 0 {
			c = colAlert
		}
		drawText(screen, l, x, y+float64(i*lineHeight), c)
	}
}
