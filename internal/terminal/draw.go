package terminal

import (
	"fmt"
	"strings"

	"github.com/gdamore/tcell/v2"

	"github.com/leofattal/smoking-crack/internal/maze"
	"github.com/leofattal/smoking-crack/internal/run"
	"github.com/leofattal/smoking-crack/internal/shop"
	"github.com/leofattal/smoking-crack/internal/sim"
	"github.com/leofattal/smoking-crack/internal/standoff"
)

// Each tile is two cells wide so the maze reads square.
const (
	cellW   = 2
	originX = 1
	originY = 1
)

var (
	styleBase  = tcell.StyleDefault
	styleWall  = tcell.StyleDefault.Background(tcell.ColorNavy)
	styleHouse = tcell.StyleDefault.Foreground(tcell.ColorGray)
	styleCop   = tcell.StyleDefault.Foreground(tcell.ColorRed).Bold(true)
	styleCiv   = tcell.StyleDefault.Foreground(tcell.ColorSilver)
	styleCust  = tcell.StyleDefault.Foreground(tcell.ColorGreen).Bold(true)
	styleRock  = tcell.StyleDefault.Foreground(tcell.ColorWhite)
	styleTitle = tcell.StyleDefault.Foreground(tcell.ColorYellow).Bold(true)
	styleDim   = tcell.StyleDefault.Foreground(tcell.ColorGray)
	styleWarn  = tcell.StyleDefault.Foreground(tcell.ColorRed)
	styleSel   = tcell.StyleDefault.Reverse(true)
)

var itemColors = map[sim.ItemCategory]tcell.Color{
	sim.ItemCrack:   tcell.ColorWhite,
	sim.ItemWeed:    tcell.ColorGreen,
	sim.ItemCoke:    tcell.ColorAqua,
	sim.ItemPills:   tcell.ColorFuchsia,
	sim.ItemLean:    tcell.ColorPurple,
	sim.ItemShrooms: tcell.ColorOrange,
}

var powerUpRunes = map[sim.ModifierKind]rune{
	sim.ModSpeedBoost: '»',
	sim.ModCopBlind:   '◌',
	sim.ModDoubleCash: '$',
	sim.ModMagnet:     'U',
}

// Draw renders the current screen.
func (f *Frontend) Draw() {
	f.screen.Clear()
	v := f.run.View()
	f.drawMaze(v.Day)
	hudX := originX + f.run.Day().Grid().Cols()*cellW + 2
	f.drawHUD(hudX, originY, v)

	switch v.Screen {
	case run.ScreenStandoff:
		f.drawStandoff(v.Standoff)
	case run.ScreenShop:
		f.drawShop(v)
	case run.ScreenGameOver:
		f.drawGameOver(v)
	}
	f.screen.Show()
}

func (f *Frontend) put(x, y int, r rune, st tcell.Style) {
	f.screen.SetContent(x, y, r, nil, st)
}

func (f *Frontend) text(x, y int, st tcell.Style, s string) {
	for _, r := range s {
		f.put(x, y, r, st)
		x++
	}
}

// tile draws r in the left cell of tile p.
func (f *Frontend) tile(p maze.Point, r rune, st tcell.Style) {
	x, y := originX+p.X*cellW, originY+p.Y
	f.put(x, y, r, st)
	f.put(x+1, y, ' ', st)
}

func (f *Frontend) drawMaze(s sim.Snapshot) {
	g := f.run.Day().Grid()
	for y := 0; y < g.Rows(); y++ {
		for x := 0; x < g.Cols(); x++ {
			p := maze.Point{X: x, Y: y}
			switch g.Kind(p) {
			case maze.KindWall:
				f.tile(p, ' ', styleWall)
			case maze.KindHouse:
				f.tile(p, '-', styleHouse)
			case maze.KindTunnel:
				f.tile(p, '=', styleDim)
			default:
				f.tile(p, ' ', styleBase)
			}
		}
	}
	for _, it := range s.Items {
		f.tile(it.Tile, '·', styleBase.Foreground(itemColors[it.Category]))
	}
	for _, p := range s.Consumables {
		f.tile(p, '*', styleRock)
	}
	for _, pu := range s.PowerUps {
		f.tile(pu.Tile, powerUpRunes[pu.Kind], styleTitle)
	}
	for _, p := range s.Customers {
		f.tile(p, '$', styleCust)
	}
	for _, a := range s.Adversaries {
		if !a.Visible {
			continue
		}
		switch {
		case a.Disguised:
			f.tile(a.Tile, 'c', styleCiv)
		case a.State == sim.StatePursuing:
			f.tile(a.Tile, 'C', styleCop.Blink(true))
		default:
			f.tile(a.Tile, 'C', styleCop)
		}
	}
	f.tile(s.Player.Tile, '@', f.playerStyle(s.Player))
}

func (f *Frontend) playerStyle(p sim.PlayerView) tcell.Style {
	skin, ok := shop.SkinByID(f.run.State().Skin)
	if !ok {
		skin, _ = shop.SkinByID(shop.DefaultSkin)
	}
	st := styleBase.Foreground(tcell.NewHexColor(int32(skin.Color))).Bold(skin.Glow)
	if p.High {
		st = st.Background(tcell.ColorPurple)
	}
	return st
}

func (f *Frontend) drawHUD(x, y int, v run.View) {
	s := v.Day
	f.text(x, y, styleTitle, fmt.Sprintf("DAY %d  %s", s.Day, strings.ToUpper(s.Phase.String())))
	f.text(x, y+1, styleBase, fmt.Sprintf("time  %4.1fs", s.PhaseLeftMs/1000))
	f.text(x, y+2, styleBase, fmt.Sprintf("cash  $%d", s.Cash))
	f.text(x, y+3, styleBase, fmt.Sprintf("lives %s", strings.Repeat("♥", s.Lives)))
	f.text(x, y+4, styleBase, fmt.Sprintf("stock %d  rocks %d", s.Player.Inventory, s.Player.Stash))
	f.text(x, y+5, styleBase, "heat  "+bar(s.Heat, s.HeatMax, 20))
	row := y + 6
	if s.Player.High {
		f.text(x, row, styleBase.Foreground(tcell.ColorFuchsia), fmt.Sprintf("HIGH %.1fs", s.Player.HighLeftMs/1000))
		row++
	}
	for _, m := range s.Modifiers {
		f.text(x, row, styleTitle, fmt.Sprintf("%s %.1fs", m.Kind, m.RemainingMs/1000))
		row++
	}
	row++
	for _, line := range f.feed {
		f.text(x, row, styleDim, line)
		row++
	}
	if f.status != "" {
		f.text(x, row+1, styleWarn, f.status)
	}
	if f.sound.Muted() {
		f.text(x, row+2, styleDim, "[muted]")
	}
}

// bar renders v out of limit as a fixed-width gauge.
func bar(v, limit float64, width int) string {
	if limit <= 0 {
		return strings.Repeat("░", width)
	}
	n := int(v / limit * float64(width))
	if n > width {
		n = width
	}
	if n < 0 {
		n = 0
	}
	return strings.Repeat("█", n) + strings.Repeat("░", width-n)
}

// box clears a framed area and returns its inner origin.
func (f *Frontend) box(w, h int) (int, int) {
	sw, sh := f.screen.Size()
	x0, y0 := (sw-w)/2, (sh-h)/2
	if x0 < 0 {
		x0 = 0
	}
	if y0 < 0 {
		y0 = 0
	}
	for y := y0; y < y0+h; y++ {
		for x := x0; x < x0+w; x++ {
			r := ' '
			switch {
			case y == y0 || y == y0+h-1:
				r = '─'
			case x == x0 || x == x0+w-1:
				r = '│'
			}
			f.put(x, y, r, styleBase)
		}
	}
	return x0 + 2, y0 + 1
}

func (f *Frontend) drawStandoff(s *run.StandoffView) {
	if s == nil {
		return
	}
	x, y := f.box(40, 8)
	f.text(x, y, styleTitle, "STANDOFF")
	f.text(x, y+1, styleDim, "you: "+s.Gun)
	switch s.Stage {
	case standoff.StageIntro:
		f.text(x, y+3, styleBase, "A cop blocks the way...")
	case standoff.StageStaredown:
		if s.Countdown > 0 {
			f.text(x, y+3, styleTitle, fmt.Sprintf("%d", s.Countdown))
		} else {
			f.text(x, y+3, styleBase, "steady...")
		}
	case standoff.StageDraw:
		f.text(x, y+3, styleWarn.Bold(true), fmt.Sprintf("DRAW! (%.0fms)", s.DrawLeftMs))
	case standoff.StageResult:
		f.text(x, y+3, styleTitle, strings.ToUpper(s.Outcome.String()))
		f.text(x, y+4, styleBase, s.Line)
	}
	f.text(x, y+5, styleDim, "space/enter to fire")
}

func (f *Frontend) drawShop(v run.View) {
	x, y := f.box(64, len(v.Offers)+6)
	f.text(x, y, styleTitle, fmt.Sprintf("CORNER STORE   cash $%d", v.Day.Cash))
	for i, o := range v.Offers {
		st := styleBase
		if o.Owned {
			st = styleDim
		}
		if i == f.shopCursor {
			st = styleSel
		}
		price := fmt.Sprintf("$%d", o.Cost)
		switch {
		case o.Equipped:
			price = "equipped"
		case o.Owned:
			price = "owned"
		}
		f.text(x, y+2+i, st, fmt.Sprintf("%-7s %-18s %-9s %s", o.Kind, o.Name, price, levelTag(o)))
	}
	if o, ok := f.selected(); ok {
		f.text(x, y+3+len(v.Offers), styleDim, o.Detail)
	}
	f.text(x, y+4+len(v.Offers), styleDim, "↑/↓ select  enter buy  c next day")
}

func levelTag(o shop.Offer) string {
	if o.MaxLevel <= 1 {
		return ""
	}
	return fmt.Sprintf("%d/%d", o.Level, o.MaxLevel)
}

func (f *Frontend) drawGameOver(v run.View) {
	lines := []string{"BUSTED FOR GOOD"}
	if v.Report != nil {
		lines = append(lines, strings.Split(strings.TrimRight(v.Report.Format(), "\n"), "\n")...)
	}
	lines = append(lines, "", "enter to start over")
	w := 0
	for _, l := range lines {
		w = max(w, len([]rune(l)))
	}
	x, y := f.box(w+4, len(lines)+2)
	for i, l := range lines {
		st := styleBase
		if i == 0 {
			st = styleWarn.Bold(true)
		}
		f.text(x, y+i, st, l)
	}
}
