package game

import (
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/leofattal/smoking-crack/internal/maze"
	"github.com/leofattal/smoking-crack/internal/shop"
	"github.com/leofattal/smoking-crack/internal/sim"
)

var itemColors = map[sim.ItemCategory]color.RGBA{
	sim.ItemCrack:   {R: 240, G: 240, B: 240, A: 255},
	sim.ItemWeed:    {R: 60, G: 200, B: 70, A: 255},
	sim.ItemCoke:    {R: 120, G: 220, B: 240, A: 255},
	sim.ItemPills:   {R: 240, G: 90, B: 200, A: 255},
	sim.ItemLean:    {R: 150, G: 70, B: 210, A: 255},
	sim.ItemShrooms: {R: 240, G: 140, B: 40, A: 255},
}

var powerUpColors = map[sim.ModifierKind]color.RGBA{
	sim.ModSpeedBoost: {R: 80, G: 220, B: 255, A: 255},
	sim.ModCopBlind:   {R: 190, G: 190, B: 200, A: 255},
	sim.ModDoubleCash: {R: 90, G: 230, B: 90, A: 255},
	sim.ModMagnet:     {R: 230, G: 70, B: 70, A: 255},
}

var powerUpGlyphs = map[sim.ModifierKind]string{
	sim.ModSpeedBoost: ">",
	sim.ModCopBlind:   "o",
	sim.ModDoubleCash: "$",
	sim.ModMagnet:     "U",
}

// tileCenter maps a fractional tile position to screen pixels.
func (g *Game) tileCenter(x, y float64) (float32, float32) {
	return float32(g.offX) + float32(x*tileSize) + tileSize/2,
		float32(g.offY) + float32(y*tileSize) + tileSize/2
}

func (g *Game) drawMaze(screen *ebiten.Image, _ sim.Snapshot) {
	grid := g.run.Day().Grid()
	ox, oy := float32(g.offX), float32(g.offY)
	vector.FillRect(screen, ox, oy, float32(g.mazeWidth), float32(g.mazeHeight), colFloor, false)

	for y := 0; y < grid.Rows(); y++ {
		for x := 0; x < grid.Cols(); x++ {
			p := maze.Point{X: x, Y: y}
			px, py := ox+float32(x*tileSize), oy+float32(y*tileSize)
			switch grid.Kind(p) {
			case maze.KindWall:
				vector.FillRect(screen, px, py, tileSize, tileSize, colWall, false)
				g.drawWallEdges(screen, grid, p, px, py)
			case maze.KindHouse:
				vector.FillRect(screen, px, py, tileSize, tileSize, colHouse, false)
			case maze.KindHouseExit:
				vector.FillRect(screen, px, py+tileSize/2-2, tileSize, 4, color.RGBA{R: 220, G: 120, B: 160, A: 255}, false)
			case maze.KindTunnel:
				vector.FillRect(screen, px, py, tileSize, tileSize, colTunnel, false)
			case maze.KindCustomerSpot:
				vector.StrokeRect(screen, px+4, py+4, tileSize-8, tileSize-8, 1, color.RGBA{R: 40, G: 70, B: 40, A: 255}, false)
			}
		}
	}
}

// drawWallEdges outlines wall sides that face walkable tiles.
func (g *Game) drawWallEdges(screen *ebiten.Image, grid *maze.Grid, p maze.Point, px, py float32) {
	open := func(dx, dy int) bool {
		q := p.Add(dx, dy)
		return grid.InBounds(q) && grid.Kind(q) != maze.KindWall
	}
	const w = 2
	if open(0, -1) {
		vector.StrokeLine(screen, px, py, px+tileSize, py, w, colWallEdge, false)
	}
	if open(0, 1) {
		vector.StrokeLine(screen, px, py+tileSize, px+tileSize, py+tileSize, w, colWallEdge, false)
	}
	if open(-1, 0) {
		vector.StrokeLine(screen, px, py, px, py+tileSize, w, colWallEdge, false)
	}
	if open(1, 0) {
		vector.StrokeLine(screen, px+tileSize, py, px+tileSize, py+tileSize, w, colWallEdge, false)
	}
}

func (g *Game) drawEntities(screen *ebiten.Image, s sim.Snapshot) {
	for _, it := range s.Items {
		x, y := g.tileCenter(it.X, it.Y)
		vector.FillCircle(screen, x, y, 4, itemColors[it.Category], true)
	}
	for _, p := range s.Consumables {
		x, y := g.tileCenter(float64(p.X), float64(p.Y))
		vector.FillRect(screen, x-5, y-5, 10, 10, color.RGBA{R: 245, G: 245, B: 230, A: 255}, false)
		vector.StrokeRect(screen, x-5, y-5, 10, 10, 1, colGold, false)
	}
	for _, pu := range s.PowerUps {
		x, y := g.tileCenter(float64(pu.Tile.X), float64(pu.Tile.Y))
		c := powerUpColors[pu.Kind]
		vector.StrokeCircle(screen, x, y, 10, 2, c, true)
		drawText(screen, powerUpGlyphs[pu.Kind], float64(x)-charWidth/2, float64(y)-lineHeight/2, c)
	}
	for _, p := range s.Customers {
		x, y := g.tileCenter(float64(p.X), float64(p.Y))
		vector.FillCircle(screen, x, y, 9, color.RGBA{R: 50, G: 160, B: 60, A: 255}, true)
		drawText(screen, "$", float64(x)-charWidth/2, float64(y)-lineHeight/2, colText)
	}
	for _, a := range s.Adversaries {
		if a.Visible {
			g.drawAdversary(screen, a, s.Tick)
		}
	}
	g.drawPlayer(screen, s.Player)
}

func (g *Game) drawAdversary(screen *ebiten.Image, a sim.AdversaryView, tick int) {
	x, y := g.tileCenter(a.X, a.Y)
	const r = tileSize/2 - 3

	if a.Disguised {
		vector.FillCircle(screen, x, y, r, color.RGBA{R: 140, G: 130, B: 120, A: 255}, true)
		return
	}

	body := color.RGBA{R: 40, G: 70, B: 200, A: 255}
	if a.Archetype == sim.ArchetypePatrol {
		body = color.RGBA{R: 30, G: 40, B: 120, A: 255}
	}
	vector.FillCircle(screen, x, y, r, body, true)
	vector.FillRect(screen, x-r+2, y-r+1, 2*r-4, 4, color.RGBA{R: 20, G: 20, B: 40, A: 255}, false)

	// Pursuing cops flash their lights.
	if a.State == sim.StatePursuing {
		light := colAlert
		if (tick/8)%2 == 1 {
			light = color.RGBA{R: 60, G: 110, B: 255, A: 255}
		}
		vector.StrokeCircle(screen, x, y, r+3, 2, light, true)
	}
	g.drawFacing(screen, x, y, r, a.Facing, color.RGBA{R: 230, G: 230, B: 240, A: 255})
}

func (g *Game) drawPlayer(screen *ebiten.Image, p sim.PlayerView) {
	x, y := g.tileCenter(p.X, p.Y)
	const r = tileSize/2 - 2

	skin, ok := shop.SkinByID(g.run.State().Skin)
	if !ok {
		skin, _ = shop.SkinByID(shop.DefaultSkin)
	}
	c := hexColor(skin.Color)
	if skin.Glow {
		glow := c
		glow.A = 70
		vector.FillCircle(screen, x, y, r+5, glow, true)
	}
	if p.High {
		pulse := float32(2 + 2*math.Sin(p.HighLeftMs/120))
		vector.StrokeCircle(screen, x, y, r+3+pulse, 2, color.RGBA{R: 200, G: 60, B: 230, A: 200}, true)
	}
	vector.FillCircle(screen, x, y, r, c, true)
	g.drawFacing(screen, x, y, r, p.Facing, colBackground)
}

// drawFacing marks the direction an agent is moving.
func (g *Game) drawFacing(screen *ebiten.Image, x, y, r float32, d sim.Direction, c color.Color) {
	dx, dy := d.Delta()
	if dx == 0 && dy == 0 {
		return
	}
	fx, fy := x+float32(dx)*r*0.55, y+float32(dy)*r*0.55
	vector.FillCircle(screen, fx, fy, 3, c, true)
}

func hexColor(v uint32) color.RGBA {
	return color.RGBA{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: 255}
}
