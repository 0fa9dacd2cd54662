package maze

import (
	"errors"
	"fmt"
)

// ErrMalformedLayout is returned when a layout cannot form a playable grid.
var ErrMalformedLayout = errors.New("maze: malformed layout")

// Grid is an immutable tile grid. It is built once per layout and shared
// read-only by every day that uses it.
type Grid struct {
	name  string
	cols  int
	rows  int
	tiles []Kind // row-major: index = row*cols + col

	playerSpawn Point
	houses      []Point
	exit        Point
	tunnels     []Point
	consumables []Point
	customers   []Point
	paths       []Point
}

// NewGrid parses row strings into a grid. Every row must have the same
// width and the layout must contain exactly one player spawn, one house
// exit, at least one house tile and either zero or two tunnels.
func NewGrid(name string, rows []string) (*Grid, error) {
	if len(rows) == 0 {
		return nil, fmt.Errorf("%w: %q has no rows", ErrMalformedLayout, name)
	}
	cols := len([]rune(rows[0]))
	g := &Grid{
		name:  name,
		cols:  cols,
		rows:  len(rows),
		tiles: make([]Kind, cols*len(rows)),
	}
	spawns, exits := 0, 0
	for y, line := range rows {
		runes := []rune(line)
		if len(runes) != cols {
			return nil, fmt.Errorf("%w: %q row %d has width %d, want %d", ErrMalformedLayout, name, y, len(runes), cols)
		}
		for x, r := range runes {
			k, ok := kindFromRune(r)
			if !ok {
				return nil, fmt.Errorf("%w: %q has unknown rune %q at (%d,%d)", ErrMalformedLayout, name, r, x, y)
			}
			g.tiles[y*cols+x] = k
			p := Point{X: x, Y: y}
			switch k {
			case KindPlayerSpawn:
				g.playerSpawn = p
				spawns++
			case KindHouse:
				g.houses = append(g.houses, p)
			case KindHouseExit:
				g.exit = p
				exits++
			case KindTunnel:
				g.tunnels = append(g.tunnels, p)
			case KindConsumable:
				g.consumables = append(g.consumables, p)
			case KindCustomerSpot:
				g.customers = append(g.customers, p)
			case KindPath:
				g.paths = append(g.paths, p)
			}
		}
	}
	switch {
	case spawns != 1:
		return nil, fmt.Errorf("%w: %q has %d player spawns", ErrMalformedLayout, name, spawns)
	case exits != 1:
		return nil, fmt.Errorf("%w: %q has %d house exits", ErrMalformedLayout, name, exits)
	case len(g.houses) == 0:
		return nil, fmt.Errorf("%w: %q has no house tiles", ErrMalformedLayout, name)
	case len(g.tunnels) != 0 && len(g.tunnels) != 2:
		return nil, fmt.Errorf("%w: %q has %d tunnels", ErrMalformedLayout, name, len(g.tunnels))
	}
	return g, nil
}

// MustGrid is NewGrid that panics on error. Intended for tests and
// embedded layouts.
func MustGrid(name string, rows []string) *Grid {
	g, err := NewGrid(name, rows)
	if err != nil {
		panic(err)
	}
	return g
}

func (g *Grid) Name() string { return g.name }
func (g *Grid) Cols() int    { return g.cols }
func (g *Grid) Rows() int    { return g.rows }

// InBounds returns true if p lies inside the grid.
func (g *Grid) InBounds(p Point) bool {
	return p.X >= 0 && p.X < g.cols && p.Y >= 0 && p.Y < g.rows
}

// Kind returns the tile kind at p. Out-of-bounds reads as wall.
func (g *Grid) Kind(p Point) Kind {
	if !g.InBounds(p) {
		return KindWall
	}
	return g.tiles[p.Y*g.cols+p.X]
}

// Walkable reports whether the player may occupy p.
func (g *Grid) Walkable(p Point) bool {
	return g.WalkableFor(p, AgentPlayer)
}

// WalkableFor reports whether agent a may occupy p.
func (g *Grid) WalkableFor(p Point, a Agent) bool {
	if !g.InBounds(p) {
		return false
	}
	return walkableFor(g.tiles[p.Y*g.cols+p.X], a)
}

func (g *Grid) PlayerSpawn() Point { return g.playerSpawn }
func (g *Grid) AdversaryExit() Point { return g.exit }

// AdversarySpawns returns the house tiles in row-major order.
func (g *Grid) AdversarySpawns() []Point { return clonePoints(g.houses) }

// Tunnels returns the teleport pair, or nil when the layout has none.
func (g *Grid) Tunnels() []Point { return clonePoints(g.tunnels) }

// TunnelPartner returns the other end of the tunnel at p.
func (g *Grid) TunnelPartner(p Point) (Point, bool) {
	if len(g.tunnels) != 2 {
		return Point{}, false
	}
	switch p {
	case g.tunnels[0]:
		return g.tunnels[1], true
	case g.tunnels[1]:
		return g.tunnels[0], true
	}
	return Point{}, false
}

// ConsumableTiles returns fixed consumable pickup positions.
func (g *Grid) ConsumableTiles() []Point { return clonePoints(g.consumables) }

// CustomerSpots returns the tiles marked as customer corners.
func (g *Grid) CustomerSpots() []Point { return clonePoints(g.customers) }

// PathTiles returns plain walkable tiles with no special role. Items are
// scattered over this set.
func (g *Grid) PathTiles() []Point { return clonePoints(g.paths) }

// WalkableTiles returns every tile agent a may occupy, in row-major order.
func (g *Grid) WalkableTiles(a Agent) []Point {
	var out []Point
	for i, k := range g.tiles {
		if walkableFor(k, a) {
			out = append(out, Point{X: i % g.cols, Y: i / g.cols})
		}
	}
	return out
}

// Layout returns the grid rendered back into row strings.
func (g *Grid) Layout() []string {
	out := make([]string, g.rows)
	for y := 0; y < g.rows; y++ {
		line := make([]rune, g.cols)
		for x := 0; x < g.cols; x++ {
			line[x] = g.tiles[y*g.cols+x].Rune()
		}
		out[y] = string(line)
	}
	return out
}

func clonePoints(ps []Point) []Point {
	if len(ps) == 0 {
		return nil
	}
	out := make([]Point, len(ps))
	copy(out, ps)
	return out
}
