package sim

import (
	"fmt"
	"math"

	"github.com/leofattal/smoking-crack/internal/maze"
)

// arrivalEpsilon absorbs float rounding so that an entity whose summed
// travel covers the tile always snaps on that tick.
const arrivalEpsilon = 1e-9

// Mover is the grid-bound movement state shared by the player and
// adversaries. Current is authoritative for game logic and only changes on
// arrival; X, Y is the interpolated position in tile units, where a tile
// centre sits on integer coordinates.
type Mover struct {
	Current   maze.Point
	Target    maze.Point
	X, Y      float64
	Facing    Direction
	Speed     float64 // tiles per second
	InTransit bool
}

// Place puts m at rest on tile p.
func (m *Mover) Place(p maze.Point) {
	m.Current = p
	m.Target = p
	m.X = float64(p.X)
	m.Y = float64(p.Y)
	m.InTransit = false
}

// TryCommit targets the tile one step in dir if agent a may walk there.
// It is a no-op returning false when the mover is already in transit, dir
// is DirNone, or the tile is blocked.
func TryCommit(m *Mover, g *maze.Grid, a maze.Agent, dir Direction) bool {
	if m.InTransit || dir == DirNone {
		return false
	}
	next := dir.Step(m.Current)
	if !g.WalkableFor(next, a) {
		return false
	}
	m.Target = next
	m.Facing = dir
	m.InTransit = true
	return true
}

// Advance moves m toward its target by speed*elapsed. On arrival it snaps
// exactly onto the target tile and, if that tile is a tunnel end, relocates
// to the partner tile. It reports whether the mover arrived and whether it
// teleported.
func Advance(m *Mover, g *maze.Grid, elapsedMs float64) (arrived, teleported bool) {
	if !m.InTransit {
		return false, false
	}
	tx, ty := float64(m.Target.X), float64(m.Target.Y)
	dx, dy := tx-m.X, ty-m.Y
	dist := math.Hypot(dx, dy)
	step := m.Speed * elapsedMs / 1000
	if step+arrivalEpsilon < dist {
		m.X += dx / dist * step
		m.Y += dy / dist * step
		return false, false
	}
	m.Place(m.Target)
	if partner, ok := g.TunnelPartner(m.Current); ok {
		m.Place(partner)
		return true, true
	}
	return true, false
}

// checkMover validates the transit invariant.
func checkMover(who string, m *Mover) error {
	if m.InTransit == (m.Current == m.Target) {
		return fmt.Errorf("%w: %s in_transit=%v current=%v target=%v",
			ErrInvariant, who, m.InTransit, m.Current, m.Target)
	}
	return nil
}
