package sim

import "github.com/leofattal/smoking-crack/internal/maze"

// Direction is one of the four grid headings, or DirNone.
type Direction uint8

const (
	DirNone Direction = iota
	DirUp
	DirDown
	DirLeft
	DirRight
)

// searchOrder is the fixed neighbor order used by path search and patrol
// choice. Changing it changes every seeded replay.
var searchOrder = [4]Direction{DirUp, DirDown, DirLeft, DirRight}

// Delta returns the (dx, dy) offset for one step in d.
func (d Direction) Delta() (int, int) {
	switch d {
	case DirUp:
		return 0, -1
	case DirDown:
		return 0, 1
	case DirLeft:
		return -1, 0
	case DirRight:
		return 1, 0
	default:
		return 0, 0
	}
}

// Opposite returns the reverse heading.
func (d Direction) Opposite() Direction {
	switch d {
	case DirUp:
		return DirDown
	case DirDown:
		return DirUp
	case DirLeft:
		return DirRight
	case DirRight:
		return DirLeft
	default:
		return DirNone
	}
}

// Step returns the tile one step from p in direction d.
func (d Direction) Step(p maze.Point) maze.Point {
	dx, dy := d.Delta()
	return p.Add(dx, dy)
}

func (d Direction) String() string {
	switch d {
	case DirUp:
		return "up"
	case DirDown:
		return "down"
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	default:
		return "none"
	}
}

// MarshalText renders the direction name for JSON snapshots.
func (d Direction) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

// ParseDirection maps a name back to a Direction. Unknown names map to
// DirNone.
func ParseDirection(s string) Direction {
	for _, d := range searchOrder {
		if d.String() == s {
			return d
		}
	}
	return DirNone
}
