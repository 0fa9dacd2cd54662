package maze

import "fmt"

// Kind identifies what occupies a single grid cell.
type Kind uint8

const (
	KindWall Kind = iota
	KindPath
	KindCustomerSpot
	KindConsumable
	KindTunnel
	KindHouse     // adversary-only holding pen
	KindHouseExit // deploy point just outside the house
	KindPlayerSpawn
	kindCount
)

// Agent selects which walkability rules apply.
type Agent uint8

const (
	AgentPlayer Agent = iota
	AgentAdversary
)

// String returns the human-readable name of a tile kind.
func (k Kind) String() string {
	switch k {
	case KindWall:
		return "wall"
	case KindPath:
		return "path"
	case KindCustomerSpot:
		return "customer_spot"
	case KindConsumable:
		return "consumable"
	case KindTunnel:
		return "tunnel"
	case KindHouse:
		return "house"
	case KindHouseExit:
		return "house_exit"
	case KindPlayerSpawn:
		return "player_spawn"
	default:
		return fmt.Sprintf("kind(%d)", uint8(k))
	}
}

// Rune returns the layout character for a tile kind.
func (k Kind) Rune() rune {
	switch k {
	case KindWall:
		return '#'
	case KindPath:
		return '.'
	case KindCustomerSpot:
		return 'C'
	case KindConsumable:
		return 'B'
	case KindTunnel:
		return 'T'
	case KindHouse:
		return 'H'
	case KindHouseExit:
		return 'E'
	case KindPlayerSpawn:
		return 'P'
	default:
		return '?'
	}
}

// kindFromRune parses one layout character.
func kindFromRune(r rune) (Kind, bool) {
	for k := Kind(0); k < kindCount; k++ {
		if k.Rune() == r {
			return k, true
		}
	}
	return KindWall, false
}

// walkableFor reports whether an agent may stand on a tile of kind k.
func walkableFor(k Kind, a Agent) bool {
	switch k {
	case KindWall:
		return false
	case KindHouse:
		return a == AgentAdversary
	default:
		return true
	}
}

// Point is a discrete grid coordinate (column, row).
type Point struct {
	X int `json:"x" yaml:"x"`
	Y int `json:"y" yaml:"y"`
}

// Add returns p offset by (dx, dy).
func (p Point) Add(dx, dy int) Point {
	return Point{X: p.X + dx, Y: p.Y + dy}
}

// Manhattan returns the tile distance between p and o.
func (p Point) Manhattan(o Point) int {
	return abs(p.X-o.X) + abs(p.Y-o.Y)
}

func (p Point) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
