package sim

import "github.com/leofattal/smoking-crack/internal/maze"

// Player is the controlled agent.
type Player struct {
	Mover
	Queued     Direction // most recently pressed heading
	Inventory  int       // collected units not yet sold
	Stash      int       // consumables available to smoke
	High       bool
	HighLeftMs float64
	BaseSpeed  float64 // post-upgrade, pre-modifier
}

// Adversary is one cop.
type Adversary struct {
	Mover
	ID              int
	Archetype       Archetype
	State           AdversaryState
	DetectionRadius float64 // post-upgrade, before the heat bonus
	Home            maze.Point
	DormantMs       float64 // countdown until (re)deployment
	AITimerMs       float64 // countdown until the next decision
	Announced       bool    // pursuit already announced this chase
}

// Item is a collectible scattered for the collection phase. X, Y is the
// drawn position, which drifts under magnetism while Tile stays fixed.
type Item struct {
	Tile      maze.Point
	X, Y      float64
	Category  ItemCategory
	Collected bool
	Forfeited bool // left behind when selling started
}

// Customer is a one-shot buyer created at the start of the sell phase.
type Customer struct {
	Tile   maze.Point
	Active bool
}

// Pickup is a consumable lying at a fixed maze spot. Pickups only become
// collectable once selling starts.
type Pickup struct {
	Tile      maze.Point
	Collected bool
}

// PowerUp is a modifier pickup on the board.
type PowerUp struct {
	Tile      maze.Point
	Kind      ModifierKind
	Collected bool
}
