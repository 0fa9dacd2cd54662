package sim

import (
	"fmt"

	"github.com/leofattal/smoking-crack/internal/maze"
)

// EventKind identifies a discrete thing that happened during a tick.
type EventKind int

const (
	EventItemCollected EventKind = iota
	EventConsumableCollected
	EventSaleCompleted
	EventModifierActivated
	EventModifierRefreshed
	EventModifierExpired
	EventHighStarted
	EventHighEnded
	EventPhaseChanged
	EventTeleport
	EventAdversaryDeployed
	EventPursuitAnnounced
	EventPathUnreachable
	EventKnockout
	EventConfrontation
	EventConfrontationWon
	EventGetaway
	EventCapture
	EventDayComplete
	EventGameOver
)

func (k EventKind) String() string {
	switch k {
	case EventItemCollected:
		return "item_collected"
	case EventConsumableCollected:
		return "consumable_collected"
	case EventSaleCompleted:
		return "sale_completed"
	case EventModifierActivated:
		return "modifier_activated"
	case EventModifierRefreshed:
		return "modifier_refreshed"
	case EventModifierExpired:
		return "modifier_expired"
	case EventHighStarted:
		return "high_started"
	case EventHighEnded:
		return "high_ended"
	case EventPhaseChanged:
		return "phase_changed"
	case EventTeleport:
		return "teleport"
	case EventAdversaryDeployed:
		return "adversary_deployed"
	case EventPursuitAnnounced:
		return "pursuit_announced"
	case EventPathUnreachable:
		return "path_unreachable"
	case EventKnockout:
		return "knockout"
	case EventConfrontation:
		return "confrontation"
	case EventConfrontationWon:
		return "confrontation_won"
	case EventGetaway:
		return "getaway"
	case EventCapture:
		return "capture"
	case EventDayComplete:
		return "day_complete"
	case EventGameOver:
		return "game_over"
	default:
		return fmt.Sprintf("event(%d)", int(k))
	}
}

func (k EventKind) MarshalText() ([]byte, error) { return []byte(k.String()), nil }

// Category groups event kinds for log filtering.
func (k EventKind) Category() string {
	switch k {
	case EventItemCollected, EventConsumableCollected, EventSaleCompleted:
		return "economy"
	case EventModifierActivated, EventModifierRefreshed, EventModifierExpired,
		EventHighStarted, EventHighEnded:
		return "modifier"
	case EventPhaseChanged, EventDayComplete:
		return "phase"
	case EventTeleport:
		return "move"
	case EventAdversaryDeployed, EventPursuitAnnounced, EventPathUnreachable, EventKnockout:
		return "adversary"
	default:
		return "terminal"
	}
}

// Event is one discrete outcome handed to presentation collaborators.
// Adversary is the adversary index, or -1 when no adversary is involved.
type Event struct {
	Kind      EventKind    `json:"kind"`
	Tick      int          `json:"tick"`
	Tile      maze.Point   `json:"tile"`
	Adversary int          `json:"adversary"`
	Units     int          `json:"units,omitempty"`
	Cash      int          `json:"cash,omitempty"`
	Item      ItemCategory `json:"item"`
	Modifier  ModifierKind `json:"modifier"`
	Phase     Phase        `json:"phase"`
}

// Describe renders a short human-readable summary.
func (e Event) Describe() string {
	switch e.Kind {
	case EventItemCollected:
		return fmt.Sprintf("picked up %s at %v", e.Item, e.Tile)
	case EventConsumableCollected:
		return fmt.Sprintf("stash +1 at %v", e.Tile)
	case EventSaleCompleted:
		return fmt.Sprintf("sold %d for $%d", e.Units, e.Cash)
	case EventModifierActivated, EventModifierRefreshed, EventModifierExpired:
		return e.Modifier.String()
	case EventPhaseChanged:
		return "phase: " + e.Phase.String()
	case EventTeleport:
		return fmt.Sprintf("tunnel to %v", e.Tile)
	case EventAdversaryDeployed, EventPursuitAnnounced, EventKnockout, EventPathUnreachable:
		return fmt.Sprintf("cop %d at %v", e.Adversary, e.Tile)
	case EventConfrontation, EventCapture:
		return fmt.Sprintf("cop %d caught player at %v", e.Adversary, e.Tile)
	case EventGetaway:
		return fmt.Sprintf("escaped cop %d", e.Adversary)
	default:
		return e.Kind.String()
	}
}

func newEvent(kind EventKind, tick int, tile maze.Point) Event {
	return Event{Kind: kind, Tick: tick, Tile: tile, Adversary: -1}
}
