package sim

import "fmt"

// --- Archetype ---

// Archetype is an adversary's behavioral category.
type Archetype int

const (
	ArchetypeBeat Archetype = iota
	ArchetypePatrol
	ArchetypeUndercover
	archetypeCount
)

// ArchetypeProfile holds the behavior knobs for an archetype.
type ArchetypeProfile struct {
	SpeedMul  float64 // multiplier on base adversary speed
	Disguised bool    // reads as a civilian while patrolling at range
}

var archetypeProfiles = map[Archetype]ArchetypeProfile{
	ArchetypeBeat:       {SpeedMul: 1.0},
	ArchetypePatrol:     {SpeedMul: 1.3},
	ArchetypeUndercover: {SpeedMul: 1.0, Disguised: true},
}

// ProfileOf returns the behavior knobs for archetype a.
func ProfileOf(a Archetype) ArchetypeProfile {
	return archetypeProfiles[a]
}

func (a Archetype) String() string {
	switch a {
	case ArchetypeBeat:
		return "beat"
	case ArchetypePatrol:
		return "patrol"
	case ArchetypeUndercover:
		return "undercover"
	default:
		return "unknown"
	}
}

func (a Archetype) MarshalText() ([]byte, error) { return []byte(a.String()), nil }

// --- Adversary state ---

// AdversaryState is the adversary behavior state.
type AdversaryState int

const (
	StateDormant AdversaryState = iota
	StatePatrolling
	StatePursuing
)

func (s AdversaryState) String() string {
	switch s {
	case StateDormant:
		return "dormant"
	case StatePatrolling:
		return "patrolling"
	case StatePursuing:
		return "pursuing"
	default:
		return "unknown"
	}
}

func (s AdversaryState) MarshalText() ([]byte, error) { return []byte(s.String()), nil }

// --- Phase ---

// Phase is one half of a day.
type Phase int

const (
	PhaseCollecting Phase = iota
	PhaseSelling
)

func (p Phase) String() string {
	switch p {
	case PhaseCollecting:
		return "collecting"
	case PhaseSelling:
		return "selling"
	default:
		return "unknown"
	}
}

func (p Phase) MarshalText() ([]byte, error) { return []byte(p.String()), nil }

// --- Route ---

// Route tells the presentation layer where control goes once a day stops.
type Route int

const (
	RouteNone          Route = iota // day still running
	RouteShop                       // day over, lives remain
	RouteConfrontation              // awaiting a standoff outcome
	RouteGameOver                   // lives exhausted
)

func (r Route) String() string {
	switch r {
	case RouteNone:
		return "none"
	case RouteShop:
		return "shop"
	case RouteConfrontation:
		return "confrontation"
	case RouteGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

func (r Route) MarshalText() ([]byte, error) { return []byte(r.String()), nil }

// --- Items ---

// ItemCategory is the product type of a collectible.
type ItemCategory int

const (
	ItemCrack ItemCategory = iota
	ItemWeed
	ItemCoke
	ItemPills
	ItemLean
	ItemShrooms
	itemCategoryCount
)

func (c ItemCategory) String() string {
	switch c {
	case ItemCrack:
		return "crack"
	case ItemWeed:
		return "weed"
	case ItemCoke:
		return "coke"
	case ItemPills:
		return "pills"
	case ItemLean:
		return "lean"
	case ItemShrooms:
		return "shrooms"
	default:
		return "unknown"
	}
}

func (c ItemCategory) MarshalText() ([]byte, error) { return []byte(c.String()), nil }

// weight returns the configured odds for category c.
func (w ItemWeights) weight(c ItemCategory) int {
	switch c {
	case ItemCrack:
		return w.Crack
	case ItemWeed:
		return w.Weed
	case ItemCoke:
		return w.Coke
	case ItemPills:
		return w.Pills
	case ItemLean:
		return w.Lean
	case ItemShrooms:
		return w.Shrooms
	default:
		return 0
	}
}

// roll picks a weighted category. Zero total weight yields ItemCrack.
func (w ItemWeights) roll(rng Rand) ItemCategory {
	total := 0
	for c := ItemCategory(0); c < itemCategoryCount; c++ {
		total += w.weight(c)
	}
	if total <= 0 {
		return ItemCrack
	}
	r := rng.Intn(total)
	for c := ItemCategory(0); c < itemCategoryCount; c++ {
		if r < w.weight(c) {
			return c
		}
		r -= w.weight(c)
	}
	return ItemCrack
}

// --- Modifiers ---

// ModifierKind identifies a time-limited power-up effect.
type ModifierKind int

const (
	ModSpeedBoost ModifierKind = iota
	ModCopBlind
	ModDoubleCash
	ModMagnet
	modifierKindCount
)

func (m ModifierKind) String() string {
	switch m {
	case ModSpeedBoost:
		return "speed_boost"
	case ModCopBlind:
		return "cop_blind"
	case ModDoubleCash:
		return "double_cash"
	case ModMagnet:
		return "magnet"
	default:
		return fmt.Sprintf("modifier(%d)", int(m))
	}
}

func (m ModifierKind) MarshalText() ([]byte, error) { return []byte(m.String()), nil }

// Duration returns the lifetime granted by a pickup of kind m.
func (d PowerUpDurations) Duration(m ModifierKind) float64 {
	switch m {
	case ModSpeedBoost:
		return d.SpeedBoostMs
	case ModCopBlind:
		return d.CopBlindMs
	case ModDoubleCash:
		return d.DoubleCashMs
	case ModMagnet:
		return d.MagnetMs
	default:
		return 0
	}
}
