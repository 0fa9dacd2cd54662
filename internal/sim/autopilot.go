package sim

import "github.com/leofattal/smoking-crack/internal/maze"

// Pilot chooses the input for the next tick.
type Pilot interface {
	Decide(d *Day) Input
}

// PilotFunc adapts a function to Pilot.
type PilotFunc func(d *Day) Input

func (f PilotFunc) Decide(d *Day) Input { return f(d) }

// Autopilot is a deterministic scripted player. It gathers items while
// collecting, then walks to customers while it holds stock and to
// consumables once it is dry. It smokes when a pursuer closes in.
type Autopilot struct {
	PanicRadius int // smoke when a pursuer is this close; 0 means 3
}

// Decide implements Pilot.
func (ap Autopilot) Decide(d *Day) Input {
	p := &d.player
	var in Input

	radius := ap.PanicRadius
	if radius <= 0 {
		radius = 3
	}
	if d.phase == PhaseSelling && p.Stash > 0 && !p.High {
		for _, a := range d.adversaries {
			if a.State == StatePursuing && a.Current.Manhattan(p.Current) <= radius {
				in.UseConsumable = true
				break
			}
		}
	}

	goals := ap.goals(d)
	if len(goals) == 0 {
		return in
	}
	// Plan from where the player will stand next so the queued turn
	// applies on arrival.
	from := p.Current
	if p.InTransit {
		from = p.Target
	}
	if dir, _, ok := NearestStep(d.grid, from, goals, maze.AgentPlayer); ok {
		in.Direction = dir
	}
	return in
}

func (ap Autopilot) goals(d *Day) []maze.Point {
	var goals []maze.Point
	switch d.phase {
	case PhaseCollecting:
		for _, it := range d.items {
			if !it.Collected && !it.Forfeited {
				goals = append(goals, it.Tile)
			}
		}
	case PhaseSelling:
		if d.player.Inventory > 0 {
			for _, c := range d.customers {
				if c.Active {
					goals = append(goals, c.Tile)
				}
			}
		}
		if len(goals) == 0 {
			for _, pk := range d.pickups {
				if !pk.Collected {
					goals = append(goals, pk.Tile)
				}
			}
		}
	}
	if len(goals) == 0 {
		for _, pu := range d.powerUps {
			if !pu.Collected {
				goals = append(goals, pu.Tile)
			}
		}
	}
	return goals
}
