package sim

import (
	"github.com/leofattal/smoking-crack/internal/maze"
)

// updateAdversaries runs dormancy, movement and the AI cadence. Adversaries
// only act while selling.
func (d *Day) updateAdversaries(dt float64) {
	if d.phase != PhaseSelling {
		return
	}
	for _, a := range d.adversaries {
		if a.State == StateDormant {
			a.DormantMs -= dt
			if a.DormantMs <= 0 {
				d.deploy(a)
			}
			continue
		}
		Advance(&a.Mover, d.grid, dt)
		a.AITimerMs -= dt
		if a.AITimerMs <= 0 && !a.InTransit {
			a.AITimerMs = d.bal.AIIntervalMs
			d.decide(a)
		}
	}
}

func (d *Day) deploy(a *Adversary) {
	a.Place(d.grid.AdversaryExit())
	a.State = StatePatrolling
	a.Facing = DirNone
	a.DormantMs = 0
	a.AITimerMs = 0
	e := newEvent(EventAdversaryDeployed, d.tick, a.Current)
	e.Adversary = a.ID
	d.emit(e)
}

// sendHome returns a to its house tile, dormant for delayMs.
func (d *Day) sendHome(a *Adversary, delayMs float64) {
	a.Place(a.Home)
	a.State = StateDormant
	a.Facing = DirNone
	a.DormantMs = delayMs
	a.Announced = false
}

// decide is one AI evaluation for a resting adversary.
func (d *Day) decide(a *Adversary) {
	if d.protected() {
		a.State = StatePatrolling
		a.Announced = false
		d.patrol(a)
		return
	}
	p := d.player.Current
	dist := float64(a.Current.Manhattan(p))
	if dist > d.bal.EffectiveDetection(a.DetectionRadius, d.heat) {
		a.State = StatePatrolling
		a.Announced = false
		d.patrol(a)
		return
	}
	a.State = StatePursuing
	if !a.Announced {
		a.Announced = true
		e := newEvent(EventPursuitAnnounced, d.tick, a.Current)
		e.Adversary = a.ID
		d.emit(e)
	}
	dir, ok := NextStep(d.grid, a.Current, p, maze.AgentAdversary)
	if !ok {
		e := newEvent(EventPathUnreachable, d.tick, a.Current)
		e.Adversary = a.ID
		d.emit(e)
		return
	}
	TryCommit(&a.Mover, d.grid, maze.AgentAdversary, dir)
}

// patrol commits a random non-reversing step, reversing only at a dead
// end. With no walkable neighbor the adversary stands still.
func (d *Day) patrol(a *Adversary) {
	back := a.Facing.Opposite()
	var options []Direction
	for _, dir := range searchOrder {
		if dir != back && d.grid.WalkableFor(dir.Step(a.Current), maze.AgentAdversary) {
			options = append(options, dir)
		}
	}
	if len(options) == 0 && back != DirNone && d.grid.WalkableFor(back.Step(a.Current), maze.AgentAdversary) {
		options = append(options, back)
	}
	if len(options) == 0 {
		return
	}
	TryCommit(&a.Mover, d.grid, maze.AgentAdversary, pick(d.rng, options))
}

// protected reports whether contact with an adversary is harmless.
func (d *Day) protected() bool {
	return d.player.High || d.ledger.Active(ModCopBlind)
}

// disguised reports whether a reads as a civilian to the player.
func (d *Day) disguised(a *Adversary) bool {
	if !ProfileOf(a.Archetype).Disguised || a.State != StatePatrolling {
		return false
	}
	if d.session.State().Upgrades.Lookout {
		return false
	}
	return a.Current.Manhattan(d.player.Current) > d.bal.RevealRadius
}
