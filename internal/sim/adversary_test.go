package sim

import (
	"errors"
	"math"
	"testing"

	"github.com/leofattal/smoking-crack/internal/maze"
)

func TestSpawn_ArchetypesAndDormancyStagger(t *testing.T) {
	h := newHarness(t, WithDayIndex(7), WithTickMs(100))
	d := h.Day
	if len(d.adversaries) != 3 {
		t.Fatalf("day 7 should field 3 adversaries, got %d", len(d.adversaries))
	}
	scale := 1 + 0.03*6
	want := []struct {
		arch    Archetype
		dormant float64
		speed   float64
	}{
		{ArchetypeBeat, 1500, 2.96875 * scale},
		{ArchetypePatrol, 4500, 2.96875 * 1.3 * scale},
		{ArchetypeUndercover, 7500, 2.96875 * scale},
	}
	for i, w := range want {
		a := d.adversaries[i]
		if a.Archetype != w.arch || a.State != StateDormant || a.DormantMs != w.dormant {
			t.Errorf("cop %d: got %s %s dormant=%.0f", i, a.Archetype, a.State, a.DormantMs)
		}
		if math.Abs(a.Speed-w.speed) > 1e-9 {
			t.Errorf("cop %d: speed want %.4f got %.4f", i, w.speed, a.Speed)
		}
	}

	// Dormancy only runs while selling.
	step(t, h, Input{})
	if d.adversaries[0].DormantMs != 1500 {
		t.Fatal("dormancy must not count down while collecting")
	}
	forceSelling(t, h)
	for i := 0; i < 16; i++ {
		step(t, h, Input{})
	}
	if d.adversaries[0].State == StateDormant {
		t.Fatal("first cop should be deployed after 1.5s")
	}
	if d.adversaries[1].State != StateDormant || d.adversaries[2].State != StateDormant {
		t.Fatal("later cops should still be waiting")
	}
	if h.CountEvents(EventAdversaryDeployed) != 1 {
		t.Fatalf("expected one deployment, got %d", h.CountEvents(EventAdversaryDeployed))
	}
}

func TestDecide_PursuesWithinDetection(t *testing.T) {
	h := newHarness(t, WithLayout(openGrid(t, 21, 21)))
	d := h.Day
	forceSelling(t, h)
	d.player.Place(maze.Point{X: 10, Y: 10})
	a := placeAdversary(h, 0, maze.Point{X: 10, Y: 12}, StatePatrolling)

	d.decide(a)
	if a.State != StatePursuing {
		t.Fatalf("expected pursuit, got %s", a.State)
	}
	if a.Target != (maze.Point{X: 10, Y: 11}) || a.Facing != DirUp {
		t.Fatalf("expected a step up to (10,11), got %v facing %s", a.Target, a.Facing)
	}
	if d.log.CountKind(EventPursuitAnnounced) != 1 {
		t.Fatal("pursuit should be announced")
	}

	// Same chase: no second announcement.
	a.Place(maze.Point{X: 10, Y: 12})
	d.decide(a)
	if d.log.CountKind(EventPursuitAnnounced) != 1 {
		t.Fatal("pursuit announced twice in one chase")
	}

	// Break off, then re-acquire.
	d.player.Place(maze.Point{X: 1, Y: 19})
	a.Place(maze.Point{X: 10, Y: 12})
	d.decide(a)
	if a.State != StatePatrolling || a.Announced {
		t.Fatal("out of range should drop back to patrol")
	}
	d.player.Place(maze.Point{X: 10, Y: 10})
	a.Place(maze.Point{X: 10, Y: 12})
	d.decide(a)
	if d.log.CountKind(EventPursuitAnnounced) != 2 {
		t.Fatal("a new chase should be announced again")
	}
}

func TestDecide_HeatWidensDetection(t *testing.T) {
	h := newHarness(t, WithLayout(openGrid(t, 21, 21)))
	d := h.Day
	forceSelling(t, h)
	d.player.Place(maze.Point{X: 4, Y: 10})
	a := placeAdversary(h, 0, maze.Point{X: 12, Y: 10}, StatePatrolling)

	d.decide(a)
	if a.State != StatePatrolling {
		t.Fatal("8 tiles is outside the cold radius")
	}
	d.heat = 100
	a.Place(maze.Point{X: 12, Y: 10})
	d.decide(a)
	if a.State != StatePursuing || a.Facing != DirLeft {
		t.Fatalf("full heat should reach 9 tiles, got %s facing %s", a.State, a.Facing)
	}
}

func TestDecide_StreetSmartsShrinksDetection(t *testing.T) {
	h := newHarness(t, WithLayout(openGrid(t, 21, 21)), WithUpgrades(Upgrades{StreetSmarts: 2}))
	d := h.Day
	forceSelling(t, h)
	a := d.adversaries[0]
	if a.DetectionRadius != 2 {
		t.Fatalf("5 - 2*1.5 = 2, got %.2f", a.DetectionRadius)
	}
	d.player.Place(maze.Point{X: 10, Y: 10})
	placeAdversary(h, 0, maze.Point{X: 10, Y: 13}, StatePatrolling)
	d.decide(a)
	if a.State != StatePatrolling {
		t.Fatal("3 tiles is outside a 2-tile radius")
	}
}

func TestDecide_ProtectedPlayerIsIgnored(t *testing.T) {
	h := newHarness(t, WithLayout(openGrid(t, 21, 21)))
	d := h.Day
	forceSelling(t, h)
	d.player.Place(maze.Point{X: 10, Y: 10})
	a := placeAdversary(h, 0, maze.Point{X: 10, Y: 11}, StatePursuing)
	a.Announced = true

	d.ledger.Activate(ModCopBlind, 8000)
	d.decide(a)
	if a.State != StatePatrolling || a.Announced {
		t.Fatalf("cop blind should force patrol, got %s", a.State)
	}
}

func TestDecide_UnreachableHoldsPosition(t *testing.T) {
	g := maze.MustGrid("island", []string{
		"#########",
		"#P.#..E.#",
		"#..#..H.#",
		"#########",
	})
	h := newHarness(t, WithLayout(g))
	d := h.Day
	forceSelling(t, h)
	a := placeAdversary(h, 0, maze.Point{X: 4, Y: 1}, StatePatrolling)
	d.decide(a)
	if a.State != StatePursuing || a.InTransit {
		t.Fatalf("expected a stalled pursuit, got %s in transit=%v", a.State, a.InTransit)
	}
	if d.log.CountKind(EventPathUnreachable) != 1 {
		t.Fatal("unreachable path should be reported")
	}
}

func TestPatrol_NoReverseUnlessDeadEnd(t *testing.T) {
	g := maze.MustGrid("dead-end", []string{
		"######",
		"#P..E#",
		"####H#",
		"######",
	})
	h := newHarness(t, WithLayout(g))
	d := h.Day
	forceSelling(t, h)

	a := placeAdversary(h, 0, maze.Point{X: 2, Y: 1}, StatePatrolling)
	a.Facing = DirRight
	d.patrol(a)
	if a.Target != (maze.Point{X: 3, Y: 1}) {
		t.Fatalf("corridor patrol must keep going right, got %v", a.Target)
	}

	a.Place(maze.Point{X: 1, Y: 1})
	a.Facing = DirLeft
	d.patrol(a)
	if a.Target != (maze.Point{X: 2, Y: 1}) || a.Facing != DirRight {
		t.Fatalf("dead end should reverse, got %v facing %s", a.Target, a.Facing)
	}
}

func TestContact_ConfrontationFreezesDay(t *testing.T) {
	h := newHarness(t, WithCash(200))
	d := h.Day
	forceSelling(t, h)
	d.player.Inventory = 3
	placeAdversary(h, 0, d.player.Current, StatePatrolling)

	res := step(t, h, Input{})
	if !hasEvent(res.Events, EventConfrontation) {
		t.Fatalf("expected confrontation, got %v", res.Events)
	}
	if d.Active() || !d.Pending() || d.Route() != RouteConfrontation {
		t.Fatal("day should be frozen awaiting resolution")
	}
	if d.player.Inventory != 0 {
		t.Fatal("inventory is lost on contact")
	}
	if _, err := h.Step(Input{}); !errors.Is(err, ErrDayInactive) {
		t.Fatalf("tick while pending: %v", err)
	}
	if _, err := d.Capture(); !errors.Is(err, ErrResolutionPending) {
		t.Fatalf("capture while pending: %v", err)
	}
	if err := h.NextDay(); !errors.Is(err, ErrResolutionPending) {
		t.Fatalf("next day while pending: %v", err)
	}

	events, err := d.ResolveConfrontation(true)
	if err != nil {
		t.Fatal(err)
	}
	if !hasEvent(events, EventConfrontationWon) || !d.Active() || d.Route() != RouteNone {
		t.Fatal("a won confrontation resumes the day")
	}
	a := d.adversaries[0]
	if a.State != StateDormant || a.Current != a.Home || a.DormantMs != 4000 {
		t.Fatalf("contacting cop should be sent home, got %s at %v", a.State, a.Current)
	}
	if h.Session.State().Cash != 200 || h.Session.State().Lives != 3 {
		t.Fatal("winning costs nothing")
	}
	step(t, h, Input{})
	if _, err := d.ResolveConfrontation(true); !errors.Is(err, ErrNoPendingConfrontation) {
		t.Fatalf("resolving twice: %v", err)
	}
}

func TestContact_LostConfrontationPenalizes(t *testing.T) {
	h := newHarness(t, WithCash(200))
	d := h.Day
	forceSelling(t, h)
	placeAdversary(h, 0, d.player.Current, StatePatrolling)
	step(t, h, Input{})

	events, err := d.ResolveConfrontation(false)
	if err != nil {
		t.Fatal(err)
	}
	st := h.Session.State()
	if !hasEvent(events, EventCapture) || d.Route() != RouteShop {
		t.Fatalf("lost confrontation should capture, got %v route=%s", events, d.Route())
	}
	if st.Cash != 150 || st.Lives != 2 || st.Day != 2 {
		t.Fatalf("penalty not applied: %+v", st)
	}
	if d.Report().Outcome != OutcomeConfrontationLost {
		t.Fatalf("report outcome: %s", d.Report().Outcome)
	}
	if err := h.NextDay(); err != nil {
		t.Fatal(err)
	}
}

func TestReport_ArrestAndLostDuelDiffer(t *testing.T) {
	b := DefaultBalance()
	b.ContactArrests = true
	h := newHarness(t, WithBalance(b))
	d := h.Day
	forceSelling(t, h)
	placeAdversary(h, 0, d.player.Current, StatePatrolling)
	step(t, h, Input{})
	if got := d.Report().Outcome; got != OutcomeBusted {
		t.Fatalf("a direct arrest is busted, got %s", got)
	}
}

func TestContact_ArrestsWhenConfigured(t *testing.T) {
	b := DefaultBalance()
	b.ContactArrests = true
	h := newHarness(t, WithBalance(b), WithLives(1))
	d := h.Day
	forceSelling(t, h)
	placeAdversary(h, 0, d.player.Current, StatePatrolling)
	res := step(t, h, Input{})
	if !hasEvent(res.Events, EventCapture) || !hasEvent(res.Events, EventGameOver) {
		t.Fatalf("expected arrest into game over, got %v", res.Events)
	}
	if d.Pending() || d.Route() != RouteGameOver {
		t.Fatal("arrest is terminal, not pending")
	}
}

func TestContact_GetawayOncePerDay(t *testing.T) {
	h := newHarness(t, WithUpgrades(Upgrades{GetawayCar: true}))
	d := h.Day
	forceSelling(t, h)
	d.powerUps = nil
	spawn := d.grid.PlayerSpawn()
	away := d.grid.PathTiles()[0]
	d.player.Place(away)
	placeAdversary(h, 0, away, StatePatrolling)

	res := step(t, h, Input{})
	if !hasEvent(res.Events, EventGetaway) {
		t.Fatalf("expected getaway, got %v", res.Events)
	}
	if d.player.Current != spawn || !d.Active() || !h.Session.State().GetawayUsedToday {
		t.Fatal("getaway should relocate to spawn and keep the day running")
	}

	placeAdversary(h, 0, spawn, StatePatrolling)
	res = step(t, h, Input{})
	if !hasEvent(res.Events, EventConfrontation) {
		t.Fatalf("second contact the same day should confront, got %v", res.Events)
	}

	if _, err := d.ResolveConfrontation(false); err != nil {
		t.Fatal(err)
	}
	if err := h.NextDay(); err != nil {
		t.Fatal(err)
	}
	if h.Session.State().GetawayUsedToday {
		t.Fatal("getaway should reset each day")
	}
}

func TestContact_KnockoutWhileHigh(t *testing.T) {
	h := newHarness(t, WithCash(200))
	d := h.Day
	forceSelling(t, h)
	d.player.High = true
	d.player.HighLeftMs = 5000
	d.player.Inventory = 4
	a := placeAdversary(h, 0, d.player.Current, StatePursuing)

	res := step(t, h, Input{})
	if !hasEvent(res.Events, EventKnockout) {
		t.Fatalf("expected knockout, got %v", res.Events)
	}
	if a.State != StateDormant || a.Current != a.Home || a.DormantMs != 4000 {
		t.Fatalf("knocked out cop should wait at home, got %s at %v (%.0f)", a.State, a.Current, a.DormantMs)
	}
	if !d.Active() || d.player.Inventory != 4 || h.Session.State().Cash != 200 {
		t.Fatal("knockout must not penalize")
	}
}

func TestSnapshot_UndercoverDisguise(t *testing.T) {
	h := newHarness(t, WithLayout(openGrid(t, 21, 21)), WithDayIndex(7))
	d := h.Day
	forceSelling(t, h)
	d.player.Place(maze.Point{X: 3, Y: 3})
	under := placeAdversary(h, 2, maze.Point{X: 15, Y: 15}, StatePatrolling)
	beat := placeAdversary(h, 0, maze.Point{X: 15, Y: 14}, StatePatrolling)

	if !d.disguised(under) || d.disguised(beat) {
		t.Fatal("only the undercover cop reads as a civilian at range")
	}
	under.Place(maze.Point{X: 5, Y: 4})
	if d.disguised(under) {
		t.Fatal("undercover is revealed up close")
	}
	under.Place(maze.Point{X: 15, Y: 15})
	under.State = StatePursuing
	if d.disguised(under) {
		t.Fatal("a pursuing undercover drops the act")
	}
	under.State = StatePatrolling
	h.Session.State().Upgrades.Lookout = true
	snap := h.Snapshot()
	if snap.Adversaries[2].Disguised {
		t.Fatal("the lookout spots undercover cops")
	}
	if !snap.Adversaries[2].Visible || snap.Adversaries[1].Visible {
		t.Fatal("only deployed cops are visible")
	}
}

func TestDisguise_RevealRadiusFromBalance(t *testing.T) {
	for _, tc := range []struct {
		radius    int
		disguised bool
	}{{3, true}, {10, false}} {
		b := DefaultBalance()
		b.RevealRadius = tc.radius
		h := newHarness(t, WithBalance(b), WithLayout(openGrid(t, 21, 21)), WithDayIndex(7))
		forceSelling(t, h)
		h.Day.player.Place(maze.Point{X: 3, Y: 3})
		under := placeAdversary(h, 2, maze.Point{X: 9, Y: 7}, StatePatrolling)
		if got := h.Day.disguised(under); got != tc.disguised {
			t.Fatalf("radius %d: disguised=%v", tc.radius, got)
		}
	}
}
