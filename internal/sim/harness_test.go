package sim

import (
	"errors"
	"strings"
	"testing"
)

func TestAutopilot_PlaysADay(t *testing.T) {
	h := newHarness(t, WithSeed(3), WithAutopilot())
	rep, err := h.RunDay()
	if err != nil {
		t.Fatal(err)
	}
	t.Log(rep.Format())
	t.Log(h.Log.Summary())
	if rep.Outcome == OutcomeInProgress {
		t.Fatal("day should have ended")
	}
	if rep.ItemsCollected == 0 {
		t.Fatal("autopilot should collect items")
	}
	if rep.ItemsCollected > rep.ItemsScattered {
		t.Fatalf("collected %d of %d", rep.ItemsCollected, rep.ItemsScattered)
	}
}

func TestAutopilot_Deterministic(t *testing.T) {
	run := func() (DayReport, int) {
		h := newHarness(t, WithSeed(42), WithAutopilot(), WithDayIndex(4))
		rep, err := h.RunDay()
		if err != nil {
			t.Fatal(err)
		}
		return rep, len(h.Events)
	}
	a, na := run()
	b, nb := run()
	if a != b || na != nb {
		t.Fatalf("same seed diverged:\n%s\n%s", a.Format(), b.Format())
	}
}

func TestAutopilot_MultiDayRun(t *testing.T) {
	b := DefaultBalance()
	b.HeatPerSale = 30
	h := newHarness(t, WithSeed(9), WithAutopilot(), WithBalance(b), WithTickMs(50))

	played := 0
	for played < 4 && !h.Session.GameOver() {
		for {
			if _, err := h.RunUntil(func(h *Harness) bool {
				heat := h.Day.Heat()
				if heat < 0 || heat > b.HeatMax {
					t.Fatalf("heat %.2f out of range", heat)
				}
				return false
			}, 1<<20); err != nil {
				t.Fatal(err)
			}
			if !h.Day.Pending() {
				break
			}
			// Alternate outcomes so both branches are covered.
			if _, err := h.Day.ResolveConfrontation(played%2 == 0); err != nil {
				t.Fatal(err)
			}
			if !h.Day.Active() {
				break
			}
		}
		t.Log(h.Day.Report().Format())
		played++
		if err := h.NextDay(); err != nil {
			if errors.Is(err, ErrGameOver) {
				break
			}
			t.Fatal(err)
		}
	}
	if st := h.Session.State(); st.Day != played+1 {
		t.Fatalf("played %d days but day counter is %d", played, st.Day)
	}
}

func TestEventLog_RecordsActors(t *testing.T) {
	h := newHarness(t)
	d := h.Day
	forceSelling(t, h)
	placeAdversary(h, 0, d.player.Current, StatePatrolling)
	step(t, h, Input{})

	if !h.Log.HasEntry("phase", "phase_changed", "selling") {
		t.Fatal("phase change should be logged")
	}
	e, ok := h.Log.LastOf(EventConfrontation)
	if !ok || e.Actor != "C0" || e.Category != "terminal" {
		t.Fatalf("unexpected confrontation entry: %+v", e)
	}
	if !strings.Contains(h.Log.Format(), "pursuit_announced") {
		t.Fatal("formatted log should include the pursuit")
	}
	if got := h.Log.FilterTickRange(1, 1); len(got) == 0 {
		t.Fatal("expected entries on tick 1")
	}
}

func TestEventLog_VerboseTraces(t *testing.T) {
	h := newHarness(t, WithVerbose(true), WithBalance(quietBalance()))
	if err := h.RunTicks(5); err != nil {
		t.Fatal(err)
	}
	if n := len(h.Log.Filter("trace", "position")); n != 5 {
		t.Fatalf("expected 5 traces, got %d", n)
	}
	quiet := newHarness(t, WithBalance(quietBalance()))
	if err := quiet.RunTicks(5); err != nil {
		t.Fatal(err)
	}
	if len(quiet.Log.Filter("trace", "")) != 0 {
		t.Fatal("non-verbose logs keep no traces")
	}
}

func TestPilotFunc_QueuesTurns(t *testing.T) {
	h := newHarness(t, WithLayout(corridorGrid(t)), WithBalance(quietBalance()),
		WithPilot(PilotFunc(func(d *Day) Input { return Input{Direction: DirDown} })))
	if _, err := h.RunUntil(func(h *Harness) bool {
		return h.Day.Player().Current.Y == 3
	}, 200); err != nil {
		t.Fatal(err)
	}
	if p := h.Day.Player(); p.Current.X != 1 || p.Current.Y != 3 {
		t.Fatalf("expected to end at (1,3), got %v", p.Current)
	}
}
