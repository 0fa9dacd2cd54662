package sim

import (
	"testing"

	"github.com/leofattal/smoking-crack/internal/maze"
)

// maxRand always returns the top of the range: shuffles keep their
// order and a sale roll is always the maximum.
type maxRand struct{}

func (maxRand) Intn(n int) int   { return n - 1 }
func (maxRand) Float64() float64 { return 0.999 }

// openGrid returns a w×h walled field with the spawn in the top-left, the
// house exit in the top-right and three house tiles under it.
func openGrid(t *testing.T, w, h int) *maze.Grid {
	t.Helper()
	rows := make([][]byte, h)
	for y := range rows {
		rows[y] = make([]byte, w)
		for x := range rows[y] {
			if x == 0 || y == 0 || x == w-1 || y == h-1 {
				rows[y][x] = '#'
			} else {
				rows[y][x] = '.'
			}
		}
	}
	rows[1][1] = 'P'
	rows[1][w-2] = 'E'
	rows[2][w-2] = 'H'
	rows[2][w-3] = 'H'
	rows[2][w-4] = 'H'
	out := make([]string, h)
	for i, r := range rows {
		out[i] = string(r)
	}
	g, err := maze.NewGrid("open", out)
	if err != nil {
		t.Fatalf("open grid: %v", err)
	}
	return g
}

// corridorRows is a straight run east of the spawn, looping back under it.
var corridorRows = []string{
	"##############",
	"#P...........#",
	"#.##########.#",
	"#.....E......#",
	"######H#######",
	"##############",
}

func corridorGrid(t *testing.T) *maze.Grid {
	t.Helper()
	g, err := maze.NewGrid("corridor", corridorRows)
	if err != nil {
		t.Fatalf("corridor grid: %v", err)
	}
	return g
}

// quietBalance has no adversaries and no power-ups so economy tests stay
// isolated.
func quietBalance() Balance {
	b := DefaultBalance()
	b.MaxAdversaries = 0
	b.PowerUpsMin = 0
	b.PowerUpsMax = 0
	return b
}

func newHarness(t *testing.T, opts ...HarnessOption) *Harness {
	t.Helper()
	h, err := NewHarness(opts...)
	if err != nil {
		t.Fatalf("NewHarness: %v", err)
	}
	return h
}

// forceSelling jumps the current day straight into the sell phase.
func forceSelling(t *testing.T, h *Harness) {
	t.Helper()
	if h.Day.phase == PhaseSelling {
		return
	}
	h.Day.startSelling()
	if h.Day.phase != PhaseSelling {
		t.Fatal("expected sell phase")
	}
}

// placeAdversary puts adversary i on tile p, deployed and at rest.
func placeAdversary(h *Harness, i int, p maze.Point, state AdversaryState) *Adversary {
	a := h.Day.adversaries[i]
	a.Place(p)
	a.State = state
	a.DormantMs = 0
	return a
}

func step(t *testing.T, h *Harness, in Input) TickResult {
	t.Helper()
	res, err := h.Step(in)
	if err != nil {
		t.Fatalf("tick %d: %v", h.Day.TickCount(), err)
	}
	return res
}

func hasEvent(events []Event, kind EventKind) bool {
	for _, e := range events {
		if e.Kind == kind {
			return true
		}
	}
	return false
}
