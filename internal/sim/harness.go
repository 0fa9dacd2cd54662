package sim

import (
	"errors"

	"github.com/leofattal/smoking-crack/internal/maze"
)

// Harness drives a session headlessly with a fixed tick length. It is
// used by tests and by the headless report.
type Harness struct {
	Session *Session
	Day     *Day
	Log     *EventLog
	Events  []Event // every event since construction
	TickMs  float64

	catalog *maze.Catalog
	grid    *maze.Grid // overrides the catalog when set
	pilot   Pilot
	state   State
	bal     Balance
	rng     Rand
	verbose bool
}

// harnessOptionKind controls the pass in which an option is applied.
type harnessOptionKind int

const (
	harnessOptInfra harnessOptionKind = iota // balance, seed, layout, verbose
	harnessOptState                          // session state; sees the final balance
)

// HarnessOption is a builder applied during NewHarness.
type HarnessOption struct {
	kind harnessOptionKind
	fn   func(*Harness)
}

// WithSeed seeds the session's random source.
func WithSeed(seed int64) HarnessOption {
	return HarnessOption{harnessOptInfra, func(h *Harness) {
		h.rng = NewRand(seed)
	}}
}

// WithRand injects a random source, typically a scripted one in tests.
func WithRand(r Rand) HarnessOption {
	return HarnessOption{harnessOptInfra, func(h *Harness) {
		h.rng = r
	}}
}

// WithVerbose enables per-tick trace logging.
func WithVerbose(v bool) HarnessOption {
	return HarnessOption{harnessOptInfra, func(h *Harness) {
		h.verbose = v
	}}
}

// WithLayout plays every day on g.
func WithLayout(g *maze.Grid) HarnessOption {
	return HarnessOption{harnessOptInfra, func(h *Harness) {
		h.grid = g
	}}
}

// WithCatalog rotates days through c.
func WithCatalog(c *maze.Catalog) HarnessOption {
	return HarnessOption{harnessOptInfra, func(h *Harness) {
		h.catalog = c
	}}
}

// WithBalance replaces the tuning.
func WithBalance(b Balance) HarnessOption {
	return HarnessOption{harnessOptInfra, func(h *Harness) {
		h.bal = b
	}}
}

// WithTickMs sets the elapsed time fed to each tick.
func WithTickMs(ms float64) HarnessOption {
	return HarnessOption{harnessOptInfra, func(h *Harness) {
		h.TickMs = ms
	}}
}

// WithAutopilot drives the player with Autopilot.
func WithAutopilot() HarnessOption {
	return HarnessOption{harnessOptInfra, func(h *Harness) {
		h.pilot = Autopilot{}
	}}
}

// WithPilot drives the player with p.
func WithPilot(p Pilot) HarnessOption {
	return HarnessOption{harnessOptInfra, func(h *Harness) {
		h.pilot = p
	}}
}

// WithUpgrades sets the owned upgrades.
func WithUpgrades(u Upgrades) HarnessOption {
	return HarnessOption{harnessOptState, func(h *Harness) {
		h.state.Upgrades = u
	}}
}

// WithDayIndex starts on day n.
func WithDayIndex(n int) HarnessOption {
	return HarnessOption{harnessOptState, func(h *Harness) {
		h.state.Day = n
	}}
}

// WithCash sets starting cash.
func WithCash(n int) HarnessOption {
	return HarnessOption{harnessOptState, func(h *Harness) {
		h.state.Cash = n
	}}
}

// WithLives sets starting lives.
func WithLives(n int) HarnessOption {
	return HarnessOption{harnessOptState, func(h *Harness) {
		h.state.Lives = n
	}}
}

// WithAdvertising sets the advertising tier.
func WithAdvertising(tier int) HarnessOption {
	return HarnessOption{harnessOptState, func(h *Harness) {
		h.state.AdvertisingTier = tier
	}}
}

// NewHarness builds a session from opts in two passes (infrastructure,
// then state) and begins the first day.
func NewHarness(opts ...HarnessOption) (*Harness, error) {
	h := &Harness{
		TickMs:  1000.0 / 60.0,
		catalog: maze.DefaultCatalog(),
		bal:     DefaultBalance(),
	}
	for _, o := range opts {
		if o.kind == harnessOptInfra {
			o.fn(h)
		}
	}
	if h.rng == nil {
		h.rng = NewRand(1)
	}
	h.state = NewState(h.bal)
	for _, o := range opts {
		if o.kind == harnessOptState {
			o.fn(h)
		}
	}
	h.Log = NewEventLog(h.verbose)
	h.Session = NewSession(h.state, h.bal, h.rng)
	h.Session.SetLog(h.Log)
	if err := h.NextDay(); err != nil {
		return nil, err
	}
	return h, nil
}

// NextDay begins the session's current day.
func (h *Harness) NextDay() error {
	g := h.grid
	if g == nil {
		g = h.catalog.ForDay(h.Session.State().Day)
	}
	d, err := h.Session.BeginDay(g)
	if err != nil {
		return err
	}
	h.Day = d
	return nil
}

// Step runs one tick with explicit input.
func (h *Harness) Step(in Input) (TickResult, error) {
	res, err := h.Day.Tick(h.TickMs, in)
	if err != nil {
		return res, err
	}
	h.Events = append(h.Events, res.Events...)
	return res, nil
}

// RunTicks advances up to n ticks, stopping early when the day ends.
func (h *Harness) RunTicks(n int) error {
	for i := 0; i < n && h.Day.Active(); i++ {
		if _, err := h.Step(h.input()); err != nil {
			return err
		}
	}
	return nil
}

// RunUntil advances until pred holds, the day ends, or maxTicks pass. It
// returns the day tick at which pred held, or -1.
func (h *Harness) RunUntil(pred func(*Harness) bool, maxTicks int) (int, error) {
	for i := 0; i < maxTicks && h.Day.Active(); i++ {
		if _, err := h.Step(h.input()); err != nil {
			return -1, err
		}
		if pred(h) {
			return h.Day.TickCount(), nil
		}
	}
	return -1, nil
}

// RunDay plays until the day stops and returns its report.
func (h *Harness) RunDay() (DayReport, error) {
	limit := int((h.bal.CollectPhaseMs+h.bal.SellPhaseMs)/h.TickMs) + 10
	if err := h.RunTicks(limit); err != nil {
		return h.Day.Report(), err
	}
	if h.Day.Active() {
		return h.Day.Report(), errors.New("sim: day did not finish within its clock")
	}
	return h.Day.Report(), nil
}

// Snapshot returns the current day snapshot.
func (h *Harness) Snapshot() Snapshot {
	return h.Day.Snapshot()
}

// CountEvents returns how many events of kind were seen.
func (h *Harness) CountEvents(kind EventKind) int {
	n := 0
	for _, e := range h.Events {
		if e.Kind == kind {
			n++
		}
	}
	return n
}

func (h *Harness) input() Input {
	if h.pilot == nil {
		return Input{}
	}
	return h.pilot.Decide(h.Day)
}
