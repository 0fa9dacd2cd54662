// Package run strings days into a playable run. It begins each day from
// the maze catalog, hosts the quick-draw duel while a confrontation is
// frozen and takes shop purchases between days. Frontends own one Run and
// drive it from a single goroutine.
package run

import (
	"errors"
	"fmt"

	"github.com/leofattal/smoking-crack/internal/config"
	"github.com/leofattal/smoking-crack/internal/maze"
	"github.com/leofattal/smoking-crack/internal/shop"
	"github.com/leofattal/smoking-crack/internal/sim"
	"github.com/leofattal/smoking-crack/internal/standoff"
)

// ErrWrongScreen is returned for actions the current screen does not take.
var ErrWrongScreen = errors.New("run: action not available on this screen")

// ResultHoldMs is how long a finished duel stays on screen before its
// outcome is applied.
const ResultHoldMs = 1800

// Screen is what the run is waiting on.
type Screen int

const (
	ScreenPlaying Screen = iota
	ScreenStandoff
	ScreenShop
	ScreenGameOver
)

func (s Screen) String() string {
	switch s {
	case ScreenPlaying:
		return "playing"
	case ScreenStandoff:
		return "standoff"
	case ScreenShop:
		return "shop"
	case ScreenGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

func (s Screen) MarshalText() ([]byte, error) { return []byte(s.String()), nil }

// Run is one playthrough. It is not safe for concurrent use.
type Run struct {
	cfg     config.Config
	catalog *maze.Catalog
	verbose bool

	session *sim.Session
	day     *sim.Day
	duel    *standoff.Standoff
	holdMs  float64
	screen  Screen
	reports []sim.DayReport
}

// New starts a run on day 1.
func New(cfg config.Config) (*Run, error) {
	cat, err := cfg.Catalog()
	if err != nil {
		return nil, fmt.Errorf("run: %w", err)
	}
	r := &Run{cfg: cfg, catalog: cat}
	if err := r.Restart(); err != nil {
		return nil, err
	}
	return r, nil
}

// SetVerbose makes day logs keep per-tick traces.
func (r *Run) SetVerbose(v bool) { r.verbose = v }

// Restart throws the run away and begins a fresh one.
func (r *Run) Restart() error {
	r.session = r.cfg.NewSession()
	r.reports = nil
	return r.begin()
}

func (r *Run) begin() error {
	r.session.SetLog(sim.NewEventLog(r.verbose))
	d, err := r.session.BeginDay(r.catalog.ForDay(r.session.State().Day))
	if err != nil {
		return err
	}
	r.day = d
	r.duel = nil
	r.screen = ScreenPlaying
	return nil
}

// Update advances the current screen by dtMs, clamped to
// Balance.MaxTickMs. In the standoff the duel clock runs; on the shop and
// game-over screens nothing moves.
func (r *Run) Update(dtMs float64, in sim.Input) ([]sim.Event, error) {
	if dtMs < 0 {
		dtMs = 0
	}
	if dtMs > r.cfg.Balance.MaxTickMs {
		dtMs = r.cfg.Balance.MaxTickMs
	}
	switch r.screen {
	case ScreenPlaying:
		res, err := r.day.Tick(dtMs, in)
		if err != nil {
			return nil, err
		}
		r.route()
		return res.Events, nil
	case ScreenStandoff:
		if !r.duel.Done() {
			r.duel.Advance(dtMs)
			return nil, nil
		}
		r.holdMs += dtMs
		if r.holdMs < ResultHoldMs {
			return nil, nil
		}
		events, err := r.duel.Resolve(r.day)
		if err != nil {
			return nil, err
		}
		r.duel = nil
		r.route()
		return events, nil
	default:
		return nil, nil
	}
}

// route moves to the screen the day asks for.
func (r *Run) route() {
	switch r.day.Route() {
	case sim.RouteNone:
		r.screen = ScreenPlaying
	case sim.RouteConfrontation:
		r.duel = standoff.ForState(r.session.State(), r.session.Rand())
		r.holdMs = 0
		r.screen = ScreenStandoff
	case sim.RouteShop:
		r.reports = append(r.reports, r.day.Report())
		r.screen = ScreenShop
	case sim.RouteGameOver:
		r.reports = append(r.reports, r.day.Report())
		r.screen = ScreenGameOver
	}
}

// Fire pulls the trigger in the standoff.
func (r *Run) Fire() error {
	if r.screen != ScreenStandoff {
		return fmt.Errorf("fire on %s: %w", r.screen, ErrWrongScreen)
	}
	r.duel.Fire()
	return nil
}

// Buy makes a purchase on the shop screen.
func (r *Run) Buy(kind shop.Kind, id string) error {
	if r.screen != ScreenShop {
		return fmt.Errorf("buy on %s: %w", r.screen, ErrWrongScreen)
	}
	return shop.Buy(r.session.State(), kind, id)
}

// Continue leaves the shop for the next day, or starts over after a game
// over.
func (r *Run) Continue() error {
	switch r.screen {
	case ScreenShop:
		return r.begin()
	case ScreenGameOver:
		return r.Restart()
	default:
		return fmt.Errorf("continue on %s: %w", r.screen, ErrWrongScreen)
	}
}

func (r *Run) Screen() Screen               { return r.screen }
func (r *Run) Day() *sim.Day                { return r.day }
func (r *Run) Session() *sim.Session        { return r.session }
func (r *Run) State() *sim.State            { return r.session.State() }
func (r *Run) Standoff() *standoff.Standoff { return r.duel }
func (r *Run) Config() config.Config        { return r.cfg }
func (r *Run) Offers() []shop.Offer         { return shop.Offers(r.session.State()) }
func (r *Run) Reports() []sim.DayReport     { return append([]sim.DayReport(nil), r.reports...) }
func (r *Run) Log() *sim.EventLog           { return r.session.Log() }

// LastReport returns the report of the most recently finished day.
func (r *Run) LastReport() (sim.DayReport, bool) {
	if len(r.reports) == 0 {
		return sim.DayReport{}, false
	}
	return r.reports[len(r.reports)-1], true
}
