// Package standoff resolves a frozen confrontation as a quick-draw duel.
// It is driven by the same millisecond ticks as the simulation and hands
// its outcome back through sim.Day.ResolveConfrontation.
package standoff

import (
	"errors"
	"fmt"

	"github.com/leofattal/smoking-crack/internal/sim"
)

// ErrNotFinished is returned when resolving a duel that has no outcome yet.
var ErrNotFinished = errors.New("standoff: duel not finished")

// Timing of the countdown before the draw call.
const (
	IntroMs     = 1500
	CountMs     = 800
	CountFrom   = 3
	DrawDelayMs = CountMs*CountFrom + 200
)

// Stage is the duel's current step.
type Stage int

const (
	StageIntro Stage = iota
	StageStaredown
	StageDraw
	StageResult
)

func (s Stage) String() string {
	switch s {
	case StageIntro:
		return "intro"
	case StageStaredown:
		return "staredown"
	case StageDraw:
		return "draw"
	case StageResult:
		return "result"
	default:
		return "unknown"
	}
}

func (s Stage) MarshalText() ([]byte, error) { return []byte(s.String()), nil }

// Outcome is how the duel ended.
type Outcome int

const (
	OutcomePending Outcome = iota
	OutcomeWon
	OutcomeLost
)

func (o Outcome) String() string {
	switch o {
	case OutcomePending:
		return "pending"
	case OutcomeWon:
		return "won"
	case OutcomeLost:
		return "lost"
	default:
		return "unknown"
	}
}

func (o Outcome) MarshalText() ([]byte, error) { return []byte(o.String()), nil }

// Reason records why the duel ended the way it did.
type Reason int

const (
	ReasonNone Reason = iota
	ReasonHit
	ReasonMissed
	ReasonTooSlow
)

func (r Reason) String() string {
	switch r {
	case ReasonNone:
		return "none"
	case ReasonHit:
		return "hit"
	case ReasonMissed:
		return "missed"
	case ReasonTooSlow:
		return "too_slow"
	default:
		return "unknown"
	}
}

var (
	winLines = []string{
		"Not today, officer!",
		"Wrong corner, wrong night!",
		"Tell the precinct I said hi!",
		"Too slow!",
	}
	loseLines = []string{
		"Drop it!",
		"Hands where I can see them!",
		"End of the line!",
		"Should've stayed home!",
	}
)

// Standoff is one duel. It is not safe for concurrent use.
type Standoff struct {
	gun     Gun
	rng     sim.Rand
	stage   Stage
	stageMs float64 // time spent in the current stage
	outcome Outcome
	reason  Reason
	line    string
}

// New starts a duel with gun g. rng decides hits and taunts.
func New(g Gun, rng sim.Rand) *Standoff {
	if rng == nil {
		rng = sim.NewRand(1)
	}
	return &Standoff{gun: g, rng: rng}
}

// ForState starts a duel with the gun equipped in st.
func ForState(st *sim.State, rng sim.Rand) *Standoff {
	return New(GunOrDefault(st.Gun), rng)
}

// Advance moves the duel's clock forward.
func (s *Standoff) Advance(dtMs float64) {
	if s.stage == StageResult || dtMs <= 0 {
		return
	}
	s.stageMs += dtMs
	if s.stage == StageIntro && s.stageMs >= IntroMs {
		s.enter(StageStaredown, s.stageMs-IntroMs)
	}
	if s.stage == StageStaredown && s.stageMs >= DrawDelayMs {
		s.enter(StageDraw, s.stageMs-DrawDelayMs)
	}
	if s.stage == StageDraw && s.stageMs >= s.gun.DrawWindowMs {
		s.finish(OutcomeLost, ReasonTooSlow)
	}
}

// Fire pulls the trigger. Only a shot inside the draw window counts, and it
// wins with the gun's accuracy. Shots in any other stage are ignored.
func (s *Standoff) Fire() {
	if s.stage != StageDraw {
		return
	}
	if s.rng.Float64() < s.gun.Accuracy {
		s.finish(OutcomeWon, ReasonHit)
	} else {
		s.finish(OutcomeLost, ReasonMissed)
	}
}

func (s *Standoff) enter(st Stage, carry float64) {
	s.stage = st
	s.stageMs = carry
}

func (s *Standoff) finish(o Outcome, r Reason) {
	s.stage = StageResult
	s.stageMs = 0
	s.outcome = o
	s.reason = r
	lines := loseLines
	if o == OutcomeWon {
		lines = winLines
	}
	s.line = lines[s.rng.Intn(len(lines))]
}

func (s *Standoff) Gun() Gun         { return s.gun }
func (s *Standoff) Stage() Stage     { return s.stage }
func (s *Standoff) Outcome() Outcome { return s.outcome }
func (s *Standoff) Reason() Reason   { return s.reason }
func (s *Standoff) Done() bool       { return s.stage == StageResult }
func (s *Standoff) Line() string     { return s.line }
func (s *Standoff) StageMs() float64 { return s.stageMs }

// Countdown returns the number shown during the staredown (3, 2, 1), or 0
// before the first count and outside the staredown.
func (s *Standoff) Countdown() int {
	if s.stage != StageStaredown {
		return 0
	}
	n := int(s.stageMs / CountMs)
	if n < 1 {
		return 0
	}
	if n > CountFrom {
		n = CountFrom
	}
	return CountFrom + 1 - n
}

// DrawLeftMs returns the time left to fire during the draw.
func (s *Standoff) DrawLeftMs() float64 {
	if s.stage != StageDraw {
		return 0
	}
	return s.gun.DrawWindowMs - s.stageMs
}

// Resolve feeds the outcome back into the frozen day.
func (s *Standoff) Resolve(d *sim.Day) ([]sim.Event, error) {
	if !s.Done() {
		return nil, fmt.Errorf("resolve at %s: %w", s.stage, ErrNotFinished)
	}
	return d.ResolveConfrontation(s.outcome == OutcomeWon)
}
