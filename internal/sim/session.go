package sim

import (
	"fmt"

	"github.com/leofattal/smoking-crack/internal/maze"
)

// Upgrades are the permanent purchases that feed the simulation.
type Upgrades struct {
	SpeedShoes     int  `json:"speed_shoes" yaml:"speed_shoes"`
	StreetSmarts   int  `json:"street_smarts" yaml:"street_smarts"`
	Lookout        bool `json:"lookout" yaml:"lookout"`
	BetterProduct  int  `json:"better_product" yaml:"better_product"`
	CrackTolerance int  `json:"crack_tolerance" yaml:"crack_tolerance"`
	GetawayCar     bool `json:"getaway_car" yaml:"getaway_car"`
}

// State is everything carried from one day to the next. A collaborator
// may load and save it; the simulation only mutates it in memory.
type State struct {
	Day              int      `json:"day" yaml:"day"`
	Cash             int      `json:"cash" yaml:"cash"`
	Lives            int      `json:"lives" yaml:"lives"`
	TotalEarnings    int      `json:"total_earnings" yaml:"total_earnings"`
	Upgrades         Upgrades `json:"upgrades" yaml:"upgrades"`
	AdvertisingTier  int      `json:"advertising_tier" yaml:"advertising_tier"`
	Skin             string   `json:"skin" yaml:"skin"`
	OwnedSkins       []string `json:"owned_skins" yaml:"owned_skins"`
	Gun              string   `json:"gun" yaml:"gun"`
	OwnedGuns        []string `json:"owned_guns" yaml:"owned_guns"`
	GetawayUsedToday bool     `json:"getaway_used_today" yaml:"getaway_used_today"`
}

// NewState returns a fresh run: day 1, no cash, starting lives.
func NewState(b Balance) State {
	return State{
		Day:        1,
		Lives:      b.StartingLives,
		Skin:       "default",
		OwnedSkins: []string{"default"},
		Gun:        "fists",
		OwnedGuns:  []string{"fists"},
	}
}

// Session owns the persistent state, the tuning and the random source, and
// builds one Day at a time. It is not safe for concurrent use; a single
// goroutine drives it.
type Session struct {
	state   State
	balance Balance
	rng     Rand
	log     *EventLog
	day     *Day
}

// NewSession wraps state. A nil rng gets a fixed-seed source.
func NewSession(state State, b Balance, rng Rand) *Session {
	if rng == nil {
		rng = NewRand(1)
	}
	return &Session{state: state, balance: b, rng: rng, log: NewEventLog(false)}
}

// State returns the mutable session state. Shop and persistence
// collaborators edit it between days.
func (s *Session) State() *State { return &s.state }

func (s *Session) Balance() Balance { return s.balance }
func (s *Session) Rand() Rand       { return s.rng }
func (s *Session) Day() *Day        { return s.day }
func (s *Session) Log() *EventLog   { return s.log }

// SetLog replaces the event log every later day records into.
func (s *Session) SetLog(l *EventLog) { s.log = l }

// GameOver reports whether the run has ended.
func (s *Session) GameOver() bool { return s.state.Lives <= 0 }

// BeginDay builds the day for the current day index on grid g: fresh
// heat, items, consumables, power-ups and dormant adversaries.
func (s *Session) BeginDay(g *maze.Grid) (*Day, error) {
	if s.GameOver() {
		return nil, ErrGameOver
	}
	if s.day != nil && s.day.pending {
		return nil, fmt.Errorf("begin day %d: %w", s.state.Day, ErrResolutionPending)
	}
	s.state.GetawayUsedToday = false
	d := &Day{
		session:     s,
		grid:        g,
		bal:         s.balance,
		rng:         s.rng,
		log:         s.log,
		index:       s.state.Day,
		phase:       PhaseCollecting,
		phaseLeftMs: s.balance.CollectPhaseMs,
		active:      true,
	}
	d.report = DayReport{Day: d.index, Maze: g.Name()}
	d.spawnPlayer()
	d.scatterItems()
	d.placeConsumables()
	d.scatterPowerUps()
	d.spawnAdversaries()
	d.refreshPlayerSpeed()
	d.report.ItemsScattered = len(d.items)
	d.report.sync(d)
	s.day = d
	return d, nil
}
