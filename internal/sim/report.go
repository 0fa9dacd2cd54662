package sim

import (
	"fmt"
	"strings"
)

// DayOutcome classifies how a day ended.
type DayOutcome int

const (
	OutcomeInProgress DayOutcome = iota
	OutcomeCompleted
	OutcomeBusted
	OutcomeConfrontation
	OutcomeGameOver
	OutcomeConfrontationLost
)

func (o DayOutcome) String() string {
	switch o {
	case OutcomeInProgress:
		return "in_progress"
	case OutcomeCompleted:
		return "completed"
	case OutcomeBusted:
		return "busted"
	case OutcomeConfrontation:
		return "confrontation"
	case OutcomeGameOver:
		return "game_over"
	case OutcomeConfrontationLost:
		return "confrontation_lost"
	default:
		return "unknown"
	}
}

func (o DayOutcome) MarshalText() ([]byte, error) { return []byte(o.String()), nil }

// DayReport tallies one day as it is played.
type DayReport struct {
	Day               int        `json:"day"`
	Maze              string     `json:"maze"`
	Outcome           DayOutcome `json:"outcome"`
	Ticks             int        `json:"ticks"`
	ItemsCollected    int        `json:"items_collected"`
	ItemsScattered    int        `json:"items_scattered"`
	UnitsSold         int        `json:"units_sold"`
	Sales             int        `json:"sales"`
	Earnings          int        `json:"earnings"`
	PeakHeat          float64    `json:"peak_heat"`
	Pursuits          int        `json:"pursuits"`
	Knockouts         int        `json:"knockouts"`
	Getaways          int        `json:"getaways"`
	ConfrontationsWon int        `json:"confrontations_won"`
	PowerUps          int        `json:"power_ups"`
	Highs             int        `json:"highs"`
	CashAfter         int        `json:"cash_after"`
	LivesAfter        int        `json:"lives_after"`
}

// observe folds one event into the report.
func (r *DayReport) observe(e Event, d *Day) {
	switch e.Kind {
	case EventItemCollected:
		r.ItemsCollected++
	case EventSaleCompleted:
		r.Sales++
		r.UnitsSold += e.Units
		r.Earnings += e.Cash
	case EventPursuitAnnounced:
		r.Pursuits++
	case EventKnockout:
		r.Knockouts++
	case EventGetaway:
		r.Getaways++
	case EventConfrontationWon:
		r.ConfrontationsWon++
		r.Outcome = OutcomeInProgress
	case EventModifierActivated, EventModifierRefreshed:
		r.PowerUps++
	case EventHighStarted:
		r.Highs++
	case EventDayComplete:
		r.Outcome = OutcomeCompleted
	case EventConfrontation:
		r.Outcome = OutcomeConfrontation
	case EventCapture:
		// A capture that settles a pending confrontation is a lost duel.
		if r.Outcome == OutcomeConfrontation {
			r.Outcome = OutcomeConfrontationLost
		} else {
			r.Outcome = OutcomeBusted
		}
	case EventGameOver:
		r.Outcome = OutcomeGameOver
	}
	r.sync(d)
}

// sync copies running totals that change without an event.
func (r *DayReport) sync(d *Day) {
	r.Ticks = d.tick
	if d.heat > r.PeakHeat {
		r.PeakHeat = d.heat
	}
	st := d.session.State()
	r.CashAfter = st.Cash
	r.LivesAfter = st.Lives
}

// Format renders the report as a short multi-line block.
func (r DayReport) Format() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "=== Day %d (%s) : %s ===\n", r.Day, r.Maze, r.Outcome)
	fmt.Fprintf(&sb, "  ticks=%d  items=%d/%d  sales=%d  units=%d  earned=$%d\n",
		r.Ticks, r.ItemsCollected, r.ItemsScattered, r.Sales, r.UnitsSold, r.Earnings)
	fmt.Fprintf(&sb, "  heat_peak=%.1f  pursuits=%d  knockouts=%d  getaways=%d  duels_won=%d\n",
		r.PeakHeat, r.Pursuits, r.Knockouts, r.Getaways, r.ConfrontationsWon)
	fmt.Fprintf(&sb, "  power_ups=%d  highs=%d  cash=$%d  lives=%d\n",
		r.PowerUps, r.Highs, r.CashAfter, r.LivesAfter)
	return sb.String()
}
