package sim

import "github.com/leofattal/smoking-crack/internal/maze"

// PlayerView is the player as presentation sees it.
type PlayerView struct {
	Tile       maze.Point `json:"tile"`
	X          float64    `json:"x"`
	Y          float64    `json:"y"`
	Facing     Direction  `json:"facing"`
	InTransit  bool       `json:"in_transit"`
	Speed      float64    `json:"speed"`
	Inventory  int        `json:"inventory"`
	Stash      int        `json:"stash"`
	High       bool       `json:"high"`
	HighLeftMs float64    `json:"high_left_ms"`
}

// AdversaryView is one adversary as presentation sees it. Dormant
// adversaries are reported with Visible false.
type AdversaryView struct {
	ID        int            `json:"id"`
	Archetype Archetype      `json:"archetype"`
	State     AdversaryState `json:"state"`
	Tile      maze.Point     `json:"tile"`
	X         float64        `json:"x"`
	Y         float64        `json:"y"`
	Facing    Direction      `json:"facing"`
	Visible   bool           `json:"visible"`
	Disguised bool           `json:"disguised"`
}

// ItemView is an obtainable collectible.
type ItemView struct {
	Tile     maze.Point   `json:"tile"`
	X        float64      `json:"x"`
	Y        float64      `json:"y"`
	Category ItemCategory `json:"category"`
}

// PowerUpView is an uncollected power-up.
type PowerUpView struct {
	Tile maze.Point   `json:"tile"`
	Kind ModifierKind `json:"kind"`
}

// Snapshot is an immutable copy of the day at a tick boundary. It shares
// no memory with the Day, so it may be handed to another goroutine.
type Snapshot struct {
	Tick          int             `json:"tick"`
	Day           int             `json:"day"`
	Maze          string          `json:"maze"`
	Phase         Phase           `json:"phase"`
	PhaseLeftMs   float64         `json:"phase_left_ms"`
	Heat          float64         `json:"heat"`
	HeatMax       float64         `json:"heat_max"`
	Cash          int             `json:"cash"`
	Lives         int             `json:"lives"`
	TotalEarnings int             `json:"total_earnings"`
	Active        bool            `json:"active"`
	Pending       bool            `json:"pending_confrontation"`
	Route         Route           `json:"route"`
	Player        PlayerView      `json:"player"`
	Adversaries   []AdversaryView `json:"adversaries"`
	Items         []ItemView      `json:"items"`
	Customers     []maze.Point    `json:"customers"`
	Consumables   []maze.Point    `json:"consumables"`
	PowerUps      []PowerUpView   `json:"power_ups"`
	Modifiers     []Modifier      `json:"modifiers"`
}

// Snapshot copies the current day state.
func (d *Day) Snapshot() Snapshot {
	st := d.session.State()
	p := &d.player
	s := Snapshot{
		Tick:          d.tick,
		Day:           d.index,
		Maze:          d.grid.Name(),
		Phase:         d.phase,
		PhaseLeftMs:   d.phaseLeftMs,
		Heat:          d.heat,
		HeatMax:       d.bal.HeatMax,
		Cash:          st.Cash,
		Lives:         st.Lives,
		TotalEarnings: st.TotalEarnings,
		Active:        d.active,
		Pending:       d.pending,
		Route:         d.route,
		Player: PlayerView{
			Tile:       p.Current,
			X:          p.X,
			Y:          p.Y,
			Facing:     p.Facing,
			InTransit:  p.InTransit,
			Speed:      p.Speed,
			Inventory:  p.Inventory,
			Stash:      p.Stash,
			High:       p.High,
			HighLeftMs: p.HighLeftMs,
		},
		Modifiers: d.ledger.Snapshot(),
	}
	for _, a := range d.adversaries {
		s.Adversaries = append(s.Adversaries, AdversaryView{
			ID:        a.ID,
			Archetype: a.Archetype,
			State:     a.State,
			Tile:      a.Current,
			X:         a.X,
			Y:         a.Y,
			Facing:    a.Facing,
			Visible:   a.State != StateDormant,
			Disguised: d.disguised(a),
		})
	}
	for _, it := range d.items {
		if it.Collected || it.Forfeited {
			continue
		}
		s.Items = append(s.Items, ItemView{Tile: it.Tile, X: it.X, Y: it.Y, Category: it.Category})
	}
	for _, c := range d.customers {
		if c.Active {
			s.Customers = append(s.Customers, c.Tile)
		}
	}
	if d.phase == PhaseSelling {
		for _, pk := range d.pickups {
			if !pk.Collected {
				s.Consumables = append(s.Consumables, pk.Tile)
			}
		}
	}
	for _, pu := range d.powerUps {
		if !pu.Collected {
			s.PowerUps = append(s.PowerUps, PowerUpView{Tile: pu.Tile, Kind: pu.Kind})
		}
	}
	return s
}

// --- Queries ---

func (d *Day) Index() int           { return d.index }
func (d *Day) TickCount() int       { return d.tick }
func (d *Day) Grid() *maze.Grid     { return d.grid }
func (d *Day) Phase() Phase         { return d.phase }
func (d *Day) PhaseLeftMs() float64 { return d.phaseLeftMs }
func (d *Day) Heat() float64        { return d.heat }
func (d *Day) Active() bool         { return d.active }
func (d *Day) Pending() bool        { return d.pending }
func (d *Day) Route() Route         { return d.route }
func (d *Day) Session() *Session    { return d.session }

// Player returns a copy of the player.
func (d *Day) Player() Player { return d.player }

// Modifiers returns the active modifiers.
func (d *Day) Modifiers() []Modifier { return d.ledger.Snapshot() }

// Adversaries returns copies of every adversary.
func (d *Day) Adversaries() []Adversary {
	out := make([]Adversary, len(d.adversaries))
	for i, a := range d.adversaries {
		out[i] = *a
	}
	return out
}

// Items returns copies of every item, including collected ones.
func (d *Day) Items() []Item { return append([]Item(nil), d.items...) }

// Customers returns copies of every customer.
func (d *Day) Customers() []Customer { return append([]Customer(nil), d.customers...) }

// Pickups returns copies of the consumable pickups.
func (d *Day) Pickups() []Pickup { return append([]Pickup(nil), d.pickups...) }

// PowerUps returns copies of the power-up pickups.
func (d *Day) PowerUps() []PowerUp { return append([]PowerUp(nil), d.powerUps...) }

// Report returns the running day report.
func (d *Day) Report() DayReport { return d.report }

// Log returns the event log this day records into.
func (d *Day) Log() *EventLog { return d.log }
