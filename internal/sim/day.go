package sim

import (
	"fmt"

	"github.com/leofattal/smoking-crack/internal/maze"
)

// Input is the abstract intent for one tick.
type Input struct {
	Direction     Direction `json:"direction"`
	UseConsumable bool      `json:"use_consumable"`
}

// TickResult is what one tick hands back to presentation.
type TickResult struct {
	Events   []Event
	Snapshot Snapshot
}

// Day is one day of play on a fixed grid. Items, customers and adversaries
// live here and are rebuilt by the next Session.BeginDay.
type Day struct {
	session *Session
	grid    *maze.Grid
	bal     Balance
	rng     Rand
	log     *EventLog

	index       int
	tick        int
	phase       Phase
	phaseLeftMs float64
	heat        float64

	active  bool
	pending bool // confrontation awaiting ResolveConfrontation
	contact *Adversary
	route   Route

	player      Player
	adversaries []*Adversary
	items       []Item
	customers   []Customer
	pickups     []Pickup
	powerUps    []PowerUp
	ledger      Ledger

	events []Event
	report DayReport
}

// Tick advances the day by elapsedMs (clamped to Balance.MaxTickMs) in a
// fixed order: input, player movement and arrival effects, modifier decay,
// adversaries, contact, phase clock, passive heat. Once a stage ends the
// day, the remaining clock stages are skipped.
func (d *Day) Tick(elapsedMs float64, in Input) (TickResult, error) {
	if !d.active {
		return TickResult{}, fmt.Errorf("tick day %d: %w", d.index, ErrDayInactive)
	}
	dt := elapsedMs
	if dt < 0 {
		dt = 0
	}
	if dt > d.bal.MaxTickMs {
		dt = d.bal.MaxTickMs
	}
	d.tick++
	d.events = d.events[:0]

	if in.Direction != DirNone {
		d.player.Queued = in.Direction
	}
	if in.UseConsumable {
		d.smoke()
	}
	d.updatePlayer(dt)
	d.updateModifiers(dt)
	d.updateAdversaries(dt)
	d.checkContact()
	if d.active {
		d.advanceClock(dt)
	}
	if d.active {
		d.accrueHeat(dt)
	}
	d.trace()

	if err := d.checkInvariants(); err != nil {
		return TickResult{}, err
	}
	return TickResult{Events: d.drain(), Snapshot: d.Snapshot()}, nil
}

// --- Setup ---

func (d *Day) spawnPlayer() {
	st := d.session.State()
	d.player = Player{BaseSpeed: d.bal.PlayerBaseSpeed(st.Upgrades.SpeedShoes)}
	d.player.Place(d.grid.PlayerSpawn())
}

func (d *Day) scatterItems() {
	tiles := d.grid.PathTiles()
	shuffle(d.rng, tiles)
	n := int(float64(len(tiles)) * d.bal.ItemDensity)
	d.items = make([]Item, 0, n)
	for _, t := range tiles[:n] {
		d.items = append(d.items, Item{
			Tile:     t,
			X:        float64(t.X),
			Y:        float64(t.Y),
			Category: d.bal.ItemWeights.roll(d.rng),
		})
	}
}

func (d *Day) placeConsumables() {
	for _, t := range d.grid.ConsumableTiles() {
		d.pickups = append(d.pickups, Pickup{Tile: t})
	}
}

func (d *Day) scatterPowerUps() {
	lo, hi := d.bal.PowerUpsMin, d.bal.PowerUpsMax
	if hi < lo {
		hi = lo
	}
	want := lo
	if hi > lo {
		want += d.rng.Intn(hi - lo + 1)
	}
	spawn := d.grid.PlayerSpawn()
	tiles := d.grid.PathTiles()
	shuffle(d.rng, tiles)
	for _, t := range tiles {
		if len(d.powerUps) >= want {
			break
		}
		if t.Manhattan(spawn) < d.bal.PowerUpMinDist {
			continue
		}
		kind := ModifierKind(d.rng.Intn(int(modifierKindCount)))
		d.powerUps = append(d.powerUps, PowerUp{Tile: t, Kind: kind})
	}
}

func (d *Day) spawnAdversaries() {
	spawns := d.grid.AdversarySpawns()
	n := d.bal.AdversaryCount(d.index)
	if n > len(spawns) {
		n = len(spawns)
	}
	st := d.session.State()
	detection := d.bal.DetectionFor(st.Upgrades.StreetSmarts)
	scale := d.bal.AdversarySpeedScale(d.index)
	for i := 0; i < n; i++ {
		arch := Archetype(i % int(archetypeCount))
		a := &Adversary{
			ID:              i,
			Archetype:       arch,
			State:           StateDormant,
			DetectionRadius: detection,
			Home:            spawns[i],
			DormantMs:       float64(i)*d.bal.DormancyStaggerMs + d.bal.DormancyBaseMs,
		}
		a.Place(spawns[i])
		a.Speed = d.bal.AdversarySpeed * ProfileOf(arch).SpeedMul * scale
		d.adversaries = append(d.adversaries, a)
	}
}

func (d *Day) spawnCustomers() {
	want := d.bal.CustomerCount(d.session.State().AdvertisingTier)
	spawn := d.grid.PlayerSpawn()
	spots := d.grid.CustomerSpots()
	shuffle(d.rng, spots)
	paths := d.grid.PathTiles()
	shuffle(d.rng, paths)
	for _, t := range append(spots, paths...) {
		if len(d.customers) >= want {
			break
		}
		if t.Manhattan(spawn) < d.bal.CustomerMinDist || d.grid.Kind(t) == maze.KindHouse {
			continue
		}
		d.customers = append(d.customers, Customer{Tile: t, Active: true})
	}
}

// --- Player ---

func (d *Day) updatePlayer(dt float64) {
	p := &d.player
	if p.InTransit {
		if _, teleported := Advance(&p.Mover, d.grid, dt); teleported {
			d.emit(newEvent(EventTeleport, d.tick, p.Current))
		}
	}
	if p.InTransit {
		return
	}
	d.resolveArrival()
	if p.Queued != DirNone && TryCommit(&p.Mover, d.grid, maze.AgentPlayer, p.Queued) {
		p.Queued = DirNone
		return
	}
	TryCommit(&p.Mover, d.grid, maze.AgentPlayer, p.Facing)
}

// refreshPlayerSpeed derives speed from state: high beats speed boost,
// which beats the collection-phase bonus.
func (d *Day) refreshPlayerSpeed() {
	p := &d.player
	switch {
	case p.High:
		p.Speed = p.BaseSpeed * d.bal.HighSpeedMul
	case d.ledger.Active(ModSpeedBoost):
		p.Speed = p.BaseSpeed * d.bal.SpeedBoostMul
	case d.phase == PhaseCollecting:
		p.Speed = p.BaseSpeed * d.bal.CollectSpeedMul
	default:
		p.Speed = p.BaseSpeed
	}
}

// smoke consumes one stash unit and starts the high state. It only works
// while selling, with stash on hand, and when not already high.
func (d *Day) smoke() {
	p := &d.player
	if d.phase != PhaseSelling || p.Stash <= 0 || p.High {
		return
	}
	p.Stash--
	p.High = true
	p.HighLeftMs = d.bal.HighDuration(d.session.State().Upgrades.CrackTolerance)
	d.refreshPlayerSpeed()
	d.emit(newEvent(EventHighStarted, d.tick, p.Current))
}

// --- Modifiers ---

func (d *Day) updateModifiers(dt float64) {
	p := &d.player
	changed := false
	if p.High {
		p.HighLeftMs -= dt
		if p.HighLeftMs <= 0 {
			p.High = false
			p.HighLeftMs = 0
			changed = true
			d.emit(newEvent(EventHighEnded, d.tick, p.Current))
		}
	}
	for _, kind := range d.ledger.Decay(dt) {
		e := newEvent(EventModifierExpired, d.tick, p.Current)
		e.Modifier = kind
		d.emit(e)
		changed = true
	}
	if changed {
		d.refreshPlayerSpeed()
	}
	d.pullItems(dt)
}

func (d *Day) activate(kind ModifierKind) {
	refreshed := d.ledger.Activate(kind, d.bal.PowerUpDurations.Duration(kind))
	e := newEvent(EventModifierActivated, d.tick, d.player.Current)
	if refreshed {
		e.Kind = EventModifierRefreshed
	}
	e.Modifier = kind
	d.emit(e)
	d.refreshPlayerSpeed()
}

// --- Events ---

func (d *Day) emit(e Event) {
	d.events = append(d.events, e)
	d.log.Record(e)
	d.report.observe(e, d)
}

func (d *Day) drain() []Event {
	d.report.sync(d)
	out := make([]Event, len(d.events))
	copy(out, d.events)
	d.events = d.events[:0]
	return out
}

func (d *Day) trace() {
	p := &d.player
	d.log.AddVerbose(d.tick, "P", "trace", "position",
		fmt.Sprintf("tile=%v pos=(%.2f,%.2f) inv=%d", p.Current, p.X, p.Y, p.Inventory), d.heat)
}

func (d *Day) checkInvariants() error {
	if err := checkMover("player", &d.player.Mover); err != nil {
		return err
	}
	for _, a := range d.adversaries {
		if err := checkMover(fmt.Sprintf("cop %d", a.ID), &a.Mover); err != nil {
			return err
		}
	}
	if d.heat < 0 || d.heat > d.bal.HeatMax {
		return fmt.Errorf("%w: heat %.2f outside [0,%.0f]", ErrInvariant, d.heat, d.bal.HeatMax)
	}
	return nil
}
