package sim

import (
	"fmt"
	"math"
)

// resolveArrival applies every effect of standing on the player's tile.
// It runs before the next move is committed so effects see the tile just
// reached, and is safe to repeat while the player stands still.
func (d *Day) resolveArrival() {
	at := d.player.Current
	switch d.phase {
	case PhaseCollecting:
		for i := range d.items {
			it := &d.items[i]
			if !it.Collected && !it.Forfeited && it.Tile == at {
				d.collectItem(it)
			}
		}
	case PhaseSelling:
		for i := range d.pickups {
			pk := &d.pickups[i]
			if !pk.Collected && pk.Tile == at {
				pk.Collected = true
				d.player.Stash++
				d.emit(newEvent(EventConsumableCollected, d.tick, at))
			}
		}
		d.sell()
	}
	d.collectPowerUps()
}

func (d *Day) collectItem(it *Item) {
	it.Collected = true
	it.X, it.Y = float64(it.Tile.X), float64(it.Tile.Y)
	d.player.Inventory++
	e := newEvent(EventItemCollected, d.tick, it.Tile)
	e.Item = it.Category
	d.emit(e)
}

// sell trades with an active customer on the player's tile. Each customer
// buys once.
func (d *Day) sell() {
	p := &d.player
	if p.Inventory <= 0 {
		return
	}
	for i := range d.customers {
		c := &d.customers[i]
		if !c.Active || c.Tile != p.Current {
			continue
		}
		units := 1
		if d.bal.MaxSaleUnits > 1 {
			units += d.rng.Intn(d.bal.MaxSaleUnits)
		}
		if units > p.Inventory {
			units = p.Inventory
		}
		mul := d.bal.SaleMultiplier(d.session.state.Upgrades.BetterProduct)
		if d.ledger.Active(ModDoubleCash) {
			mul *= 2
		}
		earnings := int(math.Floor(float64(units*d.bal.UnitPrice) * mul))

		st := &d.session.state
		st.Cash += earnings
		st.TotalEarnings += earnings
		p.Inventory -= units
		d.addHeat(d.bal.HeatPerSale)
		c.Active = false

		e := newEvent(EventSaleCompleted, d.tick, c.Tile)
		e.Units = units
		e.Cash = earnings
		d.emit(e)
		if p.Inventory <= 0 {
			return
		}
	}
}

// collectPowerUps picks up power-ups on the player's tile, or within the
// magnet radius while the magnet is active.
func (d *Day) collectPowerUps() {
	reach := 0
	if d.ledger.Active(ModMagnet) {
		reach = d.bal.MagnetRadius
	}
	for i := range d.powerUps {
		pu := &d.powerUps[i]
		if pu.Collected || pu.Tile.Manhattan(d.player.Current) > reach {
			continue
		}
		pu.Collected = true
		d.activate(pu.Kind)
	}
}

// pullItems drifts nearby items toward the player under the magnet and
// collects those within one tile.
func (d *Day) pullItems(dt float64) {
	if d.phase != PhaseCollecting || !d.ledger.Active(ModMagnet) {
		return
	}
	p := &d.player
	step := d.bal.MagnetPull * dt / 1000
	for i := range d.items {
		it := &d.items[i]
		if it.Collected || it.Forfeited {
			continue
		}
		dist := it.Tile.Manhattan(p.Current)
		if dist == 0 || dist > d.bal.MagnetRadius {
			continue
		}
		dx, dy := p.X-it.X, p.Y-it.Y
		if l := math.Hypot(dx, dy); l > step {
			it.X += dx / l * step
			it.Y += dy / l * step
		}
		if dist <= 1 {
			d.collectItem(it)
		}
	}
}

// checkContact resolves adversaries sharing the player's tile. Protected
// contact knocks the adversary out; otherwise the first contact wins and
// goes to confront.
func (d *Day) checkContact() {
	if d.phase != PhaseSelling || !d.active {
		return
	}
	for _, a := range d.adversaries {
		if a.State == StateDormant || a.Current != d.player.Current {
			continue
		}
		if d.protected() {
			d.sendHome(a, d.bal.KnockoutRedeployMs)
			e := newEvent(EventKnockout, d.tick, d.player.Current)
			e.Adversary = a.ID
			d.emit(e)
			continue
		}
		d.confront(a)
		return
	}
}

// confront handles unprotected contact: a getaway if one is available,
// else an arrest or a frozen day awaiting a confrontation outcome.
func (d *Day) confront(a *Adversary) {
	st := &d.session.state
	p := &d.player
	if st.Upgrades.GetawayCar && !st.GetawayUsedToday {
		st.GetawayUsedToday = true
		p.Place(d.grid.PlayerSpawn())
		p.Facing = DirNone
		p.Queued = DirNone
		e := newEvent(EventGetaway, d.tick, p.Current)
		e.Adversary = a.ID
		d.emit(e)
		return
	}
	if d.bal.ContactArrests {
		e := newEvent(EventCapture, d.tick, p.Current)
		e.Adversary = a.ID
		d.emit(e)
		d.applyPenalty()
		return
	}
	p.Inventory = 0
	d.active = false
	d.pending = true
	d.contact = a
	d.route = RouteConfrontation
	e := newEvent(EventConfrontation, d.tick, p.Current)
	e.Adversary = a.ID
	d.emit(e)
}

// ResolveConfrontation feeds back the outcome of a pending confrontation.
// A win resumes the day with the contacting adversary sent home; a loss
// applies the capture penalty.
func (d *Day) ResolveConfrontation(won bool) ([]Event, error) {
	if !d.pending {
		return nil, fmt.Errorf("resolve day %d: %w", d.index, ErrNoPendingConfrontation)
	}
	d.events = d.events[:0]
	a := d.contact
	d.pending = false
	d.contact = nil
	id := -1
	if a != nil {
		id = a.ID
	}
	if won {
		d.active = true
		d.route = RouteNone
		if a != nil {
			d.sendHome(a, d.bal.KnockoutRedeployMs)
		}
		e := newEvent(EventConfrontationWon, d.tick, d.player.Current)
		e.Adversary = id
		d.emit(e)
		return d.drain(), nil
	}
	e := newEvent(EventCapture, d.tick, d.player.Current)
	e.Adversary = id
	d.emit(e)
	d.applyPenalty()
	return d.drain(), nil
}

// Capture ends the day as a direct arrest.
func (d *Day) Capture() ([]Event, error) {
	if d.pending {
		return nil, fmt.Errorf("capture day %d: %w", d.index, ErrResolutionPending)
	}
	if !d.active {
		return nil, fmt.Errorf("capture day %d: %w", d.index, ErrDayInactive)
	}
	d.events = d.events[:0]
	d.emit(newEvent(EventCapture, d.tick, d.player.Current))
	d.applyPenalty()
	return d.drain(), nil
}
