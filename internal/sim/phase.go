package sim

import "math"

// advanceClock runs the phase countdown and fires phase transitions.
func (d *Day) advanceClock(dt float64) {
	d.phaseLeftMs -= dt
	if d.phaseLeftMs > 0 {
		return
	}
	d.phaseLeftMs = 0
	switch d.phase {
	case PhaseCollecting:
		d.startSelling()
	case PhaseSelling:
		d.endDay()
	}
}

// startSelling forfeits leftover items, brings out customers and starts
// the adversaries' dormancy countdowns.
func (d *Day) startSelling() {
	d.phase = PhaseSelling
	d.phaseLeftMs = d.bal.SellPhaseMs
	for i := range d.items {
		if !d.items[i].Collected {
			d.items[i].Forfeited = true
		}
	}
	d.spawnCustomers()
	d.refreshPlayerSpeed()
	e := newEvent(EventPhaseChanged, d.tick, d.player.Current)
	e.Phase = PhaseSelling
	d.emit(e)
}

// endDay finishes the day on timeout.
func (d *Day) endDay() {
	d.active = false
	d.session.state.Day++
	d.route = RouteShop
	d.emit(newEvent(EventDayComplete, d.tick, d.player.Current))
}

// accrueHeat adds passive heat while selling.
func (d *Day) accrueHeat(dt float64) {
	if d.phase != PhaseSelling {
		return
	}
	d.addHeat(d.bal.PassiveHeatPerSec * dt / 1000)
}

func (d *Day) addHeat(v float64) {
	d.heat = math.Min(d.bal.HeatMax, math.Max(0, d.heat+v))
}

// applyPenalty ends the day as a capture: inventory lost, a share of cash
// taken, one life spent and the day counter advanced. All of it lands in
// the same call.
func (d *Day) applyPenalty() {
	st := &d.session.state
	d.player.Inventory = 0
	st.Cash -= int(math.Floor(float64(st.Cash) * d.bal.CapturePenalty))
	if st.Lives > 0 {
		st.Lives--
	}
	st.Day++
	d.active = false
	d.pending = false
	d.contact = nil
	if st.Lives <= 0 {
		d.route = RouteGameOver
		d.emit(newEvent(EventGameOver, d.tick, d.player.Current))
		return
	}
	d.route = RouteShop
}
