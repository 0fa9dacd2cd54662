package sim

// Modifier is one active power-up effect.
type Modifier struct {
	Kind        ModifierKind `json:"kind"`
	RemainingMs float64      `json:"remaining_ms"`
}

// Ledger tracks active modifiers. It holds at most one entry per kind.
type Ledger struct {
	active []Modifier
}

// Activate starts kind for durationMs. If kind is already active its
// remaining time is replaced rather than extended, and refreshed is true.
func (l *Ledger) Activate(kind ModifierKind, durationMs float64) (refreshed bool) {
	for i := range l.active {
		if l.active[i].Kind == kind {
			l.active[i].RemainingMs = durationMs
			return true
		}
	}
	l.active = append(l.active, Modifier{Kind: kind, RemainingMs: durationMs})
	return false
}

// Decay subtracts elapsedMs from every active modifier and removes those
// that reach zero. Expired kinds are returned in activation order.
func (l *Ledger) Decay(elapsedMs float64) []ModifierKind {
	var expired []ModifierKind
	kept := l.active[:0]
	for _, m := range l.active {
		m.RemainingMs -= elapsedMs
		if m.RemainingMs <= 0 {
			expired = append(expired, m.Kind)
			continue
		}
		kept = append(kept, m)
	}
	l.active = kept
	return expired
}

// Active reports whether kind is currently in effect.
func (l *Ledger) Active(kind ModifierKind) bool {
	_, ok := l.Remaining(kind)
	return ok
}

// Remaining returns the time left on kind.
func (l *Ledger) Remaining(kind ModifierKind) (float64, bool) {
	for _, m := range l.active {
		if m.Kind == kind {
			return m.RemainingMs, true
		}
	}
	return 0, false
}

// Len returns the number of active modifiers.
func (l *Ledger) Len() int { return len(l.active) }

// Snapshot returns a copy of the active modifiers.
func (l *Ledger) Snapshot() []Modifier {
	out := make([]Modifier, len(l.active))
	copy(out, l.active)
	return out
}

// Clear drops every modifier.
func (l *Ledger) Clear() { l.active = l.active[:0] }
