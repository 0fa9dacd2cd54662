package sim

import (
	"fmt"
	"strings"
)

// LogEntry is one recorded line in an EventLog.
type LogEntry struct {
	Tick     int
	Actor    string  // "P", "C0".."Cn", or "--" for global events
	Category string  // economy, modifier, phase, move, adversary, terminal, trace
	Key      string  // event name within the category
	Value    string  // human-readable detail
	NumVal   float64 // optional numeric value for threshold checks
}

// String formats the entry as a fixed-width log line.
//
//	[T=042] C1   adversary pursuit_announced cop 1 at (10,12)
func (e LogEntry) String() string {
	return fmt.Sprintf("[T=%03d] %-4s %-9s %-20s %s",
		e.Tick, e.Actor, e.Category, e.Key, e.Value)
}

// EventLog is an unbounded, machine-readable record of a day. It is fed
// every emitted event and, in verbose mode, per-tick traces.
type EventLog struct {
	entries []LogEntry
	verbose bool
}

// NewEventLog creates an EventLog. Verbose logs also keep per-tick
// position and heat traces.
func NewEventLog(verbose bool) *EventLog {
	return &EventLog{verbose: verbose}
}

// Add records a new entry.
func (l *EventLog) Add(tick int, actor, category, key, value string, numVal float64) {
	l.entries = append(l.entries, LogEntry{
		Tick:     tick,
		Actor:    actor,
		Category: category,
		Key:      key,
		Value:    value,
		NumVal:   numVal,
	})
}

// AddVerbose records an entry only when verbose mode is on.
func (l *EventLog) AddVerbose(tick int, actor, category, key, value string, numVal float64) {
	if !l.verbose {
		return
	}
	l.Add(tick, actor, category, key, value, numVal)
}

// Record appends an emitted event.
func (l *EventLog) Record(e Event) {
	actor := "P"
	if e.Adversary >= 0 {
		actor = fmt.Sprintf("C%d", e.Adversary)
	}
	if e.Kind.Category() == "phase" {
		actor = "--"
	}
	l.Add(e.Tick, actor, e.Kind.Category(), e.Kind.String(), e.Describe(), float64(e.Cash))
}

// Entries returns all recorded entries.
func (l *EventLog) Entries() []LogEntry {
	return l.entries
}

// Filter returns entries matching category and/or key. Empty strings match
// anything.
func (l *EventLog) Filter(category, key string) []LogEntry {
	var out []LogEntry
	for _, e := range l.entries {
		if category != "" && e.Category != category {
			continue
		}
		if key != "" && e.Key != key {
			continue
		}
		out = append(out, e)
	}
	return out
}

// FilterTickRange returns entries within [fromTick, toTick] inclusive.
func (l *EventLog) FilterTickRange(fromTick, toTick int) []LogEntry {
	var out []LogEntry
	for _, e := range l.entries {
		if e.Tick >= fromTick && e.Tick <= toTick {
			out = append(out, e)
		}
	}
	return out
}

// CountKind returns how many entries were recorded for kind.
func (l *EventLog) CountKind(kind EventKind) int {
	return len(l.Filter(kind.Category(), kind.String()))
}

// LastOf returns the most recent entry for kind.
func (l *EventLog) LastOf(kind EventKind) (LogEntry, bool) {
	entries := l.Filter(kind.Category(), kind.String())
	if len(entries) == 0 {
		return LogEntry{}, false
	}
	return entries[len(entries)-1], true
}

// HasEntry reports whether any entry matches category, key and a value
// substring. Empty arguments match anything.
func (l *EventLog) HasEntry(category, key, valueSubstr string) bool {
	for _, e := range l.entries {
		if category != "" && e.Category != category {
			continue
		}
		if key != "" && e.Key != key {
			continue
		}
		if valueSubstr != "" && !strings.Contains(e.Value, valueSubstr) {
			continue
		}
		return true
	}
	return false
}

// Format returns the full log for t.Log output.
func (l *EventLog) Format() string {
	var sb strings.Builder
	for _, e := range l.entries {
		sb.WriteString(e.String())
		sb.WriteByte('\n')
	}
	return sb.String()
}

// Summary returns per-category counts on one line.
func (l *EventLog) Summary() string {
	counts := map[string]int{}
	var order []string
	for _, e := range l.entries {
		if _, ok := counts[e.Category]; !ok {
			order = append(order, e.Category)
		}
		counts[e.Category]++
	}
	parts := make([]string, 0, len(order))
	for _, c := range order {
		parts = append(parts, fmt.Sprintf("%s=%d", c, counts[c]))
	}
	return strings.Join(parts, " ")
}
