// Package sound turns simulation events into short synthesized cues played
// through the system speaker.
package sound

import (
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/leofattal/smoking-crack/internal/sim"
)

const sampleRate = beep.SampleRate(44100)

// Cue is one sound effect.
type Cue int

const (
	CueNone Cue = iota
	CuePickup
	CueStash
	CueSale
	CuePowerUp
	CueHigh
	CuePhase
	CueTunnel
	CueSiren
	CueKnockout
	CueStandoff
	CueGetaway
	CueBusted
	CueDayOver
)

func (c Cue) String() string {
	switch c {
	case CueNone:
		return "none"
	case CuePickup:
		return "pickup"
	case CueStash:
		return "stash"
	case CueSale:
		return "sale"
	case CuePowerUp:
		return "power_up"
	case CueHigh:
		return "high"
	case CuePhase:
		return "phase"
	case CueTunnel:
		return "tunnel"
	case CueSiren:
		return "siren"
	case CueKnockout:
		return "knockout"
	case CueStandoff:
		return "standoff"
	case CueGetaway:
		return "getaway"
	case CueBusted:
		return "busted"
	case CueDayOver:
		return "day_over"
	default:
		return "unknown"
	}
}

// CueFor maps an event to its cue. Events without a sound map to CueNone.
func CueFor(e sim.Event) Cue {
	switch e.Kind {
	case sim.EventItemCollected:
		return CuePickup
	case sim.EventConsumableCollected:
		return CueStash
	case sim.EventSaleCompleted:
		return CueSale
	case sim.EventModifierActivated, sim.EventModifierRefreshed:
		return CuePowerUp
	case sim.EventHighStarted:
		return CueHigh
	case sim.EventPhaseChanged:
		return CuePhase
	case sim.EventTeleport:
		return CueTunnel
	case sim.EventPursuitAnnounced:
		return CueSiren
	case sim.EventKnockout:
		return CueKnockout
	case sim.EventConfrontation:
		return CueStandoff
	case sim.EventGetaway:
		return CueGetaway
	case sim.EventCapture, sim.EventGameOver:
		return CueBusted
	case sim.EventDayComplete:
		return CueDayOver
	default:
		return CueNone
	}
}

// Streamer synthesizes cue c. It returns nil for CueNone.
func Streamer(c Cue) beep.Streamer {
	ms := func(n int) time.Duration { return time.Duration(n) * time.Millisecond }
	switch c {
	case CuePickup:
		return volume(note(1320, 1320, ms(60), WaveSquare, sampleRate), 0.25)
	case CueStash:
		return volume(note(660, 990, ms(90), WaveSquare, sampleRate), 0.25)
	case CueSale:
		// two-note register chime
		return volume(beep.Seq(
			note(988, 988, ms(80), WaveSine, sampleRate),
			note(1319, 1319, ms(160), WaveSine, sampleRate),
		), 0.5)
	case CuePowerUp:
		return volume(note(440, 1760, ms(200), WaveSine, sampleRate), 0.4)
	case CueHigh:
		return volume(note(1800, 200, ms(400), WaveSaw, sampleRate), 0.2)
	case CuePhase:
		return volume(beep.Mix(
			note(880, 880, ms(300), WaveSine, sampleRate),
			volume(note(1760, 1760, ms(300), WaveSine, sampleRate), 0.4),
		), 0.5)
	case CueTunnel:
		return volume(note(0, 0, ms(120), WaveNoise, sampleRate), 0.15)
	case CueSiren:
		return volume(beep.Seq(
			note(700, 1000, ms(250), WaveSquare, sampleRate),
			note(1000, 700, ms(250), WaveSquare, sampleRate),
		), 0.2)
	case CueKnockout:
		return volume(beep.Mix(
			note(90, 40, ms(180), WaveSine, sampleRate),
			volume(note(0, 0, ms(60), WaveNoise, sampleRate), 0.3),
		), 0.7)
	case CueStandoff:
		return volume(note(220, 110, ms(500), WaveSaw, sampleRate), 0.3)
	case CueGetaway:
		return volume(note(80, 320, ms(450), WaveSaw, sampleRate), 0.3)
	case CueBusted:
		return volume(beep.Seq(
			note(150, 150, ms(200), WaveSaw, sampleRate),
			note(100, 100, ms(400), WaveSaw, sampleRate),
		), 0.4)
	case CueDayOver:
		return volume(beep.Seq(
			note(784, 784, ms(100), WaveSine, sampleRate),
			note(1047, 1047, ms(100), WaveSine, sampleRate),
			note(1568, 1568, ms(250), WaveSine, sampleRate),
		), 0.4)
	default:
		return nil
	}
}

// Manager plays cues through a shared mixer. The zero value is not usable;
// call NewManager. A Manager that was never initialized, or is muted,
// accepts every call and plays nothing.
type Manager struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	initialized bool
	muted       bool
	played      map[Cue]int
}

// NewManager creates a silent manager.
func NewManager() *Manager {
	return &Manager{mixer: &beep.Mixer{}, played: map[Cue]int{}}
}

// Initialize opens the speaker. Failing to open it is not fatal; callers
// log the error and carry on silent.
func (m *Manager) Initialize() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.initialized {
		return nil
	}
	if err := speaker.Init(sampleRate, sampleRate.N(100*time.Millisecond)); err != nil {
		return err
	}
	speaker.Play(m.mixer)
	m.initialized = true
	return nil
}

// SetMuted turns playback off or on.
func (m *Manager) SetMuted(muted bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.muted = muted
}

// Muted reports whether playback is off.
func (m *Manager) Muted() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.muted
}

// Play queues cue c. Requests are counted even when nothing is audible.
func (m *Manager) Play(c Cue) {
	if c == CueNone {
		return
	}
	m.mu.Lock()
	defer m.mu.Unlock()

	m.played[c]++
	if !m.initialized || m.muted {
		return
	}
	s := Streamer(c)
	speaker.Lock()
	m.mixer.Add(s)
	speaker.Unlock()
}

// HandleEvents plays the cue of every event, once per cue per batch.
func (m *Manager) HandleEvents(events []sim.Event) {
	seen := map[Cue]bool{}
	for _, e := range events {
		c := CueFor(e)
		if c == CueNone || seen[c] {
			continue
		}
		seen[c] = true
		m.Play(c)
	}
}

// Played returns how often cue c was requested.
func (m *Manager) Played(c Cue) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.played[c]
}

// Cleanup drops every queued sound and closes the speaker.
func (m *Manager) Cleanup() {
	m.mu.Lock()
	defer m.mu.Unlock()

	if !m.initialized {
		return
	}
	speaker.Lock()
	m.mixer.Clear()
	speaker.Unlock()
	speaker.Close()
	m.initialized = false
}
