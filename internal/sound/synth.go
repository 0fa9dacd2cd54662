package sound

import (
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
)

// Wave is an oscillator shape.
type Wave int

const (
	WaveSine Wave = iota
	WaveSquare
	WaveSaw
	WaveNoise
)

// tone is a fixed-length oscillator whose frequency slides linearly from
// freq to endFreq.
type tone struct {
	freq     float64
	endFreq  float64
	wave     Wave
	phase    float64
	position int
	total    int
	rate     beep.SampleRate
	noise    uint32
}

func newTone(freq, endFreq float64, d time.Duration, w Wave, rate beep.SampleRate) *tone {
	return &tone{freq: freq, endFreq: endFreq, wave: w, total: rate.N(d), rate: rate, noise: 0x9e3779b9}
}

func (t *tone) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if t.position >= t.total {
			return i, i > 0
		}
		var val float64
		switch t.wave {
		case WaveSine:
			val = math.Sin(2 * math.Pi * t.phase)
		case WaveSquare:
			val = 1
			if t.phase >= 0.5 {
				val = -1
			}
		case WaveSaw:
			val = 2 * (t.phase - 0.5)
		case WaveNoise:
			// xorshift keeps cues reproducible
			t.noise ^= t.noise << 13
			t.noise ^= t.noise >> 17
			t.noise ^= t.noise << 5
			val = float64(t.noise)/float64(math.MaxUint32)*2 - 1
		}
		samples[i][0] = val
		samples[i][1] = val

		frac := float64(t.position) / float64(t.total)
		f := t.freq + (t.endFreq-t.freq)*frac
		t.phase += f / float64(t.rate)
		t.phase -= math.Floor(t.phase)
		t.position++
	}
	return len(samples), true
}

func (t *tone) Err() error { return nil }

// envelope shapes a streamer with a linear attack and release.
type envelope struct {
	streamer beep.Streamer
	position int
	attack   int
	release  int
	total    int
}

func shape(s beep.Streamer, d, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	return &envelope{
		streamer: s,
		attack:   rate.N(attack),
		release:  rate.N(release),
		total:    rate.N(d),
	}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.streamer.Stream(samples)
	for i := 0; i < n; i++ {
		if e.position >= e.total {
			return i, i > 0
		}
		vol := 1.0
		if e.position < e.attack && e.attack > 0 {
			vol = float64(e.position) / float64(e.attack)
		}
		if left := e.total - e.position; left < e.release && e.release > 0 {
			vol = float64(left) / float64(e.release)
		}
		samples[i][0] *= vol
		samples[i][1] *= vol
		e.position++
	}
	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// volume scales s linearly; 0 is silent.
func volume(s beep.Streamer, v float64) beep.Streamer {
	if v <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(v)}
}

// note is one shaped tone.
func note(freq, endFreq float64, d time.Duration, w Wave, rate beep.SampleRate) beep.Streamer {
	return shape(newTone(freq, endFreq, d, w, rate), d, 5*time.Millisecond, d/2, rate)
}
