package game

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/leofattal/smoking-crack/internal/sim"
)

// speechLifetimeMs is how long a speech bubble stays visible.
const speechLifetimeMs = 2500

// speechCooldownMs is the minimum gap between two lines from the same speaker.
const speechCooldownMs = 4000

// playerSpeaker marks a bubble anchored to the player.
const playerSpeaker = -1

var (
	highLines = []string{
		"Damn, this stuff hits hard",
		"More gas!",
		"I am speed!",
		"Can't nobody stop me now!",
		"Oh yeah, that's the good stuff",
	}
	chaseLines = []string{
		"Stop right there!",
		"You're under arrest!",
		"I see you! Don't move!",
		"Freeze, punk!",
		"Come here!",
	}
	knockoutLines = []string{
		"Bruh, you're strong.",
		"I regret that.",
		"What the hell!?",
		"He's too fast!",
		"I need backup!",
		"My badge!!",
		"Officer down!",
		"You're gonna pay for this!",
	}
)

// Voices picks lines for the speakers on screen. It draws from its own
// source so chatter never shifts the simulation's random sequence.
type Voices struct {
	rng      sim.Rand
	lastSaid map[int]float64 // speaker → clock at last line
	clockMs  float64
}

// NewVoices creates a line picker.
func NewVoices(rng sim.Rand) *Voices {
	return &Voices{rng: rng, lastSaid: make(map[int]float64)}
}

// Line returns what speaker says about e, or false when e is not worth a
// line or the speaker spoke too recently.
func (v *Voices) Line(e sim.Event) (speaker int, line string, ok bool) {
	var pool []string
	speaker = e.Adversary
	switch e.Kind {
	case sim.EventHighStarted:
		pool, speaker = highLines, playerSpeaker
	case sim.EventPursuitAnnounced:
		pool = chaseLines
	case sim.EventKnockout:
		pool = knockoutLines
	default:
		return 0, "", false
	}
	// Knockouts always get a line.
	if last, said := v.lastSaid[speaker]; said && e.Kind != sim.EventKnockout && v.clockMs-last < speechCooldownMs {
		return 0, "", false
	}
	v.lastSaid[speaker] = v.clockMs
	return speaker, pool[v.rng.Intn(len(pool))], true
}

// Advance moves the cooldown clock.
func (v *Voices) Advance(dtMs float64) { v.clockMs += dtMs }

// Reset forgets every cooldown, for a new day.
func (v *Voices) Reset() { clear(v.lastSaid) }

// SpeechBubble holds an active line above a speaker.
type SpeechBubble struct {
	speaker int // adversary id, or playerSpeaker
	text    string
	ageMs   float64
}

// say turns e into a bubble when the speaker has something to say.
func (g *Game) say(e sim.Event) {
	speaker, line, ok := g.voices.Line(e)
	if !ok {
		return
	}
	// One bubble per speaker; a new line replaces the old one.
	for _, b := range g.speechBubbles {
		if b.speaker == speaker {
			b.text, b.ageMs = line, 0
			return
		}
	}
	g.speechBubbles = append(g.speechBubbles, &SpeechBubble{speaker: speaker, text: line})
}

// ageSpeech ages bubbles and prunes expired ones.
func (g *Game) ageSpeech(dtMs float64) {
	g.voices.Advance(dtMs)
	kept := g.speechBubbles[:0]
	for _, b := range g.speechBubbles {
		b.ageMs += dtMs
		if b.ageMs < speechLifetimeMs {
			kept = append(kept, b)
		}
	}
	g.speechBubbles = kept
}

// speakerPos returns the pixel center of speaker in s.
func (g *Game) speakerPos(s sim.Snapshot, speaker int) (float32, float32, bool) {
	if speaker == playerSpeaker {
		x, y := g.tileCenter(s.Player.X, s.Player.Y)
		return x, y, true
	}
	for _, a := range s.Adversaries {
		if a.ID == speaker && a.Visible {
			x, y := g.tileCenter(a.X, a.Y)
			return x, y, true
		}
	}
	return 0, 0, false
}

// drawSpeechBubbles renders active bubbles above their speakers.
func (g *Game) drawSpeechBubbles(screen *ebiten.Image, s sim.Snapshot) {
	const padX = 5
	const padY = 3

	for _, b := range g.speechBubbles {
		sx, sy, ok := g.speakerPos(s, b.speaker)
		if !ok {
			continue
		}
		progress := b.ageMs / speechLifetimeMs
		alpha := float32(1.0)
		if progress > 0.70 {
			alpha = float32(1.0 - (progress-0.70)/0.30)
		}
		if alpha < 0.05 {
			continue
		}

		bgW := float32(len(b.text)*charWidth + padX*2)
		bgH := float32(lineHeight + padY*2)
		bgX := sx - bgW/2
		bgY := sy - tileSize/2 - bgH - 6

		vector.FillRect(screen, bgX, bgY, bgW, bgH, color.RGBA{R: 20, G: 18, B: 24, A: uint8(210 * alpha)}, false)

		// Accent stripe: gold for the player, red for cops.
		accent := color.RGBA{R: 220, G: 55, B: 40, A: uint8(220 * alpha)}
		if b.speaker == playerSpeaker {
			accent = color.RGBA{R: 240, G: 200, B: 40, A: uint8(220 * alpha)}
		}
		vector.FillRect(screen, bgX, bgY, 3, bgH, accent, false)
		vector.StrokeRect(screen, bgX, bgY, bgW, bgH, 0.5,
			color.RGBA{R: 100, G: 100, B: 100, A: uint8(80 * alpha)}, false)

		drawText(screen, b.text, float64(bgX+padX), float64(bgY+padY),
			color.RGBA{R: 230, G: 230, B: 220, A: uint8(255 * alpha)})

		vector.StrokeLine(screen, sx, bgY+bgH, sx, sy-tileSize/3,
			0.5, color.RGBA{R: 100, G: 100, B: 100, A: uint8(60 * alpha)}, false)
	}
}
