// Package terminal plays a run in a text terminal through tcell.
package terminal

import (
	"fmt"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/leofattal/smoking-crack/internal/run"
	"github.com/leofattal/smoking-crack/internal/shop"
	"github.com/leofattal/smoking-crack/internal/sim"
	"github.com/leofattal/smoking-crack/internal/sound"
)

const (
	frameInterval = 16 * time.Millisecond
	feedLines     = 8
)

// Frontend turns keys into intents, steps the run and draws it.
type Frontend struct {
	screen tcell.Screen
	run    *run.Run
	sound  *sound.Manager

	input      sim.Input // intent for the next tick
	feed       []string
	status     string
	shopCursor int
	quit       bool
}

// New wraps an initialized screen. snd may be nil.
func New(screen tcell.Screen, r *run.Run, snd *sound.Manager) *Frontend {
	if snd == nil {
		snd = sound.NewManager()
	}
	return &Frontend{screen: screen, run: r, sound: snd}
}

// Loop runs until the player quits. Input is read on its own goroutine;
// the run is only touched here.
func (f *Frontend) Loop() error {
	events := make(chan tcell.Event, 100)
	go func() {
		for {
			ev := f.screen.PollEvent()
			if ev == nil {
				return
			}
			events <- ev
		}
	}()

	ticker := time.NewTicker(frameInterval)
	defer ticker.Stop()
	last := time.Now()
	for !f.quit {
		select {
		case ev := <-events:
			f.HandleEvent(ev)
		case now := <-ticker.C:
			dt := float64(now.Sub(last)) / float64(time.Millisecond)
			last = now
			if err := f.Step(dt); err != nil {
				return err
			}
			f.Draw()
		}
	}
	return nil
}

// Quit reports whether the player asked to leave.
func (f *Frontend) Quit() bool { return f.quit }

// HandleEvent applies one terminal event.
func (f *Frontend) HandleEvent(ev tcell.Event) {
	switch ev := ev.(type) {
	case *tcell.EventResize:
		f.screen.Sync()
	case *tcell.EventKey:
		f.handleKey(ev)
	}
}

func (f *Frontend) handleKey(ev *tcell.EventKey) {
	if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC ||
		(ev.Key() == tcell.KeyRune && ev.Rune() == 'q') {
		f.quit = true
		return
	}
	if ev.Key() == tcell.KeyRune && ev.Rune() == 'm' {
		f.sound.SetMuted(!f.sound.Muted())
		return
	}

	switch f.run.Screen() {
	case run.ScreenPlaying:
		if d := directionFor(ev); d != sim.DirNone {
			f.input.Direction = d
		}
		if ev.Key() == tcell.KeyRune && ev.Rune() == ' ' {
			f.input.UseConsumable = true
		}
	case run.ScreenStandoff:
		if ev.Key() == tcell.KeyEnter || (ev.Key() == tcell.KeyRune && (ev.Rune() == ' ' || ev.Rune() == 'f')) {
			f.report(f.run.Fire())
		}
	case run.ScreenShop:
		offers := f.run.Offers()
		switch {
		case ev.Key() == tcell.KeyUp || (ev.Key() == tcell.KeyRune && ev.Rune() == 'k'):
			f.shopCursor = (f.shopCursor + len(offers) - 1) % len(offers)
		case ev.Key() == tcell.KeyDown || (ev.Key() == tcell.KeyRune && ev.Rune() == 'j'):
			f.shopCursor = (f.shopCursor + 1) % len(offers)
		case ev.Key() == tcell.KeyEnter:
			o := offers[f.shopCursor]
			if err := f.run.Buy(o.Kind, o.ID); err != nil {
				f.report(err)
			} else {
				f.status = "bought " + o.Name
			}
		case ev.Key() == tcell.KeyRune && ev.Rune() == 'c':
			f.report(f.run.Continue())
			f.feed = nil
		}
	case run.ScreenGameOver:
		if ev.Key() == tcell.KeyEnter {
			f.report(f.run.Continue())
			f.feed = nil
		}
	}
}

func directionFor(ev *tcell.EventKey) sim.Direction {
	switch ev.Key() {
	case tcell.KeyUp:
		return sim.DirUp
	case tcell.KeyDown:
		return sim.DirDown
	case tcell.KeyLeft:
		return sim.DirLeft
	case tcell.KeyRight:
		return sim.DirRight
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'w', 'k':
			return sim.DirUp
		case 's', 'j':
			return sim.DirDown
		case 'a', 'h':
			return sim.DirLeft
		case 'd', 'l':
			return sim.DirRight
		}
	}
	return sim.DirNone
}

func (f *Frontend) report(err error) {
	if err != nil {
		f.status = err.Error()
		return
	}
	f.status = ""
}

// Step advances the run by dtMs and plays the resulting cues.
func (f *Frontend) Step(dtMs float64) error {
	events, err := f.run.Update(dtMs, f.input)
	f.input = sim.Input{}
	if err != nil {
		return fmt.Errorf("terminal: %w", err)
	}
	f.sound.HandleEvents(events)
	for _, e := range events {
		f.feed = append(f.feed, e.Describe())
	}
	if n := len(f.feed); n > feedLines {
		f.feed = f.feed[n-feedLines:]
	}
	return nil
}

// Feed returns the recent event lines, oldest first.
func (f *Frontend) Feed() []string { return append([]string(nil), f.feed...) }

// Status returns the last action message.
func (f *Frontend) Status() string { return f.status }

// selected returns the highlighted shop offer.
func (f *Frontend) selected() (shop.Offer, bool) {
	offers := f.run.Offers()
	if f.shopCursor < 0 || f.shopCursor >= len(offers) {
		return shop.Offer{}, false
	}
	return offers[f.shopCursor], true
}
