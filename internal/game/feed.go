package game

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/leofattal/smoking-crack/internal/sim"
)

const (
	feedPanelWidth = 340
	feedMaxEntries = 60
	feedLineHeight = lineHeight
)

// FeedEntry is a single line in the event feed.
type FeedEntry struct {
	Tick     int
	Actor    string // "P", "C0".."Cn", or "--"
	Category string
	Message  string
}

// EventFeed is a ring buffer of recent events rendered beside the maze.
type EventFeed struct {
	entries []FeedEntry
	head    int
	count   int
}

// NewEventFeed creates a feed with a fixed capacity.
func NewEventFeed() *EventFeed {
	return &EventFeed{
		entries: make([]FeedEntry, feedMaxEntries),
	}
}

// Add appends an entry to the feed.
func (f *EventFeed) Add(tick int, actor, category, msg string) {
	f.entries[f.head] = FeedEntry{
		Tick:     tick,
		Actor:    actor,
		Category: category,
		Message:  msg,
	}
	f.head = (f.head + 1) % feedMaxEntries
	if f.count < feedMaxEntries {
		f.count++
	}
}

// AddEvent appends a simulation event.
func (f *EventFeed) AddEvent(e sim.Event) {
	actor := "P"
	if e.Adversary >= 0 {
		actor = fmt.Sprintf("C%d", e.Adversary)
	}
	f.Add(e.Tick, actor, e.Kind.Category(), e.Describe())
}

// AddNote appends a frontend message that has no event behind it.
func (f *EventFeed) AddNote(tick int, actor, msg string) {
	f.Add(tick, actor, "note", msg)
}

// Recent returns entries in chronological order (oldest first).
func (f *EventFeed) Recent() []FeedEntry {
	result := make([]FeedEntry, f.count)
	for i := 0; i < f.count; i++ {
		idx := (f.head - f.count + i + feedMaxEntries) % feedMaxEntries
		result[i] = f.entries[idx]
	}
	return result
}

// categoryColor tints the marker beside each entry.
func categoryColor(category string) color.RGBA {
	switch category {
	case "economy":
		return color.RGBA{R: 80, G: 200, B: 90, A: 255}
	case "modifier":
		return color.RGBA{R: 230, G: 200, B: 60, A: 255}
	case "adversary":
		return color.RGBA{R: 70, G: 110, B: 230, A: 255}
	case "terminal":
		return color.RGBA{R: 220, G: 60, B: 50, A: 255}
	default:
		return color.RGBA{R: 150, G: 150, B: 150, A: 255}
	}
}

// Draw renders the feed panel on the right side of the screen.
func (f *EventFeed) Draw(screen *ebiten.Image, panelX int, panelH int) {
	vector.FillRect(screen, float32(panelX), 0, float32(feedPanelWidth), float32(panelH), color.RGBA{R: 14, G: 10, B: 16, A: 248}, false)
	vector.StrokeLine(screen, float32(panelX), 0, float32(panelX), float32(panelH), 1.0, color.RGBA{R: 70, G: 50, B: 80, A: 255}, false)

	vector.FillRect(screen, float32(panelX), 0, float32(feedPanelWidth), 18, color.RGBA{R: 30, G: 20, B: 36, A: 255}, false)
	drawText(screen, "STREET FEED", float64(panelX+8), 2, colText)
	vector.StrokeLine(screen, float32(panelX), 18, float32(panelX+feedPanelWidth), 18, 1.0, color.RGBA{R: 80, G: 50, B: 90, A: 200}, false)

	entries := f.Recent()

	// Newest at the bottom.
	maxVisible := (panelH - 24) / feedLineHeight
	startIdx := 0
	if len(entries) > maxVisible {
		startIdx = len(entries) - maxVisible
	}
	visible := entries[startIdx:]
	recent := 3

	y := 22
	for i, e := range visible {
		isRecent := i >= len(visible)-recent
		if isRecent {
			vector.FillRect(screen, float32(panelX+2), float32(y), float32(feedPanelWidth-4), float32(feedLineHeight), color.RGBA{R: 36, G: 28, B: 40, A: 160}, false)
		}
		vector.FillRect(screen, float32(panelX+5), float32(y+4), 3, 6, categoryColor(e.Category), false)

		c := colDim
		if isRecent {
			c = colText
		}
		drawText(screen, fmt.Sprintf("%4d [%s] %s", e.Tick, e.Actor, e.Message), float64(panelX+12), float64(y), c)
		y += feedLineHeight
	}
}
