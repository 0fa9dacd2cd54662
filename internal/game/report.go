package game

import (
	"fmt"
	"strings"

	"github.com/atotto/clipboard"

	"github.com/leofattal/smoking-crack/internal/run"
)

// runReport renders every finished day plus the one in progress.
func runReport(r *run.Run) string {
	var sb strings.Builder
	st := r.State()
	fmt.Fprintf(&sb, "seed=%d  day=%d  cash=$%d  lives=%d  total=$%d  gun=%s  skin=%s\n",
		r.Config().Seed, st.Day, st.Cash, st.Lives, st.TotalEarnings, st.Gun, st.Skin)
	reports := r.Reports()
	for _, rep := range reports {
		sb.WriteString(rep.Format())
	}
	if r.Screen() == run.ScreenPlaying || r.Screen() == run.ScreenStandoff {
		cur := r.Day().Report()
		sb.WriteString(cur.Format())
	}
	return sb.String()
}

// copyReport puts the run report on the system clipboard.
func (g *Game) copyReport() {
	if err := g.clip(runReport(g.run)); err != nil {
		g.status = "copy failed: " + err.Error()
		return
	}
	g.feed.AddNote(g.run.Day().TickCount(), "--", "report copied")
}

// WithClipboard replaces the system clipboard, mainly for tests.
func WithClipboard(write func(string) error) Option {
	return func(g *Game) { g.clip = write }
}

var systemClipboard = clipboard.WriteAll
