package run

import (
	"github.com/leofattal/smoking-crack/internal/shop"
	"github.com/leofattal/smoking-crack/internal/sim"
	"github.com/leofattal/smoking-crack/internal/standoff"
)

// StandoffView is the duel as a remote viewer sees it.
type StandoffView struct {
	Gun        string           `json:"gun"`
	Stage      standoff.Stage   `json:"stage"`
	Countdown  int              `json:"countdown"`
	DrawLeftMs float64          `json:"draw_left_ms"`
	Outcome    standoff.Outcome `json:"outcome"`
	Line       string           `json:"line,omitempty"`
}

// View is a self-contained copy of everything a frontend draws. It shares
// no memory with the Run.
type View struct {
	Screen   Screen         `json:"screen"`
	Day      sim.Snapshot   `json:"day"`
	Standoff *StandoffView  `json:"standoff,omitempty"`
	Offers   []shop.Offer   `json:"offers,omitempty"`
	Report   *sim.DayReport `json:"report,omitempty"`
	Gun      string         `json:"gun"`
	Skin     string         `json:"skin"`
}

// View captures the current screen.
func (r *Run) View() View {
	st := r.session.State()
	v := View{
		Screen: r.screen,
		Day:    r.day.Snapshot(),
		Gun:    st.Gun,
		Skin:   st.Skin,
	}
	if s := r.duel; s != nil {
		v.Standoff = &StandoffView{
			Gun:        s.Gun().Name,
			Stage:      s.Stage(),
			Countdown:  s.Countdown(),
			DrawLeftMs: s.DrawLeftMs(),
			Outcome:    s.Outcome(),
			Line:       s.Line(),
		}
	}
	if r.screen == ScreenShop {
		v.Offers = r.Offers()
	}
	if r.screen == ScreenShop || r.screen == ScreenGameOver {
		if rep, ok := r.LastReport(); ok {
			v.Report = &rep
		}
	}
	return v
}
