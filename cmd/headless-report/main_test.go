package main

import (
	"testing"

	"github.com/leofattal/smoking-crack/internal/config"
	"github.com/leofattal/smoking-crack/internal/run"
	"github.com/leofattal/smoking-crack/internal/shop"
	"github.com/leofattal/smoking-crack/internal/sim"
)

func quietConfig() config.Config {
	cfg := config.Default()
	cfg.Balance.MaxAdversaries = 0
	cfg.Balance.PowerUpsMin = 0
	cfg.Balance.PowerUpsMax = 0
	return cfg
}

func TestSummarize(t *testing.T) {
	all := []runStats{
		{seed: 1, days: 3, busts: 1, earnings: 300, gameOver: true},
		{seed: 2, days: 5, busts: 1, earnings: 900, duelsWon: 2},
		{seed: 3, days: 4, earnings: 500, knockouts: 3},
	}
	a := summarize(all)
	if a.runs != 3 || a.gameOvers != 1 {
		t.Fatalf("runs=%d game_overs=%d", a.runs, a.gameOvers)
	}
	if a.avgDays != 4 || a.bustsPerDay != 2.0/12 {
		t.Fatalf("avg_days=%.2f busts_per_day=%.3f", a.avgDays, a.bustsPerDay)
	}
	if a.medEarnings != 500 || a.bestEarnings != 900 || a.bestSeed != 2 {
		t.Fatalf("median=%d best=%d seed=%d", a.medEarnings, a.bestEarnings, a.bestSeed)
	}
	if a.duelsWon != 2 || a.knockouts != 3 {
		t.Fatalf("duels=%d knockouts=%d", a.duelsWon, a.knockouts)
	}
	if empty := summarize(nil); empty.runs != 0 || empty.avgDays != 0 {
		t.Fatalf("empty aggregate: %+v", empty)
	}
}

func TestPlayRun_QuietDaysChain(t *testing.T) {
	rs, err := playRun(1, quietConfig(), 2, false)
	if err != nil {
		t.Fatal(err)
	}
	if rs.gameOver || rs.days != 2 || rs.lastDay != 2 {
		t.Fatalf("days=%d last=%d game_over=%v", rs.days, rs.lastDay, rs.gameOver)
	}
	if len(rs.reports) != 2 || rs.busts != 0 {
		t.Fatalf("reports=%d busts=%d", len(rs.reports), rs.busts)
	}
}

func TestShopCheapest_SpendsDown(t *testing.T) {
	r, err := run.New(quietConfig())
	if err != nil {
		t.Fatal(err)
	}
	for r.Screen() == run.ScreenPlaying {
		if _, err := r.Update(100, sim.Input{}); err != nil {
			t.Fatal(err)
		}
	}
	r.State().Cash = 250
	bought := shopCheapest(r)
	if len(bought) == 0 {
		t.Fatal("expected at least one purchase")
	}
	for _, o := range r.Offers() {
		if o.Cost > 0 && o.Affordable(r.State()) && o.Kind != shop.KindSkin {
			t.Fatalf("left an affordable offer: %+v", o)
		}
	}
}
