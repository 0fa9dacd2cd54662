package main

import (
	"flag"
	"fmt"
	"os"
	"sort"

	"github.com/leofattal/smoking-crack/internal/config"
	"github.com/leofattal/smoking-crack/internal/run"
	"github.com/leofattal/smoking-crack/internal/shop"
	"github.com/leofattal/smoking-crack/internal/sim"
	"github.com/leofattal/smoking-crack/internal/standoff"
)

type runStats struct {
	runIndex int
	seed     int64

	days      int // days started
	lastDay   int
	gameOver  bool
	earnings  int
	cash      int
	lives     int
	busts     int
	duelsWon  int
	knockouts int
	getaways  int
	pursuits  int
	peakHeat  float64
	purchases []string
	reports   []sim.DayReport
}

func main() {
	var runs int
	var days int
	var seedBase int64
	var seedStep int64
	var cfgPath string
	var spend bool
	var verbose bool

	flag.IntVar(&runs, "runs", 5, "number of headless runs")
	flag.IntVar(&days, "days", 5, "maximum days per run")
	flag.Int64Var(&seedBase, "seed-base", 42, "base RNG seed for run 1")
	flag.Int64Var(&seedStep, "seed-step", 1, "seed increment between runs")
	flag.StringVar(&cfgPath, "config", "", "optional YAML config file")
	flag.BoolVar(&spend, "shop", true, "buy the cheapest affordable offer between days")
	flag.BoolVar(&verbose, "v", false, "print every day report")
	flag.Parse()

	if runs <= 0 {
		fmt.Println("error: -runs must be > 0")
		os.Exit(2)
	}
	if days <= 0 {
		fmt.Println("error: -days must be > 0")
		os.Exit(2)
	}
	cfg, err := config.LoadOrDefault(cfgPath)
	if err != nil {
		fmt.Printf("error: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("=== Headless Street Report ===\n")
	fmt.Printf("runs=%d days=%d seed_base=%d seed_step=%d shop=%v\n\n", runs, days, seedBase, seedStep, spend)

	all := make([]runStats, 0, runs)
	for i := 0; i < runs; i++ {
		cfg.Seed = seedBase + int64(i)*seedStep
		rs, err := playRun(i+1, cfg, days, spend)
		if err != nil {
			fmt.Printf("error: run %d: %v\n", i+1, err)
			os.Exit(1)
		}
		all = append(all, rs)
		printRun(rs, verbose)
	}
	printAggregate(all)
}

// playRun plays up to days days with the autopilot. The pilot fires as
// soon as the draw is called and, when spend is set, buys between days.
func playRun(index int, cfg config.Config, days int, spend bool) (runStats, error) {
	rs := runStats{runIndex: index, seed: cfg.Seed}
	r, err := run.New(cfg)
	if err != nil {
		return rs, err
	}
	pilot := sim.Autopilot{}
	tickMs := cfg.TickMs()
	limit := int((cfg.Balance.CollectPhaseMs+cfg.Balance.SellPhaseMs)/tickMs) * 4

	rs.days = 1
	for {
		for i := 0; r.Screen() == run.ScreenPlaying || r.Screen() == run.ScreenStandoff; i++ {
			if i > limit {
				return rs, fmt.Errorf("day %d never ended", r.Day().Index())
			}
			in := sim.Input{}
			if r.Screen() == run.ScreenPlaying {
				in = pilot.Decide(r.Day())
			} else if d := r.Standoff(); d != nil && d.Stage() == standoff.StageDraw {
				if err := r.Fire(); err != nil {
					return rs, err
				}
			}
			if _, err := r.Update(tickMs, in); err != nil {
				return rs, err
			}
		}
		if r.Screen() == run.ScreenGameOver {
			rs.gameOver = true
			break
		}
		if rs.days >= days {
			break
		}
		if spend {
			rs.purchases = append(rs.purchases, shopCheapest(r)...)
		}
		if err := r.Continue(); err != nil {
			return rs, err
		}
		rs.days++
	}
	collect(&rs, r)
	return rs, nil
}

// shopCheapest buys the cheapest affordable offer until nothing is
// affordable. Cosmetic skins are skipped.
func shopCheapest(r *run.Run) []string {
	var bought []string
	for {
		offers := r.Offers()
		sort.SliceStable(offers, func(i, j int) bool { return offers[i].Cost < offers[j].Cost })
		var pick *shop.Offer
		for i := range offers {
			o := &offers[i]
			if o.Kind != shop.KindSkin && o.Cost > 0 && o.Affordable(r.State()) {
				pick = o
				break
			}
		}
		if pick == nil {
			return bought
		}
		if err := r.Buy(pick.Kind, pick.ID); err != nil {
			return bought
		}
		bought = append(bought, pick.Name)
	}
}

func collect(rs *runStats, r *run.Run) {
	st := r.State()
	rs.lastDay = r.Day().Index()
	rs.earnings = st.TotalEarnings
	rs.cash = st.Cash
	rs.lives = st.Lives
	rs.reports = r.Reports()
	for _, rep := range rs.reports {
		switch rep.Outcome {
		case sim.OutcomeBusted, sim.OutcomeConfrontationLost, sim.OutcomeGameOver:
			rs.busts++
		}
		rs.duelsWon += rep.ConfrontationsWon
		rs.knockouts += rep.Knockouts
		rs.getaways += rep.Getaways
		rs.pursuits += rep.Pursuits
		rs.peakHeat = max(rs.peakHeat, rep.PeakHeat)
	}
}

func printRun(rs runStats, verbose bool) {
	fmt.Printf("--- Run %d (seed=%d) ---\n", rs.runIndex, rs.seed)
	fmt.Printf("days=%d last_day=%d game_over=%v earnings=$%d cash=$%d lives=%d\n",
		rs.days, rs.lastDay, rs.gameOver, rs.earnings, rs.cash, rs.lives)
	fmt.Printf("street: busts=%d duels_won=%d knockouts=%d getaways=%d pursuits=%d peak_heat=%.1f\n",
		rs.busts, rs.duelsWon, rs.knockouts, rs.getaways, rs.pursuits, rs.peakHeat)
	if len(rs.purchases) > 0 {
		fmt.Printf("purchases: %v\n", rs.purchases)
	}
	if verbose {
		for _, rep := range rs.reports {
			fmt.Print(rep.Format())
		}
	}
	fmt.Println()
}

type aggregate struct {
	runs         int
	gameOvers    int
	avgDays      float64
	avgEarnings  float64
	medEarnings  int
	bustsPerDay  float64
	duelsWon     int
	knockouts    int
	bestSeed     int64
	bestEarnings int
}

func summarize(all []runStats) aggregate {
	a := aggregate{runs: len(all)}
	if len(all) == 0 {
		return a
	}
	earnings := make([]int, 0, len(all))
	totalDays, totalBusts := 0, 0
	a.bestEarnings = -1
	for _, rs := range all {
		if rs.gameOver {
			a.gameOvers++
		}
		totalDays += rs.days
		totalBusts += rs.busts
		a.duelsWon += rs.duelsWon
		a.knockouts += rs.knockouts
		earnings = append(earnings, rs.earnings)
		if rs.earnings > a.bestEarnings {
			a.bestEarnings, a.bestSeed = rs.earnings, rs.seed
		}
	}
	sort.Ints(earnings)
	sum := 0
	for _, e := range earnings {
		sum += e
	}
	a.avgDays = float64(totalDays) / float64(len(all))
	a.avgEarnings = float64(sum) / float64(len(all))
	a.medEarnings = earnings[len(earnings)/2]
	if totalDays > 0 {
		a.bustsPerDay = float64(totalBusts) / float64(totalDays)
	}
	return a
}

func printAggregate(all []runStats) {
	a := summarize(all)
	fmt.Printf("=== Aggregate ===\n")
	fmt.Printf("runs=%d game_overs=%d avg_days=%.2f busts_per_day=%.2f\n", a.runs, a.gameOvers, a.avgDays, a.bustsPerDay)
	fmt.Printf("earnings: avg=$%.0f median=$%d best=$%d (seed=%d)\n", a.avgEarnings, a.medEarnings, a.bestEarnings, a.bestSeed)
	fmt.Printf("duels_won=%d knockouts=%d\n", a.duelsWon, a.knockouts)
}
