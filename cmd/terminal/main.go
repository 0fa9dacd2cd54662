package main

import (
	"flag"
	"log"

	"github.com/gdamore/tcell/v2"

	"github.com/leofattal/smoking-crack/internal/config"
	"github.com/leofattal/smoking-crack/internal/run"
	"github.com/leofattal/smoking-crack/internal/sound"
	"github.com/leofattal/smoking-crack/internal/terminal"
)

func main() {
	var cfgPath string
	var seed int64
	var mute bool

	flag.StringVar(&cfgPath, "config", "", "optional YAML config file")
	flag.Int64Var(&seed, "seed", 0, "RNG seed (0 keeps the config seed)")
	flag.BoolVar(&mute, "mute", false, "start with sound off")
	flag.Parse()

	cfg, err := config.LoadOrDefault(cfgPath)
	if err != nil {
		log.Fatalf("config: %v", err)
	}
	if seed != 0 {
		cfg.Seed = seed
	}
	r, err := run.New(cfg)
	if err != nil {
		log.Fatalf("run: %v", err)
	}

	snd := sound.NewManager()
	if err := snd.Initialize(); err != nil {
		// non-fatal, play silent
		log.Printf("audio: %v", err)
	}
	defer snd.Cleanup()
	snd.SetMuted(mute)

	screen, err := tcell.NewScreen()
	if err != nil {
		log.Fatalf("screen: %v", err)
	}
	if err := screen.Init(); err != nil {
		log.Fatalf("screen: %v", err)
	}

	err = terminal.New(screen, r, snd).Loop()
	screen.Fini()
	if err != nil {
		log.Fatal(err)
	}
}
