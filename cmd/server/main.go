package main

import (
	"context"
	"errors"
	"flag"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/leofattal/smoking-crack/internal/broadcast"
	"github.com/leofattal/smoking-crack/internal/config"
	"github.com/leofattal/smoking-crack/internal/run"
)

func main() {
	var addr string
	var cfgPath string
	var seed int64

	flag.StringVar(&addr, "addr", ":8080", "listen address")
	flag.StringVar(&cfgPath, "config", "", "optional YAML config file")
	flag.Int64Var(&seed, "seed", 0, "RNG seed (0 keeps the config seed)")
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

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	srv := broadcast.NewServer(r, log.Default())
	httpSrv := &http.Server{
		Addr:              addr,
		Handler:           srv.Handler(),
		ReadHeaderTimeout: 5 * time.Second,
	}
	go func() {
		log.Printf("listening on ws://localhost%s/ws", addr)
		if err := httpSrv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("http: %v", err)
		}
	}()

	if err := srv.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		log.Printf("sim: %v", err)
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := httpSrv.Shutdown(shutdownCtx); err != nil {
		log.Printf("shutdown: %v", err)
	}
}
