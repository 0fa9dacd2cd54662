package broadcast

import (
	"context"
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/leofattal/smoking-crack/internal/run"
	"github.com/leofattal/smoking-crack/internal/sim"
)

// Server steps a run on a fixed tick and publishes a view after each one.
type Server struct {
	hub    *Hub
	run    *run.Run
	tickMs float64
	input  sim.Input // intents gathered since the last tick
	logger *log.Logger
}

// NewServer wires r to a fresh hub. A nil logger uses log.Default.
func NewServer(r *run.Run, logger *log.Logger) *Server {
	if logger == nil {
		logger = log.Default()
	}
	return &Server{
		hub:    NewHub(logger),
		run:    r,
		tickMs: r.Config().TickMs(),
		logger: logger,
	}
}

// Handler routes /ws to the hub and answers /healthz.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/ws", s.hub.ServeWS)
	mux.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	})
	return mux
}

// Run drives the simulation until ctx is done. It is the only goroutine
// that touches the run.
func (s *Server) Run(ctx context.Context) error {
	go s.hub.Run(ctx)

	ticker := time.NewTicker(time.Duration(s.tickMs * float64(time.Millisecond)))
	defer ticker.Stop()
	s.logger.Printf("sim: running at %.1fms per tick", s.tickMs)
	for {
		select {
		case <-ctx.Done():
			s.logger.Printf("sim: stopped on day %d", s.run.Day().Index())
			return ctx.Err()
		case cmd := <-s.hub.Commands():
			s.apply(ctx, cmd)
		case <-ticker.C:
			if err := s.step(ctx); err != nil {
				return err
			}
		}
	}
}

func (s *Server) apply(ctx context.Context, cmd Command) {
	var err error
	switch cmd.Type {
	case TypeInput:
		if cmd.Input.Direction != sim.DirNone {
			s.input.Direction = cmd.Input.Direction
		}
		s.input.UseConsumable = s.input.UseConsumable || cmd.Input.UseConsumable
	case TypeFire:
		err = s.run.Fire()
	case TypeBuy:
		err = s.run.Buy(cmd.Kind, cmd.ID)
	case TypeContinue:
		err = s.run.Continue()
	case TypeRestart:
		err = s.run.Restart()
	}
	if err != nil {
		s.publish(ctx, TypeError, err.Error())
		return
	}
	if cmd.Type != TypeInput {
		s.publish(ctx, TypeView, s.run.View())
	}
}

func (s *Server) step(ctx context.Context) error {
	if s.run.Screen() != run.ScreenPlaying && s.run.Screen() != run.ScreenStandoff {
		return nil
	}
	events, err := s.run.Update(s.tickMs, s.input)
	s.input = sim.Input{}
	if err != nil {
		if errors.Is(err, sim.ErrInvariant) {
			s.logger.Printf("sim: %v", err)
		}
		return err
	}
	if len(events) > 0 {
		s.publish(ctx, TypeEvents, events)
	}
	s.publish(ctx, TypeView, s.run.View())
	return nil
}

func (s *Server) publish(ctx context.Context, typ string, v any) {
	msg, err := encode(typ, v)
	if err != nil {
		s.logger.Printf("sim: %v", err)
		return
	}
	s.hub.Publish(ctx, msg)
}
