package broadcast

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"

	"github.com/leofattal/smoking-crack/internal/config"
	"github.com/leofattal/smoking-crack/internal/run"
	"github.com/leofattal/smoking-crack/internal/shop"
	"github.com/leofattal/smoking-crack/internal/sim"
)

func TestDecodeCommand(t *testing.T) {
	cases := []struct {
		name    string
		frame   string
		want    Command
		wantErr bool
	}{
		{"input", `{"type":"input","payload":{"direction":"left","use_consumable":true}}`,
			Command{Type: TypeInput, Input: sim.Input{Direction: sim.DirLeft, UseConsumable: true}}, false},
		{"unknown direction", `{"type":"input","payload":{"direction":"sideways"}}`,
			Command{Type: TypeInput}, false},
		{"buy", `{"type":"buy","payload":{"kind":"skin","id":"ice_blue"}}`,
			Command{Type: TypeBuy, Kind: shop.KindSkin, ID: "ice_blue"}, false},
		{"fire", `{"type":"fire"}`, Command{Type: TypeFire}, false},
		{"bad kind", `{"type":"buy","payload":{"kind":"car","id":"x"}}`, Command{}, true},
		{"bad type", `{"type":"teleport"}`, Command{}, true},
		{"not json", `up`, Command{}, true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := DecodeCommand([]byte(tc.frame))
			if (err != nil) != tc.wantErr {
				t.Fatalf("err = %v, wantErr %v", err, tc.wantErr)
			}
			if got != tc.want {
				t.Fatalf("got %+v want %+v", got, tc.want)
			}
		})
	}
}

type frame struct {
	Type    string          `json:"type"`
	Payload json.RawMessage `json:"payload"`
}

// readUntil reads frames until one of type typ arrives.
func readUntil(t *testing.T, conn *websocket.Conn, typ string) frame {
	t.Helper()
	conn.SetReadDeadline(time.Now().Add(5 * time.Second))
	for {
		_, data, err := conn.ReadMessage()
		if err != nil {
			t.Fatalf("waiting for %s: %v", typ, err)
		}
		var f frame
		if err := json.Unmarshal(data, &f); err != nil {
			t.Fatalf("bad frame %s: %v", data, err)
		}
		if f.Type == typ {
			return f
		}
	}
}

func startServer(t *testing.T) (*httptest.Server, context.CancelFunc, <-chan error) {
	t.Helper()
	cfg := config.Default()
	cfg.Balance.MaxAdversaries = 0
	r, err := run.New(cfg)
	if err != nil {
		t.Fatal(err)
	}
	s := NewServer(r, log.New(io.Discard, "", 0))
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- s.Run(ctx) }()
	ts := httptest.NewServer(s.Handler())
	t.Cleanup(ts.Close)
	return ts, cancel, done
}

func TestServer_StreamsViewsAndRejectsWrongScreen(t *testing.T) {
	ts, cancel, done := startServer(t)

	url := "ws" + strings.TrimPrefix(ts.URL, "http") + "/ws"
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	if err != nil {
		t.Fatalf("dial: %v", err)
	}
	defer conn.Close()

	var v struct {
		Screen string `json:"screen"`
		Day    struct {
			Tick  int    `json:"tick"`
			Phase string `json:"phase"`
		} `json:"day"`
	}
	f := readUntil(t, conn, TypeView)
	if err := json.Unmarshal(f.Payload, &v); err != nil {
		t.Fatal(err)
	}
	if v.Screen != "playing" || v.Day.Phase != "collecting" {
		t.Fatalf("first view: %+v", v)
	}
	first := v.Day.Tick
	f = readUntil(t, conn, TypeView)
	json.Unmarshal(f.Payload, &v)
	if v.Day.Tick <= first {
		t.Fatalf("tick did not advance: %d then %d", first, v.Day.Tick)
	}

	err = conn.WriteMessage(websocket.TextMessage, []byte(`{"type":"buy","payload":{"kind":"upgrade","id":"lookout"}}`))
	if err != nil {
		t.Fatal(err)
	}
	f = readUntil(t, conn, TypeError)
	var msg string
	json.Unmarshal(f.Payload, &msg)
	if !strings.Contains(msg, "not available") {
		t.Fatalf("error frame: %q", msg)
	}

	cancel()
	select {
	case err := <-done:
		if !errors.Is(err, context.Canceled) {
			t.Fatalf("Run returned %v", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("Run did not stop")
	}
}

func TestServer_Healthz(t *testing.T) {
	ts, cancel, _ := startServer(t)
	defer cancel()
	resp, err := http.Get(ts.URL + "/healthz")
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()
	body, _ := io.ReadAll(resp.Body)
	if resp.StatusCode != http.StatusOK || string(body) != "ok" {
		t.Fatalf("healthz: %d %q", resp.StatusCode, body)
	}
}
