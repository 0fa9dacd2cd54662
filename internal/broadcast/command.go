package broadcast

import (
	"encoding/json"
	"fmt"

	"github.com/leofattal/smoking-crack/internal/shop"
	"github.com/leofattal/smoking-crack/internal/sim"
)

// Message is the envelope of every frame in both directions.
type Message struct {
	Type    string          `json:"type"`
	Payload json.RawMessage `json:"payload,omitempty"`
}

// Inbound message types.
const (
	TypeInput    = "input"
	TypeFire     = "fire"
	TypeBuy      = "buy"
	TypeContinue = "continue"
	TypeRestart  = "restart"
)

// Outbound message types.
const (
	TypeView   = "view"
	TypeEvents = "events"
	TypeError  = "error"
)

// Command is a decoded client request.
type Command struct {
	Type  string
	Input sim.Input
	Kind  shop.Kind
	ID    string
}

type inputPayload struct {
	Direction     string `json:"direction"`
	UseConsumable bool   `json:"use_consumable"`
}

type buyPayload struct {
	Kind string `json:"kind"`
	ID   string `json:"id"`
}

// DecodeCommand parses one client frame.
func DecodeCommand(data []byte) (Command, error) {
	var m Message
	if err := json.Unmarshal(data, &m); err != nil {
		return Command{}, fmt.Errorf("decode command: %w", err)
	}
	cmd := Command{Type: m.Type}
	switch m.Type {
	case TypeInput:
		var p inputPayload
		if err := json.Unmarshal(m.Payload, &p); err != nil {
			return Command{}, fmt.Errorf("decode input: %w", err)
		}
		cmd.Input = sim.Input{Direction: sim.ParseDirection(p.Direction), UseConsumable: p.UseConsumable}
	case TypeBuy:
		var p buyPayload
		if err := json.Unmarshal(m.Payload, &p); err != nil {
			return Command{}, fmt.Errorf("decode buy: %w", err)
		}
		k, err := shop.ParseKind(p.Kind)
		if err != nil {
			return Command{}, err
		}
		cmd.Kind, cmd.ID = k, p.ID
	case TypeFire, TypeContinue, TypeRestart:
	default:
		return Command{}, fmt.Errorf("decode command: unknown type %q", m.Type)
	}
	return cmd, nil
}

// encode wraps v in an envelope.
func encode(typ string, v any) ([]byte, error) {
	payload, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("encode %s: %w", typ, err)
	}
	return json.Marshal(Message{Type: typ, Payload: payload})
}
