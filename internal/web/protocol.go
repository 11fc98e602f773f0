package web

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/tomz197/neonroids/internal/game"
	"github.com/tomz197/neonroids/internal/loop/server"
)

// Client message types.
const (
	MsgInput  = "input"
	MsgAction = "action"
)

// Actions carried by MsgAction.
const (
	ActionShop    = "shop"
	ActionBuy     = "buy"
	ActionRestart = "restart"
)

// Server message types.
const (
	MsgFrame    = "frame"
	MsgShutdown = "shutdown"
)

// ErrBadMessage is returned for client messages that cannot be applied.
var ErrBadMessage = errors.New("bad message")

// ClientMessage is sent by the browser. Input messages replace the held
// controls; action messages are applied once on the next tick.
type ClientMessage struct {
	Type    string       `json:"type"`
	Input   game.Intent  `json:"input"`
	Action  string       `json:"action,omitempty"`
	Upgrade game.Upgrade `json:"upgrade,omitempty"`
}

// ServerMessage is sent to the browser once per tick.
type ServerMessage struct {
	Type   string                `json:"type"`
	Frame  *game.Snapshot        `json:"frame,omitempty"`
	Events []EventMessage        `json:"events,omitempty"`
	Lobby  *server.LobbySnapshot `json:"lobby,omitempty"`
	Error  string                `json:"error,omitempty"`
}

// EventMessage wraps a game event with its kind.
type EventMessage struct {
	Kind string     `json:"kind"`
	Data game.Event `json:"data"`
}

// DecodeClientMessage parses and validates one client message.
func DecodeClientMessage(data []byte) (ClientMessage, error) {
	var msg ClientMessage
	if err := json.Unmarshal(data, &msg); err != nil {
		return ClientMessage{}, fmt.Errorf("%w: %w", ErrBadMessage, err)
	}
	switch msg.Type {
	case MsgInput:
	case MsgAction:
		switch msg.Action {
		case ActionShop, ActionRestart:
		case ActionBuy:
			if msg.Upgrade == 0 {
				return ClientMessage{}, fmt.Errorf("%w: buy without upgrade", ErrBadMessage)
			}
		default:
			return ClientMessage{}, fmt.Errorf("%w: unknown action %q", ErrBadMessage, msg.Action)
		}
	default:
		return ClientMessage{}, fmt.Errorf("%w: unknown type %q", ErrBadMessage, msg.Type)
	}
	return msg, nil
}

// appendEvents converts world events, which are only valid until the next
// world call, into owned messages.
func appendEvents(dst []EventMessage, events []game.Event) []EventMessage {
	for _, e := range events {
		dst = append(dst, EventMessage{Kind: eventKind(e), Data: e})
	}
	return dst
}

func eventKind(e game.Event) string {
	switch e.(type) {
	case game.AsteroidDestroyed:
		return "asteroidDestroyed"
	case game.ScoreChanged:
		return "scoreChanged"
	case game.MoneyChanged:
		return "moneyChanged"
	case game.LifeLost:
		return "lifeLost"
	case game.LevelUp:
		return "levelUp"
	case game.GameOver:
		return "gameOver"
	case game.Restarted:
		return "restarted"
	case game.UpgradePurchased:
		return "upgradePurchased"
	case game.ShopToggled:
		return "shopToggled"
	default:
		return "unknown"
	}
}
