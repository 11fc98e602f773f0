package web

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math/rand"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/coder/websocket"
	"golang.org/x/sync/errgroup"

	"github.com/tomz197/neonroids/internal/config"
	"github.com/tomz197/neonroids/internal/game"
	loopconfig "github.com/tomz197/neonroids/internal/loop/config"
	"github.com/tomz197/neonroids/internal/loop/server"
)

var (
	errClientGone     = errors.New("client disconnected")
	errServerShutdown = errors.New("server shutting down")
)

// SessionOptions configures a browser session.
type SessionOptions struct {
	Username     string
	Rules        config.Rules
	TickInterval time.Duration // Defaults to the web tick rate
	Logger       *log.Logger
	Rand         *rand.Rand
	Clock        game.Clock
}

// Session plays one world for one browser connection. A reader goroutine
// records the latest controls; a ticker goroutine steps the world and
// streams one frame per tick.
type Session struct {
	transport Transport
	registry  server.Registry
	handle    *server.SessionHandle
	world     *game.World
	interval  time.Duration
	logger    *log.Logger

	mu      sync.Mutex
	intent  game.Intent
	fire    bool // Press seen since the last tick
	actions []ClientMessage
}

// NewSession registers a session with reg.
func NewSession(t Transport, reg server.Registry, opts SessionOptions) *Session {
	interval := opts.TickInterval
	if interval <= 0 {
		interval = loopconfig.WebTickTime
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.Default()
	}
	handle := reg.RegisterSession(opts.Username, "web")
	return &Session{
		transport: t,
		registry:  reg,
		handle:    handle,
		world:     game.NewWorld(opts.Rules, opts.Rand, opts.Clock),
		interval:  interval,
		logger:    logger.With("session", handle.ID.String(), "user", handle.Username),
	}
}

// Run serves the session until the client leaves, the server shuts down or
// ctx is cancelled. Those endings return nil.
func (s *Session) Run(ctx context.Context) error {
	defer s.registry.UnregisterSession(s.handle.ID)
	s.logger.Info("web session started")

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error { return s.readLoop(ctx) })
	g.Go(func() error { return s.tickLoop(ctx) })

	err := g.Wait()
	s.logger.Info("web session ended", "score", s.world.Score, "reason", err)
	switch {
	case err == nil,
		errors.Is(err, context.Canceled),
		errors.Is(err, errClientGone),
		errors.Is(err, errServerShutdown):
		return nil
	}
	return err
}

func (s *Session) readLoop(ctx context.Context) error {
	for {
		data, err := s.transport.Read(ctx)
		if err != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			if isClosed(err) {
				return errClientGone
			}
			return fmt.Errorf("read: %w", err)
		}

		msg, err := DecodeClientMessage(data)
		if err != nil {
			s.logger.Debug("dropping client message", "err", err)
			continue
		}

		s.receive(msg)
	}
}

// receive records a decoded client message for the next tick. Held controls
// replace the previous ones; a fire press stays latched until a tick consumes
// it.
func (s *Session) receive(msg ClientMessage) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if msg.Type == MsgInput {
		s.intent = msg.Input
		s.fire = s.fire || msg.Input.Fire
		return
	}
	s.actions = append(s.actions, msg)
}

func isClosed(err error) bool {
	if errors.Is(err, io.EOF) {
		return true
	}
	switch websocket.CloseStatus(err) {
	case websocket.StatusNormalClosure, websocket.StatusGoingAway:
		return true
	}
	return false
}

func (s *Session) tickLoop(ctx context.Context) error {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case ev, ok := <-s.handle.EventsCh:
			if !ok || ev.Type == server.EventServerShutdown {
				_ = s.send(ctx, ServerMessage{Type: MsgShutdown})
				return errServerShutdown
			}
		case <-ticker.C:
			if err := s.send(ctx, s.step()); err != nil {
				return err
			}
		}
	}
}

// step applies queued actions, advances the world and builds the frame.
func (s *Session) step() ServerMessage {
	s.mu.Lock()
	intent := s.intent
	intent.Fire = s.fire
	s.fire = false
	actions := s.actions
	s.actions = nil
	s.mu.Unlock()

	msg := ServerMessage{Type: MsgFrame}
	for _, a := range actions {
		events, err := s.apply(a)
		if err != nil {
			msg.Error = err.Error()
		}
		msg.Events = appendEvents(msg.Events, events)
	}

	events := s.world.Tick(intent)
	for _, e := range events {
		if over, ok := e.(game.GameOver); ok {
			s.logger.Info("game over", "score", over.Score, "money", over.Money, "level", over.Level)
			s.registry.RecordResult(s.handle.ID, over)
		}
	}
	msg.Events = appendEvents(msg.Events, events)

	snap := s.world.Snapshot()
	msg.Frame = &snap
	msg.Lobby = s.registry.GetSnapshot()
	return msg
}

func (s *Session) apply(a ClientMessage) ([]game.Event, error) {
	switch a.Action {
	case ActionShop:
		return s.world.ToggleShop(), nil
	case ActionBuy:
		return s.world.Buy(a.Upgrade)
	case ActionRestart:
		if !s.world.Over {
			return nil, nil
		}
		return s.world.Restart(), nil
	}
	return nil, fmt.Errorf("%w: unknown action %q", ErrBadMessage, a.Action)
}

func (s *Session) send(ctx context.Context, msg ServerMessage) error {
	data, err := json.Marshal(msg)
	if err != nil {
		return fmt.Errorf("encode frame: %w", err)
	}
	ctx, cancel := context.WithTimeout(ctx, loopconfig.WebWriteTimeout)
	defer cancel()
	if err := s.transport.Write(ctx, data); err != nil {
		if isClosed(err) {
			return errClientGone
		}
		return fmt.Errorf("write: %w", err)
	}
	return nil
}
