package client

import (
	"bufio"
	"errors"
	"io"
	"math/rand"
	"time"

	"github.com/charmbracelet/log"

	"github.com/tomz197/neonroids/internal/config"
	"github.com/tomz197/neonroids/internal/draw"
	"github.com/tomz197/neonroids/internal/game"
	"github.com/tomz197/neonroids/internal/input"
	loopconfig "github.com/tomz197/neonroids/internal/loop/config"
	"github.com/tomz197/neonroids/internal/loop/server"
)

// Client runs one terminal game: it reads keys, ticks its own world and
// draws the result.
type Client struct {
	registry     server.Registry
	handle       *server.SessionHandle
	world        *game.World
	state        *ClientState
	canvas       *draw.Canvas
	chunkWriter  *draw.ChunkWriter // Accumulates UI text for chunked output
	writer       io.Writer
	inputStream  *input.Stream
	lastInput    time.Time
	termSizeFunc draw.TermSizeFunc
	logger       *log.Logger
}

// ClientOptions configures the client.
type ClientOptions struct {
	TermSizeFunc draw.TermSizeFunc
	Username     string
	Transport    string        // Reported to the registry; defaults to "local"
	Rules        *config.Rules // Defaults to config.Default()
	Logger       *log.Logger   // Defaults to log.Default()
	Rand         *rand.Rand
	Clock        game.Clock
}

// NewClient creates a client registered with the given session registry.
func NewClient(reg server.Registry, r *bufio.Reader, w io.Writer, opts ClientOptions) *Client {
	termSizeFunc := opts.TermSizeFunc
	if termSizeFunc == nil {
		termSizeFunc = draw.DefaultTermSizeFunc
	}
	transport := opts.Transport
	if transport == "" {
		transport = "local"
	}
	rules := config.Default()
	if opts.Rules != nil {
		rules = *opts.Rules
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.Default()
	}

	handle := reg.RegisterSession(opts.Username, transport)
	state := NewClientState()
	state.termSizeFunc = termSizeFunc

	// Create canvas with clamped dimensions for max render resolution
	termWidth, termHeight, _ := termSizeFunc()
	renderWidth, renderHeight, offsetCol, offsetRow := clampTermSize(termWidth, termHeight)
	canvas := draw.NewScaledCanvas(renderWidth, renderHeight, rules.WorldWidth, rules.WorldHeight)
	canvas.SetOffset(offsetCol, offsetRow)
	chunkWriter := draw.NewChunkWriter(w, offsetCol, offsetRow)

	return &Client{
		registry:     reg,
		handle:       handle,
		world:        game.NewWorld(rules, opts.Rand, opts.Clock),
		state:        state,
		canvas:       canvas,
		chunkWriter:  chunkWriter,
		writer:       w,
		lastInput:    time.Now(),
		inputStream:  input.StartStream(r),
		termSizeFunc: termSizeFunc,
		logger:       logger.With("session", handle.ID.String(), "user", handle.Username),
	}
}

// Run starts the client loop. Blocks until the player quits, goes idle for
// too long or the server stops.
func (c *Client) Run() error {
	draw.Emit(c.writer, draw.SeqAltScreen, draw.SeqHideCursor, draw.SeqClear)
	defer draw.Emit(c.writer, draw.SeqShowCursor, draw.SeqMainScreen)

	c.logger.Info("client started", "transport", c.handle.Transport)
	defer c.registry.UnregisterSession(c.handle.ID)

	lastTime := time.Now()

	for c.state.Running {
		frameStart := time.Now()
		c.state.delta = frameStart.Sub(lastTime)
		lastTime = frameStart

		// Process input
		c.processInput()

		// Check for server events
		c.processServerEvents()

		// Handle screen resize
		c.updateScreen()

		c.update()

		// Draw frame
		if err := c.drawFrame(); err != nil {
			return err
		}

		// Frame timing
		elapsed := time.Since(frameStart)
		if elapsed < loopconfig.ClientTargetFrameTime {
			time.Sleep(loopconfig.ClientTargetFrameTime - elapsed)
		}
	}

	c.logger.Info("client stopped", "score", c.world.Score, "level", c.world.Level)
	draw.Emit(c.writer, draw.SeqClear)
	return nil
}

// processInput reads input and tracks inactivity.
func (c *Client) processInput() {
	c.state.Input = input.ReadInput(c.inputStream)

	idle := time.Since(c.lastInput).Seconds()
	if len(c.state.Input.Pressed) > 0 {
		c.lastInput = time.Now()
		c.state.isInactive = false
	} else if idle > loopconfig.InactivityDisconnectUser {
		c.logger.Info("disconnecting inactive client")
		c.state.Running = false
	} else if idle > loopconfig.InactivityWarnUser {
		c.state.isInactive = true
	}

	if c.state.Input.Quit {
		c.state.Running = false
	}
}

// processServerEvents handles events from the session registry.
func (c *Client) processServerEvents() {
	for {
		select {
		case event, ok := <-c.handle.EventsCh:
			if !ok {
				// Server closed the channel
				c.state.Running = false
				return
			}
			if event.Type == server.EventServerShutdown && c.state.GameState != GameStateShutdown {
				c.state.GameState = GameStateShutdown
				c.state.shutdownTimer = loopconfig.ShutdownDisplaySeconds
			}
		default:
			return
		}
	}
}

// updateScreen handles terminal resize, clamping to max render resolution.
// On actual size changes, clears the terminal to remove residual pixels
// outside the new canvas area (e.g. old borders or offset content).
func (c *Client) updateScreen() {
	termWidth, termHeight, err := c.termSizeFunc()
	if err != nil {
		return
	}
	renderWidth, renderHeight, offsetCol, offsetRow := clampTermSize(termWidth, termHeight)

	if renderWidth != c.canvas.TerminalWidth() || renderHeight != c.canvas.TerminalHeight() ||
		offsetCol != c.canvas.OffsetCol() || offsetRow != c.canvas.OffsetRow() {
		draw.Emit(c.writer, draw.SeqClear)
		c.canvas.Resize(renderWidth, renderHeight)
		c.canvas.ForceRedraw()
	}

	c.canvas.SetOffset(offsetCol, offsetRow)
	c.chunkWriter.SetOffset(offsetCol, offsetRow)
}

// clampTermSize clamps terminal dimensions to the max render resolution and computes
// the centering offset for the render area.
func clampTermSize(termWidth, termHeight int) (renderWidth, renderHeight, offsetCol, offsetRow int) {
	renderWidth = min(max(termWidth, 1), loopconfig.MaxTermWidth)
	renderHeight = min(max(termHeight, 1), loopconfig.MaxTermHeight)
	offsetCol = max((termWidth-renderWidth)/2, 0)
	offsetRow = max((termHeight-renderHeight)/2, 0)
	return
}

// update applies the frame's input to the current screen.
func (c *Client) update() {
	in := c.state.Input

	switch c.state.GameState {
	case GameStateStart:
		if in.Fire || in.Restart {
			c.state.GameState = GameStatePlaying
		}
	case GameStatePlaying:
		c.updatePlaying(in)
	case GameStateOver:
		if in.Restart {
			c.world.Restart()
			c.state.shopMessage = ""
			c.state.GameState = GameStatePlaying
			c.logger.Debug("restarted")
		}
	case GameStateShutdown:
		c.state.shutdownTimer -= c.state.delta.Seconds()
		if c.state.shutdownTimer <= 0 {
			c.state.Running = false
		}
	}
}

// updatePlaying handles shop actions and advances the world one tick.
func (c *Client) updatePlaying(in input.Input) {
	if in.Shop {
		c.world.ToggleShop()
		c.state.shopMessage = ""
	}
	if in.Buy > 0 && c.world.Paused {
		c.buy(game.Upgrades[in.Buy-1])
	}

	events := c.world.Tick(game.Intent{
		Left:   in.Left,
		Right:  in.Right,
		Thrust: in.Thrust,
		Fire:   in.Fire,
	})
	for _, e := range events {
		switch e := e.(type) {
		case game.LevelUp:
			c.logger.Debug("level up", "level", e.Level, "bonus", e.Bonus)
		case game.GameOver:
			c.logger.Info("game over", "score", e.Score, "money", e.Money, "level", e.Level)
			c.registry.RecordResult(c.handle.ID, e)
			c.state.GameState = GameStateOver
		}
	}
}

// buy attempts a purchase and records the outcome for the shop panel.
func (c *Client) buy(u game.Upgrade) {
	_, err := c.world.Buy(u)
	switch {
	case err == nil:
		c.state.shopMessage = "Bought " + u.Title()
		c.logger.Debug("upgrade bought", "upgrade", u)
	case errors.Is(err, game.ErrInsufficientFunds):
		c.state.shopMessage = "Not enough money"
	case errors.Is(err, game.ErrAlreadyOwned):
		c.state.shopMessage = "Already owned"
	case errors.Is(err, game.ErrMaxLevel):
		c.state.shopMessage = "Already at max level"
	default:
		c.state.shopMessage = "Shop unavailable"
		c.logger.Warn("purchase failed", "upgrade", u, "err", err)
	}
}
