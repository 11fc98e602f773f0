package client

import (
	"time"

	"github.com/tomz197/neonroids/internal/draw"
	"github.com/tomz197/neonroids/internal/input"
)

// GameState represents the current screen for a client.
type GameState int

const (
	GameStateStart    GameState = iota // Title screen
	GameStatePlaying                   // Active gameplay (the shop is a paused world)
	GameStateOver                      // Game over, show results and restart prompt
	GameStateShutdown                  // Server is shutting down
)

// ClientState holds per-connection presentation state. Gameplay state lives
// in the client's game.World.
type ClientState struct {
	Input         input.Input
	GameState     GameState
	prevGameState GameState
	termSizeFunc  draw.TermSizeFunc // Function to get terminal size
	Running       bool              // Client loop running
	delta         time.Duration     // Frame delta time
	shutdownTimer float64           // Countdown before auto-disconnect on shutdown
	isInactive    bool              // Whether the client is in inactive warning state
	wasInactive   bool
	shopMessage   string // Result of the last purchase attempt
	wasPaused     bool
}

// NewClientState creates a new initialized client state.
func NewClientState() *ClientState {
	return &ClientState{
		GameState:     GameStateStart,
		prevGameState: GameStateStart,
		Running:       true,
	}
}
