// Package config centralizes the front-end tunables: frame timing, terminal
// limits and session housekeeping. Gameplay rules live in internal/config.
package config

import "time"

// Max render resolution in terminal cells. Larger terminals get a centered,
// bordered play area.
const (
	MaxTermWidth  = 160
	MaxTermHeight = 60
)

// Leaderboard
const (
	TopScoresCount    = 5
	MaxUsernameLength = 16 // Maximum display length for player usernames
)

// Shutdown
const (
	ShutdownDisplaySeconds = 10.0 // Seconds to show shutdown message before auto-disconnect
	ShutdownGrace          = 15 * time.Second
)

// Inactivity
const (
	InactivityWarnUser       = 90  // Seconds
	InactivityDisconnectUser = 120 // Seconds
)

// Client rendering
const (
	ClientTargetFPS       = 60
	ClientTargetFrameTime = time.Second / ClientTargetFPS
)

// Web sessions
const (
	WebTickRate      = 60
	WebTickTime      = time.Second / WebTickRate
	WebWriteTimeout  = 2 * time.Second
	WebMaxMessage    = 4 << 10 // Bytes accepted per client message
	WebShutdownGrace = 5 * time.Second
)
