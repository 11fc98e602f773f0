package server

import (
	"slices"
	"time"
)

// TopScoreEntry represents a single entry on the leaderboard.
type TopScoreEntry struct {
	Username string    `json:"username"`
	Score    int       `json:"score"`
	Money    int       `json:"money"`
	Level    int       `json:"level"`
	At       time.Time `json:"at"`
	seq      int       // Used for deterministic tie-break when scores are equal
}

// LobbySnapshot is an immutable view of the registry for rendering.
type LobbySnapshot struct {
	Players   int             `json:"players"`
	TopScores []TopScoreEntry `json:"topScores"` // Best first
}

// insertScore adds e to the leaderboard, keeping at most limit entries sorted
// by score descending. Earlier entries win ties.
func insertScore(board []TopScoreEntry, e TopScoreEntry, limit int) []TopScoreEntry {
	board = append(board, e)
	slices.SortStableFunc(board, func(a, b TopScoreEntry) int {
		if a.Score != b.Score {
			return b.Score - a.Score
		}
		return a.seq - b.seq
	})
	if len(board) > limit {
		board = board[:limit]
	}
	return board
}
