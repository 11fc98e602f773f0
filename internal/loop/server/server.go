package server

import (
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"

	"github.com/tomz197/neonroids/internal/game"
	"github.com/tomz197/neonroids/internal/loop/config"
)

// Registry is the interface game sessions use to talk to the process-wide
// session server. Decouples clients from the concrete Server for testing.
type Registry interface {
	RegisterSession(username, transport string) *SessionHandle
	UnregisterSession(id uuid.UUID)
	RecordResult(id uuid.UUID, result game.GameOver)
	GetSnapshot() *LobbySnapshot
}

// Server tracks every live game session of the process. Each session owns
// its own game.World; the server only keeps the player count, the
// leaderboard and the shutdown broadcast.
type Server struct {
	mu       sync.RWMutex
	sessions map[uuid.UUID]*SessionHandle
	scores   []TopScoreEntry
	seq      int
	snapshot atomic.Pointer[LobbySnapshot]
	closing  bool
}

// Compile-time check that Server implements Registry.
var _ Registry = (*Server)(nil)

// SessionHandle represents one connected player.
type SessionHandle struct {
	ID        uuid.UUID
	Username  string
	Transport string // "local", "ssh" or "web"
	Started   time.Time
	EventsCh  chan SessionEvent // Events sent to the session
}

// SessionEvent represents an event sent from server to session.
type SessionEvent struct {
	Type SessionEventType
}

// SessionEventType identifies the type of session event.
type SessionEventType int

const (
	EventServerShutdown SessionEventType = iota
)

// NewServer creates an empty session server.
func NewServer() *Server {
	s := &Server{
		sessions: make(map[uuid.UUID]*SessionHandle),
	}
	s.snapshot.Store(&LobbySnapshot{})
	return s
}

// RegisterSession registers a new session and returns its handle. Sessions
// registered after Shutdown has started receive the shutdown event at once.
func (s *Server) RegisterSession(username, transport string) *SessionHandle {
	username = truncateRunes(username, config.MaxUsernameLength)
	handle := &SessionHandle{
		ID:        uuid.New(),
		Username:  username,
		Transport: transport,
		Started:   time.Now(),
		EventsCh:  make(chan SessionEvent, 4),
	}

	s.mu.Lock()
	s.sessions[handle.ID] = handle
	if s.closing {
		handle.EventsCh <- SessionEvent{Type: EventServerShutdown}
	}
	s.publishLocked()
	s.mu.Unlock()

	return handle
}

// truncateRunes cuts s to at most n runes without splitting a character.
func truncateRunes(s string, n int) string {
	for i := range s {
		if n == 0 {
			return s[:i]
		}
		n--
	}
	return s
}

// UnregisterSession removes a session and closes its event channel.
func (s *Server) UnregisterSession(id uuid.UUID) {
	s.mu.Lock()
	defer s.mu.Unlock()

	handle, ok := s.sessions[id]
	if !ok {
		return
	}
	close(handle.EventsCh)
	delete(s.sessions, id)
	s.publishLocked()
}

// RecordResult adds a finished game to the leaderboard.
func (s *Server) RecordResult(id uuid.UUID, result game.GameOver) {
	s.mu.Lock()
	defer s.mu.Unlock()

	username := "anonymous"
	if handle, ok := s.sessions[id]; ok && handle.Username != "" {
		username = handle.Username
	}
	s.seq++
	s.scores = insertScore(s.scores, TopScoreEntry{
		Username: username,
		Score:    result.Score,
		Money:    result.Money,
		Level:    result.Level,
		At:       time.Now(),
		seq:      s.seq,
	}, config.TopScoresCount)
	s.publishLocked()
}

// GetSnapshot returns the current lobby snapshot.
func (s *Server) GetSnapshot() *LobbySnapshot {
	return s.snapshot.Load()
}

// Players returns the number of registered sessions.
func (s *Server) Players() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.sessions)
}

// Shutdown notifies every session that the server is stopping and waits for
// them to unregister, or until the timeout elapses.
func (s *Server) Shutdown(timeout time.Duration) {
	s.mu.Lock()
	s.closing = true
	for _, handle := range s.sessions {
		select {
		case handle.EventsCh <- SessionEvent{Type: EventServerShutdown}:
		default:
		}
	}
	s.mu.Unlock()

	// Wait for all sessions to disconnect, or timeout
	deadline := time.After(timeout)
	ticker := time.NewTicker(50 * time.Millisecond)
	defer ticker.Stop()

	for {
		if s.Players() == 0 {
			return
		}
		select {
		case <-deadline:
			return
		case <-ticker.C:
		}
	}
}

// publishLocked stores a fresh immutable snapshot. Must be called with the
// lock held.
func (s *Server) publishLocked() {
	s.snapshot.Store(&LobbySnapshot{
		Players:   len(s.sessions),
		TopScores: append([]TopScoreEntry(nil), s.scores...),
	})
}
