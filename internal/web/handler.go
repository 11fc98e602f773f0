// Package web serves the browser version of the game: a static canvas page
// and one websocket session per player.
package web

import (
	_ "embed"
	"encoding/json"
	"net/http"

	"github.com/charmbracelet/log"
	"github.com/coder/websocket"

	"github.com/tomz197/neonroids/internal/config"
	loopconfig "github.com/tomz197/neonroids/internal/loop/config"
	"github.com/tomz197/neonroids/internal/loop/server"
)

//go:embed static/index.html
var indexPage []byte

// HandlerOptions configures the web front end.
type HandlerOptions struct {
	Rules          config.Rules
	Logger         *log.Logger
	OriginPatterns []string // Extra origins allowed to open /play
}

// Handler routes the web front end.
type Handler struct {
	registry *server.Server
	opts     HandlerOptions
	logger   *log.Logger
	mux      *http.ServeMux
}

// NewHandler returns a handler serving:
//
//	GET /         the game page
//	GET /play     websocket game session (?name= sets the leaderboard name)
//	GET /healthz  liveness and player count
func NewHandler(reg *server.Server, opts HandlerOptions) *Handler {
	logger := opts.Logger
	if logger == nil {
		logger = log.Default()
	}
	h := &Handler{
		registry: reg,
		opts:     opts,
		logger:   logger,
		mux:      http.NewServeMux(),
	}
	h.mux.HandleFunc("GET /{$}", h.serveIndex)
	h.mux.HandleFunc("GET /play", h.servePlay)
	h.mux.HandleFunc("GET /healthz", h.serveHealth)
	return h
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	h.mux.ServeHTTP(w, r)
}

func (h *Handler) serveIndex(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = w.Write(indexPage)
}

func (h *Handler) serveHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(map[string]any{
		"status":  "ok",
		"players": h.registry.Players(),
	})
}

func (h *Handler) servePlay(w http.ResponseWriter, r *http.Request) {
	conn, err := websocket.Accept(w, r, &websocket.AcceptOptions{
		OriginPatterns: h.opts.OriginPatterns,
	})
	if err != nil {
		h.logger.Warn("websocket accept failed", "remote", r.RemoteAddr, "err", err)
		return
	}
	conn.SetReadLimit(loopconfig.WebMaxMessage)

	transport := NewTransport(conn)
	sess := NewSession(transport, h.registry, SessionOptions{
		Username: r.URL.Query().Get("name"),
		Rules:    h.opts.Rules,
		Logger:   h.logger,
	})
	if err := sess.Run(r.Context()); err != nil {
		h.logger.Error("web session failed", "remote", r.RemoteAddr, "err", err)
		_ = transport.Close(int(websocket.StatusInternalError), "session error")
		return
	}
	_ = transport.Close(int(websocket.StatusNormalClosure), "")
}
