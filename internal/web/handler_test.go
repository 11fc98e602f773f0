package web

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/log"
	"github.com/coder/websocket"

	"github.com/tomz197/neonroids/internal/config"
	"github.com/tomz197/neonroids/internal/loop/server"
)

func newTestServer(t *testing.T) (*httptest.Server, *server.Server) {
	t.Helper()
	reg := server.NewServer()
	h := NewHandler(reg, HandlerOptions{
		Rules:  config.Default(),
		Logger: log.New(io.Discard),
	})
	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)
	return srv, reg
}

func TestIndexPage(t *testing.T) {
	srv, _ := newTestServer(t)

	resp, err := http.Get(srv.URL + "/")
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()
	body, _ := io.ReadAll(resp.Body)

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d", resp.StatusCode)
	}
	if !strings.Contains(string(body), "<canvas") {
		t.Error("index page has no canvas")
	}

	resp, err = http.Get(srv.URL + "/nope")
	if err != nil {
		t.Fatal(err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusNotFound {
		t.Errorf("unknown path status = %d, want 404", resp.StatusCode)
	}
}

func TestHealthz(t *testing.T) {
	srv, reg := newTestServer(t)
	reg.RegisterSession("someone", "ssh")

	resp, err := http.Get(srv.URL + "/healthz")
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()

	var got struct {
		Status  string `json:"status"`
		Players int    `json:"players"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&got); err != nil {
		t.Fatal(err)
	}
	if got.Status != "ok" || got.Players != 1 {
		t.Errorf("healthz = %+v", got)
	}
}

func TestPlayOverWebsocket(t *testing.T) {
	srv, reg := newTestServer(t)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	url := "ws" + strings.TrimPrefix(srv.URL, "http") + "/play?name=wsplayer"
	conn, _, err := websocket.Dial(ctx, url, nil)
	if err != nil {
		t.Fatal(err)
	}
	defer conn.CloseNow()

	if err := conn.Write(ctx, websocket.MessageText, []byte(`{"type":"input","input":{"thrust":true}}`)); err != nil {
		t.Fatal(err)
	}

	_, data, err := conn.Read(ctx)
	if err != nil {
		t.Fatal(err)
	}
	var msg wireMessage
	if err := json.Unmarshal(data, &msg); err != nil {
		t.Fatal(err)
	}
	if msg.Type != MsgFrame || msg.Frame == nil {
		t.Fatalf("first message = %+v", msg)
	}
	if msg.Frame.Width != 800 || msg.Frame.Height != 600 {
		t.Errorf("frame size = %vx%v", msg.Frame.Width, msg.Frame.Height)
	}
	if reg.Players() != 1 {
		t.Errorf("players = %d, want 1", reg.Players())
	}

	conn.Close(websocket.StatusNormalClosure, "")
}
