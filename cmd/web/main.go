package main

import (
	"context"
	"errors"
	"net"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/tomz197/neonroids/internal/config"
	loopconfig "github.com/tomz197/neonroids/internal/loop/config"
	"github.com/tomz197/neonroids/internal/loop/server"
	"github.com/tomz197/neonroids/internal/web"
)

const (
	defaultHost = "0.0.0.0"
	defaultPort = "8080"
)

func main() {
	logger := config.NewLogger(os.Stderr, "web")

	host := config.GetEnv("WEB_HOST", defaultHost)
	port := config.GetEnv("WEB_PORT", defaultPort)

	rules, err := config.FromEnv()
	if err != nil {
		logger.Fatal("failed to load rules", "err", err)
	}

	var origins []string
	if v := config.GetEnv("WEB_ALLOWED_ORIGINS", ""); v != "" {
		origins = strings.Split(v, ",")
	}

	registry := server.NewServer()
	srv := &http.Server{
		Addr: net.JoinHostPort(host, port),
		Handler: web.NewHandler(registry, web.HandlerOptions{
			Rules:          rules,
			Logger:         logger,
			OriginPatterns: origins,
		}),
		ReadHeaderTimeout: 10 * time.Second,
	}

	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGINT, syscall.SIGTERM)

	logger.Info("starting web server", "addr", "http://"+srv.Addr, "mode", rules.Mode)
	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("server error", "err", err)
		}
	}()

	<-done
	logger.Info("shutting down server", "players", registry.Players())

	// Websocket sessions are hijacked, so the registry tells them to leave.
	registry.Shutdown(loopconfig.WebShutdownGrace)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Fatal("shutdown error", "err", err)
	}
}
