// Package loop wires a terminal client to a session registry.
package loop

import (
	"bufio"
	"io"

	"github.com/charmbracelet/log"

	"github.com/tomz197/neonroids/internal/config"
	"github.com/tomz197/neonroids/internal/loop/client"
	"github.com/tomz197/neonroids/internal/loop/server"
)

// Options configures a local game.
type Options struct {
	Username string
	Rules    config.Rules
	Logger   *log.Logger
}

// Run plays one local game on r and w with a private registry. Blocks until
// the player quits.
func Run(r *bufio.Reader, w io.Writer, opts Options) error {
	reg := server.NewServer()
	c := client.NewClient(reg, r, w, client.ClientOptions{
		Username: opts.Username,
		Rules:    &opts.Rules,
		Logger:   opts.Logger,
	})
	return c.Run()
}
