package client

import (
	"fmt"
	"strings"
	"time"

	"github.com/tomz197/neonroids/internal/config"
	"github.com/tomz197/neonroids/internal/draw"
	loopconfig "github.com/tomz197/neonroids/internal/loop/config"
	"github.com/tomz197/neonroids/internal/loop/server"
	"github.com/tomz197/neonroids/internal/object"
)

// drawFrame draws the current frame.
func (c *Client) drawFrame() error {
	// On screen, inactivity or shop transitions, do a full terminal clear
	// so UI elements from the previous state don't persist on screen.
	stateChanged := c.state.GameState != c.state.prevGameState
	inactiveChanged := c.state.isInactive != c.state.wasInactive
	pausedChanged := c.world.Paused != c.state.wasPaused
	if stateChanged || inactiveChanged || pausedChanged {
		c.chunkWriter.WriteString(draw.SeqClear)
		c.canvas.ForceRedraw()
		c.state.prevGameState = c.state.GameState
		c.state.wasInactive = c.state.isInactive
		c.state.wasPaused = c.world.Paused
	}

	c.canvas.Clear()

	if c.state.GameState == GameStatePlaying || c.state.GameState == GameStateOver {
		ctx := object.DrawContext{Canvas: c.canvas}
		for _, d := range c.world.Drawables() {
			d.Draw(ctx)
		}
	}

	// Render canvas to terminal
	c.canvas.Render(c.chunkWriter)

	// Draw border when terminal exceeds max render resolution
	c.canvas.RenderBorder(c.chunkWriter)

	c.drawUI(c.registry.GetSnapshot())

	return c.chunkWriter.Flush()
}

// WriteAt writes UI text and marks the covered cells so the canvas repaints
// them once the text goes away.
func (c *Client) WriteAt(col, row int, s string) {
	c.chunkWriter.WriteAt(col, row, s)
	c.canvas.MarkTextDirty(col, row, len(s))
}

// writeColorAt is WriteAt with an ANSI color.
func (c *Client) writeColorAt(col, row int, color, s string) {
	c.chunkWriter.WriteColorAt(col, row, color, s)
	c.canvas.MarkTextDirty(col, row, len(s))
}

// centered writes s centered on col.
func (c *Client) centered(col, row int, s string) {
	object.Text{X: col, Y: row, Value: s, Centered: true}.Draw(c)
}

// drawUI draws the UI overlay for the current screen.
func (c *Client) drawUI(lobby *server.LobbySnapshot) {
	termWidth := c.canvas.TerminalWidth()
	termHeight := c.canvas.TerminalHeight()
	centerX := termWidth / 2
	centerY := termHeight / 2

	if c.state.GameState == GameStateShutdown {
		c.drawShutdownScreen(centerX, centerY)
		return
	}

	if c.state.isInactive {
		c.drawInactivityScreen(centerX, centerY)
		return
	}

	switch c.state.GameState {
	case GameStateStart:
		c.drawStartScreen(centerX, centerY)
	case GameStatePlaying:
		c.drawPlayingHUD(termWidth, termHeight, lobby)
		if c.world.Paused {
			c.drawShop(centerX, centerY)
		} else if c.world.LevelingUp {
			c.drawLevelBanner(centerX, centerY)
		}
	case GameStateOver:
		c.drawGameOver(centerX, centerY, lobby)
	}
}

// drawInactivityScreen draws the inactivity warning screen.
func (c *Client) drawInactivityScreen(centerX, centerY int) {
	c.writeColorAt(centerX-9, centerY-2, draw.ColorYellow, "INACTIVITY WARNING")

	c.centered(centerX, centerY, fmt.Sprintf(
		"You have been inactive for too long. You will be disconnected in %d seconds.",
		int(loopconfig.InactivityDisconnectUser-time.Since(c.lastInput).Seconds()),
	))
	c.centered(centerX, centerY+2, "Press any key to continue")
}

// drawStartScreen draws the title screen.
func (c *Client) drawStartScreen(centerX, centerY int) {
	titleArt := []string{
		`+-----------------------------------+`,
		`|   N  E  O  N  R  O  I  D  S       |`,
		`+-----------------------------------+`,
	}
	titleStartY := centerY - 8
	for i, line := range titleArt {
		c.writeColorAt(centerX-len(line)/2, titleStartY+i, draw.ColorCyan, line)
	}

	subtitle := "~ Blast rocks, earn money, buy guns ~"
	if c.world.Rules().Mode == config.ModeClassic {
		subtitle = "~ Classic rules: no shop, no money ~"
	}
	c.centered(centerX, titleStartY+len(titleArt)+1, subtitle)

	controlsY := titleStartY + len(titleArt) + 3
	c.centered(centerX, controlsY, "Controls")

	controlLines := []string{
		"W / Up  . . . . Thrust",
		"A D / < >  . .  Rotate",
		"SPACE  . . . . . Shoot",
		"S  . . . . . . .  Shop",
		"1-5  . . . . . . . Buy",
		"Q  . . . . . . .  Quit",
	}
	for i, line := range controlLines {
		c.centered(centerX, controlsY+1+i, line)
	}

	// Blinking start prompt
	if time.Now().UnixMilli()/600%2 == 0 {
		c.centered(centerX, controlsY+len(controlLines)+2, ">>  Press SPACE to Start  <<")
	} else {
		c.centered(centerX, controlsY+len(controlLines)+2, strings.Repeat(" ", 28))
	}
}

// drawPlayingHUD draws the in-game HUD.
// Text fields use fixed-width formatting so shrinking values don't leave
// residual characters on screen.
func (c *Client) drawPlayingHUD(termWidth, termHeight int, lobby *server.LobbySnapshot) {
	w := c.world

	c.WriteAt(2, 1, fmt.Sprintf("Score: %-8d", w.Score))
	if w.Rules().Mode == config.ModeUpgraded {
		c.writeColorAt(17, 1, draw.ColorGreen, fmt.Sprintf("$%-6d", w.Money))
	}

	livesText := fmt.Sprintf("Lives: %-3d", w.Lives)
	c.WriteAt(termWidth-len(livesText)-1, 1, livesText)

	levelText := fmt.Sprintf("Level %-3d", w.Level)
	c.WriteAt(termWidth/2-len(levelText)/2, 1, levelText)

	weaponText := fmt.Sprintf("Weapon: %-7s", strings.ToUpper(w.Ship.Weapon.String()))
	if w.Ship.SpeedLevel > 1 {
		weaponText += fmt.Sprintf(" Speed x%d", w.Ship.SpeedLevel)
	}
	c.WriteAt(2, termHeight, weaponText)

	playersText := fmt.Sprintf("Players: %-4d", lobby.Players)
	c.WriteAt(termWidth-len(playersText)-1, termHeight, playersText)
}

// drawLevelBanner draws the level-up announcement.
func (c *Client) drawLevelBanner(centerX, centerY int) {
	title := fmt.Sprintf("LEVEL %d!", c.world.Level)
	c.writeColorAt(centerX-len(title)/2, centerY-3, draw.ColorFor(object.ColorLevelUp)+draw.ColorBold, title)
	c.centered(centerX, centerY-1, "Asteroids are getting faster")
}

// drawShop draws the upgrade shop over the paused world.
func (c *Client) drawShop(centerX, centerY int) {
	offers := c.world.Offers()
	const width = 44
	left := centerX - width/2
	top := centerY - len(offers)/2 - 4

	c.WriteAt(left, top, "+"+strings.Repeat("-", width-2)+"+")
	c.WriteAt(left, top+1, fmt.Sprintf("| %-*s |", width-4, fmt.Sprintf("SHOP          Money: $%d", c.world.Money)))
	c.WriteAt(left, top+2, "+"+strings.Repeat("-", width-2)+"+")

	for i, o := range offers {
		row := top + 3 + i
		status := fmt.Sprintf("$%d", o.Cost)
		if o.Label != "" {
			status = o.Label
		} else if o.MaxLevel > 0 {
			status = fmt.Sprintf("$%d  (%d/%d)", o.Cost, o.Level, o.MaxLevel)
		}
		line := fmt.Sprintf("| [%d] %-16s %19s |", i+1, o.Title, status)
		color := draw.ColorDim
		if o.Enabled {
			color = draw.ColorGreen
		}
		c.writeColorAt(left, row, color, line)
	}

	bottom := top + 3 + len(offers)
	c.WriteAt(left, bottom, "+"+strings.Repeat("-", width-2)+"+")
	c.WriteAt(left, bottom+1, fmt.Sprintf("%-*s", width, "  "+c.state.shopMessage))
	c.WriteAt(left, bottom+2, fmt.Sprintf("%-*s", width, "  1-5 buy, S resume"))
}

// drawGameOver draws the results and the leaderboard.
func (c *Client) drawGameOver(centerX, centerY int, lobby *server.LobbySnapshot) {
	titleArt := []string{
		`   ___   _   __  __ ___    _____   _____ ___  `,
		`  / __| /_\ |  \/  | __|  / _ \ \ / / __| _ \ `,
		` | (_ |/ _ \| |\/| | _|  | (_) \ V /| _||   / `,
		`  \___/_/ \_\_|  |_|___|  \___/ \_/ |___|_|_\ `,
	}
	titleStartY := centerY - 9
	for i, line := range titleArt {
		c.writeColorAt(centerX-len(line)/2, titleStartY+i, draw.ColorRed, line)
	}

	w := c.world
	row := titleStartY + len(titleArt) + 1
	c.centered(centerX, row, fmt.Sprintf("Score: %d   Level: %d", w.Score, w.Level))
	if w.Rules().Mode == config.ModeUpgraded {
		c.centered(centerX, row+1, fmt.Sprintf("Money left: $%d", w.Money))
	}

	row += 3
	if len(lobby.TopScores) > 0 {
		c.centered(centerX, row, "Top Scores")
		for i, e := range lobby.TopScores {
			name := e.Username
			if name == "" {
				name = "anonymous"
			}
			c.centered(centerX, row+1+i, fmt.Sprintf("%d. %-*s %8d", i+1, loopconfig.MaxUsernameLength, name, e.Score))
		}
		row += len(lobby.TopScores) + 2
	}

	if time.Now().UnixMilli()/600%2 == 0 {
		c.centered(centerX, row, ">>  Press R to Restart  <<")
	} else {
		c.centered(centerX, row, strings.Repeat(" ", 26))
	}
}

// drawShutdownScreen draws the server shutdown notification screen.
func (c *Client) drawShutdownScreen(centerX, centerY int) {
	c.writeColorAt(centerX-10, centerY-3, draw.ColorYellow, "SERVER SHUTTING DOWN")
	c.centered(centerX, centerY-1, "The server is restarting for maintenance.")
	c.centered(centerX, centerY, "Please reconnect in a moment.")

	remaining := int(c.state.shutdownTimer) + 1
	c.centered(centerX, centerY+2, fmt.Sprintf("Disconnecting in %2d seconds...", remaining))
	c.centered(centerX, centerY+4, "Press Q to disconnect now")
}
