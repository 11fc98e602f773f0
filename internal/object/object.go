package object

import (
	"math"

	"github.com/tomz197/neonroids/internal/draw"
)

// Entity and particle colors. Renderers may map them to whatever palette
// they support.
const (
	ColorAsteroid = "#ff00ff"
	ColorLaser    = "#00ff00"
	ColorShip     = "#00ffff"
	ColorBullet   = "#ffff00"
	ColorFlame    = "#ffff00"
	ColorLevelUp  = "#ffff00"
)

// Spawner receives entities created while the world is being updated.
type Spawner interface {
	SpawnAsteroid(a *Asteroid)
	SpawnParticle(p *Particle)
}

// Controls is the held-key state that steers the ship for one tick.
type Controls struct {
	Left   bool
	Right  bool
	Thrust bool
}

// DrawContext provides drawing resources for objects.
type DrawContext struct {
	Canvas *draw.Canvas // High-resolution canvas (2x vertical)
}

// Drawable is implemented by every entity that can render itself.
// Draw must only read entity state.
type Drawable interface {
	Draw(ctx DrawContext)
}

// Screen is the rectangular play field in world units.
type Screen struct {
	Width  float64
	Height float64
}

// Center returns the middle of the play field.
func (s Screen) Center() (float64, float64) {
	return s.Width / 2, s.Height / 2
}

// WrapPosition teleports a coordinate that left the field to the opposite
// edge. It is not a modulo: a point far past one edge lands exactly on the
// other edge.
func (s Screen) WrapPosition(x, y *float64) {
	if *x < 0 {
		*x = s.Width
	}
	if *x > s.Width {
		*x = 0
	}
	if *y < 0 {
		*y = s.Height
	}
	if *y > s.Height {
		*y = 0
	}
}

// rotate turns (x,y) around the origin by angle.
func rotate(x, y, angle float64) (float64, float64) {
	sin, cos := math.Sincos(angle)
	return x*cos - y*sin, x*sin + y*cos
}
