package object

import (
	"fmt"
	"math"
	"time"

	"github.com/tomz197/neonroids/internal/draw"
)

// Weapon is the firing mode of the ship.
type Weapon int

const (
	WeaponNormal Weapon = iota
	WeaponSpread
	WeaponRapid
	WeaponLaser
)

var weaponNames = [...]string{
	WeaponNormal: "normal",
	WeaponSpread: "spread",
	WeaponRapid:  "rapid",
	WeaponLaser:  "laser",
}

func (w Weapon) String() string {
	if w < 0 || int(w) >= len(weaponNames) {
		return "unknown"
	}
	return weaponNames[w]
}

// MarshalText encodes the weapon by name.
func (w Weapon) MarshalText() ([]byte, error) {
	return []byte(w.String()), nil
}

// UnmarshalText decodes a weapon name.
func (w *Weapon) UnmarshalText(text []byte) error {
	for i, name := range weaponNames {
		if name == string(text) {
			*w = Weapon(i)
			return nil
		}
	}
	return fmt.Errorf("unknown weapon %q", text)
}

// Ship is the player-controlled spaceship.
// Angle 0 points up; the forward vector is Angle - π/2 in screen space.
type Ship struct {
	X, Y   float64 // Position (center of ship)
	VX, VY float64 // Velocity (momentum)
	Angle  float64
	Radius float64

	Weapon     Weapon
	SpeedLevel int // Multiplies thrust in the upgraded game
	MaxLives   int

	FireDelay time.Duration // Minimum wall-clock time between shots
	LastFire  time.Time     // Zero until the first shot

	Thrusting bool // Thrust held during the last update (for the flame)
}

// NewShip creates a ship at the center of the screen.
func NewShip(screen Screen, radius float64, fireDelay time.Duration, maxLives int) *Ship {
	s := &Ship{
		Radius:     radius,
		Weapon:     WeaponNormal,
		SpeedLevel: 1,
		MaxLives:   maxLives,
		FireDelay:  fireDelay,
	}
	s.Recenter(screen)
	return s
}

// Recenter puts the ship back in the middle of the screen, at rest and
// pointing up.
func (s *Ship) Recenter(screen Screen) {
	s.X, s.Y = screen.Center()
	s.VX = 0
	s.VY = 0
	s.Angle = 0
	s.Thrusting = false
}

// Heading returns the direction of travel in radians.
func (s *Ship) Heading() float64 {
	return s.Angle - math.Pi/2
}

// CanFire reports whether the fire delay has elapsed at now.
func (s *Ship) CanFire(now time.Time) bool {
	return s.LastFire.IsZero() || now.Sub(s.LastFire) >= s.FireDelay
}

// Update handles rotation, thrust, friction and wrapping for one tick.
func (s *Ship) Update(c Controls, turnSpeed, thrustPower, friction float64, screen Screen) {
	if c.Left {
		s.Angle -= turnSpeed
	}
	if c.Right {
		s.Angle += turnSpeed
	}

	s.Thrusting = c.Thrust
	if c.Thrust {
		heading := s.Heading()
		s.VX += math.Cos(heading) * thrustPower
		s.VY += math.Sin(heading) * thrustPower
	}

	// Friction applies every tick, thrusting or not
	s.VX *= friction
	s.VY *= friction

	s.X += s.VX
	s.Y += s.VY
	screen.WrapPosition(&s.X, &s.Y)
}

// Speed returns the magnitude of the velocity vector.
func (s *Ship) Speed() float64 {
	return math.Hypot(s.VX, s.VY)
}

// Draw renders the ship as an arrowhead with an optional thrust flame.
func (s *Ship) Draw(ctx DrawContext) {
	r := s.Radius
	outline := [...]draw.Point{
		{X: 0, Y: -r},
		{X: r * 0.7, Y: r},
		{X: 0, Y: r * 0.7},
		{X: -r * 0.7, Y: r},
	}

	points := ctx.Canvas.BorrowPoints(len(outline))
	for i, p := range outline {
		x, y := rotate(p.X, p.Y, s.Angle)
		points[i] = draw.Point{X: s.X + x, Y: s.Y + y}
	}
	ctx.Canvas.SetColor(ColorShip)
	ctx.Canvas.DrawPolygon(points, false)

	if !s.Thrusting {
		return
	}
	flame := [...]draw.Point{
		{X: 0, Y: r * 1.6},
		{X: r * 0.3, Y: r},
		{X: -r * 0.3, Y: r},
	}
	points = ctx.Canvas.BorrowPoints(len(flame))
	for i, p := range flame {
		x, y := rotate(p.X, p.Y, s.Angle)
		points[i] = draw.Point{X: s.X + x, Y: s.Y + y}
	}
	ctx.Canvas.SetColor(ColorFlame)
	ctx.Canvas.DrawPolygon(points, true)
}
