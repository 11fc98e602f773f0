package object

import (
	"math"
)

// Bullet is a short-lived projectile fired by the ship.
type Bullet struct {
	X, Y   float64 // Position
	VX, VY float64 // Velocity (units/tick)
	Life   int     // Ticks remaining before removal
}

// NewBullet creates a bullet at (x,y) traveling along angle.
func NewBullet(x, y, angle, speed float64, lifetime int) *Bullet {
	return &Bullet{
		X:    x,
		Y:    y,
		VX:   math.Cos(angle) * speed,
		VY:   math.Sin(angle) * speed,
		Life: lifetime,
	}
}

// Update moves the bullet and ages it. It returns true when the bullet has
// expired; expired bullets are not wrapped.
func (b *Bullet) Update(screen Screen) (remove bool) {
	b.X += b.VX
	b.Y += b.VY
	b.Life--
	if b.Life <= 0 {
		return true
	}
	screen.WrapPosition(&b.X, &b.Y)
	return false
}

// Draw renders the bullet as a single pixel.
func (b *Bullet) Draw(ctx DrawContext) {
	ctx.Canvas.SetColor(ColorBullet)
	ctx.Canvas.SetFloat(b.X, b.Y)
}
