package object

import (
	"math"
	"math/rand"

	"github.com/tomz197/neonroids/internal/draw"
)

const (
	asteroidRotationSpread = 0.05 // Rotation speed range of fresh asteroids (radians/tick)
	childRotationSpread    = 0.08 // Rotation speed range of split fragments
	minVertices            = 8
	vertexVariety          = 4 // Fresh asteroids get 8..11 vertices
	minJaggedness          = 0.3
	jaggednessVariety      = 0.3
)

// Asteroid is a destructible space rock.
type Asteroid struct {
	X, Y          float64 // Position (center)
	VX, VY        float64 // Velocity (units/tick)
	Radius        float64 // Collision/draw radius
	Angle         float64 // Current rotation angle
	RotationSpeed float64 // Radians per tick
	Vertices      int     // Polygon vertex count
	Jaggedness    float64 // Per-frame radius jitter used only when drawing
	Destroyed     bool    // Marked for removal this tick
}

// NewAsteroid creates an asteroid at (x,y) drifting with a random velocity
// of up to speed/2 on each axis.
func NewAsteroid(x, y, radius, speed float64, rng *rand.Rand) *Asteroid {
	return &Asteroid{
		X:             x,
		Y:             y,
		VX:            (rng.Float64() - 0.5) * speed,
		VY:            (rng.Float64() - 0.5) * speed,
		Radius:        radius,
		Angle:         rng.Float64() * 2 * math.Pi,
		RotationSpeed: (rng.Float64() - 0.5) * asteroidRotationSpread,
		Vertices:      minVertices + rng.Intn(vertexVariety),
		Jaggedness:    minJaggedness + rng.Float64()*jaggednessVariety,
	}
}

// Update moves and rotates the asteroid, wrapping at the screen edges.
func (a *Asteroid) Update(screen Screen) {
	a.X += a.VX
	a.Y += a.VY
	a.Angle += a.RotationSpeed
	screen.WrapPosition(&a.X, &a.Y)
}

// CanSplit reports whether destroying this asteroid leaves fragments.
func (a *Asteroid) CanSplit(minSplitRadius float64) bool {
	return a.Radius > minSplitRadius
}

// Split spawns two half-size fragments at the asteroid's position and
// returns how many were spawned. Asteroids at or below minSplitRadius
// vanish without fragments.
func (a *Asteroid) Split(minSplitRadius, speed float64, rng *rand.Rand, spawner Spawner) int {
	if !a.CanSplit(minSplitRadius) {
		return 0
	}

	for i := 0; i < 2; i++ {
		spawner.SpawnAsteroid(&Asteroid{
			X:             a.X,
			Y:             a.Y,
			VX:            (rng.Float64() - 0.5) * speed,
			VY:            (rng.Float64() - 0.5) * speed,
			Radius:        a.Radius / 2,
			Angle:         rng.Float64() * 2 * math.Pi,
			RotationSpeed: (rng.Float64() - 0.5) * childRotationSpread,
			Vertices:      a.Vertices,
			Jaggedness:    a.Jaggedness,
		})
	}
	return 2
}

// MarkDestroyed marks the asteroid for removal.
func (a *Asteroid) MarkDestroyed() {
	a.Destroyed = true
}

// IsDestroyed returns true if the asteroid is marked for removal.
func (a *Asteroid) IsDestroyed() bool {
	return a.Destroyed
}

// Draw renders the asteroid as an irregular polygon. The outline is
// re-jittered every frame.
func (a *Asteroid) Draw(ctx DrawContext) {
	if a.Vertices < 3 {
		return
	}

	// Use reusable buffer from canvas to avoid per-frame allocations.
	points := ctx.Canvas.BorrowPoints(a.Vertices)
	for i := range points {
		vertAngle := a.Angle + float64(i)*2*math.Pi/float64(a.Vertices)
		dist := a.Radius * (1 - a.Jaggedness*rand.Float64())
		points[i] = draw.Point{
			X: a.X + math.Cos(vertAngle)*dist,
			Y: a.Y + math.Sin(vertAngle)*dist,
		}
	}

	ctx.Canvas.SetColor(ColorAsteroid)
	ctx.Canvas.DrawPolygon(points, false)
}
