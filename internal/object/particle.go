package object

import (
	"math"
	"math/rand"
	"sync"
)

// Explosion particle parameters.
const (
	particleMinSpeed  = 2.0
	particleSpeedVar  = 2.0
	particleMinLife   = 30.0
	particleLifeVar   = 20.0
	particleMaxLife   = 50.0
	particleFadeFloor = 0.25 // Below this fraction of MaxLife the particle is not drawn
)

// particlePool is a sync.Pool for reusing Particle objects to reduce allocations.
var particlePool = sync.Pool{
	New: func() any {
		return &Particle{}
	},
}

// Particle is a short-lived visual effect. It never affects gameplay.
type Particle struct {
	X, Y    float64 // Position
	VX, VY  float64 // Velocity (units/tick)
	Life    float64 // Ticks remaining
	MaxLife float64 // Used for the fade
	Color   string
}

// NewParticle creates a single particle from the pool.
func NewParticle(x, y, vx, vy, life, maxLife float64, color string) *Particle {
	p := particlePool.Get().(*Particle)
	p.X = x
	p.Y = y
	p.VX = vx
	p.VY = vy
	p.Life = life
	p.MaxLife = maxLife
	p.Color = color
	return p
}

// Release returns the particle to the pool for reuse.
// Should be called when the particle is removed from the game.
func (p *Particle) Release() {
	particlePool.Put(p)
}

// Alpha returns the remaining life as a fraction of MaxLife, clamped to [0,1].
func (p *Particle) Alpha() float64 {
	if p.MaxLife <= 0 {
		return 0
	}
	return math.Max(0, math.Min(1, p.Life/p.MaxLife))
}

// SpawnExplosion creates count particles flying out from (x,y) at evenly
// spaced angles.
func SpawnExplosion(x, y float64, count int, color string, rng *rand.Rand, spawner Spawner) {
	if spawner == nil {
		return
	}

	for i := 0; i < count; i++ {
		angle := 2 * math.Pi * float64(i) / float64(count)
		vx := math.Cos(angle) * (particleMinSpeed + rng.Float64()*particleSpeedVar)
		vy := math.Sin(angle) * (particleMinSpeed + rng.Float64()*particleSpeedVar)
		life := particleMinLife + rng.Float64()*particleLifeVar

		spawner.SpawnParticle(NewParticle(x, y, vx, vy, life, particleMaxLife, color))
	}
}

// Update moves the particle and checks lifetime. Particles do not wrap.
func (p *Particle) Update() (remove bool) {
	p.X += p.VX
	p.Y += p.VY
	p.Life--
	return p.Life <= 0
}

// Draw renders the particle as a pixel on the canvas.
func (p *Particle) Draw(ctx DrawContext) {
	// Skip nearly faded particles
	if p.Alpha() < particleFadeFloor {
		return
	}
	ctx.Canvas.SetColor(p.Color)
	ctx.Canvas.SetFloat(p.X, p.Y)
}
