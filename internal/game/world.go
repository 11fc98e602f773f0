// Package game holds the simulation core: world state, the per-tick update,
// firing, the upgrade shop and the consequences of collisions.
//
// A World is owned by a single goroutine. Renderers read it through
// Snapshot or by drawing its entities; they never mutate it.
package game

import (
	"math/rand"
	"time"

	"github.com/tomz197/neonroids/internal/config"
	"github.com/tomz197/neonroids/internal/object"
	"github.com/tomz197/neonroids/internal/physics"
)

// Particle burst sizes.
const (
	HitParticles      = 15
	LifeLostParticles = 40
	LevelUpParticles  = 50
)

// Clock supplies the wall-clock time used for the fire cooldown.
type Clock interface {
	Now() time.Time
}

type systemClock struct{}

func (systemClock) Now() time.Time { return time.Now() }

// SystemClock reads the real time.
var SystemClock Clock = systemClock{}

// Intent is the player input for one tick. Left, Right and Thrust are held
// flags. Fire is a one-shot request: callers set it for the tick after a
// press and clear it once that tick has run. The fire delay still decides
// whether a shot leaves.
type Intent struct {
	Left   bool `json:"left"`
	Right  bool `json:"right"`
	Thrust bool `json:"thrust"`
	Fire   bool `json:"fire"`
}

// World is the complete simulation state.
type World struct {
	rules   config.Rules
	rng     *rand.Rand
	clock   Clock
	screen  object.Screen
	spawner object.AsteroidSpawner

	Ship      *object.Ship
	Asteroids []*object.Asteroid
	Bullets   []*object.Bullet
	Lasers    []*object.Laser
	Particles []*object.Particle

	Score     int
	Money     int
	Lives     int
	Level     int
	Destroyed int // Asteroids destroyed on the current level
	Threshold int // Destroyed count that triggers the next level

	LevelingUp   bool
	LevelUpTimer int // Ticks left on the level-up banner
	Paused       bool
	Over         bool

	shop shopState

	events []Event

	// Broad phase for bullet hits. Rebuilt every bullet pass.
	grid *physics.SpatialGrid

	// While a laser scans, fragments wait here so the same scan never
	// tests them.
	deferSpawns bool
	deferred    []*object.Asteroid
}

// NewWorld creates a world with the ship centered and the first asteroid
// batch placed. A nil rng or clock falls back to a time-seeded source and
// the system clock.
func NewWorld(rules config.Rules, rng *rand.Rand, clock Clock) *World {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	if clock == nil {
		clock = SystemClock
	}

	screen := object.Screen{Width: rules.WorldWidth, Height: rules.WorldHeight}
	w := &World{
		rules:  rules,
		rng:    rng,
		clock:  clock,
		screen: screen,
		spawner: object.AsteroidSpawner{
			Radius:    rules.Asteroid.Radius,
			Clearance: rules.Asteroid.SpawnClearance,
			Attempts:  rules.Asteroid.SpawnAttempts,
		},
		Ship: object.NewShip(screen, rules.Ship.Radius, rules.Weapon.FireDelay, rules.Ship.InitialLives),
		grid: physics.NewSpatialGrid(rules.WorldWidth, rules.WorldHeight, rules.Asteroid.Radius),
		shop: newShopState(rules.Shop),
	}
	w.reset()
	return w
}

// Rules returns the rules the world was created with.
func (w *World) Rules() config.Rules {
	return w.rules
}

// SpawnAsteroid implements object.Spawner.
func (w *World) SpawnAsteroid(a *object.Asteroid) {
	if w.deferSpawns {
		w.deferred = append(w.deferred, a)
		return
	}
	w.Asteroids = append(w.Asteroids, a)
	w.grid.Insert(a.X, a.Y, len(w.Asteroids)-1)
}

// SpawnParticle implements object.Spawner.
func (w *World) SpawnParticle(p *object.Particle) {
	w.Particles = append(w.Particles, p)
}

// Drawables returns every entity in draw order: particles below asteroids,
// projectiles above, the ship last. The ship is left out after game over.
func (w *World) Drawables() []object.Drawable {
	out := make([]object.Drawable, 0, len(w.Particles)+len(w.Asteroids)+len(w.Bullets)+len(w.Lasers)+1)
	for _, p := range w.Particles {
		out = append(out, p)
	}
	for _, a := range w.Asteroids {
		out = append(out, a)
	}
	for _, l := range w.Lasers {
		out = append(out, l)
	}
	for _, b := range w.Bullets {
		out = append(out, b)
	}
	if !w.Over {
		out = append(out, w.Ship)
	}
	return out
}

// asteroidSpeed returns the per-axis velocity range for the current level.
func (w *World) asteroidSpeed() float64 {
	a := w.rules.Asteroid
	if !w.rules.Upgraded() {
		return a.BaseSpeed
	}
	return a.BaseSpeed * (1 + float64(w.Level-1)*a.SpeedPerLevel)
}

// batchSize returns how many asteroids the next wave holds.
func (w *World) batchSize() int {
	a := w.rules.Asteroid
	if w.rules.Upgraded() {
		return min(a.BaseBatch+w.Level, a.MaxPerBatch)
	}
	n := a.BaseBatch
	if a.ScorePerExtra > 0 {
		n += w.Score / a.ScorePerExtra
	}
	return n
}

// spawnWave places a fresh batch of asteroids away from the ship.
func (w *World) spawnWave() {
	w.spawner.SpawnBatch(w.batchSize(), w.asteroidSpeed(), w.screen, w.Ship.X, w.Ship.Y, w.rng, w)
}

// thrustPower returns the thrust added per tick while the thrust key is held.
func (w *World) thrustPower() float64 {
	if !w.rules.Upgraded() {
		return w.rules.Ship.Thrust
	}
	return w.rules.Ship.Thrust * float64(w.Ship.SpeedLevel)
}

func (w *World) emit(e Event) {
	w.events = append(w.events, e)
}

// beginEvents starts a new event batch, invalidating the previous one.
func (w *World) beginEvents() {
	clear(w.events)
	w.events = w.events[:0]
}
