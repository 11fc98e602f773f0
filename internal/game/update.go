package game

import (
	"slices"

	"github.com/tomz197/neonroids/internal/object"
)

// Tick advances the world by one step and returns the events it produced.
// The returned slice is only valid until the next call on w. A paused or
// finished world is left untouched.
func (w *World) Tick(in Intent) []Event {
	w.beginEvents()
	if w.Over || w.Paused {
		return w.events
	}

	if w.LevelingUp {
		w.LevelUpTimer--
		if w.LevelUpTimer <= 0 {
			w.LevelingUp = false
			w.LevelUpTimer = 0
		}
	}

	if in.Fire {
		w.Fire()
	}

	w.Ship.Update(object.Controls{Left: in.Left, Right: in.Right, Thrust: in.Thrust},
		w.rules.Ship.TurnSpeed, w.thrustPower(), w.rules.Ship.Friction, w.screen)

	w.updateAsteroids()
	if w.Over {
		return w.events
	}

	w.updateBullets()
	w.updateLasers()
	w.updateParticles()

	if len(w.Asteroids) == 0 && !w.LevelingUp {
		w.spawnWave()
	}

	return w.events
}

// updateAsteroids moves every asteroid and resolves ship collisions.
// Colliding asteroids are removed without splitting.
func (w *World) updateAsteroids() {
	for _, a := range w.Asteroids {
		a.Update(w.screen)
		if w.Over {
			continue
		}
		if w.shipHit(a) {
			a.MarkDestroyed()
			w.loseLife()
		}
	}
	w.compactAsteroids()
}

// updateBullets moves bullets and resolves hits. A bullet destroys the first
// live asteroid in slice order that contains it.
func (w *World) updateBullets() {
	w.grid.Clear()
	for i, a := range w.Asteroids {
		w.grid.Insert(a.X, a.Y, i)
	}

	w.Bullets = slices.DeleteFunc(w.Bullets, func(b *object.Bullet) bool {
		if b.Update(w.screen) {
			return true
		}
		idx, ok := w.grid.LowestMatch(b.X, b.Y, func(i int) bool {
			a := w.Asteroids[i]
			return !a.IsDestroyed() && bulletHits(b, a)
		})
		if !ok {
			return false
		}
		w.destroyAsteroid(w.Asteroids[idx], object.ColorAsteroid)
		return true
	})
	w.compactAsteroids()
}

// updateLasers ages and grows every beam, then destroys everything each beam
// touches. Fragments from one beam's pass are only visible to later beams.
func (w *World) updateLasers() {
	w.Lasers = slices.DeleteFunc(w.Lasers, func(l *object.Laser) bool {
		if l.Update() {
			return true
		}

		w.deferSpawns = true
		for _, a := range w.Asteroids {
			if !a.IsDestroyed() && l.Touches(a.X, a.Y, a.Radius) {
				w.destroyAsteroid(a, object.ColorLaser)
			}
		}
		w.deferSpawns = false

		w.Asteroids = append(w.Asteroids, w.deferred...)
		clear(w.deferred)
		w.deferred = w.deferred[:0]
		return false
	})
	w.compactAsteroids()
}

// updateParticles moves particles and returns expired ones to the pool.
func (w *World) updateParticles() {
	w.Particles = slices.DeleteFunc(w.Particles, func(p *object.Particle) bool {
		if p.Update() {
			p.Release()
			return true
		}
		return false
	})
}

// compactAsteroids drops asteroids marked destroyed, keeping slice order.
func (w *World) compactAsteroids() {
	w.Asteroids = slices.DeleteFunc(w.Asteroids, (*object.Asteroid).IsDestroyed)
}
